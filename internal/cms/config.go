// Package cms serves the static CMS collection schema consumed by the
// browser-side admin panel.
package cms

// Backend describes the git backend the CMS commits through.
type Backend struct {
	Name         string `json:"name"`
	Repo         string `json:"repo"`
	Branch       string `json:"branch"`
	AuthEndpoint string `json:"auth_endpoint"`
	AuthScope    string `json:"auth_scope"`
}

// Field is one widget in a CMS form. Fields nest for list widgets.
type Field struct {
	Label   string  `json:"label"`
	Name    string  `json:"name"`
	Widget  string  `json:"widget"`
	Default any     `json:"default,omitempty"`
	Fields  []Field `json:"fields,omitempty"`
}

// File is a single-file editing target within a collection.
type File struct {
	Name   string  `json:"name"`
	Label  string  `json:"label"`
	File   string  `json:"file"`
	Fields []Field `json:"fields"`
}

// Collection groups editable files.
type Collection struct {
	Name   string `json:"name"`
	Label  string `json:"label"`
	Folder string `json:"folder"`
	Create bool   `json:"create"`
	Files  []File `json:"files"`
}

// Config is the full CMS configuration document.
type Config struct {
	Backend          Backend      `json:"backend"`
	MediaFolder      string       `json:"media_folder"`
	PublicPath       string       `json:"public_path"`
	PublishMode      string       `json:"publish_mode"`
	DisplayURL       string       `json:"display_url"`
	ShowPreviewLinks bool         `json:"show_preview_links"`
	Collections      []Collection `json:"collections"`
}

// DefaultConfig returns the schema served by /api/cms-config.
func DefaultConfig() Config {
	videoFields := []Field{
		{Label: "Title", Name: "title", Widget: "string"},
		{Label: "YouTube URL", Name: "youtube_url", Widget: "string"},
		{Label: "Active", Name: "active", Widget: "boolean", Default: true},
	}

	collectionFields := []Field{
		{Label: "Name", Name: "name", Widget: "string"},
		{Label: "URL", Name: "url", Widget: "string"},
		{Label: "Image URL", Name: "image_url", Widget: "string"},
		{Label: "Active", Name: "active", Widget: "boolean", Default: true},
	}

	socialFields := []Field{
		{Label: "Twitter", Name: "twitter", Widget: "string"},
		{Label: "YouTube", Name: "youtube", Widget: "string"},
		{Label: "Threads", Name: "threads", Widget: "string"},
		{Label: "Facebook", Name: "facebook", Widget: "string"},
		{Label: "Telegram", Name: "telegram", Widget: "string"},
		{Label: "TikTok", Name: "tiktok", Widget: "string"},
		{Label: "Discord", Name: "discord", Widget: "string"},
		{Label: "LinkedIn", Name: "linkedin", Widget: "string"},
		{Label: "Contra", Name: "contra", Widget: "string"},
		{Label: "Webbie", Name: "webbie", Widget: "string"},
	}

	return Config{
		Backend: Backend{
			Name:         "github",
			Repo:         "cosmic-hub/cosmic-hub-site",
			Branch:       "main",
			AuthEndpoint: "api/auth",
			AuthScope:    "repo",
		},
		MediaFolder:      "public/uploads",
		PublicPath:       "/uploads",
		PublishMode:      "editorial_workflow",
		DisplayURL:       "https://www.cosmic-hub.com",
		ShowPreviewLinks: true,
		Collections: []Collection{
			{
				Name:   "menu",
				Label:  "Menu Content",
				Folder: "data",
				Create: false,
				Files: []File{
					{
						Name:  "menu",
						Label: "Menu Items",
						File:  "data/menu.yml",
						Fields: []Field{
							{Label: "Podcast Videos", Name: "podcast_videos", Widget: "list", Fields: videoFields},
							{Label: "Cosmic Ambient Videos", Name: "cosmic_ambient_videos", Widget: "list", Fields: videoFields},
							{Label: "Feel Cosmos Videos", Name: "feel_cosmos_videos", Widget: "list", Fields: videoFields},
							{Label: "NFT Videos", Name: "nft_videos", Widget: "list", Fields: videoFields},
							{Label: "NFT Collections", Name: "nft_collections", Widget: "list", Fields: collectionFields},
							{Label: "Social Links", Name: "social_links", Widget: "object", Fields: socialFields},
						},
					},
				},
			},
		},
	}
}
