// Package menu serves the static site menu document. Content is sourced from
// a JSON file, falling back to YAML, falling back to compiled-in defaults, so
// the endpoint never hard-fails.
package menu

import (
	"encoding/json"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Item is a titled YouTube embed slot.
type Item struct {
	Title      string `json:"title"       yaml:"title"`
	YouTubeURL string `json:"youtube_url" yaml:"youtube_url"`
	Active     bool   `json:"active"      yaml:"active"`
}

// NFTCollection is a promoted collection slot.
type NFTCollection struct {
	Name     string `json:"name"      yaml:"name"`
	URL      string `json:"url"       yaml:"url"`
	ImageURL string `json:"image_url" yaml:"image_url"`
	Active   bool   `json:"active"    yaml:"active"`
}

// SocialLinks holds the footer social profile URLs.
type SocialLinks struct {
	Twitter  string `json:"twitter,omitempty"  yaml:"twitter"`
	YouTube  string `json:"youtube,omitempty"  yaml:"youtube"`
	Threads  string `json:"threads,omitempty"  yaml:"threads"`
	Facebook string `json:"facebook,omitempty" yaml:"facebook"`
	Telegram string `json:"telegram,omitempty" yaml:"telegram"`
	TikTok   string `json:"tiktok,omitempty"   yaml:"tiktok"`
	Discord  string `json:"discord,omitempty"  yaml:"discord"`
	LinkedIn string `json:"linkedin,omitempty" yaml:"linkedin"`
	Contra   string `json:"contra,omitempty"   yaml:"contra"`
	Webbie   string `json:"webbie,omitempty"   yaml:"webbie"`
}

// Data is the full menu document.
type Data struct {
	PodcastVideos       []Item          `json:"podcast_videos"       yaml:"podcast_videos"`
	CosmicAmbientVideos []Item          `json:"cosmic_ambient_videos" yaml:"cosmic_ambient_videos"`
	FeelCosmosVideos    []Item          `json:"feel_cosmos_videos"   yaml:"feel_cosmos_videos"`
	NFTVideos           []Item          `json:"nft_videos"           yaml:"nft_videos"`
	NFTCollections      []NFTCollection `json:"nft_collections"      yaml:"nft_collections"`
	SocialLinks         SocialLinks     `json:"social_links"         yaml:"social_links"`
}

// Loader resolves the menu document through the fallback chain.
type Loader struct {
	jsonPath string
	yamlPath string
	logger   *zap.Logger
}

// NewLoader creates a loader reading from the given JSON and YAML paths.
func NewLoader(jsonPath, yamlPath string, logger *zap.Logger) *Loader {
	return &Loader{
		jsonPath: jsonPath,
		yamlPath: yamlPath,
		logger:   logger,
	}
}

// Load returns the menu document. It never fails: a missing or unreadable
// source falls through to the next one, ending at the defaults.
func (l *Loader) Load() Data {
	if content, err := os.ReadFile(l.jsonPath); err == nil {
		var data Data
		if err = json.Unmarshal(content, &data); err == nil {
			return data
		}

		l.logger.Warn("invalid menu json, falling back", zap.String("path", l.jsonPath), zap.Error(err))
	}

	if content, err := os.ReadFile(l.yamlPath); err == nil {
		var data Data
		if err = yaml.Unmarshal(content, &data); err == nil {
			return data
		}

		l.logger.Warn("invalid menu yaml, falling back", zap.String("path", l.yamlPath), zap.Error(err))
	}

	return Defaults()
}

// Defaults returns the compiled-in menu content used when no file is present.
func Defaults() Data {
	return Data{
		PodcastVideos: []Item{
			{Title: "AI Art Podcast Episode 1", YouTubeURL: "https://www.youtube.com/embed/jgpJVI3tDT0", Active: true},
			{Title: "AI Art Podcast Episode 2", YouTubeURL: "https://www.youtube.com/embed/1La4QzGeaaQ", Active: true},
			{Title: "AI Art Podcast Episode 3", YouTubeURL: "https://www.youtube.com/embed/TqOneWeDtFI", Active: true},
			{Title: "AI Art Podcast Episode 4", YouTubeURL: "https://www.youtube.com/embed/lFcSrYw-ARY", Active: true},
		},
		CosmicAmbientVideos: []Item{
			{Title: "Cosmic Ambient 1", Active: true},
			{Title: "Cosmic Ambient 2", Active: true},
			{Title: "Cosmic Ambient 3", Active: true},
			{Title: "Cosmic Ambient 4", Active: true},
		},
		FeelCosmosVideos: []Item{
			{Title: "Feel the Cosmos 1", Active: true},
			{Title: "Feel the Cosmos 2", Active: true},
			{Title: "Feel the Cosmos 3", Active: true},
			{Title: "Feel the Cosmos 4", Active: true},
		},
		NFTVideos: []Item{
			{Title: "NFT Collections Video 1", Active: true},
			{Title: "NFT Collections Video 2", Active: true},
			{Title: "NFT Collections Video 3", Active: true},
			{Title: "NFT Collections Video 4", Active: true},
		},
		NFTCollections: []NFTCollection{
			{Name: "Collection 1", Active: true},
			{Name: "Collection 2", Active: true},
			{Name: "Collection 3", Active: true},
			{Name: "Collection 4", Active: true},
			{Name: "Collection 5", Active: true},
			{Name: "Collection 6", Active: true},
		},
	}
}
