package handlers

import (
	"github.com/cosmichub/api/internal/links"
	"github.com/cosmichub/api/internal/menu"
	"github.com/cosmichub/api/internal/nft"
)

// GetLinksResponse is the response for listing the saved links.
type GetLinksResponse struct {
	Body struct {
		Links   []links.Link `doc:"Links sorted descending by date" json:"links"`
		Success bool         `json:"success"`
	}
}

// SaveLinkRequest is the request body for saving a link.
type SaveLinkRequest struct {
	Body struct {
		URL string `doc:"The URL to save" example:"https://example.com" json:"url" required:"false"`
	}
}

// SaveLinkResponse is the response for saving a link. Error outcomes keep the
// same body shape with success=false.
type SaveLinkResponse struct {
	Status int
	Body   struct {
		Success bool         `json:"success"`
		Message string       `json:"message,omitempty"`
		Error   string       `json:"error,omitempty"`
		Link    *links.Link  `json:"link,omitempty"`
		Links   []links.Link `json:"links,omitempty"`
	}
}

// MenuResponse is the menu document response.
type MenuResponse struct {
	Body menu.Data
}

// HealthResponse is the response for the health check endpoint.
type HealthResponse struct {
	Body struct {
		Status    string `json:"status"`
		Timestamp string `json:"timestamp"`
	}
}

// SendMessageRequest is the request body for the contact form.
type SendMessageRequest struct {
	Body struct {
		Message      string `doc:"Message body, at most 500 characters" json:"message"      required:"false"`
		VisitorEmail string `doc:"Optional reply address"               json:"visitorEmail" required:"false"`
	}
}

// SendMessageResponse is the response for the contact form.
type SendMessageResponse struct {
	Status int
	Body   struct {
		Success bool   `json:"success,omitempty"`
		Message string `json:"message,omitempty"`
		Error   string `json:"error,omitempty"`
	}
}

// NFTCollectionResponse is the response for the NFT collection listing.
type NFTCollectionResponse struct {
	Body struct {
		Success bool        `json:"success"`
		Count   int         `json:"count"`
		Tokens  []nft.Token `json:"tokens"`
		Note    string      `json:"note,omitempty"`
	}
}

// OpenSeaCollectionRequest carries the collection URL to resolve.
type OpenSeaCollectionRequest struct {
	URL string `doc:"OpenSea or Objkt collection URL" query:"url"`
}

// OpenSeaCollectionResponse is the resolved preview image. ImageURL is null
// when no image could be resolved; the request still succeeds.
type OpenSeaCollectionResponse struct {
	Status int
	Body   struct {
		Success        bool    `json:"success"`
		ImageURL       *string `json:"imageUrl"`
		CollectionURL  string  `json:"collectionUrl,omitempty"`
		CollectionName string  `json:"collectionName,omitempty"`
		Error          string  `json:"error,omitempty"`
	}
}

// YouTubeDurationRequest carries the video id to look up.
type YouTubeDurationRequest struct {
	VideoID string `doc:"11-character YouTube video id" query:"videoId"`
}

// YouTubeDurationResponse is the resolved duration.
type YouTubeDurationResponse struct {
	Status int
	Body   struct {
		Success           bool   `json:"success,omitempty"`
		VideoID           string `json:"videoId,omitempty"`
		Duration          int    `json:"duration,omitempty"`
		FormattedDuration string `json:"formattedDuration,omitempty"`
		Title             string `json:"title,omitempty"`
		Note              string `json:"note,omitempty"`
		Error             string `json:"error,omitempty"`
	}
}
