package handlers

import (
	"net/http"
	"time"

	"github.com/cosmichub/api/internal/ratelimit"
	"github.com/danielgtaylor/huma/v2"
)

// RegisterRoutes registers all API routes with per-endpoint rate limit
// configuration. Write endpoints get strict limits; static content is
// effectively unthrottled.
func RegisterRoutes(
	api huma.API,
	linksH *LinksHandler,
	messageH *MessageHandler,
	contentH *ContentHandler,
	nftH *NFTHandler,
	videoH *VideoHandler,
) {
	huma.Register(api, huma.Operation{
		Method:      http.MethodGet,
		Path:        "/api/get-links",
		Summary:     "List saved links",
		Description: "Returns the link collection sorted descending by date.",
		Tags:        []string{"Links"},
	}, linksH.GetLinks)

	huma.Register(api, huma.Operation{
		Method:        http.MethodPost,
		Path:          "/api/save-link",
		Summary:       "Save a link",
		Description:   "Appends a link to the collection, deduplicating by URL.",
		Tags:          []string{"Links"},
		DefaultStatus: http.StatusOK,
		Metadata: map[string]any{
			ratelimit.MetadataKey: ratelimit.EndpointConfig{
				Limits: []ratelimit.LimitConfig{
					{Window: time.Minute, Max: 10},
					{Window: time.Hour, Max: 100},
					{Window: 24 * time.Hour, Max: 500},
				},
			},
		},
	}, linksH.SaveLink)

	huma.Register(api, huma.Operation{
		Method:        http.MethodPost,
		Path:          "/api/send-message",
		Summary:       "Send a contact message",
		Description:   "Accepts a visitor message and relays it by email.",
		Tags:          []string{"Contact"},
		DefaultStatus: http.StatusOK,
		Metadata: map[string]any{
			ratelimit.MetadataKey: ratelimit.EndpointConfig{
				Limits: []ratelimit.LimitConfig{
					{Window: time.Minute, Max: 5},
					{Window: time.Hour, Max: 30},
				},
			},
		},
	}, messageH.SendMessage)

	huma.Register(api, huma.Operation{
		Method:  http.MethodGet,
		Path:    "/api/menu",
		Summary: "Get menu content",
		Tags:    []string{"Content"},
	}, contentH.GetMenu)

	huma.Register(api, huma.Operation{
		Method:  http.MethodGet,
		Path:    "/api/cms-config",
		Summary: "Get CMS schema",
		Tags:    []string{"Content"},
	}, contentH.GetCMSConfig)

	huma.Register(api, huma.Operation{
		Method:  http.MethodGet,
		Path:    "/api/health",
		Summary: "Health check",
		Tags:    []string{"Content"},
		Metadata: map[string]any{
			ratelimit.MetadataKey: ratelimit.EndpointConfig{Disabled: true},
		},
	}, contentH.Health)

	huma.Register(api, huma.Operation{
		Method:  http.MethodGet,
		Path:    "/api/nft-collection",
		Summary: "List featured NFT collection",
		Tags:    []string{"NFT"},
	}, nftH.GetCollection)

	huma.Register(api, huma.Operation{
		Method:  http.MethodGet,
		Path:    "/api/opensea-collection",
		Summary: "Resolve collection preview image",
		Tags:    []string{"NFT"},
	}, nftH.GetCollectionImage)

	huma.Register(api, huma.Operation{
		Method:  http.MethodGet,
		Path:    "/api/youtube-duration",
		Summary: "Look up video duration",
		Tags:    []string{"Video"},
	}, videoH.GetDuration)
}
