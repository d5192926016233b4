// Package nft proxies NFT metadata lookups against Objkt and OpenSea. Every
// provider failure degrades to a documented fallback rather than failing the
// request.
package nft

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

const (
	defaultObjktAPIBase = "https://api.objkt.com"
	userAgent           = "Mozilla/5.0 (compatible; Cosmic-Hub/1.0)"
	maxTokens           = 100
)

// Token is one NFT in a collection, with resolved image URLs.
type Token struct {
	ID           string `json:"id"`
	TokenID      string `json:"tokenId"`
	Name         string `json:"name"`
	ImageURL     string `json:"imageUrl"`
	ThumbnailURL string `json:"thumbnailUrl"`
}

// ObjktClient fetches collection tokens from the Objkt API.
type ObjktClient struct {
	apiBase string
	http    *http.Client
	logger  *zap.Logger
}

// NewObjktClient creates an Objkt API client.
func NewObjktClient(httpClient *http.Client, logger *zap.Logger) *ObjktClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &ObjktClient{
		apiBase: defaultObjktAPIBase,
		http:    httpClient,
		logger:  logger,
	}
}

// NewObjktClientWithBaseURL creates a client pointed at a non-default host.
func NewObjktClientWithBaseURL(httpClient *http.Client, logger *zap.Logger, apiBase string) *ObjktClient {
	c := NewObjktClient(httpClient, logger)
	c.apiBase = apiBase

	return c
}

type objktToken struct {
	TokenID      json.Number `json:"token_id"`
	Contract     string      `json:"contract"`
	Name         string      `json:"name"`
	Title        string      `json:"title"`
	DisplayURI   string      `json:"display_uri"`
	ThumbnailURI string      `json:"thumbnail_uri"`
	Media        string      `json:"media"`
}

// CollectionTokens returns up to 100 tokens of the contract that carry a
// usable display URI, with ipfs:// URIs rewritten to a public gateway.
func (c *ObjktClient) CollectionTokens(ctx context.Context, contract string) ([]Token, error) {
	raw, err := c.fetchTokens(ctx, fmt.Sprintf("%s/v3/tokens?contract=%s&limit=100", c.apiBase, contract))
	if err != nil {
		return nil, err
	}

	tokens := make([]Token, 0, len(raw))

	for i, t := range raw {
		if !usableURI(t.DisplayURI) {
			continue
		}

		name := t.Name
		if name == "" {
			name = t.Title
		}

		if name == "" {
			name = fmt.Sprintf("Token #%s", t.TokenID.String())
		}

		thumbnail := t.ThumbnailURI
		if thumbnail == "" {
			thumbnail = t.DisplayURI
		}

		tokens = append(tokens, Token{
			ID:           fmt.Sprintf("%s-%s", tokenOrIndex(t.TokenID, i), t.Contract),
			TokenID:      t.TokenID.String(),
			Name:         name,
			ImageURL:     RewriteIPFS(t.DisplayURI),
			ThumbnailURL: RewriteIPFS(thumbnail),
		})

		if len(tokens) == maxTokens {
			break
		}
	}

	return tokens, nil
}

// FirstImage returns the first resolvable image URI among the contract's
// tokens, or an empty string.
func (c *ObjktClient) FirstImage(ctx context.Context, contract string) (string, error) {
	raw, err := c.fetchTokens(ctx, fmt.Sprintf("%s/v3/tokens?contract=%s&limit=10", c.apiBase, contract))
	if err != nil {
		return "", err
	}

	for _, t := range raw {
		uri := t.DisplayURI
		if uri == "" {
			uri = t.ThumbnailURI
		}

		if uri == "" {
			uri = t.Media
		}

		if uri != "" {
			return RewriteIPFS(uri), nil
		}
	}

	return "", nil
}

func (c *ObjktClient) fetchTokens(ctx context.Context, apiURL string) ([]objktToken, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("objkt api error: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	// The tokens endpoint answers either a bare array or {"tokens": [...]}.
	var list []objktToken
	if err = json.Unmarshal(body, &list); err == nil {
		return list, nil
	}

	var wrapped struct {
		Tokens []objktToken `json:"tokens"`
	}

	if err = json.Unmarshal(body, &wrapped); err != nil {
		return nil, err
	}

	return wrapped.Tokens, nil
}

// RewriteIPFS rewrites ipfs:// URIs to the public ipfs.io gateway. Other URIs
// pass through unchanged.
func RewriteIPFS(uri string) string {
	if strings.HasPrefix(uri, "ipfs://") {
		return "https://ipfs.io/ipfs/" + strings.TrimPrefix(uri, "ipfs://")
	}

	return uri
}

func usableURI(uri string) bool {
	return strings.HasPrefix(uri, "http") || strings.HasPrefix(uri, "ipfs://")
}

func tokenOrIndex(id json.Number, index int) string {
	if id.String() != "" {
		return id.String()
	}

	return fmt.Sprintf("%d", index)
}
