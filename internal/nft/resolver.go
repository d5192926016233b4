package nft

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"

	"github.com/cosmichub/api/internal/errx"
	"go.uber.org/zap"
)

const defaultOpenSeaAPIBase = "https://api.opensea.io"

var (
	openseaCollectionRe = regexp.MustCompile(`(?i)opensea\.io/collection/([a-z0-9\-]+)`)
	openseaItemRe       = regexp.MustCompile(`(?i)opensea\.io/(?:assets/)?(?:[a-z-]+/)?(?:0x[a-f0-9]+|ethereum)?/(\d+)`)
	objktCollectionRe   = regexp.MustCompile(`(?i)objkt\.com/collections/([a-zA-Z0-9]+)`)
	ogImageRe           = regexp.MustCompile(`(?i)<meta\s+property=["']og:image["']\s+content=["']([^"']+)["']`)
)

// CollectionImage is a resolved preview image for an NFT collection URL.
type CollectionImage struct {
	ImageURL       string
	CollectionURL  string
	CollectionName string
}

// Resolver resolves a collection or item URL to a preview image, trying the
// provider's API first and falling back to scraping the page's og:image tag.
// Resolution never fails once the URL is accepted; the image may be empty.
type Resolver struct {
	openseaAPIBase string
	objkt          *ObjktClient
	http           *http.Client
	logger         *zap.Logger
}

// NewResolver creates a collection image resolver.
func NewResolver(objkt *ObjktClient, httpClient *http.Client, logger *zap.Logger) *Resolver {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Resolver{
		openseaAPIBase: defaultOpenSeaAPIBase,
		objkt:          objkt,
		http:           httpClient,
		logger:         logger,
	}
}

// NewResolverWithBaseURL creates a resolver with a non-default OpenSea host.
func NewResolverWithBaseURL(objkt *ObjktClient, httpClient *http.Client, logger *zap.Logger, openseaAPIBase string) *Resolver {
	r := NewResolver(objkt, httpClient, logger)
	r.openseaAPIBase = openseaAPIBase

	return r
}

// Resolve accepts opensea.io and objkt.com URLs only; anything else is an
// invalid-input error. A missing scheme is defaulted to https.
func (r *Resolver) Resolve(ctx context.Context, rawURL string) (CollectionImage, error) {
	const op = "nft.Resolver.Resolve"

	if rawURL == "" {
		return CollectionImage{}, errx.E(op, errx.Invalid, errors.New("missing or invalid 'url' query parameter"))
	}

	fullURL := rawURL
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		fullURL = "https://" + rawURL
	}

	switch {
	case strings.Contains(fullURL, "opensea.io"):
		return r.resolveOpenSea(ctx, fullURL), nil
	case strings.Contains(fullURL, "objkt.com"):
		return r.resolveObjkt(ctx, fullURL)
	default:
		return CollectionImage{}, errx.E(op, errx.Invalid,
			errors.New("URL must be from OpenSea (opensea.io) or Objkt (objkt.com)"))
	}
}

func (r *Resolver) resolveOpenSea(ctx context.Context, fullURL string) CollectionImage {
	result := CollectionImage{CollectionURL: fullURL}

	slug := ""
	if m := openseaCollectionRe.FindStringSubmatch(fullURL); m != nil {
		slug = m[1]
	}

	// Item pages and unrecognized paths get the og:image scrape only.
	if slug == "" {
		result.ImageURL = r.scrapeOGImage(ctx, fullURL)

		return result
	}

	result.CollectionName = slug

	if name, image := r.openseaCollection(ctx, slug); image != "" {
		result.ImageURL = image
		if name != "" {
			result.CollectionName = name
		}

		return result
	}

	result.ImageURL = r.scrapeOGImage(ctx, fullURL)

	return result
}

func (r *Resolver) openseaCollection(ctx context.Context, slug string) (name, image string) {
	apiURL := fmt.Sprintf("%s/api/v2/collections/%s", r.openseaAPIBase, slug)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return "", ""
	}

	req.Header.Set("User-Agent", userAgent)

	resp, err := r.http.Do(req)
	if err != nil {
		r.logger.Warn("opensea api not available, trying og:image fallback", zap.Error(err))

		return "", ""
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", ""
	}

	var data struct {
		Name     string `json:"name"`
		ImageURL string `json:"image_url"`
	}

	if err = json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return "", ""
	}

	return data.Name, data.ImageURL
}

func (r *Resolver) resolveObjkt(ctx context.Context, fullURL string) (CollectionImage, error) {
	const op = "nft.Resolver.Resolve"

	m := objktCollectionRe.FindStringSubmatch(fullURL)
	if m == nil {
		return CollectionImage{}, errx.E(op, errx.Invalid, errors.New("invalid Objkt collection URL format"))
	}

	contract := m[1]
	result := CollectionImage{
		CollectionURL:  fullURL,
		CollectionName: contract,
	}

	image, err := r.objkt.FirstImage(ctx, contract)
	if err != nil {
		r.logger.Warn("objkt api failed, trying og:image fallback", zap.Error(err))
	}

	if image == "" {
		image = r.scrapeOGImage(ctx, fullURL)
	}

	result.ImageURL = image

	return result, nil
}

// scrapeOGImage fetches the page and extracts the og:image meta tag content.
// Returns an empty string on any failure.
func (r *Resolver) scrapeOGImage(ctx context.Context, pageURL string) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return ""
	}

	req.Header.Set("User-Agent", userAgent)

	resp, err := r.http.Do(req)
	if err != nil {
		r.logger.Warn("could not fetch collection page", zap.String("url", pageURL), zap.Error(err))

		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return ""
	}

	html, err := io.ReadAll(resp.Body)
	if err != nil {
		return ""
	}

	return ExtractOGImage(string(html))
}

// ExtractOGImage returns the og:image content of an HTML document, or "".
func ExtractOGImage(html string) string {
	if m := ogImageRe.FindStringSubmatch(html); m != nil {
		return m[1]
	}

	return ""
}
