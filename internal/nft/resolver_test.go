package nft_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cosmichub/api/internal/errx"
	"github.com/cosmichub/api/internal/nft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// localOnlyTransport serves requests to the given test server and refuses
// everything else, so fallback scraping never leaves the test process.
type localOnlyTransport struct {
	server *httptest.Server
}

func (t localOnlyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.server != nil && req.URL.Host == t.server.Listener.Addr().String() {
		return http.DefaultTransport.RoundTrip(req)
	}

	return nil, errors.New("external host blocked in tests")
}

func localOnlyClient(server *httptest.Server) *http.Client {
	return &http.Client{Transport: localOnlyTransport{server: server}}
}

func TestResolve(t *testing.T) {
	t.Run("rejects empty url", func(t *testing.T) {
		resolver := nft.NewResolver(nft.NewObjktClient(nil, zap.NewNop()), nil, zap.NewNop())

		_, err := resolver.Resolve(context.Background(), "")

		require.Error(t, err)
		assert.Equal(t, errx.Invalid, errx.KindOf(err))
	})

	t.Run("rejects unsupported marketplaces", func(t *testing.T) {
		resolver := nft.NewResolver(nft.NewObjktClient(nil, zap.NewNop()), nil, zap.NewNop())

		_, err := resolver.Resolve(context.Background(), "https://rarible.com/collection/xyz")

		require.Error(t, err)
		assert.Equal(t, errx.Invalid, errx.KindOf(err))
		assert.Contains(t, err.Error(), "OpenSea")
	})

	t.Run("rejects objkt urls without a collection path", func(t *testing.T) {
		resolver := nft.NewResolver(nft.NewObjktClient(nil, zap.NewNop()), nil, zap.NewNop())

		_, err := resolver.Resolve(context.Background(), "https://objkt.com/profile/tz1abc")

		require.Error(t, err)
		assert.Equal(t, errx.Invalid, errx.KindOf(err))
	})

	t.Run("resolves opensea collection via api", func(t *testing.T) {
		opensea := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/v2/collections/cosmic-dreams", r.URL.Path)
			_, _ = w.Write([]byte(`{"name": "Cosmic Dreams", "image_url": "https://img.example/banner.png"}`))
		}))
		defer opensea.Close()

		resolver := nft.NewResolverWithBaseURL(
			nft.NewObjktClient(nil, zap.NewNop()), opensea.Client(), zap.NewNop(), opensea.URL)

		result, err := resolver.Resolve(context.Background(), "https://opensea.io/collection/cosmic-dreams")

		require.NoError(t, err)
		assert.Equal(t, "https://img.example/banner.png", result.ImageURL)
		assert.Equal(t, "Cosmic Dreams", result.CollectionName)
		assert.Equal(t, "https://opensea.io/collection/cosmic-dreams", result.CollectionURL)
	})

	t.Run("defaults missing scheme to https", func(t *testing.T) {
		opensea := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"name": "Slugged", "image_url": "https://img.example/x.png"}`))
		}))
		defer opensea.Close()

		resolver := nft.NewResolverWithBaseURL(
			nft.NewObjktClient(nil, zap.NewNop()), opensea.Client(), zap.NewNop(), opensea.URL)

		result, err := resolver.Resolve(context.Background(), "opensea.io/collection/slugged")

		require.NoError(t, err)
		assert.Equal(t, "https://opensea.io/collection/slugged", result.CollectionURL)
	})

	t.Run("opensea api failure keeps slug as collection name", func(t *testing.T) {
		opensea := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer opensea.Close()

		resolver := nft.NewResolverWithBaseURL(
			nft.NewObjktClient(nil, zap.NewNop()), localOnlyClient(opensea), zap.NewNop(), opensea.URL)

		result, err := resolver.Resolve(context.Background(), "https://opensea.io/collection/cosmic-dreams")

		require.NoError(t, err, "resolution never fails once the url is accepted")
		assert.Equal(t, "cosmic-dreams", result.CollectionName)
		assert.Empty(t, result.ImageURL)
	})

	t.Run("resolves objkt collection via first token image", func(t *testing.T) {
		objktAPI := objktServer(t, `[{"display_uri": "ipfs://QmCover"}]`)
		defer objktAPI.Close()

		objkt := nft.NewObjktClientWithBaseURL(objktAPI.Client(), zap.NewNop(), objktAPI.URL)
		resolver := nft.NewResolver(objkt, objktAPI.Client(), zap.NewNop())

		result, err := resolver.Resolve(context.Background(), "https://objkt.com/collections/KT1abcDEF123")

		require.NoError(t, err)
		assert.Equal(t, "https://ipfs.io/ipfs/QmCover", result.ImageURL)
		assert.Equal(t, "KT1abcDEF123", result.CollectionName)
	})
}

func TestExtractOGImage(t *testing.T) {
	t.Run("finds the og:image tag", func(t *testing.T) {
		html := `<html><head><meta property="og:image" content="https://img.example/og.png"></head></html>`

		assert.Equal(t, "https://img.example/og.png", nft.ExtractOGImage(html))
	})

	t.Run("matches single-quoted attributes", func(t *testing.T) {
		html := `<meta property='og:image' content='https://img.example/og2.png'>`

		assert.Equal(t, "https://img.example/og2.png", nft.ExtractOGImage(html))
	})

	t.Run("returns empty when absent", func(t *testing.T) {
		assert.Empty(t, nft.ExtractOGImage("<html><body>nothing</body></html>"))
	})
}
