package github_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cosmichub/api/internal/errx"
	"github.com/cosmichub/api/internal/github"
	"github.com/cosmichub/api/internal/links"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() github.Config {
	return github.Config{Token: "ghp_test", Owner: "cosmic-hub", Repo: "cosmic-hub-site"}
}

func TestConfigValidate(t *testing.T) {
	t.Run("accepts complete config", func(t *testing.T) {
		require.NoError(t, testConfig().Validate())
	})

	t.Run("reports missing token", func(t *testing.T) {
		cfg := testConfig()
		cfg.Token = ""

		err := cfg.Validate()

		require.Error(t, err)
		assert.Equal(t, errx.Config, errx.KindOf(err))
		assert.Contains(t, err.Error(), "GITHUB_TOKEN")
	})

	t.Run("reports missing owner or repo", func(t *testing.T) {
		cfg := testConfig()
		cfg.Repo = ""

		err := cfg.Validate()

		require.Error(t, err)
		assert.Equal(t, errx.Config, errx.KindOf(err))
		assert.Contains(t, err.Error(), "GITHUB_OWNER and GITHUB_REPO")
	})
}

func TestClientGetFile(t *testing.T) {
	t.Run("decodes content and returns sha", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/repos/cosmic-hub/cosmic-hub-site/contents/data/links.json", r.URL.Path)
			assert.Equal(t, "Bearer ghp_test", r.Header.Get("Authorization"))
			assert.Equal(t, "application/vnd.github.v3+json", r.Header.Get("Accept"))

			_ = json.NewEncoder(w).Encode(map[string]string{
				"content": base64.StdEncoding.EncodeToString([]byte(`{"links":[]}`)),
				"sha":     "abc123",
			})
		}))
		defer server.Close()

		client := github.NewClientWithBaseURL(testConfig(), server.Client(), server.URL)

		content, sha, err := client.GetFile(context.Background(), "data/links.json")

		require.NoError(t, err)
		assert.JSONEq(t, `{"links":[]}`, string(content))
		assert.Equal(t, "abc123", sha)
	})

	t.Run("missing file reports not found", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := github.NewClientWithBaseURL(testConfig(), server.Client(), server.URL)

		_, _, err := client.GetFile(context.Background(), "data/links.json")

		require.ErrorIs(t, err, links.ErrNotFound)
		assert.Equal(t, errx.NotFound, errx.KindOf(err))
	})

	t.Run("api errors carry status and body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"message":"Bad credentials"}`))
		}))
		defer server.Close()

		client := github.NewClientWithBaseURL(testConfig(), server.Client(), server.URL)

		_, _, err := client.GetFile(context.Background(), "data/links.json")

		require.Error(t, err)
		assert.Equal(t, errx.Upstream, errx.KindOf(err))
		assert.Contains(t, err.Error(), "403")
		assert.Contains(t, err.Error(), "Bad credentials")
	})

	t.Run("missing credentials fail before any request", func(t *testing.T) {
		requests := 0
		server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
			requests++
		}))
		defer server.Close()

		client := github.NewClientWithBaseURL(github.Config{}, server.Client(), server.URL)

		_, _, err := client.GetFile(context.Background(), "data/links.json")

		require.Error(t, err)
		assert.Equal(t, errx.Config, errx.KindOf(err))
		assert.Zero(t, requests, "no network call with incomplete config")
	})
}

func TestClientPutFile(t *testing.T) {
	t.Run("sends base64 content and commit message", func(t *testing.T) {
		var payload struct {
			Message string `json:"message"`
			Content string `json:"content"`
			SHA     string `json:"sha"`
		}

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPut, r.Method)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			w.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		client := github.NewClientWithBaseURL(testConfig(), server.Client(), server.URL)

		err := client.PutFile(context.Background(), "data/links.json", []byte(`{"links":[]}`), "", "Update links: now")

		require.NoError(t, err)
		assert.Equal(t, "Update links: now", payload.Message)
		assert.Empty(t, payload.SHA)

		decoded, err := base64.StdEncoding.DecodeString(payload.Content)
		require.NoError(t, err)
		assert.JSONEq(t, `{"links":[]}`, string(decoded))
	})

	t.Run("includes sha when overwriting", func(t *testing.T) {
		var payload map[string]any

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := github.NewClientWithBaseURL(testConfig(), server.Client(), server.URL)

		err := client.PutFile(context.Background(), "data/links.json", []byte("{}"), "abc123", "msg")

		require.NoError(t, err)
		assert.Equal(t, "abc123", payload["sha"])
	})

	t.Run("surfaces api failures", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusConflict)
			_, _ = w.Write([]byte(`{"message":"sha mismatch"}`))
		}))
		defer server.Close()

		client := github.NewClientWithBaseURL(testConfig(), server.Client(), server.URL)

		err := client.PutFile(context.Background(), "data/links.json", []byte("{}"), "stale", "msg")

		require.Error(t, err)
		assert.Equal(t, errx.Upstream, errx.KindOf(err))
		assert.Contains(t, err.Error(), "409")
	})
}
