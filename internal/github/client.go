// Package github implements the link repository client: authenticated
// read/write access to a single JSON document stored in a GitHub repository
// through the contents API, with the file SHA as the optimistic-concurrency
// token.
package github

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/cosmichub/api/internal/errx"
	"github.com/cosmichub/api/internal/links"
)

const defaultBaseURL = "https://api.github.com"

// Client performs raw file operations against the contents API.
type Client struct {
	cfg     Config
	baseURL string
	http    *http.Client
}

// NewClient creates a contents API client. The configuration is validated on
// every call rather than here, so a client with missing credentials can be
// constructed but never reaches the network.
func NewClient(cfg Config, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		cfg:     cfg,
		baseURL: defaultBaseURL,
		http:    httpClient,
	}
}

// NewClientWithBaseURL creates a client pointed at a non-default API host.
func NewClientWithBaseURL(cfg Config, httpClient *http.Client, baseURL string) *Client {
	c := NewClient(cfg, httpClient)
	c.baseURL = baseURL

	return c
}

type fileResponse struct {
	Content string `json:"content"`
	SHA     string `json:"sha"`
}

type putPayload struct {
	Message string `json:"message"`
	Content string `json:"content"`
	SHA     string `json:"sha,omitempty"`
}

// GetFile fetches a file and returns its decoded content together with the
// SHA version token needed for a safe overwrite. A missing file is reported
// as links.ErrNotFound.
func (c *Client) GetFile(ctx context.Context, path string) ([]byte, string, error) {
	const op = "github.Client.GetFile"

	if err := c.cfg.Validate(); err != nil {
		return nil, "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.contentsURL(path), nil)
	if err != nil {
		return nil, "", errx.E(op, errx.Internal, err)
	}

	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, "", errx.E(op, errx.Upstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, "", errx.E(op, errx.NotFound, links.ErrNotFound)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, "", errx.E(op, errx.Upstream, apiError(resp))
	}

	var file fileResponse
	if err = json.NewDecoder(resp.Body).Decode(&file); err != nil {
		return nil, "", errx.E(op, errx.Upstream, err)
	}

	content, err := base64.StdEncoding.DecodeString(file.Content)
	if err != nil {
		return nil, "", errx.E(op, errx.Upstream, fmt.Errorf("decoding file content: %w", err))
	}

	return content, file.SHA, nil
}

// PutFile upserts a file. An empty sha creates the file; a non-empty sha asks
// the remote store for a version-checked overwrite. Every successful call
// becomes a new commit in the repository history.
func (c *Client) PutFile(ctx context.Context, path string, content []byte, sha, message string) error {
	const op = "github.Client.PutFile"

	if err := c.cfg.Validate(); err != nil {
		return err
	}

	payload := putPayload{
		Message: message,
		Content: base64.StdEncoding.EncodeToString(content),
		SHA:     sha,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return errx.E(op, errx.Internal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.contentsURL(path), bytes.NewReader(body))
	if err != nil {
		return errx.E(op, errx.Internal, err)
	}

	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return errx.E(op, errx.Upstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errx.E(op, errx.Upstream, apiError(resp))
	}

	return nil
}

func (c *Client) contentsURL(path string) string {
	return fmt.Sprintf("%s/repos/%s/%s/contents/%s", c.baseURL, c.cfg.Owner, c.cfg.Repo, path)
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("Content-Type", "application/json")
}

// apiError captures the HTTP status and raw response body for diagnosis.
func apiError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)

	return fmt.Errorf("github api error: %d - %s", resp.StatusCode, string(body))
}
