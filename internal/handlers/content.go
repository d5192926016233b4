package handlers

import (
	"context"
	"time"

	"github.com/cosmichub/api/internal/cms"
	"github.com/cosmichub/api/internal/menu"
)

// ContentHandler serves the static site content: menu, CMS schema, health.
type ContentHandler struct {
	menu *menu.Loader
}

// NewContentHandler creates a new static content handler.
func NewContentHandler(menuLoader *menu.Loader) *ContentHandler {
	return &ContentHandler{menu: menuLoader}
}

// GetMenu returns the menu document. It never hard-fails: missing or invalid
// sources fall through to compiled-in defaults.
func (h *ContentHandler) GetMenu(_ context.Context, _ *struct{}) (*MenuResponse, error) {
	return &MenuResponse{Body: h.menu.Load()}, nil
}

// CMSConfigResponse is the static CMS schema document.
type CMSConfigResponse struct {
	Body cms.Config
}

// GetCMSConfig returns the CMS collection schema.
func (h *ContentHandler) GetCMSConfig(_ context.Context, _ *struct{}) (*CMSConfigResponse, error) {
	return &CMSConfigResponse{Body: cms.DefaultConfig()}, nil
}

// Health reports liveness.
func (h *ContentHandler) Health(_ context.Context, _ *struct{}) (*HealthResponse, error) {
	resp := &HealthResponse{}
	resp.Body.Status = "ok"
	resp.Body.Timestamp = time.Now().UTC().Format(time.RFC3339)

	return resp, nil
}
