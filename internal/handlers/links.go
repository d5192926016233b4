package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/cosmichub/api/internal/analytics"
	"github.com/cosmichub/api/internal/errx"
	"github.com/cosmichub/api/internal/links"
	"github.com/cosmichub/api/internal/messaging"
	"go.uber.org/zap"
)

// LinksHandler handles the link collection endpoints.
type LinksHandler struct {
	service            *links.Service
	publishLinkCreated messaging.Publish[analytics.LinkCreatedEvent]
	logger             *zap.Logger
}

// NewLinksHandler creates a new links handler.
func NewLinksHandler(
	service *links.Service,
	publishLinkCreated messaging.Publish[analytics.LinkCreatedEvent],
	logger *zap.Logger,
) *LinksHandler {
	return &LinksHandler{
		service:            service,
		publishLinkCreated: publishLinkCreated,
		logger:             logger,
	}
}

// GetLinks returns the collection sorted descending by date. Read failures
// degrade to an empty list, so this never errors.
func (h *LinksHandler) GetLinks(ctx context.Context, _ *struct{}) (*GetLinksResponse, error) {
	resp := &GetLinksResponse{}
	resp.Body.Links = h.service.List(ctx)
	resp.Body.Success = true

	return resp, nil
}

// SaveLink validates and appends a link, writing the deduplicated, sorted
// collection back to the remote document.
func (h *LinksHandler) SaveLink(ctx context.Context, req *SaveLinkRequest) (*SaveLinkResponse, error) {
	resp := &SaveLinkResponse{}

	if req.Body.URL == "" {
		resp.Status = http.StatusBadRequest
		resp.Body.Error = "URL is required and must be a string"

		return resp, nil
	}

	newLink, collection, err := h.service.Add(ctx, req.Body.URL)
	if err != nil {
		switch errx.KindOf(err) {
		case errx.Invalid:
			resp.Status = http.StatusBadRequest
			resp.Body.Error = "Invalid URL format"
		case errx.Config:
			h.logger.Error("link store misconfigured", zap.Error(err))

			resp.Status = http.StatusInternalServerError
			resp.Body.Error = "Failed to save link"
		default:
			h.logger.Error("failed to save link", zap.String("url", req.Body.URL), zap.Error(err))

			resp.Status = http.StatusInternalServerError
			resp.Body.Error = "Failed to save link to GitHub"
		}

		return resp, nil
	}

	meta := RequestMetaFromContext(ctx)
	event := &analytics.LinkCreatedEvent{
		URL:       newLink.URL,
		Date:      newLink.Date,
		CreatedAt: time.Now(),
		ClientIP:  meta.ClientIP,
		UserAgent: meta.UserAgent,
	}

	if err := h.publishLinkCreated(event); err != nil {
		h.logger.Error("failed to publish link created event",
			zap.String("url", event.URL),
			zap.Error(err),
		)
	}

	resp.Status = http.StatusOK
	resp.Body.Success = true
	resp.Body.Message = "Link saved successfully"
	resp.Body.Link = &newLink
	resp.Body.Links = collection

	return resp, nil
}
