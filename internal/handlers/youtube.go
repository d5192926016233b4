package handlers

import (
	"context"
	"net/http"

	"github.com/cosmichub/api/internal/video"
)

// VideoHandler serves the YouTube duration lookup.
type VideoHandler struct {
	lookup *video.Lookup
}

// NewVideoHandler creates a new video metadata handler.
func NewVideoHandler(lookup *video.Lookup) *VideoHandler {
	return &VideoHandler{lookup: lookup}
}

// GetDuration validates the video id and resolves its duration through the
// provider fallback chain. A valid id never fails: the chain ends at a fixed
// default.
func (h *VideoHandler) GetDuration(ctx context.Context, req *YouTubeDurationRequest) (*YouTubeDurationResponse, error) {
	resp := &YouTubeDurationResponse{}

	if req.VideoID == "" {
		resp.Status = http.StatusBadRequest
		resp.Body.Error = "Missing or invalid videoId"

		return resp, nil
	}

	if !video.ValidVideoID(req.VideoID) {
		resp.Status = http.StatusBadRequest
		resp.Body.Error = "Invalid videoId format"

		return resp, nil
	}

	duration := h.lookup.Duration(ctx, req.VideoID)

	resp.Status = http.StatusOK
	resp.Body.Success = true
	resp.Body.VideoID = req.VideoID
	resp.Body.Duration = duration.Seconds
	resp.Body.FormattedDuration = duration.Formatted
	resp.Body.Title = duration.Title
	resp.Body.Note = duration.Note

	return resp, nil
}
