package links

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/cosmichub/api/internal/errx"
	"go.uber.org/zap"
)

// ErrNotFound reports that the remote collection document does not exist yet.
// Callers treat it as an empty collection, not a failure.
var ErrNotFound = errors.New("links document not found")

// Store defines the interface for loading and saving the link collection
// document. Load must return the document as last persisted; Save replaces it
// wholesale.
type Store interface {
	Load(ctx context.Context) (LinksData, error)
	Save(ctx context.Context, data LinksData) error
}

// Service enforces the collection-level invariants (URL uniqueness, ordering)
// around raw document reads and writes. It holds no state between requests:
// every call re-reads the remote document.
type Service struct {
	store  Store
	logger *zap.Logger
	now    func() time.Time
}

// NewService creates a new link list service.
func NewService(store Store, logger *zap.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// NewServiceWithClock creates a service with an injected clock.
func NewServiceWithClock(store Store, logger *zap.Logger, now func() time.Time) *Service {
	return &Service{
		store:  store,
		logger: logger,
		now:    now,
	}
}

// List returns the collection sorted descending by date. Read failures are
// non-fatal: the list degrades to empty rather than surfacing an error.
func (s *Service) List(ctx context.Context) []Link {
	data, err := s.store.Load(ctx)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.logger.Error("failed to load links, degrading to empty", zap.Error(err))
		}

		return []Link{}
	}

	return SortByDate(data.Links)
}

// Add validates the URL, appends it with the current timestamp, dedupes
// first-seen-wins, sorts, and writes the collection back. Appending a URL that
// already exists leaves the collection unchanged on content: the appended
// entry loses the dedup and the earlier occurrence survives.
func (s *Service) Add(ctx context.Context, rawURL string) (Link, []Link, error) {
	const op = "links.Service.Add"

	if err := validateURL(rawURL); err != nil {
		return Link{}, nil, errx.E(op, errx.Invalid, err)
	}

	current := s.List(ctx)

	newLink := Link{
		URL:  rawURL,
		Date: s.now().UTC().Format(time.RFC3339),
	}

	updated := append(current, newLink)
	updated = Dedupe(updated)
	updated = SortByDate(updated)

	if err := s.store.Save(ctx, LinksData{Links: updated}); err != nil {
		return Link{}, nil, errx.E(op, errx.Persistence, err)
	}

	return newLink, updated, nil
}

func validateURL(rawURL string) error {
	if rawURL == "" {
		return errors.New("url is required")
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid url format: %w", err)
	}

	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return errors.New("url must be absolute with an http or https scheme")
	}

	return nil
}
