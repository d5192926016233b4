package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/cosmichub/api/internal/errx"
	"github.com/cosmichub/api/internal/links"
)

// DocumentPath is the fixed location of the link collection within the
// configured repository.
const DocumentPath = "data/links.json"

// LinksStore implements links.Store on top of the contents API client. It is
// stateless: the version token is fetched fresh on every write attempt.
type LinksStore struct {
	client *Client
	now    func() time.Time
}

// NewLinksStore creates a GitHub-backed link collection store.
func NewLinksStore(client *Client) *LinksStore {
	return &LinksStore{
		client: client,
		now:    time.Now,
	}
}

// Load fetches and decodes the collection document. A missing document
// surfaces as links.ErrNotFound; callers treat it as an empty collection.
func (s *LinksStore) Load(ctx context.Context) (links.LinksData, error) {
	const op = "github.LinksStore.Load"

	content, _, err := s.client.GetFile(ctx, DocumentPath)
	if err != nil {
		return links.LinksData{}, err
	}

	var data links.LinksData
	if err = json.Unmarshal(content, &data); err != nil {
		return links.LinksData{}, errx.E(op, errx.Upstream, fmt.Errorf("decoding links document: %w", err))
	}

	return data, nil
}

// Save overwrites the collection document. The current SHA is read first so
// the overwrite is version-checked; a not-found read means first write and the
// document is created without a token.
func (s *LinksStore) Save(ctx context.Context, data links.LinksData) error {
	content, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return errx.E("github.LinksStore.Save", errx.Internal, err)
	}

	sha := ""

	_, currentSHA, err := s.client.GetFile(ctx, DocumentPath)
	if err == nil {
		sha = currentSHA
	} else if !errors.Is(err, links.ErrNotFound) {
		return err
	}

	message := fmt.Sprintf("Update links: %s", s.now().UTC().Format(time.RFC3339))

	return s.client.PutFile(ctx, DocumentPath, content, sha, message)
}
