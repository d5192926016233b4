package links_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cosmichub/api/internal/errx"
	"github.com/cosmichub/api/internal/links"
	"github.com/cosmichub/api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type failingStore struct {
	loadErr error
	saveErr error
	data    links.LinksData
}

func (s *failingStore) Load(_ context.Context) (links.LinksData, error) {
	if s.loadErr != nil {
		return links.LinksData{}, s.loadErr
	}

	return s.data, nil
}

func (s *failingStore) Save(_ context.Context, data links.LinksData) error {
	if s.saveErr != nil {
		return s.saveErr
	}

	s.data = data

	return nil
}

func fixedClock(s string) func() time.Time {
	t, _ := time.Parse(time.RFC3339, s)

	return func() time.Time { return t }
}

func TestServiceList(t *testing.T) {
	t.Run("returns empty list when document does not exist", func(t *testing.T) {
		service := links.NewService(store.NewMemoryStore(), zap.NewNop())

		got := service.List(context.Background())

		require.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("degrades to empty list on load failure", func(t *testing.T) {
		backing := &failingStore{loadErr: errors.New("upstream exploded")}
		service := links.NewService(backing, zap.NewNop())

		got := service.List(context.Background())

		require.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("returns links sorted newest first", func(t *testing.T) {
		backing := store.NewMemoryStore()
		backing.Seed(links.LinksData{Links: []links.Link{
			{URL: "https://old.example", Date: "2023-01-01T00:00:00Z"},
			{URL: "https://new.example", Date: "2024-01-01T00:00:00Z"},
		}})
		service := links.NewService(backing, zap.NewNop())

		got := service.List(context.Background())

		require.Len(t, got, 2)
		assert.Equal(t, "https://new.example", got[0].URL)
	})
}

func TestServiceAdd(t *testing.T) {
	t.Run("appends link with current timestamp", func(t *testing.T) {
		backing := store.NewMemoryStore()
		service := links.NewServiceWithClock(backing, zap.NewNop(), fixedClock("2024-05-01T12:00:00Z"))

		link, all, err := service.Add(context.Background(), "https://example.com/post")

		require.NoError(t, err)
		assert.Equal(t, "https://example.com/post", link.URL)
		assert.Equal(t, "2024-05-01T12:00:00Z", link.Date)
		require.Len(t, all, 1)
	})

	t.Run("keeps earlier entry when url is re-added", func(t *testing.T) {
		backing := store.NewMemoryStore()
		backing.Seed(links.LinksData{Links: []links.Link{
			{URL: "https://example.com", Date: "2024-01-01T00:00:00Z"},
		}})
		service := links.NewServiceWithClock(backing, zap.NewNop(), fixedClock("2024-05-01T12:00:00Z"))

		_, all, err := service.Add(context.Background(), "https://example.com")

		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, "2024-01-01T00:00:00Z", all[0].Date, "original timestamp survives")
	})

	t.Run("returns collection sorted newest first", func(t *testing.T) {
		backing := store.NewMemoryStore()
		backing.Seed(links.LinksData{Links: []links.Link{
			{URL: "https://future.example", Date: "2030-01-01T00:00:00Z"},
		}})
		service := links.NewServiceWithClock(backing, zap.NewNop(), fixedClock("2024-05-01T12:00:00Z"))

		_, all, err := service.Add(context.Background(), "https://now.example")

		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, "https://future.example", all[0].URL)
		assert.Equal(t, "https://now.example", all[1].URL)
	})

	t.Run("rejects empty url", func(t *testing.T) {
		service := links.NewService(store.NewMemoryStore(), zap.NewNop())

		_, _, err := service.Add(context.Background(), "")

		require.Error(t, err)
		assert.Equal(t, errx.Invalid, errx.KindOf(err))
	})

	t.Run("rejects non-http schemes", func(t *testing.T) {
		service := links.NewService(store.NewMemoryStore(), zap.NewNop())

		for _, raw := range []string{"ftp://example.com", "javascript:alert(1)", "example.com", "/relative/path"} {
			_, _, err := service.Add(context.Background(), raw)

			require.Error(t, err, "url %q should be rejected", raw)
			assert.Equal(t, errx.Invalid, errx.KindOf(err))
		}
	})

	t.Run("surfaces save failures", func(t *testing.T) {
		backing := &failingStore{saveErr: errors.New("write denied")}
		service := links.NewService(backing, zap.NewNop())

		_, _, err := service.Add(context.Background(), "https://example.com")

		require.Error(t, err)
		assert.Equal(t, errx.Persistence, errx.KindOf(err))
	})

	t.Run("load failure during add still writes the new link", func(t *testing.T) {
		backing := &failingStore{loadErr: errors.New("read failed")}
		service := links.NewServiceWithClock(backing, zap.NewNop(), fixedClock("2024-05-01T12:00:00Z"))

		_, all, err := service.Add(context.Background(), "https://example.com")

		require.NoError(t, err)
		require.Len(t, all, 1)
	})
}
