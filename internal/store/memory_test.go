package store_test

import (
	"context"
	"testing"

	"github.com/cosmichub/api/internal/links"
	"github.com/cosmichub/api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Load(t *testing.T) {
	t.Run("returns ErrNotFound before first save", func(t *testing.T) {
		s := store.NewMemoryStore()

		_, err := s.Load(context.Background())

		assert.ErrorIs(t, err, links.ErrNotFound)
	})

	t.Run("returns saved collection", func(t *testing.T) {
		s := store.NewMemoryStore()
		data := links.LinksData{Links: []links.Link{
			{URL: "https://example.com", Date: "2024-06-01T00:00:00Z"},
		}}

		err := s.Save(context.Background(), data)
		require.NoError(t, err)

		got, err := s.Load(context.Background())

		require.NoError(t, err)
		assert.Equal(t, data, got)
	})
}

func TestMemoryStore_Save(t *testing.T) {
	t.Run("replaces the collection wholesale", func(t *testing.T) {
		s := store.NewMemoryStore()

		_ = s.Save(context.Background(), links.LinksData{Links: []links.Link{
			{URL: "https://a.example.com", Date: "2024-01-01T00:00:00Z"},
		}})

		err := s.Save(context.Background(), links.LinksData{Links: []links.Link{
			{URL: "https://b.example.com", Date: "2024-06-01T00:00:00Z"},
		}})
		require.NoError(t, err)

		got, err := s.Load(context.Background())
		require.NoError(t, err)
		require.Len(t, got.Links, 1)
		assert.Equal(t, "https://b.example.com", got.Links[0].URL)
	})

	t.Run("stored collection is isolated from caller mutations", func(t *testing.T) {
		s := store.NewMemoryStore()
		data := links.LinksData{Links: []links.Link{
			{URL: "https://example.com", Date: "2024-06-01T00:00:00Z"},
		}}

		_ = s.Save(context.Background(), data)
		data.Links[0].URL = "https://mutated.example.com"

		got, err := s.Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "https://example.com", got.Links[0].URL)
	})
}

func TestMemoryStore_Seed(t *testing.T) {
	s := store.NewMemoryStore()
	s.Seed(links.LinksData{Links: []links.Link{
		{URL: "https://example.com", Date: "2024-06-01T00:00:00Z"},
	}})

	got, err := s.Load(context.Background())

	require.NoError(t, err)
	assert.Len(t, got.Links, 1)
}
