package links_test

import (
	"testing"

	"github.com/cosmichub/api/internal/links"
	"github.com/stretchr/testify/assert"
)

func TestDedupe(t *testing.T) {
	t.Run("keeps first occurrence of a duplicated url", func(t *testing.T) {
		input := []links.Link{
			{URL: "https://a.example", Date: "2024-01-01T00:00:00Z"},
			{URL: "https://b.example", Date: "2024-01-02T00:00:00Z"},
			{URL: "https://a.example", Date: "2024-01-03T00:00:00Z"},
		}

		out := links.Dedupe(input)

		assert.Equal(t, []links.Link{
			{URL: "https://a.example", Date: "2024-01-01T00:00:00Z"},
			{URL: "https://b.example", Date: "2024-01-02T00:00:00Z"},
		}, out)
	})

	t.Run("treats urls as exact strings", func(t *testing.T) {
		input := []links.Link{
			{URL: "https://a.example", Date: "2024-01-01T00:00:00Z"},
			{URL: "https://a.example/", Date: "2024-01-02T00:00:00Z"},
			{URL: "HTTPS://A.EXAMPLE", Date: "2024-01-03T00:00:00Z"},
		}

		out := links.Dedupe(input)

		assert.Len(t, out, 3, "trailing slash and case variants are distinct links")
	})

	t.Run("empty input yields empty output", func(t *testing.T) {
		assert.Empty(t, links.Dedupe(nil))
	})
}

func TestSortByDate(t *testing.T) {
	t.Run("sorts descending by date", func(t *testing.T) {
		input := []links.Link{
			{URL: "https://old.example", Date: "2023-06-01T00:00:00Z"},
			{URL: "https://new.example", Date: "2024-06-01T00:00:00Z"},
			{URL: "https://mid.example", Date: "2024-01-01T00:00:00Z"},
		}

		out := links.SortByDate(input)

		assert.Equal(t, "https://new.example", out[0].URL)
		assert.Equal(t, "https://mid.example", out[1].URL)
		assert.Equal(t, "https://old.example", out[2].URL)
	})

	t.Run("does not mutate the input slice", func(t *testing.T) {
		input := []links.Link{
			{URL: "https://old.example", Date: "2023-06-01T00:00:00Z"},
			{URL: "https://new.example", Date: "2024-06-01T00:00:00Z"},
		}

		_ = links.SortByDate(input)

		assert.Equal(t, "https://old.example", input[0].URL)
	})

	t.Run("unparseable dates sort last", func(t *testing.T) {
		input := []links.Link{
			{URL: "https://bad.example", Date: "not-a-date"},
			{URL: "https://good.example", Date: "2024-01-01T00:00:00Z"},
		}

		out := links.SortByDate(input)

		assert.Equal(t, "https://good.example", out[0].URL)
		assert.Equal(t, "https://bad.example", out[1].URL)
	})

	t.Run("equal dates keep relative order", func(t *testing.T) {
		input := []links.Link{
			{URL: "https://first.example", Date: "2024-01-01T00:00:00Z"},
			{URL: "https://second.example", Date: "2024-01-01T00:00:00Z"},
		}

		out := links.SortByDate(input)

		assert.Equal(t, "https://first.example", out[0].URL)
		assert.Equal(t, "https://second.example", out[1].URL)
	})
}
