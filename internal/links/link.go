package links

import (
	"sort"
	"time"
)

// Link is a single saved link. URL is the identity key: exact-string match,
// no normalization.
type Link struct {
	URL  string `doc:"The saved URL"                 json:"url"`
	Date string `doc:"ISO-8601 timestamp of saving"  json:"date"`
}

// LinksData is the persisted collection, stored as one JSON document.
type LinksData struct {
	Links []Link `json:"links"`
}

// Dedupe removes entries sharing a URL, keeping the first occurrence found
// when scanning in array order.
func Dedupe(links []Link) []Link {
	seen := make(map[string]struct{}, len(links))
	out := make([]Link, 0, len(links))

	for _, link := range links {
		if _, ok := seen[link.URL]; ok {
			continue
		}

		seen[link.URL] = struct{}{}
		out = append(out, link)
	}

	return out
}

// SortByDate returns a copy sorted descending by parsed date. Entries with
// unparseable dates sort last; equal timestamps keep their relative order.
func SortByDate(links []Link) []Link {
	out := make([]Link, len(links))
	copy(out, links)

	sort.SliceStable(out, func(i, j int) bool {
		return parseDate(out[i].Date).After(parseDate(out[j].Date))
	})

	return out
}

func parseDate(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}

	return t
}
