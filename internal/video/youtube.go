// Package video looks up YouTube video durations without an API key, through
// a fallback chain: noembed (real duration), YouTube oEmbed (title only,
// estimated duration), then a fixed default. The lookup never fails for a
// valid video id.
package video

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"

	"go.uber.org/zap"
)

const (
	defaultNoembedBase = "https://noembed.com"
	defaultOEmbedBase  = "https://www.youtube.com"

	// DefaultDurationSeconds is used when neither provider reports a real
	// duration. Most music videos land in the 3-8 minute range.
	DefaultDurationSeconds = 300
)

var videoIDRe = regexp.MustCompile(`^[a-zA-Z0-9_-]{11}$`)

// ValidVideoID reports whether id has the canonical 11-character shape.
func ValidVideoID(id string) bool {
	return videoIDRe.MatchString(id)
}

// Duration is a resolved video duration.
type Duration struct {
	Seconds   int
	Formatted string
	Title     string
	Note      string
}

// Lookup resolves durations through the provider chain.
type Lookup struct {
	noembedBase string
	oembedBase  string
	http        *http.Client
	logger      *zap.Logger
}

// NewLookup creates a duration lookup.
func NewLookup(httpClient *http.Client, logger *zap.Logger) *Lookup {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Lookup{
		noembedBase: defaultNoembedBase,
		oembedBase:  defaultOEmbedBase,
		http:        httpClient,
		logger:      logger,
	}
}

// NewLookupWithBaseURLs creates a lookup pointed at non-default hosts.
func NewLookupWithBaseURLs(httpClient *http.Client, logger *zap.Logger, noembedBase, oembedBase string) *Lookup {
	l := NewLookup(httpClient, logger)
	l.noembedBase = noembedBase
	l.oembedBase = oembedBase

	return l
}

// Duration returns the video duration. noembed may report the real length;
// oEmbed confirms the title but not the length, so its result is estimated;
// if both fail, a fixed default is returned.
func (l *Lookup) Duration(ctx context.Context, videoID string) Duration {
	watchURL := "https://www.youtube.com/watch?v=" + videoID

	if d, ok := l.fromNoembed(ctx, watchURL); ok {
		return d
	}

	if title, ok := l.titleFromOEmbed(ctx, watchURL); ok {
		return Duration{
			Seconds:   DefaultDurationSeconds,
			Formatted: FormatDuration(DefaultDurationSeconds),
			Title:     title,
			Note:      "Duration estimated (API limitation)",
		}
	}

	return Duration{
		Seconds:   DefaultDurationSeconds,
		Formatted: FormatDuration(DefaultDurationSeconds),
		Note:      "Using default duration",
	}
}

func (l *Lookup) fromNoembed(ctx context.Context, watchURL string) (Duration, bool) {
	var data struct {
		Duration float64 `json:"duration"`
		Title    string  `json:"title"`
	}

	if !l.getJSON(ctx, l.noembedBase+"/embed?url="+watchURL, &data) {
		return Duration{}, false
	}

	// Some videos come back without a duration; fall through to oEmbed.
	if data.Duration <= 0 {
		return Duration{}, false
	}

	seconds := int(data.Duration)
	title := data.Title

	if title == "" {
		title = "Unknown"
	}

	return Duration{
		Seconds:   seconds,
		Formatted: FormatDuration(seconds),
		Title:     title,
	}, true
}

func (l *Lookup) titleFromOEmbed(ctx context.Context, watchURL string) (string, bool) {
	var data struct {
		Title string `json:"title"`
	}

	if !l.getJSON(ctx, l.oembedBase+"/oembed?url="+watchURL+"&format=json", &data) {
		return "", false
	}

	if data.Title == "" {
		return "Unknown", true
	}

	return data.Title, true
}

func (l *Lookup) getJSON(ctx context.Context, rawURL string, out any) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return false
	}

	resp, err := l.http.Do(req)
	if err != nil {
		l.logger.Warn("duration provider request failed", zap.String("url", rawURL), zap.Error(err))

		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return false
	}

	return json.NewDecoder(resp.Body).Decode(out) == nil
}

// FormatDuration renders seconds as "M:SS".
func FormatDuration(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
