// Package library owns the application's content collections: it fetches
// published-sheet TSV, normalizes it, and falls back to the bundled datasets
// whenever live retrieval fails. Consumers never observe a failure state.
package library

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/capyhoc/capyhoc/internal/platform/cache"
)

// placeholderMarkers flag sheet URLs that were never configured. Template
// deployments ship with these literals in place of real publish links.
var placeholderMarkers = []string{"YOUR_PUBLISHED", "YOUR_NEW_SHEET_URL", "..."}

// IsPlaceholderURL reports whether a sheet URL is unset or still a template
// placeholder.
func IsPlaceholderURL(url string) bool {
	if url == "" {
		return true
	}
	for _, m := range placeholderMarkers {
		if strings.Contains(url, m) {
			return true
		}
	}
	return false
}

// Fetcher retrieves raw sheet text over HTTP with an optional read-through
// cache. It makes exactly one attempt per call: no retries, no partial
// results.
type Fetcher struct {
	client *http.Client
	cache  *cache.Cache // nil disables caching
	ttl    time.Duration
}

// NewFetcher creates a fetcher. A nil client uses http.DefaultClient; a nil
// cache disables the read-through layer.
func NewFetcher(client *http.Client, c *cache.Cache, ttl time.Duration) *Fetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &Fetcher{client: client, cache: c, ttl: ttl}
}

// Text fetches the raw TSV for a sheet URL. The second return is false when
// the URL is a placeholder or retrieval failed for any reason; callers then
// substitute their fallback dataset. Cache errors count as misses, never as
// failures.
func (f *Fetcher) Text(ctx context.Context, url string) (string, bool) {
	if IsPlaceholderURL(url) {
		return "", false
	}

	if f.cache != nil {
		text, err := f.cache.GetSheet(ctx, url)
		if err != nil {
			slog.Warn("sheet cache read failed", "error", err)
		} else if text != "" {
			slog.Debug("sheet served from cache", "url", url)
			return text, true
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		slog.Warn("invalid sheet URL", "url", url, "error", err)
		return "", false
	}

	resp, err := f.client.Do(req)
	if err != nil {
		slog.Warn("sheet fetch failed, using fallback data", "url", url, "error", err)
		return "", false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		slog.Warn("sheet fetch returned non-success status, using fallback data",
			"url", url, "status", resp.StatusCode)
		return "", false
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		slog.Warn("reading sheet body failed, using fallback data", "url", url, "error", err)
		return "", false
	}

	text := string(body)
	if f.cache != nil {
		if err := f.cache.SetSheet(ctx, url, text, f.ttl); err != nil {
			slog.Warn("sheet cache write failed", "error", err)
		}
	}
	return text, true
}
