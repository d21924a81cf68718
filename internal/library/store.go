package library

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/capyhoc/capyhoc/internal/catalog"
	"github.com/capyhoc/capyhoc/internal/sheet"
)

// Sources holds the published-sheet URL for each collection. Placeholder or
// empty URLs pin that collection to its bundled fallback data.
type Sources struct {
	Videos     string
	Ebooks     string
	Lectures   string
	Documents  string
	Worksheets string
}

// Library owns the five content collections. Each load cycle replaces a
// collection wholesale; there is no incremental update. Until the first Load
// completes, consumers see the bundled fallback data.
type Library struct {
	fetcher *Fetcher
	sources Sources
	bundle  *Bundle

	mu         sync.RWMutex
	videos     []catalog.ResourceItem
	ebooks     []catalog.ResourceItem
	lectures   []catalog.ResourceItem
	documents  []catalog.ResourceItem
	worksheets []catalog.Worksheet
	loadedAt   time.Time
}

// New creates a library seeded with the bundle's data.
func New(fetcher *Fetcher, sources Sources, bundle *Bundle) *Library {
	return &Library{
		fetcher:    fetcher,
		sources:    sources,
		bundle:     bundle,
		videos:     bundle.Videos,
		ebooks:     bundle.Ebooks,
		lectures:   bundle.Lectures,
		documents:  bundle.Documents,
		worksheets: bundle.Worksheets,
	}
}

// Load fetches all five collections concurrently and replaces the library's
// slots. Each collection is independent: a failed fetch substitutes that
// collection's fallback data without affecting the others. Load never fails.
func (l *Library) Load(ctx context.Context) {
	start := time.Now()

	var wg sync.WaitGroup
	wg.Add(5)
	go func() {
		defer wg.Done()
		v := l.loadResources(ctx, l.sources.Videos, l.bundle.Videos)
		l.mu.Lock()
		l.videos = v
		l.mu.Unlock()
	}()
	go func() {
		defer wg.Done()
		e := l.loadResources(ctx, l.sources.Ebooks, l.bundle.Ebooks)
		l.mu.Lock()
		l.ebooks = e
		l.mu.Unlock()
	}()
	go func() {
		defer wg.Done()
		lec := l.loadResources(ctx, l.sources.Lectures, l.bundle.Lectures)
		l.mu.Lock()
		l.lectures = lec
		l.mu.Unlock()
	}()
	go func() {
		defer wg.Done()
		d := l.loadResources(ctx, l.sources.Documents, l.bundle.Documents)
		l.mu.Lock()
		l.documents = d
		l.mu.Unlock()
	}()
	go func() {
		defer wg.Done()
		w := l.loadWorksheets(ctx, l.sources.Worksheets, l.bundle.Worksheets)
		l.mu.Lock()
		l.worksheets = w
		l.mu.Unlock()
	}()
	wg.Wait()

	l.mu.Lock()
	l.loadedAt = time.Now()
	l.mu.Unlock()

	slog.Info("library loaded",
		"videos", len(l.Videos()),
		"ebooks", len(l.Ebooks()),
		"lectures", len(l.Lectures()),
		"documents", len(l.Documents()),
		"worksheets", len(l.Worksheets()),
		"took", time.Since(start),
	)
}

func (l *Library) loadResources(ctx context.Context, url string, fallback []catalog.ResourceItem) []catalog.ResourceItem {
	text, ok := l.fetcher.Text(ctx, url)
	if !ok {
		return fallback
	}
	return catalog.Resources(sheet.Parse(text, sheet.Collapse))
}

func (l *Library) loadWorksheets(ctx context.Context, url string, fallback []catalog.Worksheet) []catalog.Worksheet {
	text, ok := l.fetcher.Text(ctx, url)
	if !ok {
		return fallback
	}
	return catalog.Worksheets(sheet.Parse(text, sheet.Underscore))
}

// Videos returns the video collection.
func (l *Library) Videos() []catalog.ResourceItem {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]catalog.ResourceItem(nil), l.videos...)
}

// Ebooks returns the ebook collection.
func (l *Library) Ebooks() []catalog.ResourceItem {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]catalog.ResourceItem(nil), l.ebooks...)
}

// Lectures returns the lecture collection.
func (l *Library) Lectures() []catalog.ResourceItem {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]catalog.ResourceItem(nil), l.lectures...)
}

// Documents returns the document collection.
func (l *Library) Documents() []catalog.ResourceItem {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]catalog.ResourceItem(nil), l.documents...)
}

// Worksheets returns the worksheet collection.
func (l *Library) Worksheets() []catalog.Worksheet {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]catalog.Worksheet(nil), l.worksheets...)
}

// Worksheet returns a worksheet by id.
func (l *Library) Worksheet(id string) (catalog.Worksheet, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, ws := range l.worksheets {
		if ws.ID == id {
			return ws, true
		}
	}
	return catalog.Worksheet{}, false
}

// LoadedAt reports when the last load cycle settled; zero before the first.
func (l *Library) LoadedAt() time.Time {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.loadedAt
}
