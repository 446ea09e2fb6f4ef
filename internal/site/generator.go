// Package site exports the document set as a static window: one HTML file
// per page plus an index.html whose sidebar loads pages into a frame.
package site

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ziadkadry99/camino/internal/pages"
	"github.com/ziadkadry99/camino/internal/progress"
	"github.com/ziadkadry99/camino/internal/shell"
)

// ErrNotSelfContained is returned when a rendered page references external
// resources.
var ErrNotSelfContained = errors.New("page is not self-contained")

// Loader is the part of the page loader the exporter needs.
type Loader interface {
	Discover() ([]string, error)
	Load(id string) pages.Page
}

// Exporter writes a static copy of the window to OutputDir.
type Exporter struct {
	Loader      Loader
	OutputDir   string
	Title       string
	Width       int
	Height      int
	LabelPrefix string
	Reporter    progress.Reporter
}

// NewExporter creates an Exporter with no progress reporting.
func NewExporter(loader Loader, outputDir, title string) *Exporter {
	return &Exporter{
		Loader:      loader,
		OutputDir:   outputDir,
		Title:       title,
		Width:       800,
		Height:      600,
		LabelPrefix: "page",
		Reporter:    progress.Discard,
	}
}

// Generate renders every discovered page and the index. Returns the number of
// pages written.
func (e *Exporter) Generate() (int, error) {
	ids, err := e.Loader.Discover()
	if err != nil {
		return 0, fmt.Errorf("discovering documents: %w", err)
	}
	if len(ids) == 0 {
		return 0, fmt.Errorf("no markdown files found")
	}
	for _, id := range ids {
		if id == "index" {
			return 0, fmt.Errorf("document %q collides with the exported index.html", id)
		}
	}

	if err := os.MkdirAll(e.OutputDir, 0o755); err != nil {
		return 0, fmt.Errorf("creating output dir: %w", err)
	}

	reporter := e.Reporter
	if reporter == nil {
		reporter = progress.Discard
	}
	reporter.Start(len(ids))

	entries := make([]SearchEntry, 0, len(ids))
	for i, id := range ids {
		entry, err := e.renderPage(id)
		if err != nil {
			return 0, fmt.Errorf("rendering %s: %w", id, err)
		}
		entries = append(entries, entry)
		reporter.Step(i+1, id)
	}
	reporter.Finish()

	if err := e.writeIndex(entries); err != nil {
		return 0, fmt.Errorf("writing index: %w", err)
	}
	if err := WriteSearchIndex(entries, filepath.Join(e.OutputDir, "search-index.json")); err != nil {
		return 0, fmt.Errorf("writing search index: %w", err)
	}

	return len(ids), nil
}

// renderPage writes <id>.html and returns its search entry.
func (e *Exporter) renderPage(id string) (SearchEntry, error) {
	page := e.Loader.Load(id)
	found, ok := page.(pages.Found)
	if !ok {
		return SearchEntry{}, errors.New(page.Text())
	}

	doc := rewriteMDLinks(found.Document)
	summary, err := pages.Inspect(doc)
	if err != nil {
		return SearchEntry{}, fmt.Errorf("inspecting page: %w", err)
	}
	if !summary.SelfContained() {
		return SearchEntry{}, fmt.Errorf("%w: references %s", ErrNotSelfContained, strings.Join(summary.External, ", "))
	}

	out := filepath.Join(e.OutputDir, id+".html")
	if err := os.WriteFile(out, []byte(doc), 0o644); err != nil {
		return SearchEntry{}, err
	}

	return newSearchEntry(id, shell.Label(id, e.LabelPrefix), summary), nil
}

func (e *Exporter) writeIndex(entries []SearchEntry) error {
	data := indexData{
		Title:  e.Title,
		Width:  e.Width,
		Height: e.Height,
	}
	for _, s := range entries {
		data.Entries = append(data.Entries, indexEntry{Label: s.Label, Href: s.Path})
	}

	f, err := os.Create(filepath.Join(e.OutputDir, "index.html"))
	if err != nil {
		return err
	}
	defer f.Close()
	return indexTmpl.Execute(f, data)
}

// rewriteMDLinks changes links between documents to their exported names.
func rewriteMDLinks(content string) string {
	content = strings.ReplaceAll(content, `.md"`, `.html"`)
	return strings.ReplaceAll(content, `.md#`, `.html#`)
}
