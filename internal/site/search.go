package site

import (
	"encoding/json"
	"os"

	"github.com/ziadkadry99/camino/internal/pages"
)

// SearchEntry describes one exported page.
type SearchEntry struct {
	ID       string   `json:"id"`
	Path     string   `json:"path"`
	Label    string   `json:"label"`
	Title    string   `json:"title,omitempty"`
	Headings []string `json:"headings,omitempty"`
}

func newSearchEntry(id, label string, s pages.Summary) SearchEntry {
	return SearchEntry{
		ID:       id,
		Path:     id + ".html",
		Label:    label,
		Title:    s.Title,
		Headings: s.Headings,
	}
}

// WriteSearchIndex writes the entries as JSON to outputPath.
func WriteSearchIndex(entries []SearchEntry, outputPath string) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(outputPath, data, 0o644)
}
