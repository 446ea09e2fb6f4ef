// Package pages turns Markdown documents into styled, self-contained HTML
// pages and discovers which documents are available.
package pages

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
)

// Ext is the recognized document extension.
const Ext = ".md"

// NoFilesMessage is returned by ListFiles when the resource root is empty.
const NoFilesMessage = "No Markdown files found."

// Loader reads documents from a file system and renders them.
type Loader struct {
	fsys      fs.FS
	root      string
	style     Style
	codeStyle string
	md        goldmark.Markdown
}

// Option configures a Loader.
type Option func(*Loader)

// WithStyle sets the page style. Empty fields keep their defaults.
func WithStyle(s Style) Option {
	return func(l *Loader) { l.style = s.withDefaults() }
}

// WithCodeStyle sets the chroma style used for fenced code blocks.
func WithCodeStyle(name string) Option {
	return func(l *Loader) {
		if name != "" {
			l.codeStyle = name
		}
	}
}

// NewLoader creates a Loader over fsys. root is only used to resolve the
// paths shown in messages.
func NewLoader(fsys fs.FS, root string, opts ...Option) *Loader {
	l := &Loader{
		fsys:      fsys,
		root:      root,
		style:     DefaultStyle(),
		codeStyle: "github",
	}
	for _, opt := range opts {
		opt(l)
	}
	l.md = goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle(l.codeStyle),
			),
		),
	)
	return l
}

// NewDirLoader creates a Loader over a directory on disk.
func NewDirLoader(dir string, opts ...Option) (*Loader, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving resources dir: %w", err)
	}
	return NewLoader(os.DirFS(abs), abs, opts...), nil
}

// Root returns the display root of the loader.
func (l *Loader) Root() string { return l.root }

// Path returns the resolved path of the document with the given identifier.
func (l *Loader) Path(id string) string {
	return filepath.Join(l.root, id+Ext)
}

// Load reads and renders the document id. It never fails: a missing file
// yields NotFound and any other failure yields Unreadable.
func (l *Loader) Load(id string) Page {
	path := l.Path(id)
	name := id + Ext

	// Identifiers are stems in the resource root, never paths.
	if id == "" || strings.ContainsAny(id, `/\`) || !fs.ValidPath(name) {
		return NotFound{ID: id, Path: path}
	}

	src, err := fs.ReadFile(l.fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return NotFound{ID: id, Path: path}
	}
	if err != nil {
		log.Printf("pages: reading %s: %v", path, err)
		return Unreadable{ID: id, Path: path, Err: err}
	}

	doc, err := l.Render(src)
	if err != nil {
		log.Printf("pages: rendering %s: %v", path, err)
		return Unreadable{ID: id, Path: path, Err: err}
	}

	return Found{
		ID:       id,
		Path:     path,
		Source:   string(src),
		Document: doc,
	}
}

// Render converts Markdown source into a complete styled HTML document.
func (l *Loader) Render(src []byte) (string, error) {
	var body bytes.Buffer
	if err := l.md.Convert(src, &body); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}

	var out bytes.Buffer
	if err := pageTmpl.Execute(&out, newPageData(l.style, body.String())); err != nil {
		return "", fmt.Errorf("executing page template: %w", err)
	}
	return out.String(), nil
}

// Discover returns the identifiers of all documents in the resource root.
// The order is unspecified.
func (l *Loader) Discover() ([]string, error) {
	matches, err := doublestar.Glob(l.fsys, "*"+Ext)
	if err != nil {
		return nil, fmt.Errorf("listing documents in %s: %w", l.root, err)
	}

	seen := make(map[string]bool, len(matches))
	ids := make([]string, 0, len(matches))
	for _, m := range matches {
		info, err := fs.Stat(l.fsys, m)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		stem := strings.TrimSuffix(m, Ext)
		// Load refuses separators, so such names cannot be shown.
		if stem == "" || seen[stem] || strings.ContainsAny(stem, `/\`) {
			continue
		}
		seen[stem] = true
		ids = append(ids, stem)
	}
	return ids, nil
}

// ListFiles returns the document file names one per line, or NoFilesMessage
// when there are none.
func (l *Loader) ListFiles() (string, error) {
	ids, err := l.Discover()
	if err != nil {
		return "", err
	}
	if len(ids) == 0 {
		return NoFilesMessage, nil
	}
	sort.Strings(ids)
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = id + Ext
	}
	return strings.Join(names, "\n"), nil
}
