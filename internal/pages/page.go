package pages

import (
	"fmt"
	"html"
)

// Page is the result of loading a document. It is one of Found, NotFound or
// Unreadable; callers display any of them through HTML or Text.
type Page interface {
	// HTML returns the page as a self-contained HTML string.
	HTML() string
	// Text returns the page as Markdown for non-HTML surfaces.
	Text() string

	sealed()
}

// Found is a document that was read and rendered.
type Found struct {
	ID       string
	Path     string
	Source   string // raw Markdown
	Document string // full HTML document
}

func (p Found) HTML() string { return p.Document }
func (p Found) Text() string { return p.Source }
func (Found) sealed()        {}

// NotFound is a document whose file does not exist.
type NotFound struct {
	ID   string
	Path string
}

func (p NotFound) HTML() string {
	return fmt.Sprintf("<p>File not found: %s</p>", html.EscapeString(p.Path))
}

func (p NotFound) Text() string { return "File not found: " + p.Path }
func (NotFound) sealed()        {}

// Unreadable is a document whose file exists but could not be read or
// converted.
type Unreadable struct {
	ID   string
	Path string
	Err  error
}

func (p Unreadable) HTML() string {
	return fmt.Sprintf("<p>File could not be read: %s</p>", html.EscapeString(p.Path))
}

func (p Unreadable) Text() string { return "File could not be read: " + p.Path }
func (Unreadable) sealed()        {}

// IDOf returns the document identifier a page was loaded for.
func IDOf(p Page) string {
	switch v := p.(type) {
	case Found:
		return v.ID
	case NotFound:
		return v.ID
	case Unreadable:
		return v.ID
	}
	return ""
}
