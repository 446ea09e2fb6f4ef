// Package shell owns the sidebar entries and the content region, and swaps
// rendered documents into the region when an entry is activated.
package shell

import (
	"fmt"
	"log"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/ziadkadry99/camino/internal/pages"
)

// PageLoader discovers and renders documents.
type PageLoader interface {
	Discover() ([]string, error)
	Load(id string) pages.Page
}

// Options configures a Shell.
type Options struct {
	Title       string
	Width       int
	Height      int
	LabelPrefix string
	DefaultPage string // activated at startup when set
	Verbose     bool
}

// Entry is one sidebar item bound to a document identifier.
type Entry struct {
	ID       string
	Label    string
	activate func() View
}

// Activate shows the entry's document in the content region.
func (e Entry) Activate() View { return e.activate() }

// Shell mediates between the sidebar, the page loader and the content region.
type Shell struct {
	title   string
	width   int
	height  int
	loader  PageLoader
	entries []Entry
	region  *Region
	verbose bool
}

// New discovers the available documents and builds one entry per document,
// sorted by identifier.
func New(loader PageLoader, opts Options) (*Shell, error) {
	ids, err := loader.Discover()
	if err != nil {
		return nil, fmt.Errorf("discovering documents: %w", err)
	}
	sort.Strings(ids)

	s := &Shell{
		title:   opts.Title,
		width:   opts.Width,
		height:  opts.Height,
		loader:  loader,
		entries: make([]Entry, 0, len(ids)),
		region:  NewRegion(),
		verbose: opts.Verbose,
	}
	for _, id := range ids {
		s.entries = append(s.entries, Entry{
			ID:       id,
			Label:    Label(id, opts.LabelPrefix),
			activate: s.showPage(id),
		})
	}

	if opts.DefaultPage != "" {
		s.Activate(opts.DefaultPage)
	}
	return s, nil
}

// showPage returns a handler bound to id.
func (s *Shell) showPage(id string) func() View {
	return func() View {
		return s.Activate(id)
	}
}

// Activate loads the document id and swaps it into the content region.
// Unknown identifiers produce a NotFound view.
func (s *Shell) Activate(id string) View {
	v := View{
		ID:    uuid.NewString(),
		DocID: id,
		Page:  s.loader.Load(id),
	}
	s.region.Replace(v)
	if s.verbose {
		log.Printf("shell: showing %s (%T, view %s)", id, v.Page, v.ID)
	}
	return v
}

// Entries returns the sidebar entries in display order.
func (s *Shell) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Entry returns the sidebar entry for id.
func (s *Shell) Entry(id string) (Entry, bool) {
	i := sort.Search(len(s.entries), func(i int) bool { return s.entries[i].ID >= id })
	if i < len(s.entries) && s.entries[i].ID == id {
		return s.entries[i], true
	}
	return Entry{}, false
}

// Region returns the content region.
func (s *Shell) Region() *Region { return s.region }

// Title returns the window title.
func (s *Shell) Title() string { return s.title }

// Size returns the initial window size.
func (s *Shell) Size() (width, height int) { return s.width, s.height }

// Label derives a sidebar label from a document identifier. When id starts
// with prefix, the prefix becomes a capitalised word followed by the rest:
// "page1" -> "Page 1". Other identifiers are title-cased: "camino-frances" ->
// "Camino Frances".
func Label(id, prefix string) string {
	if prefix != "" && len(id) > len(prefix) && strings.EqualFold(id[:len(prefix)], prefix) {
		rest := strings.TrimLeft(id[len(prefix):], "-_ ")
		if rest != "" {
			return titleWords(prefix) + " " + titleWords(rest)
		}
	}
	return titleWords(id)
}

// titleWords capitalises each word separated by hyphens, underscores or spaces.
func titleWords(name string) string {
	words := strings.FieldsFunc(name, func(c rune) bool {
		return c == '-' || c == '_' || c == ' '
	})
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
