package pages

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// Summary describes a rendered page.
type Summary struct {
	Title    string   // text of the first heading, if any
	Headings []string // text of every h1-h6 in document order
	External []string // resources the page would fetch from elsewhere
}

// SelfContained reports whether the page references no outside resources.
func (s Summary) SelfContained() bool { return len(s.External) == 0 }

// Inspect parses a rendered page and summarises its headings and external
// references.
func Inspect(doc string) (Summary, error) {
	root, err := html.Parse(strings.NewReader(doc))
	if err != nil {
		return Summary{}, fmt.Errorf("parse html: %w", err)
	}

	var s Summary
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if headingLevel(n.Data) > 0 {
				t := textContent(n)
				s.Headings = append(s.Headings, t)
				if s.Title == "" {
					s.Title = t
				}
			}
			for _, a := range n.Attr {
				switch {
				case a.Key == "src" && isExternal(a.Val):
					s.External = append(s.External, a.Val)
				case a.Key == "href" && n.Data == "link":
					s.External = append(s.External, a.Val)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return s, nil
}

// isExternal reports whether a src value points outside the document.
func isExternal(v string) bool {
	v = strings.TrimSpace(v)
	return v != "" && !strings.HasPrefix(v, "data:") && !strings.HasPrefix(v, "#")
}

func headingLevel(tag string) int {
	if len(tag) == 2 && tag[0] == 'h' && tag[1] >= '1' && tag[1] <= '6' {
		return int(tag[1] - '0')
	}
	return 0
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(b.String())
}
