// Package resources holds the Markdown documents shipped with camino.
package resources

import (
	"embed"
	"io/fs"
)

// Root is the display root of the bundled documents.
const Root = "resources/md"

//go:embed md/*.md
var bundled embed.FS

// Documents returns the bundled documents rooted at the md directory.
func Documents() fs.FS {
	sub, err := fs.Sub(bundled, "md")
	if err != nil {
		// md is a compile-time embedded directory.
		panic(err)
	}
	return sub
}
