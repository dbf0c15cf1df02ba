package templates

import (
	"embed"
	"io/fs"
)

// files contains the HTML templates; layout.html wraps every page.
//
//go:embed *.html
var files embed.FS

// FS returns the embedded templates
func FS() fs.FS {
	return files
}
