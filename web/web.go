// Package web holds the welcome page and public assets served by the API.
package web

import (
	"embed"
	"io/fs"
)

//go:embed views/index.html
var views embed.FS

//go:embed public
var public embed.FS

// IndexHTML returns the welcome page.
func IndexHTML() []byte {
	b, err := views.ReadFile("views/index.html")
	if err != nil {
		panic(err)
	}
	return b
}

// Public returns the assets served from the site root.
func Public() fs.FS {
	sub, err := fs.Sub(public, "public")
	if err != nil {
		panic(err)
	}
	return sub
}
