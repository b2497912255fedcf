// Package web embeds the static single-page client and serves it from the
// process binary, so a deployment is the one executable plus the database file.
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var content embed.FS

// Handler serves the embedded client assets.
func Handler() http.Handler {
	sub, err := fs.Sub(content, "static")
	if err != nil {
		// the embedded layout is fixed at compile time
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}
