// Package web ships the single-page chat UI embedded in the binary.
package web

import (
	"embed"
	"net/http"
)

//go:embed index.html
var content embed.FS

// Handler serves the embedded chat page.
func Handler() http.Handler {
	return http.FileServer(http.FS(content))
}
