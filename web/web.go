// Package web embeds the HTML pages served by the shop.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var files embed.FS

// Templates parses every page. Each page is named after its file, e.g. "shop.html".
func Templates() (*template.Template, error) {
	return template.ParseFS(files, "templates/*.html")
}

// MustTemplates is like Templates but panics if a page fails to parse.
func MustTemplates() *template.Template {
	return template.Must(Templates())
}
