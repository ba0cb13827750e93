// Package view holds the HTML templates and the page models rendered into them.
package view

import (
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Template names for gin's c.HTML.
const (
	PageNewJoke      = "new_joke.html"
	PageJoke         = "joke.html"
	PageLogin        = "login.html"
	PageUnauthorized = "unauthorized.html"
	PageNotFound     = "not_found.html"
	PageError        = "error.html"

	// FragmentNewJoke is the new-joke page without the surrounding document.
	FragmentNewJoke = "new_joke_body"
)

// Templates parses every embedded template into one set.
func Templates() (*template.Template, error) {
	tmpl, err := template.New("").ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return tmpl, nil
}
