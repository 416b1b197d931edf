// Package web renders the resume page and its runtime configuration script.
package web

import (
	"embed"
	"encoding/json"
	"fmt"

	pongo2 "github.com/flosch/pongo2/v6"
)

//go:embed templates/*
var templates embed.FS

// Renderer holds the compiled page templates
type Renderer struct {
	index      *pongo2.Template
	configJS   *pongo2.Template
	apiBaseURL string
	title      string
}

// NewRenderer compiles the embedded templates.
// An empty apiBaseURL makes the page call the API on its own origin.
func NewRenderer(title, apiBaseURL string) (*Renderer, error) {
	index, err := compile("templates/index.html")
	if err != nil {
		return nil, err
	}
	configJS, err := compile("templates/config.js.tmpl")
	if err != nil {
		return nil, err
	}

	return &Renderer{
		index:      index,
		configJS:   configJS,
		apiBaseURL: apiBaseURL,
		title:      title,
	}, nil
}

func compile(name string) (*pongo2.Template, error) {
	raw, err := templates.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read template %s: %w", name, err)
	}
	tpl, err := pongo2.FromString(string(raw))
	if err != nil {
		return nil, fmt.Errorf("compile template %s: %w", name, err)
	}
	return tpl, nil
}

// Index renders the resume page
func (r *Renderer) Index() (string, error) {
	return r.index.Execute(pongo2.Context{
		"title": r.title,
	})
}

// ConfigJS renders the script that sets window.API_BASE_URL
func (r *Renderer) ConfigJS() (string, error) {
	// JSON string literals are valid JavaScript; Marshal also escapes <, > and &.
	literal, err := json.Marshal(r.apiBaseURL)
	if err != nil {
		return "", err
	}
	return r.configJS.Execute(pongo2.Context{
		"api_base_url": string(literal),
	})
}
