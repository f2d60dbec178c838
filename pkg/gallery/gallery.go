// Package gallery renders a standalone HTML preview page containing
// every catalogue entry, one rendered shape per cell.
package gallery

import (
	"bytes"
	"embed"
	"fmt"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-shapekit/pkg/render"
)

//go:embed templates/*.html
var embeddedTemplates embed.FS

const pageTemplate = "templates/gallery.html"

// Option configures a Gallery.
type Option func(*config)

type config struct {
	renderer *render.Renderer
	title    string
}

// WithRenderer previews shapes through an existing renderer instead of
// a fresh one over the embedded catalogue.
func WithRenderer(r *render.Renderer) Option {
	return func(cfg *config) {
		if r != nil {
			cfg.renderer = r
		}
	}
}

// WithTitle overrides the page title.
func WithTitle(title string) Option {
	return func(cfg *config) {
		if title != "" {
			cfg.title = title
		}
	}
}

// Item pairs a catalogue identifier with its rendered markup.
type Item struct {
	ID  int
	SVG string
}

// Gallery renders the preview page.
type Gallery struct {
	renderer *render.Renderer
	title    string
	template *pongo2.Template
}

// New constructs a Gallery applying any provided options.
func New(options ...Option) (*Gallery, error) {
	cfg := config{title: "shapekit preview"}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.renderer == nil {
		renderer, err := render.New()
		if err != nil {
			return nil, fmt.Errorf("gallery: build renderer: %w", err)
		}
		cfg.renderer = renderer
	}

	set := pongo2.NewSet("shapekit-gallery", pongo2.NewFSLoader(embeddedTemplates))
	tpl, err := set.FromFile(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("gallery: load template: %w", err)
	}

	return &Gallery{renderer: cfg.renderer, title: cfg.title, template: tpl}, nil
}

// Render produces the preview page for the given options. The zero
// Options value yields the random-pairing gallery.
func (g *Gallery) Render(opts render.Options) (string, error) {
	rendered, err := g.renderer.All(opts)
	if err != nil {
		return "", fmt.Errorf("gallery: render shapes: %w", err)
	}

	items := make([]Item, 0, len(rendered))
	for i, svg := range rendered {
		items = append(items, Item{ID: i + 1, SVG: svg})
	}

	var buf bytes.Buffer
	err = g.template.ExecuteWriter(pongo2.Context{
		"title": g.title,
		"items": items,
	}, &buf)
	if err != nil {
		return "", fmt.Errorf("gallery: execute template: %w", err)
	}
	return buf.String(), nil
}
