// Package shapekit produces customized SVG markup strings from a
// fixed, embedded catalogue of shape templates. The package-level
// functions render through a shared default renderer; construct a
// render.Renderer directly for custom catalogues, palettes, or themes.
package shapekit

import (
	"sync"

	"github.com/goliatone/go-shapekit/pkg/catalog"
	"github.com/goliatone/go-shapekit/pkg/render"
)

// Options re-exports render.Options for callers that only use the
// package-level entry points.
type Options = render.Options

var (
	defaultOnce     sync.Once
	defaultRenderer *render.Renderer
	defaultErr      error
)

// Renderer returns the shared default renderer over the embedded
// catalogue and palette.
func Renderer() (*render.Renderer, error) {
	defaultOnce.Do(func() {
		defaultRenderer, defaultErr = render.New()
	})
	return defaultRenderer, defaultErr
}

// RenderRandom renders a uniformly chosen shape from the catalogue.
func RenderRandom(opts Options) (string, error) {
	r, err := Renderer()
	if err != nil {
		return "", err
	}
	return r.Random(opts)
}

// RenderByID renders the shape named by opts.ID.
func RenderByID(opts Options) (string, error) {
	r, err := Renderer()
	if err != nil {
		return "", err
	}
	return r.ByID(opts)
}

// RenderAll renders every shape in the catalogue in identifier order.
func RenderAll(opts Options) ([]string, error) {
	r, err := Renderer()
	if err != nil {
		return nil, err
	}
	return r.All(opts)
}

// CatalogSize reports the number of templates in the embedded catalogue.
func CatalogSize() int {
	return catalog.Default().Len()
}
