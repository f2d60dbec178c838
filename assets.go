package shapekit

import (
	"embed"
	"io/fs"
)

//go:embed assets/shapes/*.svg
var shapeSources embed.FS

// ShapeSourcesFS exposes the raw shape-template sources that
// scripts/generate-catalog compiles into the embedded catalogue, for
// callers that want to build a catalogue variant of their own.
func ShapeSourcesFS() fs.FS {
	sub, err := fs.Sub(shapeSources, "assets/shapes")
	if err != nil {
		// Should never happen, but fall back to the raw FS so the
		// sources remain reachable.
		return shapeSources
	}
	return sub
}
