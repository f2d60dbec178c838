// Package render turns declarative styling options into finished SVG
// markup strings drawn from a shape-template catalogue. The renderer is
// stateless apart from the gradient identifier sequence it owns.
package render
