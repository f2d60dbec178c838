// Package catalog holds the immutable shape-template catalogue: the
// artifact format emitted by scripts/generate-catalog, the compiled
// template representation the renderer consumes, and the default
// catalogue embedded at build time.
package catalog
