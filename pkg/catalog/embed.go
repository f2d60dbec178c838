package catalog

import (
	_ "embed"
	"sync"
)

//go:embed catalog.json
var embeddedArtifact []byte

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Default returns the catalogue generated from assets/shapes and
// embedded at build time. It panics when the embedded artifact fails
// to compile, which only happens when the generated file was edited by
// hand instead of regenerated.
func Default() *Catalog {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = Parse(embeddedArtifact)
	})
	if defaultErr != nil {
		panic(defaultErr)
	}
	return defaultCatalog
}
