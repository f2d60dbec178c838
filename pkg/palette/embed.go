package palette

import (
	_ "embed"
	"sync"
)

//go:embed pairings.yaml
var embeddedPairings []byte

var (
	defaultOnce    sync.Once
	defaultPalette *Palette
	defaultErr     error
)

// Default returns the built-in pairing table.
func Default() *Palette {
	defaultOnce.Do(func() {
		defaultPalette, defaultErr = Parse(embeddedPairings)
	})
	if defaultErr != nil {
		panic(defaultErr)
	}
	return defaultPalette
}
