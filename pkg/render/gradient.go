package render

import (
	"fmt"
	"sync/atomic"
)

// Sequence mints document-unique gradient identifiers. The zero value
// is ready to use; identifiers start at grad-1, never repeat, and are
// safe to mint from concurrent renderers sharing one sequence.
type Sequence struct {
	n atomic.Uint64
}

// Next returns the next gradient identifier.
func (s *Sequence) Next() string {
	return fmt.Sprintf("grad-%d", s.n.Add(1))
}

// gradientDefs builds the definition block referenced by a gradient
// fill. Stops sit at 5% and 95% so the fill reads as a wash rather
// than a hard split.
func gradientDefs(id, start, stop string) string {
	return `<defs><linearGradient id="` + id + `" x1="0%" y1="0%" x2="100%" y2="0%">` +
		`<stop offset="5%" stop-color="` + start + `"/>` +
		`<stop offset="95%" stop-color="` + stop + `"/>` +
		`</linearGradient></defs>`
}
