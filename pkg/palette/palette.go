// Package palette holds the color-pairing table used when a shape is
// rendered without explicit styling: each base hue maps to an ordered
// start/stop pair that reads well as a gradient.
package palette

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// Pairing is an ordered start/stop hue pair.
type Pairing struct {
	Start string
	Stop  string
}

// Palette maps base hue names to their paired gradient colors. Names
// are kept in sorted order so index-based draws are stable regardless
// of map iteration.
type Palette struct {
	names    []string
	pairings map[string]Pairing
}

type document struct {
	Pairings map[string][]string `yaml:"pairings"`
}

// Parse decodes a pairings document. Every entry must name exactly two
// non-empty colors.
func Parse(data []byte) (*Palette, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("palette: decode pairings: %w", err)
	}
	if len(doc.Pairings) == 0 {
		return nil, fmt.Errorf("palette: no pairings defined")
	}

	pairings := make(map[string]Pairing, len(doc.Pairings))
	names := make([]string, 0, len(doc.Pairings))
	for name, colors := range doc.Pairings {
		if len(colors) != 2 {
			return nil, fmt.Errorf("palette: pairing %q must name exactly two colors, got %d", name, len(colors))
		}
		if colors[0] == "" || colors[1] == "" {
			return nil, fmt.Errorf("palette: pairing %q has an empty color", name)
		}
		pairings[name] = Pairing{Start: colors[0], Stop: colors[1]}
		names = append(names, name)
	}
	sort.Strings(names)

	return &Palette{names: names, pairings: pairings}, nil
}

// Len reports the number of pairings.
func (p *Palette) Len() int {
	if p == nil {
		return 0
	}
	return len(p.names)
}

// Names returns the hue names in sorted order.
func (p *Palette) Names() []string {
	out := make([]string, p.Len())
	if p != nil {
		copy(out, p.names)
	}
	return out
}

// Lookup returns the pairing for a hue name.
func (p *Palette) Lookup(name string) (Pairing, bool) {
	if p == nil {
		return Pairing{}, false
	}
	pairing, ok := p.pairings[name]
	return pairing, ok
}

// At returns the hue name and pairing at index i in sorted-name order.
func (p *Palette) At(i int) (string, Pairing) {
	name := p.names[i]
	return name, p.pairings[name]
}
