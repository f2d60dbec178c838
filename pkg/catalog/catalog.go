package catalog

import (
	"encoding/json"
	"fmt"
)

// ArtifactVersion is the catalogue artifact format understood by Parse.
const ArtifactVersion = 1

// Artifact is the serialized catalogue written by
// scripts/generate-catalog. Template order in the slice determines the
// 1-based identifiers.
type Artifact struct {
	Version   int      `json:"version"`
	Templates []string `json:"templates"`
}

// Catalog is the immutable identifier to compiled-template mapping.
// Identifiers start at 1 with no gaps.
type Catalog struct {
	templates []*Template
}

// Parse decodes and compiles a catalogue artifact.
func Parse(data []byte) (*Catalog, error) {
	var artifact Artifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return nil, fmt.Errorf("catalog: decode artifact: %w", err)
	}
	return FromArtifact(artifact)
}

// FromArtifact compiles an in-memory artifact into a Catalog.
func FromArtifact(artifact Artifact) (*Catalog, error) {
	if artifact.Version != ArtifactVersion {
		return nil, fmt.Errorf("catalog: unsupported artifact version %d", artifact.Version)
	}
	templates := make([]*Template, 0, len(artifact.Templates))
	for i, raw := range artifact.Templates {
		tpl, err := Compile(i+1, raw)
		if err != nil {
			return nil, err
		}
		templates = append(templates, tpl)
	}
	return &Catalog{templates: templates}, nil
}

// Len reports the number of templates in the catalogue.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.templates)
}

// Get returns the template for a 1-based identifier.
func (c *Catalog) Get(id int) (*Template, bool) {
	if c == nil || id < 1 || id > len(c.templates) {
		return nil, false
	}
	return c.templates[id-1], true
}

// Templates returns every template in identifier order.
func (c *Catalog) Templates() []*Template {
	out := make([]*Template, c.Len())
	if c != nil {
		copy(out, c.templates)
	}
	return out
}
