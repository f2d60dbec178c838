package render

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-shapekit/pkg/catalog"
	"github.com/goliatone/go-shapekit/pkg/palette"
)

// Option configures a Renderer.
type Option func(*config)

type config struct {
	catalog  *catalog.Catalog
	palette  *palette.Palette
	sequence *Sequence
	theme    *theme.Selection
	defaults Resolved
	intn     func(n int) int
}

// WithCatalog renders from an alternate catalogue instead of the
// embedded default.
func WithCatalog(c *catalog.Catalog) Option {
	return func(cfg *config) {
		if c != nil {
			cfg.catalog = c
		}
	}
}

// WithPalette supplies an alternate color-pairing table.
func WithPalette(p *palette.Palette) Option {
	return func(cfg *config) {
		if p != nil {
			cfg.palette = p
		}
	}
}

// WithSequence shares a gradient identifier sequence across renderers
// whose output lands in the same document.
func WithSequence(s *Sequence) Option {
	return func(cfg *config) {
		if s != nil {
			cfg.sequence = s
		}
	}
}

// WithDefaults replaces the built-in fallback styling wholesale.
func WithDefaults(defaults Resolved) Option {
	return func(cfg *config) {
		cfg.defaults = defaults
	}
}

// WithRand injects the uniform draw used for random selection. Mostly
// useful in tests.
func WithRand(intn func(n int) int) Option {
	return func(cfg *config) {
		if intn != nil {
			cfg.intn = intn
		}
	}
}

// Renderer turns declarative options into finished SVG markup.
type Renderer struct {
	catalog  *catalog.Catalog
	palette  *palette.Palette
	sequence *Sequence
	defaults Resolved
	intn     func(n int) int
}

// New constructs a renderer over the embedded catalogue and palette
// unless options say otherwise.
func New(options ...Option) (*Renderer, error) {
	cfg := config{
		defaults: Resolved{
			Color:              DefaultColor,
			Size:               DefaultSize,
			GradientStartColor: DefaultGradientStart,
			GradientStopColor:  DefaultGradientStop,
		},
		intn: rand.IntN,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.catalog == nil {
		cfg.catalog = catalog.Default()
	}
	if cfg.palette == nil {
		cfg.palette = palette.Default()
	}
	if cfg.sequence == nil {
		cfg.sequence = &Sequence{}
	}

	defaults, err := applyTheme(cfg.defaults, cfg.theme)
	if err != nil {
		return nil, err
	}

	return &Renderer{
		catalog:  cfg.catalog,
		palette:  cfg.palette,
		sequence: cfg.sequence,
		defaults: defaults,
		intn:     cfg.intn,
	}, nil
}

// Random renders a uniformly chosen catalogue entry.
func (r *Renderer) Random(opts Options) (string, error) {
	n := r.catalog.Len()
	if n == 0 {
		return "", ErrEmptyCatalog
	}
	tpl, _ := r.catalog.Get(r.intn(n) + 1)
	return r.renderTemplate(tpl, r.Resolve(opts)), nil
}

// ByID renders the catalogue entry named by opts.ID. The identifier is
// required and must parse to a positive integer; identifiers past the
// end of the catalogue are rejected before lookup.
func (r *Renderer) ByID(opts Options) (string, error) {
	id, err := strconv.Atoi(strings.TrimSpace(opts.ID))
	if err != nil || id < 1 {
		return "", fmt.Errorf("%w: %q", ErrInvalidIdentifier, opts.ID)
	}
	tpl, ok := r.catalog.Get(id)
	if !ok {
		return "", fmt.Errorf("%w: %d of %d", ErrIdentifierOutOfRange, id, r.catalog.Len())
	}
	return r.renderTemplate(tpl, r.Resolve(opts)), nil
}

// All renders every catalogue entry in identifier order, eagerly. When
// the caller styled the render explicitly (a color, or a complete
// gradient spec) every entry shares that styling; otherwise each entry
// draws its own random pairing from the palette with the gradient
// forced on. The branch is decided once per call.
func (r *Renderer) All(opts Options) ([]string, error) {
	templates := r.catalog.Templates()
	out := make([]string, 0, len(templates))

	if styledExplicitly(opts) {
		res := r.Resolve(opts)
		for _, tpl := range templates {
			out = append(out, r.renderTemplate(tpl, res))
		}
		return out, nil
	}

	size := opts.Size
	if size <= 0 {
		size = r.defaults.Size
	}
	for _, tpl := range templates {
		_, pairing := r.palette.At(r.intn(r.palette.Len()))
		out = append(out, r.renderTemplate(tpl, Resolved{
			Color:              r.defaults.Color,
			Size:               size,
			Gradient:           true,
			GradientStartColor: pairing.Start,
			GradientStopColor:  pairing.Stop,
		}))
	}
	return out, nil
}

// CatalogLen reports the size of the catalogue this renderer draws from.
func (r *Renderer) CatalogLen() int {
	return r.catalog.Len()
}

func styledExplicitly(opts Options) bool {
	if opts.Color != "" {
		return true
	}
	return opts.Gradient && opts.GradientStartColor != "" && opts.GradientStopColor != ""
}

func (r *Renderer) renderTemplate(tpl *catalog.Template, res Resolved) string {
	size := strconv.Itoa(res.Size)
	fill := res.Color
	defs := ""
	if res.Gradient {
		id := r.sequence.Next()
		fill = "url(#" + id + ")"
		defs = gradientDefs(id, res.GradientStartColor, res.GradientStopColor)
	}
	return tpl.Render(fill, size, size, defs)
}
