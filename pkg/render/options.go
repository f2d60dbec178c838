package render

// Styling applied when the caller leaves a field unset.
const (
	DefaultColor         = "blue"
	DefaultSize          = 16
	DefaultGradientStart = "blue"
	DefaultGradientStop  = "lightblue"
)

// Options is the caller-supplied partial styling record. Zero values
// (empty strings, non-positive size) mean unset and fall back to the
// renderer defaults during resolution.
type Options struct {
	// ID selects a catalogue entry for ByID. Random and All ignore it.
	ID string
	// Color is the fill color for non-gradient renders.
	Color string
	// Size becomes both the width and height attribute value.
	Size int
	// Gradient switches the fill to a linear gradient.
	Gradient bool
	// GradientStartColor and GradientStopColor style the gradient stops.
	GradientStartColor string
	GradientStopColor  string
}

// Resolved is a fully populated Options: every field carries either the
// caller's value or the corresponding default.
type Resolved struct {
	Color              string
	Size               int
	Gradient           bool
	GradientStartColor string
	GradientStopColor  string
}

// Resolve merges opts over the renderer defaults. Resolving an already
// fully specified Options changes nothing.
func (r *Renderer) Resolve(opts Options) Resolved {
	res := Resolved{
		Color:              opts.Color,
		Size:               opts.Size,
		Gradient:           opts.Gradient || r.defaults.Gradient,
		GradientStartColor: opts.GradientStartColor,
		GradientStopColor:  opts.GradientStopColor,
	}
	if res.Color == "" {
		res.Color = r.defaults.Color
	}
	if res.Size <= 0 {
		res.Size = r.defaults.Size
	}
	if res.GradientStartColor == "" {
		res.GradientStartColor = r.defaults.GradientStartColor
	}
	if res.GradientStopColor == "" {
		res.GradientStopColor = r.defaults.GradientStopColor
	}
	return res
}
