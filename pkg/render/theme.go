package render

import (
	"fmt"
	"strconv"

	theme "github.com/goliatone/go-theme"
)

// Token names recognised on a theme manifest. Variant tokens override
// the base manifest tokens before any of these are read.
const (
	TokenFill          = "shape.fill"
	TokenSize          = "shape.size"
	TokenGradientStart = "shape.gradient.start"
	TokenGradientStop  = "shape.gradient.stop"
)

// WithTheme derives fallback styling from a go-theme selection so
// unstyled renders pick up the active theme's colors instead of the
// built-in blues.
func WithTheme(selection *theme.Selection) Option {
	return func(cfg *config) {
		cfg.theme = selection
	}
}

func applyTheme(defaults Resolved, selection *theme.Selection) (Resolved, error) {
	if selection == nil || selection.Manifest == nil {
		return defaults, nil
	}
	tokens := resolveTokens(selection.Manifest, selection.Variant)

	if v := tokens[TokenFill]; v != "" {
		defaults.Color = v
	}
	if v := tokens[TokenGradientStart]; v != "" {
		defaults.GradientStartColor = v
	}
	if v := tokens[TokenGradientStop]; v != "" {
		defaults.GradientStopColor = v
	}
	if v := tokens[TokenSize]; v != "" {
		size, err := strconv.Atoi(v)
		if err != nil || size <= 0 {
			return defaults, fmt.Errorf("render: theme token %s: invalid size %q", TokenSize, v)
		}
		defaults.Size = size
	}
	return defaults, nil
}

func resolveTokens(manifest *theme.Manifest, variant string) map[string]string {
	out := make(map[string]string, len(manifest.Tokens))
	for name, value := range manifest.Tokens {
		out[name] = value
	}
	if variant == "" {
		return out
	}
	if v, ok := manifest.Variants[variant]; ok {
		for name, value := range v.Tokens {
			out[name] = value
		}
	}
	return out
}
