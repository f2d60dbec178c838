package catalog

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	shapePolicyOnce sync.Once
	shapePolicy     *bluemonday.Policy
)

// Sanitize strips markup a shape template has no business carrying
// (scripts, event handlers, foreign elements) while keeping the SVG
// vocabulary and the placeholder tokens intact. The catalogue builder
// runs every source file through this before it lands in the artifact.
func Sanitize(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(shapeSanitizer().Sanitize(trimmed))
}

func shapeSanitizer() *bluemonday.Policy {
	shapePolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements(
			"svg", "g", "path", "circle", "rect", "line", "polyline",
			"polygon", "ellipse", "title", "desc", "defs",
			"linearGradient", "radialGradient", "stop",
		)

		policy.AllowAttrs(
			"xmlns", "viewBox", "width", "height", "fill", "stroke",
			"stroke-width", "stroke-linecap", "stroke-linejoin",
		).OnElements("svg")

		for _, el := range []string{"path", "circle", "rect", "line", "polyline", "polygon", "ellipse"} {
			policy.AllowAttrs(
				"d", "cx", "cy", "r", "x", "y", "x1", "y1", "x2", "y2",
				"points", "rx", "ry", "fill", "stroke", "stroke-width",
				"stroke-linecap", "stroke-linejoin", "transform",
			).OnElements(el)
		}

		policy.AllowAttrs("id", "x1", "y1", "x2", "y2").OnElements("linearGradient")
		policy.AllowAttrs("id", "cx", "cy", "r").OnElements("radialGradient")
		policy.AllowAttrs("offset", "stop-color", "stop-opacity").OnElements("stop")
		policy.AllowAttrs("id", "fill", "transform").OnElements("g")
		policy.AllowAttrs("id").OnElements("defs")

		shapePolicy = policy
	})
	return shapePolicy
}
