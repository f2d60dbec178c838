package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultViewBox is applied to templates whose root element does not
// declare a viewport of its own.
const DefaultViewBox = "0 0 200 200"

// Slot identifies a substitution point inside a compiled template.
type Slot int

const (
	SlotColor Slot = iota
	SlotWidth
	SlotHeight
)

type nodeKind int

const (
	nodeLiteral nodeKind = iota
	nodeSlot
	nodeDefs
)

type node struct {
	kind nodeKind
	text string
	slot Slot
}

// Template is a shape template compiled into literal runs and
// substitution slots. A defs node marks where a gradient definition
// block is injected, immediately after the opening root tag.
type Template struct {
	id     int
	source string
	nodes  []node
}

// ID returns the 1-based catalogue identifier.
func (t *Template) ID() int { return t.id }

// Source returns the raw template text the compilation started from.
func (t *Template) Source() string { return t.source }

// Render writes the template with every slot substituted. defs is
// injected right after the opening root tag; pass "" when the fill is
// a plain color.
func (t *Template) Render(fill, width, height, defs string) string {
	var b strings.Builder
	b.Grow(len(t.source) + len(defs) + 32)
	for _, n := range t.nodes {
		switch n.kind {
		case nodeLiteral:
			b.WriteString(n.text)
		case nodeDefs:
			b.WriteString(defs)
		case nodeSlot:
			switch n.slot {
			case SlotColor:
				b.WriteString(fill)
			case SlotWidth:
				b.WriteString(width)
			case SlotHeight:
				b.WriteString(height)
			}
		}
	}
	return b.String()
}

// Compile parses raw template text into its literal and slot nodes.
// Unknown or unterminated placeholders are compile errors so malformed
// templates surface when the catalogue is built or loaded, not as
// silently unreplaced tokens in rendered output.
func Compile(id int, raw string) (*Template, error) {
	source := strings.TrimSpace(raw)
	if source == "" {
		return nil, fmt.Errorf("catalog: template %d is empty", id)
	}

	open, rest, err := splitRootTag(source)
	if err != nil {
		return nil, fmt.Errorf("catalog: template %d: %w", id, err)
	}
	open = ensureViewBox(open)

	tpl := &Template{id: id, source: source}
	if err := tpl.appendSegments(open); err != nil {
		return nil, fmt.Errorf("catalog: template %d: %w", id, err)
	}
	tpl.nodes = append(tpl.nodes, node{kind: nodeDefs})
	if err := tpl.appendSegments(rest); err != nil {
		return nil, fmt.Errorf("catalog: template %d: %w", id, err)
	}
	return tpl, nil
}

func splitRootTag(source string) (open, rest string, err error) {
	if source[0] != '<' {
		return "", "", errors.New("root element must open the template")
	}
	end := strings.IndexByte(source, '>')
	if end < 0 {
		return "", "", errors.New("unterminated root element tag")
	}
	return source[:end+1], source[end+1:], nil
}

// ensureViewBox guarantees consistent scaling regardless of the
// coordinate system the raw template was authored in. An existing
// viewBox is never overwritten.
func ensureViewBox(openTag string) string {
	if strings.Contains(openTag, "viewBox=") {
		return openTag
	}
	if strings.HasSuffix(openTag, "/>") {
		return openTag[:len(openTag)-2] + ` viewBox="` + DefaultViewBox + `"/>`
	}
	return openTag[:len(openTag)-1] + ` viewBox="` + DefaultViewBox + `">`
}

func (t *Template) appendSegments(text string) error {
	for len(text) > 0 {
		idx := strings.Index(text, "${")
		if idx < 0 {
			t.nodes = append(t.nodes, node{kind: nodeLiteral, text: text})
			return nil
		}
		if idx > 0 {
			t.nodes = append(t.nodes, node{kind: nodeLiteral, text: text[:idx]})
		}
		end := strings.IndexByte(text[idx:], '}')
		if end < 0 {
			return errors.New("unterminated placeholder")
		}
		name := text[idx+2 : idx+end]
		slot, ok := slotByName(name)
		if !ok {
			return fmt.Errorf("unknown placeholder ${%s}", name)
		}
		t.nodes = append(t.nodes, node{kind: nodeSlot, slot: slot})
		text = text[idx+end+1:]
	}
	return nil
}

func slotByName(name string) (Slot, bool) {
	switch name {
	case "color":
		return SlotColor, true
	case "width":
		return SlotWidth, true
	case "height":
		return SlotHeight, true
	default:
		return 0, false
	}
}
