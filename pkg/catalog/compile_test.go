package catalog_test

import (
	"strings"
	"testing"

	"github.com/goliatone/go-shapekit/pkg/catalog"
)

const plainShape = `<svg xmlns="http://www.w3.org/2000/svg" width="${width}" height="${height}"><circle cx="100" cy="100" r="90" fill="${color}"/></svg>`

func TestCompile_InsertsDefaultViewBox(t *testing.T) {
	tpl, err := catalog.Compile(1, plainShape)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	out := tpl.Render("red", "24", "24", "")
	want := `viewBox="` + catalog.DefaultViewBox + `"`
	if got := strings.Count(out, "viewBox="); got != 1 {
		t.Fatalf("expected exactly one viewBox attribute, got %d in %q", got, out)
	}
	if !strings.Contains(out, want) {
		t.Fatalf("expected %s in output, got %q", want, out)
	}
}

func TestCompile_PreservesExistingViewBox(t *testing.T) {
	source := `<svg viewBox="0 0 100 100" width="${width}" height="${height}"><path d="M0 0" fill="${color}"/></svg>`
	tpl, err := catalog.Compile(1, source)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	out := tpl.Render("red", "24", "24", "")
	if got := strings.Count(out, "viewBox="); got != 1 {
		t.Fatalf("expected exactly one viewBox attribute, got %d in %q", got, out)
	}
	if !strings.Contains(out, `viewBox="0 0 100 100"`) {
		t.Fatalf("existing viewBox was not preserved: %q", out)
	}
}

func TestCompile_RejectsMalformedTemplates(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		wantErr string
	}{
		{name: "empty", source: "   \n", wantErr: "is empty"},
		{name: "no root element", source: `just text with ${color}`, wantErr: "root element"},
		{name: "unterminated root tag", source: `<svg width="${width}"`, wantErr: "unterminated root element tag"},
		{name: "unknown placeholder", source: `<svg><path fill="${tint}"/></svg>`, wantErr: "unknown placeholder ${tint}"},
		{name: "unterminated placeholder", source: `<svg><path fill="${color"/></svg>`, wantErr: "unterminated placeholder"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := catalog.Compile(3, tc.source)
			if err == nil {
				t.Fatalf("expected error for %q", tc.source)
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("error %q does not mention %q", err, tc.wantErr)
			}
			if !strings.Contains(err.Error(), "template 3") {
				t.Fatalf("error %q does not name the template id", err)
			}
		})
	}
}

func TestTemplate_RenderSubstitutesEverySlot(t *testing.T) {
	tpl, err := catalog.Compile(1, plainShape)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	out := tpl.Render("purple", "32", "32", "")
	if strings.Contains(out, "${") {
		t.Fatalf("output still contains placeholder tokens: %q", out)
	}
	for _, want := range []string{`fill="purple"`, `width="32"`, `height="32"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %s in output, got %q", want, out)
		}
	}
}

func TestTemplate_RenderInjectsDefsAfterRootTag(t *testing.T) {
	tpl, err := catalog.Compile(1, `<svg viewBox="0 0 10 10"><rect fill="${color}"/></svg>`)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	out := tpl.Render("red", "16", "16", "<defs>X</defs>")
	wantPrefix := `<svg viewBox="0 0 10 10"><defs>X</defs><rect`
	if !strings.HasPrefix(out, wantPrefix) {
		t.Fatalf("defs not injected after root tag:\nwant prefix %q\ngot %q", wantPrefix, out)
	}
}

func TestTemplate_RenderWithoutDefsLeavesNoGap(t *testing.T) {
	tpl, err := catalog.Compile(1, `<svg viewBox="0 0 10 10"><rect fill="${color}"/></svg>`)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	out := tpl.Render("red", "16", "16", "")
	if !strings.HasPrefix(out, `<svg viewBox="0 0 10 10"><rect`) {
		t.Fatalf("unexpected output without defs: %q", out)
	}
}
