package gallery_test

import (
	"strings"
	"testing"

	"github.com/goliatone/go-shapekit/pkg/catalog"
	"github.com/goliatone/go-shapekit/pkg/gallery"
	"github.com/goliatone/go-shapekit/pkg/render"
)

func testRenderer(t *testing.T) *render.Renderer {
	t.Helper()
	cat, err := catalog.FromArtifact(catalog.Artifact{
		Version: catalog.ArtifactVersion,
		Templates: []string{
			`<svg><circle cx="5" cy="5" r="4" fill="${color}"/></svg>`,
			`<svg><rect x="1" y="1" fill="${color}"/></svg>`,
		},
	})
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}
	r, err := render.New(render.WithCatalog(cat))
	if err != nil {
		t.Fatalf("build renderer: %v", err)
	}
	return r
}

func TestGallery_RenderContainsEveryShape(t *testing.T) {
	g, err := gallery.New(
		gallery.WithRenderer(testRenderer(t)),
		gallery.WithTitle("test gallery"),
	)
	if err != nil {
		t.Fatalf("new gallery: %v", err)
	}

	page, err := g.Render(render.Options{Color: "purple"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if !strings.Contains(page, "<title>test gallery</title>") {
		t.Fatalf("title missing from page:\n%s", page)
	}
	if got := strings.Count(page, "<svg"); got != 2 {
		t.Fatalf("expected 2 inlined shapes, got %d", got)
	}
	for _, want := range []string{"#1", "#2", `fill="purple"`} {
		if !strings.Contains(page, want) {
			t.Fatalf("expected %q in page:\n%s", want, page)
		}
	}
	if strings.Contains(page, "&lt;svg") {
		t.Fatalf("shape markup was escaped instead of inlined:\n%s", page)
	}
}

func TestGallery_DefaultRendererUsesEmbeddedCatalog(t *testing.T) {
	g, err := gallery.New()
	if err != nil {
		t.Fatalf("new gallery: %v", err)
	}

	page, err := g.Render(render.Options{Color: "teal"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got := strings.Count(page, "<svg"); got != catalog.Default().Len() {
		t.Fatalf("expected %d shapes, got %d", catalog.Default().Len(), got)
	}
}
