package palette_test

import (
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-shapekit/pkg/palette"
)

func TestParse_BuildsSortedPairings(t *testing.T) {
	doc := []byte(`
pairings:
  red: [red, salmon]
  blue: [blue, lightblue]
`)
	p, err := palette.Parse(doc)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if diff := cmp.Diff([]string{"blue", "red"}, p.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}

	pairing, ok := p.Lookup("red")
	if !ok {
		t.Fatalf("missing red pairing")
	}
	if diff := cmp.Diff(palette.Pairing{Start: "red", Stop: "salmon"}, pairing); diff != "" {
		t.Fatalf("pairing mismatch (-want +got):\n%s", diff)
	}

	name, atPairing := p.At(0)
	if name != "blue" || atPairing.Start != "blue" {
		t.Fatalf("At(0): want blue pairing, got %s %+v", name, atPairing)
	}
}

func TestParse_RejectsBadDocuments(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{name: "empty document", doc: "", wantErr: "no pairings"},
		{name: "wrong arity", doc: "pairings:\n  red: [red]\n", wantErr: "exactly two colors"},
		{name: "too many colors", doc: "pairings:\n  red: [red, salmon, pink]\n", wantErr: "exactly two colors"},
		{name: "empty color", doc: "pairings:\n  red: [red, \"\"]\n", wantErr: "empty color"},
		{name: "not yaml", doc: "pairings: [", wantErr: "decode pairings"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := palette.Parse([]byte(tc.doc))
			if err == nil {
				t.Fatalf("expected error for %q", tc.doc)
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("error %q does not mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestDefault_LoadsEmbeddedPairings(t *testing.T) {
	p := palette.Default()
	if p.Len() == 0 {
		t.Fatalf("embedded palette is empty")
	}

	names := p.Names()
	if !sort.StringsAreSorted(names) {
		t.Fatalf("names are not sorted: %v", names)
	}
	for _, name := range names {
		pairing, ok := p.Lookup(name)
		if !ok {
			t.Fatalf("name %q has no pairing", name)
		}
		if pairing.Start == "" || pairing.Stop == "" {
			t.Fatalf("pairing %q is incomplete: %+v", name, pairing)
		}
	}
}
