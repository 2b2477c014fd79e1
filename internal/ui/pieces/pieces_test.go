package pieces

import (
	"strings"
	"testing"

	"github.com/hailam/cherris/internal/board"
)

func TestSVGDocuments(t *testing.T) {
	for _, p := range All() {
		doc, err := SVG(p)
		if err != nil {
			t.Fatalf("SVG(%s): %v", p, err)
		}
		if !strings.HasPrefix(doc, "<svg") || !strings.HasSuffix(doc, "</svg>") {
			t.Errorf("%s: malformed document", p)
		}
		if strings.Contains(doc, "DETAIL") {
			t.Errorf("%s: unfilled placeholder in %s", p, doc)
		}
	}
}

func TestRender(t *testing.T) {
	const size = 90

	for _, p := range All() {
		img, err := Render(p, size)
		if err != nil {
			t.Fatalf("Render(%s): %v", p, err)
		}
		if b := img.Bounds(); b.Dx() != size || b.Dy() != size {
			t.Fatalf("%s: bounds %v", p, b)
		}

		if c := img.RGBAAt(1, 1); c.A != 0 {
			t.Errorf("%s: corner is painted: %v", p, c)
		}

		// Every piece stands on a base across the lower middle.
		c := img.RGBAAt(size/2, 75)
		if c.A < 200 {
			t.Errorf("%s: base not painted: %v", p, c)
			continue
		}
		if p.Color == board.White && c.R < 200 {
			t.Errorf("%s: base should be light, got %v", p, c)
		}
		if p.Color == board.Black && c.R > 80 {
			t.Errorf("%s: base should be dark, got %v", p, c)
		}
	}
}

func TestAll(t *testing.T) {
	all := All()
	if len(all) != 12 {
		t.Fatalf("All() returned %d pieces", len(all))
	}
	seen := map[board.Piece]bool{}
	for _, p := range all {
		if seen[p] {
			t.Errorf("duplicate %s", p)
		}
		seen[p] = true
	}
}
