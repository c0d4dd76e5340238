package special

import (
	"testing"

	"github.com/tariquesani/bahr/meter"
)

func repeat4(tetrad string) string {
	return tetrad + tetrad + tetrad + tetrad
}

func TestClassifyHindiOriginal(t *testing.T) {
	code := repeat4("=--=")
	idx, ok := classifyHindi(code)
	if !ok || idx != hindiOriginalIndex {
		t.Fatalf("classifyHindi(%q) = %d, %v; want %d, true", code, idx, ok, hindiOriginalIndex)
	}
}

func TestClassifyHindiAcceptsFinalLongAlternative(t *testing.T) {
	// Tetrad 1 ends short, so upgrading the final syllable changes it.
	code := repeat4(hindiTetrads[1])
	upgraded := code[:len(code)-1] + "="
	idx, ok := classifyHindi(upgraded)
	if !ok || idx != 1 {
		t.Fatalf("classifyHindi(%q) = %d, %v; want %d, true", upgraded, idx, ok, 1)
	}
}

func TestClassifyHindiRejectsWrongLength(t *testing.T) {
	if _, ok := classifyHindi("=--="); ok {
		t.Fatalf("expected short code to be rejected")
	}
}

func TestClassifyZamzamaFamilies(t *testing.T) {
	cases := []struct {
		n      int
		offset int
	}{
		{32, 8}, {33, 8},
		{24, 9}, {25, 9},
		{16, 10}, {17, 10},
	}
	for _, c := range cases {
		code := make([]byte, c.n)
		for i := range code {
			code[i] = '-'
		}
		offset, ok := classifyZamzama(string(code))
		if !ok || offset != c.offset {
			t.Fatalf("classifyZamzama(len %d) = %d, %v; want %d, true", c.n, offset, ok, c.offset)
		}
	}
}

func TestMatchNormalizesTrailingFlexible(t *testing.T) {
	code := repeat4("=--=")
	code = code[:len(code)-1] + "x"
	ids := Match(code)
	if len(ids) == 0 {
		t.Fatalf("Match(%q) found nothing, want the original Hindi id", code)
	}
	want := meter.SpecialBase() + hindiOriginalIndex
	found := false
	for _, id := range ids {
		if id == want {
			found = true
		}
	}
	if !found {
		t.Fatalf("Match(%q) = %v, want it to include the original Hindi id %d", code, ids, want)
	}
}

func TestMatchRejectsUnrecognizedCode(t *testing.T) {
	if ids := Match("-=-=-="); len(ids) != 0 {
		t.Fatalf("Match unexpectedly matched %v", ids)
	}
}

func TestFeetSplitsIntoQuarters(t *testing.T) {
	code := repeat4("=--=")
	feet := Feet("", code)
	if len(feet) != 4 {
		t.Fatalf("got %d feet, want 4", len(feet))
	}
	var total string
	for _, f := range feet {
		total += f.Code
	}
	if total != code {
		t.Fatalf("feet codes concatenated = %q, want %q", total, code)
	}
}
