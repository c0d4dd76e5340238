// Package special recognises the Hindi and Zamzama meter families of
// §4.6: syllable-count based meters with no fixed pattern string, so
// they cannot be matched by internal/tree's prefix-matching traversal.
// Grounded on SPEC_FULL.md §4.6's description of the PatternTree class;
// the reference class itself was filtered out of the retrieval pack, so
// the transition tables below are authored from that description, not
// ported (see DESIGN.md).
package special

import (
	"github.com/tariquesani/bahr/internal/tree"
	"github.com/tariquesani/bahr/meter"
)

// hindiTetrads are the eight four-syllable units the Hindi family
// repeats four times to build its sixteen-syllable patterns. Index 4 is
// the canonical "original" Hindi meter; the rest are its recognised
// variants. Meter ids are meter.SpecialBase()+index, so this slice's
// order must track meter.SpecialMeters' first eight entries.
var hindiTetrads = [8]string{
	"-=-=",
	"=-=-",
	"--==",
	"==--",
	"=--=", // original_hindi_meter
	"-==-",
	"---=",
	"=---",
}

const hindiOriginalIndex = 4

// classifyHindi reports which of the eight Hindi tetrad families code
// belongs to. The family's final syllable may be upgraded from short to
// long (never the reverse); §4.6 calls this the "permissible
// final-long alternative".
func classifyHindi(code string) (idx int, ok bool) {
	if len(code) != 16 {
		return 0, false
	}
	for i, tetrad := range hindiTetrads {
		tmpl := tetrad + tetrad + tetrad + tetrad
		if matchesWithFinalLongAlt(code, tmpl) {
			return i, true
		}
	}
	return 0, false
}

func matchesWithFinalLongAlt(code, tmpl string) bool {
	n := len(tmpl)
	for i := 0; i < n-1; i++ {
		if code[i] != tmpl[i] {
			return false
		}
	}
	last := tmpl[n-1]
	return code[n-1] == last || (last == '-' && code[n-1] == '=')
}

// classifyZamzama reports the zamzama offset (8, 9 or 10) the code's
// syllable count satisfies. Each family accepts its base syllable count
// or one more, mirroring the regular catalogue's variant-length rule.
func classifyZamzama(code string) (offset int, ok bool) {
	switch len(code) {
	case 32, 33:
		return 8, true
	case 24, 25:
		return 9, true
	case 16, 17:
		return 10, true
	default:
		return 0, false
	}
}

// normalizeLastSyllable forces a trailing "x" (flexible) syllable to
// "=" (long) before classification, per §4.6.
func normalizeLastSyllable(code string) string {
	if code == "" || code[len(code)-1] != 'x' {
		return code
	}
	return code[:len(code)-1] + "="
}

// Match runs a leaf's full accumulated code through the Hindi and
// Zamzama state machines and returns every special-meter global id it
// satisfies. A 16-syllable code can satisfy both a Hindi tetrad family
// and the 16/17-syllable Zamzama family at once, so the result may
// carry more than one id.
func Match(code string) []int {
	code = normalizeLastSyllable(code)
	base := meter.SpecialBase()

	var ids []int
	if idx, ok := classifyHindi(code); ok {
		ids = append(ids, base+idx)
	}
	if offset, ok := classifyZamzama(code); ok {
		ids = append(ids, base+offset)
	}
	return ids
}

// MatchLeaves walks every leaf of the line's raw candidate tree
// (independent of the fixed-pattern catalogue matched by
// internal/tree's TraverseExact) and returns a ScanPath per leaf that
// satisfies at least one special meter, with Meters set to the ids it
// satisfies. wordCodes is the same per-word code-variant slice passed
// to tree.TraverseExact.
func MatchLeaves(wordCodes [][]string) []tree.ScanPath {
	var out []tree.ScanPath
	for _, p := range tree.Leaves(wordCodes) {
		ids := Match(p.Code())
		if len(ids) == 0 {
			continue
		}
		p.Meters = ids
		out = append(out, p)
	}
	return out
}

// Feet generates a printable feet decomposition for a matched special
// id, the way internal/result renders a regular meter's fixed feet
// list. The code is sliced into four equal feet when its length is a
// multiple of four, into two halves when it is otherwise even, and is
// left as a single foot when it is odd. Every foot gets the same fixed
// name, since special meters have no named rukn per §4.6.
func Feet(id, code string) []meter.Foot {
	_ = id
	n := len(code)
	if n == 0 {
		return nil
	}
	quarters := 4
	if n%quarters != 0 {
		quarters = 1
		for _, q := range []int{8, 4, 2} {
			if n%q == 0 {
				quarters = q
				break
			}
		}
	}
	size := n / quarters
	feet := make([]meter.Foot, 0, quarters)
	for i := 0; i < quarters; i++ {
		start := i * size
		end := start + size
		if i == quarters-1 {
			end = n
		}
		feet = append(feet, meter.Foot{Name: "ہندی رکن", Code: code[start:end]})
	}
	return feet
}
