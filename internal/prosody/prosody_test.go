package prosody

import (
	"testing"

	"github.com/tariquesani/bahr/internal/model"
)

func lineOf(words ...*model.Word) *model.Line {
	return &model.Line{Words: words}
}

func word(raw string, codes ...string) *model.Word {
	w := model.NewWord(raw)
	w.Code = append(w.Code, codes...)
	for range codes {
		w.Muarrab = append(w.Muarrab, raw)
	}
	return w
}

func TestAlPrefixExtendsPreviousWord(t *testing.T) {
	prev := word("کتابَ", "==")
	next := word("الکتاب", "=x=")
	Apply(lineOf(prev, next), nil)

	if prev.Code[0] != "=-=" {
		t.Fatalf("previous code = %q, want =-= (final long splits to absorb ال)", prev.Code[0])
	}
	if next.Code[0] != "x=" {
		t.Fatalf("next code = %q, want x= (leading syllable elided)", next.Code[0])
	}
	if prev.Muarrab[0] != "کتابَل" {
		t.Fatalf("previous muarrab = %q, want a trailing ل", prev.Muarrab[0])
	}
	if next.Muarrab[0] != "کتاب" {
		t.Fatalf("next muarrab = %q, want the leading ال dropped", next.Muarrab[0])
	}
}

func TestAlPrefixIgnoresWordsWithoutZabarOrPaish(t *testing.T) {
	prev := word("کتاب", "==")
	next := word("الکتاب", "=x=")
	processAlPrefix(lineOf(prev, next), nil)

	if prev.Code[0] != "==" || next.Code[0] != "=x=" {
		t.Fatalf("codes changed without a trailing zabar/paish: %q, %q", prev.Code[0], next.Code[0])
	}
}

func TestIzafatTwoLetterDatabaseWordBecomesDoubleFlexible(t *testing.T) {
	w := word("دلِ", "=")
	w.ID = "12"
	processIzafat(lineOf(w), nil)
	if w.Code[0] != "xx" {
		t.Fatalf("code = %q, want xx for a two-letter izafat word with a DB id", w.Code[0])
	}
}

func TestIzafatYehFinalAddsAlternativeCode(t *testing.T) {
	w := word("والیِ", "==")
	w.ID = "9"
	processIzafat(lineOf(w), nil)

	if len(w.Code) != 2 {
		t.Fatalf("got %d codes, want the original rewrite plus an appended alternative: %#v", len(w.Code), w.Code)
	}
	if w.Code[0] != "=-x" {
		t.Fatalf("rewritten code = %q, want =-x", w.Code[0])
	}
	if w.Code[1] != "==x" {
		t.Fatalf("appended code = %q, want ==x", w.Code[1])
	}
}

func TestIzafatHeuristicWordTakesDefaultBranch(t *testing.T) {
	w := word("شبِ", "=")
	processIzafat(lineOf(w), nil)
	if w.Code[0] != "-x" {
		t.Fatalf("code = %q, want -x for a heuristic-only izafat word", w.Code[0])
	}
}

func TestAtafConsonantPairBecomesDoubleFlexibleAndClears(t *testing.T) {
	prev := word("شب", "=")
	conj := word("و", "-")
	next := word("روز", "=-")
	Apply(lineOf(prev, conj, next), nil)

	if prev.Code[0] != "xx" {
		t.Fatalf("previous code = %q, want xx", prev.Code[0])
	}
	if conj.Code[0] != "" {
		t.Fatalf("conjunction code = %q, want cleared (empty string, not removed)", conj.Code[0])
	}
	if len(conj.Code) != 1 {
		t.Fatalf("conjunction must keep its code slot, got %d entries", len(conj.Code))
	}
	if next.Code[0] != "=-" {
		t.Fatalf("following word must be untouched, got %q", next.Code[0])
	}
}

func TestAtafAfterAlifOrYehDoesNothing(t *testing.T) {
	prev := word("صحرا", "-==")
	conj := word("و", "-")
	processAtaf(lineOf(prev, conj), nil)

	if prev.Code[0] != "-==" || conj.Code[0] != "-" {
		t.Fatalf("ataf after a final alif must be a no-op, got %q, %q", prev.Code[0], conj.Code[0])
	}
}

func TestAtafAfterVowelDowngradesFinalSyllable(t *testing.T) {
	prev := word("آرزو", "=-=")
	conj := word("و", "-")
	processAtaf(lineOf(prev, conj), nil)

	if prev.Code[0] != "=--x" {
		t.Fatalf("previous code = %q, want =--x", prev.Code[0])
	}
	if conj.Code[0] != "" {
		t.Fatalf("conjunction code = %q, want cleared", conj.Code[0])
	}
}

func TestGraftingAddsAlternateCodesOnly(t *testing.T) {
	prev := word("دم", "=")
	next := word("اندھیرے", "-=x")
	Apply(lineOf(prev, next), nil)

	if len(prev.TaqtiWordGraft) != 1 || prev.TaqtiWordGraft[0] != "-" {
		t.Fatalf("graft codes = %#v, want [-]", prev.TaqtiWordGraft)
	}
	if prev.Code[0] != "=" {
		t.Fatalf("original code = %q, want it preserved alongside the graft", prev.Code[0])
	}
}

func TestGraftingSkipsVowelFinalPreviousWord(t *testing.T) {
	prev := word("رہا", "-=")
	next := word("اجالا", "-=x")
	processWordGrafting(lineOf(prev, next), nil)

	if len(prev.TaqtiWordGraft) != 0 {
		t.Fatalf("graft codes = %#v, want none after a vowel-final word", prev.TaqtiWordGraft)
	}
}

func TestGraftingLongFinalShortens(t *testing.T) {
	prev := word("طرف", "-=")
	next := word("اجالا", "-=x")
	processWordGrafting(lineOf(prev, next), nil)

	if len(prev.TaqtiWordGraft) != 1 || prev.TaqtiWordGraft[0] != "--" {
		t.Fatalf("graft codes = %#v, want [--]", prev.TaqtiWordGraft)
	}
}
