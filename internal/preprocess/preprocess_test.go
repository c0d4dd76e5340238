package preprocess

import "testing"

func TestPreprocessDropsPunctuationAndSplitsOnSpace(t *testing.T) {
	// اندھیرے carries ن + stop consonant and is itself split in two.
	words := Preprocess("دم اندھیرے، میں گھٹ رہا ہے۔")
	if len(words) != 7 {
		t.Fatalf("got %d words, want 7: %#v", len(words), words)
	}
	if words[0].Word != "دم" {
		t.Fatalf("first word = %q", words[0].Word)
	}
	if words[1].Word != "اند" || words[2].Word != "ھیرے" {
		t.Fatalf("words 1, 2 = %q, %q; want the noon+stop split اند, ھیرے", words[1].Word, words[2].Word)
	}
	last := words[len(words)-1].Word
	if last != "ہے" {
		t.Fatalf("last word = %q, want ہے", last)
	}
}

func TestPreprocessEmptyLineYieldsNoWords(t *testing.T) {
	words := Preprocess("۔،!")
	if len(words) != 0 {
		t.Fatalf("got %d words, want 0", len(words))
	}
}

func TestSplitNoonStopSplitsAfterStopConsonant(t *testing.T) {
	got := splitNoonStop("بندگی")
	if len(got) != 2 {
		t.Fatalf("got %d pieces, want 2: %#v", len(got), got)
	}
	if got[0] != "بند" {
		t.Fatalf("first piece = %q, want بند", got[0])
	}
}

func TestSplitNoonStopLeavesOrdinaryWordAlone(t *testing.T) {
	got := splitNoonStop("اجالا")
	if len(got) != 1 || got[0] != "اجالا" {
		t.Fatalf("got %#v, want unchanged single token", got)
	}
}

func TestCleanWordNormalizesTrailingHamzaYeh(t *testing.T) {
	if got := cleanWord("کئ"); got != "کیٔ" {
		t.Fatalf("cleanWord(کئ) = %q, want کیٔ", got)
	}
}

func TestLineRetainsRawText(t *testing.T) {
	raw := "دم اندھیرے میں"
	l := Line(raw)
	if l.Raw != raw {
		t.Fatalf("Raw = %q, want %q", l.Raw, raw)
	}
	if len(l.Words) != 4 {
		t.Fatalf("got %d words, want 4 (اندھیرے splits)", len(l.Words))
	}
}
