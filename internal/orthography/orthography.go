// Package orthography provides low-level Urdu script helpers: diacritic
// (araab) stripping and location, aspirate/nasal marker removal, and the
// vowel/consonant classifications the scanning and assignment packages
// build on.
package orthography

import (
	"strings"

	"github.com/clipperhouse/stringish"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// Diacritic indices mirror the historical ARABIC_DIACRITICS table order;
// callers that need a specific mark by name should use the named
// constants below rather than literal indices.
const (
	Shadd      rune = 'ّ' // gemination
	Zer        rune = 'ِ'
	Jazm       rune = 'ْ'
	KhariZer   rune = 'ٖ'
	NoonGhunna rune = '٘'
	KhariZabar rune = 'ٰ'
	DoZabar    rune = 'ً'
	DoZer      rune = 'ٍ'
	Zabar      rune = 'َ'
	Paish      rune = 'ُ'
	Izafat     rune = 'ٔ'
)

// Diacritics holds every mark stripped by RemoveAraab, in the same order
// as the original reference table so index-based comparisons stay stable.
var Diacritics = []rune{
	Shadd, Zer, Jazm, KhariZer, NoonGhunna, KhariZabar,
	DoZabar, DoZer, Zabar, Paish, Izafat,
}

// runeSet is a minimal implementation of the golang.org/x/text/runes.Set
// interface (Contains(rune) bool), letting us drive transform.Transformer
// pipelines (runes.Remove, runes.In) off a plain membership table.
type runeSet map[rune]bool

func (s runeSet) Contains(r rune) bool { return s[r] }

var diacriticSet = func() runeSet {
	s := make(runeSet, len(Diacritics))
	for _, d := range Diacritics {
		s[d] = true
	}
	return s
}()

// IsDiacritic reports whether r is one of the recognized araab marks.
func IsDiacritic(r rune) bool {
	return diacriticSet.Contains(r)
}

// RemoveAraab strips every diacritical mark from word, running a
// runes.Remove transformer over it with transform.String.
func RemoveAraab[T stringish.Interface](word T) string {
	s := string(word)
	if s == "" {
		return ""
	}
	out, _, err := transform.String(runes.Remove(diacriticSet), s)
	if err != nil {
		// Remove never fails on well-formed UTF-8 input; fall back to a
		// manual strip so malformed input still degrades gracefully.
		var b strings.Builder
		for _, r := range s {
			if !IsDiacritic(r) {
				b.WriteRune(r)
			}
		}
		return b.String()
	}
	return out
}

// RemoveAspirates strips the aspirate marker ھ (U+06BE) and the Urdu noon
// ں (U+06BA), the two "silent for scansion" letters the length scanners
// ignore before classifying a stem.
func RemoveAspirates[T stringish.Interface](word T) string {
	s := string(word)
	s = strings.ReplaceAll(s, "ھ", "")
	s = strings.ReplaceAll(s, "ں", "")
	return s
}

// LocateAraab returns a string the same rune-length as the stripped form
// of word, where position i holds the diacritic that followed the i'th
// base letter (or a space if none did). This mirrors the original
// locate_araab helper: it walks the raw word two runes at a time so a
// base letter immediately followed by a mark is "consumed" together.
func LocateAraab[T stringish.Interface](word T) string {
	w := []rune(string(word))
	var loc strings.Builder
	i := 0
	for i < len(w) {
		if i < len(w)-1 && IsDiacritic(w[i+1]) {
			loc.WriteRune(w[i+1])
			i += 2
		} else {
			loc.WriteRune(' ')
			i++
		}
	}
	return loc.String()
}

// IsMuarrab reports whether word carries any diacritical mark at all.
func IsMuarrab[T stringish.Interface](word T) bool {
	for _, r := range string(word) {
		if IsDiacritic(r) {
			return true
		}
	}
	return false
}

var vowelPlusH = map[rune]bool{
	'ا': true, 'ی': true, 'ے': true, 'و': true, 'ہ': true, 'ؤ': true,
}

// IsVowelPlusH reports whether r is one of the "flexible syllable"
// letters: ا، ی، ے، و، ہ، ؤ.
func IsVowelPlusH(r rune) bool {
	return vowelPlusH[r]
}

// IsIzafat reports whether the last rune of word is an izafat marker:
// zer, the izafat hamza, or the heh-with-hamza ۂ.
func IsIzafat[T stringish.Interface](word T) bool {
	w := []rune(string(word))
	if len(w) == 0 {
		return false
	}
	last := w[len(w)-1]
	return last == Zer || last == Izafat || last == 'ۂ'
}

// IsConsonantPlusConsonant reports whether the first two runes of word
// are both non-vowel letters.
func IsConsonantPlusConsonant[T stringish.Interface](word T) bool {
	w := []rune(string(word))
	if len(w) < 2 {
		return false
	}
	isVowel := func(r rune) bool {
		return r == 'ا' || r == 'ی' || r == 'ے' || r == 'ہ'
	}
	return !isVowel(w[1]) && !isVowel(w[0])
}

// ContainsNoon reports whether word contains ن anywhere before its last
// rune; a trailing noon never triggers nasalisation adjustment.
func ContainsNoon[T stringish.Interface](word T) bool {
	w := []rune(string(word))
	if len(w) <= 1 {
		return false
	}
	for _, r := range w[:len(w)-1] {
		if r == 'ن' {
			return true
		}
	}
	return false
}

// RemoveShadd expands a gemination mark into the jazm+repeat+zabar
// sequence it stands for. Only muarrab (diacritic-bearing) words are
// touched; plain text passes through unchanged.
func RemoveShadd[T stringish.Interface](word T) string {
	w := []rune(string(word))
	if !IsMuarrab(string(w)) {
		return string(w)
	}

	var out []rune
	for i := 0; i < len(w); i++ {
		if w[i] != Shadd {
			out = append(out, w[i])
			continue
		}
		switch {
		case i-2 >= 0 && !IsDiacritic(w[i-2]) && !IsDiacritic(w[i-1]):
			if len(out) > 0 {
				out = out[:len(out)-1]
			}
			out = append(out, w[i-1], Jazm, w[i-1], Zabar)
		case i-2 >= 0 && IsDiacritic(w[i-1]):
			if len(out) >= 2 {
				out = out[:len(out)-2]
			}
			out = append(out, w[i-2], Jazm, w[i-2], Zabar)
		case i-2 >= 0:
			// w[i-2] is itself a diacritic
			out = append(out, Jazm, w[i-1], Zabar)
		case i-1 >= 0:
			out = append(out, Jazm, w[i-1], Zabar)
		}
	}
	return string(out)
}
