// Package scan implements the length-indexed heuristic scanners (L1..L5)
// that turn a diacritic-stripped Urdu word stem into a syllable-weight
// code over {-, =, x}. The decision trees below are ported branch for
// branch from the reference scanner tables; the branching is irregular
// phonology, not something that can be collapsed into a smaller rule set,
// so the shape of the Go code deliberately mirrors the shape of the
// source tables rather than being refactored into something shorter.
package scan

import (
	"github.com/tariquesani/bahr/internal/orthography"
)

// Scan dispatches word to the scanner appropriate for its effective
// length: the diacritic- and aspirate-stripped rune count. Words of
// five or more effective characters are handled by Five, which performs
// its own further splitting for longer stems.
func Scan(word string) string {
	stripped := []rune(orthography.RemoveAraab(orthography.RemoveAspirates(word)))
	switch len(stripped) {
	case 0:
		return ""
	case 1:
		return One(word)
	case 2:
		return Two(word)
	case 3:
		return Three(word)
	case 4:
		return Four(word)
	default:
		return Five(word)
	}
}

// One handles single-letter stems: the long alif-madda آ scans long,
// anything else scans short.
func One(word string) string {
	if orthography.RemoveAraab(word) == "آ" {
		return "="
	}
	return "-"
}

// Two handles two-letter stems. Words starting with آ scan "=-"; words
// ending in a vowel+h letter are flexible ("x"); everything else is "=".
func Two(word string) string {
	noAspirate := []rune(orthography.RemoveAspirates(word))
	stripped := []rune(orthography.RemoveAraab(string(noAspirate)))

	w := []rune(word)
	switch {
	case len(w) > 0 && w[0] == 'آ':
		return "=-"
	case len(stripped) > 0 && orthography.IsVowelPlusH(stripped[len(stripped)-1]):
		return "x"
	default:
		return "="
	}
}

func at(s []rune, i int) (rune, bool) {
	if i >= 0 && i < len(s) {
		return s[i], true
	}
	return 0, false
}

func isZerZabarPaish(r rune) bool {
	return r == orthography.Zer || r == orthography.Zabar || r == orthography.Paish
}

// Three handles three-letter stems.
func Three(word string) string {
	noAspirate := []rune(orthography.RemoveAspirates(word))
	stripped := []rune(orthography.RemoveAraab(string(noAspirate)))

	switch len(stripped) {
	case 1:
		if stripped[0] == 'آ' {
			return "-"
		}
		return "="
	case 2:
		return Two(word)
	}

	var code string
	if orthography.IsMuarrab(string(noAspirate)) {
		pos := []rune(orthography.LocateAraab(string(noAspirate)))
		switch {
		case len(pos) > 1 && pos[1] == orthography.Jazm:
			if stripped[0] == 'آ' {
				code = "=--"
			} else {
				code = "=-"
			}
		case len(pos) > 1 && isZerZabarPaish(pos[1]):
			code = "-="
		case len(pos) > 1 && pos[1] == orthography.Shadd:
			code = "=="
		case len(stripped) > 2 && stripped[2] == 'ا':
			code = "-="
		case len(stripped) > 2 && isVowelOf(stripped[2], 'ا', 'ی', 'ے', 'و', 'ہ'):
			if stripped[1] == 'ا' {
				code = "=-"
			} else {
				code = "-="
			}
		case (len(stripped) > 1 && isVowelOf(stripped[1], 'ا', 'ی', 'ے', 'و')) ||
			(len(stripped) > 2 && stripped[2] == 'ہ'):
			code = "=-"
		default:
			code = "=-"
		}
	} else {
		switch {
		case stripped[0] == 'آ':
			code = "=="
		case len(stripped) > 1 && stripped[1] == 'ا':
			code = "=-"
		case len(stripped) > 2 && stripped[2] == 'ا':
			code = "-="
		case len(stripped) > 1 && isVowelOf(stripped[1], 'ی', 'ے', 'و', 'ہ'):
			switch {
			case len(stripped) > 2 && stripped[2] == 'ہ':
				code = "=-"
			case len(stripped) > 2 && isVowelOf(stripped[2], 'ی', 'ے', 'و'):
				code = "-="
			default:
				code = "=-"
			}
		case len(stripped) > 2 && isVowelOf(stripped[2], 'ی', 'ے', 'و', 'ہ'):
			code = "-="
		case len(stripped) > 0 && orthography.IsVowelPlusH(stripped[0]):
			code = "-="
		default:
			code = "-="
		}
	}

	if orthography.ContainsNoon(string(stripped)) {
		code = noonGhunna(word, code)
	}
	return code
}

func isVowelOf(r rune, options ...rune) bool {
	for _, o := range options {
		if r == o {
			return true
		}
	}
	return false
}

// Four handles four-letter stems.
func Four(word string) string {
	noAspirate := []rune(orthography.RemoveAspirates(word))
	stripped := []rune(orthography.RemoveAraab(string(noAspirate)))

	var code string
	switch len(stripped) {
	case 1:
		code = One(string(noAspirate))
	case 2:
		code = Two(string(noAspirate))
	case 3:
		code = Three(string(noAspirate))
	default:
		pos := []rune(orthography.LocateAraab(string(noAspirate)))
		switch {
		case stripped[0] == 'آ':
			remaining := ""
			if len(noAspirate) > 1 {
				remaining = string(noAspirate[1:])
			}
			code = "=" + Three(remaining)
		case orthography.IsMuarrab(string(noAspirate)):
			switch {
			case len(stripped) > 1 && stripped[1] == 'ا':
				if p, ok := at(pos, 2); ok && p == orthography.Jazm {
					code = "=--"
				} else {
					code = "=="
				}
			case len(stripped) > 2 && stripped[2] == 'ا':
				code = "-=-"
			case len(stripped) > 1 && stripped[1] == 'و':
				code = fourMuarrabWow(stripped, pos)
			case len(stripped) > 1 && stripped[1] == 'ی':
				code = fourMuarrabYeh(stripped, pos)
			default:
				code = fourMuarrabDefault(stripped, pos)
			}
		case len(stripped) > 2 && orthography.IsVowelPlusH(stripped[2]):
			switch {
			case len(stripped) > 3 && stripped[3] == 'ا':
				code = "=="
			case len(stripped) > 1 && orthography.IsVowelPlusH(stripped[1]):
				code = "=="
			default:
				code = "-=-"
			}
		default:
			code = "=="
		}
	}

	if orthography.ContainsNoon(string(stripped)) {
		code = noonGhunna(word, code)
	}
	return code
}

func fourMuarrabWow(stripped, pos []rune) string {
	if p3, ok := at(stripped, 3); ok && p3 == 'ت' {
		if d3, ok := at(pos, 3); ok && d3 == orthography.Jazm {
			return "=-"
		}
	}
	if p1, ok := at(pos, 1); ok && isZerZabarPaish(p1) {
		return "-=-"
	}
	if p2, ok := at(pos, 2); ok && p2 == orthography.Jazm {
		return "=--"
	}
	return "=="
}

func fourMuarrabYeh(stripped, pos []rune) string {
	if p3, ok := at(stripped, 3); ok && p3 == 'ت' {
		if d3, ok := at(pos, 3); ok && d3 == orthography.Jazm {
			return "=-"
		}
	}
	if p0, ok := at(pos, 0); ok && isZerZabarPaish(p0) {
		if p1, ok := at(pos, 1); ok && isZerZabarPaish(p1) {
			return "-=-"
		}
		if p2, ok := at(pos, 2); ok && p2 == orthography.Jazm {
			return "=--"
		}
		return "=="
	}
	return "=="
}

func fourMuarrabDefault(stripped, pos []rune) string {
	p0, hasP0 := at(pos, 0)
	p1, hasP1 := at(pos, 1)

	if hasP0 && isZerZabarPaish(p0) {
		switch {
		case hasP1 && isZerZabarPaish(p1):
			if v2, ok := at(stripped, 2); ok && orthography.IsVowelPlusH(v2) {
				return "-=-"
			}
			if p2, ok := at(pos, 2); ok && p2 == orthography.Jazm {
				return "-=-"
			}
			return "--="
		case hasP1 && p1 == orthography.Jazm:
			return "=="
		default:
			if p2, ok := at(pos, 2); ok && p2 == orthography.Jazm {
				return "-=-"
			}
			if v3, ok := at(stripped, 3); ok && (v3 == 'ا' || v3 == 'ی') {
				return "--="
			}
			return "-=-"
		}
	}

	if hasP1 && p1 == orthography.Jazm {
		if p2, ok := at(pos, 2); ok && p2 == orthography.Jazm {
			return "=="
		}
		return "=--"
	}

	if p2, ok := at(pos, 2); ok && p2 == orthography.Jazm {
		return "-=-"
	}
	if p2, ok := at(pos, 2); ok && isZerZabarPaish(p2) {
		return "=="
	}
	if v2, ok := at(stripped, 2); ok && orthography.IsVowelPlusH(v2) {
		return "-=-"
	}
	return "=="
}

// Five handles stems of five or more effective characters. For stems
// beyond five characters it recurses by carving a prefix and delegating
// the remainder to Three or Four, per the original split tables.
func Five(word string) string {
	noAspirate := []rune(orthography.RemoveAspirates(word))
	stripped := []rune(orthography.RemoveAraab(string(noAspirate)))

	// Aspirated-yeh short circuit: "...ھی..." forces a short medial.
	wr := []rune(word)
	for i := 0; i+2 < len(wr); i++ {
		if wr[i+1] == 'ھ' && wr[i+2] == 'ی' {
			return "-=="
		}
	}

	var code string
	switch len(stripped) {
	case 3:
		code = Three(word)
	case 4:
		code = Four(word)
	default:
		pos := []rune(orthography.LocateAraab(string(noAspirate)))
		switch {
		case stripped[0] == 'آ':
			remaining := ""
			if len(noAspirate) > 2 {
				remaining = string(noAspirate[2:])
			}
			code = "=" + Four(remaining)
		case orthography.IsMuarrab(string(noAspirate)):
			code = fiveMuarrab(noAspirate, stripped, pos)
		case len(stripped) > 1 && (stripped[1] == 'ا' || stripped[2] == 'ا' || safeIdx(stripped, 3) == 'ا'):
			code = fiveNonMuarrabAlifOther(stripped)
		case len(stripped) > 1 && (orthography.IsVowelPlusH(stripped[1]) || orthography.IsVowelPlusH(stripped[2]) || orthography.IsVowelPlusH(safeIdx(stripped, 3))):
			code = fiveNonMuarrabVowel(stripped)
		default:
			code = fiveConsonants(stripped)
		}
	}

	if orthography.ContainsNoon(string(stripped)) {
		code = noonGhunna(word, code)
	}
	if hasSuffix(code, "==") && hasSuffixRunes(stripped, 'ے') {
		code = code[:len(code)-1] + "x"
	}
	return code
}

func safeIdx(s []rune, i int) rune {
	if i >= 0 && i < len(s) {
		return s[i]
	}
	return 0
}

func hasSuffix(s, suffix string) bool {
	if len(s) < len(suffix) {
		return false
	}
	return s[len(s)-len(suffix):] == suffix
}

func hasSuffixRunes(s []rune, suffix rune) bool {
	return len(s) > 0 && s[len(s)-1] == suffix
}

func fiveMuarrab(noAspirate, stripped, pos []rune) string {
	if len(stripped) > 1 && (stripped[1] == 'ا' || safeIdx(stripped, 2) == 'ا' || safeIdx(stripped, 3) == 'ا') {
		switch {
		case len(stripped) > 2 && stripped[2] == 'ا':
			// Position 3 alif (0-indexed 2).
			tail := string(noAspirate[minInt(3, len(noAspirate)):])
			if runeContains([]rune(tail), 'ئ') || hasSuffixRunes(stripped, 'ے') {
				return "-=x"
			}
			return "-=="
		case len(stripped) > 1 && stripped[1] == 'ا':
			// Position 2 alif.
			d0 := hasDiacriticAt(pos, 0)
			d1 := hasDiacriticAt(pos, 1)
			var splitPos int
			switch {
			case d0 && d1:
				splitPos = 3
			case d0:
				splitPos = 4
			case d1:
				splitPos = 2
			default:
				splitPos = 3
			}
			return "=" + Three(tailFrom(noAspirate, splitPos))
		default:
			// Position 4 alif.
			if p1, ok := at(pos, 1); ok && isZerZabarPaish(p1) {
				return "--=-"
			}
			if p1, ok := at(pos, 1); ok && p1 == orthography.Jazm {
				return "--=-"
			}
			if safeIdx(stripped, 0) == 'ب' {
				return bPrefixAlt(stripped)
			}
			return "==-"
		}
	}

	if len(stripped) > 1 && (stripped[1] == 'و' || safeIdx(stripped, 2) == 'و' || safeIdx(stripped, 3) == 'و' ||
		stripped[1] == 'ی' || safeIdx(stripped, 2) == 'ی' || safeIdx(stripped, 3) == 'ی') {
		switch {
		case stripped[1] == 'و' || stripped[1] == 'ی':
			return fiveWowYehAtOne(noAspirate, stripped, pos)
		case safeIdx(stripped, 2) == 'و' || safeIdx(stripped, 2) == 'ی':
			return fiveWowYehAtTwo(pos)
		case safeIdx(stripped, 3) == 'و' || safeIdx(stripped, 3) == 'ی':
			return fiveWowYehAtThree(pos)
		default:
			return fiveWowYehOther(pos)
		}
	}

	// Muarrab path, no و/ی/ا vowel detected.
	if p1, ok := at(pos, 1); ok && isZerZabarPaish(p1) {
		if p2, ok := at(pos, 2); ok && isZerZabarPaish(p2) {
			if safeIdx(stripped, 4) == 'ا' {
				return "---="
			}
			return "--=-"
		}
		if p2, ok := at(pos, 2); ok && p2 == orthography.Jazm {
			return "-=="
		}
		return "-=="
	}
	if p1, ok := at(pos, 1); ok && p1 == orthography.Jazm {
		if hasDiacriticAt(pos, 0) {
			return "=" + Three(tailFrom(noAspirate, 4))
		}
		return "=" + Three(tailFrom(noAspirate, 3))
	}
	if p2, ok := at(pos, 2); ok && isZerZabarPaish(p2) {
		return "=-="
	}
	return ""
}

func tailFrom(s []rune, pos int) string {
	if pos < len(s) {
		return string(s[pos:])
	}
	return ""
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func runeContains(s []rune, r rune) bool {
	for _, c := range s {
		if c == r {
			return true
		}
	}
	return false
}

func hasDiacriticAt(pos []rune, i int) bool {
	p, ok := at(pos, i)
	return ok && p != ' '
}

func bPrefixAlt(stripped []rune) string {
	p1, ok := at(stripped, 1)
	switch {
	case ok && orthography.IsVowelPlusH(p1):
		return "==-"
	case ok && p1 == 'ر':
		return "==-"
	case ok && p1 == 'ن':
		return "==-"
	case ok && p1 == 'غ':
		return "==-"
	default:
		return "--=-"
	}
}

func fiveWowYehAtOne(noAspirate, stripped, pos []rune) string {
	if p1, ok := at(pos, 1); ok && p1 == orthography.Jazm {
		d0 := hasDiacriticAt(pos, 0)
		d1 := hasDiacriticAt(pos, 1)
		switch {
		case d0 && d1:
			return "=" + Three(tailFrom(noAspirate, 5))
		case d0:
			return "=" + Three(tailFrom(noAspirate, 4))
		case d1:
			return "=" + Three(tailFrom(noAspirate, 3))
		default:
			return "=" + Three(tailFrom(noAspirate, 4))
		}
	}
	if p1, ok := at(pos, 1); ok && isZerZabarPaish(p1) {
		if p2, ok := at(pos, 2); ok && isZerZabarPaish(p2) {
			return "--=-"
		}
		return "-=="
	}
	// "other" diacritic at position 1.
	if p2, ok := at(pos, 2); ok && isZerZabarPaish(p2) {
		if p3, ok := at(pos, 3); ok && isZerZabarPaish(p3) {
			return "=-="
		}
		return "==-"
	}
	if p2, ok := at(pos, 2); ok && p2 == orthography.Jazm {
		if p3, ok := at(pos, 3); ok && isZerZabarPaish(p3) {
			return "=-="
		}
		if p3, ok := at(pos, 3); ok && p3 == orthography.Jazm {
			return "=---"
		}
		if hasDiacriticAt(pos, 2) {
			return "=" + Three(tailFrom(noAspirate, 4))
		}
		return "=" + Three(tailFrom(noAspirate, 3))
	}
	return "=" + Three(tailFrom(noAspirate, 2))
}

func fiveWowYehAtTwo(pos []rune) string {
	if p2, ok := at(pos, 2); ok && isZerZabarPaish(p2) {
		if p1, ok := at(pos, 1); ok && isZerZabarPaish(p1) {
			if p3, ok := at(pos, 3); ok && isZerZabarPaish(p3) {
				return "-----"
			}
			return "--=-"
		}
	}
	return "-=="
}

func fiveWowYehAtThree(pos []rune) string {
	if p2, ok := at(pos, 2); ok && isZerZabarPaish(p2) {
		if p1, ok := at(pos, 1); ok && isZerZabarPaish(p1) {
			if p3, ok := at(pos, 3); ok && isZerZabarPaish(p3) {
				return "---="
			}
			return "--=-"
		}
	}
	if p2, ok := at(pos, 2); ok && p2 == orthography.Jazm {
		return "-=="
	}
	return "==-"
}

func fiveWowYehOther(pos []rune) string {
	if p2, ok := at(pos, 2); ok && isZerZabarPaish(p2) {
		if p1, ok := at(pos, 1); ok && isZerZabarPaish(p1) {
			if p3, ok := at(pos, 3); ok && isZerZabarPaish(p3) {
				return "-----"
			}
			return "--=-"
		}
	}
	if p2, ok := at(pos, 2); ok && p2 == orthography.Jazm {
		return "-=="
	}
	return "==-"
}

func fiveNonMuarrabAlifOther(stripped []rune) string {
	switch {
	case len(stripped) > 2 && stripped[2] == 'ا':
		return "-=="
	case len(stripped) > 1 && stripped[1] == 'ا':
		if safeIdx(stripped, 3) == 'ا' {
			return "==-"
		}
		if orthography.IsVowelPlusH(safeIdx(stripped, 3)) {
			if orthography.IsVowelPlusH(safeIdx(stripped, 4)) {
				return "=-="
			}
			return "==-"
		}
		if orthography.IsVowelPlusH(safeIdx(stripped, 4)) {
			return "=-="
		}
		return "==-"
	default:
		// Position 4 alif.
		if safeIdx(stripped, 0) == 'ب' {
			p1 := safeIdx(stripped, 1)
			switch {
			case orthography.IsVowelPlusH(p1), p1 == 'ر', p1 == 'ن', p1 == 'غ':
				return "==-"
			default:
				return "--=-"
			}
		}
		return "==-"
	}
}

func fiveNonMuarrabVowel(stripped []rune) string {
	switch {
	case len(stripped) > 2 && orthography.IsVowelPlusH(stripped[2]):
		return "-=="
	case len(stripped) > 1 && orthography.IsVowelPlusH(stripped[1]):
		switch {
		case orthography.IsVowelPlusH(safeIdx(stripped, 3)):
			if orthography.IsVowelPlusH(safeIdx(stripped, 4)) {
				return "=-="
			}
			return "==-"
		case orthography.IsVowelPlusH(safeIdx(stripped, 4)):
			return "=-="
		default:
			return "==-"
		}
	default:
		code := "==-"
		if safeIdx(stripped, 0) == 'ب' {
			p1 := safeIdx(stripped, 1)
			switch {
			case orthography.IsVowelPlusH(p1), p1 == 'ر', p1 == 'ن', p1 == 'غ':
				code = "==-"
			default:
				code = "--=-"
			}
		}
		if safeIdx(stripped, 4) == 'ت' && safeIdx(stripped, 3) == 'ی' {
			code = code[:len(code)-1] + "="
		}
		return code
	}
}

func fiveConsonants(stripped []rune) string {
	code := "==-"
	if safeIdx(stripped, 0) == 'ب' {
		p1 := safeIdx(stripped, 1)
		switch {
		case orthography.IsVowelPlusH(p1), p1 == 'ر', p1 == 'ن', p1 == 'غ':
			code = "==-"
		default:
			code = "--=-"
		}
	}
	if safeIdx(stripped, 0) == 'ت' || safeIdx(stripped, 0) == 'ش' {
		code = "-=="
	}
	if safeIdx(stripped, 4) == 'ت' && safeIdx(stripped, 3) == 'ی' {
		code = code[:len(code)-1] + "="
	}
	switch {
	case safeIdx(stripped, 4) == 'ا':
		code = "-=="
	case orthography.IsVowelPlusH(safeIdx(stripped, 4)):
		code = "=-="
	}
	return code
}

// noonGhunna adjusts code for words whose non-final ن carries jazm,
// following the length-indexed exception table.
func noonGhunna(word, code string) string {
	sub := []rune(orthography.RemoveAspirates(word))
	stripped := []rune(orthography.RemoveAraab(string(sub)))
	pos := []rune(orthography.LocateAraab(string(sub)))

	switch len(stripped) {
	case 3:
		switch {
		case stripped[0] == 'آ':
			if stripped[1] == 'ن' && len(pos) > 1 && pos[1] == orthography.Jazm {
				if code == "=--" {
					code = "=-"
				}
			}
		case stripped[1] == 'ن' && len(pos) > 1 && pos[1] == orthography.Jazm:
			if code == "=-" {
				if stripped[0] == 'ا' {
					code = "=-"
				} else if orthography.IsVowelPlusH(stripped[0]) {
					code = "="
				}
			}
		}
	case 4:
		switch {
		case stripped[0] == 'آ':
			if stripped[1] == 'ن' && len(pos) > 1 && pos[1] == orthography.Jazm {
				if code == "=-=" {
					code = "=="
				}
			}
		case stripped[1] == 'ن' && len(pos) > 1 && pos[1] == orthography.Jazm:
			if code == "==" {
				if stripped[0] == 'ا' {
					code = "=="
				} else if orthography.IsVowelPlusH(stripped[0]) {
					code = "-="
				}
			}
		case stripped[2] == 'ن' && len(pos) > 2 && pos[2] == orthography.Jazm:
			switch {
			case code == "=--":
				if orthography.IsVowelPlusH(stripped[1]) {
					code = "=-"
				}
			case code == "==":
				if orthography.IsVowelPlusH(stripped[1]) && !orthography.IsVowelPlusH(stripped[3]) {
					code = "=-"
				}
			}
		}
	case 5:
		switch {
		case stripped[0] == 'آ':
			if stripped[1] == 'ن' && len(pos) > 1 && pos[1] == orthography.Jazm {
				if len(code) > 1 && code[1] == '-' {
					code = code[:1] + code[2:]
				}
			}
		case stripped[1] == 'ن' && len(pos) > 1 && pos[1] == orthography.Jazm:
			// انگیزی-style words: no code change in the source tables.
		case stripped[2] == 'ن' && len(pos) > 2 && pos[2] == orthography.Jazm:
			if len(code) > 1 && code[0] == '=' && code[1] == '-' {
				if orthography.IsVowelPlusH(stripped[1]) {
					code = code[:1] + code[2:]
				}
			}
		case stripped[3] == 'ن' && len(pos) > 3 && pos[3] == orthography.Jazm:
			if len(code) >= 2 && code[len(code)-1] == '-' && code[len(code)-2] == '-' {
				if orthography.IsVowelPlusH(stripped[2]) {
					if len(code) > 2 && code[len(code)-3] == '=' {
						code = code[:len(code)-1]
					}
				}
			}
		}
	}

	return code
}
