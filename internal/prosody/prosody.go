// Package prosody applies the four ordered, context-sensitive line
// rewrite passes that turn per-word candidate codes into the codes a
// meter match actually sees: Al-prefix elision, Izafat marking, Ataf
// (و) conjunction handling, and vowel-initial word grafting. Grounded
// on the reference ProsodicRules static methods; call order matters
// and must not change: Al -> Izafat -> Ataf -> Grafting.
package prosody

import (
	"github.com/tariquesani/bahr/internal/diag"
	"github.com/tariquesani/bahr/internal/model"
	"github.com/tariquesani/bahr/internal/orthography"
)

// Apply runs all four passes, in order, over line's words.
func Apply(line *model.Line, logger *diag.Logger) {
	processAlPrefix(line, logger)
	processIzafat(line, logger)
	processAtaf(line, logger)
	processWordGrafting(line, logger)
}

func runes(s string) []rune { return []rune(s) }

// processAlPrefix absorbs a following "ال" (the Arabic definite
// article) into the preceding word's last syllable, when that word
// ends in zabar or paish.
func processAlPrefix(line *model.Line, logger *diag.Logger) {
	words := line.Words
	for i := 0; i < len(words)-1; i++ {
		wrd, nwrd := words[i], words[i+1]
		nw := runes(nwrd.Word)
		if len(nw) <= 1 || nw[0] != 'ا' || nw[1] != 'ل' {
			continue
		}
		ww := runes(wrd.Word)
		if len(ww) == 0 {
			continue
		}
		last := ww[len(ww)-1]
		if last != orthography.Zabar && last != orthography.Paish {
			continue
		}

		stripped := runes(orthography.RemoveAraab(wrd.Word))
		length := len(stripped)
		if length == 0 {
			continue
		}

		applied := false
		for k := range wrd.Code {
			code := wrd.Code[k]
			if orthography.IsVowelPlusH(stripped[length-1]) {
				if len(code) == 0 {
					continue
				}
				switch code[len(code)-1] {
				case '=', 'x':
					wrd.Code[k] = code[:len(code)-1] + "="
					applied = true
				case '-':
					wrd.Code[k] = code[:len(code)-1] + "="
					applied = true
				}
			} else {
				if length == 2 && orthography.IsConsonantPlusConsonant(wrd.Word) {
					if len(code) > 0 {
						wrd.Code[k] = code[:len(code)-1] + "=="
						applied = true
					}
					continue
				}
				if len(code) == 0 {
					continue
				}
				switch code[len(code)-1] {
				case '=', 'x':
					wrd.Code[k] = code[:len(code)-1] + "-="
					applied = true
				case '-':
					wrd.Code[k] = code[:len(code)-1] + "="
					applied = true
				}
			}
		}

		for k := range nwrd.Code {
			if len(nwrd.Code[k]) > 0 {
				nwrd.Code[k] = nwrd.Code[k][1:]
			}
		}
		for l := range wrd.Muarrab {
			wrd.Muarrab[l] = wrd.Muarrab[l] + "ل"
		}
		for l := range nwrd.Muarrab {
			if len([]rune(nwrd.Muarrab[l])) >= 2 {
				nwrd.Muarrab[l] = string(runes(nwrd.Muarrab[l])[2:])
			}
		}

		if applied {
			wrd.ProsodicTransformationSteps = append(wrd.ProsodicTransformationSteps,
				"Extended previous word to absorb 'ال' (Al).")
			nwrd.ProsodicTransformationSteps = append(nwrd.ProsodicTransformationSteps,
				"Merged 'ال' with previous word (Al).")
			if logger != nil {
				logger.Infof("RULE | Al prefix | Applied to word %q | previous word codes updated", nwrd.Word)
			}
		}
	}
}

// processIzafat adjusts the final syllable of a word bearing an izafat
// marker (a trailing zer, izafat hamza, or ۂ), branching differently
// for words resolved via the database versus heuristic-only words.
func processIzafat(line *model.Line, logger *diag.Logger) {
	for _, wrd := range line.Words {
		if !orthography.IsIzafat(wrd.Word) {
			continue
		}
		applied := false
		tWord := runes(orthography.RemoveAraab(wrd.Word))

		if wrd.ID != "" {
			count := len(wrd.Code)
			for k := 0; k < count; k++ {
				code := wrd.Code[k]
				switch {
				case wrd.Length == 2:
					wrd.Code[k] = "xx"
					applied = true
				case len(code) > 0 && (code[len(code)-1] == '=' || code[len(code)-1] == 'x'):
					switch {
					case len(tWord) > 0 && (tWord[len(tWord)-1] == 'ا' || tWord[len(tWord)-1] == 'و'):
						wrd.Code[k] = code[:len(code)-1] + "=x"
						applied = true
					case len(tWord) > 0 && tWord[len(tWord)-1] == 'ی':
						wrd.Code = append(wrd.Code, code+"x")
						wrd.Code[k] = code[:len(code)-1] + "-x"
						applied = true
					default:
						wrd.Code[k] = code[:len(code)-1] + "-x"
						applied = true
					}
				case len(code) > 0 && code[len(code)-1] == '-':
					wrd.Code[k] = code[:len(code)-1] + "x"
					applied = true
				}
			}
		} else {
			for k := range wrd.Code {
				code := wrd.Code[k]
				switch {
				case len(code) > 0 && (code[len(code)-1] == '=' || code[len(code)-1] == 'x'):
					wrd.Code[k] = code[:len(code)-1] + "-x"
					applied = true
				case len(code) > 0 && code[len(code)-1] == '-':
					wrd.Code[k] = code[:len(code)-1] + "x"
					applied = true
				}
			}
		}

		if applied {
			wrd.ProsodicTransformationSteps = append(wrd.ProsodicTransformationSteps,
				"Applied Izafat adjustment to final syllable.")
			if logger != nil {
				logger.Infof("RULE | Izafat | Applied to word %q", wrd.Word)
			}
		}
	}
}

// processAtaf applies the Ataf (conjunction و) rule, classifying the
// preceding word's final rune: "alif-ya" (already correct, no change
// needed), "we-he" (و or ے, needs "-x"/"x" downgrade), or "other vowel"
// (same downgrade, distinguished in the source only for readability).
func processAtaf(line *model.Line, logger *diag.Logger) {
	for i := 1; i < len(line.Words); i++ {
		wrd, pwrd := line.Words[i], line.Words[i-1]
		if wrd.Word != "و" {
			continue
		}
		stripped := runes(orthography.RemoveAraab(pwrd.Word))
		length := len(stripped)
		if length == 0 {
			continue
		}

		previousModified := false
		conjunctionCleared := false

		downgrade := func(k int) {
			code := pwrd.Code[k]
			if len(code) == 0 {
				return
			}
			switch code[len(code)-1] {
			case '=', 'x':
				pwrd.Code[k] = code[:len(code)-1] + "-x"
				previousModified = true
			case '-':
				pwrd.Code[k] = code[:len(code)-1] + "x"
				previousModified = true
			default:
				return
			}
			for j := range wrd.Code {
				if wrd.Code[j] != "" {
					wrd.Code[j] = ""
					conjunctionCleared = true
				}
			}
		}

		for k := range pwrd.Code {
			last := stripped[length-1]
			if orthography.IsVowelPlusH(last) {
				if last == 'ا' || last == 'ی' {
					continue
				}
				downgrade(k)
			} else if length == 2 && orthography.IsConsonantPlusConsonant(orthography.RemoveAraab(pwrd.Word)) {
				pwrd.Code[k] = "xx"
				previousModified = true
				for j := range wrd.Code {
					if wrd.Code[j] != "" {
						wrd.Code[j] = ""
						conjunctionCleared = true
					}
				}
			} else {
				downgrade(k)
			}
		}

		if previousModified || conjunctionCleared {
			if previousModified {
				pwrd.ProsodicTransformationSteps = append(pwrd.ProsodicTransformationSteps,
					"Adjusted previous word code for conjunction 'و' (Ataf).")
			}
			if conjunctionCleared {
				wrd.ProsodicTransformationSteps = append(wrd.ProsodicTransformationSteps,
					"Cleared scansion codes for 'و' after merge (Ataf).")
			}
			if logger != nil {
				logger.Infof("RULE | Ataf | Applied to word %d (%q)", i, wrd.Word)
			}
		}
	}
}

// processWordGrafting creates taqti_word_graft candidate codes on a
// word immediately preceding a vowel-initial ("ا"/"آ") word, so the
// tree can try both the hiatus and the elided (grafted) reading.
func processWordGrafting(line *model.Line, logger *diag.Logger) {
	for i := 1; i < len(line.Words); i++ {
		wrd, prev := line.Words[i], line.Words[i-1]
		ww := runes(wrd.Word)
		if len(ww) == 0 || (ww[0] != 'ا' && ww[0] != 'آ') {
			continue
		}
		strippedPrev := runes(orthography.RemoveAraab(prev.Word))
		if len(strippedPrev) == 0 {
			continue
		}
		if orthography.IsVowelPlusH(strippedPrev[len(strippedPrev)-1]) {
			continue
		}

		for _, code := range prev.Code {
			if len(code) == 0 {
				continue
			}
			switch code[len(code)-1] {
			case '=':
				prev.TaqtiWordGraft = append(prev.TaqtiWordGraft, code[:len(code)-1]+"-")
			case '-':
				prev.TaqtiWordGraft = append(prev.TaqtiWordGraft, code[:len(code)-1])
			}
		}

		if len(prev.TaqtiWordGraft) > 0 {
			prev.ProsodicTransformationSteps = append(prev.ProsodicTransformationSteps,
				"Grafted with following vowel-initial word; added graft codes.")
			if logger != nil {
				logger.Infof("RULE | Word grafting | Applied to word %d (%q)", i, wrd.Word)
			}
		}
	}
}
