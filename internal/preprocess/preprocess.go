// Package preprocess turns a raw Urdu line into the ordered word list the
// rest of the engine operates on. It is grounded on the reference
// Lines.__init__/utils.text cleanup cascade, and on the teacher's
// bufio.SplitFunc-over-io.Reader tokenizer idiom (words.NewScanner):
// the line splitter here is shaped the same way -- a SplitFunc driven
// by a bufio.Scanner -- even though what it splits on (comma/space runs,
// then a noon+stop-consonant rule) is specific to this domain rather
// than Unicode word-break rules.
package preprocess

import (
	"bufio"
	"strings"
	"unicode/utf8"

	"github.com/tariquesani/bahr/internal/model"
)

// noonStops is the set of stop consonants that trigger a noon/noon-ghunna
// split: a token containing ن or ں immediately followed by one of these
// is split into two tokens right after the stop consonant.
var noonStops = map[rune]bool{
	'ک': true, 'گ': true, 'ت': true, 'د': true,
	'پ': true, 'ب': true, 'چ': true, 'ج': true,
}

// cleanSet holds punctuation and zero-width characters stripped from the
// line before splitting.
var cleanSet = map[rune]bool{
	'۔': true, '،': true, '؟': true, '!': true, '.': true, ',': true,
	'"': true, '\'': true, '‌': true, '‍': true, '‎': true,
	'‏': true, '\uFEFF': true,
}

// cleanLine strips the fixed punctuation/zero-width set from line.
func cleanLine(line string) string {
	var b strings.Builder
	b.Grow(len(line))
	for _, r := range line {
		if cleanSet[r] {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// SplitFunc is a bufio.SplitFunc that tokenizes a cleaned line on runs of
// comma or whitespace, matching the teacher's words.SplitFunc shape
// (advance/token/err over a []byte window) rather than strings.Fields,
// since callers may want to stream a longer text through a
// bufio.Scanner one raw token at a time.
func SplitFunc(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if len(data) == 0 {
		if atEOF {
			return 0, nil, nil
		}
		return 0, nil, nil
	}

	isSep := func(r rune) bool {
		return r == ',' || r == '،' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	}

	start := 0
	for start < len(data) {
		r, w := utf8.DecodeRune(data[start:])
		if !isSep(r) {
			break
		}
		start += w
	}

	pos := start
	for pos < len(data) {
		r, w := utf8.DecodeRune(data[pos:])
		if isSep(r) {
			return pos, data[start:pos], nil
		}
		pos += w
	}

	if atEOF && pos > start {
		return pos, data[start:pos], nil
	}
	if atEOF {
		return pos, nil, nil
	}
	// Request more data: we may be mid-token.
	return start, nil, nil
}

// splitNoonStop applies the ن/ں + stop-consonant split rule: the first
// occurrence only. ن/ں must be immediately followed by one of the
// noonStops consonants, so a token with a vowel or other letter between
// them is not split; once split, both halves are returned as separate
// tokens.
func splitNoonStop(token string) []string {
	r := []rune(token)
	for i := 0; i < len(r)-1; i++ {
		if (r[i] == 'ن' || r[i] == 'ں') && noonStops[r[i+1]] {
			left := string(r[:i+2])
			right := string(r[i+2:])
			if right == "" {
				return []string{left}
			}
			return []string{left, right}
		}
	}
	return []string{token}
}

// cleanWord normalises a handful of letter forms: trailing ئ becomes
// یٔ, a bare alif carrying the combining madda (U+0653) becomes the
// precomposed آ, and the single-codepoint ۂ (U+06C2) becomes its
// decomposed ہ + hamza form.
func cleanWord(token string) string {
	r := []rune(token)
	if len(r) > 0 && r[len(r)-1] == 'ئ' {
		r = append(r[:len(r)-1], 'ی', 'ٔ')
	}
	s := strings.ReplaceAll(string(r), "\u0627\u0653", "\u0622")
	return strings.ReplaceAll(s, "\u06C2", "\u06C1\u0654")
}

// Preprocess cleans, splits and normalises a raw Urdu line into its
// ordered word list. Empty words are silently dropped. Cached profile
// fields (Word.Stripped, Word.Length) are populated via model.NewWord.
func Preprocess(line string) []*model.Word {
	cleaned := cleanLine(line)

	scanner := bufio.NewScanner(strings.NewReader(cleaned))
	scanner.Split(SplitFunc)

	var words []*model.Word
	for scanner.Scan() {
		tok := scanner.Text()
		if tok == "" {
			continue
		}
		for _, piece := range splitNoonStop(tok) {
			normalized := cleanWord(piece)
			if normalized == "" {
				continue
			}
			words = append(words, model.NewWord(normalized))
		}
	}
	return words
}

// Line runs Preprocess and wraps the result in a model.Line, retaining
// the original raw text for result records.
func Line(raw string) *model.Line {
	return &model.Line{Words: Preprocess(raw), Raw: raw}
}
