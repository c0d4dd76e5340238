// Package assign implements the three-strategy word-code assignment
// cascade of §4.3: database lookup, length-scanner heuristic, and
// compound split. Grounded on the reference WordScansionAssigner's
// find_word/assign_code/compound_word methods and word_lookup.py's
// query shapes; see DESIGN.md for the consolidation of the reference's
// separate WordCodeResolver into this single type.
package assign

import (
	"context"
	"strconv"
	"strings"

	"github.com/tariquesani/bahr/internal/diag"
	"github.com/tariquesani/bahr/internal/model"
	"github.com/tariquesani/bahr/internal/orthography"
	"github.com/tariquesani/bahr/internal/scan"
)

// DefaultCompoundSplitCeiling bounds the Cartesian product a compound
// split can produce before the assigner truncates and logs a
// diagnostic, resolving §9's open-ended "implementers may cap" note.
const DefaultCompoundSplitCeiling = 64

// suffixVariants are the twelve " 1" .. " 12" space-suffixed probes
// tried against mastertable after the base form.
var suffixVariants = func() []string {
	out := make([]string, 12)
	for i := 1; i <= 12; i++ {
		out[i-1] = " " + strconv.Itoa(i)
	}
	return out
}()

// Assigner orchestrates the three word-code assignment strategies.
type Assigner struct {
	Oracle  LookupOracle
	Logger  *diag.Logger
	Ceiling int
}

// New returns an Assigner. A nil oracle makes every database lookup a
// miss, a legitimate heuristics-only configuration. A non-positive
// ceiling falls back to DefaultCompoundSplitCeiling.
func New(oracle LookupOracle, logger *diag.Logger, ceiling int) *Assigner {
	if ceiling <= 0 {
		ceiling = DefaultCompoundSplitCeiling
	}
	return &Assigner{Oracle: oracle, Logger: logger, Ceiling: ceiling}
}

// Assign populates w.Code and its parallel Muarrab/DBIDs/Language
// slices (and IsVaried for mastertable candidates) in place, trying
// database lookup, then the length-
// scanner heuristic, then compound split, in that order. It is a no-op
// if w already carries a non-empty code list.
func (a *Assigner) Assign(ctx context.Context, w *model.Word) {
	if len(w.Code) > 0 {
		return
	}

	if a.lookupDB(ctx, w) {
		a.applyThreeCharVariation(w)
		w.AssignMethod = "database"
		return
	}

	if code := a.heuristic(w); code != "" {
		w.Code = append(w.Code, code)
		w.Muarrab = append(w.Muarrab, w.Word)
		w.DBIDs = append(w.DBIDs, "")
		w.Language = append(w.Language, "")
		w.AssignMethod = "heuristic"
		return
	}

	a.compoundSplit(ctx, w)
	w.AssignMethod = "compound"
}

// lookupDB tries the four tables in priority order -- exceptions,
// mastertable, plurals, variations -- and stops at the first that
// yields anything.
func (a *Assigner) lookupDB(ctx context.Context, w *model.Word) bool {
	if a.Oracle == nil {
		return false
	}

	if rows, err := a.Oracle.Exceptions(ctx, w.Word); err != nil {
		a.logf("exceptions lookup failed for %q: %v", w.Word, err)
	} else if found := a.applyExceptions(w, rows); found {
		return true
	}

	rows, err := a.queryMastertable(ctx, w.Word)
	if err != nil {
		a.logf("mastertable lookup failed for %q: %v", w.Word, err)
	} else if len(rows) > 0 {
		a.applyMastertable(ctx, w, rows)
		return true
	}

	if rows, err := a.Oracle.Plurals(ctx, w.Word); err != nil {
		a.logf("plurals lookup failed for %q: %v", w.Word, err)
	} else if len(rows) > 0 {
		for _, row := range rows {
			a.appendCandidate(w, codeFromTaqti(row.Taqti), row.Muarrab, strconv.Itoa(row.ID), "")
		}
		setPrimaryID(w)
		return true
	}

	if rows, err := a.Oracle.VariationsByWord(ctx, w.Word); err != nil {
		a.logf("variations lookup failed for %q: %v", w.Word, err)
	} else if len(rows) > 0 {
		for _, row := range rows {
			a.appendCandidate(w, codeFromTaqti(row.Taqti), row.Muarrab, strconv.Itoa(row.ID), "")
		}
		setPrimaryID(w)
		return true
	}

	return false
}

func (a *Assigner) applyExceptions(w *model.Word, rows []ExceptionRow) bool {
	found := false
	for _, row := range rows {
		for _, raw := range []string{row.Taqti, row.Taqti2, row.Taqti3} {
			code := strings.ReplaceAll(raw, " ", "")
			if code == "" {
				continue
			}
			a.appendCandidate(w, code, row.Word, strconv.Itoa(-row.ID), "")
			found = true
		}
	}
	if found {
		setPrimaryID(w)
	}
	return found
}

func (a *Assigner) applyMastertable(ctx context.Context, w *model.Word, rows []MasterRow) {
	for _, row := range rows {
		code := codeFromTaqti(row.Taqti)
		w.Code = append(w.Code, code)
		w.Muarrab = append(w.Muarrab, row.Muarrab)
		w.DBIDs = append(w.DBIDs, strconv.Itoa(row.ID))
		w.Language = append(w.Language, row.Language)
		w.IsVaried = append(w.IsVaried, row.IsVaried)

		if !row.IsVaried {
			continue
		}
		variations, err := a.Oracle.VariationsByID(ctx, row.ID)
		if err != nil {
			a.logf("variations-by-id lookup failed for id %d: %v", row.ID, err)
			continue
		}
		for _, v := range variations {
			w.Code = append(w.Code, codeFromTaqti(v.Taqti))
			w.Muarrab = append(w.Muarrab, v.Muarrab)
			w.DBIDs = append(w.DBIDs, strconv.Itoa(v.ID))
			w.Language = append(w.Language, row.Language)
			w.IsVaried = append(w.IsVaried, false)
		}
	}
	setPrimaryID(w)
}

func (a *Assigner) appendCandidate(w *model.Word, code, muarrab, id, language string) {
	w.Code = append(w.Code, code)
	w.Muarrab = append(w.Muarrab, muarrab)
	w.DBIDs = append(w.DBIDs, id)
	w.Language = append(w.Language, language)
}

// queryMastertable probes word, then the twelve space-suffixed
// variants, returning the first non-empty result.
func (a *Assigner) queryMastertable(ctx context.Context, word string) ([]MasterRow, error) {
	rows, err := a.Oracle.Mastertable(ctx, word)
	if err != nil || len(rows) > 0 {
		return rows, err
	}
	for _, suffix := range suffixVariants {
		rows, err := a.Oracle.Mastertable(ctx, word+suffix)
		if err != nil {
			return nil, err
		}
		if len(rows) > 0 {
			return rows, nil
		}
	}
	return nil, nil
}

// applyThreeCharVariation appends the §4.3 3-char variation code when
// a DB lookup produced at least one code for a 3-character stripped
// form ending in ا. It appends, never replaces, and is idempotent: a
// second pass over the same word adds nothing new.
func (a *Assigner) applyThreeCharVariation(w *model.Word) {
	if len(w.Code) == 0 {
		return
	}
	stripped := []rune(w.Stripped)
	if len(stripped) != 3 || stripped[2] != 'ا' {
		return
	}
	want := "-="
	if stripped[0] == 'آ' {
		want = "=="
	}
	for _, c := range w.Code {
		if c == want {
			return
		}
	}
	a.appendCandidate(w, want, w.Word, w.ID, "")
}

// heuristic runs the length scanners against either a DB-supplied taqti
// (split on "+" and spaces, each segment scanned and concatenated) or
// the word itself, then applies the vowel+h final-syllable fixup.
func (a *Assigner) heuristic(w *model.Word) string {
	var code string
	if w.Taqti != "" {
		code = codeFromTaqti(w.Taqti)
	} else {
		// Shadd doubles its consonant for scansion; expand it before the
		// length scanners measure the word.
		code = scan.Scan(orthography.RemoveShadd(w.Word))
	}
	if code == "" {
		return code
	}

	last := code[len(code)-1]
	if last != '=' && last != 'x' {
		return code
	}
	stripped := []rune(w.Stripped)
	if len(stripped) == 0 || !orthography.IsVowelPlusH(stripped[len(stripped)-1]) {
		return code
	}

	lang := primaryLanguage(w)
	switch {
	case lang == "Arabic":
		code = code[:len(code)-1] + "="
	case lang == "Persian" && stripped[len(stripped)-1] == 'ا' && !w.IsCompound:
		code = code[:len(code)-1] + "="
	default:
		code = code[:len(code)-1] + "x"
	}
	return code
}

// compoundSplit tries every split position of a stripped form longer
// than four characters, accepting the first split where one side is
// DB-resolved and the other is either DB-resolved or short enough (<=2
// chars) for scan.Two to supply a code directly (id "-1"). The winning
// split's candidates are combined as a Cartesian product.
func (a *Assigner) compoundSplit(ctx context.Context, w *model.Word) {
	stripped := []rune(w.Stripped)
	n := len(stripped)
	if n <= 4 {
		w.Code = nil
		w.IsCompound = true
		return
	}

	for i := 1; i <= n-2; i++ {
		left := string(stripped[:i])
		right := string(stripped[i:])

		leftWord := model.NewWord(left)
		a.Assign(ctx, leftWord)
		rightWord := model.NewWord(right)
		a.Assign(ctx, rightWord)

		leftInDB := leftWord.AssignMethod == "database"
		rightInDB := rightWord.AssignMethod == "database"
		leftShort := len([]rune(leftWord.Stripped)) <= 2
		rightShort := len([]rune(rightWord.Stripped)) <= 2

		switch {
		case leftInDB && (rightInDB || rightShort):
			rc, rm, rid := rightWord.Code, rightWord.Muarrab, rightWord.DBIDs
			if !rightInDB {
				rc, rm, rid = []string{scan.Two(right)}, []string{right}, []string{"-1"}
			}
			a.cartesian(w, leftWord.Code, leftWord.Muarrab, leftWord.DBIDs, rc, rm, rid)
			w.IsCompound = true
			return
		case rightInDB && leftShort:
			lc, lm, lid := []string{scan.Two(left)}, []string{left}, []string{"-1"}
			a.cartesian(w, lc, lm, lid, rightWord.Code, rightWord.Muarrab, rightWord.DBIDs)
			w.IsCompound = true
			return
		}
	}

	// Degenerate compound split: no valid split found (§7).
	w.Code = nil
	w.IsCompound = true
}

// cartesian combines left and right candidate sets into w's code list,
// capping the product at a.Ceiling and logging when truncated.
func (a *Assigner) cartesian(w *model.Word, lc, lm, lid, rc, rm, rid []string) {
	if len(lc) == 0 {
		lc, lm, lid = []string{""}, []string{""}, []string{""}
	}
	if len(rc) == 0 {
		rc, rm, rid = []string{""}, []string{""}, []string{""}
	}
	count := 0
	for i, l := range lc {
		for j, r := range rc {
			if count >= a.Ceiling {
				a.logf("compound split for %q truncated at %d combinations", w.Word, a.Ceiling)
				setPrimaryID(w)
				return
			}
			w.Code = append(w.Code, l+r)
			w.Muarrab = append(w.Muarrab, lm[i]+rm[j])
			w.DBIDs = append(w.DBIDs, lid[i]+"/"+rid[j])
			w.Language = append(w.Language, "")
			count++
		}
	}
	setPrimaryID(w)
}

func codeFromTaqti(taqti string) string {
	if taqti == "" {
		return ""
	}
	segs := strings.FieldsFunc(taqti, func(r rune) bool {
		return r == '+' || r == ' '
	})
	var b strings.Builder
	for _, seg := range segs {
		b.WriteString(scan.Scan(seg))
	}
	return b.String()
}

func primaryLanguage(w *model.Word) string {
	for _, l := range w.Language {
		if l != "" {
			return l
		}
	}
	return ""
}

func setPrimaryID(w *model.Word) {
	for _, id := range w.DBIDs {
		if id != "" {
			w.ID = id
			return
		}
	}
}

func (a *Assigner) logf(format string, args ...any) {
	if a.Logger != nil {
		a.Logger.Debugf(format, args...)
	}
}
