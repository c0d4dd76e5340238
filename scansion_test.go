package bahr

import (
	"context"
	"testing"

	"github.com/tariquesani/bahr/internal/assign"
	"github.com/tariquesani/bahr/internal/lookup/mapstore"
	"github.com/tariquesani/bahr/internal/model"
	"github.com/tariquesani/bahr/meter"
)

func TestNewRejectsConflictingModes(t *testing.T) {
	_, err := New(WithFuzzy(), WithFreeVerse())
	if err != ErrConflictingModes {
		t.Fatalf("err = %v, want ErrConflictingModes", err)
	}
}

func TestNewDefaultsAreUsable(t *testing.T) {
	s, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if s.cfg.errorParam != defaultErrorParam {
		t.Fatalf("errorParam = %d, want %d", s.cfg.errorParam, defaultErrorParam)
	}
}

func TestScanLineEmptyOrPunctuationOnlyYieldsNoResults(t *testing.T) {
	s, _ := New()
	matches, err := s.ScanLine(context.Background(), "، ، ،")
	if err != nil {
		t.Fatalf("ScanLine error: %v", err)
	}
	if matches != nil {
		t.Fatalf("expected nil matches for a punctuation-only line, got %#v", matches)
	}
}

func TestScanLineSingleCharacterHasNoCatalogueMatch(t *testing.T) {
	s, _ := New()
	matches, err := s.ScanLine(context.Background(), "آ")
	if err != nil {
		t.Fatalf("ScanLine error: %v", err)
	}
	if len(matches) != 0 {
		t.Fatalf("expected no meter to match a single-syllable line, got %#v", matches)
	}
}

func TestScanLineRespectsContextCancellation(t *testing.T) {
	s, _ := New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := s.ScanLine(ctx, "آ"); err == nil {
		t.Fatalf("expected a cancelled context to produce an error")
	}
}

func TestMeterFilterNarrowsCatalogueEntries(t *testing.T) {
	s, _ := New(WithMeterFilter([]int{0}))
	entries := s.entries()
	if len(entries) != 1 || entries[0].ID != 0 {
		t.Fatalf("entries = %#v, want exactly id 0", entries)
	}
}

func TestSpecialSentinelEnablesSpecialMatching(t *testing.T) {
	s, _ := New(WithMeterFilter([]int{0, SpecialSentinel}))
	if !s.specialEnabled() {
		t.Fatalf("expected special matching to be enabled when the filter includes SpecialSentinel")
	}
	s2, _ := New(WithMeterFilter([]int{0}))
	if s2.specialEnabled() {
		t.Fatalf("expected special matching to be disabled when the filter omits SpecialSentinel")
	}
}

func TestScanLinesAggregatesAcrossLines(t *testing.T) {
	s, _ := New()
	matches, err := s.ScanLines(context.Background(), []string{"آ", "، ، ،"})
	if err != nil {
		t.Fatalf("ScanLines error: %v", err)
	}
	if len(matches) != 0 {
		t.Fatalf("expected no dominant meter when no line produced a match, got %#v", matches)
	}
}

func TestScanLineUsesLookupOracleBeforeHeuristics(t *testing.T) {
	store := mapstore.New()
	store.AddMastertable(assign.MasterRow{ID: 1, Word: "دل", Muarrab: "دل", Taqti: "دل"})
	s, err := New(WithLookupOracle(store))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if _, err := s.ScanLine(context.Background(), "دل"); err != nil {
		t.Fatalf("ScanLine error: %v", err)
	}
	w := model.NewWord("دل")
	s.assigner.Assign(context.Background(), w)
	if w.AssignMethod != "database" {
		t.Fatalf("AssignMethod = %q, want database", w.AssignMethod)
	}
}

const khafifName = "خفیف مسدس مخبون محذوف"

// coupletStore seeds the lookup rows the couplet scenarios lean on: the
// noon+stop preprocessing split turns اندھیرے into اند + ھیرے, whose
// nasal-vowel weights come from the word database, not the heuristic
// scanners.
func coupletStore() *mapstore.Store {
	store := mapstore.New()
	store.AddException(assign.ExceptionRow{ID: 101, Word: "اند", Taqti: "-"})
	store.AddException(assign.ExceptionRow{ID: 102, Word: "ھیرے", Taqti: "= ="})
	return store
}

func TestScanLineExactMatchesKhafif(t *testing.T) {
	s, err := New(WithLookupOracle(coupletStore()))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	matches, err := s.ScanLine(context.Background(), "دم اندھیرے میں گھٹ رہا ہے خمار")
	if err != nil {
		t.Fatalf("ScanLine error: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want exactly one: %#v", len(matches), matches)
	}
	if matches[0].MeterName != khafifName {
		t.Fatalf("MeterName = %q, want %q", matches[0].MeterName, khafifName)
	}
	if matches[0].Afail == "" {
		t.Fatalf("expected a rendered afail string")
	}
	if len(matches[0].Path.Edges) != 8 {
		t.Fatalf("got %d edges, want one per preprocessed word", len(matches[0].Path.Edges))
	}
}

func TestScanLineSecondLineAlsoScansKhafif(t *testing.T) {
	s, _ := New()
	matches, err := s.ScanLine(context.Background(), "اور چاروں طرف اجالا ہے")
	if err != nil {
		t.Fatalf("ScanLine error: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("expected at least one match")
	}
	for _, m := range matches {
		if m.MeterName != khafifName {
			t.Fatalf("MeterName = %q, want %q", m.MeterName, khafifName)
		}
	}
}

func TestScanLinesCoupletResolvesToKhafif(t *testing.T) {
	s, err := New(WithLookupOracle(coupletStore()))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	dominant, err := s.ScanLines(context.Background(), []string{
		"دم اندھیرے میں گھٹ رہا ہے خمار",
		"اور چاروں طرف اجالا ہے",
	})
	if err != nil {
		t.Fatalf("ScanLines error: %v", err)
	}
	if len(dominant) != 2 {
		t.Fatalf("got %d dominant records, want one per line: %#v", len(dominant), dominant)
	}
	for _, m := range dominant {
		if m.MeterName != khafifName {
			t.Fatalf("dominant MeterName = %q, want %q", m.MeterName, khafifName)
		}
	}
}

func TestScanLineAllLongLineIsZamzama(t *testing.T) {
	s, _ := New()
	words := make([]string, 32)
	for i := range words {
		words[i] = "دل"
	}
	line := ""
	for i, w := range words {
		if i > 0 {
			line += " "
		}
		line += w
	}

	matches, err := s.ScanLine(context.Background(), line)
	if err != nil {
		t.Fatalf("ScanLine error: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1: %#v", len(matches), matches)
	}
	wantID := meter.SpecialBase() + 8
	if matches[0].MeterID != wantID {
		t.Fatalf("MeterID = %d, want the 32-syllable zamzama id %d", matches[0].MeterID, wantID)
	}
	if !matches[0].IsSpecial {
		t.Fatalf("expected the match to be flagged special")
	}
	if len(matches[0].Feet) != 4 {
		t.Fatalf("got %d generated feet, want 4", len(matches[0].Feet))
	}
}

func TestScanLineFreeVerseTilesByFeet(t *testing.T) {
	s, err := New(WithFreeVerse())
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	matches, err := s.ScanLine(context.Background(), "اجالا اجالا اجالا")
	if err != nil {
		t.Fatalf("ScanLine error: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("expected the repeated fa'ulun code to tile at least one meter")
	}
	seen := false
	for _, m := range matches {
		if m.IsRubai {
			t.Fatalf("rubai meters are excluded from free-verse mode, got %#v", m)
		}
		if m.MeterName == "متقارب مثمن سالم" {
			seen = true
		}
	}
	if !seen {
		t.Fatalf("expected متقارب مثمن سالم among the tiled meters")
	}
}

func TestScanLinesFuzzyCoupletIsNonEmpty(t *testing.T) {
	s, err := New(WithFuzzy())
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	dominant, err := s.ScanLines(context.Background(), []string{
		"دم اندھیرے میں گھٹ رہا ہے خمار",
	})
	if err != nil {
		t.Fatalf("ScanLines error: %v", err)
	}
	if len(dominant) == 0 {
		t.Fatalf("expected a fuzzy dominant meter for a metrical line")
	}
	for _, m := range dominant {
		if m.FuzzyScore < 0 {
			t.Fatalf("fuzzy score must be non-negative, got %d", m.FuzzyScore)
		}
	}
}

func TestScanLinesFuzzyModeDoesNotPanic(t *testing.T) {
	s, err := New(WithFuzzy(), WithErrorParam(20))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if _, err := s.ScanLines(context.Background(), []string{"آ"}); err != nil {
		t.Fatalf("ScanLines error: %v", err)
	}
}
