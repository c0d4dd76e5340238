package assign

import (
	"context"
	"testing"

	"github.com/tariquesani/bahr/internal/model"
)

type fakeOracle struct {
	exceptions     map[string][]ExceptionRow
	mastertable    map[string][]MasterRow
	variationsByID map[int][]VariationRow
}

func newFakeOracle() *fakeOracle {
	return &fakeOracle{
		exceptions:     map[string][]ExceptionRow{},
		mastertable:    map[string][]MasterRow{},
		variationsByID: map[int][]VariationRow{},
	}
}

func (f *fakeOracle) Exceptions(_ context.Context, word string) ([]ExceptionRow, error) {
	return f.exceptions[word], nil
}
func (f *fakeOracle) Mastertable(_ context.Context, word string) ([]MasterRow, error) {
	return f.mastertable[word], nil
}
func (f *fakeOracle) Plurals(context.Context, string) ([]PluralRow, error) { return nil, nil }
func (f *fakeOracle) VariationsByWord(context.Context, string) ([]VariationRow, error) {
	return nil, nil
}
func (f *fakeOracle) VariationsByID(_ context.Context, id int) ([]VariationRow, error) {
	return f.variationsByID[id], nil
}

func TestAssignExceptionsNegatesID(t *testing.T) {
	oracle := newFakeOracle()
	oracle.exceptions["خاص"] = []ExceptionRow{{ID: 7, Word: "خاص", Taqti: "= -"}}

	a := New(oracle, nil, 0)
	w := model.NewWord("خاص")
	a.Assign(context.Background(), w)

	if len(w.Code) != 1 || w.Code[0] != "=-" {
		t.Fatalf("Code = %#v, want [=-]", w.Code)
	}
	if w.ID != "-7" {
		t.Fatalf("ID = %q, want -7", w.ID)
	}
	if w.AssignMethod != "database" {
		t.Fatalf("AssignMethod = %q, want database", w.AssignMethod)
	}
}

func TestAssignIsVariedCascadesIntoVariations(t *testing.T) {
	oracle := newFakeOracle()
	oracle.mastertable["بات"] = []MasterRow{
		{ID: 3, Word: "بات", Muarrab: "بات", Taqti: "بات", Language: "Urdu", IsVaried: true},
	}
	oracle.variationsByID[3] = []VariationRow{
		{ID: 30, Word: "بات", Muarrab: "باتیں", Taqti: "با+تیں"},
	}

	a := New(oracle, nil, 0)
	w := model.NewWord("بات")
	a.Assign(context.Background(), w)

	if len(w.Code) != 2 {
		t.Fatalf("got %d codes, want 2 (mastertable + variation): %#v", len(w.Code), w.Code)
	}
	if w.DBIDs[0] != "3" || w.DBIDs[1] != "30" {
		t.Fatalf("DBIDs = %#v, want [3 30]", w.DBIDs)
	}
}

func TestAssignFallsBackToHeuristicWhenDBEmpty(t *testing.T) {
	a := New(newFakeOracle(), nil, 0)
	w := model.NewWord("کا")
	a.Assign(context.Background(), w)

	if w.AssignMethod != "heuristic" {
		t.Fatalf("AssignMethod = %q, want heuristic", w.AssignMethod)
	}
	if len(w.Code) != 1 || w.Code[0] != "x" {
		t.Fatalf("Code = %#v, want [x]", w.Code)
	}
}

func TestAssignExpandsShaddBeforeScanning(t *testing.T) {
	a := New(newFakeOracle(), nil, 0)
	w := model.NewWord("ربّ")
	a.Assign(context.Background(), w)

	// The expanded form ربْبَ scans as a three-letter stem; without the
	// expansion the two-letter scanner would emit "=".
	if len(w.Code) != 1 || w.Code[0] != "=-" {
		t.Fatalf("Code = %#v, want [=-] via shadd expansion", w.Code)
	}
}

func TestAssignIsIdempotent(t *testing.T) {
	a := New(newFakeOracle(), nil, 0)
	w := model.NewWord("کا")
	a.Assign(context.Background(), w)
	first := append([]string(nil), w.Code...)
	a.Assign(context.Background(), w)
	if len(w.Code) != len(first) {
		t.Fatalf("second Assign mutated Code: %#v vs %#v", w.Code, first)
	}
}

func TestApplyThreeCharVariationAppendsOnce(t *testing.T) {
	a := New(newFakeOracle(), nil, 0)
	w := model.NewWord("دعا")
	w.Code = []string{"=-="}
	w.Muarrab = []string{"دعا"}
	w.DBIDs = []string{"5"}
	w.Language = []string{""}

	a.applyThreeCharVariation(w)
	if len(w.Code) != 2 || w.Code[1] != "-=" {
		t.Fatalf("Code = %#v, want a second -= entry", w.Code)
	}
	a.applyThreeCharVariation(w)
	if len(w.Code) != 2 {
		t.Fatalf("second call should be a no-op, got %#v", w.Code)
	}
}

func TestCompoundSplitCartesianProduct(t *testing.T) {
	oracle := newFakeOracle()
	oracle.mastertable["دل"] = []MasterRow{{ID: 1, Word: "دل", Muarrab: "دل", Taqti: "دل"}}
	oracle.mastertable["آویز"] = []MasterRow{
		{ID: 2, Word: "آویز", Muarrab: "آویز", Taqti: "آ+ویز"},
		{ID: 3, Word: "آویز", Muarrab: "آویز", Taqti: "آویز"},
	}

	a := New(oracle, nil, 0)
	w := model.NewWord("دلآویز")
	a.compoundSplit(context.Background(), w)

	if !w.IsCompound {
		t.Fatalf("expected IsCompound to be set")
	}
	if len(w.Code) == 0 {
		t.Fatalf("expected at least one combined code, got none")
	}
}

func TestCompoundSplitDegenerateWhenNoSplitFound(t *testing.T) {
	a := New(newFakeOracle(), nil, 0)
	w := model.NewWord("ناگہانی")
	a.compoundSplit(context.Background(), w)

	if !w.IsCompound {
		t.Fatalf("expected IsCompound to be set even on failure")
	}
	if len(w.Code) != 0 {
		t.Fatalf("expected empty code on degenerate split, got %#v", w.Code)
	}
}
