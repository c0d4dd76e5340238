// Package mapstore is an in-memory assign.LookupOracle, grounded on the
// teacher's small, interface-driven internal helper style (iterators/).
// It exists for tests and for callers who want to exercise the
// assignment cascade without a SQL backend.
package mapstore

import (
	"context"

	"github.com/tariquesani/bahr/internal/assign"
)

// Store is a plain map-backed assign.LookupOracle.
type Store struct {
	ExceptionRows     map[string][]assign.ExceptionRow
	MastertableRows   map[string][]assign.MasterRow
	PluralRows        map[string][]assign.PluralRow
	VariationRows     map[string][]assign.VariationRow
	VariationRowsByID map[int][]assign.VariationRow
}

// New returns an empty Store ready for its fields to be populated
// directly, or via the AddXxx helpers below.
func New() *Store {
	return &Store{
		ExceptionRows:     map[string][]assign.ExceptionRow{},
		MastertableRows:   map[string][]assign.MasterRow{},
		PluralRows:        map[string][]assign.PluralRow{},
		VariationRows:     map[string][]assign.VariationRow{},
		VariationRowsByID: map[int][]assign.VariationRow{},
	}
}

func (s *Store) AddException(row assign.ExceptionRow) {
	s.ExceptionRows[row.Word] = append(s.ExceptionRows[row.Word], row)
}

func (s *Store) AddMastertable(row assign.MasterRow) {
	s.MastertableRows[row.Word] = append(s.MastertableRows[row.Word], row)
}

func (s *Store) AddPlural(row assign.PluralRow) {
	s.PluralRows[row.Word] = append(s.PluralRows[row.Word], row)
}

func (s *Store) AddVariation(row assign.VariationRow) {
	s.VariationRows[row.Word] = append(s.VariationRows[row.Word], row)
	s.VariationRowsByID[row.ID] = append(s.VariationRowsByID[row.ID], row)
}

func (s *Store) Exceptions(_ context.Context, word string) ([]assign.ExceptionRow, error) {
	return s.ExceptionRows[word], nil
}

func (s *Store) Mastertable(_ context.Context, word string) ([]assign.MasterRow, error) {
	return s.MastertableRows[word], nil
}

func (s *Store) Plurals(_ context.Context, word string) ([]assign.PluralRow, error) {
	return s.PluralRows[word], nil
}

func (s *Store) VariationsByWord(_ context.Context, word string) ([]assign.VariationRow, error) {
	return s.VariationRows[word], nil
}

func (s *Store) VariationsByID(_ context.Context, id int) ([]assign.VariationRow, error) {
	return s.VariationRowsByID[id], nil
}
