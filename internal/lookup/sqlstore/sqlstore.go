// Package sqlstore is the concrete assign.LookupOracle adapter over the
// read-only schema of §6, implemented with database/sql against
// modernc.org/sqlite (a pure-Go, cgo-free SQLite driver). No example in
// the retrieval pack talks to a database, so there is nothing in the
// pack to ground the driver choice on; modernc.org/sqlite is named here
// as the real ecosystem library that lets database/sql exercise the
// schema below without cgo (see DESIGN.md).
package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tariquesani/bahr/internal/assign"

	_ "modernc.org/sqlite"
)

// Store is a read-only view of the word database over *sql.DB. The
// caller owns the connection's lifecycle; Store only ever issues SELECT
// statements.
type Store struct {
	db *sql.DB
}

// Open opens dsn with the modernc.org/sqlite driver and returns a Store
// over it. The schema (exceptions, mastertable, plurals, variations) is
// assumed to already exist; population is out of scope (§1).
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlstore: open %s: %w", dsn, err)
	}
	return New(db), nil
}

// New wraps an already-open *sql.DB, e.g. one configured by the caller
// with connection-pool tuning the default Open doesn't expose.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Close closes the underlying connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Exceptions(ctx context.Context, word string) ([]assign.ExceptionRow, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, word, COALESCE(Taqti, ''), COALESCE(Taqti2, ''), COALESCE(Taqti3, '')
		 FROM exceptions WHERE word = ?`, word)
	if err != nil {
		return nil, fmt.Errorf("sqlstore: exceptions query: %w", err)
	}
	defer rows.Close()

	var out []assign.ExceptionRow
	for rows.Next() {
		var r assign.ExceptionRow
		if err := rows.Scan(&r.ID, &r.Word, &r.Taqti, &r.Taqti2, &r.Taqti3); err != nil {
			return nil, fmt.Errorf("sqlstore: exceptions scan: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Store) Mastertable(ctx context.Context, word string) ([]assign.MasterRow, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT ID, Word, COALESCE(Muarrab, ''), COALESCE(Taqti, ''), COALESCE(Language, ''),
		        isVaried, isPlural
		 FROM mastertable WHERE Word LIKE ?`, word)
	if err != nil {
		return nil, fmt.Errorf("sqlstore: mastertable query: %w", err)
	}
	defer rows.Close()

	var out []assign.MasterRow
	for rows.Next() {
		var r assign.MasterRow
		if err := rows.Scan(&r.ID, &r.Word, &r.Muarrab, &r.Taqti, &r.Language, &r.IsVaried, &r.IsPlural); err != nil {
			return nil, fmt.Errorf("sqlstore: mastertable scan: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Store) Plurals(ctx context.Context, word string) ([]assign.PluralRow, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT ID, Word, COALESCE(Muarrab, ''), COALESCE(Taqti, '')
		 FROM plurals WHERE Word LIKE ?`, word)
	if err != nil {
		return nil, fmt.Errorf("sqlstore: plurals query: %w", err)
	}
	defer rows.Close()

	var out []assign.PluralRow
	for rows.Next() {
		var r assign.PluralRow
		if err := rows.Scan(&r.ID, &r.Word, &r.Muarrab, &r.Taqti); err != nil {
			return nil, fmt.Errorf("sqlstore: plurals scan: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Store) VariationsByWord(ctx context.Context, word string) ([]assign.VariationRow, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT ID, Word, COALESCE(Muarrab, ''), COALESCE(Taqti, '')
		 FROM variations WHERE Word LIKE ?`, word)
	if err != nil {
		return nil, fmt.Errorf("sqlstore: variations-by-word query: %w", err)
	}
	defer rows.Close()
	return scanVariations(rows)
}

func (s *Store) VariationsByID(ctx context.Context, id int) ([]assign.VariationRow, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT ID, Word, COALESCE(Muarrab, ''), COALESCE(Taqti, '')
		 FROM variations WHERE ID = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("sqlstore: variations-by-id query: %w", err)
	}
	defer rows.Close()
	return scanVariations(rows)
}

func scanVariations(rows *sql.Rows) ([]assign.VariationRow, error) {
	var out []assign.VariationRow
	for rows.Next() {
		var r assign.VariationRow
		if err := rows.Scan(&r.ID, &r.Word, &r.Muarrab, &r.Taqti); err != nil {
			return nil, fmt.Errorf("sqlstore: variations scan: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
