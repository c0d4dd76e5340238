// Package bahr performs scansion of Urdu poetry: given one or more
// lines of text it determines each line's metrical skeleton and
// identifies the classical meter(s) it realizes, then picks the single
// dominant meter that best explains a whole composition. Grounded on
// the teacher's plain-struct, zero-value-defaults configuration style,
// generalized to the functional-options idiom (the teacher itself has
// no configuration surface of its own; see DESIGN.md).
package bahr

import (
	"context"

	"golang.org/x/exp/slices"

	"github.com/tariquesani/bahr/internal/assign"
	"github.com/tariquesani/bahr/internal/diag"
	"github.com/tariquesani/bahr/internal/model"
	"github.com/tariquesani/bahr/internal/preprocess"
	"github.com/tariquesani/bahr/internal/prosody"
	"github.com/tariquesani/bahr/internal/resolve"
	"github.com/tariquesani/bahr/internal/result"
	"github.com/tariquesani/bahr/internal/special"
	"github.com/tariquesani/bahr/internal/tree"
)

// Scansion is the unit of work: a configured pipeline from raw text to
// scored meter matches. Not reentrant on the same instance (§5);
// separate instances share no mutable state beyond an externally-owned
// *sql.DB reached through a LookupOracle.
type Scansion struct {
	cfg      config
	assigner *assign.Assigner
	logger   *diag.Logger
}

// New builds a Scansion from the given options. It returns
// ErrConflictingModes if both WithFuzzy and WithFreeVerse were applied.
func New(opts ...Option) (*Scansion, error) {
	cfg := config{
		errorParam:      defaultErrorParam,
		compoundCeiling: assign.DefaultCompoundSplitCeiling,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.fuzzy && cfg.freeVerse {
		return nil, ErrConflictingModes
	}

	logger := cfg.logger
	if logger == nil {
		logger = diag.Discard()
	}
	return &Scansion{
		cfg:      cfg,
		assigner: assign.New(cfg.oracle, logger, cfg.compoundCeiling),
		logger:   logger,
	}, nil
}

// ScanLine preprocesses, assigns codes to, and matches a single line,
// returning every (path, meter) result it produces. An empty or
// punctuation-only line yields a nil result and a nil error (§7).
func (s *Scansion) ScanLine(ctx context.Context, raw string) ([]result.Match, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	line := preprocess.Line(raw)
	if len(line.Words) == 0 {
		return nil, nil
	}

	for _, w := range line.Words {
		s.assigner.Assign(ctx, w)
	}
	prosody.Apply(line, s.logger)

	paths := s.traverse(line.Words)
	return result.BuildAll(raw, line.Words, paths), nil
}

// ScanLines scans every line of a composition independently, then
// applies the §4.8 dominant-meter resolver across all of them: exact
// aggregation when neither fuzzy nor free-verse mode is active, fuzzy
// aggregation under WithFuzzy, and the unconsolidated per-line union
// under WithFreeVerse (free verse has no catalogue-wide dominant
// pattern to resolve against). ctx.Err() is checked between lines.
func (s *Scansion) ScanLines(ctx context.Context, rawLines []string) ([]result.Match, error) {
	var all []result.Match
	for _, raw := range rawLines {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		matches, err := s.ScanLine(ctx, raw)
		if err != nil {
			return nil, err
		}
		all = append(all, matches...)
	}

	switch {
	case s.cfg.freeVerse:
		return all, nil
	case s.cfg.fuzzy:
		return resolve.ResolveDominantMeterFuzzy(all), nil
	default:
		return resolve.ResolveDominantMeter(all), nil
	}
}

// traverse builds the per-word code matrix and runs the traversal mode
// selected by the configuration, folding in special-meter matches per
// §4.5.4 when they are enabled and the mode is exact.
func (s *Scansion) traverse(words []*model.Word) []tree.ScanPath {
	wordCodes := make([][]string, len(words))
	for i, w := range words {
		wordCodes[i] = w.AllCodes()
	}

	entries := s.entries()
	var paths []tree.ScanPath
	switch {
	case s.cfg.fuzzy:
		paths = tree.TraverseFuzzy(wordCodes, entries, s.cfg.errorParam)
	case s.cfg.freeVerse:
		paths = tree.TraverseFreeVerse(wordCodes, entries, result.IsRubai)
	default:
		paths = tree.TraverseExact(wordCodes, entries)
		if s.specialEnabled() {
			paths = append(paths, special.MatchLeaves(wordCodes)...)
		}
	}
	return paths
}

// entries returns the catalogue meters this Scansion matches against,
// narrowed by WithMeterFilter when one was supplied.
func (s *Scansion) entries() []tree.MeterEntry {
	all := result.CatalogueEntries()
	if len(s.cfg.meterFilter) == 0 {
		return all
	}
	var out []tree.MeterEntry
	for _, e := range all {
		if slices.Contains(s.cfg.meterFilter, e.ID) {
			out = append(out, e)
		}
	}
	return out
}

// specialEnabled reports whether §4.6's pattern tree should run
// alongside exact traversal: either no filter was given at all, or the
// filter explicitly includes SpecialSentinel.
func (s *Scansion) specialEnabled() bool {
	return len(s.cfg.meterFilter) == 0 || slices.Contains(s.cfg.meterFilter, SpecialSentinel)
}
