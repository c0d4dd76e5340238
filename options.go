package bahr

import (
	"github.com/tariquesani/bahr/internal/assign"
	"github.com/tariquesani/bahr/internal/diag"
)

// SpecialSentinel, present in a WithMeterFilter set, enables the
// special-meter pattern tree of §4.6 alongside the listed meters. An
// absent or empty filter enables every catalogue meter plus special
// matching, matching §4.5.4's "sentinel -1, or no meter set at all".
const SpecialSentinel = -1

const defaultErrorParam = 8

type config struct {
	fuzzy           bool
	freeVerse       bool
	errorParam      int
	meterFilter     []int
	compoundCeiling int
	oracle          assign.LookupOracle
	logger          *diag.Logger
}

// Option configures a Scansion built by New.
type Option func(*config)

// WithFuzzy enables §4.5.2's Levenshtein-bounded fuzzy traversal in
// place of exact matching. Conflicts with WithFreeVerse.
func WithFuzzy() Option {
	return func(c *config) { c.fuzzy = true }
}

// WithFreeVerse enables §4.5.3's greedy foot-tiling traversal in place
// of exact matching. Conflicts with WithFuzzy.
func WithFreeVerse() Option {
	return func(c *config) { c.freeVerse = true }
}

// WithErrorParam sets the fuzzy traversal's maximum accepted
// Levenshtein distance. Only meaningful with WithFuzzy; default 8.
func WithErrorParam(n int) Option {
	return func(c *config) { c.errorParam = n }
}

// WithMeterFilter restricts matching to the given catalogue ids.
// Include SpecialSentinel to also enable special-meter matching
// alongside the listed ids. A nil or empty filter matches every
// catalogue meter and enables special matching.
func WithMeterFilter(ids []int) Option {
	return func(c *config) { c.meterFilter = ids }
}

// WithCompoundSplitCeiling caps the Cartesian product a compound split
// may produce before the assigner truncates and logs. Default
// assign.DefaultCompoundSplitCeiling.
func WithCompoundSplitCeiling(n int) Option {
	return func(c *config) { c.compoundCeiling = n }
}

// WithLookupOracle supplies the database-backed word lookup used before
// falling back to heuristics. A nil oracle (the default) makes every
// lookup a miss.
func WithLookupOracle(o assign.LookupOracle) Option {
	return func(c *config) { c.oracle = o }
}

// WithLogger supplies the diagnostic logger used for compound-split
// truncation and lookup-failure warnings. The default is a discarding
// logger.
func WithLogger(l *diag.Logger) Option {
	return func(c *config) { c.logger = l }
}
