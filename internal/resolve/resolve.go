// Package resolve picks the single dominant meter that best explains
// every line of a couplet, per §4.8: an exact-mode resolver scoring
// ordered foot-prefix matches, and a fuzzy-mode resolver aggregating
// Levenshtein scores by log-mean. Grounded on
// original_source/aruuz/scansion/meter_matching.py's per-line scoring
// shape; the resolver classes themselves were absent from the retrieval
// pack, so the aggregation bodies are authored from §4.8's formulas
// directly (see DESIGN.md).
package resolve

import (
	"math"

	"github.com/tariquesani/bahr/internal/result"
	"github.com/tariquesani/bahr/meter"
)

// orderedNames returns the distinct meter names among matches, in
// first-seen order -- the order ties break against in exact mode.
func orderedNames(matches []result.Match) []string {
	var names []string
	seen := make(map[string]bool, len(matches))
	for _, m := range matches {
		if !seen[m.MeterName] {
			seen[m.MeterName] = true
			names = append(names, m.MeterName)
		}
	}
	return names
}

// lineFeet slices code into the leading run of segments sized like
// canonical's feet, stopping early if code is too short to fill one.
func lineFeet(code string, canonical []meter.Foot) []string {
	var out []string
	pos := 0
	for _, f := range canonical {
		if pos+len(f.Code) > len(code) {
			break
		}
		out = append(out, code[pos:pos+len(f.Code)])
		pos += len(f.Code)
	}
	return out
}

// feetEqual compares two equal-alphabet foot codes, treating 'x' in
// either as a wildcard.
func feetEqual(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] && a[i] != 'x' && b[i] != 'x' {
			return false
		}
	}
	return true
}

// orderedMatchCount counts the longest strictly-ordered common prefix
// of feet between a line's emitted code and a meter's canonical feet.
func orderedMatchCount(lineCode string, canonical []meter.Foot) int {
	if len(canonical) == 0 {
		return 0
	}
	segs := lineFeet(lineCode, canonical)
	count := 0
	for i, seg := range segs {
		if !feetEqual(seg, canonical[i].Code) {
			break
		}
		count++
	}
	return count
}

// ResolveDominantMeter implements exact-mode resolution: group matches
// by meter name, sum each group's ordered_match_count across every line
// and pattern variant, and keep the group with the highest total. Ties
// go to the last-encountered name in first-seen order, matching a
// stable ascending sort's tiebreak.
func ResolveDominantMeter(matches []result.Match) []result.Match {
	if len(matches) == 0 {
		return nil
	}
	names := orderedNames(matches)
	scores := make(map[string]int, len(names))
	for _, name := range names {
		total := 0
		for _, m := range matches {
			if m.MeterName == name {
				total += orderedMatchCount(m.Path.Code(), m.Feet)
			}
		}
		scores[name] = total
	}

	best := names[0]
	for _, name := range names[1:] {
		if scores[name] >= scores[best] {
			best = name
		}
	}

	var out []result.Match
	for _, m := range matches {
		if m.MeterName == best {
			out = append(out, m)
		}
	}
	return out
}

// ResolveDominantMeterFuzzy implements fuzzy-mode resolution: group by
// meter name, aggregate each group's per-line Levenshtein scores as
// exp(mean(ln(max(score,1)))) - zero_count, and keep the group with the
// lowest aggregate (lower is a closer fit). The winning group's records
// are filtered by id: rubai and special records keep everything sharing
// the winning name; regular/varied records are narrowed to the
// catalogue's canonical id for that name.
func ResolveDominantMeterFuzzy(matches []result.Match) []result.Match {
	if len(matches) == 0 {
		return nil
	}
	names := orderedNames(matches)
	aggregate := make(map[string]float64, len(names))
	for _, name := range names {
		var sumLn float64
		var zero, n int
		for _, m := range matches {
			if m.MeterName != name {
				continue
			}
			n++
			if m.FuzzyScore == 0 {
				zero++
			}
			v := float64(m.FuzzyScore)
			if v < 1 {
				v = 1
			}
			sumLn += math.Log(v)
		}
		if n == 0 {
			continue
		}
		aggregate[name] = math.Exp(sumLn/float64(n)) - float64(zero)
	}

	best := names[0]
	for _, name := range names[1:] {
		if aggregate[name] <= aggregate[best] {
			best = name
		}
	}
	canonicalID, hasCanonical := result.CanonicalID(best)

	var out []result.Match
	for _, m := range matches {
		if m.MeterName != best {
			continue
		}
		if m.IsRubai || m.IsSpecial {
			out = append(out, m)
			continue
		}
		if hasCanonical && m.MeterID == canonicalID {
			out = append(out, m)
		}
	}
	return out
}
