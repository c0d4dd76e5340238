// Package result maps a traversal's ScanPaths onto the printable
// per-meter records callers receive: original text, word breakdown,
// muarrab, feet decomposition and meter name. Grounded on the
// reference's scan-result assembly in aruuz_buzzer.py (line/meter/afaeel
// rendering) and meter.Afail for feet-name joining.
package result

import (
	"strconv"
	"strings"

	"github.com/tariquesani/bahr/internal/model"
	"github.com/tariquesani/bahr/internal/special"
	"github.com/tariquesani/bahr/internal/tree"
	"github.com/tariquesani/bahr/meter"
)

// Match is one line matched against one meter: the word/code path that
// produced the match, plus everything needed to render it.
type Match struct {
	Line      string
	Words     []*model.Word
	Path      tree.ScanPath
	MeterID   int
	MeterName string
	Pattern   string
	Afail     string
	Feet      []meter.Foot
	// Muarrab holds, per word on the path, the word's canonical
	// (vocalised) form: its first muarrab candidate, or its surface
	// form when lookup never supplied one.
	Muarrab    []string
	IsSpecial  bool
	IsRubai    bool
	FuzzyScore int // only meaningful when the traversal was fuzzy
}

// catalogue concatenates the regular, varied and rubai blocks in the
// order meter.RubaiBase and meter.SpecialBase describe. Special meters,
// whose ids start at meter.SpecialBase, are not included.
func catalogue() []meter.Meter {
	all := make([]meter.Meter, 0, len(meter.Regular)+len(meter.Varied)+len(meter.Rubai))
	all = append(all, meter.Regular...)
	all = append(all, meter.Varied...)
	all = append(all, meter.Rubai...)
	return all
}

// NameAndPattern resolves a global meter id to its printable name and
// pattern, or to a special meter's name with an empty pattern.
func NameAndPattern(id int) (name, pattern string) {
	base := meter.SpecialBase()
	if id >= base {
		specials := meter.SpecialMeters
		idx := id - base
		if idx >= 0 && idx < len(specials) {
			return specials[idx].Name, ""
		}
		return "", ""
	}
	all := catalogue()
	if id < 0 || id >= len(all) {
		return "", ""
	}
	return all[id].Name, all[id].Pattern
}

// IsRubai reports whether id falls in the rubai block of the catalogue.
func IsRubai(id int) bool {
	base := meter.RubaiBase()
	return id >= base && id < base+len(meter.Rubai)
}

// IsSpecial reports whether id falls in the special-meter block.
func IsSpecial(id int) bool {
	return id >= meter.SpecialBase()
}

// Build turns one ScanPath and one of the meter ids it carries into a
// fully rendered Match against line's raw text and word slice.
func Build(line string, words []*model.Word, path tree.ScanPath, meterID int) Match {
	name, pattern := NameAndPattern(meterID)
	m := Match{
		Line:       line,
		Words:      words,
		Path:       path,
		MeterID:    meterID,
		MeterName:  name,
		Pattern:    pattern,
		IsRubai:    IsRubai(meterID),
		IsSpecial:  IsSpecial(meterID),
		FuzzyScore: path.Score,
	}
	for _, w := range words {
		if len(w.Muarrab) > 0 && w.Muarrab[0] != "" {
			m.Muarrab = append(m.Muarrab, w.Muarrab[0])
		} else {
			m.Muarrab = append(m.Muarrab, w.Word)
		}
	}

	if m.IsSpecial {
		m.Feet = special.Feet(strconv.Itoa(meterID), path.Code())
	} else if idx, ok := catalogueIndex(meterID); ok {
		m.Feet = meter.AfailList(catalogue()[idx])
	}
	var names []string
	for _, f := range m.Feet {
		names = append(names, f.Name)
	}
	m.Afail = strings.Join(names, " ")
	return m
}

// CatalogueEntries renders the regular/varied/rubai blocks as the
// tree.MeterEntry view internal/tree's traversals need, ids matching
// NameAndPattern's and CanonicalID's.
func CatalogueEntries() []tree.MeterEntry {
	all := catalogue()
	out := make([]tree.MeterEntry, len(all))
	for i, m := range all {
		out[i] = tree.MeterEntry{ID: i, Pattern: m.Pattern}
	}
	return out
}

// CanonicalID returns the first catalogue id (regular/varied/rubai
// block) whose name equals name: the id the fuzzy resolver matches
// non-special, non-rubai records against.
func CanonicalID(name string) (int, bool) {
	for i, m := range catalogue() {
		if m.Name == name {
			return i, true
		}
	}
	return 0, false
}

func catalogueIndex(id int) (int, bool) {
	all := catalogue()
	if id < 0 || id >= len(all) {
		return 0, false
	}
	return id, true
}

// BuildAll renders every (path, meter id) pair a traversal produced.
// One ScanPath carrying several meter ids (a common exact-mode outcome)
// yields one Match per id.
func BuildAll(line string, words []*model.Word, paths []tree.ScanPath) []Match {
	var out []Match
	for _, p := range paths {
		for _, id := range p.Meters {
			out = append(out, Build(line, words, p, id))
		}
	}
	return out
}
