package bahr

import "errors"

// ErrConflictingModes is returned by New when both WithFuzzy and
// WithFreeVerse are supplied: the dispatcher has no documented
// precedence between the two, so the conflict is rejected at
// construction time instead of being resolved silently (§7).
var ErrConflictingModes = errors.New("bahr: fuzzy and free_verse cannot both be enabled")
