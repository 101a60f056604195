/*
levels.go - Shared level-label and next-level lookup table

PURPOSE:
  Maps discipline-level tokens to their display labels and to the default
  next step. This is the SINGLE source of truth for both the recommendation
  engine and the document renderer's placeholder service - the two consumers
  must never drift on output strings.

AUTHORITY:
  A category's own EscalationPath is authoritative for "what comes next".
  The DefaultNext table below is only the fallback used when no category is
  resolvable (e.g. rendering a historical warning whose category was removed).
  Both routes go through NextOnPath so callers get one behavior.

SEE ALSO:
  - engine.go:               Path-based next-level selection
  - template/placeholder.go: warning.nextLevel placeholder
*/
package discipline

// =============================================================================
// DISPLAY LABELS
// =============================================================================

var levelLabels = map[Level]string{
	LevelCounselling:   "Counselling",
	LevelVerbal:        "Verbal Warning",
	LevelFirstWritten:  "First Written Warning",
	LevelSecondWritten: "Second Written Warning",
	LevelFinalWritten:  "Final Written Warning",
	LevelSuspension:    "Suspension",
	LevelDismissal:     "Dismissal",
}

// LevelLabel returns the display label for a level token. Unknown tokens
// render as themselves so corrupt data stays visible rather than blank.
func LevelLabel(l Level) string {
	if label, ok := levelLabels[l]; ok {
		return label
	}
	return string(l)
}

// =============================================================================
// NEXT-LEVEL LOOKUP
// =============================================================================

// defaultNext is the standard progressive-discipline sequence, used only
// when no category path is available. Dismissal is terminal.
var defaultNext = map[Level]Level{
	LevelCounselling:   LevelVerbal,
	LevelVerbal:        LevelFirstWritten,
	LevelFirstWritten:  LevelFinalWritten,
	LevelSecondWritten: LevelFinalWritten,
	LevelFinalWritten:  LevelDismissal,
	LevelSuspension:    LevelDismissal,
	LevelDismissal:     LevelDismissal,
}

// NextOnPath returns the level that follows current on the given escalation
// path. Rules:
//   - current not on the path (including ""): the path's first entry
//   - current at the path's final entry: stays terminal
//   - empty path: fall back to the default sequence
func NextOnPath(path []Level, current Level) Level {
	if len(path) == 0 {
		if next, ok := defaultNext[current]; ok {
			return next
		}
		return LevelCounselling
	}
	idx := -1
	for i, l := range path {
		if l == current {
			idx = i
			break
		}
	}
	if idx < 0 {
		return path[0]
	}
	if idx >= len(path)-1 {
		return path[len(path)-1]
	}
	return path[idx+1]
}

// NextLabelOnPath is NextOnPath composed with LevelLabel; convenience for
// the placeholder service.
func NextLabelOnPath(path []Level, current Level) string {
	return LevelLabel(NextOnPath(path, current))
}
