/*
engine.go - Escalation recommendation engine

PURPOSE:
  Given (organization, employee, category), computes the next disciplinary
  action along the category's progressive path, with legal citations and a
  human-readable rationale. Pure computation over the employee's warning
  history; mutates nothing.

FAIL-OPEN CONTRACT:
  Recommend never returns an error and never panics. Any failure - unknown
  category, history lookup error - is absorbed and converted into a safe
  default (counselling, generic legal basis). Blocking HR from issuing
  discipline because of a transient data error is considered worse than
  suggesting an overly conservative level for HR to override. This is the
  opposite of the document renderer, which fails closed on missing template
  versions; the asymmetry is deliberate. Do not unify the two.

PER-CATEGORY ESCALATION:
  Only warnings in the requested category select the suggested level.
  Cross-category history is reported as context (WarningCount) but never
  advances the path. An employee with five safety warnings and zero
  attendance warnings starts attendance discipline at the path's first step.

DETERMINISM:
  The clock is injected so identical inputs yield identical recommendations.
  No package-level state.

SEE ALSO:
  - levels.go:     Shared next-level table (fallback route)
  - categories.go: Fallback constants
  - store.go:      The two collaborator interfaces consumed here
*/
package discipline

import (
	"context"
	"fmt"
	"time"
)

// =============================================================================
// RECOMMENDATION - Derived value, never persisted
// =============================================================================

// Recommendation is the engine's output: computed on demand each time the
// issue wizard loads, recomputed consistently for the same inputs, never
// stored.
type Recommendation struct {
	CategoryID   CategoryID
	CategoryName string

	SuggestedLevel Level

	// IsEscalation is false only when the employee has zero active warnings
	// in this category.
	IsEscalation bool

	// CategoryWarningCount counts active warnings in this category; it is
	// the only count that drives level selection.
	CategoryWarningCount int

	// WarningCount counts all active warnings across categories. Context
	// only.
	WarningCount int

	// Reason is advisory text shown to HR; it is never machine-parsed.
	Reason     string
	LegalBasis string

	EscalationPath []Level
	NextExpiryDate time.Time
}

// =============================================================================
// COLLABORATOR INTERFACES
// =============================================================================

// HistorySource fetches an employee's active warnings. Implemented by
// WarningStore; narrowed here so the engine depends on exactly what it uses.
type HistorySource interface {
	ActiveWarnings(ctx context.Context, orgID OrganizationID, employeeID EmployeeID) ([]Warning, error)
}

// CategorySource resolves a category id to its reference data.
type CategorySource interface {
	GetCategory(ctx context.Context, orgID OrganizationID, id CategoryID) (*WarningCategory, error)
}

// =============================================================================
// ENGINE
// =============================================================================

// Engine computes escalation recommendations. Safe for concurrent use; it
// holds no mutable state.
type Engine struct {
	history    HistorySource
	categories CategorySource
	now        func() time.Time
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithClock replaces the engine's clock. Tests use this to pin time.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) { e.now = now }
}

// NewEngine creates a recommendation engine over the given collaborators.
func NewEngine(history HistorySource, categories CategorySource, opts ...EngineOption) *Engine {
	e := &Engine{
		history:    history,
		categories: categories,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Recommend computes the next disciplinary step for the employee in the
// given category. Never returns an error: see the fail-open contract above.
func (e *Engine) Recommend(ctx context.Context, orgID OrganizationID, employeeID EmployeeID, categoryID CategoryID) Recommendation {
	now := e.now()

	// History fetch completes before any filtering or suggestion logic runs.
	warnings, err := e.history.ActiveWarnings(ctx, orgID, employeeID)
	if err != nil {
		return e.fallback(now, categoryID, 0)
	}

	cat, err := e.categories.GetCategory(ctx, orgID, categoryID)
	if err != nil || cat == nil {
		return e.fallback(now, categoryID, len(warnings))
	}

	// Per-category filter: only exact category matches select the level.
	var categoryWarnings []Warning
	for _, w := range warnings {
		if w.CategoryID == categoryID {
			categoryWarnings = append(categoryWarnings, w)
		}
	}

	rec := Recommendation{
		CategoryID:           cat.ID,
		CategoryName:         cat.Name,
		CategoryWarningCount: len(categoryWarnings),
		WarningCount:         len(warnings),
		IsEscalation:         len(categoryWarnings) > 0,
		LegalBasis:           legalBasis(cat),
		EscalationPath:       append([]Level(nil), cat.EscalationPath...),
		NextExpiryDate:       now.AddDate(0, cat.ValidityMonths, 0),
	}

	if len(categoryWarnings) == 0 {
		rec.SuggestedLevel = cat.EscalationPath[0]
		rec.Reason = fmt.Sprintf(
			"No active %s warnings on file. Progressive discipline starts at %s.",
			cat.Name, LevelLabel(rec.SuggestedLevel))
		return rec
	}

	// Highest level already reached within the category. A corrupt or
	// unknown stored level indexes at -1 and so sorts below the path's
	// first entry.
	highest := -1
	var mostRecent time.Time
	for _, w := range categoryWarnings {
		if idx := cat.LevelIndex(w.Level); idx > highest {
			highest = idx
		}
		if w.IssueDate.After(mostRecent) {
			mostRecent = w.IssueDate
		}
	}

	next := highest + 1
	atTerminal := next >= len(cat.EscalationPath)
	if atTerminal {
		next = len(cat.EscalationPath) - 1
	}
	rec.SuggestedLevel = cat.EscalationPath[next]

	daysAgo := int(now.Sub(mostRecent).Hours() / 24)
	if atTerminal {
		rec.Reason = fmt.Sprintf(
			"%d active %s warning(s) on file, most recent issued %d days ago. The final step of the disciplinary path has been reached: %s.",
			len(categoryWarnings), cat.Name, daysAgo, LevelLabel(rec.SuggestedLevel))
	} else {
		rec.Reason = fmt.Sprintf(
			"%d active %s warning(s) on file, most recent issued %d days ago. Progressive discipline advances to %s.",
			len(categoryWarnings), cat.Name, daysAgo, LevelLabel(rec.SuggestedLevel))
	}
	return rec
}

// fallback is the fail-open default: counselling, generic legal basis, the
// standard path. totalWarnings is whatever history we managed to fetch
// before the failure (zero when the history lookup itself failed).
func (e *Engine) fallback(now time.Time, categoryID CategoryID, totalWarnings int) Recommendation {
	return Recommendation{
		CategoryID:           categoryID,
		CategoryName:         FallbackCategoryName,
		SuggestedLevel:       LevelCounselling,
		IsEscalation:         false,
		CategoryWarningCount: 0,
		WarningCount:         totalWarnings,
		Reason: fmt.Sprintf(
			"Category could not be resolved; defaulting to %s under %s. HR may override the level.",
			LevelLabel(LevelCounselling), FallbackCategoryName),
		LegalBasis:     GenericLegalBasis,
		EscalationPath: append([]Level(nil), DefaultEscalationPath...),
		NextExpiryDate: now.AddDate(0, DefaultValidityMonths, 0),
	}
}

func legalBasis(cat *WarningCategory) string {
	if len(cat.LegalCitations) == 0 {
		return GenericLegalBasis
	}
	basis := cat.LegalCitations[0]
	for _, c := range cat.LegalCitations[1:] {
		basis += "; " + c
	}
	return basis
}
