/*
errors.go - Centralized error types for the discipline domain

PURPOSE:
  All domain error types in one place for consistency and discoverability.
  Store implementations and the API layer wrap these with additional context.

ERROR CATEGORIES:
  1. Not-found errors  - Missing reference data (category, employee, warning)
  2. Validation errors - Records rejected at the storage boundary
  3. Mutation errors   - Violations of the append-only warning contract

FAIL-OPEN NOTE:
  The recommendation engine (engine.go) deliberately absorbs not-found and
  lookup errors instead of surfacing them: HR must never be blocked from
  issuing discipline by a data lookup miss. These sentinels exist for the
  stores and the API layer, which do surface them.

USAGE:
  if errors.Is(err, discipline.ErrCategoryNotFound) { ... }

SEE ALSO:
  - store.go:  Interfaces returning these errors
  - engine.go: The one component that converts them to defaults
*/
package discipline

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrOrganizationNotFound is returned when a referenced organization doesn't exist.
	ErrOrganizationNotFound = errors.New("organization not found")

	// ErrEmployeeNotFound is returned when a referenced employee doesn't exist.
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrCategoryNotFound is returned when a referenced warning category doesn't exist.
	ErrCategoryNotFound = errors.New("warning category not found")

	// ErrWarningNotFound is returned when a referenced warning doesn't exist.
	ErrWarningNotFound = errors.New("warning not found")

	// ErrInvalidCategory is returned when a category record fails boundary validation.
	ErrInvalidCategory = errors.New("invalid warning category")

	// ErrInvalidEscalationPath is returned when a category's path violates the
	// path invariant (non-empty, no repeats, terminates at dismissal).
	ErrInvalidEscalationPath = errors.New("invalid escalation path")

	// ErrInvalidWarning is returned when a warning record fails boundary validation.
	ErrInvalidWarning = errors.New("invalid warning")

	// ErrDuplicateWarning is returned when a warning id is appended twice.
	// Warnings are append-only; there is no upsert.
	ErrDuplicateWarning = errors.New("duplicate warning id")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// LevelNotOnPathError reports a warning level that is not a member of its
// category's escalation path. Stores surface this at write time; the engine
// tolerates it at read time (treated as below the path's first entry).
type LevelNotOnPathError struct {
	CategoryID CategoryID
	Level      Level
}

func (e *LevelNotOnPathError) Error() string {
	return fmt.Sprintf("level %q is not on the escalation path of category %q", e.Level, e.CategoryID)
}

func (e *LevelNotOnPathError) Unwrap() error {
	return ErrInvalidWarning
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsNotFound returns true if the error indicates missing reference data.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrOrganizationNotFound) ||
		errors.Is(err, ErrEmployeeNotFound) ||
		errors.Is(err, ErrCategoryNotFound) ||
		errors.Is(err, ErrWarningNotFound)
}

// IsClientError returns true if the error is due to invalid client input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidCategory) ||
		errors.Is(err, ErrInvalidEscalationPath) ||
		errors.Is(err, ErrInvalidWarning) ||
		errors.Is(err, ErrDuplicateWarning)
}
