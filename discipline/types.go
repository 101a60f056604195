/*
Package discipline provides the core progressive-discipline engine.

PURPOSE:
  This package contains the domain types and algorithms for managing
  employee disciplinary warnings: offense categories with ordered
  escalation paths, immutable warning records, and the recommendation
  engine that computes the next step on a category's path.

KEY CONCEPTS IN THIS FILE (types.go):
  - Level: A token on a category's escalation path (counselling ... dismissal)
  - WarningCategory: Per-organization reference data defining the path
  - Warning: An immutable disciplinary record (legal retention - never deleted)
  - Employee/Organization: The parties referenced by warnings and documents

DESIGN PRINCIPLES:
  1. Immutability: Warnings are never deleted, only marked inactive.
     Delivery fields are the only mutation surface after creation.
  2. Per-category escalation: progressive discipline advances per offense
     type, never across categories.
  3. Type Safety: Strong typing for IDs prevents mixing employee,
     organization, and category identifiers.
  4. Validation at the boundary: records are validated before persistence,
     not trusted implicitly.

USAGE:
  cat := discipline.WarningCategory{
      ID:             "attendance_punctuality",
      OrganizationID: "org-1",
      EscalationPath: []discipline.Level{discipline.LevelCounselling, ...},
  }
  if err := cat.Validate(); err != nil { ... }

SEE ALSO:
  - levels.go:     Shared level-label and next-level lookup table
  - engine.go:     Escalation recommendation engine
  - categories.go: Default seeded category set
  - store.go:      Persistence interfaces
*/
package discipline

import (
	"fmt"
	"strings"
	"time"
)

// =============================================================================
// IDENTIFIERS
// =============================================================================

type OrganizationID string
type EmployeeID string
type CategoryID string
type WarningID string

// =============================================================================
// LEVEL - One step on an escalation path
// =============================================================================

// Level is a discipline-level token. Tokens are stable identifiers stored on
// warnings and template placeholders; display labels live in levels.go.
type Level string

const (
	LevelCounselling   Level = "counselling"
	LevelVerbal        Level = "verbal"
	LevelFirstWritten  Level = "first_written"
	LevelSecondWritten Level = "second_written"
	LevelFinalWritten  Level = "final_written"
	LevelSuspension    Level = "suspension"
	LevelDismissal     Level = "dismissal"
)

// =============================================================================
// SEVERITY
// =============================================================================

type Severity string

const (
	SeverityMinor           Severity = "minor"
	SeveritySerious         Severity = "serious"
	SeverityGrossMisconduct Severity = "gross_misconduct"
)

// ValidSeverity reports whether s is a known severity token.
func ValidSeverity(s Severity) bool {
	switch s {
	case SeverityMinor, SeveritySerious, SeverityGrossMisconduct:
		return true
	}
	return false
}

// =============================================================================
// WARNING CATEGORY - Per-organization reference data
// =============================================================================

// WarningCategory identifies an offense class and its progressive-discipline
// path. Reference data: seeded once per organization, rarely edited.
type WarningCategory struct {
	ID             CategoryID
	OrganizationID OrganizationID
	Name           string
	Severity       Severity

	// EscalationPath is the ordered sequence of levels for this offense
	// class. Invariant: non-empty, no repeated level, terminates at
	// LevelDismissal.
	EscalationPath []Level

	// ValidityMonths is how long a warning in this category stays active.
	ValidityMonths int

	LegalCitations []string
	Examples       []string
}

// Validate checks the category invariants before persistence.
func (c *WarningCategory) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("%w: missing category id", ErrInvalidCategory)
	}
	if c.OrganizationID == "" {
		return fmt.Errorf("%w: missing organization id", ErrInvalidCategory)
	}
	if c.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidCategory)
	}
	if !ValidSeverity(c.Severity) {
		return fmt.Errorf("%w: unknown severity %q", ErrInvalidCategory, c.Severity)
	}
	if c.ValidityMonths <= 0 {
		return fmt.Errorf("%w: validity months must be positive", ErrInvalidCategory)
	}
	return validatePath(c.EscalationPath)
}

// validatePath enforces the escalation-path invariant: non-empty, no level
// repeats, and the final step is dismissal.
func validatePath(path []Level) error {
	if len(path) == 0 {
		return fmt.Errorf("%w: empty path", ErrInvalidEscalationPath)
	}
	seen := make(map[Level]bool, len(path))
	for _, l := range path {
		if seen[l] {
			return fmt.Errorf("%w: level %q repeats", ErrInvalidEscalationPath, l)
		}
		seen[l] = true
	}
	if path[len(path)-1] != LevelDismissal {
		return fmt.Errorf("%w: path must terminate at %q", ErrInvalidEscalationPath, LevelDismissal)
	}
	return nil
}

// LevelIndex returns the position of l on the escalation path, or -1 when l
// is not on the path. Unknown or corrupt stored levels therefore sort below
// the path's first entry.
func (c *WarningCategory) LevelIndex(l Level) int {
	for i, p := range c.EscalationPath {
		if p == l {
			return i
		}
	}
	return -1
}

// =============================================================================
// WARNING - Immutable disciplinary record
// =============================================================================

type DeliveryStatus string

const (
	DeliveryPending      DeliveryStatus = "pending"
	DeliveryDelivered    DeliveryStatus = "delivered"
	DeliveryAcknowledged DeliveryStatus = "acknowledged"
	DeliveryFailed       DeliveryStatus = "failed"
)

// ValidDeliveryStatus reports whether s is a known delivery status.
func ValidDeliveryStatus(s DeliveryStatus) bool {
	switch s {
	case DeliveryPending, DeliveryDelivered, DeliveryAcknowledged, DeliveryFailed:
		return true
	}
	return false
}

// Signature records a party signing the warning document. Optional on both
// sides; an employee may refuse to sign.
type Signature struct {
	SignedBy string
	SignedAt time.Time
	Note     string
}

// Warning is a disciplinary record. Created when HR issues discipline;
// mutated only through delivery/status updates; never deleted (legal
// retention), only marked inactive.
type Warning struct {
	ID             WarningID
	OrganizationID OrganizationID
	EmployeeID     EmployeeID
	CategoryID     CategoryID

	// Level is one token from the category's escalation path at issue time.
	Level Level

	IncidentDate time.Time
	IssueDate    time.Time
	ExpiryDate   time.Time

	Description string
	IssuedBy    string

	Active   bool
	Delivery DeliveryStatus

	ManagerSignature  *Signature
	EmployeeSignature *Signature

	// PDFTemplateVersion pins the frozen template version used to render
	// this warning's legal document. Set at creation, never changed:
	// regeneration must be byte-identical regardless of later template
	// revisions.
	PDFTemplateVersion string
}

// Validate checks the warning record before persistence.
func (w *Warning) Validate() error {
	var missing []string
	if w.ID == "" {
		missing = append(missing, "id")
	}
	if w.OrganizationID == "" {
		missing = append(missing, "organization id")
	}
	if w.EmployeeID == "" {
		missing = append(missing, "employee id")
	}
	if w.CategoryID == "" {
		missing = append(missing, "category id")
	}
	if w.Level == "" {
		missing = append(missing, "level")
	}
	if w.IssuedBy == "" {
		missing = append(missing, "issuer id")
	}
	if w.PDFTemplateVersion == "" {
		missing = append(missing, "pdf template version")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrInvalidWarning, strings.Join(missing, ", "))
	}
	if w.IssueDate.IsZero() {
		return fmt.Errorf("%w: missing issue date", ErrInvalidWarning)
	}
	if !ValidDeliveryStatus(w.Delivery) {
		return fmt.Errorf("%w: unknown delivery status %q", ErrInvalidWarning, w.Delivery)
	}
	return nil
}

// =============================================================================
// EMPLOYEE / ORGANIZATION - Parties referenced by warnings and documents
// =============================================================================

type Employee struct {
	ID             EmployeeID
	OrganizationID OrganizationID
	FirstName      string
	LastName       string
	EmployeeNumber string
	Email          string
	Department     string
	Position       string
	HireDate       time.Time
}

// FullName joins the employee's names for display.
func (e *Employee) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}

type Organization struct {
	ID                 OrganizationID
	Name               string
	RegistrationNumber string
	Address            string
	ContactEmail       string
	ContactPhone       string
}
