/*
store.go - Persistence interfaces for the discipline domain

PURPOSE:
  Defines the interface between domain logic and the database. Different
  implementations use SQLite (store/sqlite) or in-memory maps
  (discipline/store) for tests.

APPEND-ONLY CONTRACT:
  Warnings are legal records. The WarningStore exposes:
  - AppendWarning():   the ONLY way a warning enters the store
  - UpdateDelivery():  the ONLY post-creation mutation
  - Deactivate():      marks inactive; the row itself is retained
  There is NO delete and NO general update. PDFTemplateVersion in
  particular must never change after creation.

AUDIT LOG:
  Separate from the warning records; append-only trail of who issued,
  overrode, delivered, or deactivated what.

IMPLEMENTATIONS:
  - store/sqlite/sqlite.go:    Production SQLite
  - discipline/store/memory.go: In-memory for testing

SEE ALSO:
  - engine.go:   Consumes the narrowed HistorySource/CategorySource views
  - template/store.go: The template version store (separate contract)
*/
package discipline

import (
	"context"
	"time"
)

// =============================================================================
// WARNING STORE
// =============================================================================

// WarningStore persists disciplinary warnings. Append-only: no delete, no
// general update.
type WarningStore interface {
	// AppendWarning persists a new warning. Returns ErrDuplicateWarning if
	// the id already exists.
	AppendWarning(ctx context.Context, w Warning) error

	// GetWarning returns a warning by id, or ErrWarningNotFound.
	GetWarning(ctx context.Context, id WarningID) (*Warning, error)

	// ActiveWarnings returns the employee's active warnings, ordered by
	// issue date ascending. Satisfies HistorySource.
	ActiveWarnings(ctx context.Context, orgID OrganizationID, employeeID EmployeeID) ([]Warning, error)

	// ListWarnings returns all warnings (active and inactive) for an
	// employee, ordered by issue date ascending.
	ListWarnings(ctx context.Context, orgID OrganizationID, employeeID EmployeeID) ([]Warning, error)

	// UpdateDelivery updates the delivery status. The only mutable fields.
	UpdateDelivery(ctx context.Context, id WarningID, status DeliveryStatus) error

	// Deactivate marks the warning inactive (e.g. expired or overturned on
	// appeal). The record is retained.
	Deactivate(ctx context.Context, id WarningID) error
}

// =============================================================================
// REFERENCE DATA STORES
// =============================================================================

// CategoryStore persists per-organization warning categories.
type CategoryStore interface {
	// GetCategory satisfies CategorySource.
	GetCategory(ctx context.Context, orgID OrganizationID, id CategoryID) (*WarningCategory, error)

	// ListCategories returns the organization's categories ordered by id.
	ListCategories(ctx context.Context, orgID OrganizationID) ([]WarningCategory, error)

	// PutCategory inserts or replaces a category. Validation happens here,
	// at the storage boundary.
	PutCategory(ctx context.Context, c WarningCategory) error
}

// EmployeeStore persists employees.
type EmployeeStore interface {
	GetEmployee(ctx context.Context, orgID OrganizationID, id EmployeeID) (*Employee, error)
	ListEmployees(ctx context.Context, orgID OrganizationID) ([]Employee, error)
	PutEmployee(ctx context.Context, e Employee) error
}

// OrganizationStore persists organizations.
type OrganizationStore interface {
	GetOrganization(ctx context.Context, id OrganizationID) (*Organization, error)
	ListOrganizations(ctx context.Context) ([]Organization, error)
	PutOrganization(ctx context.Context, o Organization) error
}

// =============================================================================
// AUDIT LOG - Append-only, separate from the warning records
// =============================================================================

type AuditAction string

const (
	AuditWarningIssued       AuditAction = "warning_issued"
	AuditLevelOverridden     AuditAction = "level_overridden"
	AuditDeliveryUpdated     AuditAction = "delivery_updated"
	AuditWarningDeactivated  AuditAction = "warning_deactivated"
	AuditTemplateActivated   AuditAction = "template_version_activated"
	AuditCategoriesSeeded    AuditAction = "categories_seeded"
)

// AuditEntry records who did what when.
type AuditEntry struct {
	ID             string
	Timestamp      time.Time
	OrganizationID OrganizationID
	ActorID        string
	Action         AuditAction
	WarningID      WarningID
	Detail         string
}

// AuditLog stores audit entries. Also append-only.
type AuditLog interface {
	AppendAudit(ctx context.Context, entry AuditEntry) error
	ListAudit(ctx context.Context, orgID OrganizationID) ([]AuditEntry, error)
}
