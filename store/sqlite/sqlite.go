/*
Package sqlite provides a SQLite-backed implementation of the storage
interfaces.

PURPOSE:
  Implements all persistence interfaces (WarningStore, CategoryStore,
  EmployeeStore, OrganizationStore, AuditLog, template.VersionStore) using
  SQLite. In production, the same patterns apply to PostgreSQL - only minor
  SQL dialect differences.

APPEND-ONLY ENFORCEMENT:
  Warnings are legal records:
  - No DELETE statements on the warnings table, ever
  - The only UPDATEs touch delivery_status and active
  - pdf_template_version is written once at insert and never updated

FROZEN-ON-WRITE VERSIONS:
  template_versions has a (org_id, version) primary key and is written with
  INSERT OR IGNORE: the second write of the same pair is a silent no-op,
  which realizes the set-if-absent contract at the database level and makes
  concurrent duplicate writes safe without application locking.

KEY TABLES:
  organizations:     Tenant records
  employees:         Party records for documents and dashboards
  categories:        Per-organization offense taxonomy (reference data)
  warnings:          Append-only disciplinary records
  template_versions: Frozen template payloads, keyed (org_id, version)
  template_current:  Active version pointer per organization
  audit_log:         Append-only action trail

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging) for better concurrency:
  multiple readers don't block, single writer at a time, better crash
  recovery.

USAGE:
  store, err := sqlite.New("./data/discipline.db")
  if err != nil { log.Fatal(err) }
  defer store.Close()

MIGRATION:
  Schema is auto-migrated on New(). For production, use a proper migration
  tool (golang-migrate, goose) with versioned migrations.

SEE ALSO:
  - discipline/store.go:        Interface definitions
  - template/store.go:          Version store contract
  - discipline/store/memory.go: In-memory implementation for testing
*/
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/weevi/discipline-engine/discipline"
	"github.com/weevi/discipline-engine/template"
)

// Store implements all storage interfaces using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS organizations (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		registration_number TEXT,
		address TEXT,
		contact_email TEXT,
		contact_phone TEXT
	);

	CREATE TABLE IF NOT EXISTS employees (
		id TEXT NOT NULL,
		org_id TEXT NOT NULL,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		employee_number TEXT,
		email TEXT,
		department TEXT,
		position TEXT,
		hire_date TEXT,
		PRIMARY KEY (org_id, id)
	);

	-- Offense taxonomy (reference data, seeded per organization)
	CREATE TABLE IF NOT EXISTS categories (
		id TEXT NOT NULL,
		org_id TEXT NOT NULL,
		name TEXT NOT NULL,
		severity TEXT NOT NULL,
		escalation_path_json TEXT NOT NULL,
		validity_months INTEGER NOT NULL,
		legal_citations_json TEXT,
		examples_json TEXT,
		PRIMARY KEY (org_id, id)
	);

	-- Warnings (append-only legal records; no DELETE, ever)
	CREATE TABLE IF NOT EXISTS warnings (
		id TEXT PRIMARY KEY,
		org_id TEXT NOT NULL,
		employee_id TEXT NOT NULL,
		category_id TEXT NOT NULL,
		level TEXT NOT NULL,
		incident_date TEXT,
		issue_date TEXT NOT NULL,
		expiry_date TEXT,
		description TEXT,
		issued_by TEXT NOT NULL,
		active INTEGER NOT NULL DEFAULT 1,
		delivery_status TEXT NOT NULL,
		manager_signature_json TEXT,
		employee_signature_json TEXT,
		pdf_template_version TEXT NOT NULL
	);

	-- Hot path: active-warning history per employee
	CREATE INDEX IF NOT EXISTS idx_warnings_org_employee
		ON warnings(org_id, employee_id, issue_date);
	CREATE INDEX IF NOT EXISTS idx_warnings_category
		ON warnings(org_id, category_id);

	-- Frozen template versions; the primary key plus INSERT OR IGNORE
	-- realizes the set-if-absent contract
	CREATE TABLE IF NOT EXISTS template_versions (
		org_id TEXT NOT NULL,
		version TEXT NOT NULL,
		settings_json TEXT NOT NULL,
		activated_at TEXT NOT NULL,
		activated_by TEXT,
		reason TEXT,
		previous_version TEXT,
		PRIMARY KEY (org_id, version)
	);

	CREATE TABLE IF NOT EXISTS template_current (
		org_id TEXT PRIMARY KEY,
		version TEXT NOT NULL
	);

	-- Audit trail (append-only)
	CREATE TABLE IF NOT EXISTS audit_log (
		id TEXT PRIMARY KEY,
		timestamp TEXT NOT NULL,
		org_id TEXT NOT NULL,
		actor_id TEXT,
		action TEXT NOT NULL,
		warning_id TEXT,
		detail TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_audit_org
		ON audit_log(org_id, timestamp);
	`
	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// TIME / JSON HELPERS
// =============================================================================

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func marshalJSON(v any) (string, error) {
	if v == nil {
		return "", nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func marshalSignature(sig *discipline.Signature) (string, error) {
	if sig == nil {
		return "", nil
	}
	return marshalJSON(sig)
}

type rowScanner interface {
	Scan(dest ...any) error
}

// =============================================================================
// ORGANIZATION STORE
// =============================================================================

func (s *Store) PutOrganization(ctx context.Context, o discipline.Organization) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO organizations
			(id, name, registration_number, address, contact_email, contact_phone)
		VALUES (?, ?, ?, ?, ?, ?)`,
		o.ID, o.Name, o.RegistrationNumber, o.Address, o.ContactEmail, o.ContactPhone)
	return err
}

func (s *Store) GetOrganization(ctx context.Context, id discipline.OrganizationID) (*discipline.Organization, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, registration_number, address, contact_email, contact_phone
		FROM organizations WHERE id = ?`, id)

	var o discipline.Organization
	err := row.Scan(&o.ID, &o.Name, &o.RegistrationNumber, &o.Address, &o.ContactEmail, &o.ContactPhone)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, discipline.ErrOrganizationNotFound
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (s *Store) ListOrganizations(ctx context.Context) ([]discipline.Organization, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, registration_number, address, contact_email, contact_phone
		FROM organizations ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []discipline.Organization
	for rows.Next() {
		var o discipline.Organization
		if err := rows.Scan(&o.ID, &o.Name, &o.RegistrationNumber, &o.Address, &o.ContactEmail, &o.ContactPhone); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	return result, rows.Err()
}

// =============================================================================
// EMPLOYEE STORE
// =============================================================================

func (s *Store) PutEmployee(ctx context.Context, e discipline.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO employees
			(id, org_id, first_name, last_name, employee_number, email, department, position, hire_date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.OrganizationID, e.FirstName, e.LastName, e.EmployeeNumber,
		e.Email, e.Department, e.Position, formatTime(e.HireDate))
	return err
}

func (s *Store) GetEmployee(ctx context.Context, orgID discipline.OrganizationID, id discipline.EmployeeID) (*discipline.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	row := s.db.QueryRowContext(ctx, `
		SELECT id, org_id, first_name, last_name, employee_number, email, department, position, hire_date
		FROM employees WHERE org_id = ? AND id = ?`, orgID, id)

	e, err := scanEmployee(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, discipline.ErrEmployeeNotFound
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (s *Store) ListEmployees(ctx context.Context, orgID discipline.OrganizationID) ([]discipline.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, org_id, first_name, last_name, employee_number, email, department, position, hire_date
		FROM employees WHERE org_id = ? ORDER BY id`, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []discipline.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *e)
	}
	return result, rows.Err()
}

func scanEmployee(row rowScanner) (*discipline.Employee, error) {
	var e discipline.Employee
	var hireDate string
	err := row.Scan(&e.ID, &e.OrganizationID, &e.FirstName, &e.LastName,
		&e.EmployeeNumber, &e.Email, &e.Department, &e.Position, &hireDate)
	if err != nil {
		return nil, err
	}
	e.HireDate = parseTime(hireDate)
	return &e, nil
}

// =============================================================================
// CATEGORY STORE
// =============================================================================

func (s *Store) PutCategory(ctx context.Context, c discipline.WarningCategory) error {
	if err := c.Validate(); err != nil {
		return err
	}
	pathJSON, err := marshalJSON(c.EscalationPath)
	if err != nil {
		return err
	}
	citationsJSON, err := marshalJSON(c.LegalCitations)
	if err != nil {
		return err
	}
	examplesJSON, err := marshalJSON(c.Examples)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	_, err = s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO categories
			(id, org_id, name, severity, escalation_path_json, validity_months, legal_citations_json, examples_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.OrganizationID, c.Name, c.Severity, pathJSON, c.ValidityMonths, citationsJSON, examplesJSON)
	return err
}

func (s *Store) GetCategory(ctx context.Context, orgID discipline.OrganizationID, id discipline.CategoryID) (*discipline.WarningCategory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	row := s.db.QueryRowContext(ctx, `
		SELECT id, org_id, name, severity, escalation_path_json, validity_months, legal_citations_json, examples_json
		FROM categories WHERE org_id = ? AND id = ?`, orgID, id)

	c, err := scanCategory(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, discipline.ErrCategoryNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Store) ListCategories(ctx context.Context, orgID discipline.OrganizationID) ([]discipline.WarningCategory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, org_id, name, severity, escalation_path_json, validity_months, legal_citations_json, examples_json
		FROM categories WHERE org_id = ? ORDER BY id`, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []discipline.WarningCategory
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *c)
	}
	return result, rows.Err()
}

func scanCategory(row rowScanner) (*discipline.WarningCategory, error) {
	var c discipline.WarningCategory
	var pathJSON, citationsJSON, examplesJSON string
	err := row.Scan(&c.ID, &c.OrganizationID, &c.Name, &c.Severity,
		&pathJSON, &c.ValidityMonths, &citationsJSON, &examplesJSON)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(pathJSON), &c.EscalationPath); err != nil {
		return nil, fmt.Errorf("corrupt escalation path for category %s: %w", c.ID, err)
	}
	if citationsJSON != "" {
		if err := json.Unmarshal([]byte(citationsJSON), &c.LegalCitations); err != nil {
			return nil, err
		}
	}
	if examplesJSON != "" {
		if err := json.Unmarshal([]byte(examplesJSON), &c.Examples); err != nil {
			return nil, err
		}
	}
	return &c, nil
}

// =============================================================================
// WARNING STORE (append-only)
// =============================================================================

// AppendWarning persists a new warning. The ONLY insert path; there is no
// update path for anything except delivery status and the active flag.
func (s *Store) AppendWarning(ctx context.Context, w discipline.Warning) error {
	if err := w.Validate(); err != nil {
		return err
	}
	mgrSig, err := marshalSignature(w.ManagerSignature)
	if err != nil {
		return err
	}
	empSig, err := marshalSignature(w.EmployeeSignature)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	active := 0
	if w.Active {
		active = 1
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO warnings
			(id, org_id, employee_id, category_id, level, incident_date, issue_date, expiry_date,
			 description, issued_by, active, delivery_status,
			 manager_signature_json, employee_signature_json, pdf_template_version)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		w.ID, w.OrganizationID, w.EmployeeID, w.CategoryID, w.Level,
		formatTime(w.IncidentDate), formatTime(w.IssueDate), formatTime(w.ExpiryDate),
		w.Description, w.IssuedBy, active, w.Delivery, mgrSig, empSig, w.PDFTemplateVersion)
	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return discipline.ErrDuplicateWarning
	}
	return err
}

func (s *Store) GetWarning(ctx context.Context, id discipline.WarningID) (*discipline.Warning, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	row := s.db.QueryRowContext(ctx, warningSelect+` WHERE id = ?`, id)
	w, err := scanWarning(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, discipline.ErrWarningNotFound
	}
	if err != nil {
		return nil, err
	}
	return w, nil
}

func (s *Store) ActiveWarnings(ctx context.Context, orgID discipline.OrganizationID, employeeID discipline.EmployeeID) ([]discipline.Warning, error) {
	return s.queryWarnings(ctx,
		warningSelect+` WHERE org_id = ? AND employee_id = ? AND active = 1 ORDER BY issue_date`,
		orgID, employeeID)
}

func (s *Store) ListWarnings(ctx context.Context, orgID discipline.OrganizationID, employeeID discipline.EmployeeID) ([]discipline.Warning, error) {
	return s.queryWarnings(ctx,
		warningSelect+` WHERE org_id = ? AND employee_id = ? ORDER BY issue_date`,
		orgID, employeeID)
}

func (s *Store) queryWarnings(ctx context.Context, query string, args ...any) ([]discipline.Warning, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []discipline.Warning
	for rows.Next() {
		w, err := scanWarning(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *w)
	}
	return result, rows.Err()
}

const warningSelect = `
	SELECT id, org_id, employee_id, category_id, level, incident_date, issue_date, expiry_date,
	       description, issued_by, active, delivery_status,
	       manager_signature_json, employee_signature_json, pdf_template_version
	FROM warnings`

func scanWarning(row rowScanner) (*discipline.Warning, error) {
	var w discipline.Warning
	var incident, issue, expiry, mgrSig, empSig string
	var active int
	err := row.Scan(&w.ID, &w.OrganizationID, &w.EmployeeID, &w.CategoryID, &w.Level,
		&incident, &issue, &expiry, &w.Description, &w.IssuedBy, &active,
		&w.Delivery, &mgrSig, &empSig, &w.PDFTemplateVersion)
	if err != nil {
		return nil, err
	}
	w.IncidentDate = parseTime(incident)
	w.IssueDate = parseTime(issue)
	w.ExpiryDate = parseTime(expiry)
	w.Active = active == 1
	if mgrSig != "" {
		if err := json.Unmarshal([]byte(mgrSig), &w.ManagerSignature); err != nil {
			return nil, err
		}
	}
	if empSig != "" {
		if err := json.Unmarshal([]byte(empSig), &w.EmployeeSignature); err != nil {
			return nil, err
		}
	}
	return &w, nil
}

// UpdateDelivery updates the delivery status. The only mutable field
// besides the active flag.
func (s *Store) UpdateDelivery(ctx context.Context, id discipline.WarningID, status discipline.DeliveryStatus) error {
	if !discipline.ValidDeliveryStatus(status) {
		return discipline.ErrInvalidWarning
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	res, err := s.db.ExecContext(ctx,
		`UPDATE warnings SET delivery_status = ? WHERE id = ?`, status, id)
	if err != nil {
		return err
	}
	return requireRow(res, discipline.ErrWarningNotFound)
}

// Deactivate marks the warning inactive. The row is retained.
func (s *Store) Deactivate(ctx context.Context, id discipline.WarningID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, err := s.db.ExecContext(ctx,
		`UPDATE warnings SET active = 0 WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res, discipline.ErrWarningNotFound)
}

func requireRow(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound
	}
	return nil
}

// =============================================================================
// TEMPLATE VERSION STORE (frozen-on-write)
// =============================================================================

// SaveVersion stores the payload for (orgID, version). INSERT OR IGNORE:
// a second write of the same pair is a silent no-op, never an overwrite.
func (s *Store) SaveVersion(ctx context.Context, orgID discipline.OrganizationID, version string, settings template.Settings, meta template.VersionMeta) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	settingsJSON, err := marshalJSON(settings)
	if err != nil {
		return err
	}
	activatedAt := meta.ActivatedAt
	if activatedAt.IsZero() {
		activatedAt = time.Now()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	_, err = s.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO template_versions
			(org_id, version, settings_json, activated_at, activated_by, reason, previous_version)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		orgID, version, settingsJSON, formatTime(activatedAt),
		meta.ActivatedBy, meta.Reason, meta.PreviousVersion)
	return err
}

func (s *Store) GetVersion(ctx context.Context, orgID discipline.OrganizationID, version string) (*template.VersionRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	row := s.db.QueryRowContext(ctx, `
		SELECT org_id, version, settings_json, activated_at, activated_by, reason, previous_version
		FROM template_versions WHERE org_id = ? AND version = ?`, orgID, version)

	rec, err := scanVersion(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &template.VersionNotFoundError{OrganizationID: orgID, Version: version}
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *Store) CurrentVersion(ctx context.Context, orgID discipline.OrganizationID) (*template.VersionRecord, error) {
	s.mu.RLock()
	row := s.db.QueryRowContext(ctx,
		`SELECT version FROM template_current WHERE org_id = ?`, orgID)
	var version string
	err := row.Scan(&version)
	s.mu.RUnlock()
	if errors.Is(err, sql.ErrNoRows) {
		return nil, template.ErrNoCurrentVersion
	}
	if err != nil {
		return nil, err
	}
	return s.GetVersion(ctx, orgID, version)
}

func (s *Store) SetCurrentVersion(ctx context.Context, orgID discipline.OrganizationID, version string) error {
	// The pointer may only reference a stored version.
	if _, err := s.GetVersion(ctx, orgID, version); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO template_current (org_id, version) VALUES (?, ?)`,
		orgID, version)
	return err
}

func (s *Store) ListVersions(ctx context.Context, orgID discipline.OrganizationID) ([]template.VersionRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rows, err := s.db.QueryContext(ctx, `
		SELECT org_id, version, settings_json, activated_at, activated_by, reason, previous_version
		FROM template_versions WHERE org_id = ? ORDER BY activated_at, version`, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []template.VersionRecord
	for rows.Next() {
		rec, err := scanVersion(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *rec)
	}
	return result, rows.Err()
}

func scanVersion(row rowScanner) (*template.VersionRecord, error) {
	var rec template.VersionRecord
	var settingsJSON, activatedAt string
	err := row.Scan(&rec.OrganizationID, &rec.Version, &settingsJSON,
		&activatedAt, &rec.Meta.ActivatedBy, &rec.Meta.Reason, &rec.Meta.PreviousVersion)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(settingsJSON), &rec.Settings); err != nil {
		return nil, fmt.Errorf("corrupt settings payload for version %s: %w", rec.Version, err)
	}
	rec.Meta.ActivatedAt = parseTime(activatedAt)
	return &rec, nil
}

// =============================================================================
// AUDIT LOG (append-only)
// =============================================================================

func (s *Store) AppendAudit(ctx context.Context, entry discipline.AuditEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO audit_log (id, timestamp, org_id, actor_id, action, warning_id, detail)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entry.ID, formatTime(entry.Timestamp), entry.OrganizationID,
		entry.ActorID, entry.Action, entry.WarningID, entry.Detail)
	return err
}

func (s *Store) ListAudit(ctx context.Context, orgID discipline.OrganizationID) ([]discipline.AuditEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, timestamp, org_id, actor_id, action, warning_id, detail
		FROM audit_log WHERE org_id = ? ORDER BY timestamp`, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []discipline.AuditEntry
	for rows.Next() {
		var e discipline.AuditEntry
		var ts string
		if err := rows.Scan(&e.ID, &ts, &e.OrganizationID, &e.ActorID, &e.Action, &e.WarningID, &e.Detail); err != nil {
			return nil, err
		}
		e.Timestamp = parseTime(ts)
		result = append(result, e)
	}
	return result, rows.Err()
}
