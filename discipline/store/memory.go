// Package store provides in-memory implementations of the discipline
// persistence interfaces, for tests and development.
package store

import (
	"context"
	"sort"
	"sync"

	"github.com/weevi/discipline-engine/discipline"
)

// =============================================================================
// MEMORY STORE - In-memory implementation (for testing/dev)
// =============================================================================

// Memory implements WarningStore, CategoryStore, EmployeeStore,
// OrganizationStore and AuditLog with maps behind a RWMutex.
type Memory struct {
	mu            sync.RWMutex
	warnings      map[discipline.WarningID]discipline.Warning
	categories    map[catKey]discipline.WarningCategory
	employees     map[empKey]discipline.Employee
	organizations map[discipline.OrganizationID]discipline.Organization
	audit         []discipline.AuditEntry
}

type catKey struct {
	OrgID discipline.OrganizationID
	ID    discipline.CategoryID
}

type empKey struct {
	OrgID discipline.OrganizationID
	ID    discipline.EmployeeID
}

func NewMemory() *Memory {
	return &Memory{
		warnings:      make(map[discipline.WarningID]discipline.Warning),
		categories:    make(map[catKey]discipline.WarningCategory),
		employees:     make(map[empKey]discipline.Employee),
		organizations: make(map[discipline.OrganizationID]discipline.Organization),
	}
}

// =============================================================================
// WARNING STORE
// =============================================================================

// AppendWarning adds a warning. Append-only.
func (m *Memory) AppendWarning(_ context.Context, w discipline.Warning) error {
	if err := w.Validate(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.warnings[w.ID]; exists {
		return discipline.ErrDuplicateWarning
	}
	m.warnings[w.ID] = w
	return nil
}

func (m *Memory) GetWarning(_ context.Context, id discipline.WarningID) (*discipline.Warning, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	w, ok := m.warnings[id]
	if !ok {
		return nil, discipline.ErrWarningNotFound
	}
	return &w, nil
}

func (m *Memory) ActiveWarnings(ctx context.Context, orgID discipline.OrganizationID, employeeID discipline.EmployeeID) ([]discipline.Warning, error) {
	all, err := m.ListWarnings(ctx, orgID, employeeID)
	if err != nil {
		return nil, err
	}
	var active []discipline.Warning
	for _, w := range all {
		if w.Active {
			active = append(active, w)
		}
	}
	return active, nil
}

func (m *Memory) ListWarnings(_ context.Context, orgID discipline.OrganizationID, employeeID discipline.EmployeeID) ([]discipline.Warning, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []discipline.Warning
	for _, w := range m.warnings {
		if w.OrganizationID == orgID && w.EmployeeID == employeeID {
			result = append(result, w)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].IssueDate.Before(result[j].IssueDate)
	})
	return result, nil
}

func (m *Memory) UpdateDelivery(_ context.Context, id discipline.WarningID, status discipline.DeliveryStatus) error {
	if !discipline.ValidDeliveryStatus(status) {
		return discipline.ErrInvalidWarning
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	w, ok := m.warnings[id]
	if !ok {
		return discipline.ErrWarningNotFound
	}
	w.Delivery = status
	m.warnings[id] = w
	return nil
}

func (m *Memory) Deactivate(_ context.Context, id discipline.WarningID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	w, ok := m.warnings[id]
	if !ok {
		return discipline.ErrWarningNotFound
	}
	w.Active = false
	m.warnings[id] = w
	return nil
}

// =============================================================================
// CATEGORY STORE
// =============================================================================

func (m *Memory) GetCategory(_ context.Context, orgID discipline.OrganizationID, id discipline.CategoryID) (*discipline.WarningCategory, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.categories[catKey{OrgID: orgID, ID: id}]
	if !ok {
		return nil, discipline.ErrCategoryNotFound
	}
	return &c, nil
}

func (m *Memory) ListCategories(_ context.Context, orgID discipline.OrganizationID) ([]discipline.WarningCategory, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []discipline.WarningCategory
	for k, c := range m.categories {
		if k.OrgID == orgID {
			result = append(result, c)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *Memory) PutCategory(_ context.Context, c discipline.WarningCategory) error {
	if err := c.Validate(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.categories[catKey{OrgID: c.OrganizationID, ID: c.ID}] = c
	return nil
}

// =============================================================================
// EMPLOYEE STORE
// =============================================================================

func (m *Memory) GetEmployee(_ context.Context, orgID discipline.OrganizationID, id discipline.EmployeeID) (*discipline.Employee, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.employees[empKey{OrgID: orgID, ID: id}]
	if !ok {
		return nil, discipline.ErrEmployeeNotFound
	}
	return &e, nil
}

func (m *Memory) ListEmployees(_ context.Context, orgID discipline.OrganizationID) ([]discipline.Employee, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []discipline.Employee
	for k, e := range m.employees {
		if k.OrgID == orgID {
			result = append(result, e)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *Memory) PutEmployee(_ context.Context, e discipline.Employee) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.employees[empKey{OrgID: e.OrganizationID, ID: e.ID}] = e
	return nil
}

// =============================================================================
// ORGANIZATION STORE
// =============================================================================

func (m *Memory) GetOrganization(_ context.Context, id discipline.OrganizationID) (*discipline.Organization, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	o, ok := m.organizations[id]
	if !ok {
		return nil, discipline.ErrOrganizationNotFound
	}
	return &o, nil
}

func (m *Memory) ListOrganizations(_ context.Context) ([]discipline.Organization, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []discipline.Organization
	for _, o := range m.organizations {
		result = append(result, o)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *Memory) PutOrganization(_ context.Context, o discipline.Organization) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.organizations[o.ID] = o
	return nil
}

// =============================================================================
// AUDIT LOG
// =============================================================================

func (m *Memory) AppendAudit(_ context.Context, entry discipline.AuditEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.audit = append(m.audit, entry)
	return nil
}

func (m *Memory) ListAudit(_ context.Context, orgID discipline.OrganizationID) ([]discipline.AuditEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []discipline.AuditEntry
	for _, e := range m.audit {
		if e.OrganizationID == orgID {
			result = append(result, e)
		}
	}
	return result, nil
}
