// Package store provides an in-memory VersionStore implementation, for
// tests and development.
package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/weevi/discipline-engine/discipline"
	"github.com/weevi/discipline-engine/template"
)

// =============================================================================
// MEMORY VERSION STORE
// =============================================================================

// Memory implements template.VersionStore with maps behind a RWMutex.
// Set-if-absent semantics match the SQLite implementation exactly.
type Memory struct {
	mu       sync.RWMutex
	versions map[verKey]template.VersionRecord
	current  map[discipline.OrganizationID]string
	clock    func() time.Time
}

type verKey struct {
	OrgID   discipline.OrganizationID
	Version string
}

func NewMemory() *Memory {
	return &Memory{
		versions: make(map[verKey]template.VersionRecord),
		current:  make(map[discipline.OrganizationID]string),
		clock:    time.Now,
	}
}

// WithClock pins the activation timestamp clock. Tests use this.
func (m *Memory) WithClock(clock func() time.Time) *Memory {
	m.clock = clock
	return m
}

// SaveVersion stores the payload for (orgID, version). No-op when the pair
// already exists: frozen-on-write.
func (m *Memory) SaveVersion(_ context.Context, orgID discipline.OrganizationID, version string, settings template.Settings, meta template.VersionMeta) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	k := verKey{OrgID: orgID, Version: version}
	if _, exists := m.versions[k]; exists {
		return nil
	}
	if meta.ActivatedAt.IsZero() {
		meta.ActivatedAt = m.clock()
	}
	m.versions[k] = template.VersionRecord{
		OrganizationID: orgID,
		Version:        version,
		Settings:       settings,
		Meta:           meta,
	}
	return nil
}

func (m *Memory) GetVersion(_ context.Context, orgID discipline.OrganizationID, version string) (*template.VersionRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.versions[verKey{OrgID: orgID, Version: version}]
	if !ok {
		return nil, &template.VersionNotFoundError{OrganizationID: orgID, Version: version}
	}
	return &rec, nil
}

func (m *Memory) CurrentVersion(ctx context.Context, orgID discipline.OrganizationID) (*template.VersionRecord, error) {
	m.mu.RLock()
	version, ok := m.current[orgID]
	m.mu.RUnlock()
	if !ok {
		return nil, template.ErrNoCurrentVersion
	}
	return m.GetVersion(ctx, orgID, version)
}

func (m *Memory) SetCurrentVersion(_ context.Context, orgID discipline.OrganizationID, version string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.versions[verKey{OrgID: orgID, Version: version}]; !ok {
		return &template.VersionNotFoundError{OrganizationID: orgID, Version: version}
	}
	m.current[orgID] = version
	return nil
}

func (m *Memory) ListVersions(_ context.Context, orgID discipline.OrganizationID) ([]template.VersionRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var result []template.VersionRecord
	for k, rec := range m.versions {
		if k.OrgID == orgID {
			result = append(result, rec)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].Meta.ActivatedAt.Equal(result[j].Meta.ActivatedAt) {
			return result[i].Meta.ActivatedAt.Before(result[j].Meta.ActivatedAt)
		}
		return result[i].Version < result[j].Version
	})
	return result, nil
}
