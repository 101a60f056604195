/*
store.go - Template version store contract

PURPOSE:
  Defines the persisted schema and access contract for frozen template
  versions. Warnings reference a version STRING; this store resolves it to
  the frozen settings payload at render time.

FROZEN-ON-WRITE CONTRACT:
  SaveVersion is set-if-absent: writing an (orgID, version) pair that
  already holds a payload is a silent NO-OP, not an error and not an
  overwrite. This enforces immutability without requiring callers to check
  first, and makes concurrent duplicate writes safe to race without a lock.

FAIL-CLOSED CONTRACT:
  GetVersion misses are surfaced as ErrVersionNotFound and are FATAL for
  rendering the affected document: a legal record cannot be regenerated
  from fabricated content, and silently falling back to the current
  template would violate the reproducibility guarantee. This is the
  opposite of the recommendation engine's fail-open policy; the asymmetry
  is deliberate.

IMPLEMENTATIONS:
  - template/store/memory.go: In-memory for testing
  - store/sqlite/sqlite.go:   Production SQLite (INSERT OR IGNORE)

SEE ALSO:
  - renderer.go: The only consumer of GetVersion
  - settings.go: The payload types
*/
package template

import (
	"context"
	"errors"
	"fmt"

	"github.com/weevi/discipline-engine/discipline"
)

// =============================================================================
// ERRORS
// =============================================================================

var (
	// ErrVersionNotFound is returned when an (organization, version) pair
	// has no stored settings payload.
	ErrVersionNotFound = errors.New("template version not found")

	// ErrNoCurrentVersion is returned when an organization has no active
	// version pointer yet.
	ErrNoCurrentVersion = errors.New("no current template version")

	// ErrInvalidSettings is returned when a settings payload fails boundary
	// validation.
	ErrInvalidSettings = errors.New("invalid template settings")
)

// VersionNotFoundError identifies exactly which frozen version is missing,
// so the caller can distinguish "cannot regenerate this specific historical
// document" from generic failure.
type VersionNotFoundError struct {
	OrganizationID discipline.OrganizationID
	Version        string
}

func (e *VersionNotFoundError) Error() string {
	return fmt.Sprintf("template version %q not found for organization %q", e.Version, e.OrganizationID)
}

func (e *VersionNotFoundError) Unwrap() error {
	return ErrVersionNotFound
}

// =============================================================================
// VERSION STORE
// =============================================================================

// VersionStore persists frozen template versions per organization.
type VersionStore interface {
	// SaveVersion stores the settings payload for (orgID, version).
	// Set-if-absent: a no-op (not an error) when the pair already exists.
	SaveVersion(ctx context.Context, orgID discipline.OrganizationID, version string, settings Settings, meta VersionMeta) error

	// GetVersion returns the frozen record for (orgID, version), or an
	// error wrapping ErrVersionNotFound.
	GetVersion(ctx context.Context, orgID discipline.OrganizationID, version string) (*VersionRecord, error)

	// CurrentVersion resolves the organization's active version pointer and
	// fetches that version's record. Used only for NEW warnings, never for
	// regenerating existing ones. Returns ErrNoCurrentVersion when the
	// pointer is unset.
	CurrentVersion(ctx context.Context, orgID discipline.OrganizationID) (*VersionRecord, error)

	// SetCurrentVersion moves the active pointer. The target version must
	// already be stored.
	SetCurrentVersion(ctx context.Context, orgID discipline.OrganizationID, version string) error

	// ListVersions returns all stored versions for the organization,
	// ordered by activation time ascending.
	ListVersions(ctx context.Context, orgID discipline.OrganizationID) ([]VersionRecord, error)
}

// =============================================================================
// ENSURE-EXISTS - Warning-creation-time convenience
// =============================================================================

// EnsureVersionExists guarantees a version row exists for the given settings
// before a warning references it, and points the organization's current
// pointer at it when none is set. Idempotent: both underlying writes
// tolerate replays, so concurrent warning creation is safe to race.
// Returns the version string the warning should record.
func EnsureVersionExists(ctx context.Context, store VersionStore, orgID discipline.OrganizationID, settings Settings, userID string) (string, error) {
	if err := settings.Validate(); err != nil {
		return "", err
	}
	meta := VersionMeta{
		ActivatedBy: userID,
		Reason:      "auto-created at warning issue time",
	}
	if current, err := store.CurrentVersion(ctx, orgID); err == nil {
		if current.Version == settings.Version {
			return settings.Version, nil
		}
		meta.PreviousVersion = current.Version
	} else if !errors.Is(err, ErrNoCurrentVersion) {
		return "", err
	}

	if err := store.SaveVersion(ctx, orgID, settings.Version, settings, meta); err != nil {
		return "", err
	}
	if err := store.SetCurrentVersion(ctx, orgID, settings.Version); err != nil {
		return "", err
	}
	return settings.Version, nil
}
