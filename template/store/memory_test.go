package store_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/weevi/discipline-engine/template"
	"github.com/weevi/discipline-engine/template/store"
)

func settingsWithBody(version, body string) template.Settings {
	return template.Settings{
		Version: version,
		Sections: []template.Section{
			{ID: "header", Title: "Warning", Order: 1, Body: body},
		},
	}
}

// =============================================================================
// FROZEN-ON-WRITE TESTS
// =============================================================================

func TestSaveVersion_SecondWriteIsSilentNoOp(t *testing.T) {
	// GIVEN: Version 1.0.0 stored with payload A
	// WHEN: Writing payload B under the same version string
	// THEN: No error, and payload A survives untouched

	ctx := context.Background()
	mem := store.NewMemory()

	if err := mem.SaveVersion(ctx, "org-1", "1.0.0", settingsWithBody("1.0.0", "payload A"), template.VersionMeta{}); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := mem.SaveVersion(ctx, "org-1", "1.0.0", settingsWithBody("1.0.0", "payload B"), template.VersionMeta{}); err != nil {
		t.Fatalf("second save must be a no-op, got %v", err)
	}

	rec, err := mem.GetVersion(ctx, "org-1", "1.0.0")
	if err != nil {
		t.Fatalf("get version: %v", err)
	}
	if rec.Settings.Sections[0].Body != "payload A" {
		t.Errorf("frozen payload was overwritten: %q", rec.Settings.Sections[0].Body)
	}
}

func TestSaveVersion_ValidatesSettings(t *testing.T) {
	err := store.NewMemory().SaveVersion(context.Background(), "org-1", "1.0.0",
		template.Settings{Version: "1.0.0"}, template.VersionMeta{})
	if !errors.Is(err, template.ErrInvalidSettings) {
		t.Errorf("expected ErrInvalidSettings for empty sections, got %v", err)
	}
}

func TestGetVersion_MissReturnsTypedError(t *testing.T) {
	_, err := store.NewMemory().GetVersion(context.Background(), "org-1", "9.9.9")

	if !errors.Is(err, template.ErrVersionNotFound) {
		t.Fatalf("expected ErrVersionNotFound, got %v", err)
	}
	var vnf *template.VersionNotFoundError
	if !errors.As(err, &vnf) {
		t.Fatalf("expected *VersionNotFoundError, got %T", err)
	}
	if vnf.Version != "9.9.9" {
		t.Errorf("error names wrong version: %q", vnf.Version)
	}
}

// =============================================================================
// CURRENT-POINTER TESTS
// =============================================================================

func TestSetCurrentVersion_RequiresStoredVersion(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()

	err := mem.SetCurrentVersion(ctx, "org-1", "1.0.0")
	if !errors.Is(err, template.ErrVersionNotFound) {
		t.Errorf("expected ErrVersionNotFound for dangling pointer, got %v", err)
	}

	if _, err := mem.CurrentVersion(ctx, "org-1"); !errors.Is(err, template.ErrNoCurrentVersion) {
		t.Errorf("expected ErrNoCurrentVersion, got %v", err)
	}
}

func TestCurrentVersion_FollowsPointer(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()

	for _, v := range []string{"1.0.0", "2.0.0"} {
		if err := mem.SaveVersion(ctx, "org-1", v, settingsWithBody(v, "body"), template.VersionMeta{}); err != nil {
			t.Fatalf("save %s: %v", v, err)
		}
	}
	if err := mem.SetCurrentVersion(ctx, "org-1", "2.0.0"); err != nil {
		t.Fatalf("set current: %v", err)
	}

	rec, err := mem.CurrentVersion(ctx, "org-1")
	if err != nil {
		t.Fatalf("current version: %v", err)
	}
	if rec.Version != "2.0.0" {
		t.Errorf("expected 2.0.0, got %s", rec.Version)
	}
}

func TestListVersions_OrderedByActivation(t *testing.T) {
	ctx := context.Background()
	tick := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	mem := store.NewMemory().WithClock(func() time.Time {
		tick = tick.Add(time.Hour)
		return tick
	})

	for _, v := range []string{"1.0.0", "1.1.0", "2.0.0"} {
		if err := mem.SaveVersion(ctx, "org-1", v, settingsWithBody(v, "body"), template.VersionMeta{}); err != nil {
			t.Fatalf("save %s: %v", v, err)
		}
	}

	records, err := mem.ListVersions(ctx, "org-1")
	if err != nil {
		t.Fatalf("list versions: %v", err)
	}
	want := []string{"1.0.0", "1.1.0", "2.0.0"}
	for i, v := range want {
		if records[i].Version != v {
			t.Errorf("position %d: expected %s, got %s", i, v, records[i].Version)
		}
	}
}

// =============================================================================
// ENSURE-EXISTS TESTS
// =============================================================================

func TestEnsureVersionExists_BootstrapsAndSetsPointer(t *testing.T) {
	// GIVEN: An organization with no versions at all
	// WHEN: Ensuring the default settings exist
	// THEN: The version is stored and becomes current

	ctx := context.Background()
	mem := store.NewMemory()

	version, err := template.EnsureVersionExists(ctx, mem, "org-1", template.DefaultSettings(), "hr-1")
	if err != nil {
		t.Fatalf("ensure: %v", err)
	}
	if version != template.CurrentGeneratorVersion {
		t.Errorf("expected %s, got %s", template.CurrentGeneratorVersion, version)
	}

	rec, err := mem.CurrentVersion(ctx, "org-1")
	if err != nil {
		t.Fatalf("current version: %v", err)
	}
	if rec.Version != version {
		t.Errorf("pointer not set, current is %s", rec.Version)
	}
}

func TestEnsureVersionExists_IdempotentForSameVersion(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()

	settings := settingsWithBody("1.0.0", "payload A")
	if _, err := template.EnsureVersionExists(ctx, mem, "org-1", settings, "hr-1"); err != nil {
		t.Fatalf("first ensure: %v", err)
	}

	// Replaying with a mutated payload under the same version string must
	// neither error nor overwrite the frozen payload.
	mutated := settingsWithBody("1.0.0", "payload B")
	if _, err := template.EnsureVersionExists(ctx, mem, "org-1", mutated, "hr-1"); err != nil {
		t.Fatalf("replay ensure: %v", err)
	}

	rec, err := mem.GetVersion(ctx, "org-1", "1.0.0")
	if err != nil {
		t.Fatalf("get version: %v", err)
	}
	if rec.Settings.Sections[0].Body != "payload A" {
		t.Errorf("frozen payload was overwritten: %q", rec.Settings.Sections[0].Body)
	}
}

func TestEnsureVersionExists_RecordsPreviousVersion(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()

	if _, err := template.EnsureVersionExists(ctx, mem, "org-1", settingsWithBody("1.0.0", "a"), "hr-1"); err != nil {
		t.Fatalf("ensure 1.0.0: %v", err)
	}
	if _, err := template.EnsureVersionExists(ctx, mem, "org-1", settingsWithBody("2.0.0", "b"), "hr-1"); err != nil {
		t.Fatalf("ensure 2.0.0: %v", err)
	}

	rec, err := mem.GetVersion(ctx, "org-1", "2.0.0")
	if err != nil {
		t.Fatalf("get version: %v", err)
	}
	if rec.Meta.PreviousVersion != "1.0.0" {
		t.Errorf("expected previous version 1.0.0, got %q", rec.Meta.PreviousVersion)
	}
}
