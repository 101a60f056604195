package store_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/weevi/discipline-engine/discipline"
	"github.com/weevi/discipline-engine/discipline/store"
)

func memWarning(id string, daysAgo int) discipline.Warning {
	return discipline.Warning{
		ID:                 discipline.WarningID(id),
		OrganizationID:     "org-1",
		EmployeeID:         "emp-1",
		CategoryID:         "attendance_punctuality",
		Level:              discipline.LevelVerbal,
		IssueDate:          time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -daysAgo),
		IssuedBy:           "mgr-1",
		Active:             true,
		Delivery:           discipline.DeliveryPending,
		PDFTemplateVersion: "1.0.0",
	}
}

func TestMemory_AppendWarning_RejectsDuplicateID(t *testing.T) {
	// GIVEN: A stored warning
	// WHEN: Appending another warning with the same id
	// THEN: ErrDuplicateWarning; the original stays untouched

	ctx := context.Background()
	mem := store.NewMemory()
	if err := mem.AppendWarning(ctx, memWarning("w1", 10)); err != nil {
		t.Fatalf("first append: %v", err)
	}

	err := mem.AppendWarning(ctx, memWarning("w1", 0))
	if !errors.Is(err, discipline.ErrDuplicateWarning) {
		t.Errorf("expected ErrDuplicateWarning, got %v", err)
	}
}

func TestMemory_AppendWarning_ValidatesAtBoundary(t *testing.T) {
	w := memWarning("w1", 0)
	w.Level = ""
	err := store.NewMemory().AppendWarning(context.Background(), w)
	if !errors.Is(err, discipline.ErrInvalidWarning) {
		t.Errorf("expected ErrInvalidWarning, got %v", err)
	}
}

func TestMemory_ActiveWarnings_ExcludesDeactivated(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	for _, id := range []string{"w1", "w2", "w3"} {
		if err := mem.AppendWarning(ctx, memWarning(id, 0)); err != nil {
			t.Fatalf("append %s: %v", id, err)
		}
	}
	if err := mem.Deactivate(ctx, "w2"); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	active, err := mem.ActiveWarnings(ctx, "org-1", "emp-1")
	if err != nil {
		t.Fatalf("active warnings: %v", err)
	}
	if len(active) != 2 {
		t.Errorf("expected 2 active, got %d", len(active))
	}

	all, err := mem.ListWarnings(ctx, "org-1", "emp-1")
	if err != nil {
		t.Fatalf("list warnings: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("deactivated warning must remain listed, got %d", len(all))
	}
}

func TestMemory_ListWarnings_OrderedByIssueDate(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	for id, daysAgo := range map[string]int{"w1": 5, "w2": 50, "w3": 20} {
		if err := mem.AppendWarning(ctx, memWarning(id, daysAgo)); err != nil {
			t.Fatalf("append %s: %v", id, err)
		}
	}

	all, err := mem.ListWarnings(ctx, "org-1", "emp-1")
	if err != nil {
		t.Fatalf("list warnings: %v", err)
	}
	want := []discipline.WarningID{"w2", "w3", "w1"}
	for i, id := range want {
		if all[i].ID != id {
			t.Errorf("position %d: expected %s, got %s", i, id, all[i].ID)
		}
	}
}

func TestMemory_UpdateDelivery(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	if err := mem.AppendWarning(ctx, memWarning("w1", 0)); err != nil {
		t.Fatalf("append: %v", err)
	}

	if err := mem.UpdateDelivery(ctx, "w1", discipline.DeliveryAcknowledged); err != nil {
		t.Fatalf("update delivery: %v", err)
	}
	w, err := mem.GetWarning(ctx, "w1")
	if err != nil {
		t.Fatalf("get warning: %v", err)
	}
	if w.Delivery != discipline.DeliveryAcknowledged {
		t.Errorf("expected acknowledged, got %s", w.Delivery)
	}

	if err := mem.UpdateDelivery(ctx, "w1", "teleported"); !errors.Is(err, discipline.ErrInvalidWarning) {
		t.Errorf("expected ErrInvalidWarning for unknown status, got %v", err)
	}
	if err := mem.UpdateDelivery(ctx, "missing", discipline.DeliveryDelivered); !errors.Is(err, discipline.ErrWarningNotFound) {
		t.Errorf("expected ErrWarningNotFound, got %v", err)
	}
}

func TestMemory_NotFoundSentinels(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()

	if _, err := mem.GetWarning(ctx, "missing"); !errors.Is(err, discipline.ErrWarningNotFound) {
		t.Errorf("expected ErrWarningNotFound, got %v", err)
	}
	if _, err := mem.GetCategory(ctx, "org-1", "missing"); !errors.Is(err, discipline.ErrCategoryNotFound) {
		t.Errorf("expected ErrCategoryNotFound, got %v", err)
	}
	if _, err := mem.GetEmployee(ctx, "org-1", "missing"); !errors.Is(err, discipline.ErrEmployeeNotFound) {
		t.Errorf("expected ErrEmployeeNotFound, got %v", err)
	}
	if _, err := mem.GetOrganization(ctx, "missing"); !errors.Is(err, discipline.ErrOrganizationNotFound) {
		t.Errorf("expected ErrOrganizationNotFound, got %v", err)
	}
}

func TestMemory_AuditLog_FiltersByOrganization(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	entries := []discipline.AuditEntry{
		{ID: "a1", OrganizationID: "org-1", Action: discipline.AuditWarningIssued},
		{ID: "a2", OrganizationID: "org-2", Action: discipline.AuditWarningIssued},
		{ID: "a3", OrganizationID: "org-1", Action: discipline.AuditDeliveryUpdated},
	}
	for _, e := range entries {
		if err := mem.AppendAudit(ctx, e); err != nil {
			t.Fatalf("append audit: %v", err)
		}
	}

	got, err := mem.ListAudit(ctx, "org-1")
	if err != nil {
		t.Fatalf("list audit: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected 2 entries for org-1, got %d", len(got))
	}
}
