package factory_test

import (
	"errors"
	"testing"

	"github.com/weevi/discipline-engine/discipline"
	"github.com/weevi/discipline-engine/factory"
)

const validSeed = `
organization: org-1
categories:
  - id: attendance_punctuality
    name: Attendance & Punctuality
    severity: minor
    escalation_path: [counselling, verbal, first_written, final_written, dismissal]
    validity_months: 6
    legal_citations:
      - "LRA s188(1)(a): fair reason related to conduct"
    examples:
      - Late arrival without notification
  - id: dishonesty_theft
    name: Dishonesty & Theft
    severity: gross_misconduct
    escalation_path: [final_written, dismissal]
    validity_months: 12
`

func TestParseCategorySeed_ValidFile(t *testing.T) {
	orgID, categories, err := factory.ParseCategorySeed([]byte(validSeed))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if orgID != "org-1" {
		t.Errorf("expected org-1, got %s", orgID)
	}
	if len(categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(categories))
	}

	attendance := categories[0]
	if attendance.OrganizationID != "org-1" {
		t.Errorf("organization not propagated: %s", attendance.OrganizationID)
	}
	if attendance.Severity != discipline.SeverityMinor {
		t.Errorf("expected minor severity, got %s", attendance.Severity)
	}
	if len(attendance.EscalationPath) != 5 || attendance.EscalationPath[0] != discipline.LevelCounselling {
		t.Errorf("path not mapped: %v", attendance.EscalationPath)
	}
}

func TestParseCategorySeed_OneBadCategoryRejectsWholeFile(t *testing.T) {
	// GIVEN: A seed with one valid category and one whose path does not
	//        terminate at dismissal
	// THEN: The whole file is rejected; partial seeds would leave the
	//       taxonomy inconsistent

	seed := `
organization: org-1
categories:
  - id: good
    name: Good Category
    severity: minor
    escalation_path: [counselling, verbal, dismissal]
    validity_months: 6
  - id: bad
    name: Bad Category
    severity: minor
    escalation_path: [counselling, verbal]
    validity_months: 6
`
	_, _, err := factory.ParseCategorySeed([]byte(seed))
	if !errors.Is(err, discipline.ErrInvalidEscalationPath) {
		t.Errorf("expected ErrInvalidEscalationPath, got %v", err)
	}
}

func TestParseCategorySeed_RequiresOrganization(t *testing.T) {
	seed := `
categories:
  - id: attendance
    name: Attendance
    severity: minor
    escalation_path: [counselling, dismissal]
    validity_months: 6
`
	if _, _, err := factory.ParseCategorySeed([]byte(seed)); err == nil {
		t.Error("expected error for missing organization")
	}
}

func TestParseCategorySeed_RejectsMalformedYAML(t *testing.T) {
	if _, _, err := factory.ParseCategorySeed([]byte("organization: [")); err == nil {
		t.Error("expected error for malformed YAML")
	}
}
