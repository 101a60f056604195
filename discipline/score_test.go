package discipline_test

import (
	"testing"

	"github.com/weevi/discipline-engine/discipline"
)

// =============================================================================
// DISCIPLINARY SCORE TESTS
// =============================================================================

func scoreCategories() map[discipline.CategoryID]discipline.WarningCategory {
	byID := make(map[discipline.CategoryID]discipline.WarningCategory)
	for _, cat := range discipline.DefaultCategories(testOrg) {
		byID[cat.ID] = cat
	}
	return byID
}

func TestDisciplinaryScore_WeightsBySeverity(t *testing.T) {
	// GIVEN: Two minor warnings (0.5 each), one serious (1.5), one gross (5)
	// WHEN: Computing the score
	// THEN: The total is exactly 7.5, with no float drift

	warnings := []discipline.Warning{
		testWarning("w1", "attendance_punctuality", discipline.LevelCounselling, 10),
		testWarning("w2", "attendance_punctuality", discipline.LevelVerbal, 5),
		testWarning("w3", "safety_violations", discipline.LevelVerbal, 3),
		testWarning("w4", "dishonesty_theft", discipline.LevelFinalWritten, 1),
	}

	score := discipline.DisciplinaryScore(testEmp, warnings, scoreCategories())

	if score.ActiveWarnings != 4 {
		t.Errorf("expected 4 active warnings, got %d", score.ActiveWarnings)
	}
	if got := score.Total.String(); got != "7.5" {
		t.Errorf("expected total 7.5, got %s", got)
	}
	if score.ByCategory["attendance_punctuality"] != 2 {
		t.Errorf("expected 2 attendance warnings, got %d", score.ByCategory["attendance_punctuality"])
	}
}

func TestDisciplinaryScore_HalvesSumExactly(t *testing.T) {
	// Three minor warnings sum to exactly 1.5, the kind of total float64
	// accumulation can drift on.
	warnings := []discipline.Warning{
		testWarning("w1", "attendance_punctuality", discipline.LevelCounselling, 30),
		testWarning("w2", "attendance_punctuality", discipline.LevelVerbal, 20),
		testWarning("w3", "attendance_punctuality", discipline.LevelFirstWritten, 10),
	}

	score := discipline.DisciplinaryScore(testEmp, warnings, scoreCategories())

	if got := score.Total.String(); got != "1.5" {
		t.Errorf("expected 1.5, got %s", got)
	}
}

func TestDisciplinaryScore_SkipsInactiveWarnings(t *testing.T) {
	inactive := testWarning("w1", "safety_violations", discipline.LevelVerbal, 10)
	inactive.Active = false
	warnings := []discipline.Warning{
		inactive,
		testWarning("w2", "safety_violations", discipline.LevelFirstWritten, 5),
	}

	score := discipline.DisciplinaryScore(testEmp, warnings, scoreCategories())

	if score.ActiveWarnings != 1 {
		t.Errorf("expected 1 active warning, got %d", score.ActiveWarnings)
	}
	if got := score.Total.String(); got != "1.5" {
		t.Errorf("expected 1.5, got %s", got)
	}
}

func TestDisciplinaryScore_UnknownCategoryWeighsAsMinor(t *testing.T) {
	// A warning in a removed category must not inflate the record.
	warnings := []discipline.Warning{
		testWarning("w1", "removed_category", discipline.LevelVerbal, 10),
	}

	score := discipline.DisciplinaryScore(testEmp, warnings, scoreCategories())

	if got := score.Total.String(); got != "0.5" {
		t.Errorf("expected minor weight 0.5, got %s", got)
	}
}
