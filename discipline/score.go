/*
score.go - Severity-weighted disciplinary score

PURPOSE:
  Computes the dashboard summary number for an employee: each active warning
  contributes a weight determined by its category's severity. Fractional
  weights (minor offenses count as half a point) are summed with
  decimal.Decimal so repeated halves never drift the way float64 sums can.

WEIGHTS:
  minor             0.5
  serious           1.5
  gross misconduct  5
  unknown category  0.5 (treated as minor; corrupt data must not inflate
                    an employee's record)

SEE ALSO:
  - engine.go: The score never influences escalation-level selection;
               it is display-only context for dashboards.
*/
package discipline

import (
	"github.com/shopspring/decimal"
)

var severityWeights = map[Severity]decimal.Decimal{
	SeverityMinor:           decimal.NewFromFloat(0.5),
	SeveritySerious:         decimal.NewFromFloat(1.5),
	SeverityGrossMisconduct: decimal.NewFromInt(5),
}

// Score summarizes an employee's active disciplinary standing.
type Score struct {
	EmployeeID     EmployeeID
	ActiveWarnings int
	ByCategory     map[CategoryID]int
	Total          decimal.Decimal
}

// DisciplinaryScore computes the severity-weighted score over the given
// active warnings. categories maps category id to its reference data;
// warnings whose category is absent weigh in as minor.
func DisciplinaryScore(employeeID EmployeeID, warnings []Warning, categories map[CategoryID]WarningCategory) Score {
	score := Score{
		EmployeeID: employeeID,
		ByCategory: make(map[CategoryID]int),
		Total:      decimal.Zero,
	}
	for _, w := range warnings {
		if !w.Active {
			continue
		}
		score.ActiveWarnings++
		score.ByCategory[w.CategoryID]++

		weight := severityWeights[SeverityMinor]
		if cat, ok := categories[w.CategoryID]; ok {
			if sw, ok := severityWeights[cat.Severity]; ok {
				weight = sw
			}
		}
		score.Total = score.Total.Add(weight)
	}
	return score
}
