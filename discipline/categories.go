/*
categories.go - Default seeded warning-category set

PURPOSE:
  Provides the ready-to-use progressive-discipline taxonomy seeded for each
  new organization. These are convenience constructors following typical
  South African labour-law practice (LRA Schedule 8, Code of Good Practice
  on Dismissal); organizations can replace them with their own taxonomy via
  the factory package.

CATEGORY DESIGN:
  Minor offenses start at counselling and walk the full path. Serious
  offenses skip counselling. Gross misconduct has a short path because a
  single proven incident can justify dismissal after a fair hearing.

CUSTOMIZATION:
  These are starting points. Real deployments often need:
  - Sector-specific categories (e.g. food-safety breaches)
  - Different validity periods per bargaining-council agreement
  - Additional legal citations

SEE ALSO:
  - factory/category.go: YAML-based category seeding
  - engine.go:           Consumes categories read-only
*/
package discipline

// FallbackCategoryName is the literal category name reported when a
// recommendation falls back because the requested category cannot be
// resolved.
const FallbackCategoryName = "General Misconduct"

// GenericLegalBasis is the catch-all citation used by fallback
// recommendations.
const GenericLegalBasis = "Labour Relations Act 66 of 1995, Schedule 8: Code of Good Practice on Dismissal"

// DefaultValidityMonths applies when a fallback recommendation must compute
// an expiry date without a resolvable category.
const DefaultValidityMonths = 6

// DefaultEscalationPath is the standard five-step progressive path for
// minor offenses, and the path reported by fallback recommendations.
var DefaultEscalationPath = []Level{
	LevelCounselling,
	LevelVerbal,
	LevelFirstWritten,
	LevelFinalWritten,
	LevelDismissal,
}

// seriousPath skips counselling: serious offenses warrant a formal first step.
var seriousPath = []Level{
	LevelVerbal,
	LevelFirstWritten,
	LevelFinalWritten,
	LevelDismissal,
}

// DefaultCategories returns the seed taxonomy for a new organization.
func DefaultCategories(orgID OrganizationID) []WarningCategory {
	return []WarningCategory{
		{
			ID:             "attendance_punctuality",
			OrganizationID: orgID,
			Name:           "Attendance & Punctuality",
			Severity:       SeverityMinor,
			EscalationPath: append([]Level(nil), DefaultEscalationPath...),
			ValidityMonths: 6,
			LegalCitations: []string{
				"LRA s188(1)(a): fair reason related to conduct",
				"Schedule 8, Item 3(2): progressive discipline for less serious infractions",
			},
			Examples: []string{
				"Late arrival without notification",
				"Unauthorised absence from the workplace",
				"Extended breaks beyond allocated time",
			},
		},
		{
			ID:             "performance",
			OrganizationID: orgID,
			Name:           "Poor Performance",
			Severity:       SeverityMinor,
			EscalationPath: []Level{
				LevelCounselling,
				LevelVerbal,
				LevelFirstWritten,
				LevelSecondWritten,
				LevelFinalWritten,
				LevelDismissal,
			},
			ValidityMonths: 6,
			LegalCitations: []string{
				"Schedule 8, Item 9: guidelines in cases of poor work performance",
			},
			Examples: []string{
				"Failure to meet agreed targets after guidance",
				"Repeated errors in routine work",
			},
		},
		{
			ID:             "safety_violations",
			OrganizationID: orgID,
			Name:           "Safety Violations",
			Severity:       SeveritySerious,
			EscalationPath: append([]Level(nil), seriousPath...),
			ValidityMonths: 12,
			LegalCitations: []string{
				"Occupational Health and Safety Act 85 of 1993, s14: duties of employees",
				"LRA s188(1)(a): fair reason related to conduct",
			},
			Examples: []string{
				"Failure to wear required protective equipment",
				"Bypassing machine safety guards",
			},
		},
		{
			ID:             "insubordination",
			OrganizationID: orgID,
			Name:           "Insubordination",
			Severity:       SeveritySerious,
			EscalationPath: append([]Level(nil), seriousPath...),
			ValidityMonths: 12,
			LegalCitations: []string{
				"Schedule 8, Item 3(4): gross insubordination may justify dismissal for a first offence",
			},
			Examples: []string{
				"Refusal to carry out a lawful and reasonable instruction",
				"Openly defying a direct instruction in front of colleagues",
			},
		},
		{
			ID:             "dishonesty_theft",
			OrganizationID: orgID,
			Name:           "Dishonesty & Theft",
			Severity:       SeverityGrossMisconduct,
			EscalationPath: []Level{
				LevelFinalWritten,
				LevelDismissal,
			},
			ValidityMonths: 12,
			LegalCitations: []string{
				"Schedule 8, Item 3(4): gross dishonesty may justify dismissal for a first offence",
			},
			Examples: []string{
				"Theft of company or colleague property",
				"Falsification of records or timesheets",
			},
		},
		{
			ID:             "general_misconduct",
			OrganizationID: orgID,
			Name:           FallbackCategoryName,
			Severity:       SeverityMinor,
			EscalationPath: append([]Level(nil), DefaultEscalationPath...),
			ValidityMonths: 6,
			LegalCitations: []string{GenericLegalBasis},
			Examples: []string{
				"Conduct not covered by a specific category",
			},
		},
	}
}
