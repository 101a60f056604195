/*
category.go - YAML category seed parsing

PURPOSE:
  Organizations that do not use the built-in taxonomy
  (discipline.DefaultCategories) supply their own offense categories in a
  YAML seed file loaded at server start or via the seed endpoint.

YAML SCHEMA:
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

VALIDATION:
  Every category is validated against the path invariant (non-empty, no
  repeats, terminates at dismissal) before being returned. One bad category
  rejects the whole file; partial seeds would leave the taxonomy in an
  inconsistent state.

SEE ALSO:
  - discipline/categories.go: Built-in taxonomy and invariants
  - cmd/server/main.go:       -seed flag
*/
package factory

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/weevi/discipline-engine/discipline"
)

// =============================================================================
// YAML SCHEMA TYPES
// =============================================================================

// CategorySeed is the YAML representation of an organization's taxonomy.
type CategorySeed struct {
	Organization string             `yaml:"organization"`
	Categories   []CategorySeedItem `yaml:"categories"`
}

// CategorySeedItem represents one category.
type CategorySeedItem struct {
	ID             string   `yaml:"id"`
	Name           string   `yaml:"name"`
	Severity       string   `yaml:"severity"`
	EscalationPath []string `yaml:"escalation_path"`
	ValidityMonths int      `yaml:"validity_months"`
	LegalCitations []string `yaml:"legal_citations"`
	Examples       []string `yaml:"examples"`
}

// =============================================================================
// CONVERSION
// =============================================================================

// ParseCategorySeed converts a YAML seed file into validated categories.
func ParseCategorySeed(raw []byte) (discipline.OrganizationID, []discipline.WarningCategory, error) {
	var seed CategorySeed
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return "", nil, fmt.Errorf("parse category seed yaml: %w", err)
	}
	if seed.Organization == "" {
		return "", nil, fmt.Errorf("category seed: missing organization")
	}

	orgID := discipline.OrganizationID(seed.Organization)
	categories := make([]discipline.WarningCategory, 0, len(seed.Categories))
	for _, item := range seed.Categories {
		cat := discipline.WarningCategory{
			ID:             discipline.CategoryID(item.ID),
			OrganizationID: orgID,
			Name:           item.Name,
			Severity:       discipline.Severity(item.Severity),
			ValidityMonths: item.ValidityMonths,
			LegalCitations: item.LegalCitations,
			Examples:       item.Examples,
		}
		for _, l := range item.EscalationPath {
			cat.EscalationPath = append(cat.EscalationPath, discipline.Level(l))
		}
		if err := cat.Validate(); err != nil {
			return "", nil, fmt.Errorf("category %q: %w", item.ID, err)
		}
		categories = append(categories, cat)
	}
	return orgID, categories, nil
}
