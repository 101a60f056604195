/*
Package template provides the versioned warning-document renderer.

PURPOSE:
  Deterministically reproduces the legal document for a warning, using the
  exact template version recorded on that warning - regardless of how many
  times the organization's current template has since changed.

KEY CONCEPTS IN THIS FILE (settings.go):
  - Settings: one frozen snapshot of rendering configuration - the ordered
    section list plus styling
  - Section: static content with {{namespace.field}} placeholders
  - VersionRecord/VersionMeta: a (organization, version) row in the store

VERSIONING MODEL:
  Each (organizationId, version) pair is frozen-on-write. Any content change
  requires a new version string; the store refuses silent overwrites (see
  store.go). Warnings record the version STRING, not the payload - the
  payload is resolved at render time.

SEE ALSO:
  - store.go:       Version store contract and errors
  - placeholder.go: {{namespace.field}} substitution
  - renderer.go:    Section rendering pipeline
  - factory/template.go: JSON <-> Settings conversion
*/
package template

import (
	"fmt"
	"sort"
	"time"

	"github.com/weevi/discipline-engine/discipline"
)

// CurrentGeneratorVersion is the version string stamped on settings produced
// by DefaultSettings. Bump on ANY change to the default sections or styling.
const CurrentGeneratorVersion = "1.2.0"

// =============================================================================
// SETTINGS - Frozen rendering configuration
// =============================================================================

// Settings is the full rendering configuration for one template version.
type Settings struct {
	// Version is the semantic-version-like identifier of this payload.
	Version string

	// Sections render in Order (ties broken by ID for determinism).
	Sections []Section

	Styling Styling
}

// Section is one block of the document.
type Section struct {
	ID    string
	Title string
	Order int

	// Body is static content with {{namespace.field}} placeholders.
	Body string
}

// Styling holds document-level presentation settings.
type Styling struct {
	FontFamily string
	FontSize   float64
	TitleSize  float64
	LineHeight float64
	MarginMM   float64
}

// Validate checks the settings payload at the storage boundary.
func (s *Settings) Validate() error {
	if s.Version == "" {
		return fmt.Errorf("%w: missing version", ErrInvalidSettings)
	}
	if len(s.Sections) == 0 {
		return fmt.Errorf("%w: no sections", ErrInvalidSettings)
	}
	seen := make(map[string]bool, len(s.Sections))
	for _, sec := range s.Sections {
		if sec.ID == "" {
			return fmt.Errorf("%w: section with empty id", ErrInvalidSettings)
		}
		if seen[sec.ID] {
			return fmt.Errorf("%w: duplicate section id %q", ErrInvalidSettings, sec.ID)
		}
		seen[sec.ID] = true
	}
	return nil
}

// OrderedSections returns a copy of the sections sorted by Order, ties
// broken by ID. Rendering iterates this slice so output ordering is a pure
// function of the settings payload.
func (s *Settings) OrderedSections() []Section {
	sections := append([]Section(nil), s.Sections...)
	sort.Slice(sections, func(i, j int) bool {
		if sections[i].Order != sections[j].Order {
			return sections[i].Order < sections[j].Order
		}
		return sections[i].ID < sections[j].ID
	})
	return sections
}

// =============================================================================
// VERSION RECORDS
// =============================================================================

// VersionMeta is the audit metadata attached to a stored version.
type VersionMeta struct {
	ActivatedAt     time.Time
	ActivatedBy     string
	Reason          string
	PreviousVersion string
}

// VersionRecord is one frozen (organization, version) row.
type VersionRecord struct {
	OrganizationID discipline.OrganizationID
	Version        string
	Settings       Settings
	Meta           VersionMeta
}

// =============================================================================
// DEFAULT SETTINGS
// =============================================================================

// DefaultSettings returns the current generator's standard warning-document
// template. Used when an organization has no stored versions yet.
func DefaultSettings() Settings {
	return Settings{
		Version: CurrentGeneratorVersion,
		Styling: Styling{
			FontFamily: "Helvetica",
			FontSize:   10,
			TitleSize:  14,
			LineHeight: 5.5,
			MarginMM:   18,
		},
		Sections: []Section{
			{
				ID:    "header",
				Title: "{{warning.levelLabel}}",
				Order: 1,
				Body: "{{organization.name}} (Reg. {{organization.registrationNumber}})\n" +
					"{{organization.address}}\n" +
					"Issued on {{warning.issueDate}} under reference {{warning.id}}.",
			},
			{
				ID:    "employee",
				Title: "Employee Details",
				Order: 2,
				Body: "Name: {{employee.fullName}}\n" +
					"Employee number: {{employee.employeeNumber}}\n" +
					"Department: {{employee.department}}\n" +
					"Position: {{employee.position}}",
			},
			{
				ID:    "incident",
				Title: "Details of the Incident",
				Order: 3,
				Body: "Category: {{warning.category}}\n" +
					"Date of incident: {{warning.incidentDate}}\n\n" +
					"{{warning.description}}",
			},
			{
				ID:    "action",
				Title: "Disciplinary Action",
				Order: 4,
				Body: "This document constitutes a {{warning.levelLabel}} and remains " +
					"active until {{warning.expiryDate}}. Further misconduct of this " +
					"nature during the validity period may result in a {{warning.nextLevel}}.",
			},
			{
				ID:    "rights",
				Title: "Employee Rights",
				Order: 5,
				Body: "You have the right to respond to this warning in writing and to " +
					"appeal against it within five working days through the internal " +
					"appeal procedure. You may involve a fellow employee or a trade " +
					"union representative at any stage.",
			},
			{
				ID:    "signatures",
				Title: "Signatures",
				Order: 6,
				Body: "Issued by: {{manager.fullName}} ({{manager.position}})\n\n" +
					"Manager signature: _____________________   Date: ____________\n\n" +
					"Employee signature: ____________________   Date: ____________\n\n" +
					"A refusal to sign does not invalidate this warning; it will be " +
					"noted and witnessed.",
			},
		},
	}
}
