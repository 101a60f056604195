/*
renderer.go - Versioned PDF rendering pipeline

PURPOSE:
  Produces the legal warning document as PDF bytes. Every render of the
  same warning must be byte-identical, today and in five years, no matter
  how the organization's live template has changed since the warning was
  issued.

PIPELINE (per warning):
  1. Load the warning; resolve its recorded pdfTemplateVersion string.
  2. Fetch exactly that version's settings from the version store. A miss
     is FATAL for this document: surfaced as VersionNotFoundError, never a
     fallback to the current template.
  3. Load employee / organization / issuer / category records. Lookup
     failures here are NOT fatal - the affected placeholders degrade to
     visible bracketed literals instead.
  4. Render sections in configured order; Substitute each title and body.

DETERMINISM:
  PDF metadata normally embeds wall-clock creation/modification dates,
  which would break byte-identical regeneration. Both are pinned to the
  warning's issue date (UTC). Everything else in the output is a pure
  function of (warning, parties, frozen settings).

SEE ALSO:
  - store.go:       Fail-closed version contract
  - placeholder.go: Substitution rules
  - settings.go:    Section ordering
*/
package template

import (
	"bytes"
	"context"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/weevi/discipline-engine/discipline"
)

// =============================================================================
// COLLABORATOR INTERFACES
// =============================================================================

// WarningSource loads warnings by id.
type WarningSource interface {
	GetWarning(ctx context.Context, id discipline.WarningID) (*discipline.Warning, error)
}

// PartySource loads the records the placeholder namespaces draw from.
type PartySource interface {
	GetEmployee(ctx context.Context, orgID discipline.OrganizationID, id discipline.EmployeeID) (*discipline.Employee, error)
	GetOrganization(ctx context.Context, id discipline.OrganizationID) (*discipline.Organization, error)
	GetCategory(ctx context.Context, orgID discipline.OrganizationID, id discipline.CategoryID) (*discipline.WarningCategory, error)
}

// =============================================================================
// RENDERER
// =============================================================================

// Renderer regenerates warning documents from frozen template versions.
// Stateless; safe for concurrent use.
type Renderer struct {
	warnings WarningSource
	parties  PartySource
	versions VersionStore
}

// NewRenderer creates a renderer over the given collaborators.
func NewRenderer(warnings WarningSource, parties PartySource, versions VersionStore) *Renderer {
	return &Renderer{warnings: warnings, parties: parties, versions: versions}
}

// RenderWarningDocument produces the PDF bytes for a warning. The only
// generation-blocking failures are an unknown warning id and a missing
// frozen template version; everything else degrades to visible placeholder
// text in the output.
func (r *Renderer) RenderWarningDocument(ctx context.Context, warningID discipline.WarningID) ([]byte, error) {
	warning, err := r.warnings.GetWarning(ctx, warningID)
	if err != nil {
		return nil, fmt.Errorf("load warning %s: %w", warningID, err)
	}

	// Frozen settings only. Never the organization's live template.
	record, err := r.versions.GetVersion(ctx, warning.OrganizationID, warning.PDFTemplateVersion)
	if err != nil {
		return nil, err
	}

	data := r.loadParties(ctx, warning)
	return renderPDF(record.Settings, data)
}

// loadParties gathers placeholder data, absorbing lookup failures: a
// missing party record surfaces as bracketed literals in the document, not
// as a rendering error.
func (r *Renderer) loadParties(ctx context.Context, warning *discipline.Warning) Data {
	data := Data{Warning: warning}

	if emp, err := r.parties.GetEmployee(ctx, warning.OrganizationID, warning.EmployeeID); err == nil {
		data.Employee = emp
	}
	if org, err := r.parties.GetOrganization(ctx, warning.OrganizationID); err == nil {
		data.Organization = org
	}
	if mgr, err := r.parties.GetEmployee(ctx, warning.OrganizationID, discipline.EmployeeID(warning.IssuedBy)); err == nil {
		data.Manager = mgr
	}
	if cat, err := r.parties.GetCategory(ctx, warning.OrganizationID, warning.CategoryID); err == nil {
		data.Category = cat
	}
	return data
}

// =============================================================================
// PDF LAYOUT
// =============================================================================

func renderPDF(settings Settings, data Data) ([]byte, error) {
	styling := settings.Styling
	if styling.FontFamily == "" {
		styling.FontFamily = "Helvetica"
	}
	if styling.FontSize == 0 {
		styling.FontSize = 10
	}
	if styling.TitleSize == 0 {
		styling.TitleSize = 14
	}
	if styling.LineHeight == 0 {
		styling.LineHeight = 5.5
	}
	if styling.MarginMM == 0 {
		styling.MarginMM = 18
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(styling.MarginMM, styling.MarginMM, styling.MarginMM)
	pdf.SetAutoPageBreak(true, styling.MarginMM)

	// Pin PDF metadata dates to the issue date so regeneration is
	// byte-identical. Wall-clock timestamps are the one nondeterministic
	// input fpdf would otherwise embed.
	stamp := data.Warning.IssueDate.UTC()
	pdf.SetCreationDate(stamp)
	pdf.SetModificationDate(stamp)
	pdf.SetTitle(discipline.LevelLabel(data.Warning.Level), false)

	pdf.AddPage()

	for i, section := range settings.OrderedSections() {
		title := Substitute(section.Title, data)
		body := Substitute(section.Body, data)

		if i == 0 {
			pdf.SetFont(styling.FontFamily, "B", styling.TitleSize)
			pdf.CellFormat(0, styling.LineHeight+3, title, "", 1, "C", false, 0, "")
		} else {
			pdf.SetFont(styling.FontFamily, "B", styling.FontSize+1)
			pdf.CellFormat(0, styling.LineHeight+1, title, "", 1, "L", false, 0, "")
		}
		pdf.SetFont(styling.FontFamily, "", styling.FontSize)
		pdf.MultiCell(0, styling.LineHeight, body, "", "L", false)
		pdf.Ln(styling.LineHeight / 2)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}
