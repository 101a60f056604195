/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the internal domain model from the external API contract, allowing:
  - Field renaming without breaking clients
  - API-specific validation
  - Version evolution

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

VALIDATION:
  Validation is done in handlers, not in DTOs. DTOs are pure data carriers.

SEE ALSO:
  - handlers.go: Uses these types
  - factory/template.go: SettingsJSON type reused for template payloads
*/
package api

import (
	"time"

	"github.com/weevi/discipline-engine/discipline"
	"github.com/weevi/discipline-engine/factory"
	"github.com/weevi/discipline-engine/template"
)

// =============================================================================
// ORGANIZATION / EMPLOYEE TYPES
// =============================================================================

// OrganizationDTO represents an organization in API responses.
type OrganizationDTO struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	RegistrationNumber string `json:"registration_number,omitempty"`
	Address            string `json:"address,omitempty"`
	ContactEmail       string `json:"contact_email,omitempty"`
	ContactPhone       string `json:"contact_phone,omitempty"`
}

// EmployeeDTO represents an employee in API responses.
type EmployeeDTO struct {
	ID             string `json:"id"`
	OrganizationID string `json:"organization_id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	EmployeeNumber string `json:"employee_number,omitempty"`
	Email          string `json:"email,omitempty"`
	Department     string `json:"department,omitempty"`
	Position       string `json:"position,omitempty"`
	HireDate       string `json:"hire_date,omitempty"`
}

// =============================================================================
// CATEGORY TYPES
// =============================================================================

// CategoryDTO represents a warning category in API responses.
type CategoryDTO struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Severity       string   `json:"severity"`
	EscalationPath []string `json:"escalation_path"`
	ValidityMonths int      `json:"validity_months"`
	LegalCitations []string `json:"legal_citations,omitempty"`
	Examples       []string `json:"examples,omitempty"`
}

// =============================================================================
// RECOMMENDATION TYPES
// =============================================================================

// RecommendationDTO represents an escalation recommendation.
type RecommendationDTO struct {
	CategoryID           string   `json:"category_id"`
	CategoryName         string   `json:"category_name"`
	SuggestedLevel       string   `json:"suggested_level"`
	SuggestedLevelLabel  string   `json:"suggested_level_label"`
	IsEscalation         bool     `json:"is_escalation"`
	CategoryWarningCount int      `json:"category_warning_count"`
	WarningCount         int      `json:"warning_count"`
	Reason               string   `json:"reason"`
	LegalBasis           string   `json:"legal_basis"`
	EscalationPath       []string `json:"escalation_path"`
	NextExpiryDate       string   `json:"next_expiry_date"`
}

// =============================================================================
// WARNING TYPES
// =============================================================================

// IssueWarningRequest is the request to issue a new warning.
type IssueWarningRequest struct {
	OrganizationID string `json:"organization_id"`
	EmployeeID     string `json:"employee_id"`
	CategoryID     string `json:"category_id"`

	// Level overrides the engine's suggestion. Empty means "use the
	// recommendation".
	Level string `json:"level,omitempty"`

	IncidentDate string `json:"incident_date,omitempty"` // YYYY-MM-DD
	Description  string `json:"description"`
	IssuedBy     string `json:"issued_by"`
}

// WarningDTO represents a warning in API responses.
type WarningDTO struct {
	ID                 string `json:"id"`
	OrganizationID     string `json:"organization_id"`
	EmployeeID         string `json:"employee_id"`
	CategoryID         string `json:"category_id"`
	Level              string `json:"level"`
	LevelLabel         string `json:"level_label"`
	IncidentDate       string `json:"incident_date,omitempty"`
	IssueDate          string `json:"issue_date"`
	ExpiryDate         string `json:"expiry_date,omitempty"`
	Description        string `json:"description,omitempty"`
	IssuedBy           string `json:"issued_by"`
	Active             bool   `json:"active"`
	DeliveryStatus     string `json:"delivery_status"`
	PDFTemplateVersion string `json:"pdf_template_version"`
}

// UpdateDeliveryRequest updates a warning's delivery status.
type UpdateDeliveryRequest struct {
	Status  string `json:"status"`
	ActorID string `json:"actor_id"`
}

// =============================================================================
// SUMMARY TYPES
// =============================================================================

// SummaryDTO is the dashboard summary for one employee.
type SummaryDTO struct {
	EmployeeID     string         `json:"employee_id"`
	ActiveWarnings int            `json:"active_warnings"`
	ByCategory     map[string]int `json:"by_category"`
	Score          string         `json:"score"`
}

// =============================================================================
// TEMPLATE VERSION TYPES
// =============================================================================

// TemplateVersionDTO represents one frozen template version.
type TemplateVersionDTO struct {
	Version         string                `json:"version"`
	ActivatedAt     string                `json:"activated_at"`
	ActivatedBy     string                `json:"activated_by,omitempty"`
	Reason          string                `json:"reason,omitempty"`
	PreviousVersion string                `json:"previous_version,omitempty"`
	Settings        *factory.SettingsJSON `json:"settings,omitempty"`
}

// ActivateTemplateRequest activates a new template version for an
// organization.
type ActivateTemplateRequest struct {
	Settings factory.SettingsJSON `json:"settings"`
	ActorID  string               `json:"actor_id"`
	Reason   string               `json:"reason,omitempty"`
}

// =============================================================================
// DTO BUILDERS
// =============================================================================

func toOrganizationDTO(o discipline.Organization) OrganizationDTO {
	return OrganizationDTO{
		ID:                 string(o.ID),
		Name:               o.Name,
		RegistrationNumber: o.RegistrationNumber,
		Address:            o.Address,
		ContactEmail:       o.ContactEmail,
		ContactPhone:       o.ContactPhone,
	}
}

func toEmployeeDTO(e discipline.Employee) EmployeeDTO {
	dto := EmployeeDTO{
		ID:             string(e.ID),
		OrganizationID: string(e.OrganizationID),
		FirstName:      e.FirstName,
		LastName:       e.LastName,
		EmployeeNumber: e.EmployeeNumber,
		Email:          e.Email,
		Department:     e.Department,
		Position:       e.Position,
	}
	if !e.HireDate.IsZero() {
		dto.HireDate = e.HireDate.Format("2006-01-02")
	}
	return dto
}

func toCategoryDTO(c discipline.WarningCategory) CategoryDTO {
	return CategoryDTO{
		ID:             string(c.ID),
		Name:           c.Name,
		Severity:       string(c.Severity),
		EscalationPath: levelsToStrings(c.EscalationPath),
		ValidityMonths: c.ValidityMonths,
		LegalCitations: c.LegalCitations,
		Examples:       c.Examples,
	}
}

func toRecommendationDTO(r discipline.Recommendation) RecommendationDTO {
	return RecommendationDTO{
		CategoryID:           string(r.CategoryID),
		CategoryName:         r.CategoryName,
		SuggestedLevel:       string(r.SuggestedLevel),
		SuggestedLevelLabel:  discipline.LevelLabel(r.SuggestedLevel),
		IsEscalation:         r.IsEscalation,
		CategoryWarningCount: r.CategoryWarningCount,
		WarningCount:         r.WarningCount,
		Reason:               r.Reason,
		LegalBasis:           r.LegalBasis,
		EscalationPath:       levelsToStrings(r.EscalationPath),
		NextExpiryDate:       r.NextExpiryDate.Format("2006-01-02"),
	}
}

func toWarningDTO(w discipline.Warning) WarningDTO {
	dto := WarningDTO{
		ID:                 string(w.ID),
		OrganizationID:     string(w.OrganizationID),
		EmployeeID:         string(w.EmployeeID),
		CategoryID:         string(w.CategoryID),
		Level:              string(w.Level),
		LevelLabel:         discipline.LevelLabel(w.Level),
		IssueDate:          w.IssueDate.Format(time.RFC3339),
		Description:        w.Description,
		IssuedBy:           w.IssuedBy,
		Active:             w.Active,
		DeliveryStatus:     string(w.Delivery),
		PDFTemplateVersion: w.PDFTemplateVersion,
	}
	if !w.IncidentDate.IsZero() {
		dto.IncidentDate = w.IncidentDate.Format("2006-01-02")
	}
	if !w.ExpiryDate.IsZero() {
		dto.ExpiryDate = w.ExpiryDate.Format("2006-01-02")
	}
	return dto
}

func toTemplateVersionDTO(rec template.VersionRecord, includeSettings bool) TemplateVersionDTO {
	dto := TemplateVersionDTO{
		Version:         rec.Version,
		ActivatedAt:     rec.Meta.ActivatedAt.Format(time.RFC3339),
		ActivatedBy:     rec.Meta.ActivatedBy,
		Reason:          rec.Meta.Reason,
		PreviousVersion: rec.Meta.PreviousVersion,
	}
	if includeSettings {
		sj := factory.FromSettings(rec.Settings)
		dto.Settings = &sj
	}
	return dto
}

func levelsToStrings(levels []discipline.Level) []string {
	out := make([]string, len(levels))
	for i, l := range levels {
		out[i] = string(l)
	}
	return out
}
