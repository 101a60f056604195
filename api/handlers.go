/*
handlers.go - HTTP API handlers for the discipline engine

PURPOSE:
  Exposes the progressive-discipline engine via REST API. Handles HTTP
  request/response, JSON serialization, and delegates to domain logic.

ENDPOINTS:
  Organizations:
    GET    /api/organizations                    List organizations
    POST   /api/organizations                    Create organization
    GET    /api/organizations/{orgID}            Get organization

  Employees:
    GET    /api/organizations/{orgID}/employees             List employees
    POST   /api/organizations/{orgID}/employees             Create employee
    GET    /api/organizations/{orgID}/employees/{id}        Get employee
    GET    /api/organizations/{orgID}/employees/{id}/recommendation?category=
    GET    /api/organizations/{orgID}/employees/{id}/summary
    GET    /api/organizations/{orgID}/employees/{id}/warnings

  Categories:
    GET    /api/organizations/{orgID}/categories            List categories
    POST   /api/organizations/{orgID}/categories/seed       Seed defaults

  Warnings:
    POST   /api/warnings                         Issue warning
    GET    /api/warnings/{id}                    Get warning
    GET    /api/warnings/{id}/document           Regenerate PDF document
    POST   /api/warnings/{id}/delivery           Update delivery status
    POST   /api/warnings/{id}/deactivate         Mark inactive

  Template versions:
    GET    /api/organizations/{orgID}/template-versions          List
    GET    /api/organizations/{orgID}/template-versions/current  Current
    POST   /api/organizations/{orgID}/template-versions          Activate new

  Audit:
    GET    /api/organizations/{orgID}/audit      Audit trail

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Validation errors, invalid input
  - 404: Resource not found
  - 409: Conflict (duplicate warning id)
  - 422: Template version not found (legal document cannot be regenerated)
  - 500: Internal errors
  The 422 case carries code "template_version_not_found" so the UI can
  distinguish "cannot regenerate this specific historical document" from
  generic failure, per the fail-closed renderer contract.

SECURITY NOTE:
  Currently NO authentication or authorization. All endpoints are public.
  Role checks (HR, manager, super-admin) happen upstream of this service.

SEE ALSO:
  - dto.go:    Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/weevi/discipline-engine/discipline"
	"github.com/weevi/discipline-engine/store/sqlite"
	"github.com/weevi/discipline-engine/template"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store    *sqlite.Store
	Engine   *discipline.Engine
	Renderer *template.Renderer
	Log      *zap.Logger

	now func() time.Time
}

// NewHandler creates a new handler with the given store and logger.
func NewHandler(store *sqlite.Store, log *zap.Logger) *Handler {
	return &Handler{
		Store:    store,
		Engine:   discipline.NewEngine(store, store),
		Renderer: template.NewRenderer(store, store, store),
		Log:      log,
		now:      time.Now,
	}
}

// =============================================================================
// JSON HELPERS
// =============================================================================

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := errorResponse{Error: message}
	if errors.Is(err, template.ErrVersionNotFound) {
		resp.Code = "template_version_not_found"
	}
	if err != nil {
		h.Log.Warn("request failed",
			zap.Int("status", status),
			zap.String("message", message),
			zap.Error(err))
	}
	writeJSON(w, status, resp)
}

func (h *Handler) statusFor(err error) int {
	switch {
	case discipline.IsNotFound(err):
		return http.StatusNotFound
	case errors.Is(err, discipline.ErrDuplicateWarning):
		return http.StatusConflict
	case discipline.IsClientError(err):
		return http.StatusBadRequest
	case errors.Is(err, template.ErrVersionNotFound),
		errors.Is(err, template.ErrNoCurrentVersion):
		return http.StatusUnprocessableEntity
	case errors.Is(err, template.ErrInvalidSettings):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// =============================================================================
// ORGANIZATION HANDLERS
// =============================================================================

// ListOrganizations returns all organizations.
func (h *Handler) ListOrganizations(w http.ResponseWriter, r *http.Request) {
	orgs, err := h.Store.ListOrganizations(r.Context())
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "Failed to list organizations", err)
		return
	}
	dtos := make([]OrganizationDTO, len(orgs))
	for i, o := range orgs {
		dtos[i] = toOrganizationDTO(o)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// CreateOrganization creates an organization.
func (h *Handler) CreateOrganization(w http.ResponseWriter, r *http.Request) {
	var req OrganizationDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid JSON body", err)
		return
	}
	if req.ID == "" || req.Name == "" {
		h.writeError(w, http.StatusBadRequest, "id and name are required", nil)
		return
	}
	org := discipline.Organization{
		ID:                 discipline.OrganizationID(req.ID),
		Name:               req.Name,
		RegistrationNumber: req.RegistrationNumber,
		Address:            req.Address,
		ContactEmail:       req.ContactEmail,
		ContactPhone:       req.ContactPhone,
	}
	if err := h.Store.PutOrganization(r.Context(), org); err != nil {
		h.writeError(w, http.StatusInternalServerError, "Failed to create organization", err)
		return
	}
	writeJSON(w, http.StatusCreated, toOrganizationDTO(org))
}

// GetOrganization returns a single organization.
func (h *Handler) GetOrganization(w http.ResponseWriter, r *http.Request) {
	orgID := discipline.OrganizationID(chi.URLParam(r, "orgID"))
	org, err := h.Store.GetOrganization(r.Context(), orgID)
	if err != nil {
		h.writeError(w, h.statusFor(err), "Organization not found", err)
		return
	}
	writeJSON(w, http.StatusOK, toOrganizationDTO(*org))
}

// =============================================================================
// EMPLOYEE HANDLERS
// =============================================================================

// ListEmployees returns an organization's employees.
func (h *Handler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	orgID := discipline.OrganizationID(chi.URLParam(r, "orgID"))
	employees, err := h.Store.ListEmployees(r.Context(), orgID)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "Failed to list employees", err)
		return
	}
	dtos := make([]EmployeeDTO, len(employees))
	for i, e := range employees {
		dtos[i] = toEmployeeDTO(e)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// CreateEmployee creates an employee in an organization.
func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	orgID := discipline.OrganizationID(chi.URLParam(r, "orgID"))
	var req EmployeeDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid JSON body", err)
		return
	}
	if req.ID == "" || req.FirstName == "" || req.LastName == "" {
		h.writeError(w, http.StatusBadRequest, "id, first_name and last_name are required", nil)
		return
	}
	emp := discipline.Employee{
		ID:             discipline.EmployeeID(req.ID),
		OrganizationID: orgID,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		EmployeeNumber: req.EmployeeNumber,
		Email:          req.Email,
		Department:     req.Department,
		Position:       req.Position,
	}
	if req.HireDate != "" {
		if hire, err := time.Parse("2006-01-02", req.HireDate); err == nil {
			emp.HireDate = hire
		}
	}
	if err := h.Store.PutEmployee(r.Context(), emp); err != nil {
		h.writeError(w, http.StatusInternalServerError, "Failed to create employee", err)
		return
	}
	writeJSON(w, http.StatusCreated, toEmployeeDTO(emp))
}

// GetEmployee returns a single employee.
func (h *Handler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	orgID := discipline.OrganizationID(chi.URLParam(r, "orgID"))
	empID := discipline.EmployeeID(chi.URLParam(r, "employeeID"))
	emp, err := h.Store.GetEmployee(r.Context(), orgID, empID)
	if err != nil {
		h.writeError(w, h.statusFor(err), "Employee not found", err)
		return
	}
	writeJSON(w, http.StatusOK, toEmployeeDTO(*emp))
}

// =============================================================================
// CATEGORY HANDLERS
// =============================================================================

// ListCategories returns an organization's warning categories.
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	orgID := discipline.OrganizationID(chi.URLParam(r, "orgID"))
	categories, err := h.Store.ListCategories(r.Context(), orgID)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "Failed to list categories", err)
		return
	}
	dtos := make([]CategoryDTO, len(categories))
	for i, c := range categories {
		dtos[i] = toCategoryDTO(c)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// SeedCategories seeds the default taxonomy for an organization.
func (h *Handler) SeedCategories(w http.ResponseWriter, r *http.Request) {
	orgID := discipline.OrganizationID(chi.URLParam(r, "orgID"))
	ctx := r.Context()
	categories := discipline.DefaultCategories(orgID)
	for _, c := range categories {
		if err := h.Store.PutCategory(ctx, c); err != nil {
			h.writeError(w, h.statusFor(err), "Failed to seed categories", err)
			return
		}
	}
	h.audit(r, discipline.AuditEntry{
		OrganizationID: orgID,
		Action:         discipline.AuditCategoriesSeeded,
	})
	dtos := make([]CategoryDTO, len(categories))
	for i, c := range categories {
		dtos[i] = toCategoryDTO(c)
	}
	writeJSON(w, http.StatusCreated, dtos)
}

// =============================================================================
// RECOMMENDATION / SUMMARY HANDLERS
// =============================================================================

// GetRecommendation computes the escalation recommendation for an employee
// and category. Always returns 200 with SOME recommendation: the engine is
// fail-open by contract.
func (h *Handler) GetRecommendation(w http.ResponseWriter, r *http.Request) {
	orgID := discipline.OrganizationID(chi.URLParam(r, "orgID"))
	empID := discipline.EmployeeID(chi.URLParam(r, "employeeID"))
	categoryID := discipline.CategoryID(r.URL.Query().Get("category"))
	if categoryID == "" {
		h.writeError(w, http.StatusBadRequest, "category query parameter is required", nil)
		return
	}
	rec := h.Engine.Recommend(r.Context(), orgID, empID, categoryID)
	writeJSON(w, http.StatusOK, toRecommendationDTO(rec))
}

// GetSummary returns the severity-weighted disciplinary summary for an
// employee.
func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	orgID := discipline.OrganizationID(chi.URLParam(r, "orgID"))
	empID := discipline.EmployeeID(chi.URLParam(r, "employeeID"))
	ctx := r.Context()

	warnings, err := h.Store.ActiveWarnings(ctx, orgID, empID)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "Failed to load warnings", err)
		return
	}
	cats, err := h.Store.ListCategories(ctx, orgID)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "Failed to load categories", err)
		return
	}
	byID := make(map[discipline.CategoryID]discipline.WarningCategory, len(cats))
	for _, c := range cats {
		byID[c.ID] = c
	}

	score := discipline.DisciplinaryScore(empID, warnings, byID)
	dto := SummaryDTO{
		EmployeeID:     string(score.EmployeeID),
		ActiveWarnings: score.ActiveWarnings,
		ByCategory:     make(map[string]int, len(score.ByCategory)),
		Score:          score.Total.String(),
	}
	for id, n := range score.ByCategory {
		dto.ByCategory[string(id)] = n
	}
	writeJSON(w, http.StatusOK, dto)
}

// ListEmployeeWarnings returns all warnings for an employee.
func (h *Handler) ListEmployeeWarnings(w http.ResponseWriter, r *http.Request) {
	orgID := discipline.OrganizationID(chi.URLParam(r, "orgID"))
	empID := discipline.EmployeeID(chi.URLParam(r, "employeeID"))
	warnings, err := h.Store.ListWarnings(r.Context(), orgID, empID)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "Failed to list warnings", err)
		return
	}
	dtos := make([]WarningDTO, len(warnings))
	for i, warning := range warnings {
		dtos[i] = toWarningDTO(warning)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// =============================================================================
// WARNING HANDLERS
// =============================================================================

// IssueWarning creates a new warning. The wizard flow: compute the
// recommendation, apply HR's confirmation or override, pin the current
// template version, persist, audit.
func (h *Handler) IssueWarning(w http.ResponseWriter, r *http.Request) {
	var req IssueWarningRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid JSON body", err)
		return
	}
	if req.OrganizationID == "" || req.EmployeeID == "" || req.CategoryID == "" || req.IssuedBy == "" {
		h.writeError(w, http.StatusBadRequest,
			"organization_id, employee_id, category_id and issued_by are required", nil)
		return
	}

	ctx := r.Context()
	orgID := discipline.OrganizationID(req.OrganizationID)
	empID := discipline.EmployeeID(req.EmployeeID)
	categoryID := discipline.CategoryID(req.CategoryID)
	now := h.now()

	rec := h.Engine.Recommend(ctx, orgID, empID, categoryID)

	level := rec.SuggestedLevel
	overridden := false
	if req.Level != "" && discipline.Level(req.Level) != rec.SuggestedLevel {
		level = discipline.Level(req.Level)
		overridden = true
		// Overrides must stay on the category's path when the category is
		// resolvable; free-form levels would break history indexing.
		if cat, err := h.Store.GetCategory(ctx, orgID, categoryID); err == nil {
			if cat.LevelIndex(level) < 0 {
				h.writeError(w, http.StatusBadRequest, "Level is not on the category's escalation path",
					&discipline.LevelNotOnPathError{CategoryID: categoryID, Level: level})
				return
			}
		}
	}

	// Guarantee a frozen template version exists before the warning
	// references it. New warnings pin the organization's current version;
	// organizations without one get the default settings bootstrapped.
	version, err := h.resolveTemplateVersion(ctx, orgID, req.IssuedBy)
	if err != nil {
		h.writeError(w, h.statusFor(err), "Failed to resolve template version", err)
		return
	}

	warning := discipline.Warning{
		ID:                 discipline.WarningID(uuid.NewString()),
		OrganizationID:     orgID,
		EmployeeID:         empID,
		CategoryID:         categoryID,
		Level:              level,
		IssueDate:          now,
		ExpiryDate:         rec.NextExpiryDate,
		Description:        req.Description,
		IssuedBy:           req.IssuedBy,
		Active:             true,
		Delivery:           discipline.DeliveryPending,
		PDFTemplateVersion: version,
	}
	if req.IncidentDate != "" {
		if incident, err := time.Parse("2006-01-02", req.IncidentDate); err == nil {
			warning.IncidentDate = incident
		}
	}

	if err := h.Store.AppendWarning(ctx, warning); err != nil {
		h.writeError(w, h.statusFor(err), "Failed to issue warning", err)
		return
	}

	h.audit(r, discipline.AuditEntry{
		OrganizationID: orgID,
		ActorID:        req.IssuedBy,
		Action:         discipline.AuditWarningIssued,
		WarningID:      warning.ID,
		Detail:         string(level),
	})
	if overridden {
		h.audit(r, discipline.AuditEntry{
			OrganizationID: orgID,
			ActorID:        req.IssuedBy,
			Action:         discipline.AuditLevelOverridden,
			WarningID:      warning.ID,
			Detail:         string(rec.SuggestedLevel) + " -> " + string(level),
		})
	}

	h.Log.Info("warning issued",
		zap.String("warning_id", string(warning.ID)),
		zap.String("org_id", string(orgID)),
		zap.String("employee_id", string(empID)),
		zap.String("level", string(level)),
		zap.Bool("overridden", overridden))

	writeJSON(w, http.StatusCreated, toWarningDTO(warning))
}

// resolveTemplateVersion returns the version string a new warning should
// record, bootstrapping the default template for organizations without one.
func (h *Handler) resolveTemplateVersion(ctx context.Context, orgID discipline.OrganizationID, userID string) (string, error) {
	current, err := h.Store.CurrentVersion(ctx, orgID)
	if err == nil {
		return current.Version, nil
	}
	if !errors.Is(err, template.ErrNoCurrentVersion) {
		return "", err
	}
	return template.EnsureVersionExists(ctx, h.Store, orgID, template.DefaultSettings(), userID)
}

// GetWarning returns a single warning.
func (h *Handler) GetWarning(w http.ResponseWriter, r *http.Request) {
	id := discipline.WarningID(chi.URLParam(r, "id"))
	warning, err := h.Store.GetWarning(r.Context(), id)
	if err != nil {
		h.writeError(w, h.statusFor(err), "Warning not found", err)
		return
	}
	writeJSON(w, http.StatusOK, toWarningDTO(*warning))
}

// GetWarningDocument regenerates the warning's legal PDF document from its
// frozen template version. A missing version is a 422 with a distinct code:
// the document cannot be regenerated and the UI must say so, not fall back.
func (h *Handler) GetWarningDocument(w http.ResponseWriter, r *http.Request) {
	id := discipline.WarningID(chi.URLParam(r, "id"))
	pdf, err := h.Renderer.RenderWarningDocument(r.Context(), id)
	if err != nil {
		if errors.Is(err, template.ErrVersionNotFound) {
			h.writeError(w, http.StatusUnprocessableEntity,
				"The template version recorded on this warning is missing; the document cannot be regenerated", err)
			return
		}
		h.writeError(w, h.statusFor(err), "Failed to render document", err)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(pdf)
}

// UpdateDelivery updates a warning's delivery status.
func (h *Handler) UpdateDelivery(w http.ResponseWriter, r *http.Request) {
	id := discipline.WarningID(chi.URLParam(r, "id"))
	var req UpdateDeliveryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid JSON body", err)
		return
	}
	status := discipline.DeliveryStatus(req.Status)
	if !discipline.ValidDeliveryStatus(status) {
		h.writeError(w, http.StatusBadRequest, "Unknown delivery status", nil)
		return
	}
	ctx := r.Context()
	warning, err := h.Store.GetWarning(ctx, id)
	if err != nil {
		h.writeError(w, h.statusFor(err), "Warning not found", err)
		return
	}
	if err := h.Store.UpdateDelivery(ctx, id, status); err != nil {
		h.writeError(w, h.statusFor(err), "Failed to update delivery status", err)
		return
	}
	h.audit(r, discipline.AuditEntry{
		OrganizationID: warning.OrganizationID,
		ActorID:        req.ActorID,
		Action:         discipline.AuditDeliveryUpdated,
		WarningID:      id,
		Detail:         req.Status,
	})
	warning.Delivery = status
	writeJSON(w, http.StatusOK, toWarningDTO(*warning))
}

// DeactivateWarning marks a warning inactive. The record is retained.
func (h *Handler) DeactivateWarning(w http.ResponseWriter, r *http.Request) {
	id := discipline.WarningID(chi.URLParam(r, "id"))
	ctx := r.Context()
	warning, err := h.Store.GetWarning(ctx, id)
	if err != nil {
		h.writeError(w, h.statusFor(err), "Warning not found", err)
		return
	}
	if err := h.Store.Deactivate(ctx, id); err != nil {
		h.writeError(w, h.statusFor(err), "Failed to deactivate warning", err)
		return
	}
	h.audit(r, discipline.AuditEntry{
		OrganizationID: warning.OrganizationID,
		Action:         discipline.AuditWarningDeactivated,
		WarningID:      id,
	})
	warning.Active = false
	writeJSON(w, http.StatusOK, toWarningDTO(*warning))
}

// =============================================================================
// TEMPLATE VERSION HANDLERS
// =============================================================================

// ListTemplateVersions returns all frozen versions for an organization.
func (h *Handler) ListTemplateVersions(w http.ResponseWriter, r *http.Request) {
	orgID := discipline.OrganizationID(chi.URLParam(r, "orgID"))
	records, err := h.Store.ListVersions(r.Context(), orgID)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "Failed to list template versions", err)
		return
	}
	dtos := make([]TemplateVersionDTO, len(records))
	for i, rec := range records {
		dtos[i] = toTemplateVersionDTO(rec, false)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// GetCurrentTemplateVersion returns the organization's active template
// version with its settings.
func (h *Handler) GetCurrentTemplateVersion(w http.ResponseWriter, r *http.Request) {
	orgID := discipline.OrganizationID(chi.URLParam(r, "orgID"))
	rec, err := h.Store.CurrentVersion(r.Context(), orgID)
	if err != nil {
		h.writeError(w, h.statusFor(err), "No current template version", err)
		return
	}
	writeJSON(w, http.StatusOK, toTemplateVersionDTO(*rec, true))
}

// ActivateTemplateVersion stores a new frozen version and moves the
// organization's active pointer to it. Re-activating an already stored
// version string leaves its frozen payload untouched (set-if-absent).
func (h *Handler) ActivateTemplateVersion(w http.ResponseWriter, r *http.Request) {
	orgID := discipline.OrganizationID(chi.URLParam(r, "orgID"))
	var req ActivateTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid JSON body", err)
		return
	}
	settings := req.Settings.ToSettings()
	if err := settings.Validate(); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid template settings", err)
		return
	}

	ctx := r.Context()
	meta := template.VersionMeta{
		ActivatedAt: h.now(),
		ActivatedBy: req.ActorID,
		Reason:      req.Reason,
	}
	if current, err := h.Store.CurrentVersion(ctx, orgID); err == nil {
		meta.PreviousVersion = current.Version
	}
	if err := h.Store.SaveVersion(ctx, orgID, settings.Version, settings, meta); err != nil {
		h.writeError(w, h.statusFor(err), "Failed to save template version", err)
		return
	}
	if err := h.Store.SetCurrentVersion(ctx, orgID, settings.Version); err != nil {
		h.writeError(w, h.statusFor(err), "Failed to activate template version", err)
		return
	}
	h.audit(r, discipline.AuditEntry{
		OrganizationID: orgID,
		ActorID:        req.ActorID,
		Action:         discipline.AuditTemplateActivated,
		Detail:         settings.Version,
	})

	rec, err := h.Store.GetVersion(ctx, orgID, settings.Version)
	if err != nil {
		h.writeError(w, h.statusFor(err), "Failed to load stored version", err)
		return
	}
	writeJSON(w, http.StatusCreated, toTemplateVersionDTO(*rec, true))
}

// =============================================================================
// AUDIT HANDLERS
// =============================================================================

// ListAudit returns the organization's audit trail.
func (h *Handler) ListAudit(w http.ResponseWriter, r *http.Request) {
	orgID := discipline.OrganizationID(chi.URLParam(r, "orgID"))
	entries, err := h.Store.ListAudit(r.Context(), orgID)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "Failed to list audit entries", err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

// audit appends an audit entry; failures are logged, never surfaced to the
// client - the primary operation already succeeded.
func (h *Handler) audit(r *http.Request, entry discipline.AuditEntry) {
	entry.ID = uuid.NewString()
	entry.Timestamp = h.now()
	if err := h.Store.AppendAudit(r.Context(), entry); err != nil {
		h.Log.Warn("audit append failed",
			zap.String("action", string(entry.Action)),
			zap.Error(err))
	}
}
