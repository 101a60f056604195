/*
handlers_test.go - End-to-end API tests

PURPOSE:
  Exercises the full HTTP stack (router, handlers, SQLite store, engine,
  renderer) through httptest against an in-memory database. These are the
  tests that catch wiring mistakes the unit tests cannot see.
*/
package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/weevi/discipline-engine/api"
	"github.com/weevi/discipline-engine/store/sqlite"
)

// =============================================================================
// TEST HARNESS
// =============================================================================

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	store, err := sqlite.New(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	handler := api.NewHandler(store, zap.NewNop())
	server := httptest.NewServer(api.NewRouter(handler))
	t.Cleanup(server.Close)
	return server
}

func doJSON(t *testing.T, method, url string, body any, out any) int {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode response: %v", err)
		}
	}
	return resp.StatusCode
}

// seedTenant creates an organization, an employee, a manager, and the
// default categories through the API.
func seedTenant(t *testing.T, base string) {
	t.Helper()
	if code := doJSON(t, "POST", base+"/api/organizations", api.OrganizationDTO{
		ID:   "org-1",
		Name: "Acme Logistics (Pty) Ltd",
	}, nil); code != http.StatusCreated {
		t.Fatalf("create organization: status %d", code)
	}
	for _, emp := range []api.EmployeeDTO{
		{ID: "emp-1", FirstName: "Jane", LastName: "Mokoena", Department: "Dispatch"},
		{ID: "mgr-1", FirstName: "Sipho", LastName: "Dlamini", Position: "Operations Manager"},
	} {
		if code := doJSON(t, "POST", base+"/api/organizations/org-1/employees", emp, nil); code != http.StatusCreated {
			t.Fatalf("create employee %s: status %d", emp.ID, code)
		}
	}
	if code := doJSON(t, "POST", base+"/api/organizations/org-1/categories/seed", nil, nil); code != http.StatusCreated {
		t.Fatalf("seed categories: status %d", code)
	}
}

// =============================================================================
// RECOMMENDATION FLOW
// =============================================================================

func TestAPI_RecommendationForCleanEmployee(t *testing.T) {
	server := newTestServer(t)
	seedTenant(t, server.URL)

	var rec api.RecommendationDTO
	code := doJSON(t, "GET",
		server.URL+"/api/organizations/org-1/employees/emp-1/recommendation?category=attendance_punctuality",
		nil, &rec)

	if code != http.StatusOK {
		t.Fatalf("status %d", code)
	}
	if rec.SuggestedLevel != "counselling" {
		t.Errorf("expected counselling, got %s", rec.SuggestedLevel)
	}
	if rec.IsEscalation {
		t.Error("clean employee must not escalate")
	}
	if rec.SuggestedLevelLabel != "Counselling" {
		t.Errorf("expected label Counselling, got %s", rec.SuggestedLevelLabel)
	}
}

func TestAPI_RecommendationUnknownCategoryFailsOpen(t *testing.T) {
	// The endpoint always answers 200 with a safe default.
	server := newTestServer(t)
	seedTenant(t, server.URL)

	var rec api.RecommendationDTO
	code := doJSON(t, "GET",
		server.URL+"/api/organizations/org-1/employees/emp-1/recommendation?category=xyz",
		nil, &rec)

	if code != http.StatusOK {
		t.Fatalf("status %d", code)
	}
	if rec.SuggestedLevel != "counselling" {
		t.Errorf("expected counselling fallback, got %s", rec.SuggestedLevel)
	}
	if rec.CategoryName != "General Misconduct" {
		t.Errorf("expected fallback category name, got %q", rec.CategoryName)
	}
}

// =============================================================================
// WARNING LIFECYCLE
// =============================================================================

func issueWarning(t *testing.T, base string, req api.IssueWarningRequest) api.WarningDTO {
	t.Helper()
	var dto api.WarningDTO
	if code := doJSON(t, "POST", base+"/api/warnings", req, &dto); code != http.StatusCreated {
		t.Fatalf("issue warning: status %d", code)
	}
	return dto
}

func TestAPI_IssueWarning_UsesRecommendationAndPinsTemplate(t *testing.T) {
	server := newTestServer(t)
	seedTenant(t, server.URL)

	w := issueWarning(t, server.URL, api.IssueWarningRequest{
		OrganizationID: "org-1",
		EmployeeID:     "emp-1",
		CategoryID:     "attendance_punctuality",
		Description:    "Arrived 45 minutes late without notification.",
		IssuedBy:       "mgr-1",
	})

	if w.Level != "counselling" {
		t.Errorf("expected recommended level counselling, got %s", w.Level)
	}
	if w.PDFTemplateVersion == "" {
		t.Error("warning must pin a template version at creation")
	}
	if !w.Active || w.DeliveryStatus != "pending" {
		t.Errorf("unexpected initial state: active=%v delivery=%s", w.Active, w.DeliveryStatus)
	}
	if w.ExpiryDate == "" {
		t.Error("expected an expiry date from the category's validity window")
	}
}

func TestAPI_IssueWarning_SecondWarningEscalates(t *testing.T) {
	server := newTestServer(t)
	seedTenant(t, server.URL)

	first := issueWarning(t, server.URL, api.IssueWarningRequest{
		OrganizationID: "org-1",
		EmployeeID:     "emp-1",
		CategoryID:     "attendance_punctuality",
		IssuedBy:       "mgr-1",
	})
	second := issueWarning(t, server.URL, api.IssueWarningRequest{
		OrganizationID: "org-1",
		EmployeeID:     "emp-1",
		CategoryID:     "attendance_punctuality",
		IssuedBy:       "mgr-1",
	})

	if first.Level != "counselling" || second.Level != "verbal" {
		t.Errorf("expected counselling then verbal, got %s then %s", first.Level, second.Level)
	}
}

func TestAPI_IssueWarning_OverrideIsAuditedAndPathChecked(t *testing.T) {
	server := newTestServer(t)
	seedTenant(t, server.URL)

	// A valid override to a later path step.
	w := issueWarning(t, server.URL, api.IssueWarningRequest{
		OrganizationID: "org-1",
		EmployeeID:     "emp-1",
		CategoryID:     "attendance_punctuality",
		Level:          "first_written",
		IssuedBy:       "mgr-1",
	})
	if w.Level != "first_written" {
		t.Errorf("expected overridden level, got %s", w.Level)
	}

	var audit []map[string]any
	if code := doJSON(t, "GET", server.URL+"/api/organizations/org-1/audit", nil, &audit); code != http.StatusOK {
		t.Fatalf("list audit: status %d", code)
	}
	var sawOverride bool
	for _, entry := range audit {
		if entry["Action"] == "level_overridden" {
			sawOverride = true
		}
	}
	if !sawOverride {
		t.Error("expected a level_overridden audit entry")
	}

	// An override off the category's path is rejected.
	code := doJSON(t, "POST", server.URL+"/api/warnings", api.IssueWarningRequest{
		OrganizationID: "org-1",
		EmployeeID:     "emp-1",
		CategoryID:     "attendance_punctuality",
		Level:          "suspension",
		IssuedBy:       "mgr-1",
	}, nil)
	if code != http.StatusBadRequest {
		t.Errorf("expected 400 for off-path override, got %d", code)
	}
}

func TestAPI_DeliveryAndDeactivation(t *testing.T) {
	server := newTestServer(t)
	seedTenant(t, server.URL)

	w := issueWarning(t, server.URL, api.IssueWarningRequest{
		OrganizationID: "org-1",
		EmployeeID:     "emp-1",
		CategoryID:     "attendance_punctuality",
		IssuedBy:       "mgr-1",
	})

	var updated api.WarningDTO
	code := doJSON(t, "POST", server.URL+"/api/warnings/"+w.ID+"/delivery",
		api.UpdateDeliveryRequest{Status: "acknowledged", ActorID: "hr-1"}, &updated)
	if code != http.StatusOK {
		t.Fatalf("update delivery: status %d", code)
	}
	if updated.DeliveryStatus != "acknowledged" {
		t.Errorf("expected acknowledged, got %s", updated.DeliveryStatus)
	}

	code = doJSON(t, "POST", server.URL+"/api/warnings/"+w.ID+"/deactivate", nil, &updated)
	if code != http.StatusOK {
		t.Fatalf("deactivate: status %d", code)
	}
	if updated.Active {
		t.Error("warning should be inactive")
	}

	// Record retention: the warning is still retrievable.
	var got api.WarningDTO
	if code := doJSON(t, "GET", server.URL+"/api/warnings/"+w.ID, nil, &got); code != http.StatusOK {
		t.Fatalf("get after deactivate: status %d", code)
	}
}

// =============================================================================
// DOCUMENT RENDERING
// =============================================================================

func TestAPI_WarningDocument_RendersPDF(t *testing.T) {
	server := newTestServer(t)
	seedTenant(t, server.URL)

	w := issueWarning(t, server.URL, api.IssueWarningRequest{
		OrganizationID: "org-1",
		EmployeeID:     "emp-1",
		CategoryID:     "attendance_punctuality",
		Description:    "Arrived 45 minutes late without notification.",
		IssuedBy:       "mgr-1",
	})

	resp, err := http.Get(server.URL + "/api/warnings/" + w.ID + "/document")
	if err != nil {
		t.Fatalf("get document: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("expected application/pdf, got %s", ct)
	}
	var head [4]byte
	if _, err := io.ReadFull(resp.Body, head[:]); err != nil {
		t.Fatalf("read body: %v", err)
	}
	if string(head[:]) != "%PDF" {
		t.Errorf("body does not start with %%PDF")
	}
}

// =============================================================================
// TEMPLATE VERSIONS
// =============================================================================

func TestAPI_ActivateTemplateVersion(t *testing.T) {
	server := newTestServer(t)
	seedTenant(t, server.URL)

	var created api.TemplateVersionDTO
	code := doJSON(t, "POST", server.URL+"/api/organizations/org-1/template-versions",
		map[string]any{
			"actor_id": "hr-1",
			"reason":   "rebrand",
			"settings": map[string]any{
				"version": "3.0.0",
				"sections": []map[string]any{
					{"id": "header", "title": "{{warning.levelLabel}}", "order": 1, "body": "{{organization.name}}"},
				},
			},
		}, &created)
	if code != http.StatusCreated {
		t.Fatalf("activate: status %d", code)
	}
	if created.Version != "3.0.0" {
		t.Errorf("expected version 3.0.0, got %s", created.Version)
	}

	var current api.TemplateVersionDTO
	if code := doJSON(t, "GET", server.URL+"/api/organizations/org-1/template-versions/current", nil, &current); code != http.StatusOK {
		t.Fatalf("current: status %d", code)
	}
	if current.Version != "3.0.0" {
		t.Errorf("expected current 3.0.0, got %s", current.Version)
	}
	if current.Settings == nil {
		t.Error("current version must include its settings payload")
	}
}

func TestAPI_TemplateRevisionDoesNotChangeOldDocuments(t *testing.T) {
	// GIVEN: A warning issued under the bootstrap template
	// WHEN: A new template version is activated afterwards
	// THEN: Regenerating the old warning still uses its frozen version

	server := newTestServer(t)
	seedTenant(t, server.URL)

	w := issueWarning(t, server.URL, api.IssueWarningRequest{
		OrganizationID: "org-1",
		EmployeeID:     "emp-1",
		CategoryID:     "attendance_punctuality",
		IssuedBy:       "mgr-1",
	})

	fetchPDF := func() []byte {
		resp, err := http.Get(server.URL + "/api/warnings/" + w.ID + "/document")
		if err != nil {
			t.Fatalf("get document: %v", err)
		}
		defer resp.Body.Close()
		var buf bytes.Buffer
		if _, err := buf.ReadFrom(resp.Body); err != nil {
			t.Fatalf("read body: %v", err)
		}
		return buf.Bytes()
	}

	before := fetchPDF()

	code := doJSON(t, "POST", server.URL+"/api/organizations/org-1/template-versions",
		map[string]any{
			"actor_id": "hr-1",
			"settings": map[string]any{
				"version": "9.0.0",
				"sections": []map[string]any{
					{"id": "header", "title": "NEW LOOK", "order": 1, "body": "totally different"},
				},
			},
		}, nil)
	if code != http.StatusCreated {
		t.Fatalf("activate: status %d", code)
	}

	after := fetchPDF()
	if !bytes.Equal(before, after) {
		t.Error("document changed after a template revision; the frozen version must win")
	}
}

// =============================================================================
// SUMMARY
// =============================================================================

func TestAPI_EmployeeSummary(t *testing.T) {
	server := newTestServer(t)
	seedTenant(t, server.URL)

	issueWarning(t, server.URL, api.IssueWarningRequest{
		OrganizationID: "org-1",
		EmployeeID:     "emp-1",
		CategoryID:     "attendance_punctuality",
		IssuedBy:       "mgr-1",
	})
	issueWarning(t, server.URL, api.IssueWarningRequest{
		OrganizationID: "org-1",
		EmployeeID:     "emp-1",
		CategoryID:     "safety_violations",
		IssuedBy:       "mgr-1",
	})

	var summary api.SummaryDTO
	code := doJSON(t, "GET", server.URL+"/api/organizations/org-1/employees/emp-1/summary", nil, &summary)
	if code != http.StatusOK {
		t.Fatalf("summary: status %d", code)
	}
	if summary.ActiveWarnings != 2 {
		t.Errorf("expected 2 active warnings, got %d", summary.ActiveWarnings)
	}
	// One minor (0.5) plus one serious (1.5).
	if summary.Score != "2" {
		t.Errorf("expected score 2, got %s", summary.Score)
	}
}

// =============================================================================
// VALIDATION ERRORS
// =============================================================================

func TestAPI_IssueWarning_MissingFieldsRejected(t *testing.T) {
	server := newTestServer(t)
	seedTenant(t, server.URL)

	var errResp map[string]string
	code := doJSON(t, "POST", server.URL+"/api/warnings", api.IssueWarningRequest{
		OrganizationID: "org-1",
	}, &errResp)
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
	if !strings.Contains(errResp["error"], "required") {
		t.Errorf("unexpected error body: %v", errResp)
	}
}

func TestAPI_GetWarning_NotFound(t *testing.T) {
	server := newTestServer(t)
	code := doJSON(t, "GET", server.URL+"/api/warnings/missing", nil, nil)
	if code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", code)
	}
}
