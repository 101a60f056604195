/*
placeholder.go - Namespaced {{namespace.field}} substitution

PURPOSE:
  Resolves template placeholders against warning/employee/organization/
  manager data. Four namespaces: employee.*, warning.*, organization.*,
  manager.*.

MISS BEHAVIOR:
  An unresolvable placeholder renders as a bracketed literal of its own
  name, e.g. [employee.unknownField] - never an error and never silently
  dropped text. Legal reviewers must be able to SEE data gaps in the output
  instead of receiving a misleadingly complete-looking document. Missing
  party records (nil Employee etc.) degrade the same way: every field in
  that namespace misses visibly.

DATES:
  Render as "D MMM YYYY" (e.g. "3 Mar 2026"). Zero dates render as the
  empty string, never as a zero-time artifact.

SEE ALSO:
  - discipline/levels.go: Shared level-label table (warning.levelLabel,
    warning.nextLevel) - the category path is authoritative for nextLevel,
    the static table is the no-category fallback
  - renderer.go: Applies Substitute to each section
*/
package template

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/weevi/discipline-engine/discipline"
)

// DateLayout is the document date format: "D MMM YYYY".
const DateLayout = "2 Jan 2006"

var placeholderPattern = regexp.MustCompile(`\{\{\s*([A-Za-z]+)\.([A-Za-z0-9_]+)\s*\}\}`)

// Data carries the records a document draws from. Any field may be nil;
// the affected placeholders then render as bracketed literals.
type Data struct {
	Warning      *discipline.Warning
	Employee     *discipline.Employee
	Organization *discipline.Organization
	Manager      *discipline.Employee

	// Category enables path-authoritative nextLevel resolution and the
	// category display name. Optional.
	Category *discipline.WarningCategory
}

// Substitute replaces every {{namespace.field}} placeholder in body.
func Substitute(body string, data Data) string {
	return placeholderPattern.ReplaceAllStringFunc(body, func(match string) string {
		groups := placeholderPattern.FindStringSubmatch(match)
		ns, field := groups[1], groups[2]
		if value, ok := resolve(ns, field, data); ok {
			return value
		}
		return fmt.Sprintf("[%s.%s]", ns, field)
	})
}

// FormatDate renders t per DateLayout; zero times render empty.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

func resolve(ns, field string, data Data) (string, bool) {
	switch ns {
	case "employee":
		return resolveEmployee(field, data.Employee)
	case "manager":
		return resolveEmployee(field, data.Manager)
	case "warning":
		return resolveWarning(field, data)
	case "organization":
		return resolveOrganization(field, data.Organization)
	}
	return "", false
}

func resolveEmployee(field string, e *discipline.Employee) (string, bool) {
	if e == nil {
		return "", false
	}
	switch field {
	case "firstName":
		return e.FirstName, true
	case "lastName":
		return e.LastName, true
	case "fullName":
		return e.FullName(), true
	case "employeeNumber":
		return e.EmployeeNumber, true
	case "email":
		return e.Email, true
	case "department":
		return e.Department, true
	case "position":
		return e.Position, true
	case "hireDate":
		return FormatDate(e.HireDate), true
	}
	return "", false
}

func resolveWarning(field string, data Data) (string, bool) {
	w := data.Warning
	if w == nil {
		return "", false
	}
	switch field {
	case "id":
		return string(w.ID), true
	case "level":
		return string(w.Level), true
	case "levelLabel":
		return discipline.LevelLabel(w.Level), true
	case "nextLevel":
		// Category path is authoritative; the shared static table only
		// covers warnings whose category is no longer resolvable.
		var path []discipline.Level
		if data.Category != nil {
			path = data.Category.EscalationPath
		}
		return discipline.NextLabelOnPath(path, w.Level), true
	case "category":
		if data.Category != nil {
			return data.Category.Name, true
		}
		return string(w.CategoryID), true
	case "incidentDate":
		return FormatDate(w.IncidentDate), true
	case "issueDate":
		return FormatDate(w.IssueDate), true
	case "expiryDate":
		return FormatDate(w.ExpiryDate), true
	case "description":
		return w.Description, true
	case "deliveryStatus":
		return string(w.Delivery), true
	case "validityMonths":
		if data.Category != nil {
			return strconv.Itoa(data.Category.ValidityMonths), true
		}
		return "", false
	}
	return "", false
}

func resolveOrganization(field string, o *discipline.Organization) (string, bool) {
	if o == nil {
		return "", false
	}
	switch field {
	case "name":
		return o.Name, true
	case "registrationNumber":
		return o.RegistrationNumber, true
	case "address":
		return o.Address, true
	case "contactEmail":
		return o.ContactEmail, true
	case "contactPhone":
		return o.ContactPhone, true
	}
	return "", false
}
