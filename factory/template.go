/*
Package factory provides config-file to Go conversion for template settings
and category seeds.

PURPOSE:
  Converts JSON template-settings definitions into template.Settings
  objects, and YAML category seed files into discipline.WarningCategory
  records. This enables configuration without code changes - an admin can
  revise the document template or the offense taxonomy in a config file,
  and the factory creates the proper Go structs.

WHY JSON FOR TEMPLATES?
  - Settings payloads are stored verbatim in the version store, so the
    wire format and the frozen format are the same bytes
  - Easy integration with an admin UI
  - Version control for template revisions

JSON SCHEMA:
  {
    "version": "1.2.0",
    "styling": {"font_family": "Helvetica", "font_size": 10},
    "sections": [
      {"id": "header", "title": "{{warning.levelLabel}}", "order": 1,
       "body": "{{organization.name}}..."}
    ]
  }

USAGE:
  settings, err := factory.ParseSettings(jsonBytes)
  ...
  version, err := template.EnsureVersionExists(ctx, store, orgID, settings, userID)

SEE ALSO:
  - template/settings.go: Target types and validation
  - category.go:          YAML category seeds
*/
package factory

import (
	"encoding/json"
	"fmt"

	"github.com/weevi/discipline-engine/template"
)

// =============================================================================
// JSON SCHEMA TYPES
// =============================================================================

// SettingsJSON is the JSON representation of a template settings payload.
type SettingsJSON struct {
	Version  string        `json:"version"`
	Styling  *StylingJSON  `json:"styling,omitempty"`
	Sections []SectionJSON `json:"sections"`
}

// SectionJSON represents one document section.
type SectionJSON struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Order int    `json:"order"`
	Body  string `json:"body"`
}

// StylingJSON represents document-level presentation settings.
type StylingJSON struct {
	FontFamily string  `json:"font_family,omitempty"`
	FontSize   float64 `json:"font_size,omitempty"`
	TitleSize  float64 `json:"title_size,omitempty"`
	LineHeight float64 `json:"line_height,omitempty"`
	MarginMM   float64 `json:"margin_mm,omitempty"`
}

// =============================================================================
// CONVERSION
// =============================================================================

// ParseSettings converts a JSON settings payload into template.Settings,
// applying validation.
func ParseSettings(raw []byte) (template.Settings, error) {
	var sj SettingsJSON
	if err := json.Unmarshal(raw, &sj); err != nil {
		return template.Settings{}, fmt.Errorf("parse settings json: %w", err)
	}
	settings := sj.ToSettings()
	if err := settings.Validate(); err != nil {
		return template.Settings{}, err
	}
	return settings, nil
}

// ToSettings maps the JSON schema onto the domain type.
func (sj SettingsJSON) ToSettings() template.Settings {
	settings := template.Settings{Version: sj.Version}
	if sj.Styling != nil {
		settings.Styling = template.Styling{
			FontFamily: sj.Styling.FontFamily,
			FontSize:   sj.Styling.FontSize,
			TitleSize:  sj.Styling.TitleSize,
			LineHeight: sj.Styling.LineHeight,
			MarginMM:   sj.Styling.MarginMM,
		}
	}
	for _, sec := range sj.Sections {
		settings.Sections = append(settings.Sections, template.Section{
			ID:    sec.ID,
			Title: sec.Title,
			Order: sec.Order,
			Body:  sec.Body,
		})
	}
	return settings
}

// FromSettings converts a domain settings payload back to the JSON schema,
// e.g. for API responses.
func FromSettings(settings template.Settings) SettingsJSON {
	sj := SettingsJSON{
		Version: settings.Version,
		Styling: &StylingJSON{
			FontFamily: settings.Styling.FontFamily,
			FontSize:   settings.Styling.FontSize,
			TitleSize:  settings.Styling.TitleSize,
			LineHeight: settings.Styling.LineHeight,
			MarginMM:   settings.Styling.MarginMM,
		},
	}
	for _, sec := range settings.Sections {
		sj.Sections = append(sj.Sections, SectionJSON{
			ID:    sec.ID,
			Title: sec.Title,
			Order: sec.Order,
			Body:  sec.Body,
		})
	}
	return sj
}
