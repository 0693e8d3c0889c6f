package templates

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"clubmanager/services"
)

// ImportUploadContent renders the initial file upload form.
func ImportUploadContent() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<h1>Import Teams</h1>
<form method="post" action="/teams/import" enctype="multipart/form-data" class="form">
<label>Team list file (.csv or .xlsx)
<input type="file" name="file" accept=".csv,.xlsx" required>
</label>
<p class="muted">The first row must contain column headings. You will choose which columns map to which fields in the next step.
<a href="/teams/import/template">Download a blank template</a>.</p>
<div class="form-actions">
<button type="submit">Upload</button>
<a class="button secondary" href="/teams">Cancel</a>
</div>
</form>`)
		return err
	})
}

// ImportUploadPage renders the full upload page.
func ImportUploadPage() templ.Component {
	return Page("Import Teams", ImportUploadContent())
}

// ImportMappingData feeds the column mapping form.
type ImportMappingData struct {
	Session     *services.ImportSession
	SessionJSON string
	Error       string
}

// ImportMappingContent renders one select per logical field, each offering
// every header from the uploaded file. The serialized session rides along in
// a hidden field so the table survives the round trip.
func ImportMappingContent(data ImportMappingData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<h1>Map CSV Fields</h1>
<p class="muted">%s — %d rows</p>`,
			esc(data.Session.Table.FileName), len(data.Session.Table.Rows)); err != nil {
			return err
		}
		if data.Error != "" {
			if err := ErrorMessage(data.Error).Render(ctx, w); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `<form method="post" action="/teams/import/preview" class="form">`); err != nil {
			return err
		}

		for _, field := range services.ImportFields {
			label := services.FieldLabels[field]
			if field == services.FieldName {
				label += " *"
			}
			current := data.Session.Mapping[field]
			if _, err := fmt.Fprintf(w, `<label>%s<select name="map_%s">
<option value="">— not mapped —</option>`, esc(label), field); err != nil {
				return err
			}
			for _, header := range data.Session.Table.Headers {
				selected := ""
				if header == current && header != "" {
					selected = " selected"
				}
				if _, err := fmt.Fprintf(w, `<option value="%s"%s>%s</option>`,
					esc(header), selected, esc(header)); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, `</select></label>`); err != nil {
				return err
			}
		}

		_, err := fmt.Fprintf(w, `<input type="hidden" name="session_json" value="%s">
<div class="form-actions">
<button type="submit">Preview Import</button>
<a class="button secondary" href="/teams/import">Start Over</a>
</div>
</form>`, esc(data.SessionJSON))
		return err
	})
}

// ImportMappingPage renders the full mapping page.
func ImportMappingPage(data ImportMappingData) templ.Component {
	return Page("Map CSV Fields", ImportMappingContent(data))
}

// ImportPreviewData feeds the preview/edit screen.
type ImportPreviewData struct {
	Session     *services.ImportSession
	SessionJSON string
	Error       string
}

// ImportPreviewContent renders the bulk settings, one editable row per
// candidate, and the commit/back actions. Every candidate field is an input
// so row edits post back with the form.
func ImportPreviewContent(data ImportPreviewData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<h1>Teams to Import</h1>
<p class="muted">%d teams from %s</p>`,
			len(data.Session.Candidates), esc(data.Session.Table.FileName)); err != nil {
			return err
		}
		if data.Error != "" {
			if err := ErrorMessage(data.Error).Render(ctx, w); err != nil {
				return err
			}
		}

		if _, err := io.WriteString(w, `<form method="post" action="/teams/import/commit" class="form">
<fieldset>
<legend>Bulk Settings (apply to every team)</legend>`); err != nil {
			return err
		}

		if err := selectField(w, "age_group", "Age Group", data.Session.Defaults.AgeGroup, services.AgeGroups); err != nil {
			return err
		}
		if err := selectField(w, "role", "Contact Role", data.Session.Defaults.Role, services.ContactRoles); err != nil {
			return err
		}
		opponentChecked := ""
		if data.Session.Defaults.IsOpponent {
			opponentChecked = " checked"
		}
		if _, err := fmt.Fprintf(w, `<label class="checkbox"><input type="checkbox" name="is_opponent"%s> Opponent teams</label>
</fieldset>
<table class="preview-table">
<thead><tr><th>#</th><th>Team Name</th><th>Contact</th><th>Email</th><th>Phone</th></tr></thead>
<tbody>`, opponentChecked); err != nil {
			return err
		}

		for i, candidate := range data.Session.Candidates {
			if _, err := fmt.Fprintf(w, `<tr>
<td>%d</td>
<td><input name="row_%d_name" value="%s"></td>`, i+1, i, esc(candidate.Name)); err != nil {
				return err
			}
			if err := previewOptionalCell(w, fmt.Sprintf("row_%d_contact_name", i), candidate.ContactName); err != nil {
				return err
			}
			if err := previewOptionalCell(w, fmt.Sprintf("row_%d_contact_email", i), candidate.ContactEmail); err != nil {
				return err
			}
			if err := previewOptionalCell(w, fmt.Sprintf("row_%d_contact_phone", i), candidate.ContactPhone); err != nil {
				return err
			}
			if _, err := io.WriteString(w, `</tr>`); err != nil {
				return err
			}
		}

		_, err := fmt.Fprintf(w, `</tbody>
</table>
<input type="hidden" name="session_json" value="%s">
<div class="form-actions">
<button type="submit" formaction="/teams/import/back" formnovalidate class="secondary">Back to Mapping</button>
<button type="submit">Import Teams</button>
</div>
</form>`, esc(data.SessionJSON))
		return err
	})
}

// previewOptionalCell renders a contact cell. Unmapped fields (nil) render as
// a dash with no input; mapped-but-blank values render an empty input flagged
// as a data-quality warning.
func previewOptionalCell(w io.Writer, name string, value *string) error {
	if value == nil {
		_, err := io.WriteString(w, `<td class="muted">—</td>`)
		return err
	}
	class := ""
	if *value == "" {
		class = ` class="warn"`
	}
	_, err := fmt.Fprintf(w, `<td><input name="%s" value="%s"%s></td>`, name, esc(*value), class)
	return err
}

// ImportPreviewPage renders the full preview page.
func ImportPreviewPage(data ImportPreviewData) templ.Component {
	return Page("Preview Import", ImportPreviewContent(data))
}

// ImportResultData feeds the post-commit screen.
type ImportResultData struct {
	Report *services.ImportReport
}

// ReportJSON serializes the report for the error-report download form.
func (d ImportResultData) ReportJSON() string {
	b, err := json.Marshal(d.Report)
	if err != nil {
		return ""
	}
	return string(b)
}

// ImportResultContent summarizes a finished commit. The headline mirrors the
// toast: imported count only. Failed rows are listed below it when present.
func ImportResultContent(data ImportResultData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<h1>Import Complete</h1>
<p>%d teams imported successfully.</p>`, data.Report.Imported); err != nil {
			return err
		}

		if failed := data.Report.FailedResults(); len(failed) > 0 {
			if _, err := io.WriteString(w, `<h2>Skipped Rows</h2>
<table class="preview-table">
<thead><tr><th>Row</th><th>Team Name</th><th>Reason</th></tr></thead>
<tbody>`); err != nil {
				return err
			}
			for _, r := range failed {
				if _, err := fmt.Fprintf(w, `<tr><td>%d</td><td>%s</td><td>%s</td></tr>`,
					r.Index+2, esc(r.TeamName), esc(r.Err)); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(w, `</tbody></table>
<form method="post" action="/teams/import/errors">
<input type="hidden" name="report_json" value="%s">
<button type="submit" class="secondary">Download Error Report</button>
</form>`, esc(data.ReportJSON())); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, `<div class="form-actions">
<a class="button" href="/teams">Back to Teams</a>
</div>`)
		return err
	})
}

// ImportResultPage renders the full result page.
func ImportResultPage(data ImportResultData) templ.Component {
	return Page("Import Complete", ImportResultContent(data))
}
