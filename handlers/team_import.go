package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"clubmanager/services"
	"clubmanager/templates"
)

// HandleImportPage renders the file upload form.
// Route: GET /teams/import
func HandleImportPage(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.ImportUploadContent()
		} else {
			component = templates.ImportUploadPage()
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleImportUpload receives the uploaded file, parses it into a source
// table, and renders the field mapping screen.
// Route: POST /teams/import
func HandleImportUpload(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		// Parse multipart form (max 10MB)
		if err := e.Request.ParseMultipartForm(10 << 20); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "File too large or invalid form data")
		}

		file, header, err := e.Request.FormFile("file")
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Please select a file to upload")
		}
		defer file.Close()

		table, err := services.ParseUpload(file, header.Filename)
		if err != nil {
			log.Printf("team_import: parse upload %s: %v", header.Filename, err)
			return ErrorToast(e, http.StatusBadRequest, err.Error())
		}

		session := services.NewImportSession(table)
		return renderMapping(e, session, "")
	}
}

// HandleImportPreview applies the submitted field mapping and advances the
// session to the editable preview.
// Route: POST /teams/import/preview
func HandleImportPreview(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		session, err := sessionFromForm(e)
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, err.Error())
		}

		for _, field := range services.ImportFields {
			session.Mapping.Set(field, e.Request.FormValue("map_"+field))
		}

		if err := session.Proceed(); err != nil {
			return renderMapping(e, session, err.Error())
		}
		return renderPreview(e, session, "")
	}
}

// HandleImportBack returns from the preview to the mapping screen. Row edits
// made on the preview are discarded, the next preview is projected fresh from
// the source table.
// Route: POST /teams/import/back
func HandleImportBack(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		session, err := sessionFromForm(e)
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, err.Error())
		}

		if err := session.Back(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, err.Error())
		}
		return renderMapping(e, session, "")
	}
}

// HandleImportCommit applies bulk settings and row edits from the preview
// form, then writes the batch and renders the result screen.
// Route: POST /teams/import/commit
func HandleImportCommit(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		session, err := sessionFromForm(e)
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, err.Error())
		}

		if err := applyBulkSettings(e, session); err != nil {
			return renderPreview(e, session, err.Error())
		}
		applyRowEdits(e, session)

		if err := session.BeginCommit(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, err.Error())
		}

		initiatorID := ""
		if e.Auth != nil {
			initiatorID = e.Auth.Id
		}

		report, err := services.CommitTeamImport(
			app, initiatorID, session.Table.FileName,
			session.Mapping, session.Candidates, session.Defaults,
		)
		if err != nil {
			log.Printf("team_import_commit: %v", err)
			session.FailCommit()
			return ErrorToast(e, http.StatusInternalServerError, "Import could not be started. Please try again.")
		}
		session.FinishCommit()

		SetToast(e, "success", fmt.Sprintf("%d teams imported successfully", report.Imported))

		data := templates.ImportResultData{Report: report}
		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.ImportResultContent(data)
		} else {
			component = templates.ImportResultPage(data)
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleImportTemplate downloads the import template as an Excel file.
// Route: GET /teams/import/template
func HandleImportTemplate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		xlsxBytes, err := services.GenerateImportTemplate()
		if err != nil {
			log.Printf("team_import_template: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}
		return writeXLSX(e, "Team_Import_Template.xlsx", xlsxBytes)
	}
}

// HandleImportErrorReport downloads the skipped rows of a finished import as
// an Excel file. The report JSON is posted back from the result screen.
// Route: POST /teams/import/errors
func HandleImportErrorReport(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		var report services.ImportReport
		if err := json.Unmarshal([]byte(e.Request.FormValue("report_json")), &report); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid report data")
		}

		failed := report.FailedResults()
		if len(failed) == 0 {
			return ErrorToast(e, http.StatusBadRequest, "The import has no failed rows")
		}

		xlsxBytes, err := services.GenerateImportErrorReport(failed)
		if err != nil {
			log.Printf("team_import_errors: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		filename := fmt.Sprintf("Team_Import_Errors_%s.xlsx", time.Now().Format("2006-01-02"))
		return writeXLSX(e, filename, xlsxBytes)
	}
}

// sessionFromForm restores the import session from the hidden form field.
func sessionFromForm(e *core.RequestEvent) (*services.ImportSession, error) {
	if err := e.Request.ParseForm(); err != nil {
		return nil, fmt.Errorf("invalid form data")
	}

	raw := e.Request.FormValue("session_json")
	if raw == "" {
		return nil, fmt.Errorf("import session missing, please re-upload the file")
	}

	var session services.ImportSession
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return nil, fmt.Errorf("import session is corrupted, please re-upload the file")
	}
	return &session, nil
}

// applyBulkSettings reads the batch-wide settings off the preview form.
func applyBulkSettings(e *core.RequestEvent, session *services.ImportSession) error {
	ageGroup := e.Request.FormValue("age_group")
	if !services.IsValidAgeGroup(ageGroup) {
		return fmt.Errorf("invalid age group %q", ageGroup)
	}
	role := e.Request.FormValue("role")
	if !services.IsValidRole(role) {
		return fmt.Errorf("invalid contact role %q", role)
	}

	session.Defaults.AgeGroup = ageGroup
	session.Defaults.Role = role
	session.Defaults.IsOpponent = e.Request.FormValue("is_opponent") != ""
	return nil
}

// applyRowEdits folds the per-row inputs back into the candidates. Contact
// inputs only exist for mapped fields, so an absent form key leaves the nil
// marker alone.
func applyRowEdits(e *core.RequestEvent, session *services.ImportSession) {
	for i := range session.Candidates {
		candidate := session.Candidates[i]

		if vals, ok := e.Request.PostForm[fmt.Sprintf("row_%d_name", i)]; ok && len(vals) > 0 {
			candidate.Name = vals[0]
		}
		applyContactEdit(e, fmt.Sprintf("row_%d_contact_name", i), &candidate.ContactName)
		applyContactEdit(e, fmt.Sprintf("row_%d_contact_email", i), &candidate.ContactEmail)
		applyContactEdit(e, fmt.Sprintf("row_%d_contact_phone", i), &candidate.ContactPhone)

		if err := session.UpdateTeam(i, candidate); err != nil {
			log.Printf("team_import_commit: row %d edit: %v", i, err)
		}
	}
}

func applyContactEdit(e *core.RequestEvent, key string, target **string) {
	vals, ok := e.Request.PostForm[key]
	if !ok || len(vals) == 0 {
		return
	}
	v := vals[0]
	*target = &v
}

func renderMapping(e *core.RequestEvent, session *services.ImportSession, errMsg string) error {
	data := templates.ImportMappingData{
		Session:     session,
		SessionJSON: marshalSession(session),
		Error:       errMsg,
	}
	var component templ.Component
	if e.Request.Header.Get("HX-Request") == "true" {
		component = templates.ImportMappingContent(data)
	} else {
		component = templates.ImportMappingPage(data)
	}
	return component.Render(e.Request.Context(), e.Response)
}

func renderPreview(e *core.RequestEvent, session *services.ImportSession, errMsg string) error {
	data := templates.ImportPreviewData{
		Session:     session,
		SessionJSON: marshalSession(session),
		Error:       errMsg,
	}
	var component templ.Component
	if e.Request.Header.Get("HX-Request") == "true" {
		component = templates.ImportPreviewContent(data)
	} else {
		component = templates.ImportPreviewPage(data)
	}
	return component.Render(e.Request.Context(), e.Response)
}

func marshalSession(session *services.ImportSession) string {
	b, err := json.Marshal(session)
	if err != nil {
		log.Printf("team_import: marshal session: %v", err)
		return ""
	}
	return string(b)
}

// writeXLSX sends spreadsheet bytes as a download.
func writeXLSX(e *core.RequestEvent, filename string, data []byte) error {
	e.Response.Header().Set("Content-Type",
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	e.Response.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="%s"`, filename))
	_, err := e.Response.Write(data)
	return err
}
