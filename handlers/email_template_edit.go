package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HandleEmailTemplateEdit renders the edit form for an existing template.
// Route: GET /email-templates/{id}/edit
func HandleEmailTemplateEdit(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		templateID := e.Request.PathValue("id")
		record, err := app.FindRecordById("email_templates", templateID)
		if err != nil {
			log.Printf("email_template_edit: could not find template %s: %v", templateID, err)
			return ErrorToast(e, http.StatusNotFound, "Template not found")
		}

		data := newEmailTemplateFormData()
		data.IsEdit = true
		data.TemplateID = record.Id
		data.Name = record.GetString("name")
		data.Subject = record.GetString("subject")
		data.Content = record.GetString("content")
		data.Description = record.GetString("description")
		data.Type = record.GetString("template_type")

		return renderEmailTemplateForm(e, data)
	}
}

// HandleEmailTemplateUpdate saves edits to an existing template.
// Route: POST /email-templates/{id}/edit
func HandleEmailTemplateUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		templateID := e.Request.PathValue("id")
		record, err := app.FindRecordById("email_templates", templateID)
		if err != nil {
			log.Printf("email_template_edit: could not find template %s: %v", templateID, err)
			return ErrorToast(e, http.StatusNotFound, "Template not found")
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		data := emailTemplateFormFromRequest(e)
		data.IsEdit = true
		data.TemplateID = record.Id
		validateEmailTemplateForm(&data)
		if len(data.Errors) > 0 {
			SetToast(e, "warning", "Please fix the errors below")
			return renderEmailTemplateForm(e, data)
		}

		setEmailTemplateFields(record, data)
		if err := app.Save(record); err != nil {
			log.Printf("email_template_edit: could not save template %s: %v", templateID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Template updated successfully")
		return redirect(e, "/email-templates")
	}
}
