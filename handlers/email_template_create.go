package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"clubmanager/services"
	"clubmanager/templates"
)

// HandleEmailTemplateNew renders the empty template form.
// Route: GET /email-templates/new
func HandleEmailTemplateNew(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data := newEmailTemplateFormData()
		data.Type = "general"
		return renderEmailTemplateForm(e, data)
	}
}

// HandleEmailTemplateSave creates an email template from the posted form.
// Route: POST /email-templates
func HandleEmailTemplateSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		data := emailTemplateFormFromRequest(e)
		validateEmailTemplateForm(&data)
		if len(data.Errors) > 0 {
			SetToast(e, "warning", "Please fix the errors below")
			return renderEmailTemplateForm(e, data)
		}

		col, err := app.FindCollectionByNameOrId("email_templates")
		if err != nil {
			log.Printf("email_template_create: could not find email_templates collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		record := core.NewRecord(col)
		setEmailTemplateFields(record, data)
		if e.Auth != nil {
			record.Set("created_by", e.Auth.Id)
		}

		if err := app.Save(record); err != nil {
			log.Printf("email_template_create: could not save template: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Template created successfully")
		return redirect(e, "/email-templates")
	}
}

func newEmailTemplateFormData() templates.EmailTemplateFormData {
	return templates.EmailTemplateFormData{
		TypeOptions: services.EmailTemplateTypes,
		Errors:      make(map[string]string),
	}
}

func emailTemplateFormFromRequest(e *core.RequestEvent) templates.EmailTemplateFormData {
	data := newEmailTemplateFormData()
	data.Name = strings.TrimSpace(e.Request.FormValue("name"))
	data.Subject = strings.TrimSpace(e.Request.FormValue("subject"))
	data.Content = e.Request.FormValue("content")
	data.Description = strings.TrimSpace(e.Request.FormValue("description"))
	data.Type = e.Request.FormValue("template_type")
	return data
}

func validateEmailTemplateForm(data *templates.EmailTemplateFormData) {
	if data.Name == "" {
		data.Errors["name"] = "Name is required"
	}
	if data.Subject == "" {
		data.Errors["subject"] = "Subject is required"
	}
	if strings.TrimSpace(data.Content) == "" {
		data.Errors["content"] = "Content is required"
	}
}

func setEmailTemplateFields(record *core.Record, data templates.EmailTemplateFormData) {
	record.Set("name", data.Name)
	record.Set("subject", data.Subject)
	record.Set("content", data.Content)
	record.Set("description", data.Description)
	record.Set("template_type", data.Type)
}

func renderEmailTemplateForm(e *core.RequestEvent, data templates.EmailTemplateFormData) error {
	var component templ.Component
	if e.Request.Header.Get("HX-Request") == "true" {
		component = templates.EmailTemplateFormContent(data)
	} else {
		component = templates.EmailTemplateFormPage(data)
	}
	return component.Render(e.Request.Context(), e.Response)
}
