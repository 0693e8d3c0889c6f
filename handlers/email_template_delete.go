package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HandleEmailTemplateDelete removes an email template.
// Route: DELETE /email-templates/{id}
func HandleEmailTemplateDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		templateID := e.Request.PathValue("id")
		if templateID == "" {
			return ErrorToast(e, http.StatusBadRequest, "Missing template ID")
		}

		record, err := app.FindRecordById("email_templates", templateID)
		if err != nil {
			log.Printf("email_template_delete: could not find template %s: %v", templateID, err)
			return ErrorToast(e, http.StatusNotFound, "Template not found")
		}

		if err := app.Delete(record); err != nil {
			log.Printf("email_template_delete: failed to delete template %s: %v", templateID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Template deleted successfully")

		if e.Request.Header.Get("HX-Request") == "true" {
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/email-templates")
	}
}
