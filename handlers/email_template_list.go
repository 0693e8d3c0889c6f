package handlers

import (
	"log"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"clubmanager/services"
	"clubmanager/templates"
)

// HandleEmailTemplateList renders all email templates.
// Route: GET /email-templates
func HandleEmailTemplateList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		col, err := app.FindCollectionByNameOrId("email_templates")
		if err != nil {
			log.Printf("email_template_list: could not find email_templates collection: %v", err)
			return e.String(500, "Internal error")
		}

		records, err := app.FindRecordsByFilter(col, "id != ''", "name", 0, 0)
		if err != nil {
			log.Printf("email_template_list: could not query templates: %v", err)
			records = nil
		}

		var views []templates.EmailTemplateView
		for _, rec := range records {
			views = append(views, templates.EmailTemplateView{
				ID:           rec.Id,
				Name:         rec.GetString("name"),
				Subject:      rec.GetString("subject"),
				Description:  rec.GetString("description"),
				TemplateType: services.FormatRole(rec.GetString("template_type")),
			})
		}

		data := templates.EmailTemplateListData{Templates: views}

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.EmailTemplateListContent(data)
		} else {
			component = templates.EmailTemplateListPage(data)
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}
