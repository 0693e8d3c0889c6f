package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// EmailTemplateView is one template row on the list page.
type EmailTemplateView struct {
	ID           string
	Name         string
	Subject      string
	Description  string
	TemplateType string
}

// EmailTemplateListData feeds the email templates list page.
type EmailTemplateListData struct {
	Templates []EmailTemplateView
}

// EmailTemplateListContent renders the template rows without the page shell.
func EmailTemplateListContent(data EmailTemplateListData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div class="page-header">
<h1>Email Templates</h1>
<div class="actions"><a class="button" href="/email-templates/new">Add Template</a></div>
</div>`); err != nil {
			return err
		}

		if len(data.Templates) == 0 {
			_, err := io.WriteString(w, `<p class="empty-state">No email templates yet.</p>`)
			return err
		}

		if _, err := io.WriteString(w, `<table class="list-table">
<thead><tr><th>Name</th><th>Subject</th><th>Type</th><th></th></tr></thead>
<tbody>`); err != nil {
			return err
		}
		for _, tpl := range data.Templates {
			if _, err := fmt.Fprintf(w, `<tr id="template-%s">
<td>%s</td><td>%s</td><td><span class="badge">%s</span></td>
<td class="card-actions">
<a href="/email-templates/%s/edit">Edit</a>
<button hx-delete="/email-templates/%s" hx-confirm="Delete this template?" hx-target="#template-%s" hx-swap="outerHTML">Delete</button>
</td>
</tr>`,
				esc(tpl.ID), esc(tpl.Name), esc(tpl.Subject), esc(tpl.TemplateType),
				esc(tpl.ID), esc(tpl.ID), esc(tpl.ID)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</tbody></table>`)
		return err
	})
}

// EmailTemplateListPage renders the full email templates page.
func EmailTemplateListPage(data EmailTemplateListData) templ.Component {
	return Page("Email Templates", EmailTemplateListContent(data))
}

// EmailTemplateFormData feeds the create/edit template form.
type EmailTemplateFormData struct {
	IsEdit      bool
	TemplateID  string
	Name        string
	Subject     string
	Content     string
	Description string
	Type        string
	TypeOptions []string
	Errors      map[string]string
}

// EmailTemplateFormContent renders the template form without the page shell.
func EmailTemplateFormContent(data EmailTemplateFormData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		action := "/email-templates"
		heading := "Add Template"
		if data.IsEdit {
			action = fmt.Sprintf("/email-templates/%s/edit", data.TemplateID)
			heading = "Edit Template"
		}

		if _, err := fmt.Fprintf(w, `<h1>%s</h1>
<form method="post" action="%s" class="form">`, heading, action); err != nil {
			return err
		}

		if err := textField(w, "name", "Name", data.Name, data.Errors["name"]); err != nil {
			return err
		}
		if err := textField(w, "subject", "Subject", data.Subject, data.Errors["subject"]); err != nil {
			return err
		}
		if err := selectField(w, "template_type", "Type", data.Type, data.TypeOptions); err != nil {
			return err
		}
		if err := textField(w, "description", "Description", data.Description, ""); err != nil {
			return err
		}

		_, err := fmt.Fprintf(w, `<label>Content<textarea name="content" rows="12">%s</textarea></label>
<p class="muted">Placeholders: {home_team} {away_team} {match_date} {pitch_name} {map_url} {contact_name}</p>
<div class="form-actions">
<button type="submit">Save</button>
<a class="button secondary" href="/email-templates">Cancel</a>
</div>
</form>`, esc(data.Content))
		return err
	})
}

// EmailTemplateFormPage renders the full template form page.
func EmailTemplateFormPage(data EmailTemplateFormData) templ.Component {
	title := "Add Template"
	if data.IsEdit {
		title = "Edit Template"
	}
	return Page(title, EmailTemplateFormContent(data))
}
