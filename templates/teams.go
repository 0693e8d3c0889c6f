package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// TeamOfficialView is one official row on a team card.
type TeamOfficialView struct {
	ID       string
	FullName string
	Role     string
	Email    string
	Phone    string
}

// TeamView is one team card on the list page.
type TeamView struct {
	ID         string
	Name       string
	AgeGroup   string
	Gender     string
	TeamColor  string
	IsOpponent bool
	Officials  []TeamOfficialView
}

// TeamListData feeds the team list page.
type TeamListData struct {
	Teams []TeamView
}

// TeamListContent renders the team cards without the page shell.
func TeamListContent(data TeamListData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div class="page-header">
<h1>Teams</h1>
<div class="actions">
<a class="button" href="/teams/new">Add Team</a>
<a class="button secondary" href="/teams/import">Import Teams</a>
<a class="button secondary" href="/teams/export">Export</a>
</div>
</div>`); err != nil {
			return err
		}

		if len(data.Teams) == 0 {
			_, err := io.WriteString(w, `<p class="empty-state">No teams added yet. Add one or import a CSV to get started.</p>`)
			return err
		}

		if _, err := io.WriteString(w, `<div class="card-grid">`); err != nil {
			return err
		}
		for _, team := range data.Teams {
			teamType := "Home"
			if team.IsOpponent {
				teamType = "Opponent"
			}
			if _, err := fmt.Fprintf(w, `<div class="card" id="team-%s">
<div class="card-header">
<h2>%s</h2>
<span class="badge">%s</span>
</div>
<p class="muted">%s · %s · %s</p>`,
				esc(team.ID), esc(team.Name), teamType,
				esc(team.AgeGroup), esc(team.Gender), esc(team.TeamColor)); err != nil {
				return err
			}
			for _, official := range team.Officials {
				if _, err := fmt.Fprintf(w, `<div class="official"><strong>%s</strong> <span class="muted">%s</span></div>`,
					esc(official.FullName), esc(official.Role)); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(w, `<div class="card-actions">
<a href="/teams/%s/edit">Edit</a>
<button hx-delete="/teams/%s" hx-confirm="Delete this team?" hx-target="#team-%s" hx-swap="outerHTML">Delete</button>
</div>
</div>`, esc(team.ID), esc(team.ID), esc(team.ID)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

// TeamListPage renders the full team list page.
func TeamListPage(data TeamListData) templ.Component {
	return Page("Teams", TeamListContent(data))
}

// TeamFormData feeds the create/edit team form.
type TeamFormData struct {
	IsEdit          bool
	TeamID          string
	Name            string
	AgeGroup        string
	Gender          string
	TeamColor       string
	IsOpponent      bool
	Officials       []TeamOfficialView
	AgeGroupOptions []string
	GenderOptions   []string
	ColorOptions    []string
	RoleOptions     []string
	Errors          map[string]string
}

// TeamFormContent renders the team form without the page shell.
func TeamFormContent(data TeamFormData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		action := "/teams"
		heading := "Add Team"
		if data.IsEdit {
			action = fmt.Sprintf("/teams/%s/edit", data.TeamID)
			heading = "Edit Team"
		}

		if _, err := fmt.Fprintf(w, `<h1>%s</h1>
<form method="post" action="%s" class="form">`, heading, action); err != nil {
			return err
		}

		if err := textField(w, "name", "Team Name", data.Name, data.Errors["name"]); err != nil {
			return err
		}
		if err := selectField(w, "age_group", "Age Group", data.AgeGroup, data.AgeGroupOptions); err != nil {
			return err
		}
		if err := fieldError(w, data.Errors["age_group"]); err != nil {
			return err
		}
		if err := selectField(w, "gender", "Gender", data.Gender, data.GenderOptions); err != nil {
			return err
		}
		if err := selectField(w, "team_color", "Kit Colour", data.TeamColor, data.ColorOptions); err != nil {
			return err
		}

		checked := ""
		if data.IsOpponent {
			checked = " checked"
		}
		if _, err := fmt.Fprintf(w, `<label class="checkbox"><input type="checkbox" name="is_opponent"%s> Opponent team</label>
<div class="form-actions">
<button type="submit">Save</button>
<a class="button secondary" href="/teams">Cancel</a>
</div>
</form>`, checked); err != nil {
			return err
		}

		if data.IsEdit {
			if err := teamOfficialsSection(w, data); err != nil {
				return err
			}
		}
		return nil
	})
}

// teamOfficialsSection renders the officials list with remove buttons and an
// add form. Only shown on the edit page, a team needs an id first.
func teamOfficialsSection(w io.Writer, data TeamFormData) error {
	if _, err := io.WriteString(w, `<section class="officials" id="officials">
<h2>Officials</h2>`); err != nil {
		return err
	}
	if len(data.Officials) == 0 {
		if _, err := io.WriteString(w, `<p class="muted">No officials yet.</p>`); err != nil {
			return err
		}
	}
	for _, official := range data.Officials {
		if _, err := fmt.Fprintf(w, `<div class="official" id="official-%s">
<strong>%s</strong> <span class="muted">%s</span> <span class="muted">%s %s</span>
<button hx-delete="/officials/%s" hx-confirm="Remove this official?" hx-target="#official-%s" hx-swap="outerHTML">Remove</button>
</div>`,
			esc(official.ID), esc(official.FullName), esc(official.Role),
			esc(official.Email), esc(official.Phone),
			esc(official.ID), esc(official.ID)); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, `<form method="post" action="/teams/%s/officials" class="form inline">`,
		esc(data.TeamID)); err != nil {
		return err
	}
	if err := textField(w, "full_name", "Full Name", "", data.Errors["full_name"]); err != nil {
		return err
	}
	if err := selectField(w, "role", "Role", "", data.RoleOptions); err != nil {
		return err
	}
	if err := textField(w, "email", "Email", "", data.Errors["email"]); err != nil {
		return err
	}
	if err := textField(w, "phone", "Phone", "", ""); err != nil {
		return err
	}
	_, err := io.WriteString(w, `<button type="submit">Add Official</button>
</form>
</section>`)
	return err
}

// TeamFormPage renders the full team form page.
func TeamFormPage(data TeamFormData) templ.Component {
	title := "Add Team"
	if data.IsEdit {
		title = "Edit Team"
	}
	return Page(title, TeamFormContent(data))
}

// textField writes a labelled text input with an optional inline error.
func textField(w io.Writer, name, label, value, errMsg string) error {
	if _, err := fmt.Fprintf(w, `<label>%s<input type="text" name="%s" value="%s"></label>`,
		esc(label), name, esc(value)); err != nil {
		return err
	}
	return fieldError(w, errMsg)
}

// fieldError writes an inline validation message, or nothing when blank.
func fieldError(w io.Writer, errMsg string) error {
	if errMsg == "" {
		return nil
	}
	_, err := fmt.Fprintf(w, `<p class="field-error">%s</p>`, esc(errMsg))
	return err
}

// selectField writes a labelled select with the current value preselected.
func selectField(w io.Writer, name, label, value string, options []string) error {
	if _, err := fmt.Fprintf(w, `<label>%s<select name="%s">`, esc(label), name); err != nil {
		return err
	}
	for _, opt := range options {
		selected := ""
		if opt == value {
			selected = " selected"
		}
		if _, err := fmt.Fprintf(w, `<option value="%s"%s>%s</option>`, esc(opt), selected, esc(opt)); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, `</select></label>`)
	return err
}
