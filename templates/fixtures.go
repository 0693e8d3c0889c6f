package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// FixtureView is one fixture row on the list page.
type FixtureView struct {
	ID       string
	HomeTeam string
	AwayTeam string
	Pitch    string
	KickOff  string
	Status   string
	Notes    string
}

// FixtureListData feeds the fixtures list page.
type FixtureListData struct {
	Fixtures []FixtureView
}

// FixtureListContent renders the fixtures table without the page shell.
func FixtureListContent(data FixtureListData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div class="page-header">
<h1>Fixtures</h1>
<div class="actions">
<a class="button" href="/fixtures/new">Add Fixture</a>
<a class="button secondary" href="/fixtures/export/pdf">Download PDF</a>
</div>
</div>`); err != nil {
			return err
		}

		if len(data.Fixtures) == 0 {
			_, err := io.WriteString(w, `<p class="empty-state">No fixtures scheduled yet.</p>`)
			return err
		}

		if _, err := io.WriteString(w, `<table class="list-table">
<thead><tr><th>Date</th><th>Home</th><th>Away</th><th>Pitch</th><th>Status</th><th></th></tr></thead>
<tbody>`); err != nil {
			return err
		}
		for _, f := range data.Fixtures {
			if _, err := fmt.Fprintf(w, `<tr id="fixture-%s">
<td>%s</td><td>%s</td><td>%s</td><td>%s</td><td><span class="badge">%s</span></td>
<td class="card-actions">
<a href="/fixtures/%s/edit">Edit</a>
<a href="/fixtures/%s/email">Email</a>
<button hx-delete="/fixtures/%s" hx-confirm="Delete this fixture?" hx-target="#fixture-%s" hx-swap="outerHTML">Delete</button>
</td>
</tr>`,
				esc(f.ID), esc(f.KickOff), esc(f.HomeTeam), esc(f.AwayTeam), esc(f.Pitch), esc(f.Status),
				esc(f.ID), esc(f.ID), esc(f.ID), esc(f.ID)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</tbody></table>`)
		return err
	})
}

// FixtureListPage renders the full fixtures page.
func FixtureListPage(data FixtureListData) templ.Component {
	return Page("Fixtures", FixtureListContent(data))
}

// TeamOption is a team entry in the fixture form selects.
type TeamOption struct {
	ID   string
	Name string
}

// PitchOption is a pitch entry in the fixture form select.
type PitchOption struct {
	ID   string
	Name string
}

// FixtureFormData feeds the create/edit fixture form.
type FixtureFormData struct {
	IsEdit        bool
	FixtureID     string
	HomeTeamID    string
	AwayTeamID    string
	PitchID       string
	MatchDate     string // yyyy-mm-ddThh:mm, for datetime-local inputs
	Status        string
	Notes         string
	HomeTeams     []TeamOption
	AwayTeams     []TeamOption
	Pitches       []PitchOption
	StatusOptions []string
	Errors        map[string]string
}

// FixtureFormContent renders the fixture form without the page shell.
func FixtureFormContent(data FixtureFormData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		action := "/fixtures"
		heading := "Add Fixture"
		if data.IsEdit {
			action = fmt.Sprintf("/fixtures/%s/edit", data.FixtureID)
			heading = "Edit Fixture"
		}

		if _, err := fmt.Fprintf(w, `<h1>%s</h1>
<form method="post" action="%s" class="form">`, heading, action); err != nil {
			return err
		}

		if err := relationSelect(w, "home_team", "Home Team", data.HomeTeamID, data.HomeTeams); err != nil {
			return err
		}
		if err := relationSelect(w, "away_team", "Away Team", data.AwayTeamID, data.AwayTeams); err != nil {
			return err
		}
		if err := pitchSelect(w, data.PitchID, data.Pitches); err != nil {
			return err
		}
		if err := fieldError(w, data.Errors["teams"]); err != nil {
			return err
		}

		if _, err := fmt.Fprintf(w, `<label>Kick Off<input type="datetime-local" name="match_date" value="%s" required></label>`,
			esc(data.MatchDate)); err != nil {
			return err
		}
		if err := fieldError(w, data.Errors["match_date"]); err != nil {
			return err
		}
		if err := selectField(w, "status", "Status", data.Status, data.StatusOptions); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, `<label>Notes<textarea name="notes">%s</textarea></label>
<div class="form-actions">
<button type="submit">Save</button>
<a class="button secondary" href="/fixtures">Cancel</a>
</div>
</form>`, esc(data.Notes))
		return err
	})
}

// FixtureFormPage renders the full fixture form page.
func FixtureFormPage(data FixtureFormData) templ.Component {
	title := "Add Fixture"
	if data.IsEdit {
		title = "Edit Fixture"
	}
	return Page(title, FixtureFormContent(data))
}

func relationSelect(w io.Writer, name, label, value string, options []TeamOption) error {
	if _, err := fmt.Fprintf(w, `<label>%s<select name="%s" required>
<option value="">— select —</option>`, esc(label), name); err != nil {
		return err
	}
	for _, opt := range options {
		selected := ""
		if opt.ID == value {
			selected = " selected"
		}
		if _, err := fmt.Fprintf(w, `<option value="%s"%s>%s</option>`, esc(opt.ID), selected, esc(opt.Name)); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, `</select></label>`)
	return err
}

func pitchSelect(w io.Writer, value string, options []PitchOption) error {
	if _, err := io.WriteString(w, `<label>Pitch<select name="pitch" required>
<option value="">— select —</option>`); err != nil {
		return err
	}
	for _, opt := range options {
		selected := ""
		if opt.ID == value {
			selected = " selected"
		}
		if _, err := fmt.Fprintf(w, `<option value="%s"%s>%s</option>`, esc(opt.ID), selected, esc(opt.Name)); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, `</select></label>`)
	return err
}
