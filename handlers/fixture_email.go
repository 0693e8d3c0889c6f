package handlers

import (
	"bytes"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"clubmanager/services"
	"clubmanager/templates"
)

// HandleFixtureEmailPreview shows the rendered match email and the send form.
// Route: GET /fixtures/{id}/email
func HandleFixtureEmailPreview(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		fixtureID := e.Request.PathValue("id")

		data, err := buildEmailPreview(app, e, fixtureID)
		if err != nil {
			log.Printf("fixture_email: %v", err)
			return ErrorToast(e, http.StatusNotFound, "Fixture not found")
		}

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.MatchEmailPreviewContent(*data)
		} else {
			component = templates.MatchEmailPreviewPage(*data)
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleFixtureEmailSend sends the match email to the chosen official.
// Route: POST /fixtures/{id}/email
func HandleFixtureEmailSend(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		fixtureID := e.Request.PathValue("id")

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}
		to := strings.TrimSpace(e.Request.FormValue("to"))
		if to == "" {
			return ErrorToast(e, http.StatusBadRequest, "Please choose a recipient")
		}

		data, err := buildEmailPreview(app, e, fixtureID)
		if err != nil {
			log.Printf("fixture_email_send: %v", err)
			return ErrorToast(e, http.StatusNotFound, "Fixture not found")
		}

		if err := services.SendMatchEmail(app, to, data.Subject, data.HTML); err != nil {
			log.Printf("fixture_email_send: send to %s: %v", to, err)
			return ErrorToast(e, http.StatusInternalServerError, "Email could not be sent. Please try again.")
		}

		SetToast(e, "success", fmt.Sprintf("Match email sent to %s", to))
		return redirect(e, "/fixtures")
	}
}

// buildEmailPreview assembles the subject, rendered HTML, and the away team's
// contactable officials for a fixture.
func buildEmailPreview(app *pocketbase.PocketBase, e *core.RequestEvent, fixtureID string) (*templates.MatchEmailPreviewData, error) {
	emailData, err := services.BuildMatchEmailData(app, fixtureID)
	if err != nil {
		return nil, fmt.Errorf("build email data for fixture %s: %w", fixtureID, err)
	}

	var buf bytes.Buffer
	if err := templates.MatchEmail(emailData).Render(e.Request.Context(), &buf); err != nil {
		return nil, fmt.Errorf("render match email: %w", err)
	}

	fixture, err := app.FindRecordById("fixtures", fixtureID)
	if err != nil {
		return nil, fmt.Errorf("fixture %s: %w", fixtureID, err)
	}

	return &templates.MatchEmailPreviewData{
		FixtureID: fixtureID,
		Subject:   matchEmailSubject(app, emailData),
		HTML:      buf.String(),
		Contacts:  loadEmailContacts(app, fixture.GetString("away_team")),
	}, nil
}

// matchEmailSubject resolves the subject line from the match notification
// email template, substituting its placeholders. Without a template it falls
// back to a plain default.
func matchEmailSubject(app *pocketbase.PocketBase, data *services.MatchEmailData) string {
	records, err := app.FindRecordsByFilter(
		"email_templates",
		"template_type = {:type}",
		"", 1, 0,
		map[string]any{"type": "match_notification"},
	)
	if err != nil || len(records) == 0 {
		return fmt.Sprintf("Match Details: %s vs %s", data.HomeTeam, data.AwayTeam)
	}

	replacer := strings.NewReplacer(
		"{home_team}", data.HomeTeam,
		"{away_team}", data.AwayTeam,
		"{kick_off}", data.KickOff,
		"{pitch}", data.PitchName,
	)
	return replacer.Replace(records[0].GetString("subject"))
}

// loadEmailContacts returns a team's officials that have an email address.
func loadEmailContacts(app *pocketbase.PocketBase, teamID string) []templates.OfficialContact {
	records, err := app.FindRecordsByFilter(
		"team_officials",
		"team = {:teamId} && email != ''",
		"full_name", 0, 0,
		map[string]any{"teamId": teamID},
	)
	if err != nil {
		log.Printf("fixture_email: could not query officials for team %s: %v", teamID, err)
		return nil
	}

	var contacts []templates.OfficialContact
	for _, rec := range records {
		contacts = append(contacts, templates.OfficialContact{
			Name:  rec.GetString("full_name"),
			Email: rec.GetString("email"),
		})
	}
	return contacts
}
