package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HandleFixtureEdit renders the edit form for an existing fixture.
// Route: GET /fixtures/{id}/edit
func HandleFixtureEdit(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		fixtureID := e.Request.PathValue("id")
		record, err := app.FindRecordById("fixtures", fixtureID)
		if err != nil {
			log.Printf("fixture_edit: could not find fixture %s: %v", fixtureID, err)
			return ErrorToast(e, http.StatusNotFound, "Fixture not found")
		}

		data := newFixtureFormData(app)
		data.IsEdit = true
		data.FixtureID = record.Id
		data.HomeTeamID = record.GetString("home_team")
		data.AwayTeamID = record.GetString("away_team")
		data.PitchID = record.GetString("pitch")
		data.MatchDate = record.GetDateTime("match_date").Time().Format(matchDateLayout)
		data.Status = record.GetString("status")
		data.Notes = record.GetString("notes")

		return renderFixtureForm(e, data)
	}
}

// HandleFixtureUpdate saves edits to an existing fixture.
// Route: POST /fixtures/{id}/edit
func HandleFixtureUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		fixtureID := e.Request.PathValue("id")
		record, err := app.FindRecordById("fixtures", fixtureID)
		if err != nil {
			log.Printf("fixture_edit: could not find fixture %s: %v", fixtureID, err)
			return ErrorToast(e, http.StatusNotFound, "Fixture not found")
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		data := fixtureFormFromRequest(app, e)
		data.IsEdit = true
		data.FixtureID = record.Id
		kickOff := validateFixtureForm(&data)
		if len(data.Errors) > 0 {
			SetToast(e, "warning", "Please fix the errors below")
			return renderFixtureForm(e, data)
		}

		setFixtureFields(record, data, kickOff)
		if err := app.Save(record); err != nil {
			log.Printf("fixture_edit: could not save fixture %s: %v", fixtureID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Fixture updated successfully")
		return redirect(e, "/fixtures")
	}
}
