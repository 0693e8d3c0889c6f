package handlers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"clubmanager/services"
	"clubmanager/templates"
)

// datetime-local inputs post this layout, no seconds and no zone.
const matchDateLayout = "2006-01-02T15:04"

// HandleFixtureNew renders the empty fixture form.
// Route: GET /fixtures/new
func HandleFixtureNew(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data := newFixtureFormData(app)
		data.Status = "scheduled"
		return renderFixtureForm(e, data)
	}
}

// HandleFixtureSave creates a fixture from the posted form.
// Route: POST /fixtures
func HandleFixtureSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		data := fixtureFormFromRequest(app, e)
		kickOff := validateFixtureForm(&data)
		if len(data.Errors) > 0 {
			SetToast(e, "warning", "Please fix the errors below")
			return renderFixtureForm(e, data)
		}

		fixturesCol, err := app.FindCollectionByNameOrId("fixtures")
		if err != nil {
			log.Printf("fixture_create: could not find fixtures collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		record := core.NewRecord(fixturesCol)
		setFixtureFields(record, data, kickOff)
		if e.Auth != nil {
			record.Set("created_by", e.Auth.Id)
		}

		if err := app.Save(record); err != nil {
			log.Printf("fixture_create: could not save fixture: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Fixture created successfully")
		return redirect(e, "/fixtures")
	}
}

func newFixtureFormData(app *pocketbase.PocketBase) templates.FixtureFormData {
	teams := loadTeamOptions(app)
	return templates.FixtureFormData{
		HomeTeams:     teams,
		AwayTeams:     teams,
		Pitches:       loadPitchOptions(app),
		StatusOptions: services.MatchStatuses,
		Errors:        make(map[string]string),
	}
}

func fixtureFormFromRequest(app *pocketbase.PocketBase, e *core.RequestEvent) templates.FixtureFormData {
	data := newFixtureFormData(app)
	data.HomeTeamID = e.Request.FormValue("home_team")
	data.AwayTeamID = e.Request.FormValue("away_team")
	data.PitchID = e.Request.FormValue("pitch")
	data.MatchDate = e.Request.FormValue("match_date")
	data.Status = e.Request.FormValue("status")
	data.Notes = strings.TrimSpace(e.Request.FormValue("notes"))
	return data
}

// validateFixtureForm fills Errors and returns the parsed kick off time.
func validateFixtureForm(data *templates.FixtureFormData) time.Time {
	if data.HomeTeamID == "" || data.AwayTeamID == "" {
		data.Errors["teams"] = "Both teams are required"
	} else if data.HomeTeamID == data.AwayTeamID {
		data.Errors["teams"] = "A team cannot play itself"
	}
	if data.PitchID == "" {
		data.Errors["teams"] = "Pitch is required"
	}

	kickOff, err := time.Parse(matchDateLayout, data.MatchDate)
	if err != nil {
		data.Errors["match_date"] = "Kick off date and time are required"
	}
	return kickOff
}

func setFixtureFields(record *core.Record, data templates.FixtureFormData, kickOff time.Time) {
	record.Set("home_team", data.HomeTeamID)
	record.Set("away_team", data.AwayTeamID)
	record.Set("pitch", data.PitchID)
	record.Set("match_date", kickOff.UTC().Format("2006-01-02 15:04:05.000Z"))
	record.Set("status", data.Status)
	record.Set("notes", data.Notes)
}

func loadTeamOptions(app *pocketbase.PocketBase) []templates.TeamOption {
	records, err := app.FindRecordsByFilter("teams", "id != ''", "name", 0, 0)
	if err != nil {
		log.Printf("fixture_form: could not query teams: %v", err)
		return nil
	}
	var options []templates.TeamOption
	for _, rec := range records {
		options = append(options, templates.TeamOption{
			ID:   rec.Id,
			Name: rec.GetString("name") + " (" + rec.GetString("age_group") + ")",
		})
	}
	return options
}

func loadPitchOptions(app *pocketbase.PocketBase) []templates.PitchOption {
	records, err := app.FindRecordsByFilter("pitches", "id != ''", "name", 0, 0)
	if err != nil {
		log.Printf("fixture_form: could not query pitches: %v", err)
		return nil
	}
	var options []templates.PitchOption
	for _, rec := range records {
		options = append(options, templates.PitchOption{
			ID:   rec.Id,
			Name: rec.GetString("name"),
		})
	}
	return options
}

func renderFixtureForm(e *core.RequestEvent, data templates.FixtureFormData) error {
	var component templ.Component
	if e.Request.Header.Get("HX-Request") == "true" {
		component = templates.FixtureFormContent(data)
	} else {
		component = templates.FixtureFormPage(data)
	}
	return component.Render(e.Request.Context(), e.Response)
}
