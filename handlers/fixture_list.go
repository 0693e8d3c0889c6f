package handlers

import (
	"log"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"clubmanager/services"
	"clubmanager/templates"
)

// HandleFixtureList renders the fixtures ordered by kick off.
// Route: GET /fixtures
func HandleFixtureList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		fixturesCol, err := app.FindCollectionByNameOrId("fixtures")
		if err != nil {
			log.Printf("fixture_list: could not find fixtures collection: %v", err)
			return e.String(500, "Internal error")
		}

		records, err := app.FindRecordsByFilter(fixturesCol, "id != ''", "match_date", 0, 0)
		if err != nil {
			log.Printf("fixture_list: could not query fixtures: %v", err)
			records = nil
		}

		var fixtures []templates.FixtureView
		for _, rec := range records {
			fixtures = append(fixtures, templates.FixtureView{
				ID:       rec.Id,
				HomeTeam: relationName(app, "teams", rec.GetString("home_team")),
				AwayTeam: relationName(app, "teams", rec.GetString("away_team")),
				Pitch:    relationName(app, "pitches", rec.GetString("pitch")),
				KickOff:  services.FormatKickOff(rec.GetDateTime("match_date").Time()),
				Status:   services.TitleCase(rec.GetString("status")),
				Notes:    rec.GetString("notes"),
			})
		}

		data := templates.FixtureListData{Fixtures: fixtures}

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.FixtureListContent(data)
		} else {
			component = templates.FixtureListPage(data)
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}

// relationName resolves a relation id to the record's name field, falling
// back to the raw id so a broken relation still renders something.
func relationName(app *pocketbase.PocketBase, collection, id string) string {
	if id == "" {
		return ""
	}
	rec, err := app.FindRecordById(collection, id)
	if err != nil {
		log.Printf("fixture_list: could not resolve %s %s: %v", collection, id, err)
		return id
	}
	return rec.GetString("name")
}
