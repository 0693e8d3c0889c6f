package handlers

import (
	"log"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"clubmanager/services"
	"clubmanager/templates"
)

// HandleTeamList renders all teams with their officials.
// Route: GET /teams
func HandleTeamList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		teamsCol, err := app.FindCollectionByNameOrId("teams")
		if err != nil {
			log.Printf("team_list: could not find teams collection: %v", err)
			return e.String(500, "Internal error")
		}

		records, err := app.FindRecordsByFilter(teamsCol, "id != ''", "name", 0, 0)
		if err != nil {
			log.Printf("team_list: could not query teams: %v", err)
			records = nil
		}

		var teams []templates.TeamView
		for _, rec := range records {
			teams = append(teams, templates.TeamView{
				ID:         rec.Id,
				Name:       rec.GetString("name"),
				AgeGroup:   rec.GetString("age_group"),
				Gender:     services.TitleCase(rec.GetString("gender")),
				TeamColor:  services.TitleCase(rec.GetString("team_color")),
				IsOpponent: rec.GetBool("is_opponent"),
				Officials:  loadTeamOfficials(app, rec.Id),
			})
		}

		data := templates.TeamListData{Teams: teams}

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.TeamListContent(data)
		} else {
			component = templates.TeamListPage(data)
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}

// loadTeamOfficials fetches a team's officials ordered by name. Query errors
// degrade to an empty list, the team card still renders.
func loadTeamOfficials(app *pocketbase.PocketBase, teamID string) []templates.TeamOfficialView {
	records, err := app.FindRecordsByFilter(
		"team_officials",
		"team = {:teamId}",
		"full_name", 0, 0,
		map[string]any{"teamId": teamID},
	)
	if err != nil {
		log.Printf("team_list: could not query officials for team %s: %v", teamID, err)
		return nil
	}

	var officials []templates.TeamOfficialView
	for _, rec := range records {
		officials = append(officials, templates.TeamOfficialView{
			ID:       rec.Id,
			FullName: rec.GetString("full_name"),
			Role:     services.FormatRole(rec.GetString("role")),
			Email:    rec.GetString("email"),
			Phone:    rec.GetString("phone"),
		})
	}
	return officials
}
