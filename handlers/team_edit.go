package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HandleTeamEdit renders the edit form for an existing team.
// Route: GET /teams/{id}/edit
func HandleTeamEdit(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		teamID := e.Request.PathValue("id")
		record, err := app.FindRecordById("teams", teamID)
		if err != nil {
			log.Printf("team_edit: could not find team %s: %v", teamID, err)
			return ErrorToast(e, http.StatusNotFound, "Team not found")
		}

		data := newTeamFormData()
		data.IsEdit = true
		data.TeamID = record.Id
		data.Name = record.GetString("name")
		data.AgeGroup = record.GetString("age_group")
		data.Gender = record.GetString("gender")
		data.TeamColor = record.GetString("team_color")
		data.IsOpponent = record.GetBool("is_opponent")
		data.Officials = loadTeamOfficials(app, record.Id)

		return renderTeamForm(e, data)
	}
}

// HandleTeamUpdate saves edits to an existing team.
// Route: POST /teams/{id}/edit
func HandleTeamUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		teamID := e.Request.PathValue("id")
		record, err := app.FindRecordById("teams", teamID)
		if err != nil {
			log.Printf("team_edit: could not find team %s: %v", teamID, err)
			return ErrorToast(e, http.StatusNotFound, "Team not found")
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		data := teamFormFromRequest(e)
		data.IsEdit = true
		data.TeamID = record.Id
		validateTeamForm(&data)
		if len(data.Errors) > 0 {
			data.Officials = loadTeamOfficials(app, record.Id)
			SetToast(e, "warning", "Please fix the errors below")
			return renderTeamForm(e, data)
		}

		setTeamFields(record, data)
		if err := app.Save(record); err != nil {
			log.Printf("team_edit: could not save team %s: %v", teamID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Team updated successfully")
		return redirect(e, "/teams")
	}
}
