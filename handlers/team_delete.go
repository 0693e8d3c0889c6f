package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HandleTeamDelete removes a team. Officials cascade with the relation, but
// a team referenced by a fixture stays put.
// Route: DELETE /teams/{id}
func HandleTeamDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		teamID := e.Request.PathValue("id")
		if teamID == "" {
			return ErrorToast(e, http.StatusBadRequest, "Missing team ID")
		}

		record, err := app.FindRecordById("teams", teamID)
		if err != nil {
			log.Printf("team_delete: could not find team %s: %v", teamID, err)
			return ErrorToast(e, http.StatusNotFound, "Team not found")
		}

		fixtures, err := app.FindRecordsByFilter(
			"fixtures",
			"home_team = {:teamId} || away_team = {:teamId}",
			"", 1, 0,
			map[string]any{"teamId": teamID},
		)
		if err == nil && len(fixtures) > 0 {
			return ErrorToast(e, http.StatusConflict, "Cannot delete team — it has scheduled fixtures")
		}

		if err := app.Delete(record); err != nil {
			log.Printf("team_delete: failed to delete team %s: %v", teamID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Team deleted successfully")

		if e.Request.Header.Get("HX-Request") == "true" {
			// The card is hx-targeted, an empty body removes it
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/teams")
	}
}
