package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"clubmanager/services"
)

// HandleOfficialAdd creates an official for a team from the edit page form.
// Route: POST /teams/{id}/officials
func HandleOfficialAdd(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		teamID := e.Request.PathValue("id")
		team, err := app.FindRecordById("teams", teamID)
		if err != nil {
			log.Printf("official_add: could not find team %s: %v", teamID, err)
			return ErrorToast(e, http.StatusNotFound, "Team not found")
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		fullName := strings.TrimSpace(e.Request.FormValue("full_name"))
		if fullName == "" {
			return ErrorToast(e, http.StatusBadRequest, "Full name is required")
		}
		role := e.Request.FormValue("role")
		if !services.IsValidRole(role) {
			return ErrorToast(e, http.StatusBadRequest, "Invalid role")
		}

		officialsCol, err := app.FindCollectionByNameOrId("team_officials")
		if err != nil {
			log.Printf("official_add: could not find team_officials collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		record := core.NewRecord(officialsCol)
		record.Set("team", team.Id)
		record.Set("full_name", fullName)
		record.Set("role", role)
		record.Set("email", strings.TrimSpace(e.Request.FormValue("email")))
		record.Set("phone", strings.TrimSpace(e.Request.FormValue("phone")))

		if err := app.Save(record); err != nil {
			log.Printf("official_add: could not save official for team %s: %v", teamID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Official added")
		return redirect(e, "/teams/"+team.Id+"/edit")
	}
}

// HandleOfficialDelete removes an official.
// Route: DELETE /officials/{id}
func HandleOfficialDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		officialID := e.Request.PathValue("id")
		if officialID == "" {
			return ErrorToast(e, http.StatusBadRequest, "Missing official ID")
		}

		record, err := app.FindRecordById("team_officials", officialID)
		if err != nil {
			log.Printf("official_delete: could not find official %s: %v", officialID, err)
			return ErrorToast(e, http.StatusNotFound, "Official not found")
		}

		if err := app.Delete(record); err != nil {
			log.Printf("official_delete: failed to delete official %s: %v", officialID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Official removed")

		if e.Request.Header.Get("HX-Request") == "true" {
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/teams")
	}
}
