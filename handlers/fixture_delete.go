package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HandleFixtureDelete removes a fixture.
// Route: DELETE /fixtures/{id}
func HandleFixtureDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		fixtureID := e.Request.PathValue("id")
		if fixtureID == "" {
			return ErrorToast(e, http.StatusBadRequest, "Missing fixture ID")
		}

		record, err := app.FindRecordById("fixtures", fixtureID)
		if err != nil {
			log.Printf("fixture_delete: could not find fixture %s: %v", fixtureID, err)
			return ErrorToast(e, http.StatusNotFound, "Fixture not found")
		}

		if err := app.Delete(record); err != nil {
			log.Printf("fixture_delete: failed to delete fixture %s: %v", fixtureID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Fixture deleted successfully")

		if e.Request.Header.Get("HX-Request") == "true" {
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/fixtures")
	}
}
