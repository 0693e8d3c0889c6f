package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HandlePitchDelete removes a pitch unless a fixture still uses it.
// Route: DELETE /pitches/{id}
func HandlePitchDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		pitchID := e.Request.PathValue("id")
		if pitchID == "" {
			return ErrorToast(e, http.StatusBadRequest, "Missing pitch ID")
		}

		record, err := app.FindRecordById("pitches", pitchID)
		if err != nil {
			log.Printf("pitch_delete: could not find pitch %s: %v", pitchID, err)
			return ErrorToast(e, http.StatusNotFound, "Pitch not found")
		}

		fixtures, err := app.FindRecordsByFilter(
			"fixtures",
			"pitch = {:pitchId}",
			"", 1, 0,
			map[string]any{"pitchId": pitchID},
		)
		if err == nil && len(fixtures) > 0 {
			return ErrorToast(e, http.StatusConflict, "Cannot delete pitch — it has scheduled fixtures")
		}

		if err := app.Delete(record); err != nil {
			log.Printf("pitch_delete: failed to delete pitch %s: %v", pitchID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Pitch deleted successfully")

		if e.Request.Header.Get("HX-Request") == "true" {
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/pitches")
	}
}
