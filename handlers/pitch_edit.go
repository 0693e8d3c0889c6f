package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HandlePitchEdit renders the edit form for an existing pitch.
// Route: GET /pitches/{id}/edit
func HandlePitchEdit(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		pitchID := e.Request.PathValue("id")
		record, err := app.FindRecordById("pitches", pitchID)
		if err != nil {
			log.Printf("pitch_edit: could not find pitch %s: %v", pitchID, err)
			return ErrorToast(e, http.StatusNotFound, "Pitch not found")
		}

		data := newPitchFormData()
		data.IsEdit = true
		data.PitchID = record.Id
		data.Name = record.GetString("name")
		data.AddressLine1 = record.GetString("address_line1")
		data.AddressLine2 = record.GetString("address_line2")
		data.City = record.GetString("city")
		data.County = record.GetString("county")
		data.PostalCode = record.GetString("postal_code")
		data.SurfaceType = record.GetString("surface_type")
		data.LightingType = record.GetString("lighting_type")
		data.ParkingInfo = record.GetString("parking_info")
		data.MapURL = record.GetString("map_url")
		if lat := record.GetFloat("latitude"); lat != 0 {
			data.Latitude = strconv.FormatFloat(lat, 'f', -1, 64)
		}
		if lng := record.GetFloat("longitude"); lng != 0 {
			data.Longitude = strconv.FormatFloat(lng, 'f', -1, 64)
		}

		return renderPitchForm(e, data)
	}
}

// HandlePitchUpdate saves edits to an existing pitch.
// Route: POST /pitches/{id}/edit
func HandlePitchUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		pitchID := e.Request.PathValue("id")
		record, err := app.FindRecordById("pitches", pitchID)
		if err != nil {
			log.Printf("pitch_edit: could not find pitch %s: %v", pitchID, err)
			return ErrorToast(e, http.StatusNotFound, "Pitch not found")
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		data := pitchFormFromRequest(e)
		data.IsEdit = true
		data.PitchID = record.Id
		validatePitchForm(&data)
		if len(data.Errors) > 0 {
			SetToast(e, "warning", "Please fix the errors below")
			return renderPitchForm(e, data)
		}

		setPitchFields(record, data)
		if err := app.Save(record); err != nil {
			log.Printf("pitch_edit: could not save pitch %s: %v", pitchID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Pitch updated successfully")
		return redirect(e, "/pitches")
	}
}
