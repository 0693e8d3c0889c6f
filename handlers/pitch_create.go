package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"clubmanager/services"
	"clubmanager/templates"
)

// HandlePitchNew renders the empty pitch form.
// Route: GET /pitches/new
func HandlePitchNew(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		return renderPitchForm(e, newPitchFormData())
	}
}

// HandlePitchSave creates a pitch from the posted form.
// Route: POST /pitches
func HandlePitchSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		data := pitchFormFromRequest(e)
		validatePitchForm(&data)
		if len(data.Errors) > 0 {
			SetToast(e, "warning", "Please fix the errors below")
			return renderPitchForm(e, data)
		}

		pitchesCol, err := app.FindCollectionByNameOrId("pitches")
		if err != nil {
			log.Printf("pitch_create: could not find pitches collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		record := core.NewRecord(pitchesCol)
		setPitchFields(record, data)

		if err := app.Save(record); err != nil {
			log.Printf("pitch_create: could not save pitch: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Pitch created successfully")
		return redirect(e, "/pitches")
	}
}

func newPitchFormData() templates.PitchFormData {
	return templates.PitchFormData{
		SurfaceOptions:  services.SurfaceTypes,
		LightingOptions: services.LightingTypes,
		Errors:          make(map[string]string),
	}
}

func pitchFormFromRequest(e *core.RequestEvent) templates.PitchFormData {
	data := newPitchFormData()
	data.Name = strings.TrimSpace(e.Request.FormValue("name"))
	data.AddressLine1 = strings.TrimSpace(e.Request.FormValue("address_line1"))
	data.AddressLine2 = strings.TrimSpace(e.Request.FormValue("address_line2"))
	data.City = strings.TrimSpace(e.Request.FormValue("city"))
	data.County = strings.TrimSpace(e.Request.FormValue("county"))
	data.PostalCode = strings.TrimSpace(e.Request.FormValue("postal_code"))
	data.Latitude = strings.TrimSpace(e.Request.FormValue("latitude"))
	data.Longitude = strings.TrimSpace(e.Request.FormValue("longitude"))
	data.MapURL = strings.TrimSpace(e.Request.FormValue("map_url"))
	data.SurfaceType = e.Request.FormValue("surface_type")
	data.LightingType = e.Request.FormValue("lighting_type")
	data.ParkingInfo = strings.TrimSpace(e.Request.FormValue("parking_info"))
	return data
}

func validatePitchForm(data *templates.PitchFormData) {
	if data.Name == "" {
		data.Errors["name"] = "Pitch name is required"
	}
	if data.AddressLine1 == "" {
		data.Errors["address_line1"] = "Address line 1 is required"
	}
	if data.City == "" {
		data.Errors["city"] = "Town or city is required"
	}
	if data.PostalCode == "" {
		data.Errors["postal_code"] = "Postcode is required"
	}
}

func setPitchFields(record *core.Record, data templates.PitchFormData) {
	record.Set("name", data.Name)
	record.Set("address_line1", data.AddressLine1)
	record.Set("address_line2", data.AddressLine2)
	record.Set("city", data.City)
	record.Set("county", data.County)
	record.Set("postal_code", data.PostalCode)
	record.Set("surface_type", data.SurfaceType)
	record.Set("lighting_type", data.LightingType)
	record.Set("parking_info", data.ParkingInfo)
	record.Set("map_url", data.MapURL)

	if lat, err := strconv.ParseFloat(data.Latitude, 64); err == nil {
		record.Set("latitude", lat)
	}
	if lng, err := strconv.ParseFloat(data.Longitude, 64); err == nil {
		record.Set("longitude", lng)
	}
}

func renderPitchForm(e *core.RequestEvent, data templates.PitchFormData) error {
	var component templ.Component
	if e.Request.Header.Get("HX-Request") == "true" {
		component = templates.PitchFormContent(data)
	} else {
		component = templates.PitchFormPage(data)
	}
	return component.Render(e.Request.Context(), e.Response)
}
