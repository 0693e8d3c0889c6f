package handlers

import (
	"log"
	"strings"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"clubmanager/services"
	"clubmanager/templates"
)

// HandlePitchList renders all pitches.
// Route: GET /pitches
func HandlePitchList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		pitchesCol, err := app.FindCollectionByNameOrId("pitches")
		if err != nil {
			log.Printf("pitch_list: could not find pitches collection: %v", err)
			return e.String(500, "Internal error")
		}

		records, err := app.FindRecordsByFilter(pitchesCol, "id != ''", "name", 0, 0)
		if err != nil {
			log.Printf("pitch_list: could not query pitches: %v", err)
			records = nil
		}

		var pitches []templates.PitchView
		for _, rec := range records {
			addressLine := rec.GetString("address_line1")
			if city := rec.GetString("city"); city != "" {
				addressLine = strings.TrimPrefix(addressLine+", "+city, ", ")
			}
			pitches = append(pitches, templates.PitchView{
				ID:          rec.Id,
				Name:        rec.GetString("name"),
				AddressLine: addressLine,
				PostalCode:  rec.GetString("postal_code"),
				SurfaceType: services.TitleCase(rec.GetString("surface_type")),
				Lighting:    services.FormatRole(rec.GetString("lighting_type")),
				MapURL:      rec.GetString("map_url"),
			})
		}

		data := templates.PitchListData{Pitches: pitches}

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.PitchListContent(data)
		} else {
			component = templates.PitchListPage(data)
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}
