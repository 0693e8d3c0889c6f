package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// PitchView is one pitch card on the list page.
type PitchView struct {
	ID          string
	Name        string
	AddressLine string
	PostalCode  string
	SurfaceType string
	Lighting    string
	MapURL      string
}

// PitchListData feeds the pitches list page.
type PitchListData struct {
	Pitches []PitchView
}

// PitchListContent renders the pitch cards without the page shell.
func PitchListContent(data PitchListData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div class="page-header">
<h1>Pitches</h1>
<div class="actions"><a class="button" href="/pitches/new">Add Pitch</a></div>
</div>`); err != nil {
			return err
		}

		if len(data.Pitches) == 0 {
			_, err := io.WriteString(w, `<p class="empty-state">No pitches added yet.</p>`)
			return err
		}

		if _, err := io.WriteString(w, `<div class="card-grid">`); err != nil {
			return err
		}
		for _, pitch := range data.Pitches {
			if _, err := fmt.Fprintf(w, `<div class="card" id="pitch-%s">
<h2>%s</h2>
<p class="muted">%s, %s</p>
<p class="muted">%s · %s</p>`,
				esc(pitch.ID), esc(pitch.Name), esc(pitch.AddressLine), esc(pitch.PostalCode),
				esc(pitch.SurfaceType), esc(pitch.Lighting)); err != nil {
				return err
			}
			if pitch.MapURL != "" {
				if _, err := fmt.Fprintf(w, `<a href="%s" target="_blank" rel="noopener">View on map</a>`,
					esc(pitch.MapURL)); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(w, `<div class="card-actions">
<a href="/pitches/%s/edit">Edit</a>
<button hx-delete="/pitches/%s" hx-confirm="Delete this pitch?" hx-target="#pitch-%s" hx-swap="outerHTML">Delete</button>
</div>
</div>`, esc(pitch.ID), esc(pitch.ID), esc(pitch.ID)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

// PitchListPage renders the full pitches page.
func PitchListPage(data PitchListData) templ.Component {
	return Page("Pitches", PitchListContent(data))
}

// PitchFormData feeds the create/edit pitch form.
type PitchFormData struct {
	IsEdit          bool
	PitchID         string
	Name            string
	AddressLine1    string
	AddressLine2    string
	City            string
	County          string
	PostalCode      string
	Latitude        string
	Longitude       string
	MapURL          string
	SurfaceType     string
	LightingType    string
	ParkingInfo     string
	SurfaceOptions  []string
	LightingOptions []string
	Errors          map[string]string
}

// PitchFormContent renders the pitch form without the page shell. The
// "Find location" button posts the address to the geocoding endpoint via
// HTMX and swaps the returned coordinate fields back in.
func PitchFormContent(data PitchFormData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		action := "/pitches"
		heading := "Add Pitch"
		if data.IsEdit {
			action = fmt.Sprintf("/pitches/%s/edit", data.PitchID)
			heading = "Edit Pitch"
		}

		if _, err := fmt.Fprintf(w, `<h1>%s</h1>
<form method="post" action="%s" class="form">`, heading, action); err != nil {
			return err
		}

		if err := textField(w, "name", "Pitch Name", data.Name, data.Errors["name"]); err != nil {
			return err
		}
		if err := textField(w, "address_line1", "Address Line 1", data.AddressLine1, data.Errors["address_line1"]); err != nil {
			return err
		}
		if err := textField(w, "address_line2", "Address Line 2", data.AddressLine2, ""); err != nil {
			return err
		}
		if err := textField(w, "city", "Town / City", data.City, data.Errors["city"]); err != nil {
			return err
		}
		if err := textField(w, "county", "County", data.County, ""); err != nil {
			return err
		}
		if err := textField(w, "postal_code", "Postcode", data.PostalCode, data.Errors["postal_code"]); err != nil {
			return err
		}

		if _, err := fmt.Fprintf(w, `<div id="coords">
<label>Latitude<input type="text" name="latitude" value="%s" readonly></label>
<label>Longitude<input type="text" name="longitude" value="%s" readonly></label>
<input type="hidden" name="map_url" value="%s">
</div>
<button type="button" class="secondary"
 hx-post="/pitches/geocode" hx-include="closest form" hx-target="#coords" hx-swap="outerHTML">
Find location</button>`,
			esc(data.Latitude), esc(data.Longitude), esc(data.MapURL)); err != nil {
			return err
		}
		if errMsg := data.Errors["geocode"]; errMsg != "" {
			if _, err := fmt.Fprintf(w, `<p class="field-error">%s</p>`, esc(errMsg)); err != nil {
				return err
			}
		}

		if err := selectField(w, "surface_type", "Surface", data.SurfaceType, data.SurfaceOptions); err != nil {
			return err
		}
		if err := selectField(w, "lighting_type", "Lighting", data.LightingType, data.LightingOptions); err != nil {
			return err
		}
		if err := textField(w, "parking_info", "Parking", data.ParkingInfo, ""); err != nil {
			return err
		}

		_, err := io.WriteString(w, `<div class="form-actions">
<button type="submit">Save</button>
<a class="button secondary" href="/pitches">Cancel</a>
</div>
</form>`)
		return err
	})
}

// PitchFormPage renders the full pitch form page.
func PitchFormPage(data PitchFormData) templ.Component {
	title := "Add Pitch"
	if data.IsEdit {
		title = "Edit Pitch"
	}
	return Page(title, PitchFormContent(data))
}

// GeocodeResultFragment re-renders the coordinate block after a successful
// geocode, ready to swap into the pitch form.
func GeocodeResultFragment(latitude, longitude, mapURL, placeName string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<div id="coords">
<label>Latitude<input type="text" name="latitude" value="%s" readonly></label>
<label>Longitude<input type="text" name="longitude" value="%s" readonly></label>
<input type="hidden" name="map_url" value="%s">
<p class="muted">%s</p>
</div>`, esc(latitude), esc(longitude), esc(mapURL), esc(placeName))
		return err
	})
}
