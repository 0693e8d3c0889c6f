package handlers

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"clubmanager/services"
	"clubmanager/templates"
)

// HandlePitchGeocode resolves the address on the pitch form to coordinates
// and swaps the result back into the form.
// Route: POST /pitches/geocode
func HandlePitchGeocode(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		address := joinAddressParts(
			e.Request.FormValue("address_line1"),
			e.Request.FormValue("address_line2"),
			e.Request.FormValue("city"),
			e.Request.FormValue("county"),
			e.Request.FormValue("postal_code"),
		)
		if address == "" {
			return ErrorToast(e, http.StatusBadRequest, "Enter an address before looking up the location")
		}

		geocoder, err := services.NewGeocoder()
		if err != nil {
			log.Printf("pitch_geocode: %v", err)
			return ErrorToast(e, http.StatusServiceUnavailable, "Location lookup is not configured")
		}

		result, err := geocoder.Geocode(e.Request.Context(), address)
		if err != nil {
			log.Printf("pitch_geocode: geocode %q: %v", address, err)
			return ErrorToast(e, http.StatusBadGateway, "Location lookup failed. Please try again.")
		}
		if result == nil {
			return ErrorToast(e, http.StatusNotFound, "No location found for that address")
		}

		SetToast(e, "success", "Location found")
		component := templates.GeocodeResultFragment(
			strconv.FormatFloat(result.Latitude, 'f', 6, 64),
			strconv.FormatFloat(result.Longitude, 'f', 6, 64),
			result.MapURL,
			result.PlaceName,
		)
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleMapboxToken exposes the public Mapbox token to the client-side map.
// Route: GET /api/config/mapbox-token
func HandleMapboxToken(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		token := os.Getenv(services.MapboxTokenEnv)
		if token == "" {
			return e.JSON(http.StatusNotFound, map[string]string{
				"error": "token not configured",
			})
		}
		return e.JSON(http.StatusOK, map[string]string{"token": token})
	}
}

func joinAddressParts(parts ...string) string {
	var kept []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, ", ")
}
