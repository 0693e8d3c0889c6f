package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"
)

// MapboxTokenEnv is the environment variable holding the public Mapbox token.
const MapboxTokenEnv = "MAPBOX_PUBLIC_TOKEN"

const mapboxBaseURL = "https://api.mapbox.com/geocoding/v5/mapbox.places"

// GeocodeResult is a resolved pitch location.
type GeocodeResult struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	PlaceName string  `json:"place_name"`
	MapURL    string  `json:"map_url"`
}

// Geocoder resolves free-text addresses/postcodes to coordinates using the
// Mapbox forward geocoding API, restricted to GB.
type Geocoder struct {
	Token   string
	BaseURL string
	Client  *http.Client
}

// NewGeocoder builds a Geocoder from the MAPBOX_PUBLIC_TOKEN environment
// variable. It returns an error when the token is not configured, matching
// the token endpoint's behavior.
func NewGeocoder() (*Geocoder, error) {
	token := os.Getenv(MapboxTokenEnv)
	if token == "" {
		return nil, fmt.Errorf("mapbox token not configured")
	}
	return &Geocoder{
		Token:   token,
		BaseURL: mapboxBaseURL,
		Client:  &http.Client{Timeout: 10 * time.Second},
	}, nil
}

// mapboxResponse mirrors the subset of the geocoding payload we read.
type mapboxResponse struct {
	Features []struct {
		Center    []float64 `json:"center"` // [longitude, latitude]
		PlaceName string    `json:"place_name"`
	} `json:"features"`
}

// Geocode resolves an address to coordinates. It returns (nil, nil) when the
// API has no match, so callers can distinguish "not found" from failures.
func (g *Geocoder) Geocode(ctx context.Context, address string) (*GeocodeResult, error) {
	endpoint := fmt.Sprintf("%s/%s.json?access_token=%s&country=GB",
		g.BaseURL, url.PathEscape(address), url.QueryEscape(g.Token))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build geocoding request: %w", err)
	}

	resp, err := g.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocoding request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoding API returned status %d", resp.StatusCode)
	}

	var payload mapboxResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode geocoding response: %w", err)
	}

	if len(payload.Features) == 0 {
		return nil, nil
	}

	feature := payload.Features[0]
	if len(feature.Center) < 2 {
		return nil, fmt.Errorf("geocoding response missing coordinates")
	}

	lng, lat := feature.Center[0], feature.Center[1]
	return &GeocodeResult{
		Latitude:  lat,
		Longitude: lng,
		PlaceName: feature.PlaceName,
		MapURL:    fmt.Sprintf("https://www.google.com/maps?q=%g,%g", lat, lng),
	}, nil
}
