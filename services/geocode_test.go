package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestGeocoder(handler http.HandlerFunc) (*Geocoder, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return &Geocoder{
		Token:   "test-token",
		BaseURL: srv.URL,
		Client:  srv.Client(),
	}, srv
}

func TestNewGeocoder_RequiresToken(t *testing.T) {
	t.Setenv(MapboxTokenEnv, "")
	if _, err := NewGeocoder(); err == nil {
		t.Fatal("expected error without token")
	}

	t.Setenv(MapboxTokenEnv, "pk.test")
	g, err := NewGeocoder()
	if err != nil {
		t.Fatalf("NewGeocoder returned error: %v", err)
	}
	if g.Token != "pk.test" {
		t.Errorf("token = %q", g.Token)
	}
}

func TestGeocode_Match(t *testing.T) {
	g, srv := newTestGeocoder(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("access_token") != "test-token" {
			t.Errorf("missing access token in request: %s", r.URL.String())
		}
		if r.URL.Query().Get("country") != "GB" {
			t.Errorf("expected GB country filter, got %s", r.URL.String())
		}
		w.Write([]byte(`{"features":[{"center":[-0.5704,51.2362],"place_name":"Guildford, England, United Kingdom"}]}`))
	})
	defer srv.Close()

	result, err := g.Geocode(context.Background(), "Stoke Park, Guildford")
	if err != nil {
		t.Fatalf("Geocode returned error: %v", err)
	}
	if result == nil {
		t.Fatal("expected a result")
	}
	if result.Latitude != 51.2362 || result.Longitude != -0.5704 {
		t.Errorf("coordinates = %v,%v", result.Latitude, result.Longitude)
	}
	if result.PlaceName != "Guildford, England, United Kingdom" {
		t.Errorf("place name = %q", result.PlaceName)
	}
	if result.MapURL != "https://www.google.com/maps?q=51.2362,-0.5704" {
		t.Errorf("map url = %q", result.MapURL)
	}
}

func TestGeocode_NoMatch(t *testing.T) {
	g, srv := newTestGeocoder(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"features":[]}`))
	})
	defer srv.Close()

	result, err := g.Geocode(context.Background(), "nowhere at all")
	if err != nil {
		t.Fatalf("no match should not be an error, got %v", err)
	}
	if result != nil {
		t.Errorf("expected nil result, got %+v", result)
	}
}

func TestGeocode_APIError(t *testing.T) {
	g, srv := newTestGeocoder(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	defer srv.Close()

	if _, err := g.Geocode(context.Background(), "anywhere"); err == nil {
		t.Fatal("expected error for non-200 response")
	}
}

func TestGeocode_MalformedCoordinates(t *testing.T) {
	g, srv := newTestGeocoder(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"features":[{"center":[-0.57],"place_name":"Partial"}]}`))
	})
	defer srv.Close()

	if _, err := g.Geocode(context.Background(), "anywhere"); err == nil {
		t.Fatal("expected error for truncated center array")
	}
}
