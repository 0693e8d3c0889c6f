package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pocketbase/pocketbase/core"
)

func TestSetToast(t *testing.T) {
	rec := httptest.NewRecorder()
	e := &core.RequestEvent{}
	e.Response = rec

	SetToast(e, "success", "Team created")

	trigger := rec.Header().Get("HX-Trigger")
	if trigger == "" {
		t.Fatal("expected HX-Trigger header to be set")
	}

	var parsed map[string]map[string]string
	if err := json.Unmarshal([]byte(trigger), &parsed); err != nil {
		t.Fatalf("HX-Trigger is not valid JSON: %v", err)
	}

	toast, ok := parsed["showToast"]
	if !ok {
		t.Fatal("expected showToast key in HX-Trigger JSON")
	}
	if toast["type"] != "success" {
		t.Errorf("expected type %q, got %q", "success", toast["type"])
	}
	if toast["message"] != "Team created" {
		t.Errorf("expected message %q, got %q", "Team created", toast["message"])
	}
}

func TestSetToast_MergesWithExistingTrigger(t *testing.T) {
	rec := httptest.NewRecorder()
	e := &core.RequestEvent{}
	e.Response = rec

	rec.Header().Set("HX-Trigger", `{"refreshFixtures":{"id":"abc123"}}`)

	SetToast(e, "success", "Fixture saved")

	var parsed map[string]json.RawMessage
	if err := json.Unmarshal([]byte(rec.Header().Get("HX-Trigger")), &parsed); err != nil {
		t.Fatalf("HX-Trigger is not valid JSON: %v", err)
	}

	if _, ok := parsed["refreshFixtures"]; !ok {
		t.Error("expected refreshFixtures event to survive the merge")
	}

	var toast map[string]string
	if err := json.Unmarshal(parsed["showToast"], &toast); err != nil {
		t.Fatalf("showToast is not valid JSON: %v", err)
	}
	if toast["message"] != "Fixture saved" {
		t.Errorf("expected message %q, got %q", "Fixture saved", toast["message"])
	}
}

func TestErrorToast(t *testing.T) {
	rec := httptest.NewRecorder()
	e := &core.RequestEvent{}
	e.Response = rec

	if err := ErrorToast(e, http.StatusNotFound, "Team not found"); err != nil {
		t.Fatalf("ErrorToast returned error: %v", err)
	}

	var parsed map[string]map[string]string
	if err := json.Unmarshal([]byte(rec.Header().Get("HX-Trigger")), &parsed); err != nil {
		t.Fatalf("HX-Trigger is not valid JSON: %v", err)
	}
	toast, ok := parsed["showToast"]
	if !ok {
		t.Fatal("expected showToast key in HX-Trigger")
	}
	if toast["type"] != "error" {
		t.Errorf("expected type %q, got %q", "error", toast["type"])
	}
	if toast["message"] != "Team not found" {
		t.Errorf("expected message %q, got %q", "Team not found", toast["message"])
	}

	if reswap := rec.Header().Get("HX-Reswap"); reswap != "none" {
		t.Errorf("expected HX-Reswap %q, got %q", "none", reswap)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", rec.Code)
	}
	if rec.Body.String() != "Team not found" {
		t.Errorf("expected body %q, got %q", "Team not found", rec.Body.String())
	}
}
