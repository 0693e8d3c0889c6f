package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"clubmanager/testhelpers"
)

func TestHandlePitchDelete(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	pitch := testhelpers.CreateTestPitch(t, app, "Doomed Park")

	handler := HandlePitchDelete(app)

	req := httptest.NewRequest(http.MethodDelete, "/pitches/"+pitch.Id, nil)
	req.SetPathValue("id", pitch.Id)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	if _, err := app.FindRecordById("pitches", pitch.Id); err == nil {
		t.Error("pitch should be deleted")
	}
}

func TestHandlePitchDelete_WithFixtures(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	home := testhelpers.CreateTestTeam(t, app, "Home FC", false)
	away := testhelpers.CreateTestTeam(t, app, "Away United", true)
	pitch := testhelpers.CreateTestPitch(t, app, "Busy Park")
	testhelpers.CreateTestFixture(t, app, home.Id, away.Id, pitch.Id)

	handler := HandlePitchDelete(app)

	req := httptest.NewRequest(http.MethodDelete, "/pitches/"+pitch.Id, nil)
	req.SetPathValue("id", pitch.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", rec.Code)
	}

	if _, err := app.FindRecordById("pitches", pitch.Id); err != nil {
		t.Error("pitch with fixtures should not be deleted")
	}
}
