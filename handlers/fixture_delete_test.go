package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"clubmanager/testhelpers"
)

func TestHandleFixtureDelete(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	home := testhelpers.CreateTestTeam(t, app, "Home FC", false)
	away := testhelpers.CreateTestTeam(t, app, "Away United", true)
	pitch := testhelpers.CreateTestPitch(t, app, "Riverside Park")
	fixture := testhelpers.CreateTestFixture(t, app, home.Id, away.Id, pitch.Id)

	handler := HandleFixtureDelete(app)

	req := httptest.NewRequest(http.MethodDelete, "/fixtures/"+fixture.Id, nil)
	req.SetPathValue("id", fixture.Id)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	if _, err := app.FindRecordById("fixtures", fixture.Id); err == nil {
		t.Error("fixture should be deleted")
	}
	// The teams survive their fixture.
	if _, err := app.FindRecordById("teams", home.Id); err != nil {
		t.Error("home team should still exist")
	}
}

func TestHandleFixtureDelete_NotFound(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	handler := HandleFixtureDelete(app)

	req := httptest.NewRequest(http.MethodDelete, "/fixtures/nope", nil)
	req.SetPathValue("id", "nope")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}
