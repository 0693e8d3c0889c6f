package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"clubmanager/testhelpers"
)

func TestHandleFixtureEmailPreview(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	home := testhelpers.CreateTestTeam(t, app, "Home FC", false)
	away := testhelpers.CreateTestTeam(t, app, "Away United", true)
	pitch := testhelpers.CreateTestPitch(t, app, "Riverside Park")
	fixture := testhelpers.CreateTestFixture(t, app, home.Id, away.Id, pitch.Id)

	official := testhelpers.CreateTestOfficial(t, app, away.Id, "Sam Archer", "fixtures_secretary")
	official.Set("email", "sam@example.com")
	if err := app.Save(official); err != nil {
		t.Fatalf("save official: %v", err)
	}

	handler := HandleFixtureEmailPreview(app)

	req := httptest.NewRequest(http.MethodGet, "/fixtures/"+fixture.Id+"/email", nil)
	req.SetPathValue("id", fixture.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "sam@example.com",
		"Match Details: Home FC vs Away United")
}

func TestHandleFixtureEmailPreview_NoContacts(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	home := testhelpers.CreateTestTeam(t, app, "Home FC", false)
	away := testhelpers.CreateTestTeam(t, app, "Away United", true)
	pitch := testhelpers.CreateTestPitch(t, app, "Riverside Park")
	fixture := testhelpers.CreateTestFixture(t, app, home.Id, away.Id, pitch.Id)
	// An official without an email address is not contactable.
	testhelpers.CreateTestOfficial(t, app, away.Id, "No Email", "manager")

	handler := HandleFixtureEmailPreview(app)

	req := httptest.NewRequest(http.MethodGet, "/fixtures/"+fixture.Id+"/email", nil)
	req.SetPathValue("id", fixture.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "No Email") {
		t.Error("official without email should not be offered as a recipient")
	}
}

func TestHandleFixtureEmailPreview_TemplateSubject(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	home := testhelpers.CreateTestTeam(t, app, "Home FC", false)
	away := testhelpers.CreateTestTeam(t, app, "Away United", true)
	pitch := testhelpers.CreateTestPitch(t, app, "Riverside Park")
	fixture := testhelpers.CreateTestFixture(t, app, home.Id, away.Id, pitch.Id)

	tpl := testhelpers.CreateTestEmailTemplate(t, app, "Match Notice")
	tpl.Set("template_type", "match_notification")
	tpl.Set("subject", "Upcoming: {home_team} vs {away_team} at {pitch}")
	if err := app.Save(tpl); err != nil {
		t.Fatalf("save template: %v", err)
	}

	handler := HandleFixtureEmailPreview(app)

	req := httptest.NewRequest(http.MethodGet, "/fixtures/"+fixture.Id+"/email", nil)
	req.SetPathValue("id", fixture.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		"Upcoming: Home FC vs Away United at Riverside Park")
}

func TestHandleFixtureEmailPreview_NotFound(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	handler := HandleFixtureEmailPreview(app)

	req := httptest.NewRequest(http.MethodGet, "/fixtures/nope/email", nil)
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

func TestHandleFixtureEmailSend_MissingRecipient(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	home := testhelpers.CreateTestTeam(t, app, "Home FC", false)
	away := testhelpers.CreateTestTeam(t, app, "Away United", true)
	pitch := testhelpers.CreateTestPitch(t, app, "Riverside Park")
	fixture := testhelpers.CreateTestFixture(t, app, home.Id, away.Id, pitch.Id)

	handler := HandleFixtureEmailSend(app)

	form := url.Values{}
	form.Set("to", "")

	req := httptest.NewRequest(http.MethodPost, "/fixtures/"+fixture.Id+"/email", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetPathValue("id", fixture.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestHandleFixtureEmailSend_UnknownFixture(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	handler := HandleFixtureEmailSend(app)

	form := url.Values{}
	form.Set("to", "sam@example.com")

	req := httptest.NewRequest(http.MethodPost, "/fixtures/nope/email", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
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
