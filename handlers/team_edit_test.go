package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"clubmanager/testhelpers"
)

func TestHandleTeamEdit(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	team := testhelpers.CreateTestTeam(t, app, "Edit Me FC", false)
	testhelpers.CreateTestOfficial(t, app, team.Id, "Pat Keeper", "assistant_manager")

	handler := HandleTeamEdit(app)

	req := httptest.NewRequest(http.MethodGet, "/teams/"+team.Id+"/edit", nil)
	req.SetPathValue("id", team.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "Edit Me FC", "Pat Keeper", "Assistant Manager")
}

func TestHandleTeamEdit_NotFound(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	handler := HandleTeamEdit(app)

	req := httptest.NewRequest(http.MethodGet, "/teams/nope/edit", nil)
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

func TestHandleTeamUpdate(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	team := testhelpers.CreateTestTeam(t, app, "Old Name FC", false)

	handler := HandleTeamUpdate(app)

	form := url.Values{}
	form.Set("name", "New Name FC")
	form.Set("age_group", "U16")
	form.Set("gender", "mixed")
	form.Set("team_color", "green")
	form.Set("is_opponent", "on")

	req := httptest.NewRequest(http.MethodPost, "/teams/"+team.Id+"/edit", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetPathValue("id", team.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusFound {
		t.Errorf("expected 302, got %d", rec.Code)
	}

	updated, err := app.FindRecordById("teams", team.Id)
	if err != nil {
		t.Fatalf("reload team: %v", err)
	}
	if updated.GetString("name") != "New Name FC" {
		t.Errorf("name = %q", updated.GetString("name"))
	}
	if updated.GetString("age_group") != "U16" {
		t.Errorf("age_group = %q", updated.GetString("age_group"))
	}
	if !updated.GetBool("is_opponent") {
		t.Error("is_opponent should be true")
	}
}

func TestHandleTeamUpdate_ValidationError(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	team := testhelpers.CreateTestTeam(t, app, "Keep Name FC", false)

	handler := HandleTeamUpdate(app)

	form := url.Values{}
	form.Set("name", "")
	form.Set("age_group", "U12")

	req := httptest.NewRequest(http.MethodPost, "/teams/"+team.Id+"/edit", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetPathValue("id", team.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "Team name is required")

	unchanged, err := app.FindRecordById("teams", team.Id)
	if err != nil {
		t.Fatalf("reload team: %v", err)
	}
	if unchanged.GetString("name") != "Keep Name FC" {
		t.Errorf("name should be unchanged, got %q", unchanged.GetString("name"))
	}
}
