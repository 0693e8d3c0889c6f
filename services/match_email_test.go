package services

import (
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase/core"

	"clubmanager/testhelpers"
)

func TestBuildMatchEmailData(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	home := testhelpers.CreateTestTeam(t, app, "Home FC", false)
	away := testhelpers.CreateTestTeam(t, app, "Away United", true)
	pitch := testhelpers.CreateTestPitch(t, app, "Riverside Park")
	fixture := testhelpers.CreateTestFixture(t, app, home.Id, away.Id, pitch.Id)

	data, err := BuildMatchEmailData(app, fixture.Id)
	if err != nil {
		t.Fatalf("BuildMatchEmailData returned error: %v", err)
	}

	if data.HomeTeam != "Home FC" || data.AwayTeam != "Away United" {
		t.Errorf("teams = %q vs %q", data.HomeTeam, data.AwayTeam)
	}
	if data.PitchName != "Riverside Park" {
		t.Errorf("pitch = %q", data.PitchName)
	}
	if data.PitchLine != "1 Riverside Park, Guildford GU1 1AA" {
		t.Errorf("pitch line = %q", data.PitchLine)
	}
	if data.KickOff == "" || !strings.Contains(data.KickOff, " at ") {
		t.Errorf("kick off not formatted: %q", data.KickOff)
	}
	if data.Status != "scheduled" {
		t.Errorf("status = %q", data.Status)
	}
}

func TestBuildMatchEmailData_MissingFixture(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if _, err := BuildMatchEmailData(app, "nope"); err == nil {
		t.Error("expected error for unknown fixture")
	}
}

func TestPitchAddressLine_PartialAddress(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	// An unsaved record is enough, only the field values matter here.
	col, err := app.FindCollectionByNameOrId("pitches")
	if err != nil {
		t.Fatalf("find pitches collection: %v", err)
	}
	pitch := core.NewRecord(col)
	pitch.Set("name", "Bare Field")
	pitch.Set("address_line1", "1 Riverside Park")

	if got := pitchAddressLine(pitch); got != "1 Riverside Park" {
		t.Errorf("line = %q", got)
	}

	pitch.Set("city", "Guildford")
	if got := pitchAddressLine(pitch); got != "1 Riverside Park, Guildford" {
		t.Errorf("line with city = %q", got)
	}
}
