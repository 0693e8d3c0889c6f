package services

import (
	"bytes"
	"testing"
	"time"

	"clubmanager/testhelpers"
)

func TestLoadFixtureExportRows(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	home := testhelpers.CreateTestTeam(t, app, "Home FC", false)
	away := testhelpers.CreateTestTeam(t, app, "Away United", true)
	pitch := testhelpers.CreateTestPitch(t, app, "Riverside Park")
	testhelpers.CreateTestFixture(t, app, home.Id, away.Id, pitch.Id)

	rows, err := LoadFixtureExportRows(app)
	if err != nil {
		t.Fatalf("LoadFixtureExportRows returned error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}

	row := rows[0]
	if row.HomeTeam != "Home FC" || row.AwayTeam != "Away United" {
		t.Errorf("teams not resolved: %+v", row)
	}
	if row.Pitch != "Riverside Park" {
		t.Errorf("pitch not resolved: %q", row.Pitch)
	}
	if row.MatchDate.IsZero() {
		t.Error("match date should be set")
	}
	if row.Status != "scheduled" {
		t.Errorf("status = %q", row.Status)
	}
}

func TestGenerateFixturesPDF(t *testing.T) {
	rows := []FixtureExportRow{
		{MatchDate: time.Date(2025, 9, 14, 10, 30, 0, 0, time.UTC),
			HomeTeam: "Home FC", AwayTeam: "Away United", Pitch: "Riverside Park", Status: "scheduled"},
		{MatchDate: time.Date(2025, 9, 21, 14, 0, 0, 0, time.UTC),
			HomeTeam: "Second FC", AwayTeam: "Third United", Pitch: "Town Rec", Status: "postponed"},
	}

	data, err := GenerateFixturesPDF("Riverside Juniors", rows)
	if err != nil {
		t.Fatalf("GenerateFixturesPDF returned error: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("expected PDF bytes")
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("output does not look like a PDF: %q", data[:8])
	}
}

func TestGenerateFixturesPDF_Empty(t *testing.T) {
	data, err := GenerateFixturesPDF("Riverside Juniors", nil)
	if err != nil {
		t.Fatalf("GenerateFixturesPDF returned error: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Error("empty schedule should still produce a PDF")
	}
}
