// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"strings"
	"testing"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"clubmanager/collections"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// CreateTestTeam creates a team record with the given name and returns it.
func CreateTestTeam(t *testing.T, app *pocketbase.PocketBase, name string, isOpponent bool) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("teams")
	if err != nil {
		t.Fatalf("failed to find teams collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("age_group", "U12")
	record.Set("gender", "boys")
	record.Set("team_color", "blue")
	record.Set("is_opponent", isOpponent)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test team: %v", err)
	}

	return record
}

// CreateTestOfficial creates a team official linked to a team.
func CreateTestOfficial(t *testing.T, app *pocketbase.PocketBase, teamID, fullName, role string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("team_officials")
	if err != nil {
		t.Fatalf("failed to find team_officials collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("team", teamID)
	record.Set("full_name", fullName)
	record.Set("role", role)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test official: %v", err)
	}

	return record
}

// CreateTestPitch creates a pitch record with sensible defaults.
func CreateTestPitch(t *testing.T, app *pocketbase.PocketBase, name string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("pitches")
	if err != nil {
		t.Fatalf("failed to find pitches collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("address_line1", "1 Riverside Park")
	record.Set("city", "Guildford")
	record.Set("postal_code", "GU1 1AA")
	record.Set("surface_type", "grass")
	record.Set("lighting_type", "none")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test pitch: %v", err)
	}

	return record
}

// CreateTestFixture creates a scheduled fixture between two teams on a pitch.
func CreateTestFixture(t *testing.T, app *pocketbase.PocketBase, homeID, awayID, pitchID string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("fixtures")
	if err != nil {
		t.Fatalf("failed to find fixtures collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("home_team", homeID)
	record.Set("away_team", awayID)
	record.Set("pitch", pitchID)
	record.Set("match_date", time.Now().Add(7*24*time.Hour).UTC().Format("2006-01-02 15:04:05.000Z"))
	record.Set("status", "scheduled")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test fixture: %v", err)
	}

	return record
}

// CreateTestEmailTemplate creates an email template record.
func CreateTestEmailTemplate(t *testing.T, app *pocketbase.PocketBase, name string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("email_templates")
	if err != nil {
		t.Fatalf("failed to find email_templates collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("subject", "Test subject")
	record.Set("content", "Test content")
	record.Set("template_type", "general")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test email template: %v", err)
	}

	return record
}

// AssertHTMLContains checks that body contains all specified fragments.
func AssertHTMLContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected HTML to contain %q, but it was not found\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
