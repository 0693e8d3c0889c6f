package collections_test

import (
	"testing"

	"clubmanager/collections"
	"clubmanager/testhelpers"
)

// expectedCollections is the full list of collections that Setup() must create.
var expectedCollections = []string{
	"teams",
	"team_officials",
	"team_imports",
	"pitches",
	"fixtures",
	"email_templates",
}

func TestSetup_AllCollectionsExist(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	for _, name := range expectedCollections {
		col, err := app.FindCollectionByNameOrId(name)
		if err != nil {
			t.Errorf("collection %q not found after Setup(): %v", name, err)
			continue
		}
		if col.Name != name {
			t.Errorf("expected collection name %q, got %q", name, col.Name)
		}
	}
}

func TestSetup_Idempotent(t *testing.T) {
	app := testhelpers.NewTestApp(t) // Setup() already called once via NewTestApp

	// Collect IDs from first run
	ids := make(map[string]string)
	for _, name := range expectedCollections {
		col, _ := app.FindCollectionByNameOrId(name)
		ids[name] = col.Id
	}

	// Run Setup() again
	collections.Setup(app)

	// IDs should not change
	for _, name := range expectedCollections {
		col, err := app.FindCollectionByNameOrId(name)
		if err != nil {
			t.Errorf("collection %q missing after second Setup(): %v", name, err)
			continue
		}
		if col.Id != ids[name] {
			t.Errorf("collection %q id changed after second Setup(): %s -> %s", name, ids[name], col.Id)
		}
	}
}

func TestSetup_TeamsFields(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	col, _ := app.FindCollectionByNameOrId("teams")

	requiredFields := []string{"name", "age_group"}
	optionalFields := []string{"gender", "team_color", "is_opponent", "created_by", "created", "updated"}

	for _, f := range requiredFields {
		if col.Fields.GetByName(f) == nil {
			t.Errorf("teams: missing required field %q", f)
		}
	}
	for _, f := range optionalFields {
		if col.Fields.GetByName(f) == nil {
			t.Errorf("teams: missing field %q", f)
		}
	}
}

func TestSetup_FixturesFields(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	col, _ := app.FindCollectionByNameOrId("fixtures")

	for _, f := range []string{"home_team", "away_team", "pitch", "match_date", "status", "notes"} {
		if col.Fields.GetByName(f) == nil {
			t.Errorf("fixtures: missing field %q", f)
		}
	}
}

func TestSetup_TeamImportsFields(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	col, _ := app.FindCollectionByNameOrId("team_imports")

	for _, f := range []string{"file_name", "field_mappings", "status", "total_rows", "processed_rows", "failed_rows"} {
		if col.Fields.GetByName(f) == nil {
			t.Errorf("team_imports: missing field %q", f)
		}
	}
}
