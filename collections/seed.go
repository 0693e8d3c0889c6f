package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// ── Definition structs ───────────────────────────────────────────────────

type teamDef struct {
	name       string
	ageGroup   string
	gender     string
	teamColor  string
	isOpponent bool
}

type emailTemplateDef struct {
	name         string
	subject      string
	content      string
	description  string
	templateType string
}

// seedTeams are the club's own sides, created once on first startup so the
// fixtures screen has home teams to pick from.
var seedTeams = []teamDef{
	{name: "Riverside Juniors U10", ageGroup: "U10", gender: "boys", teamColor: "blue"},
	{name: "Riverside Juniors U12", ageGroup: "U12", gender: "boys", teamColor: "blue"},
	{name: "Riverside Juniors U12 Girls", ageGroup: "U12", gender: "girls", teamColor: "blue"},
}

var seedEmailTemplates = []emailTemplateDef{
	{
		name:         "Match Notification",
		subject:      "Upcoming match: {home_team} vs {away_team}",
		content:      "Hi {contact_name},\n\n{home_team} are due to play {away_team} on {match_date} at {pitch_name}.\n\nDirections: {map_url}\n\nSee you there!",
		description:  "Sent to the opposition contact ahead of a fixture",
		templateType: "match_notification",
	},
	{
		name:         "Match Cancelled",
		subject:      "Cancelled: {home_team} vs {away_team}",
		content:      "Hi {contact_name},\n\nUnfortunately the match between {home_team} and {away_team} on {match_date} has been cancelled.\n\nWe will be in touch to rearrange.",
		description:  "Sent when a fixture is called off",
		templateType: "cancellation",
	},
}

// Seed populates the teams and email_templates collections with starter data.
// It is safe to call on every startup because it returns early if any team
// records already exist.
func Seed(app *pocketbase.PocketBase) error {
	teamsCol, err := app.FindCollectionByNameOrId("teams")
	if err != nil {
		return fmt.Errorf("seed: could not find teams collection: %w", err)
	}
	existing, err := app.FindAllRecords(teamsCol)
	if err != nil {
		return fmt.Errorf("seed: could not query teams: %w", err)
	}
	if len(existing) > 0 {
		return nil // already seeded
	}

	log.Println("seed: teams collection is empty – inserting seed data …")

	for _, def := range seedTeams {
		record := core.NewRecord(teamsCol)
		record.Set("name", def.name)
		record.Set("age_group", def.ageGroup)
		record.Set("gender", def.gender)
		record.Set("team_color", def.teamColor)
		record.Set("is_opponent", def.isOpponent)
		if err := app.Save(record); err != nil {
			return fmt.Errorf("seed: save team %q: %w", def.name, err)
		}
	}

	templatesCol, err := app.FindCollectionByNameOrId("email_templates")
	if err != nil {
		return fmt.Errorf("seed: could not find email_templates collection: %w", err)
	}
	for _, def := range seedEmailTemplates {
		record := core.NewRecord(templatesCol)
		record.Set("name", def.name)
		record.Set("subject", def.subject)
		record.Set("content", def.content)
		record.Set("description", def.description)
		record.Set("template_type", def.templateType)
		if err := app.Save(record); err != nil {
			return fmt.Errorf("seed: save email template %q: %w", def.name, err)
		}
	}

	return nil
}
