package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Setup programmatically creates/ensures the teams, team_officials,
// team_imports, pitches, fixtures and email_templates collections exist.
func Setup(app *pocketbase.PocketBase) {
	teams := ensureCollection(app, "teams", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.SelectField{
			Name:      "age_group",
			Required:  true,
			Values:    []string{"U8", "U9", "U10", "U11", "U12", "U13", "U14", "U15", "U16", "U17", "U18"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.SelectField{
			Name:      "gender",
			Required:  true,
			Values:    []string{"boys", "girls", "mixed"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.TextField{Name: "team_color", Required: false})
		c.Fields.Add(&core.BoolField{Name: "is_opponent"})
		c.Fields.Add(&core.TextField{Name: "created_by", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "team_officials", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "team",
			Required:      true,
			CollectionId:  teams.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.TextField{Name: "full_name", Required: true})
		c.Fields.Add(&core.SelectField{
			Name:      "role",
			Required:  true,
			Values:    []string{"manager", "coach", "assistant_manager", "fixtures_secretary", "other"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.EmailField{Name: "email", Required: false})
		c.Fields.Add(&core.TextField{Name: "phone", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
	})

	ensureCollection(app, "team_imports", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "created_by", Required: false})
		c.Fields.Add(&core.TextField{Name: "file_name", Required: true})
		c.Fields.Add(&core.TextField{Name: "field_mappings", Required: false})
		c.Fields.Add(&core.SelectField{
			Name:      "status",
			Required:  false,
			Values:    []string{"processing", "completed"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.NumberField{Name: "total_rows", Required: false})
		c.Fields.Add(&core.NumberField{Name: "processed_rows", Required: false})
		c.Fields.Add(&core.NumberField{Name: "failed_rows", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
	})

	pitches := ensureCollection(app, "pitches", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "address_line1", Required: true})
		c.Fields.Add(&core.TextField{Name: "address_line2", Required: false})
		c.Fields.Add(&core.TextField{Name: "city", Required: true})
		c.Fields.Add(&core.TextField{Name: "county", Required: false})
		c.Fields.Add(&core.TextField{Name: "postal_code", Required: true})
		c.Fields.Add(&core.NumberField{Name: "latitude", Required: false})
		c.Fields.Add(&core.NumberField{Name: "longitude", Required: false})
		c.Fields.Add(&core.URLField{Name: "map_url", Required: false})
		c.Fields.Add(&core.SelectField{
			Name:      "surface_type",
			Required:  true,
			Values:    []string{"grass", "artificial_grass", "hybrid", "3g", "4g"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.SelectField{
			Name:      "lighting_type",
			Required:  false,
			Values:    []string{"none", "floodlights", "natural_only", "partial"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.TextField{Name: "parking_info", Required: false})
		c.Fields.Add(&core.TextField{Name: "access_instructions", Required: false})
		c.Fields.Add(&core.TextField{Name: "special_instructions", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "fixtures", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "home_team",
			Required:      true,
			CollectionId:  teams.Id,
			CascadeDelete: false,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.RelationField{
			Name:          "away_team",
			Required:      true,
			CollectionId:  teams.Id,
			CascadeDelete: false,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.RelationField{
			Name:          "pitch",
			Required:      true,
			CollectionId:  pitches.Id,
			CascadeDelete: false,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.DateField{Name: "match_date", Required: true})
		c.Fields.Add(&core.SelectField{
			Name:      "status",
			Required:  true,
			Values:    []string{"scheduled", "completed", "cancelled", "postponed"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.TextField{Name: "notes", Required: false})
		c.Fields.Add(&core.TextField{Name: "created_by", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "email_templates", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "subject", Required: true})
		c.Fields.Add(&core.TextField{Name: "content", Required: true})
		c.Fields.Add(&core.TextField{Name: "description", Required: false})
		c.Fields.Add(&core.SelectField{
			Name:      "template_type",
			Required:  true,
			Values:    []string{"match_notification", "cancellation", "general"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.TextField{Name: "created_by", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})
}

// ensureCollection checks if a collection already exists by name. If it does,
// the existing collection is returned. Otherwise a new base collection is
// created, the addFields callback is invoked to populate its fields, and the
// collection is saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		log.Printf("Collection %q already exists, skipping creation.\n", name)
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Fatalf("Failed to create collection %q: %v", name, err)
	}

	fmt.Printf("Created collection %q (id=%s)\n", name, collection.Id)
	return collection
}
