package main

import (
	"log"
	"net/http"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"clubmanager/collections"
	"clubmanager/handlers"
)

func main() {
	app := pocketbase.New()

	// Create collections and seed data on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: seed data failed: %v", err)
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// Serve static files from ./static
		se.Router.GET("/static/{path...}", apis.Static(os.DirFS("./static"), false))

		// ── Team CRUD ────────────────────────────────────────────
		se.Router.GET("/teams", handlers.HandleTeamList(app))
		se.Router.GET("/teams/new", handlers.HandleTeamNew(app))
		se.Router.POST("/teams", handlers.HandleTeamSave(app))
		se.Router.GET("/teams/{id}/edit", handlers.HandleTeamEdit(app))
		se.Router.POST("/teams/{id}/edit", handlers.HandleTeamUpdate(app))
		se.Router.DELETE("/teams/{id}", handlers.HandleTeamDelete(app))

		// ── Team officials ───────────────────────────────────────
		se.Router.POST("/teams/{id}/officials", handlers.HandleOfficialAdd(app))
		se.Router.DELETE("/officials/{id}", handlers.HandleOfficialDelete(app))

		// ── Team import (upload → map → preview → commit) ────────
		se.Router.GET("/teams/import", handlers.HandleImportPage(app))
		se.Router.POST("/teams/import", handlers.HandleImportUpload(app))
		se.Router.POST("/teams/import/preview", handlers.HandleImportPreview(app))
		se.Router.POST("/teams/import/back", handlers.HandleImportBack(app))
		se.Router.POST("/teams/import/commit", handlers.HandleImportCommit(app))
		se.Router.GET("/teams/import/template", handlers.HandleImportTemplate(app))
		se.Router.POST("/teams/import/errors", handlers.HandleImportErrorReport(app))

		// ── Team export ──────────────────────────────────────────
		se.Router.GET("/teams/export", handlers.HandleTeamExport(app))

		// ── Fixture CRUD ─────────────────────────────────────────
		se.Router.GET("/fixtures", handlers.HandleFixtureList(app))
		se.Router.GET("/fixtures/new", handlers.HandleFixtureNew(app))
		se.Router.POST("/fixtures", handlers.HandleFixtureSave(app))
		se.Router.GET("/fixtures/{id}/edit", handlers.HandleFixtureEdit(app))
		se.Router.POST("/fixtures/{id}/edit", handlers.HandleFixtureUpdate(app))
		se.Router.DELETE("/fixtures/{id}", handlers.HandleFixtureDelete(app))

		// ── Fixture email & export ───────────────────────────────
		se.Router.GET("/fixtures/export/pdf", handlers.HandleFixtureExportPDF(app))
		se.Router.GET("/fixtures/{id}/email", handlers.HandleFixtureEmailPreview(app))
		se.Router.POST("/fixtures/{id}/email", handlers.HandleFixtureEmailSend(app))

		// ── Pitch CRUD ───────────────────────────────────────────
		se.Router.GET("/pitches", handlers.HandlePitchList(app))
		se.Router.GET("/pitches/new", handlers.HandlePitchNew(app))
		se.Router.POST("/pitches", handlers.HandlePitchSave(app))
		se.Router.POST("/pitches/geocode", handlers.HandlePitchGeocode(app))
		se.Router.GET("/pitches/{id}/edit", handlers.HandlePitchEdit(app))
		se.Router.POST("/pitches/{id}/edit", handlers.HandlePitchUpdate(app))
		se.Router.DELETE("/pitches/{id}", handlers.HandlePitchDelete(app))

		// ── Email templates ──────────────────────────────────────
		se.Router.GET("/email-templates", handlers.HandleEmailTemplateList(app))
		se.Router.GET("/email-templates/new", handlers.HandleEmailTemplateNew(app))
		se.Router.POST("/email-templates", handlers.HandleEmailTemplateSave(app))
		se.Router.GET("/email-templates/{id}/edit", handlers.HandleEmailTemplateEdit(app))
		se.Router.POST("/email-templates/{id}/edit", handlers.HandleEmailTemplateUpdate(app))
		se.Router.DELETE("/email-templates/{id}", handlers.HandleEmailTemplateDelete(app))

		// ── Client config ────────────────────────────────────────
		se.Router.GET("/api/config/mapbox-token", handlers.HandleMapboxToken(app))

		// Redirect home to the teams list
		se.Router.GET("/", func(e *core.RequestEvent) error {
			return e.Redirect(http.StatusFound, "/teams")
		})

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
