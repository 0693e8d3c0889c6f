package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"clubmanager/services"
)

// HandleFixtureExportPDF downloads the fixture schedule as a PDF.
// Route: GET /fixtures/export/pdf
func HandleFixtureExportPDF(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		rows, err := services.LoadFixtureExportRows(app)
		if err != nil {
			log.Printf("fixture_export: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		clubName := app.Settings().Meta.AppName
		pdfBytes, err := services.GenerateFixturesPDF(clubName, rows)
		if err != nil {
			log.Printf("fixture_export: generate: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		filename := fmt.Sprintf("Fixtures_%s.pdf", time.Now().Format("2006-01-02"))
		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition",
			fmt.Sprintf(`attachment; filename="%s"`, filename))
		_, err = e.Response.Write(pdfBytes)
		return err
	}
}
