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

// HandleTeamExport downloads all teams with their officials as an Excel file.
// Route: GET /teams/export
func HandleTeamExport(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		rows, err := services.LoadTeamExportRows(app)
		if err != nil {
			log.Printf("team_export: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		xlsxBytes, err := services.GenerateTeamsExcel(rows)
		if err != nil {
			log.Printf("team_export: generate: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		filename := fmt.Sprintf("Teams_%s.xlsx", time.Now().Format("2006-01-02"))
		return writeXLSX(e, filename, xlsxBytes)
	}
}
