package services

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase/core"
)

// RowResult is the outcome of committing one candidate: either the created
// record IDs or the reason the row was skipped.
type RowResult struct {
	Index      int    `json:"index"`
	TeamName   string `json:"team_name"`
	TeamID     string `json:"team_id,omitempty"`
	OfficialID string `json:"official_id,omitempty"`
	Err        string `json:"error,omitempty"`
}

// Ok reports whether the row's team was created.
func (r RowResult) Ok() bool {
	return r.Err == ""
}

// ImportReport aggregates a whole commit attempt.
//
// Note the asymmetry the UI inherits from the original behavior: the success
// toast reports the imported count regardless of Failed, so a partially
// failed batch still reads as a success to the user. The per-row results are
// all here, so surfacing accurate counts is a rendering change only.
type ImportReport struct {
	RunID    string      `json:"run_id"`
	Total    int         `json:"total"`
	Imported int         `json:"imported"`
	Failed   int         `json:"failed"`
	Results  []RowResult `json:"results"`
}

// FailedResults returns only the rows that were skipped.
func (r *ImportReport) FailedResults() []RowResult {
	var failed []RowResult
	for _, res := range r.Results {
		if !res.Ok() {
			failed = append(failed, res)
		}
	}
	return failed
}

// CommitTeamImport persists a finalized import batch.
//
// An audit record in team_imports is written first, capturing the file name
// and the mapping used. If that write fails the whole commit aborts with an
// error before any team is touched. After that, rows are committed strictly
// in order, one at a time: team first, then the official referencing the new
// team's id, but only when the team create succeeded and the candidate has a
// non-empty contact name. A failed team create skips that row's official and
// the batch carries on; there are no retries and no idempotency key, so
// re-running a partially failed import duplicates the rows that already
// succeeded.
func CommitTeamImport(
	app core.App,
	initiatorID string,
	fileName string,
	mapping FieldMapping,
	candidates []CandidateTeam,
	defaults BulkDefaults,
) (*ImportReport, error) {
	runRecord, err := createImportRun(app, initiatorID, fileName, mapping, len(candidates))
	if err != nil {
		return nil, fmt.Errorf("create import run: %w", err)
	}

	teamsCol, err := app.FindCollectionByNameOrId("teams")
	if err != nil {
		return nil, fmt.Errorf("teams collection not found: %w", err)
	}
	officialsCol, err := app.FindCollectionByNameOrId("team_officials")
	if err != nil {
		return nil, fmt.Errorf("team_officials collection not found: %w", err)
	}

	report := &ImportReport{
		RunID:   runRecord.Id,
		Total:   len(candidates),
		Results: make([]RowResult, 0, len(candidates)),
	}

	for i, candidate := range candidates {
		result := RowResult{Index: i, TeamName: candidate.Name}

		team := core.NewRecord(teamsCol)
		team.Set("name", candidate.Name)
		team.Set("age_group", defaults.AgeGroup)
		team.Set("is_opponent", defaults.IsOpponent)
		team.Set("gender", "boys")
		team.Set("team_color", "blue")
		team.Set("created_by", initiatorID)

		if err := app.Save(team); err != nil {
			log.Printf("team_import: row %d: save team %q: %v", i, candidate.Name, err)
			result.Err = err.Error()
			report.Failed++
			report.Results = append(report.Results, result)
			continue
		}
		result.TeamID = team.Id

		if candidate.HasContact() {
			official := core.NewRecord(officialsCol)
			official.Set("team", team.Id)
			official.Set("full_name", *candidate.ContactName)
			official.Set("role", defaults.Role)
			if candidate.ContactEmail != nil {
				official.Set("email", *candidate.ContactEmail)
			}
			if candidate.ContactPhone != nil {
				official.Set("phone", *candidate.ContactPhone)
			}

			if err := app.Save(official); err != nil {
				// The team exists; only the official is lost.
				log.Printf("team_import: row %d: save official for %q: %v", i, candidate.Name, err)
			} else {
				result.OfficialID = official.Id
			}
		}

		report.Imported++
		report.Results = append(report.Results, result)
	}

	finishImportRun(app, runRecord, report)

	return report, nil
}

// createImportRun writes the audit record for one commit attempt. It is a
// log entry, not a transactional participant: it stays even if every row
// afterwards fails.
func createImportRun(
	app core.App,
	initiatorID string,
	fileName string,
	mapping FieldMapping,
	totalRows int,
) (*core.Record, error) {
	col, err := app.FindCollectionByNameOrId("team_imports")
	if err != nil {
		return nil, fmt.Errorf("team_imports collection not found: %w", err)
	}

	mappingJSON, err := json.Marshal(mapping)
	if err != nil {
		return nil, fmt.Errorf("marshal field mappings: %w", err)
	}

	record := core.NewRecord(col)
	record.Set("created_by", initiatorID)
	record.Set("file_name", fileName)
	record.Set("field_mappings", string(mappingJSON))
	record.Set("status", "processing")
	record.Set("total_rows", totalRows)

	if err := app.Save(record); err != nil {
		return nil, err
	}
	return record, nil
}

// finishImportRun updates the audit record with the batch totals. Best
// effort: a failure here is logged and does not fail the import.
func finishImportRun(app core.App, record *core.Record, report *ImportReport) {
	record.Set("status", "completed")
	record.Set("processed_rows", report.Imported)
	record.Set("failed_rows", report.Failed)
	if err := app.Save(record); err != nil {
		log.Printf("team_import: update import run %s: %v", record.Id, err)
	}
}
