package services

import (
	"encoding/json"
	"testing"

	"clubmanager/testhelpers"
)

func strPtr(s string) *string { return &s }

func TestCommitTeamImport_Success(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	mapping := FieldMapping{FieldName: "Club", FieldContactName: "Manager"}
	candidates := []CandidateTeam{
		{Name: "Riverside Rovers", ContactName: strPtr("Alice Smith"), ContactEmail: strPtr("alice@example.com")},
		{Name: "Ashford United", ContactName: strPtr("Bob Jones")},
	}

	report, err := CommitTeamImport(app, "", "teams.csv", mapping, candidates, DefaultBulkSettings())
	if err != nil {
		t.Fatalf("CommitTeamImport returned error: %v", err)
	}

	if report.Total != 2 || report.Imported != 2 || report.Failed != 0 {
		t.Errorf("unexpected report counts: %+v", report)
	}
	if report.RunID == "" {
		t.Error("expected a run id")
	}

	teams, err := app.FindRecordsByFilter("teams", "id != ''", "name", 0, 0)
	if err != nil {
		t.Fatalf("query teams: %v", err)
	}
	if len(teams) != 2 {
		t.Fatalf("expected 2 teams, got %d", len(teams))
	}
	if teams[0].GetString("age_group") != "U12" {
		t.Errorf("bulk age group not applied: %q", teams[0].GetString("age_group"))
	}
	if !teams[0].GetBool("is_opponent") {
		t.Error("bulk opponent flag not applied")
	}

	officials, err := app.FindRecordsByFilter("team_officials", "id != ''", "", 0, 0)
	if err != nil {
		t.Fatalf("query officials: %v", err)
	}
	if len(officials) != 2 {
		t.Fatalf("expected 2 officials, got %d", len(officials))
	}
	for _, o := range officials {
		if o.GetString("role") != "fixtures_secretary" {
			t.Errorf("bulk role not applied: %q", o.GetString("role"))
		}
	}
}

func TestCommitTeamImport_PartialFailure(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	// the middle candidate has no name, the teams collection rejects it
	candidates := []CandidateTeam{
		{Name: "First Team", ContactName: strPtr("Alice")},
		{Name: "", ContactName: strPtr("Ghost")},
		{Name: "Third Team", ContactName: strPtr("Carol")},
	}

	report, err := CommitTeamImport(app, "", "teams.csv",
		FieldMapping{FieldName: "Club"}, candidates, DefaultBulkSettings())
	if err != nil {
		t.Fatalf("CommitTeamImport returned error: %v", err)
	}

	if report.Imported != 2 || report.Failed != 1 {
		t.Errorf("expected 2 imported 1 failed, got %+v", report)
	}

	failed := report.FailedResults()
	if len(failed) != 1 || failed[0].Index != 1 {
		t.Fatalf("expected row 1 to fail, got %+v", failed)
	}
	if failed[0].Err == "" {
		t.Error("failed row should carry an error message")
	}

	// the failed row's official was never attempted
	officials, err := app.FindRecordsByFilter("team_officials", "full_name = 'Ghost'", "", 0, 0)
	if err != nil {
		t.Fatalf("query officials: %v", err)
	}
	if len(officials) != 0 {
		t.Error("official must not be created when its team failed")
	}

	// rows after the failure were still committed
	teams, err := app.FindRecordsByFilter("teams", "name = 'Third Team'", "", 0, 0)
	if err != nil || len(teams) != 1 {
		t.Errorf("expected the row after the failure to commit, got %d (%v)", len(teams), err)
	}
}

func TestCommitTeamImport_NoOfficialWithoutContact(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	candidates := []CandidateTeam{
		{Name: "No Contact FC"}, // contact column unmapped
		{
			// Mapped but blank contact name. Email and phone alone never make an official.
			Name:         "Blank Contact FC",
			ContactName:  strPtr(""),
			ContactEmail: strPtr("someone@example.com"),
			ContactPhone: strPtr("0123456789"),
		},
	}

	report, err := CommitTeamImport(app, "", "teams.csv",
		FieldMapping{FieldName: "Club"}, candidates, DefaultBulkSettings())
	if err != nil {
		t.Fatalf("CommitTeamImport returned error: %v", err)
	}
	if report.Imported != 2 {
		t.Fatalf("expected both teams imported, got %+v", report)
	}

	officials, err := app.FindRecordsByFilter("team_officials", "id != ''", "", 0, 0)
	if err != nil {
		t.Fatalf("query officials: %v", err)
	}
	if len(officials) != 0 {
		t.Errorf("expected no officials, got %d", len(officials))
	}
}

func TestCommitTeamImport_AuditRecord(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	mapping := FieldMapping{FieldName: "Club", FieldContactEmail: "Email"}
	candidates := []CandidateTeam{
		{Name: "Audited FC"},
		{Name: ""},
	}

	report, err := CommitTeamImport(app, "user123", "spring_teams.xlsx", mapping, candidates, DefaultBulkSettings())
	if err != nil {
		t.Fatalf("CommitTeamImport returned error: %v", err)
	}

	run, err := app.FindRecordById("team_imports", report.RunID)
	if err != nil {
		t.Fatalf("audit record not found: %v", err)
	}

	if run.GetString("file_name") != "spring_teams.xlsx" {
		t.Errorf("file_name = %q", run.GetString("file_name"))
	}
	if run.GetString("created_by") != "user123" {
		t.Errorf("created_by = %q", run.GetString("created_by"))
	}
	if run.GetString("status") != "completed" {
		t.Errorf("status = %q, want completed", run.GetString("status"))
	}
	if run.GetInt("total_rows") != 2 || run.GetInt("processed_rows") != 1 || run.GetInt("failed_rows") != 1 {
		t.Errorf("row counts = %d/%d/%d", run.GetInt("total_rows"),
			run.GetInt("processed_rows"), run.GetInt("failed_rows"))
	}

	var stored FieldMapping
	if err := json.Unmarshal([]byte(run.GetString("field_mappings")), &stored); err != nil {
		t.Fatalf("field_mappings is not valid JSON: %v", err)
	}
	if stored[FieldName] != "Club" || stored[FieldContactEmail] != "Email" {
		t.Errorf("stored mapping = %v", stored)
	}
}

func TestCommitTeamImport_EmptyBatch(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	report, err := CommitTeamImport(app, "", "empty.csv",
		FieldMapping{FieldName: "Club"}, nil, DefaultBulkSettings())
	if err != nil {
		t.Fatalf("CommitTeamImport returned error: %v", err)
	}
	if report.Total != 0 || report.Imported != 0 || report.Failed != 0 {
		t.Errorf("unexpected report for empty batch: %+v", report)
	}
	// the audit record is still written
	if _, err := app.FindRecordById("team_imports", report.RunID); err != nil {
		t.Errorf("audit record missing for empty batch: %v", err)
	}
}

func TestCommitTeamImport_AuditWriteFailure(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	// Dropping the audit collection makes the run record write fail.
	auditCol, err := app.FindCollectionByNameOrId("team_imports")
	if err != nil {
		t.Fatalf("find team_imports: %v", err)
	}
	if err := app.Delete(auditCol); err != nil {
		t.Fatalf("delete team_imports: %v", err)
	}

	candidates := []CandidateTeam{
		{Name: "Never Created FC", ContactName: strPtr("Ghost Official")},
	}

	_, err = CommitTeamImport(app, "", "teams.csv",
		FieldMapping{FieldName: "Club"}, candidates, DefaultBulkSettings())
	if err == nil {
		t.Fatal("expected an error when the audit record cannot be written")
	}

	teams, err := app.FindRecordsByFilter("teams", "id != ''", "", 0, 0)
	if err != nil {
		t.Fatalf("query teams: %v", err)
	}
	if len(teams) != 0 {
		t.Errorf("no teams should be created when the audit write fails, got %d", len(teams))
	}
	officials, err := app.FindRecordsByFilter("team_officials", "id != ''", "", 0, 0)
	if err != nil {
		t.Fatalf("query officials: %v", err)
	}
	if len(officials) != 0 {
		t.Errorf("no officials should be created when the audit write fails, got %d", len(officials))
	}
}
