package services

import "fmt"

// ImportState is the phase an import session is in. The flow is linear with
// one detour: Mapping -> Previewing -> Committing -> Done, with Back() from
// Previewing to Mapping and a failed audit write dropping Committing back to
// Previewing so edits are not lost.
type ImportState string

const (
	StateMapping    ImportState = "mapping"
	StatePreviewing ImportState = "previewing"
	StateCommitting ImportState = "committing"
	StateDone       ImportState = "done"
	StateFailed     ImportState = "failed"
)

// BulkDefaults are batch-wide settings applied uniformly to every candidate
// at commit time. There is no per-row override: the candidate rows never
// carry these fields at all.
type BulkDefaults struct {
	AgeGroup   string `json:"age_group"`
	IsOpponent bool   `json:"is_opponent"`
	Role       string `json:"role"`
}

// DefaultBulkSettings mirrors the initial selections in the preview form.
func DefaultBulkSettings() BulkDefaults {
	return BulkDefaults{AgeGroup: "U12", IsOpponent: true, Role: "fixtures_secretary"}
}

// ImportSession carries one import attempt through the pipeline. It retains
// the original parsed table so the user can go back, remap and re-project
// without re-uploading the file. The session round-trips through JSON in a
// hidden form field between requests, so every field is exported.
type ImportSession struct {
	State      ImportState     `json:"state"`
	Table      *SourceTable    `json:"table"`
	Mapping    FieldMapping    `json:"mapping"`
	Candidates []CandidateTeam `json:"candidates"`
	Defaults   BulkDefaults    `json:"defaults"`
}

// NewImportSession starts a session in the Mapping state over a parsed table.
func NewImportSession(table *SourceTable) *ImportSession {
	return &ImportSession{
		State:    StateMapping,
		Table:    table,
		Mapping:  FieldMapping{},
		Defaults: DefaultBulkSettings(),
	}
}

// Proceed projects the table through the current mapping and moves the
// session to Previewing. It refuses to advance while the team name column is
// unmapped or the mapping references columns the file does not have.
func (s *ImportSession) Proceed() error {
	if s.State != StateMapping {
		return fmt.Errorf("cannot proceed from %s state", s.State)
	}
	if !s.Mapping.CanProceed() {
		return fmt.Errorf("team name column must be mapped before previewing")
	}
	if err := s.Mapping.Validate(s.Table); err != nil {
		return err
	}

	s.Candidates = ProjectRows(s.Table, s.Mapping)
	s.State = StatePreviewing
	return nil
}

// UpdateTeam replaces the candidate at index with the edited version.
// Edits are positional and independent: changing row 3 never touches row 2.
func (s *ImportSession) UpdateTeam(index int, updated CandidateTeam) error {
	if s.State != StatePreviewing {
		return fmt.Errorf("cannot edit candidates in %s state", s.State)
	}
	if index < 0 || index >= len(s.Candidates) {
		return fmt.Errorf("candidate index %d out of range", index)
	}
	s.Candidates[index] = updated
	return nil
}

// Back returns the session to the Mapping state, keeping the table and the
// mapping choices but discarding the candidate list. Any edits made in the
// preview are lost; the next Proceed re-projects from the original table.
func (s *ImportSession) Back() error {
	if s.State != StatePreviewing {
		return fmt.Errorf("cannot go back from %s state", s.State)
	}
	s.Candidates = nil
	s.State = StateMapping
	return nil
}

// BeginCommit moves the session from Previewing to Committing.
func (s *ImportSession) BeginCommit() error {
	if s.State != StatePreviewing {
		return fmt.Errorf("cannot commit from %s state", s.State)
	}
	s.State = StateCommitting
	return nil
}

// FinishCommit marks the session Done. Row-level failures still end here:
// only a failed audit write counts as a batch-level failure.
func (s *ImportSession) FinishCommit() {
	s.State = StateDone
}

// FailCommit marks the session Failed. Nothing was persisted: the audit
// record write is the first thing the commit attempts.
func (s *ImportSession) FailCommit() {
	s.State = StateFailed
}

// Retry returns a Failed session to Previewing, candidates and edits intact.
func (s *ImportSession) Retry() error {
	if s.State != StateFailed {
		return fmt.Errorf("cannot retry from %s state", s.State)
	}
	s.State = StatePreviewing
	return nil
}
