package services

// CandidateTeam is one projected row awaiting commit: a team name plus the
// contact that will become its official. Contact fields are pointers so that
// an unmapped column (nil, meaning "no official to create") stays distinct
// from a mapped-but-blank cell ("", a data defect the preview surfaces).
//
// Candidates have no identity of their own before commit; within a batch they
// are addressed by position.
type CandidateTeam struct {
	Name         string  `json:"name"`
	ContactName  *string `json:"contact_name,omitempty"`
	ContactEmail *string `json:"contact_email,omitempty"`
	ContactPhone *string `json:"contact_phone,omitempty"`
}

// HasContact reports whether committing this candidate should also create a
// team official. A nil or blank contact name means team-only.
func (c CandidateTeam) HasContact() bool {
	return c.ContactName != nil && *c.ContactName != ""
}

// ProjectRows applies a mapping to every row of the table, producing one
// candidate per row in file order. Team names are title-cased; contact fields
// are copied verbatim when mapped and left nil otherwise. The mapping must
// already have passed CanProceed, so a missing name column cannot occur here.
func ProjectRows(table *SourceTable, mapping FieldMapping) []CandidateTeam {
	candidates := make([]CandidateTeam, 0, len(table.Rows))

	for _, row := range table.Rows {
		candidate := CandidateTeam{
			Name: TitleCase(row[mapping[FieldName]]),
		}
		candidate.ContactName = projectOptional(row, mapping, FieldContactName)
		candidate.ContactEmail = projectOptional(row, mapping, FieldContactEmail)
		candidate.ContactPhone = projectOptional(row, mapping, FieldContactPhone)
		candidates = append(candidates, candidate)
	}

	return candidates
}

func projectOptional(row map[string]string, mapping FieldMapping, field string) *string {
	header := mapping[field]
	if header == "" {
		return nil
	}
	value := row[header]
	return &value
}
