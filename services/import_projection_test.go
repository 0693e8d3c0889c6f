package services

import "testing"

func sampleTable() *SourceTable {
	return &SourceTable{
		FileName: "teams.csv",
		Headers:  []string{"Club", "Manager", "Email", "Mobile"},
		Rows: []map[string]string{
			{"Club": "riverside rovers", "Manager": "Alice Smith", "Email": "alice@example.com", "Mobile": "07700 900001"},
			{"Club": "ASHFORD UNITED", "Manager": "", "Email": "fixtures@ashford.example", "Mobile": ""},
			{"Club": "o'neill fc", "Manager": "Bob Jones", "Email": "", "Mobile": "07700 900002"},
		},
	}
}

func TestProjectRows_FullMapping(t *testing.T) {
	mapping := FieldMapping{
		FieldName:         "Club",
		FieldContactName:  "Manager",
		FieldContactEmail: "Email",
		FieldContactPhone: "Mobile",
	}

	candidates := ProjectRows(sampleTable(), mapping)
	if len(candidates) != 3 {
		t.Fatalf("expected 3 candidates, got %d", len(candidates))
	}

	// names are title-cased, file order preserved
	wantNames := []string{"Riverside Rovers", "Ashford United", "O'neill Fc"}
	for i, want := range wantNames {
		if candidates[i].Name != want {
			t.Errorf("candidate %d name = %q, want %q", i, candidates[i].Name, want)
		}
	}

	if candidates[0].ContactName == nil || *candidates[0].ContactName != "Alice Smith" {
		t.Errorf("candidate 0 contact name not projected: %v", candidates[0].ContactName)
	}

	// mapped-but-blank cell stays a non-nil empty string
	if candidates[1].ContactName == nil {
		t.Error("mapped blank contact name should be empty string, not nil")
	} else if *candidates[1].ContactName != "" {
		t.Errorf("candidate 1 contact name = %q, want empty", *candidates[1].ContactName)
	}
}

func TestProjectRows_UnmappedFieldsAreNil(t *testing.T) {
	mapping := FieldMapping{FieldName: "Club"}

	candidates := ProjectRows(sampleTable(), mapping)
	for i, c := range candidates {
		if c.ContactName != nil || c.ContactEmail != nil || c.ContactPhone != nil {
			t.Errorf("candidate %d: unmapped contact fields should be nil", i)
		}
	}
}

func TestCandidateTeam_HasContact(t *testing.T) {
	name := "Alice"
	blank := ""

	tests := []struct {
		name      string
		candidate CandidateTeam
		want      bool
	}{
		{"nil contact", CandidateTeam{Name: "Rovers"}, false},
		{"blank contact", CandidateTeam{Name: "Rovers", ContactName: &blank}, false},
		{"named contact", CandidateTeam{Name: "Rovers", ContactName: &name}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.candidate.HasContact(); got != tt.want {
				t.Errorf("HasContact() = %v, want %v", got, tt.want)
			}
		})
	}
}
