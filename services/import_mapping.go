package services

import "fmt"

// Logical import fields a CSV column can be mapped onto. The set is closed:
// everything else about a team (age group, opponent flag, contact role) comes
// from the batch-wide bulk settings, not from the file.
const (
	FieldName         = "name"
	FieldContactName  = "contact_name"
	FieldContactEmail = "contact_email"
	FieldContactPhone = "contact_phone"
)

// ImportFields lists the logical fields in display order. Only name is required.
var ImportFields = []string{FieldName, FieldContactName, FieldContactEmail, FieldContactPhone}

// FieldLabels maps logical fields to the labels shown in the mapping form.
var FieldLabels = map[string]string{
	FieldName:         "Team Name",
	FieldContactName:  "Contact Name",
	FieldContactEmail: "Contact Email",
	FieldContactPhone: "Contact Phone",
}

// FieldMapping records which source column feeds each logical field.
// Built incrementally as the user picks headers in the mapping form; a later
// Set for the same field simply replaces the earlier choice.
type FieldMapping map[string]string

// Set assigns header as the source column for field, replacing any prior choice.
func (m FieldMapping) Set(field, header string) {
	m[field] = header
}

// CanProceed reports whether the mapping is complete enough to project rows.
// The team name mapping is the sole gate; every other field is optional.
func (m FieldMapping) CanProceed() bool {
	return m[FieldName] != ""
}

// Validate checks that every mapped header actually exists in the table.
func (m FieldMapping) Validate(table *SourceTable) error {
	for field, header := range m {
		if header == "" {
			continue
		}
		if !table.HasHeader(header) {
			return fmt.Errorf("mapped column %q for %s not found in file", header, field)
		}
	}
	return nil
}
