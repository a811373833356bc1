package types

import "strings"

// MappingRow is one record of the mapping table, read positionally as
// (Old, New). Extra columns are kept in Fields and otherwise ignored.
type MappingRow struct {
	// Line is the 1-based line number where the record starts
	Line int `json:"line"`

	Old string `json:"old"`
	New string `json:"new"`

	// Fields holds the raw record as read from the source
	Fields []string `json:"fields"`

	// Err is set when the record cannot be used as a mapping row
	Err error `json:"-"`
}

// Valid reports whether the row can be processed
func (r MappingRow) Valid() bool {
	return r.Err == nil
}

// String returns the raw record joined with commas
func (r MappingRow) String() string {
	return strings.Join(r.Fields, ",")
}
