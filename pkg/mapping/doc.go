// Package mapping reads the rename mapping table.
//
// A mapping table is a list of records read positionally as
// (old name, new name). There is no header row and extra columns are
// ignored. The table is usually CSV; spreadsheets (.xlsx) are read from
// the first two columns of one sheet.
//
// Problems confined to a single record (too few fields, an empty name, a
// CSV syntax error) never abort reading: they are attached to the row as
// MappingRow.Err so the caller can report them and move on. Only a failure
// to open or read the source as a whole is returned as an error.
package mapping
