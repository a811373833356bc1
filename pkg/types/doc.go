// Package types defines the core types and interfaces used throughout csvmv.
// This includes the FS and Reporter interfaces, as well as data structures
// like MappingRow, RenameOutcome and RenameResult.
package types
