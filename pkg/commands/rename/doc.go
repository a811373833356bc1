// Package rename implements the bulk rename command.
//
// RenameFiles walks the mapping rows in file order. For each row it joins
// the old name onto the base directory; if that path exists it is renamed
// to the joined new name, otherwise a not-found outcome is reported and
// nothing is touched. Malformed rows and failed renames are reported and
// skipped; only a mapping file that cannot be read stops the run, and it
// does so before any rename happens.
//
// An existing entry at the new path is replaced when the platform's rename
// allows it. No collision check is made.
package rename
