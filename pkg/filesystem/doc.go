// Package filesystem provides the types.FS implementations used by csvmv.
//
// Both are thin adapters over spf13/afero: NewOS wraps afero's OsFs for the
// CLI and NewMemory wraps a MemMapFs for tests that never touch the disk.
package filesystem
