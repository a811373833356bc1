// Package testutil provides utilities for testing csvmv components.
//
// Key components:
//   - TestEnvironment: a base directory plus a mapping directory on either
//     an in-memory filesystem (EnvMemoryOnly) or a temp dir (EnvIsolated)
//   - FaultyFS: a types.FS wrapper that injects errors per operation and
//     path, and counts mutations
//
// Usage guidelines:
//   - Prefer EnvMemoryOnly; use EnvIsolated when real rename(2) semantics matter
//   - All test data should be defined inline, not in external files
package testutil
