// Package report turns rename outcomes into user-facing output.
//
// Every implementation satisfies types.Reporter, so the renamer never
// writes to the process streams itself. Text writes the classic one-line
// messages (renames to the output stream, problems to the error stream),
// JSON writes one object per outcome, and Recorder keeps everything in
// memory for tests.
package report
