package report

import (
	"github.com/arthur-debert/csvmv/pkg/types"
)

// Recorder keeps every outcome in memory
type Recorder struct {
	Outcomes []types.RenameOutcome
}

// Report implements types.Reporter
func (r *Recorder) Report(o types.RenameOutcome) {
	r.Outcomes = append(r.Outcomes, o)
}

// Lines returns the text line of every recorded outcome with the given status.
// With no status given, all lines are returned.
func (r *Recorder) Lines(statuses ...types.RenameStatus) []string {
	var lines []string
	for _, o := range r.Outcomes {
		if len(statuses) == 0 || hasStatus(statuses, o.Status) {
			lines = append(lines, Line(o))
		}
	}
	return lines
}

func hasStatus(statuses []types.RenameStatus, status types.RenameStatus) bool {
	for _, s := range statuses {
		if s == status {
			return true
		}
	}
	return false
}
