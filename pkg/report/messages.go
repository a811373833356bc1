package report

import (
	"fmt"

	"github.com/arthur-debert/csvmv/pkg/types"
)

// Line formats. Renamed and NotFound are relied upon by scripts; keep them stable.
const (
	MsgRenamed  = "Renamed '%s' to '%s'!"
	MsgNotFound = "File '%s' not found!"
	MsgFailed   = "Failed to rename row %d [%s]: %v"
)

// Line returns the text line for an outcome
func Line(o types.RenameOutcome) string {
	switch o.Status {
	case types.StatusRenamed:
		return fmt.Sprintf(MsgRenamed, o.OldPath, o.NewPath)
	case types.StatusNotFound:
		return fmt.Sprintf(MsgNotFound, o.OldPath)
	default:
		return fmt.Sprintf(MsgFailed, o.Row.Line, o.Row.String(), o.Err)
	}
}
