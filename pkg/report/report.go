package report

import (
	"io"

	"github.com/arthur-debert/csvmv/pkg/types"
)

// New creates the reporter for a format. JSON goes entirely to out; the
// text formats split lines between out and errOut.
func New(format Format, out, errOut io.Writer, noColor bool) types.Reporter {
	switch format.Resolve(out) {
	case FormatJSON:
		return NewJSON(out)
	case FormatTerminal:
		return NewText(out, errOut, !noColor)
	default:
		return NewText(out, errOut, false)
	}
}
