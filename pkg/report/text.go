package report

import (
	"fmt"
	"io"

	"github.com/arthur-debert/csvmv/pkg/report/styles"
	"github.com/arthur-debert/csvmv/pkg/types"
)

// Text writes one line per outcome: renames to out, everything else to errOut
type Text struct {
	out    io.Writer
	errOut io.Writer
	styled bool
}

// NewText creates a text reporter. When styled is set, lines are colored
// with the Renamed, NotFound and Failed styles.
func NewText(out, errOut io.Writer, styled bool) *Text {
	return &Text{out: out, errOut: errOut, styled: styled}
}

// Report implements types.Reporter
func (t *Text) Report(o types.RenameOutcome) {
	w := t.errOut
	if o.Status == types.StatusRenamed {
		w = t.out
	}

	line := Line(o)
	if t.styled {
		line = styles.ForStatus(o.Status).Render(line)
	}
	_, _ = fmt.Fprintln(w, line)
}
