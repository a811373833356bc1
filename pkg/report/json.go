package report

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/csvmv/pkg/types"
)

// JSON writes one JSON object per outcome (JSON Lines) to out
type JSON struct {
	encoder *json.Encoder
}

type jsonOutcome struct {
	Line    int                `json:"line"`
	Status  types.RenameStatus `json:"status"`
	Old     string             `json:"old"`
	New     string             `json:"new"`
	OldPath string             `json:"oldPath,omitempty"`
	NewPath string             `json:"newPath,omitempty"`
	Fields  []string           `json:"fields,omitempty"`
	Error   string             `json:"error,omitempty"`
	Message string             `json:"message"`
}

// NewJSON creates a JSON reporter
func NewJSON(out io.Writer) *JSON {
	return &JSON{encoder: json.NewEncoder(out)}
}

// Report implements types.Reporter
func (j *JSON) Report(o types.RenameOutcome) {
	record := jsonOutcome{
		Line:    o.Row.Line,
		Status:  o.Status,
		Old:     o.Row.Old,
		New:     o.Row.New,
		OldPath: o.OldPath,
		NewPath: o.NewPath,
		Message: Line(o),
	}
	if o.Status == types.StatusFailed {
		record.Fields = o.Row.Fields
	}
	if o.Err != nil {
		record.Error = o.Err.Error()
	}
	_ = j.encoder.Encode(record)
}
