package types

// RenameStatus is the result of processing a single mapping row
type RenameStatus string

const (
	// StatusRenamed means the source existed and was moved to the new name
	StatusRenamed RenameStatus = "renamed"
	// StatusNotFound means the source did not exist; nothing was touched
	StatusNotFound RenameStatus = "not_found"
	// StatusFailed means the row was malformed or the rename itself failed
	StatusFailed RenameStatus = "failed"
)

// RenameOutcome records what happened to one mapping row
type RenameOutcome struct {
	Row     MappingRow   `json:"row"`
	OldPath string       `json:"oldPath,omitempty"`
	NewPath string       `json:"newPath,omitempty"`
	Status  RenameStatus `json:"status"`
	Err     error        `json:"-"`
}

// RenameResult holds the result of a rename run
type RenameResult struct {
	MappingPath   string          `json:"mappingPath"`
	BaseDirectory string          `json:"baseDirectory"`
	Outcomes      []RenameOutcome `json:"outcomes"`
	Renamed       int             `json:"renamed"`
	NotFound      int             `json:"notFound"`
	Failed        int             `json:"failed"`
}

// Add appends an outcome and updates the counters
func (r *RenameResult) Add(outcome RenameOutcome) {
	r.Outcomes = append(r.Outcomes, outcome)
	switch outcome.Status {
	case StatusRenamed:
		r.Renamed++
	case StatusNotFound:
		r.NotFound++
	case StatusFailed:
		r.Failed++
	}
}

// Rows returns the number of mapping rows processed
func (r *RenameResult) Rows() int {
	return len(r.Outcomes)
}

// HasProblems reports whether any row was not renamed
func (r *RenameResult) HasProblems() bool {
	return r.NotFound > 0 || r.Failed > 0
}

// GenConfigResult holds the result of the genconfig command
type GenConfigResult struct {
	ConfigContent string   `json:"configContent"`
	FilesWritten  []string `json:"filesWritten"`
}
