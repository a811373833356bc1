package mapping

// Options controls how a mapping table is read
type Options struct {
	// Delimiter separates columns in CSV input. Zero means ','.
	Delimiter rune

	// Comment, if non-zero, marks lines to skip in CSV input.
	Comment rune

	// TrimSpace trims surrounding whitespace from old and new names.
	TrimSpace bool

	// Sheet selects the worksheet of an .xlsx mapping. Empty means the first sheet.
	Sheet string
}

func (o Options) delimiter() rune {
	if o.Delimiter == 0 {
		return ','
	}
	return o.Delimiter
}
