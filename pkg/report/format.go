package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format selects how outcomes are rendered
type Format string

const (
	// FormatAuto picks FormatTerminal or FormatText from the destination
	FormatAuto Format = "auto"
	// FormatTerminal is the text lines, colored
	FormatTerminal Format = "term"
	// FormatText is the text lines, uncolored
	FormatText Format = "text"
	// FormatJSON is one JSON object per outcome
	FormatJSON Format = "json"
)

var formatNames = map[string]Format{
	"":         FormatAuto,
	"auto":     FormatAuto,
	"term":     FormatTerminal,
	"terminal": FormatTerminal,
	"text":     FormatText,
	"plain":    FormatText,
	"json":     FormatJSON,
}

func (f Format) String() string {
	return string(f)
}

// ParseFormat accepts a format name or alias, case-insensitively
func ParseFormat(s string) (Format, error) {
	if f, ok := formatNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return f, nil
	}
	return FormatAuto, fmt.Errorf("unknown format %q (want auto, term, text or json)", s)
}

// Resolve turns FormatAuto into a concrete format for out. Writers that
// are not files never get color.
func (f Format) Resolve(out io.Writer) Format {
	if f != FormatAuto {
		return f
	}
	if file, ok := out.(*os.File); ok {
		return DetectFormat(file)
	}
	return FormatText
}

// DetectFormat returns FormatTerminal when output is a color-capable
// terminal and NO_COLOR is unset, FormatText otherwise
func DetectFormat(output *os.File) Format {
	fd := output.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return FormatText
	}

	term := termenv.NewOutput(output)
	if term.EnvNoColor() || term.EnvColorProfile() == termenv.Ascii {
		return FormatText
	}
	return FormatTerminal
}
