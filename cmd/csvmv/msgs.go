package csvmv

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Rename files in a directory from a mapping table"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgVersionFormat = "csvmv version %s\n"
	MsgCommitFormat  = "Commit: %s\n"
	MsgBuiltFormat   = "Built:  %s\n"
	MsgConfigWritten = "Wrote configuration to %s\n"
	MsgConfigExists  = "Configuration file already exists, nothing written.\n"

	// Error messages
	MsgErrLoadConfig = "failed to load configuration: %w"
	MsgErrRename     = "failed to rename files: %w"
	MsgErrGenConfig  = "failed to generate configuration: %w"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig    = "Config file (TOML or YAML) layered over the user config"
	MsgFlagDelimiter = "Column delimiter of CSV mappings (a single character, \\t for tab)"
	MsgFlagComment   = "Skip CSV lines starting with this character"
	MsgFlagTrimSpace = "Trim whitespace around old and new names"
	MsgFlagSheet     = "Worksheet of an .xlsx mapping (default: first sheet)"
	MsgFlagFormat    = "Output format: auto, term, text or json (json writes every outcome to stdout)"
	MsgFlagNoColor   = "Disable colored output"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)
)
