package genconfig

// Message constants
const (
	MsgShort   = "Generate a commented configuration file"
	MsgLong    = "Output the effective configuration with every value commented out.\n\nWith -w, write it to the user config file instead, unless that file already exists."
	MsgExample = `  csvmv genconfig                      # Output to stdout
  csvmv genconfig -w                   # Write to $XDG_CONFIG_HOME/csvmv/config.toml
  csvmv genconfig --delimiter ';' -w   # Persist a different delimiter`
)
