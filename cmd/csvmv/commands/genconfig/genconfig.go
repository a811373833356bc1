package genconfig

import (
	"github.com/spf13/cobra"
)

// NewCommand creates the genconfig command
// The run function is attached by the root command, which owns config loading
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "genconfig",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		Args:    cobra.NoArgs,
		GroupID: "misc",
	}

	cmd.Flags().BoolP("write", "w", false, "Write config to the user config file instead of stdout")

	return cmd
}
