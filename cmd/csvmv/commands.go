package csvmv

import (
	"fmt"
	"os"

	"github.com/arthur-debert/csvmv/cmd/csvmv/commands/genconfig"
	"github.com/arthur-debert/csvmv/internal/version"
	genconfigcmd "github.com/arthur-debert/csvmv/pkg/commands/genconfig"
	"github.com/arthur-debert/csvmv/pkg/commands/rename"
	"github.com/arthur-debert/csvmv/pkg/config"
	"github.com/arthur-debert/csvmv/pkg/filesystem"
	"github.com/arthur-debert/csvmv/pkg/logging"
	"github.com/arthur-debert/csvmv/pkg/report"
	"github.com/arthur-debert/csvmv/pkg/report/styles"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// configFlags maps flags to the configuration keys they override
var configFlags = map[string]string{
	"delimiter":  "mapping.delimiter",
	"comment":    "mapping.comment",
	"trim-space": "mapping.trim_space",
	"sheet":      "mapping.sheet",
	"format":     "output.format",
	"no-color":   "output.no_color",
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	var (
		verbosity  int
		configPath string
	)

	rootCmd := &cobra.Command{
		Use:     "csvmv [flags] [mapping-file] [base-directory]",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.MaximumNArgs(2),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, configPath, args)
			if err != nil {
				return err
			}
			return runRename(cmd, cfg)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	flags.StringVar(&configPath, "config", "", MsgFlagConfig)
	flags.String("delimiter", ",", MsgFlagDelimiter)
	flags.String("comment", "", MsgFlagComment)
	flags.Bool("trim-space", false, MsgFlagTrimSpace)
	flags.String("sheet", "", MsgFlagSheet)
	flags.String("format", "auto", MsgFlagFormat)
	flags.Bool("no-color", false, MsgFlagNoColor)

	_ = rootCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"auto", "term", "text", "json"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	// Set custom help template
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newGenConfigCmd(&configPath))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// Main runs the CLI and returns the process exit code
func Main() int {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// Print the error in red
		errorStyle := styles.GetStyle("Error")
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		return 1
	}
	return 0
}

// loadConfig layers changed flags and positional arguments over the
// configuration files and environment
func loadConfig(cmd *cobra.Command, configPath string, args []string) (*config.Config, error) {
	overrides := make(map[string]interface{})
	for name, key := range configFlags {
		flag := cmd.Flags().Lookup(name)
		if flag == nil || !flag.Changed {
			continue
		}
		switch flag.Value.Type() {
		case "bool":
			v, _ := cmd.Flags().GetBool(name)
			overrides[key] = v
		default:
			overrides[key] = flag.Value.String()
		}
	}
	if len(args) > 0 {
		overrides["mapping_path"] = args[0]
	}
	if len(args) > 1 {
		overrides["base_directory"] = args[1]
	}

	cfg, err := config.LoadConfiguration(config.LoadOptions{
		ConfigPath: configPath,
		Overrides:  overrides,
	})
	if err != nil {
		return nil, fmt.Errorf(MsgErrLoadConfig, err)
	}
	return cfg, nil
}

func runRename(cmd *cobra.Command, cfg *config.Config) error {
	logger := logging.GetLogger("cmd.csvmv")

	fs := filesystem.NewOS()
	if err := cfg.Validate(fs); err != nil {
		return err
	}
	mappingOpts, err := cfg.MappingOptions()
	if err != nil {
		return err
	}
	format, err := report.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	logger.Info().
		Str("mapping", cfg.MappingPath).
		Str("base_directory", cfg.BaseDirectory).
		Str("format", format.String()).
		Msg("Starting rename")

	result, err := rename.RenameFiles(rename.RenameFilesOptions{
		MappingPath:   cfg.MappingPath,
		BaseDirectory: cfg.BaseDirectory,
		Mapping:       mappingOpts,
		FileSystem:    fs,
		Reporter:      report.New(format, cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg.Output.NoColor),
	})
	if err != nil {
		return fmt.Errorf(MsgErrRename, err)
	}

	// Row problems are reported per row and do not change the exit status
	event := logger.Info()
	if result.HasProblems() {
		event = logger.Warn()
	}
	event.
		Int("rows", result.Rows()).
		Int("renamed", result.Renamed).
		Int("not_found", result.NotFound).
		Int("failed", result.Failed).
		Msg("Rename finished")

	return nil
}

func newGenConfigCmd(configPath *string) *cobra.Command {
	cmd := genconfig.NewCommand()
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd, *configPath, nil)
		if err != nil {
			return err
		}
		write, _ := cmd.Flags().GetBool("write")

		result, err := genconfigcmd.GenConfig(genconfigcmd.GenConfigOptions{
			Config: cfg,
			Write:  write,
		})
		if err != nil {
			return fmt.Errorf(MsgErrGenConfig, err)
		}

		out := cmd.OutOrStdout()
		if !write {
			_, _ = fmt.Fprint(out, result.ConfigContent)
			return nil
		}
		if len(result.FilesWritten) == 0 {
			_, _ = fmt.Fprint(out, MsgConfigExists)
			return nil
		}
		for _, path := range result.FilesWritten {
			_, _ = fmt.Fprintf(out, MsgConfigWritten, path)
		}
		return nil
	}
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, MsgVersionFormat, version.Version)
			if version.Commit != "" {
				_, _ = fmt.Fprintf(out, MsgCommitFormat, version.Commit)
			}
			if version.Date != "" {
				_, _ = fmt.Fprintf(out, MsgBuiltFormat, version.Date)
			}
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
