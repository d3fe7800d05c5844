// Package cli provides the command-line interface for curriculum-gen.
package cli

import (
	"github.com/example/curriculum-gen/internal/logger"
	"github.com/spf13/cobra"
)

// Execute creates and runs the root command.
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds the command tree. Running it without a subcommand
// generates the catalog.
func NewRootCommand() *cobra.Command {
	var config GenerateConfig

	rootCmd := &cobra.Command{
		Use:   "curriculum-gen",
		Short: "Generate a topic catalog from a numbered curriculum outline",
		Long: `Reads a plain-text outline of numbered topics, each optionally followed by a
"Prerequisites: ..." line, and writes a catalog of topic records with derived
ids, levels, folder paths and lesson placeholders.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log, err := newLogger(config.Verbose)
			if err != nil {
				return err
			}
			defer log.Sync()
			return GenerateCatalog(&config, log, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&config.Verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.Flags().StringVarP(&config.InputPath, "input", "i", defaultInput, "Outline document to read")
	rootCmd.Flags().StringVarP(&config.OutputPath, "output", "o", defaultOutput, "Path to output file or '-' for stdout")
	rootCmd.Flags().StringVarP(&config.Format, "format", "f", defaultFormat, "Output format: json or yaml")
	rootCmd.Flags().StringVar(&config.ConfigPath, "config", "", "Path to a YAML config file")
	rootCmd.Flags().BoolVar(&config.Strict, "strict", false, "Fail when two topics share an id")

	rootCmd.AddCommand(newValidateCommand(&config.Verbose))

	return rootCmd
}

func newLogger(verbose bool) (*logger.Logger, error) {
	level := "warn"
	if verbose {
		level = "debug"
	}
	return logger.New("dev", level)
}
