package cli

import (
	"github.com/example/curriculum-gen/internal/validator"
	"github.com/spf13/cobra"
)

func newValidateCommand(verbose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [catalog]",
		Short: "Check a generated catalog file",
		Long: `Reads a JSON or YAML catalog and checks its version, the derived fields of
every topic, and that topic ids are unique. Defaults to curriculum.json.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultOutput
			if len(args) == 1 {
				path = args[0]
			}

			log, err := newLogger(*verbose)
			if err != nil {
				return err
			}
			defer log.Sync()

			report, err := validator.ValidateFile(path)
			if report != nil {
				report.Print(cmd.OutOrStdout())
			}
			if err != nil {
				log.Debug("catalog rejected", "path", path, "error", err)
				return err
			}
			log.Debug("catalog accepted", "path", path, "topics", report.Topics)
			return nil
		},
	}
}
