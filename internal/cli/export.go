package cli

import (
	"github.com/spf13/cobra"

	"github.com/mmynk/projectbook/internal/storage/jsonfile"
)

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the project book as JSON",
		Long: `Write the book in the JSON data file format, to stdout or to a file.
This also converts a SQLite book into a JSON one.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, rootOpts, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write to this file instead of stdout")
	return cmd
}

func runExport(cmd *cobra.Command, opts *RootOptions, output string) error {
	sess, err := newSession(opts, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	svc, err := sess.open(cmd.Context())
	if err != nil {
		return err
	}
	defer svc.Close()

	snap := svc.Snapshot()
	if output != "" {
		if err := jsonfile.New(output).Save(cmd.Context(), snap); err != nil {
			return WrapExitError(ExitCommandError, "failed to export", err)
		}
		sess.logger.Info("Project book exported", "path", output, "persons", len(snap.Persons))
		return nil
	}

	data, err := jsonfile.Encode(snap)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to export", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
