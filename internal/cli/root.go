// Package cli implements the projectbook command line.
package cli

import (
	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands. Empty values leave the
// preferences file and environment in charge.
type RootOptions struct {
	PrefsPath string
	DataFile  string
	Backend   string
	Verbose   bool
}

// NewRootCommand creates the root command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "projectbook",
		Short: "Track volunteers, team members and partners across projects",
		Long: `projectbook keeps a book of contacts (volunteers, committee members and
members of partner organisations) and the projects they work on.

Run "projectbook repl" for an interactive session or "projectbook exec" to run
a single command.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.PrefsPath, "prefs", "preferences.yaml", "preferences file")
	cmd.PersistentFlags().StringVar(&opts.DataFile, "data", "", "data file (overrides preferences)")
	cmd.PersistentFlags().StringVar(&opts.Backend, "backend", "", "storage backend: json|sqlite (overrides preferences)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging")

	cmd.AddCommand(NewExecCommand(opts))
	cmd.AddCommand(NewReplCommand(opts))
	cmd.AddCommand(NewExportCommand(opts))
	cmd.AddCommand(NewPrefsCommand(opts))

	return cmd
}
