package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

// NewExecCommand creates the exec command.
func NewExecCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exec <command>...",
		Short: "Run a single command against the project book",
		Long: `Run one command and save the book.

The arguments are joined with spaces and parsed exactly as a line typed into
the REPL. Put -- before a command that contains words starting with a dash.`,
		Example: `  projectbook exec add volunteer n/Alice Tan e/alice@example.com
  projectbook exec project assign 1 project/Website Revamp`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExec(cmd, rootOpts, strings.Join(args, " "))
		},
	}
	return cmd
}

func runExec(cmd *cobra.Command, opts *RootOptions, input string) error {
	sess, err := newSession(opts, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	svc, err := sess.open(cmd.Context())
	if err != nil {
		return err
	}
	defer svc.Close()

	res, err := svc.Execute(cmd.Context(), input)
	if err != nil {
		return &ExitError{Code: exitCodeFor(err), Message: err.Error()}
	}
	printResult(cmd.OutOrStdout(), svc, res)
	return nil
}
