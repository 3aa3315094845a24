package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// NewPrefsCommand creates the prefs command.
func NewPrefsCommand(rootOpts *RootOptions) *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Show the effective preferences",
		Long: `Print the preferences after applying the file, environment and flags.
With --write, save them to the preferences file.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			prefs, err := resolvePrefs(rootOpts, os.Getenv)
			if err != nil {
				return WrapExitError(ExitCommandError, "invalid preferences", err)
			}
			if write {
				if err := prefs.Save(rootOpts.PrefsPath); err != nil {
					return WrapExitError(ExitCommandError, "failed to save preferences", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Preferences saved to %s\n", rootOpts.PrefsPath)
				return nil
			}
			data, err := yaml.Marshal(prefs)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().BoolVar(&write, "write", false, "save to the preferences file")
	return cmd
}
