package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/nadza/Yahtzee/internal/buildinfo"
	"github.com/nadza/Yahtzee/internal/printer"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type rootOptions struct {
	debug     bool
	workspace string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "yahtzee",
		Short:        "Yahtzee for 2 to 10 players, in the terminal",
		Version:      buildinfo.Version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return playTUI(cmd, opts, playFlags{})
		},
	}

	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable verbose logging to .yahtzee/logs/yahtzee.log")
	cmd.PersistentFlags().StringVarP(&opts.workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	cmd.SetVersionTemplate(buildinfo.String() + "\n")

	cmd.AddCommand(
		playCmd(opts),
		initCmd(),
		scoresCmd(opts),
		savesCmd(opts),
		historyCmd(opts),
		versionCmd(),
	)
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Run: func(cmd *cobra.Command, _ []string) {
			printer.New(cmd.OutOrStdout(), cmd.ErrOrStderr()).Info("%s\n", buildinfo.String())
		},
	}
}
