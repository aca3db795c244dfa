package cli

import (
	"github.com/spf13/cobra"

	"github.com/nadza/Yahtzee/internal/printer"
	"github.com/nadza/Yahtzee/internal/ui/console"
)

func scoresCmd(opts *rootOptions) *cobra.Command {
	var limit int

	c := &cobra.Command{
		Use:   "scores",
		Short: "Show the high score table",
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := printer.New(cmd.OutOrStdout(), cmd.ErrOrStderr())

			ws, err := loadWorkspace(cmd.Context(), opts.workspace)
			if err != nil {
				return explain(p, err)
			}
			defer ws.close()

			top, err := ws.scores.Top(cmd.Context(), limit)
			if err != nil {
				return explain(p, err)
			}
			if len(top) == 0 {
				p.Info("(no high scores yet)\n")
				return nil
			}
			console.WriteStandings(p.Out(), "HIGH SCORES", top)
			return nil
		},
	}

	c.Flags().IntVarP(&limit, "limit", "n", 10, "Number of entries to show (0 for all)")
	return c
}
