package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nadza/Yahtzee/internal/domain"
	"github.com/nadza/Yahtzee/internal/printer"
)

func historyCmd(opts *rootOptions) *cobra.Command {
	var limit int

	c := &cobra.Command{
		Use:   "history",
		Short: "List finished games, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := printer.New(cmd.OutOrStdout(), cmd.ErrOrStderr())

			ws, err := loadWorkspace(cmd.Context(), opts.workspace)
			if err != nil {
				return explain(p, err)
			}
			defer ws.close()

			st, err := ws.openArchive(cmd.Context())
			if err != nil {
				return explain(p, err)
			}
			recs, err := st.Recent(cmd.Context(), limit)
			if err != nil {
				return explain(p, err)
			}
			if len(recs) == 0 {
				p.Info("(no finished games)\n")
				return nil
			}
			for _, r := range recs {
				printRecord(p.Out(), r)
			}
			return nil
		},
	}

	c.Flags().IntVarP(&limit, "limit", "n", 10, "Number of games to show")
	return c
}

func printRecord(w io.Writer, r domain.GameRecord) {
	id := r.ID
	if len(id) > 8 {
		id = id[:8]
	}
	fmt.Fprintf(w, "%s  %s  winner: %s\n", id, r.FinishedAt.Local().Format("2006-01-02 15:04"), strings.Join(r.Winners, ", "))
	for _, p := range r.Players {
		fmt.Fprintf(w, "    %-20s %d\n", p.Name, p.Score)
	}
}
