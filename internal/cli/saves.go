package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nadza/Yahtzee/internal/domain"
	"github.com/nadza/Yahtzee/internal/printer"
	"github.com/nadza/Yahtzee/internal/ui/console"
	"github.com/nadza/Yahtzee/internal/usecase"
)

func savesCmd(opts *rootOptions) *cobra.Command {
	c := &cobra.Command{
		Use:   "saves",
		Short: "Inspect saved games",
	}

	c.AddCommand(savesListCmd(opts), savesShowCmd(opts), savesExportCmd(opts))
	return c
}

func savesListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved games",
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := printer.New(cmd.OutOrStdout(), cmd.ErrOrStderr())

			ws, err := loadWorkspace(cmd.Context(), opts.workspace)
			if err != nil {
				return explain(p, err)
			}
			defer ws.close()

			slots, err := ws.saves.List()
			if err != nil {
				return explain(p, err)
			}
			if len(slots) == 0 {
				p.Info("(no saved games)\n")
				return nil
			}

			p.Heading("Workspace: %s\n\n", ws.root)
			for _, s := range slots {
				p.Info("- Game %d  %s  (%s)\n", s.Number, strings.Join(s.Players, ", "), s.ModTime.Format("2006-01-02 15:04"))
			}
			return nil
		},
	}
}

func savesShowCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show SLOT",
		Short: "Print the score cards of a saved game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := printer.New(cmd.OutOrStdout(), cmd.ErrOrStderr())

			slot, err := parseSlot(args[0])
			if err != nil {
				return explain(p, err)
			}

			ws, err := loadWorkspace(cmd.Context(), opts.workspace)
			if err != nil {
				return explain(p, err)
			}
			defer ws.close()

			g, err := ws.saves.Load(slot)
			if err != nil {
				return explain(p, err)
			}
			for _, sp := range g.Players {
				card, err := domain.CardFromRaw(sp.Cards)
				if err != nil {
					return explain(p, err)
				}
				console.WriteCard(p.Out(), sp.Name, card)
			}
			return nil
		},
	}
}

func savesExportCmd(opts *rootOptions) *cobra.Command {
	var query string

	c := &cobra.Command{
		Use:   "export SLOT",
		Short: "Print a saved game as JSON",
		Example: `  yahtzee saves export 1
  yahtzee saves export 1 --query '$.players[*].final_total'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := printer.New(cmd.OutOrStdout(), cmd.ErrOrStderr())

			slot, err := parseSlot(args[0])
			if err != nil {
				return explain(p, err)
			}

			ws, err := loadWorkspace(cmd.Context(), opts.workspace)
			if err != nil {
				return explain(p, err)
			}
			defer ws.close()

			out, err := usecase.NewExportSave(ws.saves).Execute(slot, query)
			if err != nil {
				return explain(p, err)
			}
			p.Info("%s\n", out)
			return nil
		},
	}

	c.Flags().StringVarP(&query, "query", "q", "", "JSONPath expression applied to the export")
	return c
}

func parseSlot(arg string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || n < 1 {
		return 0, &domain.OpError{Op: "saves.slot", Kind: domain.KindInvalidIndex,
			Err: fmt.Errorf("slot %q must be a positive number: %w", arg, domain.ErrInvalidIndex)}
	}
	return n, nil
}
