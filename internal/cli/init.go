package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nadza/Yahtzee/internal/domain"
	"github.com/nadza/Yahtzee/internal/infra/fsworkspace"
	"github.com/nadza/Yahtzee/internal/printer"
	"github.com/nadza/Yahtzee/internal/usecase"
)

func initCmd() *cobra.Command {
	var path string
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create yahtzee.yaml and the save/score directories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := printer.New(cmd.OutOrStdout(), cmd.ErrOrStderr())

			root, err := filepath.Abs(path)
			if err != nil {
				return explain(p, err)
			}

			uc := usecase.NewInitWorkspace(fsworkspace.NewInitializer())
			report, err := uc.Execute(root, domain.DefaultConfig(), force)
			if err != nil {
				return explain(p, err)
			}

			p.Success("Workspace ready at %s\n", report.Root)
			for _, f := range report.Created {
				p.Step("created %s\n", f)
			}
			for _, f := range report.Skipped {
				p.Info("  skipped %s (exists; use --force to overwrite)\n", f)
			}
			return nil
		},
	}

	c.Flags().StringVar(&path, "path", ".", "Directory to initialize")
	c.Flags().BoolVar(&force, "force", false, "Overwrite existing files")
	return c
}
