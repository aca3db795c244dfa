package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nadza/Yahtzee/internal/domain"
	"github.com/nadza/Yahtzee/internal/printer"
)

// explain prints err in the title/explanation/suggestions layout and
// returns the short error cobra reports.
func explain(p *printer.Printer, err error) error {
	if err == nil {
		return nil
	}

	var oe *domain.OpError
	if !errors.As(err, &oe) {
		return p.Error("command failed", err.Error(), nil)
	}

	switch {
	case oe.Kind == domain.KindNotFound && strings.HasPrefix(oe.Op, "savestore"):
		return p.Error("saved game not found",
			fmt.Sprintf("No game is stored in %s.", oe.Path),
			[]string{"List the saved games with `yahtzee saves list`"})

	case oe.Kind == domain.KindNotFound && strings.HasPrefix(oe.Op, "workspace"):
		return p.Error("workspace not found",
			fmt.Sprintf("%s is not a directory.", oe.Path),
			[]string{"Pass an existing directory to --workspace", "Create one with `yahtzee init --path DIR`"})

	case oe.Kind == domain.KindMalformedSave:
		return p.Error("saved game is damaged", err.Error(),
			[]string{"Save files hold one name line and 18 numbers per player"})

	case oe.Kind == domain.KindInvalidIndex:
		return p.Error("slot out of range", err.Error(), nil)

	case oe.Kind == domain.KindInvalidConfig && errors.Is(err, domain.ErrInvalidPlayers):
		return p.Error("invalid players", err.Error(),
			[]string{"Use 2 to 10 unique, non-empty names, e.g. --players ana,ben"})

	case oe.Kind == domain.KindInvalidConfig:
		return p.Error("invalid configuration", err.Error(),
			[]string{"Check yahtzee.yaml and YAHTZEE_* environment variables"})
	}
	return p.Error("command failed", err.Error(), nil)
}
