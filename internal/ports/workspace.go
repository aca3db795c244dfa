package ports

import "github.com/nadza/Yahtzee/internal/domain"

// WorkspaceInitializer scaffolds yahtzee.yaml and the data directories.
type WorkspaceInitializer interface {
	Init(spec domain.WorkspaceSpec, force bool) (domain.InitReport, error)
}
