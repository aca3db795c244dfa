package usecase

import (
	"github.com/nadza/Yahtzee/internal/domain"
	"github.com/nadza/Yahtzee/internal/ports"
)

type InitWorkspace struct {
	initializer ports.WorkspaceInitializer
}

func NewInitWorkspace(initializer ports.WorkspaceInitializer) *InitWorkspace {
	return &InitWorkspace{initializer: initializer}
}

// Execute scaffolds a workspace at root seeded with cfg.
func (uc *InitWorkspace) Execute(root string, cfg domain.Config, force bool) (domain.InitReport, error) {
	return uc.initializer.Init(domain.WorkspaceSpec{Root: root, Config: cfg}, force)
}
