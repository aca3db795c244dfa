package ports

import "github.com/nadza/Yahtzee/internal/domain"

// SaveStore persists games in numbered slots.
type SaveStore interface {
	// Save writes g to the first free slot, or overwrites slot 1 when every
	// slot is taken. It returns the slot used.
	Save(g domain.SavedGame) (domain.SaveSlot, error)
	Load(slot int) (domain.SavedGame, error)
	List() ([]domain.SaveSlot, error)
}
