package savestore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/nadza/Yahtzee/internal/domain"
	"github.com/nadza/Yahtzee/internal/ports"
)

const defaultSavesDir = "savedGames"

// SlotStore keeps games as <dir>/game_N.txt, N in 1..MaxSlots.
type SlotStore struct {
	dir      string
	maxSlots int
}

type Option func(*SlotStore)

// WithMaxSlots overrides the slot count from config.
func WithMaxSlots(n int) Option {
	return func(s *SlotStore) {
		if n > 0 {
			s.maxSlots = n
		}
	}
}

func NewSlotStore(root string, cfg domain.Config, opts ...Option) *SlotStore {
	dir := cfg.Paths.SavesDir
	if strings.TrimSpace(dir) == "" {
		dir = defaultSavesDir
	}
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(root, dir)
	}

	s := &SlotStore{dir: dir, maxSlots: cfg.Rules.MaxSaveSlots}
	if s.maxSlots <= 0 {
		s.maxSlots = domain.DefaultConfig().Rules.MaxSaveSlots
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.SaveStore = (*SlotStore)(nil)

func (s *SlotStore) Dir() string { return s.dir }

func (s *SlotStore) MaxSlots() int { return s.maxSlots }

func (s *SlotStore) slotPath(n int) string {
	return filepath.Join(s.dir, fmt.Sprintf("game_%d.txt", n))
}

// Save writes g to the first empty slot. With every slot taken, slot 1 is
// overwritten.
func (s *SlotStore) Save(g domain.SavedGame) (domain.SaveSlot, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return domain.SaveSlot{}, &domain.OpError{Op: "savestore.mkdir", Kind: domain.KindExecution, Path: s.dir, Err: err}
	}

	b, err := encodeBytes(g)
	if err != nil {
		return domain.SaveSlot{}, &domain.OpError{Op: "savestore.encode", Kind: domain.KindInvalidConfig, Err: err}
	}

	n := 1
	for i := 1; i <= s.maxSlots; i++ {
		if _, err := os.Stat(s.slotPath(i)); errors.Is(err, fs.ErrNotExist) {
			n = i
			break
		}
	}
	path := s.slotPath(n)

	// Atomic-ish write: tmp then rename.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return domain.SaveSlot{}, &domain.OpError{Op: "savestore.write", Kind: domain.KindExecution, Path: tmp, Err: err}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return domain.SaveSlot{}, &domain.OpError{Op: "savestore.rename", Kind: domain.KindExecution, Path: path, Err: err}
	}

	return s.describe(n, g)
}

// Load reads slot n.
func (s *SlotStore) Load(n int) (domain.SavedGame, error) {
	const op = "savestore.load"
	if n < 1 || n > s.maxSlots {
		return domain.SavedGame{}, &domain.OpError{Op: op, Kind: domain.KindInvalidIndex,
			Err: fmt.Errorf("slot %d outside 1..%d: %w", n, s.maxSlots, domain.ErrInvalidIndex)}
	}

	path := s.slotPath(n)
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.SavedGame{}, &domain.OpError{Op: op, Kind: domain.KindNotFound, Path: path,
				Err: fmt.Errorf("slot %d is empty: %w", n, domain.ErrNotFound)}
		}
		return domain.SavedGame{}, &domain.OpError{Op: op, Kind: domain.KindExecution, Path: path, Err: err}
	}
	defer f.Close()

	g, err := Decode(f)
	if err != nil {
		return domain.SavedGame{}, &domain.OpError{Op: op, Kind: domain.KindMalformedSave, Path: path, Err: err}
	}
	return g, nil
}

// List returns the occupied slots in slot order. Unreadable slots are
// listed without players.
func (s *SlotStore) List() ([]domain.SaveSlot, error) {
	var out []domain.SaveSlot
	for n := 1; n <= s.maxSlots; n++ {
		if _, err := os.Stat(s.slotPath(n)); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, &domain.OpError{Op: "savestore.list", Kind: domain.KindExecution, Path: s.slotPath(n), Err: err}
		}

		g, err := s.Load(n)
		if err != nil {
			g = domain.SavedGame{}
		}
		slot, err := s.describe(n, g)
		if err != nil {
			return nil, err
		}
		out = append(out, slot)
	}
	return out, nil
}

func (s *SlotStore) describe(n int, g domain.SavedGame) (domain.SaveSlot, error) {
	path := s.slotPath(n)
	info, err := os.Stat(path)
	if err != nil {
		return domain.SaveSlot{}, &domain.OpError{Op: "savestore.stat", Kind: domain.KindExecution, Path: path, Err: err}
	}

	names := make([]string, 0, len(g.Players))
	for _, p := range g.Players {
		names = append(names, p.Name)
	}
	return domain.SaveSlot{Number: n, Path: path, Players: names, ModTime: info.ModTime()}, nil
}
