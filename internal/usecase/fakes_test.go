package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/nadza/Yahtzee/internal/domain"
)

// --- fakes shared by the usecase tests ---

// scriptedDice replays faces (1..6) in order, cycling when exhausted.
type scriptedDice struct {
	faces []int
	i     int
}

func (d *scriptedDice) IntN(n int) int {
	f := d.faces[d.i%len(d.faces)]
	d.i++
	return (f - 1) % n
}

func dice(f ...int) *scriptedDice { return &scriptedDice{faces: f} }

type memSaveStore struct {
	slots map[int]domain.SavedGame
	err   error
}

func newMemSaveStore() *memSaveStore {
	return &memSaveStore{slots: map[int]domain.SavedGame{}}
}

func (m *memSaveStore) Save(g domain.SavedGame) (domain.SaveSlot, error) {
	if m.err != nil {
		return domain.SaveSlot{}, m.err
	}
	n := len(m.slots) + 1
	m.slots[n] = g
	return domain.SaveSlot{Number: n, Path: fmt.Sprintf("game_%d.txt", n)}, nil
}

func (m *memSaveStore) Load(slot int) (domain.SavedGame, error) {
	g, ok := m.slots[slot]
	if !ok {
		return domain.SavedGame{}, &domain.OpError{Op: "mem.load", Kind: domain.KindNotFound, Err: domain.ErrNotFound}
	}
	return g, nil
}

func (m *memSaveStore) List() ([]domain.SaveSlot, error) {
	out := make([]domain.SaveSlot, 0, len(m.slots))
	for n := range m.slots {
		out = append(out, domain.SaveSlot{Number: n})
	}
	return out, nil
}

type memScores struct {
	entries []domain.HighScore
	err     error
}

func (m *memScores) Append(_ context.Context, entries []domain.HighScore) error {
	if m.err != nil {
		return m.err
	}
	m.entries = append(m.entries, entries...)
	return nil
}

func (m *memScores) Top(_ context.Context, limit int) ([]domain.HighScore, error) {
	out := append([]domain.HighScore(nil), m.entries...)
	domain.SortHighScores(out)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type memArchive struct {
	records []domain.GameRecord
	err     error
}

func (m *memArchive) Record(_ context.Context, rec domain.GameRecord) (domain.GameRecord, error) {
	if m.err != nil {
		return domain.GameRecord{}, m.err
	}
	rec.ID = fmt.Sprintf("game-%d", len(m.records)+1)
	m.records = append(m.records, rec)
	return rec, nil
}

func (m *memArchive) Recent(_ context.Context, limit int) ([]domain.GameRecord, error) {
	return m.records, nil
}

// completeCard fills every scorable field, putting extra on Chance.
func completeCard(t *testing.T, chance int) *domain.ScoreCard {
	t.Helper()
	card := domain.NewScoreCard()
	for _, c := range domain.ScorableCategories() {
		v := 0
		if c == domain.Chance {
			v = chance
		}
		if err := card.Commit(c, v); err != nil {
			t.Fatalf("commit %s: %v", c, err)
		}
	}
	card.RecomputeDerived(domain.DefaultRules())
	return card
}
