package highscores

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/nadza/Yahtzee/internal/domain"
	"github.com/nadza/Yahtzee/internal/ports"
)

// FileStore keeps the leaderboard as alternating name and score lines,
// re-sorted highest first after every append.
type FileStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStore(root string, cfg domain.Config) *FileStore {
	path := cfg.Paths.HighScoresFile
	if strings.TrimSpace(path) == "" {
		path = domain.DefaultConfig().Paths.HighScoresFile
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(root, path)
	}
	return &FileStore{path: path}
}

var _ ports.HighScoreStore = (*FileStore)(nil)

func (s *FileStore) Path() string { return s.path }

func (s *FileStore) Append(_ context.Context, entries []domain.HighScore) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.read()
	if err != nil {
		return err
	}
	for _, e := range entries {
		name := strings.TrimSpace(e.Name)
		if name == "" || strings.ContainsAny(name, "\r\n") {
			return &domain.OpError{Op: "highscores.append", Kind: domain.KindInvalidConfig, Path: s.path,
				Err: fmt.Errorf("player name %q: %w", e.Name, domain.ErrInvalidPlayers)}
		}
		all = append(all, domain.HighScore{Name: name, Score: e.Score})
	}
	domain.SortHighScores(all)
	return s.write(all)
}

func (s *FileStore) Top(_ context.Context, limit int) ([]domain.HighScore, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.read()
	if err != nil {
		return nil, err
	}
	domain.SortHighScores(all)
	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (s *FileStore) read() ([]domain.HighScore, error) {
	const op = "highscores.read"
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, &domain.OpError{Op: op, Kind: domain.KindExecution, Path: s.path, Err: err}
	}
	defer f.Close()

	var out []domain.HighScore
	sc := bufio.NewScanner(f)
	line := 0
	for sc.Scan() {
		line++
		name := strings.TrimSpace(sc.Text())
		if name == "" {
			continue
		}
		if !sc.Scan() {
			return nil, &domain.OpError{Op: op, Kind: domain.KindMalformedSave, Path: s.path,
				Err: fmt.Errorf("line %d: %q has no score: %w", line, name, domain.ErrMalformedSave)}
		}
		line++
		score, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
		if err != nil {
			return nil, &domain.OpError{Op: op, Kind: domain.KindMalformedSave, Path: s.path,
				Err: fmt.Errorf("line %d: %w", line, domain.ErrMalformedSave)}
		}
		out = append(out, domain.HighScore{Name: name, Score: score})
	}
	if err := sc.Err(); err != nil {
		return nil, &domain.OpError{Op: op, Kind: domain.KindExecution, Path: s.path, Err: err}
	}
	return out, nil
}

func (s *FileStore) write(all []domain.HighScore) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return &domain.OpError{Op: "highscores.mkdir", Kind: domain.KindExecution, Path: s.path, Err: err}
	}

	var b strings.Builder
	for _, e := range all {
		fmt.Fprintf(&b, "%s\n%d\n", e.Name, e.Score)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, []byte(b.String()), 0o644); err != nil {
		return &domain.OpError{Op: "highscores.write", Kind: domain.KindExecution, Path: tmp, Err: err}
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return &domain.OpError{Op: "highscores.rename", Kind: domain.KindExecution, Path: s.path, Err: err}
	}
	return nil
}
