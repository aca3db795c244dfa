package domain

import (
	"sort"
	"time"
)

// HighScore is one entry of the high-score table.
type HighScore struct {
	Name  string
	Score int
}

// SortHighScores orders entries by score, highest first. Equal scores keep
// their insertion order.
func SortHighScores(in []HighScore) {
	sort.SliceStable(in, func(i, j int) bool { return in[i].Score > in[j].Score })
}

// HighScoresFromSession lists every player's final total in seat order.
func HighScoresFromSession(s *Session) []HighScore {
	players := s.Players()
	out := make([]HighScore, 0, len(players))
	for _, p := range players {
		out = append(out, HighScore{Name: p.Name, Score: p.Card.FinalTotal()})
	}
	return out
}

// SaveSlot identifies a stored game.
type SaveSlot struct {
	Number  int
	Path    string
	Players []string
	ModTime time.Time
}

// SavedGame is the persisted form of a session: names plus raw cards in
// seat order.
type SavedGame struct {
	Players []SavedPlayer
}

type SavedPlayer struct {
	Name  string
	Cards [FieldCount]int
}

// SnapshotSession captures the persisted form of s.
func SnapshotSession(s *Session) SavedGame {
	players := s.Players()
	out := SavedGame{Players: make([]SavedPlayer, 0, len(players))}
	for _, p := range players {
		out.Players = append(out.Players, SavedPlayer{Name: p.Name, Cards: p.Card.Raw()})
	}
	return out
}

// PlayersFromSave rebuilds seats from a save. isBot decides which names are
// automated players, since the save format stores names only.
func PlayersFromSave(g SavedGame, isBot func(name string) bool) ([]Player, error) {
	out := make([]Player, 0, len(g.Players))
	for _, sp := range g.Players {
		card, err := CardFromRaw(sp.Cards)
		if err != nil {
			return nil, err
		}
		bot := false
		if isBot != nil {
			bot = isBot(sp.Name)
		}
		out = append(out, Player{Name: sp.Name, Bot: bot, Card: card})
	}
	return out, nil
}

// GameRecord is an archived finished game.
type GameRecord struct {
	ID         string
	FinishedAt time.Time
	Players    []HighScore
	Winners    []string
}
