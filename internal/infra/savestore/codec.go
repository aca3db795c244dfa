package savestore

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nadza/Yahtzee/internal/domain"
)

// Encode writes g in the slot text format: for every player a name line
// followed by a line of 18 space-separated raw values.
func Encode(w io.Writer, g domain.SavedGame) error {
	bw := bufio.NewWriter(w)
	for _, p := range g.Players {
		if strings.ContainsAny(p.Name, "\r\n") || strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("player name %q cannot be saved: %w", p.Name, domain.ErrInvalidPlayers)
		}
		bw.WriteString(p.Name)
		bw.WriteByte('\n')
		for _, v := range p.Cards {
			bw.WriteString(strconv.Itoa(v))
			bw.WriteByte(' ')
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// Decode parses the slot text format. Blank trailing lines are ignored.
func Decode(r io.Reader) (domain.SavedGame, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return domain.SavedGame{}, err
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	if len(lines) == 0 {
		return domain.SavedGame{}, fmt.Errorf("empty save: %w", domain.ErrMalformedSave)
	}
	if len(lines)%2 != 0 {
		return domain.SavedGame{}, fmt.Errorf("player %q has no score line: %w", strings.TrimSpace(lines[len(lines)-1]), domain.ErrMalformedSave)
	}

	var g domain.SavedGame
	for i := 0; i < len(lines); i += 2 {
		name := strings.TrimSpace(lines[i])
		if name == "" {
			return domain.SavedGame{}, fmt.Errorf("line %d: empty player name: %w", i+1, domain.ErrMalformedSave)
		}

		fields := strings.Fields(lines[i+1])
		if len(fields) != domain.FieldCount {
			return domain.SavedGame{}, fmt.Errorf("line %d: want %d values, got %d: %w", i+2, domain.FieldCount, len(fields), domain.ErrMalformedSave)
		}

		var cards [domain.FieldCount]int
		for j, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return domain.SavedGame{}, fmt.Errorf("line %d: value %q: %w", i+2, f, domain.ErrMalformedSave)
			}
			cards[j] = v
		}
		if _, err := domain.CardFromRaw(cards); err != nil {
			return domain.SavedGame{}, fmt.Errorf("player %q: %w", name, err)
		}

		g.Players = append(g.Players, domain.SavedPlayer{Name: name, Cards: cards})
	}
	return g, nil
}

func encodeBytes(g domain.SavedGame) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, g); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
