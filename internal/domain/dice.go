package domain

import (
	"fmt"
	"math/rand"
)

const (
	// DiceCount is the number of dice in a hand.
	DiceCount = 5
	// DieSides is the number of faces on each die.
	DieSides = 6
	// MaxRolls is the number of rolls a player may take per turn.
	MaxRolls = 3
)

// Source is the randomness provider for dice rolls.
type Source interface {
	// IntN returns a non-negative random int in [0, n).
	IntN(n int) int
}

// DefaultSource returns a Source backed by math/rand's global generator.
func DefaultSource() Source { return globalSource{} }

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.Intn(n) }

// Die is a single six-sided die with a held flag.
type Die struct {
	face int
	held bool
}

func (d Die) Face() int  { return d.face }
func (d Die) Held() bool { return d.held }

func (d *Die) roll(src Source) {
	if d.held {
		return
	}
	d.face = src.IntN(DieSides) + 1
}

// DiceSet is the five dice shared by every player of a session.
type DiceSet struct {
	dice [DiceCount]Die
}

// NewDiceSet returns a set showing all ones with nothing held.
func NewDiceSet() *DiceSet {
	ds := &DiceSet{}
	for i := range ds.dice {
		ds.dice[i].face = 1
	}
	return ds
}

// RollUnheld rerolls every die that is not held.
func (ds *DiceSet) RollUnheld(src Source) [DiceCount]int {
	for i := range ds.dice {
		ds.dice[i].roll(src)
	}
	return ds.Faces()
}

// SetHeld holds or releases the die at index i (0-based).
func (ds *DiceSet) SetHeld(i int, held bool) error {
	if i < 0 || i >= DiceCount {
		return opErr("dice.set_held", KindInvalidIndex, fmt.Errorf("die %d: %w", i, ErrInvalidIndex))
	}
	ds.dice[i].held = held
	return nil
}

// ResetHold releases every die.
func (ds *DiceSet) ResetHold() {
	for i := range ds.dice {
		ds.dice[i].held = false
	}
}

// Faces returns the current face values; position matches the physical die.
func (ds *DiceSet) Faces() [DiceCount]int {
	var out [DiceCount]int
	for i, d := range ds.dice {
		out[i] = d.face
	}
	return out
}

// Held reports the held flag of every die.
func (ds *DiceSet) Held() [DiceCount]bool {
	var out [DiceCount]bool
	for i, d := range ds.dice {
		out[i] = d.held
	}
	return out
}

// Die returns a copy of the die at index i.
func (ds *DiceSet) Die(i int) (Die, error) {
	if i < 0 || i >= DiceCount {
		return Die{}, opErr("dice.get", KindInvalidIndex, fmt.Errorf("die %d: %w", i, ErrInvalidIndex))
	}
	return ds.dice[i], nil
}
