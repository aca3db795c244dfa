package domain

import (
	"errors"
	"testing"
)

func TestDiceSet_RollUnheldRespectsHolds(t *testing.T) {
	ds := NewDiceSet()
	if got := ds.RollUnheld(faces(2, 3, 4, 5, 6)); got != [DiceCount]int{2, 3, 4, 5, 6} {
		t.Fatalf("first roll = %v", got)
	}

	if err := ds.SetHeld(2, true); err != nil {
		t.Fatalf("SetHeld: %v", err)
	}
	got := ds.RollUnheld(faces(1))
	if got != [DiceCount]int{1, 1, 4, 1, 1} {
		t.Fatalf("second roll = %v", got)
	}

	ds.ResetHold()
	if ds.Held() != ([DiceCount]bool{}) {
		t.Fatalf("holds not reset: %v", ds.Held())
	}
}

func TestDiceSet_DefaultSourceStaysInRange(t *testing.T) {
	ds := NewDiceSet()
	src := DefaultSource()
	for i := 0; i < 200; i++ {
		for _, f := range ds.RollUnheld(src) {
			if f < 1 || f > DieSides {
				t.Fatalf("face out of range: %d", f)
			}
		}
	}
}

func TestDiceSet_IndexBounds(t *testing.T) {
	ds := NewDiceSet()
	for _, i := range []int{-1, DiceCount} {
		if err := ds.SetHeld(i, true); !errors.Is(err, ErrInvalidIndex) {
			t.Fatalf("SetHeld(%d): expected ErrInvalidIndex, got %v", i, err)
		}
		if _, err := ds.Die(i); !errors.Is(err, ErrInvalidIndex) {
			t.Fatalf("Die(%d): expected ErrInvalidIndex, got %v", i, err)
		}
	}

	_ = ds.SetHeld(4, true)
	d, err := ds.Die(4)
	if err != nil {
		t.Fatalf("Die(4): %v", err)
	}
	if !d.Held() || d.Face() != 1 {
		t.Fatalf("die 4 = face %d held %v", d.Face(), d.Held())
	}
}
