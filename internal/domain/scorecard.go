package domain

import (
	"fmt"
)

// SlotState is the resolution state of one scorecard field.
type SlotState uint8

const (
	SlotUnset SlotState = iota
	SlotComputed
	// SlotNoBonus marks the bonus field as evaluated with nothing earned.
	SlotNoBonus
)

// Raw sentinels used at the persistence boundary.
const (
	RawUnset   = -1
	RawNoBonus = -2
)

// Slot is one field of a scorecard.
type Slot struct {
	state SlotState
	value int
}

func (s Slot) State() SlotState { return s.state }

// Value is the stored points; Unset and NoBonus count as zero.
func (s Slot) Value() int {
	if s.state != SlotComputed {
		return 0
	}
	return s.value
}

// Resolved reports whether the slot has been written or derived.
func (s Slot) Resolved() bool { return s.state != SlotUnset }

// ScoreCard is one player's 18 fields. Scorable fields are write-once;
// derived fields are only ever set by RecomputeDerived.
type ScoreCard struct {
	slots [FieldCount]Slot
}

func NewScoreCard() *ScoreCard {
	return &ScoreCard{}
}

// Slot returns the field for c. Out-of-range categories return an Unset slot.
func (sc *ScoreCard) Slot(c Category) Slot {
	if !c.Valid() {
		return Slot{}
	}
	return sc.slots[c]
}

// Value returns the points stored in c (0 when unresolved).
func (sc *ScoreCard) Value(c Category) int { return sc.Slot(c).Value() }

// IsSet reports whether c is resolved.
func (sc *ScoreCard) IsSet(c Category) bool { return sc.Slot(c).Resolved() }

// FinalTotal is the grand total, 0 until derived.
func (sc *ScoreCard) FinalTotal() int { return sc.Value(GrandTotal) }

// Commit locks value into the scorable field c.
func (sc *ScoreCard) Commit(c Category, value int) error {
	const op = "scorecard.commit"
	if !c.Valid() {
		return opErr(op, KindInvalidIndex, fmt.Errorf("field %d: %w", int(c), ErrInvalidIndex))
	}
	if !c.IsDirectlyScorable() {
		return opErr(op, KindInvalidField, fmt.Errorf("%s: %w", c, ErrInvalidField))
	}
	if value < 0 {
		return opErr(op, KindInvalidField, fmt.Errorf("%s: negative value %d: %w", c, value, ErrInvalidField))
	}
	if sc.slots[c].Resolved() {
		return opErr(op, KindFieldAlreadySet, fmt.Errorf("%s: %w", c, ErrFieldAlreadySet))
	}

	sc.slots[c] = Slot{state: SlotComputed, value: value}
	return nil
}

// ApplyYahtzeeBonus adds bonus to a locked nonzero Yahtzee. A lower total
// that was already derived absorbs the bonus too, so it keeps matching the
// fields it sums.
func (sc *ScoreCard) ApplyYahtzeeBonus(bonus int) error {
	const op = "scorecard.yahtzee_bonus"
	y := sc.slots[Yahtzee]
	if y.state != SlotComputed || y.value == 0 {
		return opErr(op, KindInvalidField, fmt.Errorf("yahtzee bonus needs a locked nonzero yahtzee: %w", ErrInvalidField))
	}
	if bonus <= 0 {
		return opErr(op, KindInvalidField, fmt.Errorf("bonus must be positive, got %d: %w", bonus, ErrInvalidField))
	}

	sc.slots[Yahtzee].value += bonus
	if sc.slots[LowerTotal].state == SlotComputed {
		sc.slots[LowerTotal].value += bonus
	}
	return nil
}

// HasLockedYahtzee reports whether the Yahtzee field holds a nonzero score.
func (sc *ScoreCard) HasLockedYahtzee() bool {
	y := sc.slots[Yahtzee]
	return y.state == SlotComputed && y.value > 0
}

// RecomputeDerived resolves every derived field whose prerequisites are
// satisfied, in dependency order. It returns the fields newly resolved and
// is a no-op once nothing else is derivable.
func (sc *ScoreCard) RecomputeDerived(rules Rules) []Category {
	rules = rules.withDefaults()
	var derived []Category

	if !sc.slots[UpperSubtotal].Resolved() && sc.allResolved(UpperCategories) {
		sc.slots[UpperSubtotal] = Slot{state: SlotComputed, value: sc.sum(UpperCategories)}
		derived = append(derived, UpperSubtotal)
	}

	if !sc.slots[Bonus].Resolved() && sc.slots[UpperSubtotal].Resolved() {
		if !rules.LegacyBonus && sc.slots[UpperSubtotal].value >= rules.BonusThreshold {
			sc.slots[Bonus] = Slot{state: SlotComputed, value: rules.BonusValue}
		} else {
			sc.slots[Bonus] = Slot{state: SlotNoBonus}
		}
		derived = append(derived, Bonus)
	}

	if !sc.slots[UpperTotal].Resolved() && sc.slots[UpperSubtotal].Resolved() {
		total := sc.slots[UpperSubtotal].value + sc.slots[Bonus].Value()
		sc.slots[UpperTotal] = Slot{state: SlotComputed, value: total}
		derived = append(derived, UpperTotal)
	}

	if !sc.slots[LowerTotal].Resolved() && sc.allResolved(LowerCategories) {
		sc.slots[LowerTotal] = Slot{state: SlotComputed, value: sc.sum(LowerCategories)}
		derived = append(derived, LowerTotal)
	}

	if !sc.slots[GrandTotal].Resolved() && sc.slots[UpperTotal].Resolved() && sc.slots[LowerTotal].Resolved() {
		total := sc.slots[UpperTotal].value + sc.slots[LowerTotal].value
		sc.slots[GrandTotal] = Slot{state: SlotComputed, value: total}
		derived = append(derived, GrandTotal)
	}

	return derived
}

// IsComplete reports whether all 18 fields are resolved.
func (sc *ScoreCard) IsComplete() bool {
	for _, s := range sc.slots {
		if !s.Resolved() {
			return false
		}
	}
	return true
}

// EmptyFields marks every field that is still Unset.
func (sc *ScoreCard) EmptyFields() [FieldCount]bool {
	var out [FieldCount]bool
	for i, s := range sc.slots {
		out[i] = !s.Resolved()
	}
	return out
}

// OpenCategories lists the scorable fields still Unset, in card order.
func (sc *ScoreCard) OpenCategories() []Category {
	var out []Category
	for _, c := range ScorableCategories() {
		if !sc.slots[c].Resolved() {
			out = append(out, c)
		}
	}
	return out
}

// Raw returns the card as 18 ints using the RawUnset/RawNoBonus sentinels.
func (sc *ScoreCard) Raw() [FieldCount]int {
	var out [FieldCount]int
	for i, s := range sc.slots {
		switch s.state {
		case SlotUnset:
			out[i] = RawUnset
		case SlotNoBonus:
			out[i] = RawNoBonus
		default:
			out[i] = s.value
		}
	}
	return out
}

// CardFromRaw rebuilds a card from its raw form. Sentinels must sit where
// they are legal and no derived field may be resolved ahead of its inputs.
func CardFromRaw(raw [FieldCount]int) (*ScoreCard, error) {
	const op = "scorecard.from_raw"
	sc := NewScoreCard()

	for i, v := range raw {
		c := Category(i)
		switch {
		case v == RawUnset:
			sc.slots[i] = Slot{}
		case v == RawNoBonus:
			if c != Bonus {
				return nil, opErr(op, KindMalformedSave, fmt.Errorf("%s: no-bonus marker outside bonus field: %w", c, ErrMalformedSave))
			}
			sc.slots[i] = Slot{state: SlotNoBonus}
		case v < 0:
			return nil, opErr(op, KindMalformedSave, fmt.Errorf("%s: invalid value %d: %w", c, v, ErrMalformedSave))
		default:
			sc.slots[i] = Slot{state: SlotComputed, value: v}
		}
	}

	prereqs := map[Category][]Category{
		UpperSubtotal: UpperCategories,
		Bonus:         {UpperSubtotal},
		UpperTotal:    {UpperSubtotal},
		LowerTotal:    LowerCategories,
		GrandTotal:    {UpperTotal, LowerTotal},
	}
	for derived, needs := range prereqs {
		if sc.slots[derived].Resolved() && !sc.allResolved(needs) {
			return nil, opErr(op, KindMalformedSave, fmt.Errorf("%s resolved before its inputs: %w", derived, ErrMalformedSave))
		}
	}

	return sc, nil
}

// Clone returns an independent copy.
func (sc *ScoreCard) Clone() *ScoreCard {
	cp := *sc
	return &cp
}

func (sc *ScoreCard) allResolved(cats []Category) bool {
	for _, c := range cats {
		if !sc.slots[c].Resolved() {
			return false
		}
	}
	return true
}

func (sc *ScoreCard) sum(cats []Category) int {
	total := 0
	for _, c := range cats {
		total += sc.slots[c].Value()
	}
	return total
}
