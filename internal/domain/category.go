package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Category identifies one of the 18 scorecard fields. The numeric value is
// the field's position on the card and in the save format.
type Category int

const (
	Aces Category = iota
	Twos
	Threes
	Fours
	Fives
	Sixes
	UpperSubtotal
	Bonus
	UpperTotal
	ThreeOfAKind
	FourOfAKind
	FullHouse
	SmallStraight
	LargeStraight
	Yahtzee
	Chance
	LowerTotal
	GrandTotal
)

// FieldCount is the number of fields on a scorecard.
const FieldCount = 18

var categoryNames = [FieldCount]string{
	"Aces", "Twos", "Threes", "Fours", "Fives", "Sixes",
	"Total Without Bonus", "Bonus", "Final Upper Total",
	"Three of a Kind", "Four of a Kind", "Full House",
	"Small Straight", "Large Straight", "Yahtzee", "Chance",
	"Final Lower Total", "Final Total",
}

var categorySlugs = [FieldCount]string{
	"aces", "twos", "threes", "fours", "fives", "sixes",
	"upper_subtotal", "bonus", "upper_total",
	"three_of_a_kind", "four_of_a_kind", "full_house",
	"small_straight", "large_straight", "yahtzee", "chance",
	"lower_total", "final_total",
}

// UpperCategories are the scorable fields of the upper section.
var UpperCategories = []Category{Aces, Twos, Threes, Fours, Fives, Sixes}

// LowerCategories are the scorable fields of the lower section.
var LowerCategories = []Category{ThreeOfAKind, FourOfAKind, FullHouse, SmallStraight, LargeStraight, Yahtzee, Chance}

// AllCategories lists every field in card order.
func AllCategories() []Category {
	out := make([]Category, FieldCount)
	for i := range out {
		out[i] = Category(i)
	}
	return out
}

// ScorableCategories lists the fields a player may choose, in card order.
func ScorableCategories() []Category {
	out := make([]Category, 0, len(UpperCategories)+len(LowerCategories))
	out = append(out, UpperCategories...)
	out = append(out, LowerCategories...)
	return out
}

func (c Category) Valid() bool { return c >= 0 && c < FieldCount }

// IsDirectlyScorable reports whether a player locks a value into c, as
// opposed to c being a derived total.
func (c Category) IsDirectlyScorable() bool {
	switch c {
	case UpperSubtotal, Bonus, UpperTotal, LowerTotal, GrandTotal:
		return false
	}
	return c.Valid()
}

func (c Category) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

// Slug is the snake_case identifier used in exports and CLI arguments.
func (c Category) Slug() string {
	if !c.Valid() {
		return ""
	}
	return categorySlugs[c]
}

// ParseCategory accepts an index ("11"), a slug ("full_house") or a display
// name ("Full House"), case-insensitively.
func ParseCategory(s string) (Category, error) {
	in := strings.TrimSpace(s)
	if n, err := strconv.Atoi(in); err == nil {
		c := Category(n)
		if !c.Valid() {
			return 0, opErr("category.parse", KindInvalidIndex, fmt.Errorf("%d: %w", n, ErrInvalidIndex))
		}
		return c, nil
	}

	norm := strings.ToLower(strings.NewReplacer(" ", "_", "-", "_").Replace(in))
	for i := 0; i < FieldCount; i++ {
		if categorySlugs[i] == norm || strings.EqualFold(categoryNames[i], in) {
			return Category(i), nil
		}
	}
	return 0, opErr("category.parse", KindInvalidField, fmt.Errorf("unknown category %q: %w", s, ErrInvalidField))
}
