package domain

// Fixed category payouts.
const (
	FullHouseScore     = 25
	SmallStraightScore = 30
	LargeStraightScore = 40
	YahtzeeScore       = 50
)

// Rules holds the tunable parts of derived-total computation.
type Rules struct {
	// BonusThreshold is the upper subtotal at which the bonus is earned.
	BonusThreshold int
	// BonusValue is the upper-section bonus.
	BonusValue int
	// YahtzeeBonus is added to a locked nonzero Yahtzee on every further Yahtzee.
	YahtzeeBonus int
	// LegacyBonus records "earned nothing" for the upper bonus even when the
	// threshold is met.
	LegacyBonus bool
}

// DefaultRules returns the standard payouts with the upper bonus awarded.
func DefaultRules() Rules {
	return Rules{
		BonusThreshold: 63,
		BonusValue:     35,
		YahtzeeBonus:   100,
		LegacyBonus:    false,
	}
}

func (r Rules) withDefaults() Rules {
	d := DefaultRules()
	if r.BonusThreshold <= 0 {
		r.BonusThreshold = d.BonusThreshold
	}
	if r.BonusValue <= 0 {
		r.BonusValue = d.BonusValue
	}
	if r.YahtzeeBonus <= 0 {
		r.YahtzeeBonus = d.YahtzeeBonus
	}
	return r
}
