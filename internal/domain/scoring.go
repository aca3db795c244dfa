package domain

import "sort"

// Hand is the five face values being scored.
type Hand [DiceCount]int

// Scores is a full 18-field provisional snapshot, indexed by Category.
type Scores [FieldCount]int

// Get returns the score for c, or 0 for an invalid category.
func (s Scores) Get(c Category) int {
	if !c.Valid() {
		return 0
	}
	return s[c]
}

type rule func(h Hand) int

var categoryRules = map[Category]rule{
	Aces:          upper(1),
	Twos:          upper(2),
	Threes:        upper(3),
	Fours:         upper(4),
	Fives:         upper(5),
	Sixes:         upper(6),
	ThreeOfAKind:  ofAKind(3),
	FourOfAKind:   ofAKind(4),
	FullHouse:     fullHouse,
	SmallStraight: straight(4, SmallStraightScore),
	LargeStraight: straight(5, LargeStraightScore),
	Yahtzee:       yahtzee,
	Chance:        sumFaces,
}

// CandidateScore is the raw rule for a scorable category applied to h,
// ignoring any scorecard state. Derived categories score 0.
func CandidateScore(c Category, h Hand) int {
	r, ok := categoryRules[c]
	if !ok {
		return 0
	}
	return r(h)
}

// ProvisionalScores evaluates h against card without mutating it. Unset
// scorable fields get their candidate score; resolved fields and derived
// totals pass through their stored value (0 when unresolved). The bool is
// true when the card already holds a nonzero Yahtzee and h is another one;
// the caller must then apply the Yahtzee bonus instead of choosing a field.
func ProvisionalScores(h Hand, card *ScoreCard) (Scores, bool) {
	var out Scores
	for _, c := range AllCategories() {
		slot := card.Slot(c)
		if !c.IsDirectlyScorable() || slot.Resolved() {
			out[c] = slot.Value()
			continue
		}
		out[c] = CandidateScore(c, h)
	}

	autoBonus := card.HasLockedYahtzee() && isYahtzee(h)
	return out, autoBonus
}

// BestAvailableCategory picks the open scorable field with the highest
// provisional score, lowest index on ties.
func BestAvailableCategory(card *ScoreCard, scores Scores) (Category, error) {
	best := Category(-1)
	bestScore := -1
	for _, c := range card.OpenCategories() {
		if scores[c] > bestScore {
			best = c
			bestScore = scores[c]
		}
	}
	if best < 0 {
		return 0, opErr("scoring.best_category", KindInvalidField, ErrNoOpenCategory)
	}
	return best, nil
}

func counts(h Hand) [DieSides + 1]int {
	var c [DieSides + 1]int
	for _, f := range h {
		if f >= 1 && f <= DieSides {
			c[f]++
		}
	}
	return c
}

func sumFaces(h Hand) int {
	total := 0
	for _, f := range h {
		total += f
	}
	return total
}

func upper(face int) rule {
	return func(h Hand) int {
		return counts(h)[face] * face
	}
}

// faceWithAtLeast returns the lowest face other than exclude appearing at
// least n times, or 0.
func faceWithAtLeast(c [DieSides + 1]int, n, exclude int) int {
	for f := 1; f <= DieSides; f++ {
		if f != exclude && c[f] >= n {
			return f
		}
	}
	return 0
}

// ofAKind scores the whole hand when some face appears n or more times.
func ofAKind(n int) rule {
	return func(h Hand) int {
		if faceWithAtLeast(counts(h), n, 0) == 0 {
			return 0
		}
		return sumFaces(h)
	}
}

// fullHouse needs a triple and a pair of a different face; five of a kind
// and four-plus-one do not qualify.
func fullHouse(h Hand) int {
	c := counts(h)
	triple := faceWithAtLeast(c, 3, 0)
	if triple == 0 {
		return 0
	}
	if faceWithAtLeast(c, 2, triple) == 0 {
		return 0
	}
	return FullHouseScore
}

// longestRun is the longest run of consecutive distinct faces.
func longestRun(h Hand) int {
	sorted := h
	sort.Ints(sorted[:])

	longest, current := 1, 1
	for i := 1; i < len(sorted); i++ {
		switch {
		case sorted[i] == sorted[i-1]+1:
			current++
		case sorted[i] != sorted[i-1]:
			longest = max(longest, current)
			current = 1
		}
	}
	return max(longest, current)
}

func straight(minRun, score int) rule {
	return func(h Hand) int {
		if longestRun(h) >= minRun {
			return score
		}
		return 0
	}
}

func isYahtzee(h Hand) bool {
	for _, f := range h[1:] {
		if f != h[0] {
			return false
		}
	}
	return h[0] >= 1 && h[0] <= DieSides
}

func yahtzee(h Hand) int {
	if isYahtzee(h) {
		return YahtzeeScore
	}
	return 0
}
