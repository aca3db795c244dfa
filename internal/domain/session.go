package domain

import (
	"fmt"
	"strings"
)

const (
	MinPlayers = 2
	MaxPlayers = 10
)

// Phase is the state of the active player's turn.
type Phase int

const (
	PhaseAwaitingRoll Phase = iota
	PhaseRolled
	PhaseMustScore
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhaseAwaitingRoll:
		return "awaiting_roll"
	case PhaseRolled:
		return "rolled"
	case PhaseMustScore:
		return "must_score"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// PlayerSpec describes a seat at session creation.
type PlayerSpec struct {
	Name string
	Bot  bool
}

// Player is a seat in a session together with its scorecard.
type Player struct {
	Name string
	Bot  bool
	Card *ScoreCard
}

// TurnAdvance describes where the cursor moved after a committed turn.
type TurnAdvance struct {
	Next          int
	NextPlayer    string
	RoundComplete bool
	GameOver      bool
}

// TurnEvaluation is the result of ending the rolling phase.
type TurnEvaluation struct {
	Player string
	Faces  Hand
	Scores Scores
	// AutoYahtzeeBonus means the Yahtzee bonus was applied and the turn is
	// already committed; Advance is set in that case.
	AutoYahtzeeBonus bool
	Advance          *TurnAdvance
}

// RollOutcome is returned by Session.Roll. Evaluation is set when the roll
// used the last throw of the turn.
type RollOutcome struct {
	Faces      Hand
	RollsLeft  int
	Evaluation *TurnEvaluation
}

// CommitResult is returned by Session.Score.
type CommitResult struct {
	Player   string
	Category Category
	Value    int
	Derived  []Category
	Advance  TurnAdvance
}

// Session drives turn order for 2..10 players sharing one dice set.
type Session struct {
	players []Player
	dice    *DiceSet
	src     Source
	rules   Rules

	current int
	rolls   int
	round   int
	phase   Phase
	pending Scores
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithSource overrides the dice randomness (useful for tests).
func WithSource(src Source) SessionOption {
	return func(s *Session) {
		if src != nil {
			s.src = src
		}
	}
}

// WithRules overrides the derived-total rules.
func WithRules(r Rules) SessionOption {
	return func(s *Session) { s.rules = r.withDefaults() }
}

// NewSession starts a game with fresh scorecards.
func NewSession(specs []PlayerSpec, opts ...SessionOption) (*Session, error) {
	players := make([]Player, 0, len(specs))
	for _, sp := range specs {
		players = append(players, Player{Name: sp.Name, Bot: sp.Bot})
	}
	return RestoreSession(players, opts...)
}

// RestoreSession resumes a game from existing scorecards. Nil cards start
// empty. Play resumes with the first player whose card is not complete.
func RestoreSession(players []Player, opts ...SessionOption) (*Session, error) {
	const op = "session.new"
	if len(players) < MinPlayers || len(players) > MaxPlayers {
		return nil, opErr(op, KindInvalidConfig,
			fmt.Errorf("need %d-%d players, got %d: %w", MinPlayers, MaxPlayers, len(players), ErrInvalidPlayers))
	}

	seen := make(map[string]bool, len(players))
	cp := make([]Player, len(players))
	for i, p := range players {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			return nil, opErr(op, KindInvalidConfig, fmt.Errorf("player %d has an empty name: %w", i+1, ErrInvalidPlayers))
		}
		if seen[name] {
			return nil, opErr(op, KindInvalidConfig, fmt.Errorf("duplicate player name %q: %w", name, ErrInvalidPlayers))
		}
		seen[name] = true

		card := p.Card
		if card == nil {
			card = NewScoreCard()
		} else {
			card = card.Clone()
		}
		cp[i] = Player{Name: name, Bot: p.Bot, Card: card}
	}

	s := &Session{
		players: cp,
		dice:    NewDiceSet(),
		src:     DefaultSource(),
		rules:   DefaultRules(),
		round:   1,
		phase:   PhaseAwaitingRoll,
	}
	for _, opt := range opts {
		opt(s)
	}

	minFilled := len(ScorableCategories())
	for _, p := range s.players {
		p.Card.RecomputeDerived(s.rules)
		minFilled = min(minFilled, len(ScorableCategories())-len(p.Card.OpenCategories()))
	}
	s.round = min(minFilled+1, len(ScorableCategories()))

	s.current = -1
	for i, p := range s.players {
		if !p.Card.IsComplete() {
			s.current = i
			break
		}
	}
	if s.current < 0 {
		s.current = 0
		s.phase = PhaseFinished
	}
	return s, nil
}

func (s *Session) Phase() Phase          { return s.phase }
func (s *Session) Round() int            { return s.round }
func (s *Session) Rules() Rules          { return s.rules }
func (s *Session) CurrentIndex() int     { return s.current }
func (s *Session) RollsUsed() int        { return s.rolls }
func (s *Session) RollsLeft() int        { return MaxRolls - s.rolls }
func (s *Session) Faces() Hand           { return s.dice.Faces() }
func (s *Session) Held() [DiceCount]bool { return s.dice.Held() }
func (s *Session) PlayerCount() int      { return len(s.players) }

// Current returns a copy of the active player.
func (s *Session) Current() Player { return s.playerCopy(s.current) }

// Players returns copies of every seat in session order.
func (s *Session) Players() []Player {
	out := make([]Player, len(s.players))
	for i := range s.players {
		out[i] = s.playerCopy(i)
	}
	return out
}

func (s *Session) playerCopy(i int) Player {
	p := s.players[i]
	return Player{Name: p.Name, Bot: p.Bot, Card: p.Card.Clone()}
}

// Pending returns the provisional scores awaiting a category choice.
func (s *Session) Pending() (Scores, bool) {
	if s.phase != PhaseMustScore {
		return Scores{}, false
	}
	return s.pending, true
}

// Preview returns provisional scores for the dice on the table without
// changing the turn.
func (s *Session) Preview() Scores {
	scores, _ := ProvisionalScores(s.dice.Faces(), s.players[s.current].Card)
	return scores
}

// Roll throws every unheld die.
func (s *Session) Roll() (RollOutcome, error) {
	if s.phase != PhaseAwaitingRoll && s.phase != PhaseRolled {
		return RollOutcome{}, s.stateErr("session.roll")
	}
	if s.rolls >= MaxRolls {
		return RollOutcome{}, s.stateErr("session.roll")
	}

	s.rolls++
	faces := s.dice.RollUnheld(s.src)
	s.phase = PhaseRolled

	out := RollOutcome{Faces: faces, RollsLeft: s.RollsLeft()}
	if s.rolls == MaxRolls {
		ev := s.evaluate()
		out.Evaluation = &ev
	}
	return out, nil
}

// Hold holds or releases die i between rolls.
func (s *Session) Hold(i int, held bool) error {
	if s.phase != PhaseRolled {
		return s.stateErr("session.hold")
	}
	return s.dice.SetHeld(i, held)
}

// Stop ends the rolling phase early.
func (s *Session) Stop() (TurnEvaluation, error) {
	if s.phase != PhaseRolled {
		return TurnEvaluation{}, s.stateErr("session.stop")
	}
	return s.evaluate(), nil
}

func (s *Session) evaluate() TurnEvaluation {
	p := s.players[s.current]
	faces := s.dice.Faces()
	scores, autoBonus := ProvisionalScores(faces, p.Card)

	ev := TurnEvaluation{Player: p.Name, Faces: faces, Scores: scores}
	if autoBonus {
		// HasLockedYahtzee held when ProvisionalScores returned true.
		_ = p.Card.ApplyYahtzeeBonus(s.rules.YahtzeeBonus)
		p.Card.RecomputeDerived(s.rules)
		ev.Scores, _ = ProvisionalScores(faces, p.Card)
		ev.AutoYahtzeeBonus = true
		adv := s.AdvanceTurn()
		ev.Advance = &adv
		return ev
	}

	s.phase = PhaseMustScore
	s.pending = scores
	return ev
}

// Score commits the pending provisional value of c for the active player
// and advances the turn.
func (s *Session) Score(c Category) (CommitResult, error) {
	if s.phase != PhaseMustScore {
		return CommitResult{}, s.stateErr("session.score")
	}
	if !c.Valid() {
		return CommitResult{}, opErr("session.score", KindInvalidIndex, fmt.Errorf("field %d: %w", int(c), ErrInvalidIndex))
	}

	p := s.players[s.current]
	value := s.pending[c]
	if err := p.Card.Commit(c, value); err != nil {
		return CommitResult{}, err
	}
	derived := p.Card.RecomputeDerived(s.rules)

	return CommitResult{
		Player:   p.Name,
		Category: c,
		Value:    value,
		Derived:  derived,
		Advance:  s.AdvanceTurn(),
	}, nil
}

// BestCategory is the bot choice for the pending scores.
func (s *Session) BestCategory() (Category, error) {
	if s.phase != PhaseMustScore {
		return 0, s.stateErr("session.best_category")
	}
	return BestAvailableCategory(s.players[s.current].Card, s.pending)
}

// AdvanceTurn moves the cursor to the next player whose card is not
// complete, wrapping around. With every card complete the session is
// finished.
func (s *Session) AdvanceTurn() TurnAdvance {
	s.dice.ResetHold()
	s.rolls = 0
	s.pending = Scores{}

	n := len(s.players)
	wrapped := false
	next := -1
	for k := 1; k <= n; k++ {
		if s.current+k >= n {
			wrapped = true
		}
		idx := (s.current + k) % n
		if !s.players[idx].Card.IsComplete() {
			next = idx
			break
		}
	}

	adv := TurnAdvance{RoundComplete: wrapped}
	if next < 0 {
		s.phase = PhaseFinished
		adv.GameOver = true
		adv.Next = s.current
		adv.NextPlayer = s.players[s.current].Name
		return adv
	}

	if wrapped {
		s.round++
	}
	s.current = next
	s.phase = PhaseAwaitingRoll
	adv.Next = next
	adv.NextPlayer = s.players[next].Name
	return adv
}

// IsGameOver reports whether every scorecard is complete.
func (s *Session) IsGameOver() bool {
	for _, p := range s.players {
		if !p.Card.IsComplete() {
			return false
		}
	}
	return true
}

// Winners returns every player sharing the highest final total, in seat
// order.
func (s *Session) Winners() []Player {
	best := -1
	var out []Player
	for i, p := range s.players {
		total := p.Card.FinalTotal()
		switch {
		case total > best:
			best = total
			out = []Player{s.playerCopy(i)}
		case total == best:
			out = append(out, s.playerCopy(i))
		}
	}
	return out
}

func (s *Session) stateErr(op string) error {
	return opErr(op, KindTurnState, fmt.Errorf("phase %s, %d roll(s) used: %w", s.phase, s.rolls, ErrTurnState))
}
