// Package console is the line-oriented front end: menus, ASCII dice and
// prompts on stdin/stdout.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/nadza/Yahtzee/internal/domain"
	"github.com/nadza/Yahtzee/internal/ports"
	"github.com/nadza/Yahtzee/internal/printer"
	"github.com/nadza/Yahtzee/internal/usecase"
)

// errEOF means stdin was closed.
var errEOF = errors.New("input closed")

type Deps struct {
	Config  domain.Config
	Saves   ports.SaveStore
	Scores  ports.HighScoreStore
	Archive ports.GameArchive // optional
	Source  domain.Source     // optional; default randomness when nil
	Logger  *slog.Logger
	In      io.Reader
	Printer *printer.Printer
	// Delay is the pause used for the "shaking dice" animation and bot rolls.
	Delay time.Duration
}

type Console struct {
	deps Deps
	in   *bufio.Scanner
	p    *printer.Printer
	out  io.Writer
	log  *slog.Logger
}

func New(d Deps) *Console {
	p := d.Printer
	if p == nil {
		p = printer.New(nil, nil)
	}
	log := d.Logger
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &Console{deps: d, in: bufio.NewScanner(d.In), p: p, out: p.Out(), log: log}
}

// Run shows the main menu until the user exits or input ends.
func (c *Console) Run(ctx context.Context) error {
	for {
		c.banner("YAHTZEE GAME")
		fmt.Fprintln(c.out, "1. Start Game")
		fmt.Fprintln(c.out, "2. About Game")
		fmt.Fprintln(c.out, "3. High Scores")
		fmt.Fprintln(c.out, "4. Exit")

		choice, err := c.choose(4)
		if err != nil {
			return ignoreEOF(err)
		}

		switch choice {
		case 1:
			err = c.chooseGame(ctx)
		case 2:
			c.banner("ABOUT YAHTZEE")
			fmt.Fprint(c.out, aboutText)
			err = c.waitForReturn()
		case 3:
			err = c.highScores(ctx)
		case 4:
			c.p.Success("Thank you for playing Yahtzee! Goodbye!\n")
			return nil
		}
		if err != nil {
			return ignoreEOF(err)
		}
	}
}

func (c *Console) chooseGame(ctx context.Context) error {
	c.banner("CHOOSE GAME MODE")
	fmt.Fprintln(c.out, "1. Classic Game (Against Computer)")
	fmt.Fprintln(c.out, "2. Play with Friends")
	fmt.Fprintln(c.out, "3. Load Game")
	fmt.Fprintln(c.out, "4. Return to Main Menu")

	choice, err := c.choose(4)
	if err != nil {
		return err
	}

	var s *domain.Session
	switch choice {
	case 1:
		s, err = c.newGame().Execute(usecase.ModeClassic, nil)
	case 2:
		s, err = c.friendsGame()
	case 3:
		s, err = c.loadGame()
	case 4:
		return nil
	}
	if err != nil {
		return err
	}
	if s == nil {
		return nil
	}
	return c.Play(ctx, s)
}

func (c *Console) newGame() *usecase.NewGame {
	opts := []usecase.NewGameOption{usecase.WithNewGameLogger(c.log)}
	if c.deps.Source != nil {
		opts = append(opts, usecase.WithDiceSource(c.deps.Source))
	}
	return usecase.NewNewGame(c.deps.Config, opts...)
}

func (c *Console) friendsGame() (*domain.Session, error) {
	c.banner("NUMBER OF PLAYERS")
	for {
		n, err := c.askInt(fmt.Sprintf("Enter the number of players (between %d and %d): ", domain.MinPlayers, domain.MaxPlayers))
		if err != nil {
			return nil, err
		}
		if n < domain.MinPlayers || n > domain.MaxPlayers {
			c.p.Warning("Number of players must be between %d and %d.\n", domain.MinPlayers, domain.MaxPlayers)
			continue
		}

		names := make([]string, 0, n)
		for i := 1; i <= n; i++ {
			fmt.Fprintf(c.out, "Enter the username for Player %d: ", i)
			name, err := c.readLine()
			if err != nil {
				return nil, err
			}
			names = append(names, name)
		}

		s, err := c.newGame().Execute(usecase.ModeFriends, names)
		if errors.Is(err, domain.ErrInvalidPlayers) {
			c.p.Warning("%s\n", userMessage(err))
			continue
		}
		return s, err
	}
}

func (c *Console) loadGame() (*domain.Session, error) {
	c.banner("LOAD GAME")
	slots, err := c.deps.Saves.List()
	if err != nil {
		return nil, err
	}
	if len(slots) == 0 {
		fmt.Fprintln(c.out, "There are no saved games available.")
		return nil, c.waitForReturn()
	}

	for i, sl := range slots {
		fmt.Fprintf(c.out, "%d. Game %d (%s)\n", i+1, sl.Number, strings.Join(sl.Players, ", "))
	}
	fmt.Fprintf(c.out, "%d. Back\n", len(slots)+1)

	choice, err := c.choose(len(slots) + 1)
	if err != nil {
		return nil, err
	}
	if choice == len(slots)+1 {
		return nil, nil
	}

	uc := usecase.NewLoadGame(c.deps.Saves, c.deps.Config, c.log)
	if c.deps.Source != nil {
		uc.WithSource(c.deps.Source)
	}
	s, err := uc.Execute(slots[choice-1].Number)
	if err != nil {
		c.p.Warning("%s\n", userMessage(err))
		return nil, nil
	}
	return s, nil
}

// Play runs s to completion, or until the user leaves. A finished game is
// recorded on the leaderboard. Closed input ends the game quietly.
func (c *Console) Play(ctx context.Context, s *domain.Session) error {
	return ignoreEOF(c.play(ctx, s))
}

func (c *Console) play(ctx context.Context, s *domain.Session) error {
	fmt.Fprintln(c.out, "Players:")
	for _, p := range s.Players() {
		fmt.Fprintf(c.out, "  %s\n", p.Name)
	}
	c.banner("WELCOME TO THE GAME")
	fmt.Fprintln(c.out, "Each player takes their turn one by one.")
	fmt.Fprintln(c.out, "After every round you can save the game.")

	bot := usecase.NewPlayBotTurn(usecase.WithRollDelay(c.deps.Delay), usecase.WithBotLogger(c.log))

	for !s.IsGameOver() {
		if err := ctx.Err(); err != nil {
			return err
		}

		seat := s.CurrentIndex()
		player := s.Current()
		fmt.Fprintf(c.out, "\nRound %d. Playing: %s\n", s.Round(), player.Name)

		var adv domain.TurnAdvance
		if player.Bot {
			res, err := bot.Execute(ctx, s, func(out domain.RollOutcome) {
				fmt.Fprint(c.out, renderDice(out.Faces, s.Held()))
			})
			if err != nil {
				return err
			}
			if res.AutoYahtzeeBonus {
				c.p.Success("%s rolled another Yahtzee! +%d\n", player.Name, s.Rules().YahtzeeBonus)
			} else {
				fmt.Fprintf(c.out, "%s scored %d in %s.\n", player.Name, res.Value, res.Category)
			}
			adv = res.Advance
		} else {
			var err error
			adv, err = c.humanTurn(s)
			if err != nil {
				return err
			}
		}

		renderCard(c.out, player.Name, s.Players()[seat].Card, nil)

		if adv.GameOver {
			break
		}
		if adv.RoundComplete {
			if err := c.promptSave(s); err != nil {
				return err
			}
		}
		if !player.Bot {
			quit, err := c.confirm("Would you like to exit the game? (y/n) ")
			if err != nil {
				return err
			}
			if quit {
				c.log.Info("game.left", "round", s.Round())
				return nil
			}
		}
	}

	return c.finish(ctx, s)
}

func (c *Console) humanTurn(s *domain.Session) (domain.TurnAdvance, error) {
	out, err := c.roll(s)
	if err != nil {
		return domain.TurnAdvance{}, err
	}

	var ev domain.TurnEvaluation
	for {
		if out.Evaluation != nil {
			ev = *out.Evaluation
			break
		}

		if err := c.holdDice(s); err != nil {
			return domain.TurnAdvance{}, err
		}

		left := s.RollsLeft()
		again, err := c.confirm(fmt.Sprintf("You have %d throw%s left. Throw again? (y/n) ", left, plural(left)))
		if err != nil {
			return domain.TurnAdvance{}, err
		}
		if !again {
			if ev, err = s.Stop(); err != nil {
				return domain.TurnAdvance{}, err
			}
			break
		}
		if out, err = c.roll(s); err != nil {
			return domain.TurnAdvance{}, err
		}
	}

	if ev.AutoYahtzeeBonus {
		c.p.Success("Another Yahtzee! +%d added to your Yahtzee field.\n", s.Rules().YahtzeeBonus)
		return *ev.Advance, nil
	}

	card := s.Current().Card
	renderCard(c.out, ev.Player, card, &ev.Scores)
	return c.chooseCategory(s, card)
}

func (c *Console) roll(s *domain.Session) (domain.RollOutcome, error) {
	fmt.Fprint(c.out, "Shaking dice")
	c.pause()
	fmt.Fprintln(c.out)

	out, err := s.Roll()
	if err != nil {
		return out, err
	}
	fmt.Fprint(c.out, renderDice(out.Faces, s.Held()))
	return out, nil
}

// holdDice reads "s 1 3" (hold), "u 2" (release) or "n" until the player
// is done changing holds.
func (c *Console) holdDice(s *domain.Session) error {
	for {
		fmt.Fprintln(c.out, "Type 's' and die numbers to hold (e.g. s 1 3), 'u' to release, or 'n' for no change.")
		line, err := c.readLine()
		if err != nil {
			return err
		}

		fields := strings.Fields(strings.ToLower(line))
		if len(fields) == 0 || fields[0] == "n" {
			return nil
		}
		if fields[0] != "s" && fields[0] != "u" {
			c.p.Warning("Invalid choice %q.\n", fields[0])
			continue
		}

		nums := fields[1:]
		if len(nums) == 0 {
			fmt.Fprintln(c.out, "Enter the dice numbers (e.g. 1 3 5):")
			more, err := c.readLine()
			if err != nil {
				return err
			}
			nums = strings.Fields(more)
		}

		idx, err := parseDice(nums)
		if err != nil {
			c.p.Warning("%v\n", err)
			continue
		}
		for _, i := range idx {
			if err := s.Hold(i, fields[0] == "s"); err != nil {
				return err
			}
		}
		fmt.Fprint(c.out, renderDice(s.Faces(), s.Held()))
	}
}

func parseDice(nums []string) ([]int, error) {
	out := make([]int, 0, len(nums))
	for _, n := range nums {
		v, err := strconv.Atoi(n)
		if err != nil {
			return nil, fmt.Errorf("invalid input: %s", n)
		}
		if v < 1 || v > domain.DiceCount {
			return nil, fmt.Errorf("invalid die number: %d", v)
		}
		out = append(out, v-1)
	}
	return out, nil
}

func (c *Console) chooseCategory(s *domain.Session, card *domain.ScoreCard) (domain.TurnAdvance, error) {
	for {
		fmt.Fprintf(c.out, "\nEnter the field to score (%d-%d):\n%s\n", 0, domain.FieldCount-1, categoryHelp())
		line, err := c.readLine()
		if err != nil {
			return domain.TurnAdvance{}, err
		}

		cat, err := domain.ParseCategory(line)
		if err != nil {
			c.p.Warning("%s\n", userMessage(err))
			continue
		}
		if !cat.IsDirectlyScorable() {
			c.p.Warning("%s is computed and cannot be chosen.\n", cat)
			continue
		}
		if card.IsSet(cat) {
			c.p.Warning("%s is already filled.\n", cat)
			continue
		}

		res, err := s.Score(cat)
		if err != nil {
			c.p.Warning("%s\n", userMessage(err))
			continue
		}
		fmt.Fprintf(c.out, "%s scored %d in %s.\n", res.Player, res.Value, res.Category)
		return res.Advance, nil
	}
}

func (c *Console) promptSave(s *domain.Session) error {
	save, err := c.confirm("Round complete. Save the game before continuing? (y/n) ")
	if err != nil || !save {
		if err == nil {
			fmt.Fprintln(c.out, "Game not saved.")
		}
		return err
	}

	slot, err := usecase.NewSaveGame(c.deps.Saves, c.log).Execute(s)
	if err != nil {
		c.p.Warning("Could not save: %s\n", userMessage(err))
		return nil
	}
	c.p.Success("Game saved to slot %d.\n", slot.Number)
	return nil
}

func (c *Console) finish(ctx context.Context, s *domain.Session) error {
	sum, err := usecase.NewFinishGame(c.deps.Scores, c.deps.Archive, c.log).Execute(ctx, s)
	if err != nil {
		c.p.Warning("Could not record high scores: %s\n", userMessage(err))
		sum = usecase.GameSummary{Winners: s.Winners(), Standings: domain.HighScoresFromSession(s)}
	}

	renderStandings(c.out, "SCORES", sum.Standings)
	c.p.Success("CONGRATULATIONS! The winner of the game is: %s.\n", joinNames(sum.Winners))
	return c.waitForReturn()
}

func (c *Console) highScores(ctx context.Context) error {
	top, err := c.deps.Scores.Top(ctx, 0)
	if err != nil {
		c.p.Warning("Could not read high scores: %s\n", userMessage(err))
	} else {
		renderStandings(c.out, "HIGH SCORES", top)
	}
	return c.waitForReturn()
}

func (c *Console) banner(title string) {
	fmt.Fprintln(c.out, rule)
	c.p.Heading("%s\n", title)
	fmt.Fprintln(c.out, rule)
}

func (c *Console) pause() {
	if c.deps.Delay <= 0 {
		return
	}
	for i := 0; i < 2; i++ {
		time.Sleep(c.deps.Delay / 2)
		fmt.Fprint(c.out, ".")
	}
}

func (c *Console) readLine() (string, error) {
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", errEOF
	}
	return strings.TrimSpace(c.in.Text()), nil
}

// choose reads a menu choice in 1..n, re-prompting on bad input.
func (c *Console) choose(n int) (int, error) {
	for {
		fmt.Fprintf(c.out, "Please choose an option (1-%d): ", n)
		line, err := c.readLine()
		if err != nil {
			return 0, err
		}
		v, err := strconv.Atoi(line)
		if err == nil && v >= 1 && v <= n {
			return v, nil
		}
		c.p.Warning("Invalid choice. Please enter a number from 1 to %d.\n", n)
	}
}

func (c *Console) askInt(prompt string) (int, error) {
	for {
		fmt.Fprint(c.out, prompt)
		line, err := c.readLine()
		if err != nil {
			return 0, err
		}
		v, err := strconv.Atoi(line)
		if err == nil {
			return v, nil
		}
		c.p.Warning("Invalid input %q.\n", line)
	}
}

func (c *Console) confirm(prompt string) (bool, error) {
	for {
		fmt.Fprint(c.out, prompt)
		line, err := c.readLine()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(line) {
		case "y", "yes", "1":
			return true, nil
		case "n", "no", "2":
			return false, nil
		}
		c.p.Warning("Invalid input. Please enter 'y' or 'n'.\n")
	}
}

func (c *Console) waitForReturn() error {
	fmt.Fprintln(c.out, "Press Enter to return to the main menu...")
	_, err := c.readLine()
	return err
}

func ignoreEOF(err error) error {
	if errors.Is(err, errEOF) {
		return nil
	}
	return err
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

// userMessage turns domain errors into one short line.
func userMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, domain.ErrInvalidPlayers):
		return "Player names must be unique and not empty."
	case errors.Is(err, domain.ErrInvalidIndex):
		return "That number is out of range."
	case errors.Is(err, domain.ErrInvalidField):
		return "Unknown field."
	case errors.Is(err, domain.ErrFieldAlreadySet):
		return "That field is already filled."
	case errors.Is(err, domain.ErrMalformedSave):
		return "The saved game is damaged and cannot be loaded."
	case domain.IsKind(err, domain.KindNotFound):
		return "Not found."
	default:
		return err.Error()
	}
}
