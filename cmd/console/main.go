// Command console plays blackjack rounds in the terminal.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/luca-patrignani/blackjack/application"
	"github.com/luca-patrignani/blackjack/config"
	"github.com/luca-patrignani/blackjack/console"
	"github.com/luca-patrignani/blackjack/domain/blackjack"
	"github.com/luca-patrignani/blackjack/ledger"
)

const (
	actionHit   = "Hit"
	actionStand = "Stand"
)

// prompter asks the player for decisions.
type prompter interface {
	Action() (string, error)
	PlayAgain() (bool, error)
}

type ptermPrompter struct{}

func (ptermPrompter) Action() (string, error) {
	return pterm.DefaultInteractiveSelect.
		WithDefaultText("Select your next action").
		WithOptions([]string{actionHit, actionStand}).
		Show()
}

func (ptermPrompter) PlayAgain() (bool, error) {
	return pterm.DefaultInteractiveConfirm.WithDefaultText("Play another round?").WithDefaultValue(true).Show()
}

func main() {
	cfg, err := config.Load(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}
	logger := console.NewLogger(cfg.LogLevel)

	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Black", pterm.FgDarkGray.ToStyle()),
		putils.LettersFromStringWithStyle("jack", pterm.FgRed.ToStyle()),
	).Render()

	newSource := application.ShuffledDecks
	if cfg.Seed != 0 {
		newSource = application.SeededDecks(cfg.Seed)
	}
	history := ledger.New()
	service := application.NewGameService(
		newSource,
		application.NewInMemoryGameRepository(application.NewIDGenerator(cfg.FirstGameID)),
		application.WithMonitor(history),
		application.WithLogger(logger),
	)

	outcomes, err := play(service, ptermPrompter{}, os.Stdout, logger)
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
	printSummary(outcomes, history, logger)
}

// play runs rounds until the player declines another one and returns the
// outcome of every round played.
func play(service *application.GameService, p prompter, out io.Writer, logger *slog.Logger) ([]blackjack.Outcome, error) {
	var outcomes []blackjack.Outcome
	for {
		outcome, err := playRound(service, p, out)
		if err != nil {
			return outcomes, err
		}
		outcomes = append(outcomes, outcome)
		logger.Debug("round finished", "round", len(outcomes), "outcome", string(outcome))
		again, err := p.PlayAgain()
		if err != nil {
			return outcomes, err
		}
		if !again {
			return outcomes, nil
		}
	}
}

// playRound deals a game and asks for actions until the player is done.
func playRound(service *application.GameService, p prompter, out io.Writer) (blackjack.Outcome, error) {
	game, err := service.StartGame()
	if err != nil {
		return "", err
	}
	id := game.ID()
	for {
		var (
			screen string
			done   bool
		)
		err := service.View(id, func(g *blackjack.Game) error {
			var err error
			screen, err = console.RenderGame(g)
			done = g.IsPlayerDone()
			return err
		})
		if err != nil {
			return "", err
		}
		fmt.Fprintln(out, screen)
		if done {
			break
		}
		action, err := p.Action()
		if err != nil {
			return "", err
		}
		switch action {
		case actionHit:
			err = service.Hit(id)
		case actionStand:
			err = service.Stand(id)
		default:
			err = fmt.Errorf("unknown action %q", action)
		}
		if err != nil {
			return "", err
		}
	}
	var outcome blackjack.Outcome
	err = service.View(id, func(g *blackjack.Game) error {
		outcome, _ = g.Outcome()
		return nil
	})
	return outcome, err
}

// tally counts wins and pushes; every other round is a loss.
func tally(outcomes []blackjack.Outcome) (won, pushed int) {
	for _, o := range outcomes {
		switch {
		case o.PlayerWon():
			won++
		case o == blackjack.Push:
			pushed++
		}
	}
	return won, pushed
}

func printSummary(outcomes []blackjack.Outcome, history *ledger.Ledger, logger *slog.Logger) {
	won, pushed := tally(outcomes)
	pterm.Info.Printfln("You won %d of %d rounds (%d pushed)", won, len(outcomes), pushed)
	if history.Len() != len(outcomes) {
		logger.Warn("history is missing rounds", "played", len(outcomes), "recorded", history.Len())
	}
	if err := history.Verify(); err != nil {
		logger.Error("history verification failed", "error", err)
	}
}
