package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/tictactoe"
)

type gameManager interface {
	NewGame(ctx context.Context, size int) (*entity.Game, error)
	MakeTurn(ctx context.Context, gameID string, move entity.RawCoordinate) (*entity.Game, error)
	AbandonGame(ctx context.Context, gameID string)
}

type Options struct {
	EmptyGlyph   string
	NoColor      bool
	MaxBoardSize int
}

// Shell - the interactive loop: board size, moves until the round ends, then the rematch question.
type Shell struct {
	logger *slog.Logger
	games  gameManager

	input *lineReader
	out   io.Writer
	view  *view

	maxBoardSize int

	tally tally
}

type tally struct {
	x, o, stalemates int
}

func (that *tally) record(game *entity.Game) {
	switch game.Winner {
	case entity.PlayerX:
		that.x++
	case entity.PlayerO:
		that.o++
	default:
		that.stalemates++
	}
}

func New(logger *slog.Logger, games gameManager, in io.Reader, out io.Writer, opts Options) *Shell {
	var outputOpts []termenv.OutputOption
	if opts.NoColor {
		outputOpts = append(outputOpts, termenv.WithProfile(termenv.Ascii))
	}

	maxBoardSize := opts.MaxBoardSize
	if maxBoardSize <= 0 {
		maxBoardSize = tictactoe.DefaultMaxBoardSize
	}

	return &Shell{
		logger:       logger.With("component", "terminal"),
		games:        games,
		input:        newLineReader(in),
		out:          out,
		view:         newView(out, opts.EmptyGlyph, outputOpts...),
		maxBoardSize: maxBoardSize,
	}
}

// Run - plays rounds until the players decline a rematch, the input ends or ctx is cancelled.
// Only failures of the game manager are returned.
func (that *Shell) Run(ctx context.Context) error {
	defer that.input.Close()

	that.say("%s\n\n", that.view.Title())

	for {
		size, err := that.askBoardSize(ctx)
		if err != nil {
			return that.stop(err)
		}

		game, err := that.games.NewGame(ctx, size)
		if err != nil {
			return fmt.Errorf("failed to start game: %w", err)
		}

		game, err = that.play(ctx, game)
		if err != nil {
			that.games.AbandonGame(context.WithoutCancel(ctx), game.ID)
			return that.stop(err)
		}

		that.tally.record(game)
		that.say("\n%s\n\n", that.view.Result(game))

		again, err := that.askPlayAgain(ctx)
		if err != nil {
			return that.stop(err)
		}

		if !again {
			return that.stop(nil)
		}
	}
}

func (that *Shell) askBoardSize(ctx context.Context) (int, error) {
	for {
		that.say("\nWhat size board would you like to play with?\n")

		answer, err := that.input.ReadLine(ctx)
		if err != nil {
			return 0, err
		}

		size, err := tictactoe.ParseBoardSize(answer, that.maxBoardSize)
		if err != nil {
			that.logger.Debug("board size rejected", "answer", answer)
			that.say("\n%s\n", that.view.Failure(err, that.maxBoardSize))
			continue
		}

		return size, nil
	}
}

// play - returns the terminal snapshot, or the last snapshot together with the input error.
func (that *Shell) play(ctx context.Context, game *entity.Game) (*entity.Game, error) {
	n := game.Size()

	for !game.IsFinished() {
		that.say("\n%s's turn\n", game.Player)
		that.say("\nPick your square as x y (1 - %d)\n", n)

		line, err := that.input.ReadLine(ctx)
		if err != nil {
			return game, err
		}

		next, err := that.games.MakeTurn(ctx, game.ID, ParseMoveLine(line))
		if err != nil {
			return game, fmt.Errorf("failed to make turn: %w", err)
		}

		that.say("\n%s", that.view.Board(next.Board))

		if next.Err != nil {
			that.say("\n%s\n", that.view.Failure(next.Err, n))
		}

		game = next
	}

	return game, nil
}

func (that *Shell) askPlayAgain(ctx context.Context) (bool, error) {
	that.say("Would you like to play again?\n")

	answer, err := that.input.ReadLine(ctx)
	if err != nil {
		return false, err
	}

	return WantsReplay(answer), nil
}

// stop - ends the session. Running out of input or being cancelled ends it like declining a rematch.
func (that *Shell) stop(err error) error {
	if err != nil && !errors.Is(err, ErrInputClosed) && !errors.Is(err, context.Canceled) {
		return err
	}

	that.logger.Info("session finished", "xWins", that.tally.x, "oWins", that.tally.o, "stalemates", that.tally.stalemates)
	that.say("\nX won %d, O won %d, stalemates %d\n", that.tally.x, that.tally.o, that.tally.stalemates)
	that.say("\nGoodbye!\n\n")

	return nil
}

func (that *Shell) say(format string, args ...any) {
	_, _ = fmt.Fprintf(that.out, format, args...)
}
