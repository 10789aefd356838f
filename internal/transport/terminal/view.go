package terminal

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

type view struct {
	output     *termenv.Output
	emptyGlyph string

	title   lipgloss.Style
	failure lipgloss.Style
	result  lipgloss.Style
}

// newView - without options the color profile is detected from w and the environment.
func newView(w io.Writer, emptyGlyph string, opts ...termenv.OutputOption) *view {
	output := termenv.NewOutput(w, opts...)

	renderer := lipgloss.NewRenderer(w, opts...)
	renderer.SetColorProfile(output.Profile)

	return &view{
		output:     output,
		emptyGlyph: emptyGlyph,

		title:   renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		failure: renderer.NewStyle().Foreground(lipgloss.Color("9")),
		result:  renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
	}
}

func (that *view) Title() string {
	return that.title.Render("TIC-TAC-TOE")
}

// Board - rows from y = n down to y = 1, cells separated by a space.
func (that *view) Board(board entity.Board) string {
	var sb strings.Builder

	for _, row := range board {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = that.mark(cell)
		}

		sb.WriteString(strings.Join(cells, " "))
		sb.WriteByte('\n')
	}

	return sb.String()
}

func (that *view) mark(cell entity.Mark) string {
	switch cell {
	case entity.PlayerX:
		return that.output.String(string(cell)).Foreground(that.output.Color("1")).Bold().String()
	case entity.PlayerO:
		return that.output.String(string(cell)).Foreground(that.output.Color("4")).Bold().String()
	default:
		return that.emptyGlyph
	}
}

func (that *view) Failure(err error, size int) string {
	var msg string

	switch {
	case errors.Is(err, apperror.ErrMalformedSize):
		msg = fmt.Sprintf("Please enter a positive integer between 1 and %d.", size)
	case errors.Is(err, apperror.ErrInvalidCoordinate):
		msg = fmt.Sprintf("Please enter two valid integers between 1 and %d.", size)
	case errors.Is(err, apperror.ErrCellOccupied):
		msg = "Someone has already marked this square."
	default:
		msg = err.Error()
	}

	return that.failure.Render(msg)
}

func (that *view) Result(game *entity.Game) string {
	if game.HasWinner() {
		return that.result.Render(fmt.Sprintf("%s wins!", game.Winner))
	}

	return that.result.Render("Stalemate! Nobody wins!")
}
