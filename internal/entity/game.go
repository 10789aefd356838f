package entity

const (
	StatusError     = "error"
	StatusOngoing   = "ongoing"
	StatusWon       = "won"
	StatusStalemate = "stalemate"
)

// Game is one immutable snapshot of a round.
type Game struct {
	ID        string `json:"id"`
	Board     Board  `json:"board"`
	Player    Mark   `json:"player"`
	Score     Score  `json:"score"`
	Winner    Mark   `json:"winner,omitempty"`
	Stalemate bool   `json:"stalemate"`
	Err       error  `json:"-"`
}

func NewGame(id string, n int) *Game {
	return &Game{
		ID:     id,
		Board:  NewBoard(n),
		Player: PlayerX,
		Score:  NewScore(n),
	}
}

func (that *Game) Size() int {
	return that.Board.Size()
}

func (that *Game) HasWinner() bool {
	return that.Winner != EmptyCell
}

// IsFinished - a round is over once somebody won or the board filled up.
func (that *Game) IsFinished() bool {
	return that.HasWinner() || that.Stalemate
}

func (that *Game) Status() string {
	switch {
	case that.HasWinner():
		return StatusWon
	case that.Stalemate:
		return StatusStalemate
	case that.Err != nil:
		return StatusError
	default:
		return StatusOngoing
	}
}
