package entity

const (
	MainDiagonal = 0
	AntiDiagonal = 1
)

// Score holds signed running tallies per line: +1 for every X, -1 for every O.
type Score struct {
	Horizontal []int  `json:"horizontal"`
	Vertical   []int  `json:"vertical"`
	Diagonal   [2]int `json:"diagonal"`
}

func NewScore(n int) Score {
	return Score{
		Horizontal: make([]int, n),
		Vertical:   make([]int, n),
	}
}

// Lines returns the tally groups in detection order.
func (that Score) Lines() [][]int {
	return [][]int{that.Horizontal, that.Vertical, that.Diagonal[:]}
}
