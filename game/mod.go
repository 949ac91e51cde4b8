package game

import "fmt"

// StateHash identifies a board configuration purely by its cell contents.
type StateHash uint64

// Cell is the content of a single board cell. The zero value is Empty.
type Cell int

const (
	Empty Cell = iota
	X
	O
)

func (c Cell) String() string {
	switch c {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return ""
	}
}

// MarshalJSON encodes a cell as "X", "O" or "" to match the output schema.
func (c Cell) MarshalJSON() ([]byte, error) {
	return []byte(`"` + c.String() + `"`), nil
}

func (c *Cell) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"X"`:
		*c = X
	case `"O"`:
		*c = O
	case `""`:
		*c = Empty
	default:
		return fmt.Errorf("invalid cell %s", data)
	}
	return nil
}

// TurnOf returns the player to move on a board holding `occupied` marks.
// X always moves first, so the turn is a pure function of the move count.
func TurnOf(occupied int) Cell {
	if occupied%2 == 0 {
		return X
	}
	return O
}
