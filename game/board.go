package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"math"
)

// Dims holds the board dimensions, fixed for the whole run.
type Dims struct {
	Length int `json:"length"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// NewDims validates board dimensions before any exploration starts.
func NewDims(length, width, height int) (Dims, error) {
	if length < 1 || width < 1 || height < 1 {
		return Dims{}, fmt.Errorf("board dimensions must be positive, got %dx%dx%d", length, width, height)
	}
	if volume := int64(length) * int64(width) * int64(height); volume > math.MaxInt32 {
		return Dims{}, fmt.Errorf("board volume %d exceeds the supported cell count", volume)
	}
	return Dims{Length: length, Width: width, Height: height}, nil
}

// Volume returns the total cell count.
func (d Dims) Volume() int {
	return d.Length * d.Width * d.Height
}

func (d Dims) String() string {
	return fmt.Sprintf("%dx%dx%d", d.Length, d.Width, d.Height)
}

// index flattens (x, y, z) into a cell position.
func (d Dims) index(x, y, z int) int {
	return z*d.Length*d.Width + y*d.Length + x
}

// Board represents one configuration of the board.
// Boards are immutable once created - Apply always returns a new copy.
type Board struct {
	Dims  Dims
	Cells []Cell
}

// NewBoard returns the all-empty board for the given dimensions.
func NewBoard(d Dims) Board {
	return Board{Dims: d, Cells: make([]Cell, d.Volume())}
}

// Apply returns a copy of the board with one empty cell claimed by player.
func (b Board) Apply(pos int, player Cell) Board {
	if player == Empty {
		panic("cannot place an empty mark")
	}
	if pos < 0 || pos >= len(b.Cells) {
		panic(fmt.Sprintf("position %d out of range for %s board", pos, b.Dims))
	}
	if b.Cells[pos] != Empty {
		panic(fmt.Sprintf("cell %d is already occupied", pos))
	}

	cells := make([]Cell, len(b.Cells))
	copy(cells, b.Cells)
	cells[pos] = player
	return Board{Dims: b.Dims, Cells: cells}
}

// EmptyPositions returns every position a mark can legally be placed on.
func (b Board) EmptyPositions() []int {
	var positions []int
	for i, c := range b.Cells {
		if c == Empty {
			positions = append(positions, i)
		}
	}
	return positions
}

// Occupied returns the number of non-empty cells.
func (b Board) Occupied() int {
	count := 0
	for _, c := range b.Cells {
		if c != Empty {
			count++
		}
	}
	return count
}

// Equal reports whether both boards hold the same cell contents.
func (b Board) Equal(other Board) bool {
	if len(b.Cells) != len(other.Cells) {
		return false
	}
	for i, c := range b.Cells {
		if other.Cells[i] != c {
			return false
		}
	}
	return true
}

func (b Board) Hash() StateHash {
	hasher := fnv.New64a()

	for _, c := range b.Cells {
		binary.Write(hasher, binary.LittleEndian, int64(c))
	}

	return StateHash(hasher.Sum64())
}

// Key returns the canonical content key used for deduplication.
// Two boards share a key iff their cell sequences are equal.
func (b Board) Key() string {
	buf := make([]byte, len(b.Cells))
	for i, c := range b.Cells {
		buf[i] = byte(c)
	}
	return string(buf)
}
