package game

// Winner reports whether player has completed a line of three consecutive
// marks along any row, column, or in-layer diagonal. Lines never cross
// layers. Boards with length or width below 3 admit no line along that
// axis - the loop ranges are simply empty.
func (b Board) Winner(player Cell) bool {
	if player == Empty {
		return false
	}

	l, w, h := b.Dims.Length, b.Dims.Width, b.Dims.Height
	for z := 0; z < h; z++ {
		// Rows
		for y := 0; y < w; y++ {
			for x := 0; x+2 < l; x++ {
				if b.line(player, b.Dims.index(x, y, z), 1) {
					return true
				}
			}
		}
		// Columns
		for x := 0; x < l; x++ {
			for y := 0; y+2 < w; y++ {
				if b.line(player, b.Dims.index(x, y, z), l) {
					return true
				}
			}
		}
		// Diagonals, both directions
		for y := 0; y+2 < w; y++ {
			for x := 0; x+2 < l; x++ {
				if b.line(player, b.Dims.index(x, y, z), l+1) {
					return true
				}
				if b.line(player, b.Dims.index(x+2, y, z), l-1) {
					return true
				}
			}
		}
	}
	return false
}

// line checks three consecutive cells starting at pos with the given stride.
func (b Board) line(player Cell, pos, stride int) bool {
	return b.Cells[pos] == player &&
		b.Cells[pos+stride] == player &&
		b.Cells[pos+2*stride] == player
}

// Full reports whether every cell is occupied.
func (b Board) Full() bool {
	for _, c := range b.Cells {
		if c == Empty {
			return false
		}
	}
	return true
}

// Terminal reports whether the game is over in this configuration:
// either player completed a line, or no empty cell remains.
func (b Board) Terminal() bool {
	return b.Winner(X) || b.Winner(O) || b.Full()
}
