// Package tetris implements the falling-block puzzle: the board and piece
// model, collision and rotation, the session state machine, the high-score
// list and the automatic drop scheduler, plus the adapter that plugs the
// engine into the game registry.
package tetris

import "strconv"

// Board dimensions.
const (
	BoardWidth  = 10
	BoardHeight = 20
)

// Cell is one board square: 0 is empty, 1..7 is the id of the piece that
// locked there (also its color key).
type Cell uint8

// MarshalJSON encodes a cell as a number so shapes do not become base64 strings.
func (c Cell) MarshalJSON() ([]byte, error) {
	return strconv.AppendUint(nil, uint64(c), 10), nil
}

// Empty is the value of an unoccupied cell.
const Empty Cell = 0

// Grid holds the locked blocks, indexed [y][x] with row 0 at the top.
type Grid [BoardHeight][BoardWidth]Cell

// NewGrid returns an empty grid.
func NewGrid() Grid {
	return Grid{}
}

// Merge returns a copy of grid with every occupied cell of shape written at
// pos. Rows above the grid (y < 0) are dropped and columns outside it are
// ignored; callers pass positions already validated with Collides.
func Merge(grid Grid, shape Shape, pos Position) Grid {
	for py, row := range shape {
		y := pos.Y + py
		if y < 0 || y >= BoardHeight {
			continue
		}
		for px, v := range row {
			x := pos.X + px
			if v == Empty || x < 0 || x >= BoardWidth {
				continue
			}
			grid[y][x] = v
		}
	}
	return grid
}

// rowFull reports whether every cell of the row is occupied.
func rowFull(row [BoardWidth]Cell) bool {
	for _, c := range row {
		if c == Empty {
			return false
		}
	}
	return true
}

// ClearLines removes every full row, shifting the rows above it down and
// inserting empty rows at the top. Returns the new grid and the number of
// rows removed.
func ClearLines(grid Grid) (Grid, int) {
	var out Grid
	write := BoardHeight - 1
	cleared := 0

	for y := BoardHeight - 1; y >= 0; y-- {
		if rowFull(grid[y]) {
			cleared++
			continue
		}
		out[write] = grid[y]
		write--
	}

	return out, cleared
}

// TopCollision reports whether either of the two topmost rows holds a block.
func TopCollision(grid Grid) bool {
	for _, y := range [...]int{0, 1} {
		for _, c := range grid[y] {
			if c != Empty {
				return true
			}
		}
	}
	return false
}

// Count returns the number of occupied cells.
func Count(grid Grid) int {
	n := 0
	for y := range grid {
		for _, c := range grid[y] {
			if c != Empty {
				n++
			}
		}
	}
	return n
}
