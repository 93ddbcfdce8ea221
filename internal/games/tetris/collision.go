package tetris

// Shape is a piece matrix indexed [row][col]; non-zero entries are occupied.
type Shape [][]Cell

// Position is the grid coordinate of a shape's top-left corner.
// Y may be negative while a piece is entering from above the board.
type Position struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// Add returns the position shifted by (dx, dy).
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Clone returns a deep copy of the shape.
func (s Shape) Clone() Shape {
	if s == nil {
		return nil
	}
	out := make(Shape, len(s))
	for i, row := range s {
		out[i] = append([]Cell(nil), row...)
	}
	return out
}

// Kind returns the id of the first occupied cell, or 0 for an empty shape.
func (s Shape) Kind() Kind {
	for _, row := range s {
		for _, v := range row {
			if v != Empty {
				return Kind(v)
			}
		}
	}
	return 0
}

// Equal reports whether two shapes have identical dimensions and cells.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for y := range s {
		if len(s[y]) != len(other[y]) {
			return false
		}
		for x := range s[y] {
			if s[y][x] != other[y][x] {
				return false
			}
		}
	}
	return true
}

// Collides reports whether shape placed at pos leaves the board horizontally,
// goes below the bottom row, or overlaps a locked block. Cells above the board
// (y < 0) only take part in the horizontal bounds check.
func Collides(shape Shape, pos Position, grid Grid) bool {
	for py, row := range shape {
		for px, v := range row {
			if v == Empty {
				continue
			}
			x, y := pos.X+px, pos.Y+py
			if x < 0 || x >= BoardWidth || y >= BoardHeight {
				return true
			}
			if y >= 0 && grid[y][x] != Empty {
				return true
			}
		}
	}
	return false
}

// Rotate returns the shape turned 90 degrees clockwise. An h×w matrix becomes
// w×h. The result is not bounds-checked; verify it with Collides.
func Rotate(shape Shape) Shape {
	h := len(shape)
	if h == 0 {
		return Shape{}
	}
	w := len(shape[0])

	out := make(Shape, w)
	for c := range out {
		out[c] = make([]Cell, h)
	}
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			out[c][h-1-r] = shape[r][c]
		}
	}
	return out
}
