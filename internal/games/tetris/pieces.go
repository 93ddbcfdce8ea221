package tetris

import "math/rand"

// Kind identifies one of the seven tetrominoes. Its value is the Cell id the
// piece writes into the grid.
type Kind Cell

const (
	KindI Kind = iota + 1
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
)

// KindCount is the number of distinct pieces.
const KindCount = 7

// Kinds lists every piece in id order.
var Kinds = [KindCount]Kind{KindI, KindO, KindT, KindS, KindZ, KindJ, KindL}

// catalog holds the spawn orientation of each piece, indexed by Kind-1.
var catalog = [KindCount]Shape{
	{
		{0, 0, 0, 0},
		{1, 1, 1, 1},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	},
	{
		{2, 2},
		{2, 2},
	},
	{
		{0, 3, 0},
		{3, 3, 3},
		{0, 0, 0},
	},
	{
		{0, 4, 4},
		{4, 4, 0},
		{0, 0, 0},
	},
	{
		{5, 5, 0},
		{0, 5, 5},
		{0, 0, 0},
	},
	{
		{6, 0, 0},
		{6, 6, 6},
		{0, 0, 0},
	},
	{
		{0, 0, 7},
		{7, 7, 7},
		{0, 0, 0},
	},
}

// String returns the conventional letter for the piece.
func (k Kind) String() string {
	if k < KindI || k > KindL {
		return "?"
	}
	return string("IOTSZJL"[k-1])
}

// Shape returns a fresh copy of the piece in its spawn orientation.
// Returns nil for an unknown kind.
func (k Kind) Shape() Shape {
	if k < KindI || k > KindL {
		return nil
	}
	return catalog[k-1].Clone()
}

// ParseKind maps a piece letter ("I".."L") to its Kind.
func ParseKind(s string) (Kind, bool) {
	for _, k := range Kinds {
		if k.String() == s {
			return k, true
		}
	}
	return 0, false
}

// RandomShape returns a piece chosen uniformly from the seven kinds.
func RandomShape(rng *rand.Rand) Shape {
	return Kinds[rng.Intn(KindCount)].Shape()
}
