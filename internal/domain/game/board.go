package game

import "gomoku/internal/errors"

// BoardSize is the side length of the board.
const BoardSize = 15

// Board is a BoardSize×BoardSize grid of stones. The zero value is an
// empty board.
type Board struct {
	mat [BoardSize * BoardSize]Stone
}

// Contains reports whether the point is within the board boundary.
func (b *Board) Contains(p Point) bool {
	return p.X >= 0 && p.X < BoardSize && p.Y >= 0 && p.Y < BoardSize
}

// Get returns the stone at the point.
func (b *Board) Get(p Point) (Stone, error) {
	if !b.Contains(p) {
		return NoStone, errors.ErrPointOutOfBoard
	}
	return b.mat[p.Y*BoardSize+p.X], nil
}

// Set puts a stone at the point. Occupancy is not checked; callers
// that care must check first.
func (b *Board) Set(p Point, stone Stone) error {
	if !b.Contains(p) {
		return errors.ErrPointOutOfBoard
	}
	b.mat[p.Y*BoardSize+p.X] = stone
	return nil
}

// Unset clears the cell at the point.
func (b *Board) Unset(p Point) error {
	return b.Set(p, NoStone)
}

// ScanRow walks backward then forward from an in-board point along the
// axis while the adjacent cell holds the same stone, returning the
// inclusive endpoints and the total run length.
func (b *Board) ScanRow(p Point, axis Axis) (Row, int) {
	stone := b.mat[p.Y*BoardSize+p.X]
	n := 1

	scan := func(cur *Point, forward bool) {
		next := cur.Adjacent(axis, forward)
		for b.Contains(next) && b.mat[next.Y*BoardSize+next.X] == stone {
			n++
			*cur = next
			next = cur.Adjacent(axis, forward)
		}
	}

	row := Row{Start: p, End: p}
	scan(&row.Start, false)
	scan(&row.End, true)
	return row, n
}

// FindWinRow searches the four axes through an in-board point for a
// run of five or more, in the fixed order of Axes.
func (b *Board) FindWinRow(p Point) (Row, bool) {
	if b.mat[p.Y*BoardSize+p.X] == NoStone {
		return Row{}, false
	}
	for _, axis := range Axes {
		if row, n := b.ScanRow(p, axis); n >= 5 {
			return row, true
		}
	}
	return Row{}, false
}
