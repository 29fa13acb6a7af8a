package game

// Point is a 2D board coordinate. Values outside [0, BoardSize) are
// representable; bounds are checked by Board.
type Point struct {
	X int
	Y int
}

// Adjacent returns the adjacent point along the axis. The result may be
// out of board and must be bounds-checked before use.
func (p Point) Adjacent(axis Axis, forward bool) Point {
	dx, dy := axis.UnitVec()
	if forward {
		return Point{p.X + dx, p.Y + dy}
	}
	return Point{p.X - dx, p.Y - dy}
}
