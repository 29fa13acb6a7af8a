package game

// Move is a placement event: a (position, stone) pair.
type Move struct {
	Pos   Point
	Stone Stone
}

// Row holds the inclusive endpoints of a contiguous run of
// same-colored stones along one axis.
type Row struct {
	Start Point
	End   Point
}

// Win is a winning row together with the move count at which it first
// appeared on the board.
type Win struct {
	Index int
	Row   Row
}
