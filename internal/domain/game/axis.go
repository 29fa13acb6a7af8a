package game

// Axis is one of the four undirected lines through a point.
type Axis int

const (
	VerticalAxis = Axis(iota)
	AscendingAxis
	HorizontalAxis
	DescendingAxis
)

// Axes lists all axes in scan order. The order is observable: when a
// single placement completes a row on two axes at once, the first axis
// here is the one reported.
var Axes = []Axis{VerticalAxis, AscendingAxis, HorizontalAxis, DescendingAxis}

// UnitVec returns the unit vector in the direction of the axis.
func (a Axis) UnitVec() (int, int) {
	switch a {
	case VerticalAxis:
		return 0, 1
	case AscendingAxis:
		return 1, -1
	case HorizontalAxis:
		return 1, 0
	case DescendingAxis:
		return 1, 1
	}
	return 0, 0
}
