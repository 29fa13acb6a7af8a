package game

// Stone is the content of a board cell.
type Stone uint8

const (
	NoStone = Stone(iota)
	BlackStone
	WhiteStone
)

// Opposite returns the opposite stone, or NoStone for NoStone.
func (s Stone) Opposite() Stone {
	switch s {
	case BlackStone:
		return WhiteStone
	case WhiteStone:
		return BlackStone
	}
	return NoStone
}

func (s Stone) String() string {
	switch s {
	case BlackStone:
		return "black"
	case WhiteStone:
		return "white"
	}
	return "none"
}
