package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gomoku/internal/errors"
)

func TestStoneOpposite(t *testing.T) {
	assert.Equal(t, WhiteStone, BlackStone.Opposite())
	assert.Equal(t, BlackStone, WhiteStone.Opposite())
	assert.Equal(t, NoStone, NoStone.Opposite())
}

func TestAxisUnitVectors(t *testing.T) {
	want := map[Axis][2]int{
		VerticalAxis:   {0, 1},
		AscendingAxis:  {1, -1},
		HorizontalAxis: {1, 0},
		DescendingAxis: {1, 1},
	}
	require.Len(t, Axes, 4)
	for _, axis := range Axes {
		dx, dy := axis.UnitVec()
		assert.Equal(t, want[axis], [2]int{dx, dy})
	}
}

func TestBoardBounds(t *testing.T) {
	var b Board
	for _, p := range []Point{{-1, 0}, {0, -1}, {BoardSize, 0}, {0, BoardSize}, {-3, 20}} {
		_, err := b.Get(p)
		assert.ErrorIs(t, err, errors.ErrPointOutOfBoard, "point %v", p)
		assert.ErrorIs(t, b.Set(p, BlackStone), errors.ErrPointOutOfBoard, "point %v", p)
	}
}

func TestBoardSetGetUnset(t *testing.T) {
	var b Board
	p := Point{X: 3, Y: 11}

	stone, err := b.Get(p)
	require.NoError(t, err)
	assert.Equal(t, NoStone, stone)

	require.NoError(t, b.Set(p, WhiteStone))
	stone, err = b.Get(p)
	require.NoError(t, err)
	assert.Equal(t, WhiteStone, stone)

	require.NoError(t, b.Unset(p))
	stone, err = b.Get(p)
	require.NoError(t, err)
	assert.Equal(t, NoStone, stone)
}

func TestScanRowIsolatedStone(t *testing.T) {
	var b Board
	p := Point{X: 5, Y: 9}
	require.NoError(t, b.Set(p, BlackStone))

	for _, axis := range Axes {
		row, n := b.ScanRow(p, axis)
		assert.Equal(t, 1, n)
		assert.Equal(t, Row{Start: p, End: p}, row)
	}
}

func TestScanRowVertical(t *testing.T) {
	var b Board
	for y := 3; y <= 7; y++ {
		require.NoError(t, b.Set(Point{X: 7, Y: y}, BlackStone))
	}
	// Opposite color just past an end must not extend the run.
	require.NoError(t, b.Set(Point{X: 7, Y: 8}, WhiteStone))

	row, n := b.ScanRow(Point{X: 7, Y: 5}, VerticalAxis)
	assert.Equal(t, 5, n)
	assert.Equal(t, Row{Start: Point{X: 7, Y: 3}, End: Point{X: 7, Y: 7}}, row)
}

func TestScanRowAscendingEndpoints(t *testing.T) {
	var b Board
	// Along (1, -1): backward steps go down-left on screen, up in y.
	for i := 0; i < 5; i++ {
		require.NoError(t, b.Set(Point{X: 3 + i, Y: 7 - i}, WhiteStone))
	}

	row, n := b.ScanRow(Point{X: 5, Y: 5}, AscendingAxis)
	assert.Equal(t, 5, n)
	assert.Equal(t, Row{Start: Point{X: 3, Y: 7}, End: Point{X: 7, Y: 3}}, row)
}

func TestScanRowStopsAtEdge(t *testing.T) {
	var b Board
	for x := 0; x < 3; x++ {
		require.NoError(t, b.Set(Point{X: x, Y: 0}, BlackStone))
	}

	row, n := b.ScanRow(Point{X: 0, Y: 0}, HorizontalAxis)
	assert.Equal(t, 3, n)
	assert.Equal(t, Row{Start: Point{X: 0, Y: 0}, End: Point{X: 2, Y: 0}}, row)
}

func TestFindWinRowAxisOrder(t *testing.T) {
	var b Board
	// A cross through (7,7): both the vertical and the horizontal run
	// reach five once the center is placed. Vertical is scanned first.
	for y := 3; y <= 6; y++ {
		require.NoError(t, b.Set(Point{X: 7, Y: y}, BlackStone))
	}
	for x := 3; x <= 6; x++ {
		require.NoError(t, b.Set(Point{X: x, Y: 7}, BlackStone))
	}
	require.NoError(t, b.Set(Point{X: 7, Y: 7}, BlackStone))

	row, ok := b.FindWinRow(Point{X: 7, Y: 7})
	require.True(t, ok)
	assert.Equal(t, Row{Start: Point{X: 7, Y: 3}, End: Point{X: 7, Y: 7}}, row)
}

func TestFindWinRowEmptyCell(t *testing.T) {
	var b Board
	_, ok := b.FindWinRow(Point{X: 7, Y: 7})
	assert.False(t, ok)
}
