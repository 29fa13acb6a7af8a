package record

import (
	"gomoku/internal/domain/game"
	"gomoku/internal/errors"
)

// Record is a gomoku game record: a board, the full move sequence and
// a cursor splitting it into past and future. Moves past the cursor
// are kept for redo until a new placement overwrites them.
//
// A Record is owned by a single caller; no method is safe for
// concurrent use.
type Record struct {
	board game.Board
	moves []game.Move
	idx   int
	win   *game.Win
}

// New returns an empty record.
func New() *Record {
	return &Record{}
}

// Total returns the number of moves in the full sequence, past and
// future.
func (r *Record) Total() int {
	return len(r.moves)
}

// Index returns the cursor: the number of moves currently applied to
// the board.
func (r *Record) Index() int {
	return r.idx
}

// PastMoves returns the moves currently on the board, in placement
// order. The returned slice is a copy.
func (r *Record) PastMoves() []game.Move {
	return append([]game.Move(nil), r.moves[:r.idx]...)
}

// FutureMoves returns the moves retained for redo, in replay order.
// The returned slice is a copy.
func (r *Record) FutureMoves() []game.Move {
	return append([]game.Move(nil), r.moves[r.idx:]...)
}

// FirstWin returns the cached win if it is active at the current
// cursor. A win found beyond the cursor (after undo) stays hidden
// until the cursor reaches it again.
func (r *Record) FirstWin() (game.Win, bool) {
	if r.win != nil && r.win.Index <= r.idx {
		return *r.win, true
	}
	return game.Win{}, false
}

// Get returns the stone at the point.
func (r *Record) Get(p game.Point) (game.Stone, error) {
	return r.board.Get(p)
}

// Set places a stone at the point, discarding any future moves. It
// returns false without mutating anything if the cell is occupied, and
// an error if the point is out of board.
func (r *Record) Set(p game.Point, stone game.Stone) (bool, error) {
	cur, err := r.board.Get(p)
	if err != nil {
		return false, err
	}
	if cur != game.NoStone {
		return false, nil
	}
	r.board.Set(p, stone)

	r.moves = append(r.moves[:r.idx], game.Move{Pos: p, Stone: stone})
	r.idx++

	// A cached win at or beyond the new cursor belonged to the branch
	// just overwritten; recompute from the placed stone.
	if r.win == nil || r.win.Index >= r.idx {
		if row, ok := r.board.FindWinRow(p); ok {
			r.win = &game.Win{Index: r.idx, Row: row}
		} else {
			r.win = nil
		}
	}
	return true, nil
}

// Unset undoes the last past move, if any. The move stays in the
// sequence for redo.
func (r *Record) Unset() bool {
	if r.idx == 0 {
		return false
	}
	r.idx--
	r.board.Unset(r.moves[r.idx].Pos)
	return true
}

// Reset redoes the next future move, if any.
func (r *Record) Reset() bool {
	if r.idx >= len(r.moves) {
		return false
	}
	next := r.moves[r.idx]
	r.idx++
	r.board.Set(next.Pos, next.Stone)
	return true
}

// Jump moves the cursor to the given index, applying or unapplying the
// moves in between. It returns false if the cursor is already there
// and an error if the index exceeds the move total.
func (r *Record) Jump(to int) (bool, error) {
	if to > len(r.moves) {
		return false, errors.ErrIndexOutOfRange
	}
	if r.idx == to {
		return false, nil
	}
	if r.idx < to {
		for i := r.idx; i < to; i++ {
			next := r.moves[i]
			r.board.Set(next.Pos, next.Stone)
		}
	} else {
		for i := r.idx - 1; i >= to; i-- {
			r.board.Unset(r.moves[i].Pos)
		}
	}
	r.idx = to
	return true, nil
}

// InferTurn returns the stone to play next, based on past moves only:
// black on an empty record, otherwise the opposite of the last stone
// placed.
func (r *Record) InferTurn() game.Stone {
	if r.idx == 0 {
		return game.BlackStone
	}
	return r.moves[r.idx-1].Stone.Opposite()
}
