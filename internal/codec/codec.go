// Package codec maps a sequence of moves to a compact byte buffer and
// back. Each move is stored center-relative, zigzag-encoded,
// Morton-interleaved and packed with its color bit into one var-u14
// group, so games near the board center stay short.
package codec

import (
	"fmt"

	"gomoku/internal/domain/game"
	"gomoku/internal/errors"
	"gomoku/internal/usecase/record"
)

const center = game.BoardSize / 2

// Serialize encodes the moves in order. Only moves the caller
// considers past should be passed; navigation state plays no part.
func Serialize(moves []game.Move) []byte {
	buf := make([]byte, 0, len(moves)*2)
	for _, m := range moves {
		ux := zigzagEncode(int32(m.Pos.X - center))
		uy := zigzagEncode(int32(m.Pos.Y - center))
		packed := interleave(ux, uy)<<1 | uint32(m.Stone-1)
		buf = appendVarU14(buf, packed)
	}
	return buf
}

// Deserialize replays the buffer into a fresh record, move by move, as
// if each were played live; the win cache is rebuilt identically. Any
// failure returns ErrCorruptRecord and no record.
func Deserialize(buf []byte) (*record.Record, error) {
	rec := record.New()
	pos := 0
	for pos < len(buf) {
		val, err := readVarU14(buf, &pos)
		if err != nil {
			return nil, err
		}
		stone := game.Stone(val&1) + 1
		ux, uy := deinterleave(val >> 1)
		p := game.Point{
			X: int(zigzagDecode(ux)) + center,
			Y: int(zigzagDecode(uy)) + center,
		}

		ok, err := rec.Set(p, stone)
		if err != nil {
			return nil, fmt.Errorf("%w: move %d out of board", errors.ErrCorruptRecord, rec.Total()+1)
		}
		if !ok {
			return nil, fmt.Errorf("%w: move %d targets an occupied cell", errors.ErrCorruptRecord, rec.Total()+1)
		}
	}
	return rec, nil
}
