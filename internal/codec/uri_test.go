package codec

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gomoku/internal/domain/game"
	"gomoku/internal/errors"
)

func TestURIRoundTrip(t *testing.T) {
	moves := []game.Move{
		move(7, 7, game.BlackStone),
		move(7, 8, game.WhiteStone),
		move(6, 6, game.BlackStone),
	}

	uri := FormatURI(moves)
	require.True(t, strings.HasPrefix(uri, URIPrefix))

	rec, err := ParseURI(uri)
	require.NoError(t, err)
	assert.Equal(t, moves, rec.PastMoves())
}

func TestParseURITrimsWhitespace(t *testing.T) {
	uri := FormatURI([]game.Move{move(7, 7, game.BlackStone)})
	rec, err := ParseURI("  " + uri + "\n")
	require.NoError(t, err)
	assert.Equal(t, 1, rec.Total())
}

func TestParseURIRejectsPrefix(t *testing.T) {
	for _, s := range []string{"", "AAAA", "http://example.com", "gomoku:AAAA", "Gomoku://AAAA"} {
		_, err := ParseURI(s)
		assert.ErrorIs(t, err, errors.ErrCorruptRecord, "input %q", s)
	}
}

func TestParseURIRejectsForeignAlphabet(t *testing.T) {
	// '+' and '/' belong to the standard alphabet, not base64url.
	_, err := ParseURI(URIPrefix + "ab+/")
	assert.ErrorIs(t, err, errors.ErrCorruptRecord)

	_, err = ParseURI(URIPrefix + "%%%%")
	assert.ErrorIs(t, err, errors.ErrCorruptRecord)
}

func TestParseURIEmptyPayload(t *testing.T) {
	rec, err := ParseURI(URIPrefix)
	require.NoError(t, err)
	assert.Equal(t, 0, rec.Total())
}
