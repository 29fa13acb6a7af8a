package codec

import (
	"encoding/base64"
	"fmt"
	"strings"

	"gomoku/internal/domain/game"
	"gomoku/internal/errors"
	"gomoku/internal/usecase/record"
)

// URIPrefix starts every textual game record.
const URIPrefix = "gomoku://"

var b64 = base64.URLEncoding.Strict()

// FormatURI wraps the serialized moves in a gomoku:// URI with a
// base64url payload.
func FormatURI(moves []game.Move) string {
	return URIPrefix + b64.EncodeToString(Serialize(moves))
}

// ParseURI decodes a gomoku:// URI into a record. Surrounding
// whitespace is tolerated; a wrong prefix or a character outside the
// base64url alphabet is rejected before the binary codec runs.
func ParseURI(s string) (*record.Record, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, URIPrefix) {
		return nil, fmt.Errorf("%w: missing %q prefix", errors.ErrCorruptRecord, URIPrefix)
	}
	data, err := b64.DecodeString(strings.TrimPrefix(s, URIPrefix))
	if err != nil {
		return nil, fmt.Errorf("%w: invalid base64url payload", errors.ErrCorruptRecord)
	}
	return Deserialize(data)
}
