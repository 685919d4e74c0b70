package chess

import (
	"strings"

	"github.com/lgbarn/fenpack/internal/errors"
)

// CastleRights is a 4-bit capability set over the four castle moves.
// Bit weights are 8/4/2/1 for white-kingside, white-queenside,
// black-kingside, black-queenside. It is advisory metadata attached to a
// Position; nothing ties it to the board contents.
type CastleRights uint8

const (
	WhiteKingside  CastleRights = 8
	WhiteQueenside CastleRights = 4
	BlackKingside  CastleRights = 2
	BlackQueenside CastleRights = 1

	NoRights  CastleRights = 0
	AllRights CastleRights = 15
)

// RightsFromFlags builds rights from four booleans in wk, wq, bk, bq order.
func RightsFromFlags(wk, wq, bk, bq bool) CastleRights {
	var r CastleRights
	if wk {
		r |= WhiteKingside
	}
	if wq {
		r |= WhiteQueenside
	}
	if bk {
		r |= BlackKingside
	}
	if bq {
		r |= BlackQueenside
	}
	return r
}

// RightsFromInt parses the integer form of the 4-bit mask.
// Values outside [0, 15] fail with ErrInvalidCastleRights.
func RightsFromInt(n int) (CastleRights, error) {
	if n < 0 || n > 15 {
		return 0, errors.Wrapf(errors.ErrInvalidCastleRights, "value %d out of range", n)
	}
	return CastleRights(n), nil
}

// RightsFromBits4 parses a 4-character bit string in wk, wq, bk, bq order,
// optionally prefixed with "0b". Wrong length or non-binary characters fail
// with ErrInvalidCastleRights.
func RightsFromBits4(s string) (CastleRights, error) {
	s = strings.TrimPrefix(s, "0b")
	if len(s) != 4 {
		return 0, errors.Wrapf(errors.ErrInvalidCastleRights, "bit string %q is not 4 characters", s)
	}
	var r CastleRights
	for _, c := range s {
		r <<= 1
		switch c {
		case '1':
			r |= 1
		case '0':
		default:
			return 0, errors.Wrapf(errors.ErrInvalidCastleRights, "bit string %q contains %q", s, c)
		}
	}
	return r, nil
}

// Has reports whether every flag in mask is set.
func (r CastleRights) Has(mask CastleRights) bool {
	return r&mask == mask
}

// With returns the rights with the given flags set or cleared.
func (r CastleRights) With(mask CastleRights, allowed bool) CastleRights {
	if allowed {
		return r | mask
	}
	return r &^ mask
}

// Side reports whether the given colour retains any castle right.
func (r CastleRights) Side(c Colour) bool {
	if c == White {
		return r&(WhiteKingside|WhiteQueenside) != 0
	}
	return r&(BlackKingside|BlackQueenside) != 0
}

// Bits4 renders the rights as a 4-character bit string in wk, wq, bk, bq order.
func (r CastleRights) Bits4() string {
	b := make([]byte, 4)
	for i := 0; i < 4; i++ {
		b[i] = '0' + byte(r>>(3-i))&1
	}
	return string(b)
}

// FEN renders the rights in FEN form: a subset of "KQkq" in that fixed
// order, or "-" when no right remains.
func (r CastleRights) FEN() string {
	if r == NoRights {
		return "-"
	}
	var sb strings.Builder
	if r.Has(WhiteKingside) {
		sb.WriteByte('K')
	}
	if r.Has(WhiteQueenside) {
		sb.WriteByte('Q')
	}
	if r.Has(BlackKingside) {
		sb.WriteByte('k')
	}
	if r.Has(BlackQueenside) {
		sb.WriteByte('q')
	}
	return sb.String()
}

// String returns the FEN form.
func (r CastleRights) String() string {
	return r.FEN()
}
