// Package chess provides the core position model: pieces, castle rights,
// the 8x8 board with side to move and en-passant state, the FEN translator,
// and the compressed integer codec.
package chess

import (
	"fmt"

	"github.com/lgbarn/fenpack/internal/errors"
)

// Colour represents the colour of a piece or player.
type Colour uint8

const (
	White Colour = 0
	Black Colour = 1
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Role identifies a piece type. The numeric values are the 3-bit role codes
// used by the compressed form: the high bit is 0 only for Pawn and King,
// both of which are encoded outside the generic piece path.
type Role uint8

const (
	Pawn   Role = 0 // 000
	King   Role = 1 // 001
	Queen  Role = 4 // 100
	Rook   Role = 5 // 101
	Knight Role = 6 // 110
	Bishop Role = 7 // 111
)

// String returns the string representation of a role.
func (r Role) String() string {
	switch r {
	case Pawn:
		return "Pawn"
	case King:
		return "King"
	case Queen:
		return "Queen"
	case Rook:
		return "Rook"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	}
	return "Unknown"
}

// Piece is an immutable (role, colour) value. Exactly 12 distinct values
// exist; equality is structural. Board cells hold *Piece with nil meaning
// empty, and the canonical package-level values below are shared freely.
type Piece struct {
	Role   Role
	Colour Colour
}

// Canonical piece values. PieceOf returns these, so pointer identity holds
// for pieces obtained through the package, but callers must not rely on it:
// compare by value.
var (
	WhitePawn   = &Piece{Pawn, White}
	WhiteKing   = &Piece{King, White}
	WhiteQueen  = &Piece{Queen, White}
	WhiteRook   = &Piece{Rook, White}
	WhiteKnight = &Piece{Knight, White}
	WhiteBishop = &Piece{Bishop, White}
	BlackPawn   = &Piece{Pawn, Black}
	BlackKing   = &Piece{King, Black}
	BlackQueen  = &Piece{Queen, Black}
	BlackRook   = &Piece{Rook, Black}
	BlackKnight = &Piece{Knight, Black}
	BlackBishop = &Piece{Bishop, Black}
)

var pieceTable = map[Piece]*Piece{
	{Pawn, White}: WhitePawn, {King, White}: WhiteKing,
	{Queen, White}: WhiteQueen, {Rook, White}: WhiteRook,
	{Knight, White}: WhiteKnight, {Bishop, White}: WhiteBishop,
	{Pawn, Black}: BlackPawn, {King, Black}: BlackKing,
	{Queen, Black}: BlackQueen, {Rook, Black}: BlackRook,
	{Knight, Black}: BlackKnight, {Bishop, Black}: BlackBishop,
}

// PieceOf returns the canonical piece value for a (role, colour) pair,
// or nil if role is not one of the six piece roles.
func PieceOf(role Role, colour Colour) *Piece {
	return pieceTable[Piece{role, colour}]
}

// String returns e.g. "White Rook".
func (p *Piece) String() string {
	return fmt.Sprintf("%v %v", p.Colour, p.Role)
}

// FENChar returns the FEN letter for the piece: KQRBNP for White,
// lower-cased for Black.
func (p *Piece) FENChar() byte {
	var c byte
	switch p.Role {
	case King:
		c = 'K'
	case Queen:
		c = 'Q'
	case Rook:
		c = 'R'
	case Bishop:
		c = 'B'
	case Knight:
		c = 'N'
	default:
		c = 'P'
	}
	if p.Colour == Black {
		c += 'a' - 'A'
	}
	return c
}

// PieceFromFEN converts a FEN letter to its piece value. Any letter outside
// KQRBNP (case-insensitive) fails with ErrInvalidPieceChar.
func PieceFromFEN(c byte) (*Piece, error) {
	colour := White
	if c >= 'a' && c <= 'z' {
		colour = Black
		c -= 'a' - 'A'
	}
	var role Role
	switch c {
	case 'K':
		role = King
	case 'Q':
		role = Queen
	case 'R':
		role = Rook
	case 'B':
		role = Bishop
	case 'N':
		role = Knight
	case 'P':
		role = Pawn
	default:
		return nil, errors.Wrapf(errors.ErrInvalidPieceChar, "%q", c)
	}
	return PieceOf(role, colour), nil
}

// CompactBits returns the 4-bit compressed pattern for the piece: the colour
// bit (0=White, 1=Black) followed by the 3-bit role code, colour most
// significant.
func (p *Piece) CompactBits() uint8 {
	return uint8(p.Colour)<<3 | uint8(p.Role)
}

// Unicode returns the chess glyph for the piece. With colored set, the glyph
// is the filled variant prefixed with an ANSI colour code (for dark-background
// board rendering); otherwise White pieces use the outline glyphs.
func (p *Piece) Unicode(colored bool) string {
	var icon rune
	switch p.Role {
	case King:
		icon = '♚'
	case Queen:
		icon = '♛'
	case Rook:
		icon = '♜'
	case Bishop:
		icon = '♝'
	case Knight:
		icon = '♞'
	default:
		icon = '♟'
	}
	if colored {
		code := "\033[37m"
		if p.Colour == Black {
			code = "\033[30m"
		}
		return code + string(icon)
	}
	if p.Colour == White {
		icon -= 6
	}
	return string(icon)
}
