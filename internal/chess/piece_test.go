package chess

import (
	stderr "errors"
	"testing"

	"github.com/lgbarn/fenpack/internal/errors"
)

func TestPieceFENCharRoundTrip(t *testing.T) {
	pieces := []*Piece{
		WhitePawn, WhiteKing, WhiteQueen, WhiteRook, WhiteKnight, WhiteBishop,
		BlackPawn, BlackKing, BlackQueen, BlackRook, BlackKnight, BlackBishop,
	}
	for _, piece := range pieces {
		c := piece.FENChar()
		got, err := PieceFromFEN(c)
		if err != nil {
			t.Fatalf("PieceFromFEN(%q): %v", c, err)
		}
		if *got != *piece {
			t.Errorf("PieceFromFEN(%q) = %v; want %v", c, got, piece)
		}
	}
}

func TestPieceFENChars(t *testing.T) {
	tests := []struct {
		piece *Piece
		want  byte
	}{
		{WhiteKing, 'K'},
		{WhiteQueen, 'Q'},
		{WhiteRook, 'R'},
		{WhiteBishop, 'B'},
		{WhiteKnight, 'N'},
		{WhitePawn, 'P'},
		{BlackKing, 'k'},
		{BlackPawn, 'p'},
	}
	for _, tt := range tests {
		if got := tt.piece.FENChar(); got != tt.want {
			t.Errorf("%v.FENChar() = %q; want %q", tt.piece, got, tt.want)
		}
	}
}

func TestPieceFromFENInvalid(t *testing.T) {
	for _, c := range []byte{'x', 'L', 'w', '1', ' ', '-'} {
		_, err := PieceFromFEN(c)
		if !stderr.Is(err, errors.ErrInvalidPieceChar) {
			t.Errorf("PieceFromFEN(%q) error = %v; want ErrInvalidPieceChar", c, err)
		}
	}
}

// The role codes are load-bearing for the codec: the high role bit is 0 only
// for Pawn and King.
func TestPieceCompactBits(t *testing.T) {
	tests := []struct {
		piece *Piece
		want  uint8
	}{
		{WhitePawn, 0b0000},
		{WhiteKing, 0b0001},
		{WhiteQueen, 0b0100},
		{WhiteRook, 0b0101},
		{WhiteKnight, 0b0110},
		{WhiteBishop, 0b0111},
		{BlackPawn, 0b1000},
		{BlackKing, 0b1001},
		{BlackQueen, 0b1100},
		{BlackRook, 0b1101},
		{BlackKnight, 0b1110},
		{BlackBishop, 0b1111},
	}
	for _, tt := range tests {
		if got := tt.piece.CompactBits(); got != tt.want {
			t.Errorf("%v.CompactBits() = %04b; want %04b", tt.piece, got, tt.want)
		}
	}
}

func TestPieceOfCanonical(t *testing.T) {
	if PieceOf(Rook, White) != WhiteRook {
		t.Error("PieceOf(Rook, White) is not the canonical WhiteRook value")
	}
	if PieceOf(Pawn, Black) != BlackPawn {
		t.Error("PieceOf(Pawn, Black) is not the canonical BlackPawn value")
	}
	if got := PieceOf(Role(2), White); got != nil {
		t.Errorf("PieceOf with invalid role = %v; want nil", got)
	}
}

func TestPieceString(t *testing.T) {
	if got := WhiteKnight.String(); got != "White Knight" {
		t.Errorf("String() = %q; want %q", got, "White Knight")
	}
	if got := BlackQueen.String(); got != "Black Queen" {
		t.Errorf("String() = %q; want %q", got, "Black Queen")
	}
}

func TestColourOpposite(t *testing.T) {
	if White.Opposite() != Black || Black.Opposite() != White {
		t.Error("Opposite() is not an involution over {White, Black}")
	}
}
