package chess

import (
	"github.com/lgbarn/fenpack/internal/errors"
)

// Board squares are numbered row*8+col with a1=0 and h8=63: col 0..7 maps
// a..h, row 0..7 maps ranks 1..8.
const (
	BoardCells = 64
	BoardSize  = 8

	A1 = 0
	E1 = 4
	H1 = 7
	A8 = 56
	E8 = 60
	H8 = 63
)

// SquareIndex converts (col, row) coordinates to a board index.
// Out-of-range coordinates fail with ErrInvalidCell.
func SquareIndex(col, row int) (int, error) {
	if col < 0 || col >= BoardSize || row < 0 || row >= BoardSize {
		return 0, errors.Wrapf(errors.ErrInvalidCell, "col %d row %d", col, row)
	}
	return row*BoardSize + col, nil
}

// ParseSquare converts an algebraic square like "e4" to a board index.
// Anything outside a1..h8 fails with ErrInvalidCell.
func ParseSquare(s string) (int, error) {
	if len(s) != 2 {
		return 0, errors.Wrapf(errors.ErrInvalidCell, "%q", s)
	}
	col := int(s[0] - 'a')
	if s[0] >= 'A' && s[0] <= 'H' {
		col = int(s[0] - 'A')
	}
	row := int(s[1] - '1')
	idx, err := SquareIndex(col, row)
	if err != nil {
		return 0, errors.Wrapf(errors.ErrInvalidCell, "%q", s)
	}
	return idx, nil
}

// SquareName renders a board index in algebraic form.
func SquareName(idx int) string {
	return string([]byte{byte('a' + idx%BoardSize), byte('1' + idx/BoardSize)})
}
