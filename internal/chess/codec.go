package chess

import (
	"math/big"
	"strings"

	"github.com/lgbarn/fenpack/internal/errors"
)

// The compressed form is built in construction order: side to move (1 bit),
// castle rights (4 bits), the white and black king squares (6 bits each,
// only when not implied by castle rights), the en-passant field (1 bit, plus
// 3 file bits when set), then one entry per cell from a1 to h8. Empty cells
// cost a single 0; occupied cells cost a 1 followed by the piece's compact
// bits truncated to the minimum width their context allows. Cells whose
// occupant is already implied (kings, castle-right corner rooks) cost
// nothing.
//
// The finished sequence is reversed before being read as an integer. An
// integer keeps its low bits exactly but sheds leading zeros, so reversal
// puts the header at the preserved end and turns an empty tail of the board
// into the shed zero run. Decoding reverses back and zero-fills whatever the
// integer shed.

// BitString returns the compressed form of the position as a bit string in
// integer order (the reverse of construction order). It fails with ErrEncode
// when a king whose square must be emitted is missing from the board.
func (p *Position) BitString() (string, error) {
	var sb strings.Builder
	sb.WriteByte(byte('0' + p.NextToMove))
	sb.WriteString(p.Castles.Bits4())

	for _, c := range []Colour{White, Black} {
		if p.Castles.Side(c) {
			continue
		}
		king := p.KingSquare(c)
		if king < 0 {
			return "", errors.Wrapf(errors.ErrEncode, "no %v king on the board", c)
		}
		writeBits(&sb, uint(king), 6)
	}

	if p.EnPassant == NoEnPassant {
		sb.WriteByte('0')
	} else {
		sb.WriteByte('1')
		writeBits(&sb, uint(p.EnPassant), 3)
	}

	for idx, piece := range p.Cells {
		if piece == nil {
			sb.WriteByte('0')
			continue
		}
		if p.deterministicCell(idx, piece) {
			continue
		}
		sb.WriteByte('1')
		switch {
		case piece.Role == Pawn:
			// Colour plus the role's high bit, which is always 0.
			writeBits(&sb, uint(piece.CompactBits())>>2, 2)
		case backRank(idx):
			// No pawns here and kings are deterministic, so the role's
			// high bit is always 1 and is left implicit.
			writeBits(&sb, uint(piece.Colour)<<2|uint(piece.Role)&3, 3)
		default:
			writeBits(&sb, uint(piece.CompactBits()), 4)
		}
	}

	return reverseBits(sb.String()), nil
}

// Compress returns the compressed form of the position as an unsigned
// arbitrary-precision integer.
func (p *Position) Compress() (*big.Int, error) {
	bits, err := p.BitString()
	if err != nil {
		return nil, err
	}
	n, ok := new(big.Int).SetString(bits, 2)
	if !ok {
		return nil, errors.Wrap(errors.ErrEncode, "internal bit string corrupt")
	}
	return n, nil
}

// Decompress reconstructs a position from its compressed integer form.
func Decompress(n *big.Int) (*Position, error) {
	if n.Sign() < 0 {
		return nil, errors.Decodef(-1, "negative integer")
	}
	return DecompressBits(n.Text(2))
}

// DecompressBits reconstructs a position from a compressed bit string in
// integer order. Leading zero bits are accepted and ignored, matching the
// integer form.
func DecompressBits(bits string) (*Position, error) {
	for i := 0; i < len(bits); i++ {
		if bits[i] != '0' && bits[i] != '1' {
			return nil, errors.Decodef(-1, "bit string contains %q", bits[i])
		}
	}
	r := bitReader{bits: reverseBits(bits)}

	p := NewPosition()
	p.NextToMove = Colour(r.take(1))
	p.Castles = CastleRights(r.take(4))

	if err := placeKing(p, &r, White, E1, WhiteKingside, H1, WhiteQueenside, A1); err != nil {
		return nil, err
	}
	if err := placeKing(p, &r, Black, E8, BlackKingside, H8, BlackQueenside, A8); err != nil {
		return nil, err
	}

	if r.take(1) == 1 {
		p.EnPassant = int(r.take(3))
	}

	for idx := 0; idx < BoardCells; idx++ {
		if p.Cells[idx] != nil {
			// Implied by the header; no bits to consume.
			continue
		}
		if r.take(1) == 0 {
			continue
		}
		colour := Colour(r.take(1))
		role := Pawn
		if backRank(idx) || r.take(1) == 1 {
			role = Role(4 | r.take(2))
		}
		p.Cells[idx] = PieceOf(role, colour)
	}

	// Bits the encoder never produces: anything set past the last cell.
	for i := r.pos; i < len(r.bits); i++ {
		if r.bits[i] == '1' {
			return nil, errors.Decodef(i, "unconsumed bits after final cell")
		}
	}
	return p, nil
}

// placeKing resolves one side's king square and implied corner rooks from
// the castle-rights header, reading an explicit 6-bit square when the rights
// imply nothing.
func placeKing(p *Position, r *bitReader, c Colour, home int, kingside CastleRights, kingCorner int, queenside CastleRights, queenCorner int) error {
	king := home
	if p.Castles.Side(c) {
		rook := PieceOf(Rook, c)
		if p.Castles.Has(kingside) {
			p.Cells[kingCorner] = rook
		}
		if p.Castles.Has(queenside) {
			p.Cells[queenCorner] = rook
		}
	} else {
		king = int(r.take(6))
	}
	if p.Cells[king] != nil {
		return errors.Decodef(r.pos, "%v king square %s already occupied", c, SquareName(king))
	}
	p.Cells[king] = PieceOf(King, c)
	return nil
}

// backRank reports whether a board index lies on rank 1 or rank 8.
func backRank(idx int) bool {
	return idx < BoardSize || idx >= BoardCells-BoardSize
}

// bitReader walks a bit string in construction order. Reads past the end
// yield zero bits: the integer form sheds exactly the trailing zero run of
// the construction-order sequence, so the reader regenerates it.
type bitReader struct {
	bits string
	pos  int
}

// take consumes n bits, most significant first.
func (r *bitReader) take(n int) uint {
	var v uint
	for i := 0; i < n; i++ {
		v <<= 1
		if r.pos < len(r.bits) && r.bits[r.pos] == '1' {
			v |= 1
		}
		r.pos++
	}
	return v
}

// writeBits appends the n-bit big-endian form of v.
func writeBits(sb *strings.Builder, v uint, n int) {
	for i := n - 1; i >= 0; i-- {
		sb.WriteByte(byte('0' + v>>uint(i)&1))
	}
}

func reverseBits(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}
