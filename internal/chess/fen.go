package chess

import (
	"strings"

	"github.com/lgbarn/fenpack/internal/errors"
)

// InitialFEN is the starting position in the reduced FEN dialect used here:
// board, side to move, castling and en-passant, with no move counters.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -"

// PositionFromFEN parses a FEN string. Only the board field is mandatory;
// side to move defaults to White, absent castle rights are guessed from the
// board (see GuessCastleRights), and the en-passant field defaults to none.
// An en-passant claim that no pawn of the moving side could act on is
// silently discarded.
func PositionFromFEN(fen string) (*Position, error) {
	parts := strings.Fields(fen)
	if len(parts) == 0 {
		return nil, errors.Wrap(errors.ErrInvalidFEN, "empty FEN string")
	}

	p := NewPosition()
	if err := parseBoard(p, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(p, parts); err != nil {
		return nil, err
	}
	if len(parts) >= 3 {
		parseCastleRights(p, parts[2])
	} else {
		p.Castles = p.GuessCastleRights()
	}
	if err := parseEnPassant(p, parts); err != nil {
		return nil, err
	}
	return p, nil
}

// parseBoard parses the piece placement field: 8 ranks from rank 8 down to
// rank 1, each covering exactly 8 columns.
func parseBoard(p *Position, field string) error {
	ranks := strings.Split(field, "/")
	if len(ranks) != BoardSize {
		return errors.Wrapf(errors.ErrInvalidFEN, "board has %d ranks", len(ranks))
	}
	for i, rank := range ranks {
		row := BoardSize - 1 - i
		col := 0
		for j := 0; j < len(rank); j++ {
			c := rank[j]
			if c >= '1' && c <= '8' {
				col += int(c - '0')
				continue
			}
			piece, err := PieceFromFEN(c)
			if err != nil {
				return err
			}
			if col >= BoardSize {
				return errors.Wrapf(errors.ErrInvalidFEN, "rank %d overflows 8 columns", row+1)
			}
			p.Cells[row*BoardSize+col] = piece
			col++
		}
		if col != BoardSize {
			return errors.Wrapf(errors.ErrInvalidFEN, "rank %d covers %d columns", row+1, col)
		}
	}
	return nil
}

// parseSideToMove parses the side-to-move field when present.
func parseSideToMove(p *Position, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		p.NextToMove = White
	case "b":
		p.NextToMove = Black
	default:
		return errors.Wrapf(errors.ErrInvalidFEN, "side to move %q", parts[1])
	}
	return nil
}

// parseCastleRights sets rights by character membership; characters outside
// KQkq (including "-") set nothing.
func parseCastleRights(p *Position, field string) {
	p.Castles = RightsFromFlags(
		strings.ContainsRune(field, 'K'),
		strings.ContainsRune(field, 'Q'),
		strings.ContainsRune(field, 'k'),
		strings.ContainsRune(field, 'q'),
	)
}

// parseEnPassant parses the en-passant target square and keeps it only when
// the side to move actually has a pawn placed to make the capture. A
// syntactically broken square is an error; a merely impossible claim is
// dropped.
func parseEnPassant(p *Position, parts []string) error {
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	idx, err := ParseSquare(parts[3])
	if err != nil {
		return err
	}
	file, row := idx%BoardSize, idx/BoardSize

	// The target square sits behind the capturable pawn: row 5 when White
	// is to move, row 2 when Black is.
	targetRow, captureRow := 5, 4
	if p.NextToMove == Black {
		targetRow, captureRow = 2, 3
	}
	if row != targetRow {
		return nil
	}
	mover := Piece{Pawn, p.NextToMove}
	for _, adj := range []int{file - 1, file + 1} {
		if adj < 0 || adj >= BoardSize {
			continue
		}
		if piece := p.Cells[captureRow*BoardSize+adj]; piece != nil && *piece == mover {
			p.EnPassant = file
			return nil
		}
	}
	return nil
}

// FEN renders the position in the reduced FEN dialect.
func (p *Position) FEN() string {
	var sb strings.Builder
	writeBoard(&sb, p)
	sb.WriteByte(' ')
	if p.NextToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	sb.WriteString(p.Castles.FEN())
	sb.WriteByte(' ')
	writeEnPassant(&sb, p)
	return sb.String()
}

// writeBoard writes the piece placement field, run-length-encoding empty
// squares per rank.
func writeBoard(sb *strings.Builder, p *Position) {
	for row := BoardSize - 1; row >= 0; row-- {
		empty := 0
		for col := 0; col < BoardSize; col++ {
			piece := p.Cells[row*BoardSize+col]
			if piece == nil {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(piece.FENChar())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if row > 0 {
			sb.WriteByte('/')
		}
	}
}

// writeEnPassant writes the en-passant target square or "-".
func writeEnPassant(sb *strings.Builder, p *Position) {
	if p.EnPassant == NoEnPassant {
		sb.WriteByte('-')
		return
	}
	row := 5
	if p.NextToMove == Black {
		row = 2
	}
	sb.WriteString(SquareName(row*BoardSize + p.EnPassant))
}
