package chess

// NoEnPassant marks a position without an en-passant capture opportunity.
const NoEnPassant = -1

// Position is the full board state: 64 cells indexed row*8+col with a1=0,
// the side to move, castle rights, and the optional en-passant file.
//
// A Position is mutated only while it is being constructed (FEN parsing,
// decompression, manual setup). Treat it as immutable once handed to other
// callers; under that discipline every operation on it is safe for
// concurrent use.
type Position struct {
	Cells      [BoardCells]*Piece
	NextToMove Colour
	Castles    CastleRights
	EnPassant  int // file 0..7 of the capturable pawn, or NoEnPassant
}

// NewPosition returns an empty board with White to move, no castle rights
// and no en-passant file.
func NewPosition() *Position {
	return &Position{EnPassant: NoEnPassant}
}

var backRankRoles = [BoardSize]Role{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// Initial returns the standard opening position.
func Initial() *Position {
	p := NewPosition()
	for col := 0; col < BoardSize; col++ {
		p.Cells[col] = PieceOf(backRankRoles[col], White)
		p.Cells[BoardSize+col] = WhitePawn
		p.Cells[A8-BoardSize+col] = BlackPawn
		p.Cells[A8+col] = PieceOf(backRankRoles[col], Black)
	}
	p.Castles = AllRights
	return p
}

// At returns the piece on the given board index, nil for an empty cell.
func (p *Position) At(idx int) *Piece {
	return p.Cells[idx]
}

// AtSquare returns the piece on an algebraic square such as "e4".
func (p *Position) AtSquare(sq string) (*Piece, error) {
	idx, err := ParseSquare(sq)
	if err != nil {
		return nil, err
	}
	return p.Cells[idx], nil
}

// Set places a piece (or nil) on the given board index.
func (p *Position) Set(idx int, piece *Piece) {
	p.Cells[idx] = piece
}

// SetSquare places a piece (or nil) on an algebraic square.
func (p *Position) SetSquare(sq string, piece *Piece) error {
	idx, err := ParseSquare(sq)
	if err != nil {
		return err
	}
	p.Cells[idx] = piece
	return nil
}

// KingSquare returns the board index of the given colour's king, or -1 when
// no such king is on the board.
func (p *Position) KingSquare(c Colour) int {
	for idx, piece := range p.Cells {
		if piece != nil && piece.Role == King && piece.Colour == c {
			return idx
		}
	}
	return -1
}

// GuessCastleRights infers castle rights from the current board alone: a
// side gets a kingside or queenside right iff its king sits on its home
// square and the corresponding corner holds its rook. This is a heuristic
// over the present position, not game history; a king or rook that moved
// away and back still counts.
func (p *Position) GuessCastleRights() CastleRights {
	return RightsFromFlags(
		p.guessCastle(H1, E1, White),
		p.guessCastle(A1, E1, White),
		p.guessCastle(H8, E8, Black),
		p.guessCastle(A8, E8, Black),
	)
}

func (p *Position) guessCastle(rookIdx, kingIdx int, c Colour) bool {
	rook := p.Cells[rookIdx]
	king := p.Cells[kingIdx]
	if rook == nil || king == nil {
		return false
	}
	return *rook == Piece{Rook, c} && *king == Piece{King, c}
}

// deterministicCell reports whether an occupied cell carries no bits in the
// compressed form: king squares, and corner squares whose rook placement is
// already implied by a castle right.
func (p *Position) deterministicCell(idx int, piece *Piece) bool {
	if piece.Role == King {
		return true
	}
	switch idx {
	case A1:
		return p.Castles.Has(WhiteQueenside)
	case H1:
		return p.Castles.Has(WhiteKingside)
	case A8:
		return p.Castles.Has(BlackQueenside)
	case H8:
		return p.Castles.Has(BlackKingside)
	}
	return false
}
