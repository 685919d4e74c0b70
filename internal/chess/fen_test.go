package chess

import (
	stderr "errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/fenpack/internal/errors"
)

func TestInitialFEN(t *testing.T) {
	want := "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -"
	if got := Initial().FEN(); got != want {
		t.Errorf("Initial().FEN() = %q; want %q", got, want)
	}
}

func TestPositionFromFEN(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		wantErr error
		checkFn func(*Position) bool
	}{
		{
			name: "initial position",
			fen:  InitialFEN,
			checkFn: func(p *Position) bool {
				return *p.At(E1) == Piece{King, White} &&
					*p.At(E8) == Piece{King, Black} &&
					*p.At(12) == Piece{Pawn, White} &&
					p.NextToMove == White &&
					p.Castles == AllRights &&
					p.EnPassant == NoEnPassant
			},
		},
		{
			name: "board field only guesses castle rights",
			fen:  "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R",
			checkFn: func(p *Position) bool {
				return p.Castles == AllRights && p.NextToMove == White
			},
		},
		{
			name: "guess denies moved rook",
			fen:  "4k3/8/8/8/8/8/8/4K2R",
			checkFn: func(p *Position) bool {
				return p.Castles == WhiteKingside
			},
		},
		{
			name: "explicit dash clears rights",
			fen:  "r3k2r/8/8/8/8/8/8/R3K2R w -",
			checkFn: func(p *Position) bool {
				return p.Castles == NoRights
			},
		},
		{
			name: "black to move",
			fen:  "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b KQkq -",
			checkFn: func(p *Position) bool {
				return p.NextToMove == Black
			},
		},
		{
			name: "valid en passant",
			fen:  "rnbqkbnr/ppp1pppp/8/8/3pP3/8/PPPP1PPP/RNBQKBNR b KQkq e3",
			checkFn: func(p *Position) bool {
				return p.EnPassant == 4
			},
		},
		{
			name: "en passant with no capturing pawn is discarded",
			fen:  "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3",
			checkFn: func(p *Position) bool {
				return p.EnPassant == NoEnPassant
			},
		},
		{
			name: "en passant on an empty board is discarded",
			fen:  "8/8/8/8/8/8/8/8 w - e6",
			checkFn: func(p *Position) bool {
				return p.EnPassant == NoEnPassant
			},
		},
		{
			name: "en passant rank inconsistent with mover is discarded",
			fen:  "rnbqkbnr/ppp1pppp/8/8/3pP3/8/PPPP1PPP/RNBQKBNR w KQkq e3",
			checkFn: func(p *Position) bool {
				return p.EnPassant == NoEnPassant
			},
		},
		{
			name:    "single word",
			fen:     "invalid",
			wantErr: errors.ErrInvalidFEN,
		},
		{
			name:    "empty string",
			fen:     "   ",
			wantErr: errors.ErrInvalidFEN,
		},
		{
			name:    "seven ranks",
			fen:     "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP",
			wantErr: errors.ErrInvalidFEN,
		},
		{
			name:    "rank too long",
			fen:     "ppppppppp/8/8/8/8/8/8/8",
			wantErr: errors.ErrInvalidFEN,
		},
		{
			name:    "rank too short",
			fen:     "ppp/8/8/8/8/8/8/8",
			wantErr: errors.ErrInvalidFEN,
		},
		{
			name:    "bad piece letter",
			fen:     "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX w KQkq -",
			wantErr: errors.ErrInvalidPieceChar,
		},
		{
			name:    "bad side to move",
			fen:     "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq -",
			wantErr: errors.ErrInvalidFEN,
		},
		{
			name:    "bad en passant square",
			fen:     "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq zz",
			wantErr: errors.ErrInvalidCell,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := PositionFromFEN(tt.fen)
			if tt.wantErr != nil {
				if !stderr.Is(err, tt.wantErr) {
					t.Errorf("PositionFromFEN() error = %v; want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("PositionFromFEN(): %v", err)
			}
			if tt.checkFn != nil && !tt.checkFn(p) {
				t.Errorf("PositionFromFEN(%q) check failed:\n%s", tt.fen, p.ASCIIBoard(true))
			}
		})
	}
}

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		InitialFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -",
		"4k3/8/8/3Q4/8/8/8/4K3 b - -",
		"8/8/4k3/8/8/4K3/8/8 w - -",
		"rnbqkbnr/ppp1pppp/8/8/3pP3/8/PPPP1PPP/RNBQKBNR b KQkq e3",
		"4k3/8/8/8/8/8/8/4K2R w K -",
	}
	for _, fen := range fens {
		p, err := PositionFromFEN(fen)
		if err != nil {
			t.Fatalf("PositionFromFEN(%q): %v", fen, err)
		}
		if got := p.FEN(); got != fen {
			t.Errorf("FEN() = %q; want %q", got, fen)
		}
		// Parsing the rendering again is the identity.
		again, err := PositionFromFEN(p.FEN())
		if err != nil {
			t.Fatalf("PositionFromFEN(%q): %v", p.FEN(), err)
		}
		if diff := cmp.Diff(p, again); diff != "" {
			t.Errorf("re-parse mismatch (-want +got):\n%s", diff)
		}
	}
}
