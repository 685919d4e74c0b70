package testutil

import (
	"testing"

	"github.com/lgbarn/fenpack/internal/chess"
)

// MustPosition parses a FEN string and fails the test on error.
func MustPosition(t *testing.T, fen string) *chess.Position {
	t.Helper()
	p, err := chess.PositionFromFEN(fen)
	if err != nil {
		t.Fatalf("PositionFromFEN(%q): %v", fen, err)
	}
	return p
}
