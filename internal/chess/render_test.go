package chess

import (
	"strings"
	"testing"
)

func TestASCIIBoard(t *testing.T) {
	board := Initial().ASCIIBoard(true)

	if !strings.Contains(board, "♔") {
		t.Error("board is missing the white king glyph")
	}
	if !strings.Contains(board, "♚") {
		t.Error("board is missing the black king glyph")
	}
	if !strings.Contains(board, "a   b   c   d   e   f   g   h") {
		t.Error("board is missing the file coordinates")
	}
	if !strings.Contains(board, " 8 |") {
		t.Error("board is missing the rank coordinates")
	}

	// 9 borders plus 8 piece rows.
	lines := strings.Split(strings.TrimRight(board, "\n"), "\n")
	if len(lines) != 18 {
		t.Errorf("board has %d lines; want 18", len(lines))
	}

	bare := Initial().ASCIIBoard(false)
	if strings.Contains(bare, "a   b") {
		t.Error("coordinate-free board still has file labels")
	}
}

func TestColoredBoard(t *testing.T) {
	board := Initial().ColoredBoard(true)
	for _, esc := range []string{"\033[44m", "\033[46m", "\033[0m"} {
		if !strings.Contains(board, esc) {
			t.Errorf("colored board is missing escape %q", esc)
		}
	}
	if !strings.Contains(board, "♚") {
		t.Error("colored board is missing the king glyph")
	}
}
