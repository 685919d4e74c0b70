package chess

import "strings"

// ASCIIBoard renders the board as a bordered grid from White's point of
// view, optionally with rank and file coordinates. Intended for debugging
// output.
func (p *Position) ASCIIBoard(coordinates bool) string {
	var sb strings.Builder
	writeBorder(&sb, coordinates)
	for row := BoardSize - 1; row >= 0; row-- {
		if coordinates {
			sb.WriteString(" " + string(byte('1'+row)) + " ")
		}
		sb.WriteByte('|')
		for col := 0; col < BoardSize; col++ {
			piece := p.Cells[row*BoardSize+col]
			if piece == nil {
				sb.WriteString("   ")
			} else {
				sb.WriteString(" " + piece.Unicode(false) + " ")
			}
			sb.WriteByte('|')
		}
		sb.WriteByte('\n')
		writeBorder(&sb, coordinates)
	}
	if coordinates {
		sb.WriteString("     a   b   c   d   e   f   g   h  ")
	}
	return sb.String()
}

func writeBorder(sb *strings.Builder, coordinates bool) {
	if coordinates {
		sb.WriteString("   ")
	}
	sb.WriteString(strings.Repeat("+---", BoardSize) + "+\n")
}

// ColoredBoard renders the board with ANSI background colours for the
// squares and coloured glyphs for the pieces. Only useful on terminals that
// honour the escape codes.
func (p *Position) ColoredBoard(coordinates bool) string {
	var sb strings.Builder
	for row := BoardSize - 1; row >= 0; row-- {
		if coordinates {
			sb.WriteString(" " + string(byte('1'+row)) + " ")
		}
		for col := 0; col < BoardSize; col++ {
			if col%2 == row%2 {
				sb.WriteString("\033[44m")
			} else {
				sb.WriteString("\033[46m")
			}
			piece := p.Cells[row*BoardSize+col]
			if piece == nil {
				sb.WriteString("   ")
			} else {
				sb.WriteString(" " + piece.Unicode(true) + " ")
			}
		}
		sb.WriteString("\033[0m\n")
	}
	if coordinates {
		sb.WriteString("    a  b  c  d  e  f  g  h ")
	}
	return sb.String()
}
