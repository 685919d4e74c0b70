// flags.go - Command-line flag definitions
package main

import (
	"flag"
	"fmt"
	"os"
)

var (
	// Conversion
	encodeFEN = flag.String("e", "", "Encode a FEN string to a position identifier")
	decodeID  = flag.String("d", "", "Decode a position identifier back to FEN")
	showInt   = flag.Bool("int", false, "Also print the compressed integer form")

	// Bulk conversion
	inputFile  = flag.String("f", "", "Bulk-encode a file of FEN lines (use - for stdin)")
	numWorkers = flag.Int("j", 0, "Worker goroutines for bulk encoding (default: all CPUs)")
	stopOnErr  = flag.Bool("stoponerror", false, "Abort bulk encoding on the first bad line")

	// Rendering
	showBoard = flag.Bool("board", false, "Render the decoded position as a board")
	colored   = flag.Bool("color", false, "Use ANSI colours when rendering the board")
	noCoords  = flag.Bool("nocoords", false, "Omit rank/file coordinates on board dumps")

	// Output
	outputFile = flag.String("o", "", "Output file (default: stdout)")

	// Move store
	storePath = flag.String("store", "moves.json", "Move store path (JSON file or Badger directory)")
	useBadger = flag.Bool("badger", false, "Use a BadgerDB move store instead of a JSON file")
	getMoves  = flag.String("get", "", "Print the stored move data for an identifier")
	setMoves  = flag.String("set", "", "Store move data for an identifier (value from -moves)")
	movesJSON = flag.String("moves", "", "JSON move data for -set")

	// Miscellaneous
	cpuProfile = flag.Bool("cpuprofile", false, "Write a CPU profile to the current directory")
	version    = flag.Bool("version", false, "Print version and exit")
	help       = flag.Bool("help", false, "Print usage and exit")
)

// usage prints command-line usage information.
func usage() {
	fmt.Fprintf(os.Stderr, "Usage: fenpack [options]\n\n")
	fmt.Fprintf(os.Stderr, "fenpack converts chess positions between FEN text, a compressed integer\n")
	fmt.Fprintf(os.Stderr, "form and short URL-safe identifiers, and files opaque move data under\n")
	fmt.Fprintf(os.Stderr, "those identifiers.\n\n")
	fmt.Fprintf(os.Stderr, "Examples:\n")
	fmt.Fprintf(os.Stderr, "  fenpack -e \"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -\"\n")
	fmt.Fprintf(os.Stderr, "  fenpack -d BSNVhUy9elGyVBSH -board\n")
	fmt.Fprintf(os.Stderr, "  fenpack -f openings.fen -j 8 -o ids.txt\n")
	fmt.Fprintf(os.Stderr, "  fenpack -set BSNVhUy9elGyVBSH -moves '{\"e4\":12}' -store moves.json\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
