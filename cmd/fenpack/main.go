// fenpack is a tool for converting chess positions between FEN text, a
// compressed integer form and short URL-safe position identifiers.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pkg/profile"

	"github.com/lgbarn/fenpack/internal/config"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("fenpack version %s\n", programVersion)
		os.Exit(0)
	}

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	cfg := config.NewConfig()
	applyFlags(cfg)
	setupOutputFile(cfg)

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "fenpack: %v\n", err)
		os.Exit(1)
	}
}

// run dispatches to the selected operation. Exactly one of the conversion
// and store modes is expected; they are checked in a fixed order.
func run(cfg *config.Config) error {
	switch {
	case *encodeFEN != "":
		return runEncode(cfg, *encodeFEN)
	case *decodeID != "":
		return runDecode(cfg, *decodeID)
	case *inputFile != "":
		return runBulk(cfg, *inputFile)
	case *getMoves != "":
		return runGetMoves(cfg, *getMoves)
	case *setMoves != "":
		return runSetMoves(cfg, *setMoves, *movesJSON)
	default:
		usage()
		return fmt.Errorf("no operation selected")
	}
}

// applyFlags transfers command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	cfg.Coordinates = !*noCoords
	cfg.Colored = *colored
	cfg.StorePath = *storePath
	cfg.StopOnErr = *stopOnErr
	if *useBadger {
		cfg.StoreBackend = config.StoreBadger
	}
	if *numWorkers > 0 {
		cfg.Workers = *numWorkers
	}
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}
