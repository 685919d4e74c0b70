// processor.go - Conversion and store operations
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/fenpack/internal/chess"
	"github.com/lgbarn/fenpack/internal/config"
	"github.com/lgbarn/fenpack/internal/ident"
	"github.com/lgbarn/fenpack/internal/store"
	"github.com/lgbarn/fenpack/internal/worker"
)

// runEncode converts one FEN string to its identifier.
func runEncode(cfg *config.Config, fen string) error {
	p, err := chess.PositionFromFEN(fen)
	if err != nil {
		return err
	}
	id, err := ident.FromPosition(p)
	if err != nil {
		return err
	}
	if *showInt {
		n, err := p.Compress()
		if err != nil {
			return err
		}
		fmt.Fprintf(cfg.OutputFile, "%s %s\n", id, n.String())
		return nil
	}
	fmt.Fprintln(cfg.OutputFile, id)
	return nil
}

// runDecode converts an identifier back to FEN, optionally with a board dump.
func runDecode(cfg *config.Config, id string) error {
	p, err := ident.ToPosition(id)
	if err != nil {
		return err
	}
	fmt.Fprintln(cfg.OutputFile, p.FEN())
	if *showInt {
		n, err := ident.DecodeInt(id)
		if err != nil {
			return err
		}
		fmt.Fprintln(cfg.OutputFile, n.String())
	}
	if *showBoard {
		if cfg.Colored {
			fmt.Fprintln(cfg.OutputFile, p.ColoredBoard(cfg.Coordinates))
		} else {
			fmt.Fprintln(cfg.OutputFile, p.ASCIIBoard(cfg.Coordinates))
		}
	}
	return nil
}

// runBulk encodes a file of FEN lines in parallel, one identifier per line.
// Ordering of the output follows completion, not input; each line is prefixed
// with its 1-based input line number.
func runBulk(cfg *config.Config, path string) error {
	in := os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	converted, failed := convertLines(cfg, in)
	if failed > 0 {
		return fmt.Errorf("%d of %d lines failed", failed, converted+failed)
	}
	return nil
}

// convertLines feeds non-blank lines from r through a worker pool and writes
// results as they complete. It returns the converted and failed line counts.
func convertLines(cfg *config.Config, r io.Reader) (converted, failed int) {
	pool := worker.NewPool(
		encodeItem,
		worker.WithWorkers(cfg.Workers),
		worker.WithBufferSize(cfg.BufferSize),
	)
	pool.Start()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for res := range pool.Results() {
			if res.Error != nil {
				failed++
				fmt.Fprintf(cfg.LogFile, "line %d: %v\n", res.Index, res.Error)
				if cfg.StopOnErr {
					pool.Stop()
				}
				continue
			}
			converted++
			fmt.Fprintf(cfg.OutputFile, "%d %s\n", res.Index, res.ID)
		}
	}()

	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		fen := strings.TrimSpace(scanner.Text())
		if fen == "" {
			continue
		}
		pool.Submit(worker.WorkItem{FEN: fen, Index: line})
	}
	pool.Close()
	<-done
	return converted, failed
}

// encodeItem is the worker pool conversion function.
func encodeItem(item worker.WorkItem) worker.ConvertResult {
	res := worker.ConvertResult{FEN: item.FEN, Index: item.Index}
	p, err := chess.PositionFromFEN(item.FEN)
	if err != nil {
		res.Error = err
		return res
	}
	res.ID, res.Error = ident.FromPosition(p)
	return res
}

// openStore opens the configured move store.
func openStore(cfg *config.Config) (store.MoveStore, error) {
	if cfg.StoreBackend == config.StoreBadger {
		return store.OpenBadger(cfg.StorePath)
	}
	return store.OpenJSON(cfg.StorePath)
}

// runGetMoves prints the stored move data for an identifier. The identifier
// is validated before the store is consulted, so a malformed id is an error
// rather than an empty result.
func runGetMoves(cfg *config.Config, id string) error {
	if _, err := ident.ToPosition(id); err != nil {
		return err
	}
	s, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	value, err := s.Get(id)
	if err != nil {
		return err
	}
	fmt.Fprintln(cfg.OutputFile, string(value))
	return nil
}

// runSetMoves stores move data for an identifier.
func runSetMoves(cfg *config.Config, id, moves string) error {
	if moves == "" {
		return fmt.Errorf("-set requires -moves")
	}
	if !json.Valid([]byte(moves)) {
		return fmt.Errorf("move data is not valid JSON")
	}
	if _, err := ident.ToPosition(id); err != nil {
		return err
	}
	s, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.Set(id, json.RawMessage(moves)); err != nil {
		return err
	}
	return s.Persist()
}
