// Package config provides configuration for the fenpack tool.
package config

import (
	"io"
	"os"
	"runtime"
)

// StoreBackend selects the move-store implementation.
type StoreBackend int

const (
	StoreJSON   StoreBackend = iota // Single JSON file
	StoreBadger                     // BadgerDB directory
)

// Config holds the runtime options for one fenpack invocation.
type Config struct {
	// Output
	OutputFile io.Writer // Destination for ids/FEN/boards (default: stdout)
	LogFile    io.Writer // Destination for per-line conversion errors

	// Rendering
	Coordinates bool // Rank/file labels on board dumps
	Colored     bool // ANSI-coloured board dumps

	// Store
	StorePath    string // Path of the move store (file or directory)
	StoreBackend StoreBackend

	// Bulk conversion
	Workers    int // Worker goroutines for bulk mode
	StopOnErr  bool
	BufferSize int
}

// NewConfig returns a configuration with default values.
func NewConfig() *Config {
	return &Config{
		OutputFile:  os.Stdout,
		LogFile:     os.Stderr,
		Coordinates: true,
		Workers:     runtime.NumCPU(),
		BufferSize:  64,
	}
}
