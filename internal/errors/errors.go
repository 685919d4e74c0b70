// Package errors provides sentinel errors and error types for fenpack.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidPieceChar indicates a letter outside KQRBNP (either case).
	ErrInvalidPieceChar = errors.New("invalid piece character")

	// ErrInvalidCastleRights indicates a malformed castle-rights form.
	ErrInvalidCastleRights = errors.New("invalid castle rights")

	// ErrInvalidCell indicates an out-of-range algebraic or numeric square.
	ErrInvalidCell = errors.New("invalid cell identifier")

	// ErrDecode indicates a compressed position that cannot be decoded.
	ErrDecode = errors.New("decode error")

	// ErrEncode indicates a position that cannot be compressed, such as a
	// board missing a king whose square the format must emit.
	ErrEncode = errors.New("position not encodable")

	// ErrInvalidID indicates a position identifier with characters outside
	// the base64 alphabet.
	ErrInvalidID = errors.New("invalid position identifier")
)

// DecodeError wraps ErrDecode with the bit offset at which decoding failed.
// It implements the error interface and supports unwrapping via errors.Is()
// and errors.As().
type DecodeError struct {
	Err    error  // The underlying error (defaults to ErrDecode)
	Offset int    // Bit offset in construction order (-1 if not applicable)
	Detail string // What went wrong at that offset
}

// Error returns a formatted error message including the bit offset.
func (e *DecodeError) Error() string {
	msg := e.Detail
	if msg == "" {
		msg = "malformed compressed position"
	}
	if e.Offset >= 0 {
		return fmt.Sprintf("decode error at bit %d: %s", e.Offset, msg)
	}
	return fmt.Sprintf("decode error: %s", msg)
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the DecodeError wrapper.
func (e *DecodeError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrDecode
}

// Decodef builds a *DecodeError at the given bit offset.
func Decodef(offset int, format string, args ...interface{}) error {
	return &DecodeError{Offset: offset, Detail: fmt.Sprintf(format, args...)}
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
