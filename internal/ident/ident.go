// Package ident renders compressed positions as short URL-safe identifiers.
// An identifier is the positional base-64 form of the position's compressed
// integer, using the alphabet A-Z a-z 0-9 - _ with "A" for zero. It carries
// no meaning beyond naming the integer compactly; it is the key under which
// external stores file a position's data.
package ident

import (
	"math/big"
	"strings"

	"github.com/lgbarn/fenpack/internal/chess"
	"github.com/lgbarn/fenpack/internal/errors"
)

// Alphabet is the URL-safe base64 digit set, digit value = index.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

var base = big.NewInt(64)

// EncodeInt renders a non-negative integer in positional base 64, most
// significant digit first. Zero encodes as "A".
func EncodeInt(n *big.Int) string {
	if n.Sign() == 0 {
		return "A"
	}
	var digits []byte
	n = new(big.Int).Set(n)
	r := new(big.Int)
	for n.Sign() > 0 {
		n.QuoRem(n, base, r)
		digits = append(digits, Alphabet[r.Int64()])
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return string(digits)
}

// DecodeInt evaluates a base-64 identifier back to its integer. Empty input
// or characters outside the alphabet fail with ErrInvalidID.
func DecodeInt(id string) (*big.Int, error) {
	if id == "" {
		return nil, errors.Wrap(errors.ErrInvalidID, "empty identifier")
	}
	n := new(big.Int)
	for i := 0; i < len(id); i++ {
		v := strings.IndexByte(Alphabet, id[i])
		if v < 0 {
			return nil, errors.Wrapf(errors.ErrInvalidID, "character %q", id[i])
		}
		n.Mul(n, base)
		n.Add(n, big.NewInt(int64(v)))
	}
	return n, nil
}

// FromPosition returns the identifier for a position's compressed form.
func FromPosition(p *chess.Position) (string, error) {
	n, err := p.Compress()
	if err != nil {
		return "", err
	}
	return EncodeInt(n), nil
}

// ToPosition reconstructs the position an identifier names.
func ToPosition(id string) (*chess.Position, error) {
	n, err := DecodeInt(id)
	if err != nil {
		return nil, err
	}
	return chess.Decompress(n)
}
