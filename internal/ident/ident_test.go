package ident

import (
	stderr "errors"
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/fenpack/internal/chess"
	"github.com/lgbarn/fenpack/internal/errors"
	"github.com/lgbarn/fenpack/internal/testutil"
)

func TestEncodeIntKnownValues(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "A"},
		{1, "B"},
		{25, "Z"},
		{26, "a"},
		{52, "0"},
		{62, "-"},
		{63, "_"},
		{64, "BA"},
		{65, "BB"},
		{4095, "__"},
		{4096, "BAA"},
	}
	for _, tt := range tests {
		if got := EncodeInt(big.NewInt(tt.n)); got != tt.want {
			t.Errorf("EncodeInt(%d) = %q; want %q", tt.n, got, tt.want)
		}
	}
}

func TestIntRoundTrip(t *testing.T) {
	for n := int64(0); n < 5000; n++ {
		id := EncodeInt(big.NewInt(n))
		back, err := DecodeInt(id)
		if err != nil {
			t.Fatalf("DecodeInt(%q): %v", id, err)
		}
		if back.Int64() != n {
			t.Errorf("round trip of %d gave %s", n, back)
		}
	}

	// Values far beyond 64 bits.
	big1 := new(big.Int).Exp(big.NewInt(2), big.NewInt(300), nil)
	big1.Add(big1, big.NewInt(12345))
	back, err := DecodeInt(EncodeInt(big1))
	if err != nil {
		t.Fatalf("DecodeInt: %v", err)
	}
	if back.Cmp(big1) != 0 {
		t.Errorf("round trip of %s gave %s", big1, back)
	}
}

func TestStringRoundTrip(t *testing.T) {
	// Canonical identifiers (no leading zero digit) survive both directions.
	for _, id := range []string{"B", "ZZ", "a-_9", "fenpack", "zzzzzz", "_A"} {
		n, err := DecodeInt(id)
		if err != nil {
			t.Fatalf("DecodeInt(%q): %v", id, err)
		}
		if got := EncodeInt(n); got != id {
			t.Errorf("EncodeInt(DecodeInt(%q)) = %q", id, got)
		}
	}

	// Leading "A" digits are value zero and drop out.
	n, err := DecodeInt("AAB")
	if err != nil {
		t.Fatalf("DecodeInt: %v", err)
	}
	if got := EncodeInt(n); got != "B" {
		t.Errorf("EncodeInt(DecodeInt(%q)) = %q; want %q", "AAB", got, "B")
	}
}

func TestDecodeIntInvalid(t *testing.T) {
	for _, id := range []string{"", "abc!", "+A", "A/B", "id with space"} {
		if _, err := DecodeInt(id); !stderr.Is(err, errors.ErrInvalidID) {
			t.Errorf("DecodeInt(%q) error = %v; want ErrInvalidID", id, err)
		}
	}
}

func TestPositionRoundTrip(t *testing.T) {
	fens := []string{
		chess.InitialFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -",
		"8/8/4k3/8/8/4K3/8/8 w - -",
	}
	for _, fen := range fens {
		p := testutil.MustPosition(t, fen)
		id, err := FromPosition(p)
		if err != nil {
			t.Fatalf("FromPosition(%q): %v", fen, err)
		}
		got, err := ToPosition(id)
		if err != nil {
			t.Fatalf("ToPosition(%q): %v", id, err)
		}
		if diff := cmp.Diff(p, got); diff != "" {
			t.Errorf("round trip of %q mismatch (-want +got):\n%s", fen, diff)
		}
	}
}

func TestToPositionErrors(t *testing.T) {
	if _, err := ToPosition("!!!"); !stderr.Is(err, errors.ErrInvalidID) {
		t.Errorf("ToPosition(!!!) error = %v; want ErrInvalidID", err)
	}
	// "A" names integer zero, which is not a decodable position.
	if _, err := ToPosition("A"); !stderr.Is(err, errors.ErrDecode) {
		t.Errorf("ToPosition(A) error = %v; want ErrDecode", err)
	}
}
