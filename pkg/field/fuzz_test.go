package field

import (
	"math/big"
	"testing"
)

// FuzzArithmetic hammers the binary operations with arbitrary residues
// and checks that every result stays a valid least-nonnegative residue
// and that the inverse laws hold.
func FuzzArithmetic(f *testing.F) {
	const prime = 1000003

	// Seed corpus
	f.Add(uint64(0), uint64(0))
	f.Add(uint64(1), uint64(prime-1))
	f.Add(uint64(prime/2), uint64(prime/3))

	f.Fuzz(func(t *testing.T, a, b uint64) {
		a %= prime
		b %= prime

		x, err := New(new(big.Int).SetUint64(a), big.NewInt(prime))
		if err != nil {
			t.Fatalf("New(%d) failed: %v", a, err)
		}
		y, err := New(new(big.Int).SetUint64(b), big.NewInt(prime))
		if err != nil {
			t.Fatalf("New(%d) failed: %v", b, err)
		}

		check := func(name string, e Element) {
			if e.Value().Sign() < 0 || e.Value().Cmp(e.Modulus()) >= 0 {
				t.Errorf("%s(%d, %d) left the field: %s", name, a, b, e.Value())
			}
		}

		sum, err := x.Add(y)
		if err != nil {
			t.Fatalf("Add failed: %v", err)
		}
		check("Add", sum)

		diff, err := x.Sub(y)
		if err != nil {
			t.Fatalf("Sub failed: %v", err)
		}
		check("Sub", diff)

		// Sub must undo Add.
		back, err := sum.Sub(y)
		if err != nil {
			t.Fatalf("Sub failed: %v", err)
		}
		if !back.Equal(x) {
			t.Errorf("(x + y) - y != x for x=%d y=%d", a, b)
		}

		prod, err := x.Mul(y)
		if err != nil {
			t.Fatalf("Mul failed: %v", err)
		}
		check("Mul", prod)

		if b != 0 {
			quot, err := prod.Div(y)
			if err != nil {
				t.Fatalf("Div failed: %v", err)
			}
			if !quot.Equal(x) {
				t.Errorf("(x * y) / y != x for x=%d y=%d", a, b)
			}
		}
	})
}
