// Package secp256k1 fixes the parameters of the secp256k1 curve
// (y^2 = x^3 + 7 over the 256-bit prime 2^256 - 2^32 - 977) on top of
// the generic field and curve packages.
package secp256k1

import (
	"math/big"

	"github.com/smallyu/go-weierstrass/pkg/curve"
	"github.com/smallyu/go-weierstrass/pkg/field"
)

const (
	pHex  = "fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f"
	nHex  = "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141"
	gxHex = "79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"
	gyHex = "483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8"
)

var (
	p, n, gx, gy *big.Int
	a, b         field.Element
	generator    curve.Point
	identity     curve.Point
)

func init() {
	p = mustHex(pHex)
	n = mustHex(nHex)
	gx = mustHex(gxHex)
	gy = mustHex(gyHex)

	var err error
	if a, err = field.New(big.NewInt(0), p); err != nil {
		panic(err)
	}
	if b, err = field.New(big.NewInt(7), p); err != nil {
		panic(err)
	}
	if generator, err = NewPoint(gx, gy); err != nil {
		panic(err)
	}
	if identity, err = curve.New(curve.Infinity(), curve.Infinity(), a, b); err != nil {
		panic(err)
	}
}

func mustHex(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("secp256k1: hardcoded constant failed to parse")
	}
	return v
}

// P returns the field prime.
func P() *big.Int { return new(big.Int).Set(p) }

// N returns the order of the generator point.
func N() *big.Int { return new(big.Int).Set(n) }

// Gx returns the x coordinate of the generator.
func Gx() *big.Int { return new(big.Int).Set(gx) }

// Gy returns the y coordinate of the generator.
func Gy() *big.Int { return new(big.Int).Set(gy) }

// A returns the curve coefficient a (zero).
func A() field.Element { return a }

// B returns the curve coefficient b (seven).
func B() field.Element { return b }

// Generator returns the base point G.
func Generator() curve.Point { return generator }

// Infinity returns the group identity on secp256k1.
func Infinity() curve.Point { return identity }

// NewPoint validates (x, y) as a point on secp256k1.
func NewPoint(x, y *big.Int) (curve.Point, error) {
	xe, err := field.New(x, p)
	if err != nil {
		return curve.Point{}, err
	}
	ye, err := field.New(y, p)
	if err != nil {
		return curve.Point{}, err
	}
	return curve.New(curve.NewCoordinate(xe), curve.NewCoordinate(ye), a, b)
}

// ScalarMul returns k*pt with k reduced modulo the group order first,
// so any integer scalar yields the canonical result.
func ScalarMul(pt curve.Point, k *big.Int) (curve.Point, error) {
	return pt.ScalarMul(new(big.Int).Mod(k, n))
}

// ScalarBaseMul returns k*G with k reduced modulo the group order.
func ScalarBaseMul(k *big.Int) (curve.Point, error) {
	return ScalarMul(generator, k)
}
