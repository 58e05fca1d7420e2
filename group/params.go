package group

import (
	"math/big"

	"github.com/curvemath/secp256k1/field"
	"github.com/curvemath/secp256k1/scalar"
)

// Params holds the constants that define a short Weierstrass curve
// y^2 = x^3 + A*x + B over the prime field Fp, together with the generator
// and the order of the group it generates. The set is immutable and is
// passed explicitly to every group operation so nothing reads curve state
// from a hidden global.
type Params struct {
	// Name identifies the parameter set.
	Name string

	// P is the field prime and N the order of the generator.
	P *big.Int
	N *big.Int

	// A and B are the curve coefficients. secp256k1 has A = 0, B = 7.
	A *field.FieldVal
	B *field.FieldVal

	// Gx and Gy are the affine coordinates of the generator.
	Gx *field.FieldVal
	Gy *field.FieldVal

	// BitSize is the size of the underlying field in bits.
	BitSize int
}

// The published secp256k1 constants, see https://www.secg.org/sec2-v2.pdf.
var secp256k1 = &Params{
	Name: "secp256k1",
	P:    field.Prime(),
	N:    scalar.Order(),
	A:    field.Zero(),
	B:    field.NewFieldVal(7),
	Gx: mustFieldVal([]byte{
		0x79, 0xBE, 0x66, 0x7E, 0xF9, 0xDC, 0xBB, 0xAC,
		0x55, 0xA0, 0x62, 0x95, 0xCE, 0x87, 0x0B, 0x07,
		0x02, 0x9B, 0xFC, 0xDB, 0x2D, 0xCE, 0x28, 0xD9,
		0x59, 0xF2, 0x81, 0x5B, 0x16, 0xF8, 0x17, 0x98,
	}),
	Gy: mustFieldVal([]byte{
		0x48, 0x3A, 0xDA, 0x77, 0x26, 0xA3, 0xC4, 0x65,
		0x5D, 0xA4, 0xFB, 0xFC, 0x0E, 0x11, 0x08, 0xA8,
		0xFD, 0x17, 0xB4, 0x48, 0xA6, 0x85, 0x54, 0x19,
		0x9C, 0x47, 0xD0, 0x8F, 0xFB, 0x10, 0xD4, 0xB8,
	}),
	BitSize: 256,
}

// Secp256k1 returns the secp256k1 parameter set. The returned value is
// shared and must not be mutated.
func Secp256k1() *Params {
	return secp256k1
}

// Generator returns the generator point G as a fresh point.
func (params *Params) Generator() *Point {
	return NewPoint(params.Gx, params.Gy)
}

func mustFieldVal(b []byte) *field.FieldVal {
	f := field.Zero()
	if err := f.SetBytesStrict(b); err != nil {
		panic("group: invalid curve constant")
	}
	return f
}
