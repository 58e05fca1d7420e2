package secp256k1

import (
	"crypto/elliptic"
	"math/big"

	"github.com/curvemath/secp256k1/field"
	"github.com/curvemath/secp256k1/group"
	"github.com/curvemath/secp256k1/scalar"
)

// koblitzCurve adapts the group package to the crypto/elliptic interface so
// keys interoperate with the standard library. The affine convention of
// crypto/elliptic applies: the point at infinity is (0, 0).
type koblitzCurve struct {
	params *group.Params
}

var s256 = &koblitzCurve{params: group.Secp256k1()}

// S256 returns the secp256k1 curve as a crypto/elliptic Curve.
func S256() elliptic.Curve {
	return s256
}

func (c *koblitzCurve) Params() *elliptic.CurveParams {
	return &elliptic.CurveParams{
		P:       new(big.Int).Set(c.params.P),
		N:       new(big.Int).Set(c.params.N),
		B:       new(big.Int).SetBytes(c.params.B.Bytes()),
		Gx:      new(big.Int).SetBytes(c.params.Gx.Bytes()),
		Gy:      new(big.Int).SetBytes(c.params.Gy.Bytes()),
		BitSize: c.params.BitSize,
		Name:    c.params.Name,
	}
}

func (c *koblitzCurve) IsOnCurve(x, y *big.Int) bool {
	p, ok := pointFromBig(x, y)
	if !ok || p.IsInfinity() {
		return false
	}
	return c.params.IsOnCurve(p)
}

func (c *koblitzCurve) Add(x1, y1, x2, y2 *big.Int) (*big.Int, *big.Int) {
	p1, ok1 := pointFromBig(x1, y1)
	p2, ok2 := pointFromBig(x2, y2)
	if !ok1 || !ok2 {
		return big.NewInt(0), big.NewInt(0)
	}
	return bigFromPoint(c.params.Add(p1, p2))
}

func (c *koblitzCurve) Double(x1, y1 *big.Int) (*big.Int, *big.Int) {
	p, ok := pointFromBig(x1, y1)
	if !ok {
		return big.NewInt(0), big.NewInt(0)
	}
	return bigFromPoint(c.params.Double(p))
}

func (c *koblitzCurve) ScalarMult(x1, y1 *big.Int, k []byte) (*big.Int, *big.Int) {
	p, ok := pointFromBig(x1, y1)
	if !ok {
		return big.NewInt(0), big.NewInt(0)
	}
	return bigFromPoint(c.params.ScalarMult(scalarFromBytes(k), p))
}

func (c *koblitzCurve) ScalarBaseMult(k []byte) (*big.Int, *big.Int) {
	return bigFromPoint(c.params.ScalarBaseMult(scalarFromBytes(k)))
}

func pointFromBig(x, y *big.Int) (*group.Point, bool) {
	if x == nil || y == nil {
		return nil, false
	}
	if x.Sign() == 0 && y.Sign() == 0 {
		return group.Infinity(), true
	}

	var xBytes, yBytes [32]byte
	if x.BitLen() > 256 || y.BitLen() > 256 {
		return nil, false
	}
	x.FillBytes(xBytes[:])
	y.FillBytes(yBytes[:])

	fx := field.Zero()
	fy := field.Zero()
	if fx.SetBytesStrict(xBytes[:]) != nil || fy.SetBytesStrict(yBytes[:]) != nil {
		return nil, false
	}
	return group.NewPoint(fx, fy), true
}

func bigFromPoint(p *group.Point) (*big.Int, *big.Int) {
	if p.IsInfinity() {
		return big.NewInt(0), big.NewInt(0)
	}
	return new(big.Int).SetBytes(p.X().Bytes()), new(big.Int).SetBytes(p.Y().Bytes())
}

// scalarFromBytes reduces an arbitrary-length big-endian scalar mod n,
// keeping the rightmost 32 bytes of oversized inputs.
func scalarFromBytes(k []byte) *scalar.Scalar {
	var buf [32]byte
	if len(k) > 32 {
		k = k[len(k)-32:]
	}
	copy(buf[32-len(k):], k)

	s := scalar.Zero()
	s.SetBytes(buf[:])
	return s
}
