package group

import (
	"errors"

	"github.com/curvemath/secp256k1/field"
)

// Point encodings. The core exchanges points as raw coordinates; these
// helpers are the byte-sequence adapter for callers that need the standard
// SEC 1 forms.
const (
	compressedLen   = 33
	uncompressedLen = 65

	prefixEvenY        = 0x02
	prefixOddY         = 0x03
	prefixUncompressed = 0x04
)

// ErrInvalidPointEncoding is returned when a byte slice does not decode to
// a point on the curve.
var ErrInvalidPointEncoding = errors.New("invalid point encoding")

// Bytes returns the compressed 33-byte SEC 1 encoding of the point. The
// point at infinity encodes as 33 zero bytes.
func (p *Point) Bytes() []byte {
	out := make([]byte, compressedLen)
	if p.infinity {
		return out
	}

	if p.y.IsOdd() {
		out[0] = prefixOddY
	} else {
		out[0] = prefixEvenY
	}
	copy(out[1:], p.x.Bytes())
	return out
}

// BytesUncompressed returns the uncompressed 65-byte SEC 1 encoding
// (0x04 || X || Y). The point at infinity encodes as 65 zero bytes.
func (p *Point) BytesUncompressed() []byte {
	out := make([]byte, uncompressedLen)
	if p.infinity {
		return out
	}

	out[0] = prefixUncompressed
	copy(out[1:33], p.x.Bytes())
	copy(out[33:], p.y.Bytes())
	return out
}

// ParsePoint decodes a compressed or uncompressed SEC 1 encoding and
// verifies the result lies on the curve.
func (params *Params) ParsePoint(b []byte) (*Point, error) {
	switch len(b) {
	case compressedLen:
		if b[0] != prefixEvenY && b[0] != prefixOddY {
			return nil, ErrInvalidPointEncoding
		}
		return params.decompress(b[1:], b[0] == prefixOddY)

	case uncompressedLen:
		if b[0] != prefixUncompressed {
			return nil, ErrInvalidPointEncoding
		}
		x := field.Zero()
		y := field.Zero()
		if err := x.SetBytesStrict(b[1:33]); err != nil {
			return nil, ErrInvalidPointEncoding
		}
		if err := y.SetBytesStrict(b[33:]); err != nil {
			return nil, ErrInvalidPointEncoding
		}
		p := &Point{x: x, y: y}
		if !params.IsOnCurve(p) {
			return nil, ErrInvalidPointEncoding
		}
		return p, nil

	default:
		return nil, ErrInvalidPointEncoding
	}
}

// LiftX constructs the curve point with the given x-coordinate bytes and
// the requested y parity. Public key recovery uses this to rebuild R from
// the signature's r component.
func (params *Params) LiftX(xBytes []byte, oddY bool) (*Point, error) {
	return params.decompress(xBytes, oddY)
}

func (params *Params) decompress(xBytes []byte, oddY bool) (*Point, error) {
	x := field.Zero()
	if err := x.SetBytesStrict(xBytes); err != nil {
		return nil, ErrInvalidPointEncoding
	}

	// y^2 = x^3 + A*x + B; pick the root with the requested parity.
	rhs := field.Zero().Square(x)
	rhs.Mul(rhs, x)
	rhs.Add(rhs, field.Zero().Mul(params.A, x))
	rhs.Add(rhs, params.B)

	y := field.Zero().Sqrt(rhs)
	if y == nil {
		return nil, ErrInvalidPointEncoding
	}
	if y.IsOdd() != oddY {
		y = field.Zero().Negate(y)
	}
	// A zero y cannot change parity by negation.
	if y.IsOdd() != oddY {
		return nil, ErrInvalidPointEncoding
	}

	return &Point{x: x, y: y}, nil
}
