// Package scalar implements arithmetic over the secp256k1 group order.
// Scalars are integers modulo the curve order n and represent private keys,
// nonces, and the r and s signature components. Every operation returns a
// canonical representative in [0, n).
package scalar

import (
	"crypto/subtle"
	"encoding/binary"
	"errors"
	"math/big"
)

var (
	// ErrValueOutOfRange is returned when a byte encoding denotes a value
	// greater than or equal to the curve order.
	ErrValueOutOfRange = errors.New("scalar not in [0, n)")

	// ErrNonInvertible is returned when inverting the zero scalar.
	ErrNonInvertible = errors.New("scalar has no inverse")
)

// The secp256k1 curve order:
// n = 0xFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141
var (
	curveOrderBytes = []byte{
		0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
		0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFE,
		0xBA, 0xAE, 0xDC, 0xE6, 0xAF, 0x48, 0xA0, 0x3B,
		0xBF, 0xD2, 0x5E, 0x8C, 0xD0, 0x36, 0x41, 0x41,
	}
	curveOrderBig = new(big.Int).SetBytes(curveOrderBytes)
	halfOrderBig  = new(big.Int).Rsh(curveOrderBig, 1)
)

// Order returns the curve order n as a fresh big integer.
func Order() *big.Int {
	return new(big.Int).Set(curveOrderBig)
}

// Scalar represents a scalar value as 8 32-bit limbs in little-endian limb
// order. The stored value is always canonical.
type Scalar struct {
	n [8]uint32
}

// Zero returns a scalar with value 0.
func Zero() *Scalar {
	return &Scalar{}
}

// One returns a scalar with value 1.
func One() *Scalar {
	one := &Scalar{}
	one.n[0] = 1
	return one
}

// NewScalar returns a scalar set to the given small value.
func NewScalar(v uint32) *Scalar {
	s := &Scalar{}
	s.n[0] = v
	return s
}

// SetBytes sets the scalar to the value of the given 32-byte big-endian
// slice, reducing it modulo the curve order. It returns false if the slice
// has the wrong length.
func (s *Scalar) SetBytes(b []byte) bool {
	if len(b) != 32 {
		return false
	}

	value := new(big.Int).SetBytes(b)
	value.Mod(value, curveOrderBig)
	s.setLimbs(value)
	return true
}

// SetBytesStrict sets the scalar from a 32-byte big-endian slice that must
// already denote a canonical value. Unlike SetBytes it does not reduce; a
// value >= n is rejected with ErrValueOutOfRange.
func (s *Scalar) SetBytesStrict(b []byte) error {
	if len(b) != 32 {
		return ErrValueOutOfRange
	}

	value := new(big.Int).SetBytes(b)
	if value.Cmp(curveOrderBig) >= 0 {
		return ErrValueOutOfRange
	}
	s.setLimbs(value)
	return nil
}

// Bytes returns the scalar as a 32-byte big-endian slice.
func (s *Scalar) Bytes() []byte {
	b := make([]byte, 32)
	for i := 0; i < 8; i++ {
		offset := 28 - i*4
		binary.BigEndian.PutUint32(b[offset:offset+4], s.n[i])
	}
	return b
}

// setLimbs loads an already reduced, non-negative big integer into the limb
// representation.
func (s *Scalar) setLimbs(v *big.Int) {
	var buf [32]byte
	v.FillBytes(buf[:])
	for i := 0; i < 8; i++ {
		offset := 28 - i*4
		s.n[i] = binary.BigEndian.Uint32(buf[offset : offset+4])
	}
}

func (s *Scalar) bigInt() *big.Int {
	return new(big.Int).SetBytes(s.Bytes())
}

func (s *Scalar) fromBig(v *big.Int) {
	res := new(big.Int).Mod(v, curveOrderBig)
	if res.Sign() < 0 {
		res.Add(res, curveOrderBig)
	}
	s.setLimbs(res)
}

// IsZero returns true if the scalar is zero.
func (s *Scalar) IsZero() bool {
	bits := s.n[0] | s.n[1] | s.n[2] | s.n[3] |
		s.n[4] | s.n[5] | s.n[6] | s.n[7]
	return bits == 0
}

// Equal returns true if the two scalars are equal. The comparison is
// constant time so private keys and nonces can be compared safely.
func (s *Scalar) Equal(other *Scalar) bool {
	return subtle.ConstantTimeCompare(s.Bytes(), other.Bytes()) == 1
}

// Set sets s to a copy of a and returns s.
func (s *Scalar) Set(a *Scalar) *Scalar {
	*s = *a
	return s
}

// Clear zeroes the scalar so sensitive values do not linger in memory.
func (s *Scalar) Clear() {
	for i := range s.n {
		s.n[i] = 0
	}
}

// Add sets s = a + b mod n and returns s.
func (s *Scalar) Add(a, b *Scalar) *Scalar {
	res := new(big.Int).Add(a.bigInt(), b.bigInt())
	s.fromBig(res)
	return s
}

// Sub sets s = a - b mod n and returns s.
func (s *Scalar) Sub(a, b *Scalar) *Scalar {
	res := new(big.Int).Sub(a.bigInt(), b.bigInt())
	s.fromBig(res)
	return s
}

// Mul sets s = a * b mod n and returns s.
func (s *Scalar) Mul(a, b *Scalar) *Scalar {
	res := new(big.Int).Mul(a.bigInt(), b.bigInt())
	s.fromBig(res)
	return s
}

// Square sets s = a^2 mod n and returns s.
func (s *Scalar) Square(a *Scalar) *Scalar {
	return s.Mul(a, a)
}

// Negate sets s = -a mod n and returns s.
func (s *Scalar) Negate(a *Scalar) *Scalar {
	if a.IsZero() {
		*s = Scalar{}
		return s
	}

	res := new(big.Int).Neg(a.bigInt())
	s.fromBig(res)
	return s
}

// Bit returns the bit of s at the given position, with position 0 being the
// least significant bit. Scalar multiplication walks these from position 255
// down to 0.
func (s *Scalar) Bit(pos uint) uint32 {
	if pos >= 256 {
		return 0
	}
	return (s.n[pos/32] >> (pos % 32)) & 1
}

// IsOverHalfOrder returns true if s > n/2. Signatures with an s component
// over the half order are normalized to n - s so only the low-s form is
// ever emitted.
func (s *Scalar) IsOverHalfOrder() bool {
	return s.bigInt().Cmp(halfOrderBig) > 0
}
