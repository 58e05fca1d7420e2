// Package field implements arithmetic over the secp256k1 base field.
// Field elements are integers modulo the field prime p = 2^256 - 2^32 - 977.
// Every operation returns a canonical representative in [0, p).
package field

import (
	"crypto/subtle"
	"encoding/binary"
	"errors"
	"math/big"
)

var (
	// ErrValueOutOfRange is returned when a byte encoding denotes a value
	// greater than or equal to the field prime.
	ErrValueOutOfRange = errors.New("field element not in [0, p)")

	// ErrNonInvertible is returned when inverting the zero element.
	ErrNonInvertible = errors.New("field element has no inverse")
)

// The secp256k1 field prime: p = 2^256 - 2^32 - 977
// p = 0xFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F
var (
	fieldPrimeBytes = []byte{
		0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
		0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
		0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
		0xFF, 0xFF, 0xFF, 0xFE, 0xFF, 0xFF, 0xFC, 0x2F,
	}
	fieldPrimeBig = new(big.Int).SetBytes(fieldPrimeBytes)
)

// Prime returns the field prime p as a fresh big integer.
func Prime() *big.Int {
	return new(big.Int).Set(fieldPrimeBig)
}

// FieldVal represents a field element as 8 32-bit limbs in little-endian
// limb order. The stored value is always canonical.
type FieldVal struct {
	n [8]uint32
}

// Zero returns a field element with value 0.
func Zero() *FieldVal {
	return &FieldVal{}
}

// One returns a field element with value 1.
func One() *FieldVal {
	one := &FieldVal{}
	one.n[0] = 1
	return one
}

// NewFieldVal returns a field element set to the given small value.
func NewFieldVal(v uint32) *FieldVal {
	f := &FieldVal{}
	f.n[0] = v
	return f
}

// SetBytes sets the field element to the value of the given 32-byte
// big-endian slice, reducing it modulo the field prime. It returns false if
// the slice has the wrong length.
func (f *FieldVal) SetBytes(b []byte) bool {
	if len(b) != 32 {
		return false
	}

	value := new(big.Int).SetBytes(b)
	value.Mod(value, fieldPrimeBig)
	f.setLimbs(value)
	return true
}

// SetBytesStrict sets the field element from a 32-byte big-endian slice that
// must already denote a canonical value. Unlike SetBytes it does not reduce;
// a value >= p is rejected with ErrValueOutOfRange.
func (f *FieldVal) SetBytesStrict(b []byte) error {
	if len(b) != 32 {
		return ErrValueOutOfRange
	}

	value := new(big.Int).SetBytes(b)
	if value.Cmp(fieldPrimeBig) >= 0 {
		return ErrValueOutOfRange
	}
	f.setLimbs(value)
	return nil
}

// Bytes returns the field element as a 32-byte big-endian slice.
func (f *FieldVal) Bytes() []byte {
	b := make([]byte, 32)
	for i := 0; i < 8; i++ {
		offset := 28 - i*4
		binary.BigEndian.PutUint32(b[offset:offset+4], f.n[i])
	}
	return b
}

// setLimbs loads an already reduced, non-negative big integer into the limb
// representation.
func (f *FieldVal) setLimbs(v *big.Int) {
	var buf [32]byte
	v.FillBytes(buf[:])
	for i := 0; i < 8; i++ {
		offset := 28 - i*4
		f.n[i] = binary.BigEndian.Uint32(buf[offset : offset+4])
	}
}

func (f *FieldVal) bigInt() *big.Int {
	return new(big.Int).SetBytes(f.Bytes())
}

func (f *FieldVal) fromBig(v *big.Int) {
	res := new(big.Int).Mod(v, fieldPrimeBig)
	if res.Sign() < 0 {
		res.Add(res, fieldPrimeBig)
	}
	f.setLimbs(res)
}

// IsZero returns true if the field element is zero.
func (f *FieldVal) IsZero() bool {
	bits := f.n[0] | f.n[1] | f.n[2] | f.n[3] |
		f.n[4] | f.n[5] | f.n[6] | f.n[7]
	return bits == 0
}

// IsOdd returns true if the field element is odd.
func (f *FieldVal) IsOdd() bool {
	return f.n[0]&1 == 1
}

// Equal returns true if the two field elements are equal.
func (f *FieldVal) Equal(other *FieldVal) bool {
	return subtle.ConstantTimeCompare(f.Bytes(), other.Bytes()) == 1
}

// Set sets f to a copy of a and returns f.
func (f *FieldVal) Set(a *FieldVal) *FieldVal {
	*f = *a
	return f
}

// Add sets f = a + b mod p and returns f.
func (f *FieldVal) Add(a, b *FieldVal) *FieldVal {
	res := new(big.Int).Add(a.bigInt(), b.bigInt())
	f.fromBig(res)
	return f
}

// Sub sets f = a - b mod p and returns f.
func (f *FieldVal) Sub(a, b *FieldVal) *FieldVal {
	res := new(big.Int).Sub(a.bigInt(), b.bigInt())
	f.fromBig(res)
	return f
}

// Mul sets f = a * b mod p and returns f.
func (f *FieldVal) Mul(a, b *FieldVal) *FieldVal {
	res := new(big.Int).Mul(a.bigInt(), b.bigInt())
	f.fromBig(res)
	return f
}

// MulInt sets f = a * v mod p for a small integer v and returns f.
func (f *FieldVal) MulInt(a *FieldVal, v uint32) *FieldVal {
	res := new(big.Int).Mul(a.bigInt(), new(big.Int).SetUint64(uint64(v)))
	f.fromBig(res)
	return f
}

// Square sets f = a^2 mod p and returns f.
func (f *FieldVal) Square(a *FieldVal) *FieldVal {
	return f.Mul(a, a)
}

// Negate sets f = -a mod p and returns f.
func (f *FieldVal) Negate(a *FieldVal) *FieldVal {
	if a.IsZero() {
		*f = FieldVal{}
		return f
	}

	res := new(big.Int).Neg(a.bigInt())
	f.fromBig(res)
	return f
}
