package field

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"
)

func fromHex(t *testing.T, s string) *FieldVal {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex %q: %v", s, err)
	}
	f := Zero()
	if !f.SetBytes(b) {
		t.Fatalf("SetBytes failed for %q", s)
	}
	return f
}

func TestFieldBasicOperations(t *testing.T) {
	zero := Zero()
	one := One()

	if !zero.IsZero() {
		t.Error("Zero() should return zero")
	}
	if one.IsZero() {
		t.Error("One() should not return zero")
	}

	if result := Zero().Add(zero, one); !result.Equal(one) {
		t.Error("0 + 1 should equal 1")
	}
	if result := Zero().Sub(one, one); !result.IsZero() {
		t.Error("1 - 1 should equal 0")
	}
	if result := Zero().Mul(one, one); !result.Equal(one) {
		t.Error("1 * 1 should equal 1")
	}

	two := NewFieldVal(2)
	three := NewFieldVal(3)
	if result := Zero().Add(two, three); !result.Equal(NewFieldVal(5)) {
		t.Error("2 + 3 should equal 5")
	}
	if result := Zero().Mul(two, three); !result.Equal(NewFieldVal(6)) {
		t.Error("2 * 3 should equal 6")
	}
	if result := Zero().Square(three); !result.Equal(NewFieldVal(9)) {
		t.Error("3^2 should equal 9")
	}
	if result := Zero().MulInt(three, 4); !result.Equal(NewFieldVal(12)) {
		t.Error("3 * 4 should equal 12")
	}
}

func TestFieldCanonicalReduction(t *testing.T) {
	// p itself reduces to zero.
	p := Zero()
	if !p.SetBytes(fieldPrimeBytes) {
		t.Fatal("SetBytes failed for prime bytes")
	}
	if !p.IsZero() {
		t.Error("p mod p should be zero")
	}

	// (p - 1) + 1 wraps to zero.
	pMinus1 := fromHex(t, "fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2e")
	if sum := Zero().Add(pMinus1, One()); !sum.IsZero() {
		t.Error("(p - 1) + 1 should reduce to zero")
	}

	// Negation of 1 is p - 1.
	if neg := Zero().Negate(One()); !neg.Equal(pMinus1) {
		t.Error("-1 mod p should equal p - 1")
	}

	// 0 - 1 wraps to p - 1, never a negative representative.
	if diff := Zero().Sub(Zero(), One()); !diff.Equal(pMinus1) {
		t.Error("0 - 1 should reduce to p - 1")
	}
}

func TestFieldSetBytes(t *testing.T) {
	validBytes := make([]byte, 32)
	validBytes[31] = 1

	f := Zero()
	if !f.SetBytes(validBytes) {
		t.Error("SetBytes should succeed for valid input")
	}
	if !bytes.Equal(validBytes, f.Bytes()) {
		t.Error("Bytes should round-trip correctly")
	}

	if f.SetBytes(make([]byte, 31)) {
		t.Error("SetBytes should fail for invalid length")
	}
}

func TestFieldSetBytesStrict(t *testing.T) {
	// p - 1 is canonical.
	pMinus1, _ := hex.DecodeString("fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2e")
	if err := Zero().SetBytesStrict(pMinus1); err != nil {
		t.Errorf("p - 1 should be accepted, got %v", err)
	}

	// p and anything above it is not.
	if err := Zero().SetBytesStrict(fieldPrimeBytes); !errors.Is(err, ErrValueOutOfRange) {
		t.Errorf("p should be rejected with ErrValueOutOfRange, got %v", err)
	}
	allFF := bytes.Repeat([]byte{0xFF}, 32)
	if err := Zero().SetBytesStrict(allFF); !errors.Is(err, ErrValueOutOfRange) {
		t.Errorf("2^256 - 1 should be rejected with ErrValueOutOfRange, got %v", err)
	}

	if err := Zero().SetBytesStrict(make([]byte, 31)); !errors.Is(err, ErrValueOutOfRange) {
		t.Errorf("short input should be rejected, got %v", err)
	}
}

func TestFieldNegation(t *testing.T) {
	if neg := Zero().Negate(Zero()); !neg.IsZero() {
		t.Error("negation of zero should be zero")
	}

	one := One()
	negOne := Zero().Negate(one)
	if doubleNeg := Zero().Negate(negOne); !doubleNeg.Equal(one) {
		t.Error("double negation should return the original value")
	}
	if sum := Zero().Add(one, negOne); !sum.IsZero() {
		t.Error("a + (-a) should equal zero")
	}
}

func TestFieldInverseLaw(t *testing.T) {
	one := One()
	values := []*FieldVal{
		one,
		NewFieldVal(2),
		NewFieldVal(7),
		NewFieldVal(0xDEADBEEF),
		fromHex(t, "fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2e"),
		fromHex(t, "79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"),
	}

	for _, a := range values {
		inv, err := Zero().Inverse(a)
		if err != nil {
			t.Fatalf("Inverse(%x) failed: %v", a.Bytes(), err)
		}
		if product := Zero().Mul(a, inv); !product.Equal(one) {
			t.Errorf("a * a^(-1) should equal 1 for a = %x", a.Bytes())
		}
	}
}

func TestFieldInverseZero(t *testing.T) {
	if _, err := Zero().Inverse(Zero()); !errors.Is(err, ErrNonInvertible) {
		t.Errorf("inverting zero should fail with ErrNonInvertible, got %v", err)
	}
}

func TestFieldSqrt(t *testing.T) {
	// 4 is a square; the root must square back to 4.
	four := NewFieldVal(4)
	root := Zero().Sqrt(four)
	if root == nil {
		t.Fatal("sqrt(4) should exist")
	}
	if check := Zero().Square(root); !check.Equal(four) {
		t.Error("sqrt(4)^2 should equal 4")
	}

	// The generator's x^3 + 7 must be a square since G is on the curve.
	gx := fromHex(t, "79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798")
	rhs := Zero().Square(gx)
	rhs.Mul(rhs, gx)
	rhs.Add(rhs, NewFieldVal(7))
	if Zero().Sqrt(rhs) == nil {
		t.Error("x^3 + 7 at the generator should be a quadratic residue")
	}
}

func BenchmarkFieldMul(b *testing.B) {
	a := NewFieldVal(0xDEADBEEF)
	x := NewFieldVal(0x12345678)
	result := Zero()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		result.Mul(a, x)
	}
}

func BenchmarkFieldInverse(b *testing.B) {
	a := NewFieldVal(0xDEADBEEF)
	result := Zero()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		result.Inverse(a) //nolint:errcheck
	}
}
