package field

import "math/big"

// Inverse sets f = a^(-1) mod p and returns f. Inverting the zero element
// fails with ErrNonInvertible; every nonzero element is invertible because
// p is prime.
func (f *FieldVal) Inverse(a *FieldVal) (*FieldVal, error) {
	if a.IsZero() {
		return nil, ErrNonInvertible
	}

	inv := new(big.Int).ModInverse(a.bigInt(), fieldPrimeBig)
	if inv == nil {
		return nil, ErrNonInvertible
	}

	f.fromBig(inv)
	return f, nil
}

// Sqrt sets f = sqrt(a) mod p and returns f, or nil if a is not a quadratic
// residue. Since p = 3 mod 4 the candidate root is a^((p+1)/4).
func (f *FieldVal) Sqrt(a *FieldVal) *FieldVal {
	if a.IsZero() {
		*f = FieldVal{}
		return f
	}

	exp := new(big.Int).Add(fieldPrimeBig, big.NewInt(1))
	exp.Rsh(exp, 2)
	root := new(big.Int).Exp(a.bigInt(), exp, fieldPrimeBig)
	f.fromBig(root)

	check := Zero().Square(f)
	if !check.Equal(a) {
		return nil
	}

	return f
}
