package scalar

import "math/big"

// Inverse sets s = a^(-1) mod n and returns s. Inverting the zero scalar
// fails with ErrNonInvertible; every nonzero scalar is invertible because
// n is prime.
func (s *Scalar) Inverse(a *Scalar) (*Scalar, error) {
	if a.IsZero() {
		return nil, ErrNonInvertible
	}

	inv := new(big.Int).ModInverse(a.bigInt(), curveOrderBig)
	if inv == nil {
		return nil, ErrNonInvertible
	}

	s.fromBig(inv)
	return s, nil
}
