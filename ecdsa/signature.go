package ecdsa

import (
	"errors"

	"github.com/curvemath/secp256k1/scalar"
)

// Common errors.
var (
	// ErrInvalidPrivateKey is returned when the signing scalar is outside
	// [1, n-1].
	ErrInvalidPrivateKey = errors.New("private key not in [1, n-1]")

	// ErrDegenerateNonce is returned when every sampled nonce produced a
	// degenerate signature (R at infinity, r = 0, or s = 0) and the retry
	// ceiling was reached.
	ErrDegenerateNonce = errors.New("nonce retries exhausted")

	// ErrInsufficientEntropy is returned when a randomness-backed nonce
	// source cannot supply the required bits.
	ErrInsufficientEntropy = errors.New("randomness source exhausted")

	// ErrInvalidSignatureFormat is returned when parsing a signature whose
	// r or s component is outside [1, n-1].
	ErrInvalidSignatureFormat = errors.New("signature components not in [1, n-1]")

	// ErrInvalidRecoveryID is returned for a public key recovery id
	// outside [0, 3].
	ErrInvalidRecoveryID = errors.New("recovery id not in [0, 3]")
)

// Signature is an ECDSA signature with both components canonical scalars in
// [1, n-1]. Signatures produced by Sign always carry the low-s form.
type Signature struct {
	r *scalar.Scalar
	s *scalar.Scalar
}

// NewSignature creates a signature from copies of the given components.
// The components are not validated; Verify rejects out-of-range values.
func NewSignature(r, s *scalar.Scalar) *Signature {
	return &Signature{
		r: scalar.Zero().Set(r),
		s: scalar.Zero().Set(s),
	}
}

// ParseSignature parses a 64-byte compact encoding (r || s). Components
// equal to zero or not below the curve order are rejected with
// ErrInvalidSignatureFormat.
func ParseSignature(b []byte) (*Signature, error) {
	if len(b) != 64 {
		return nil, ErrInvalidSignatureFormat
	}

	r := scalar.Zero()
	s := scalar.Zero()
	if err := r.SetBytesStrict(b[:32]); err != nil {
		return nil, ErrInvalidSignatureFormat
	}
	if err := s.SetBytesStrict(b[32:]); err != nil {
		return nil, ErrInvalidSignatureFormat
	}
	if r.IsZero() || s.IsZero() {
		return nil, ErrInvalidSignatureFormat
	}

	return &Signature{r: r, s: s}, nil
}

// Bytes returns the 64-byte compact encoding (r || s).
func (sig *Signature) Bytes() []byte {
	out := make([]byte, 64)
	copy(out[:32], sig.r.Bytes())
	copy(out[32:], sig.s.Bytes())
	return out
}

// R returns a copy of the r component.
func (sig *Signature) R() *scalar.Scalar {
	return scalar.Zero().Set(sig.r)
}

// S returns a copy of the s component.
func (sig *Signature) S() *scalar.Scalar {
	return scalar.Zero().Set(sig.s)
}

// IsLowS returns true if the s component is at most half the curve order.
func (sig *Signature) IsLowS() bool {
	return !sig.s.IsOverHalfOrder()
}
