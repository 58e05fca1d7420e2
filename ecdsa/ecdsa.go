// Package ecdsa implements ECDSA signing, verification, and public key
// recovery over secp256k1.
//
// Signing takes a private scalar, a message digest, and an injected nonce
// source; verification is a pure predicate that never fails with an error.
// Signatures are always emitted in the canonical low-s form: when the
// computed s exceeds n/2 it is replaced by n - s. Both forms verify, so
// fixing the emitted form keeps signatures non-malleable and matches the
// convention of the wider secp256k1 ecosystem.
package ecdsa

import (
	"github.com/curvemath/secp256k1/group"
	"github.com/curvemath/secp256k1/scalar"
)

// Retry ceiling for the signing loop. Degenerate nonces occur with
// probability around 2^-256 per attempt, but the loop must be bounded to
// stay total.
const maxSignAttempts = 32

// RejectReason identifies why a signature failed verification. It is a
// diagnostic code, not an error: every malformed input resolves to a false
// verdict.
type RejectReason string

// Verification reject reasons.
const (
	// RejectNone indicates the signature verified.
	RejectNone = RejectReason("")

	// RejectMissingSignature indicates a nil signature or component.
	RejectMissingSignature = RejectReason("RejectMissingSignature")

	// RejectPubKeyInfinity indicates the public point is the point at
	// infinity.
	RejectPubKeyInfinity = RejectReason("RejectPubKeyInfinity")

	// RejectPubKeyNotOnCurve indicates the public point does not satisfy
	// the curve equation.
	RejectPubKeyNotOnCurve = RejectReason("RejectPubKeyNotOnCurve")

	// RejectRZero indicates the r component is zero.
	RejectRZero = RejectReason("RejectRZero")

	// RejectSZero indicates the s component is zero.
	RejectSZero = RejectReason("RejectSZero")

	// RejectRPointInfinity indicates u1*G + u2*Q evaluated to the point
	// at infinity.
	RejectRPointInfinity = RejectReason("RejectRPointInfinity")

	// RejectMismatch indicates the recomputed x-coordinate does not match
	// the r component.
	RejectMismatch = RejectReason("RejectMismatch")
)

// digestScalar reduces a message digest to a scalar mod n. Digests longer
// than 32 bytes are truncated to their leftmost 32 bytes, matching the
// usual treatment of oversized hashes on a 256-bit curve.
func digestScalar(digest []byte) *scalar.Scalar {
	var buf [32]byte
	if len(digest) > 32 {
		digest = digest[:32]
	}
	copy(buf[32-len(digest):], digest)

	e := scalar.Zero()
	e.SetBytes(buf[:])
	return e
}

// normalizeDigest returns the 32-byte form of the digest handed to nonce
// sources, so deterministic derivation sees the same bytes signing does.
func normalizeDigest(digest []byte) []byte {
	var buf [32]byte
	if len(digest) > 32 {
		digest = digest[:32]
	}
	copy(buf[32-len(digest):], digest)
	return buf[:]
}

// Sign produces an ECDSA signature over the digest with the given private
// scalar. Nonces come from the injected source; candidates that produce a
// degenerate signature are discarded and redrawn up to the retry ceiling,
// after which ErrDegenerateNonce is returned. The private scalar must be in
// [1, n-1] or signing fails with ErrInvalidPrivateKey before any
// computation.
func Sign(params *group.Params, priv *scalar.Scalar, digest []byte, nonces NonceSource) (*Signature, error) {
	sig, _, err := sign(params, priv, digest, nonces)
	return sig, err
}

// SignRecoverable is Sign plus the recovery id that identifies which of the
// candidate curve points RecoverPublicKey should rebuild: bit 0 carries the
// parity of R.y and bit 1 is set when R.x overflowed the group order.
func SignRecoverable(params *group.Params, priv *scalar.Scalar, digest []byte, nonces NonceSource) (*Signature, byte, error) {
	return sign(params, priv, digest, nonces)
}

func sign(params *group.Params, priv *scalar.Scalar, digest []byte, nonces NonceSource) (*Signature, byte, error) {
	// A canonical scalar is always below n, so zero is the only value
	// outside [1, n-1].
	if priv.IsZero() {
		return nil, 0, ErrInvalidPrivateKey
	}

	digest = normalizeDigest(digest)
	e := digestScalar(digest)

	for attempt := uint32(0); attempt < maxSignAttempts; attempt++ {
		k, err := nonces.Nonce(priv, digest, attempt)
		if err != nil {
			return nil, 0, err
		}
		if k.IsZero() {
			continue
		}

		// R = k*G; discard nonces that land on the identity.
		R := params.ScalarBaseMult(k)
		if R.IsInfinity() {
			continue
		}

		// r = R.x mod n.
		rx := R.X()
		r := scalar.Zero()
		r.SetBytes(rx.Bytes())
		if r.IsZero() {
			continue
		}

		// s = k^-1 * (e + r*d) mod n.
		kInv, err := scalar.Zero().Inverse(k)
		if err != nil {
			continue
		}
		s := scalar.Zero().Mul(r, priv)
		s.Add(s, e)
		s.Mul(s, kInv)
		if s.IsZero() {
			continue
		}

		recID := byte(0)
		if !R.IsEven() {
			recID |= 1
		}
		rxScalar := scalar.Zero()
		if rxScalar.SetBytesStrict(rx.Bytes()) != nil {
			// R.x did not fit below the group order.
			recID |= 2
		}

		// Low-s normalization; negating s flips the parity of the
		// implied R.y.
		if s.IsOverHalfOrder() {
			s.Negate(s)
			recID ^= 1
		}

		return &Signature{r: r, s: s}, recID, nil
	}

	return nil, 0, ErrDegenerateNonce
}

// Verify reports whether the signature is valid for the digest under the
// public point. It never returns an error: malformed input of any kind
// yields false.
func Verify(params *group.Params, pub *group.Point, digest []byte, sig *Signature) bool {
	ok, _ := VerifyWithReason(params, pub, digest, sig)
	return ok
}

// VerifyWithReason is Verify plus a diagnostic reason code describing the
// first check the signature failed.
func VerifyWithReason(params *group.Params, pub *group.Point, digest []byte, sig *Signature) (bool, RejectReason) {
	if sig == nil || sig.r == nil || sig.s == nil {
		return false, RejectMissingSignature
	}
	if pub == nil || pub.IsInfinity() {
		return false, RejectPubKeyInfinity
	}
	if !params.IsOnCurve(pub) {
		return false, RejectPubKeyNotOnCurve
	}

	// Canonical scalars are always below n, so the range checks reduce to
	// rejecting zero.
	if sig.r.IsZero() {
		return false, RejectRZero
	}
	if sig.s.IsZero() {
		return false, RejectSZero
	}

	e := digestScalar(digest)

	// w = s^-1; u1 = e*w; u2 = r*w.
	w, err := scalar.Zero().Inverse(sig.s)
	if err != nil {
		return false, RejectSZero
	}
	u1 := scalar.Zero().Mul(e, w)
	u2 := scalar.Zero().Mul(sig.r, w)

	// R' = u1*G + u2*Q.
	rPrime := params.Add(params.ScalarBaseMult(u1), params.ScalarMult(u2, pub))
	if rPrime.IsInfinity() {
		return false, RejectRPointInfinity
	}

	// Accept iff R'.x mod n equals r.
	v := scalar.Zero()
	v.SetBytes(rPrime.X().Bytes())
	if !v.Equal(sig.r) {
		return false, RejectMismatch
	}

	return true, RejectNone
}
