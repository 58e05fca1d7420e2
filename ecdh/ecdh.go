// Package ecdh implements Elliptic Curve Diffie-Hellman key agreement over
// secp256k1. The shared secret is the SHA-256 hash of the compressed shared
// point d*Q, so both parties derive identical bytes from either side of the
// exchange.
package ecdh

import (
	"crypto/sha256"
	"errors"

	"github.com/curvemath/secp256k1/group"
	"github.com/curvemath/secp256k1/scalar"
)

// Common errors.
var (
	ErrInvalidPrivateKey = errors.New("invalid private key")
	ErrInvalidPublicKey  = errors.New("invalid public key")
)

// SharedSecret computes the 32-byte shared secret between the private
// scalar d and the peer's public point Q.
func SharedSecret(params *group.Params, d *scalar.Scalar, pub *group.Point) ([]byte, error) {
	if d == nil || d.IsZero() {
		return nil, ErrInvalidPrivateKey
	}
	if pub == nil || pub.IsInfinity() || !params.IsOnCurve(pub) {
		return nil, ErrInvalidPublicKey
	}

	shared := params.ScalarMult(d, pub)
	if shared.IsInfinity() {
		return nil, ErrInvalidPublicKey
	}

	secret := sha256.Sum256(shared.Bytes())
	return secret[:], nil
}
