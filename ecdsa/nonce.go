package ecdsa

import (
	"crypto/hmac"
	"crypto/sha256"
	"io"

	"github.com/curvemath/secp256k1/scalar"
)

// NonceSource supplies the per-signature scalar k. Signing calls it once
// per retry with an increasing attempt counter, so deterministic sources
// can derive a fresh candidate for each attempt while random sources simply
// draw again.
//
// Nonce reuse across two different digests under the same key leaks the
// private key, which is why the nonce is an injected capability instead of
// an ambient generator.
type NonceSource interface {
	Nonce(priv *scalar.Scalar, digest []byte, attempt uint32) (*scalar.Scalar, error)
}

// DeterministicNonces derives nonces from the private key and digest with
// the HMAC-SHA256 construction of RFC 6979. The same (key, digest) pair
// always yields the same nonce, which makes signing reproducible under test
// and removes the randomness requirement from the signing path.
type DeterministicNonces struct{}

// drbg iteration ceiling; mirrors the retry bound RFC 6979 implementations
// use in practice.
const maxDRBGIterations = 1000

// Nonce returns the RFC 6979 nonce for the inputs, skipping the first
// attempt valid candidates so each signing retry sees a new value.
func (DeterministicNonces) Nonce(priv *scalar.Scalar, digest []byte, attempt uint32) (*scalar.Scalar, error) {
	x := priv.Bytes()

	// bits2octets: the digest enters the DRBG seed reduced mod n.
	e := scalar.Zero()
	e.SetBytes(digest)
	h1 := e.Bytes()

	// HMAC-DRBG instantiation per RFC 6979 section 3.2.
	V := make([]byte, 32)
	for i := range V {
		V[i] = 0x01
	}
	K := make([]byte, 32)

	K = mac(K, V, []byte{0x00}, x, h1)
	V = mac(K, V)
	K = mac(K, V, []byte{0x01}, x, h1)
	V = mac(K, V)

	skipped := uint32(0)
	for i := 0; i < maxDRBGIterations; i++ {
		V = mac(K, V)

		k := scalar.Zero()
		if k.SetBytesStrict(V) == nil && !k.IsZero() {
			if skipped >= attempt {
				return k, nil
			}
			skipped++
		}

		K = mac(K, V, []byte{0x00})
		V = mac(K, V)
	}

	return nil, ErrDegenerateNonce
}

// RandomNonces draws nonces from the injected reader with rejection
// sampling, discarding draws of zero or values not below the curve order.
type RandomNonces struct {
	Rand io.Reader
}

// Draws rejected with overwhelming probability mean a broken reader, so the
// sampling loop is bounded.
const maxSampleAttempts = 256

// Nonce returns a uniformly distributed scalar in [1, n-1].
func (rn RandomNonces) Nonce(priv *scalar.Scalar, digest []byte, attempt uint32) (*scalar.Scalar, error) {
	var buf [32]byte
	for i := 0; i < maxSampleAttempts; i++ {
		if _, err := io.ReadFull(rn.Rand, buf[:]); err != nil {
			return nil, ErrInsufficientEntropy
		}

		k := scalar.Zero()
		if k.SetBytesStrict(buf[:]) == nil && !k.IsZero() {
			return k, nil
		}
	}

	return nil, ErrInsufficientEntropy
}

// mac computes HMAC-SHA256 over the concatenated chunks.
func mac(key []byte, chunks ...[]byte) []byte {
	h := hmac.New(sha256.New, key)
	for _, c := range chunks {
		h.Write(c)
	}
	return h.Sum(nil)
}
