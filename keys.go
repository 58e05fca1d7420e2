package secp256k1

import (
	stdecdsa "crypto/ecdsa"
	"errors"
	"io"
	"math/big"

	"github.com/curvemath/secp256k1/ecdsa"
	"github.com/curvemath/secp256k1/group"
	"github.com/curvemath/secp256k1/scalar"
)

// Common errors.
var (
	// ErrInsufficientEntropy is returned when the randomness source cannot
	// supply the bits key generation needs.
	ErrInsufficientEntropy = errors.New("randomness source exhausted")

	// ErrInvalidPrivateKey is returned when private key bytes denote a
	// value outside [1, n-1].
	ErrInvalidPrivateKey = errors.New("invalid private key")

	// ErrInvalidPublicKey is returned when public key bytes do not decode
	// to a finite point on the curve.
	ErrInvalidPublicKey = errors.New("invalid public key")
)

// Rejection-sampling ceiling for key generation. A draw lands outside
// [1, n-1] with probability below 2^-127, so hitting the ceiling means the
// reader is broken.
const maxKeyGenAttempts = 256

// PrivateKey is a secp256k1 private key: a scalar in [1, n-1].
type PrivateKey struct {
	d *scalar.Scalar
}

// PublicKey is a secp256k1 public key: a finite point on the curve. Keys
// produced by this package are always derived as d*G, never constructed
// independently.
type PublicKey struct {
	point *group.Point
}

// KeyPair couples a private key with its derived public key.
type KeyPair struct {
	Private *PrivateKey
	Public  *PublicKey
}

// GenerateKeyPair samples a private scalar uniformly from [1, n-1] using
// the given reader, rejecting and resampling draws of zero or values not
// below the curve order, and derives the public point Q = d*G. A reader
// that fails or keeps producing out-of-range draws yields
// ErrInsufficientEntropy.
func GenerateKeyPair(rand io.Reader) (*KeyPair, error) {
	var buf [32]byte
	for i := 0; i < maxKeyGenAttempts; i++ {
		if _, err := io.ReadFull(rand, buf[:]); err != nil {
			return nil, ErrInsufficientEntropy
		}

		d := scalar.Zero()
		if d.SetBytesStrict(buf[:]) != nil || d.IsZero() {
			continue
		}

		priv := &PrivateKey{d: d}
		return &KeyPair{Private: priv, Public: priv.PublicKey()}, nil
	}

	return nil, ErrInsufficientEntropy
}

// PrivateKeyFromBytes parses a 32-byte big-endian private key. Values of
// zero or at least the curve order are rejected.
func PrivateKeyFromBytes(b []byte) (*PrivateKey, error) {
	d := scalar.Zero()
	if err := d.SetBytesStrict(b); err != nil {
		return nil, ErrInvalidPrivateKey
	}
	if d.IsZero() {
		return nil, ErrInvalidPrivateKey
	}
	return &PrivateKey{d: d}, nil
}

// Scalar returns a copy of the private scalar.
func (priv *PrivateKey) Scalar() *scalar.Scalar {
	return scalar.Zero().Set(priv.d)
}

// Bytes returns the private key as a 32-byte big-endian slice.
func (priv *PrivateKey) Bytes() []byte {
	return priv.d.Bytes()
}

// Clear zeroes the private scalar so it does not linger in memory.
func (priv *PrivateKey) Clear() {
	if priv.d != nil {
		priv.d.Clear()
	}
}

// PublicKey derives the public key Q = d*G.
func (priv *PrivateKey) PublicKey() *PublicKey {
	params := group.Secp256k1()
	return &PublicKey{point: params.ScalarBaseMult(priv.d)}
}

// Sign produces an ECDSA signature over the digest using nonces from the
// given source.
func (priv *PrivateKey) Sign(digest []byte, nonces ecdsa.NonceSource) (*ecdsa.Signature, error) {
	return ecdsa.Sign(group.Secp256k1(), priv.d, digest, nonces)
}

// PublicKeyFromBytes parses a compressed (33-byte) or uncompressed
// (65-byte) SEC 1 public key encoding.
func PublicKeyFromBytes(b []byte) (*PublicKey, error) {
	point, err := group.Secp256k1().ParsePoint(b)
	if err != nil || point.IsInfinity() {
		return nil, ErrInvalidPublicKey
	}
	return &PublicKey{point: point}, nil
}

// Point returns a copy of the public point.
func (pub *PublicKey) Point() *group.Point {
	return pub.point.Copy()
}

// Bytes returns the compressed 33-byte encoding of the public key.
func (pub *PublicKey) Bytes() []byte {
	return pub.point.Bytes()
}

// BytesUncompressed returns the uncompressed 65-byte encoding.
func (pub *PublicKey) BytesUncompressed() []byte {
	return pub.point.BytesUncompressed()
}

// Verify reports whether the signature is valid for the digest under this
// key. Malformed input yields false, never an error.
func (pub *PublicKey) Verify(digest []byte, sig *ecdsa.Signature) bool {
	return ecdsa.Verify(group.Secp256k1(), pub.point, digest, sig)
}

// ToECDSA converts the key to a standard library ecdsa.PublicKey on the
// S256 curve.
func (pub *PublicKey) ToECDSA() *stdecdsa.PublicKey {
	return &stdecdsa.PublicKey{
		Curve: S256(),
		X:     new(big.Int).SetBytes(pub.point.X().Bytes()),
		Y:     new(big.Int).SetBytes(pub.point.Y().Bytes()),
	}
}
