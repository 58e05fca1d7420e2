// Package secp256k1 is a from-scratch pure Go implementation of the
// secp256k1 elliptic curve and ECDSA.
//
// The arithmetic is layered bottom-up: the field package implements the
// base field mod p, the scalar package the integers mod the group order n,
// and the group package affine point addition, doubling, and double-and-add
// scalar multiplication driven by an explicit curve parameter set. The
// ecdsa package builds signing, verification, and public key recovery on
// top, with nonces supplied by an injected source (RFC 6979 deterministic
// or random-reader backed). This package ties the layers together with
// private/public key types, key pair generation, and a crypto/elliptic
// adapter.
//
// All values are immutable once created and every operation is a pure,
// bounded computation, so independent signing and verification calls are
// safe to run concurrently without locking.
//
// The implementation favors a clear reference algorithm over speed and
// makes no constant-time guarantees. See https://www.secg.org/sec2-v2.pdf
// for the curve standard.
package secp256k1
