package ecdsa

import (
	"errors"
	"math/big"

	"github.com/curvemath/secp256k1/group"
	"github.com/curvemath/secp256k1/scalar"
)

// ErrRecoveryFailed is returned when no valid public key corresponds to the
// signature and recovery id.
var ErrRecoveryFailed = errors.New("public key recovery failed")

// RecoverPublicKey rebuilds the public key that signed the digest from the
// signature and a recovery id produced by SignRecoverable. Bit 0 of the id
// selects the parity of R.y; bit 1 selects the rare case where R.x equals
// r + n.
//
// The recovered key satisfies Q = r^-1 * (s*R - e*G).
func RecoverPublicKey(params *group.Params, digest []byte, sig *Signature, recID byte) (*group.Point, error) {
	if recID > 3 {
		return nil, ErrInvalidRecoveryID
	}
	if sig == nil || sig.r == nil || sig.s == nil || sig.r.IsZero() || sig.s.IsZero() {
		return nil, ErrInvalidSignatureFormat
	}

	// Rebuild R.x, adding the group order back for overflowed ids. The
	// result must still be a valid field element.
	x := new(big.Int).SetBytes(sig.r.Bytes())
	if recID&2 != 0 {
		x.Add(x, params.N)
		if x.Cmp(params.P) >= 0 {
			return nil, ErrRecoveryFailed
		}
	}
	var xBytes [32]byte
	x.FillBytes(xBytes[:])

	R, err := params.LiftX(xBytes[:], recID&1 == 1)
	if err != nil {
		return nil, ErrRecoveryFailed
	}

	e := digestScalar(digest)

	rInv, err := scalar.Zero().Inverse(sig.r)
	if err != nil {
		return nil, ErrInvalidSignatureFormat
	}

	// Q = r^-1 * (s*R - e*G).
	sR := params.ScalarMult(sig.s, R)
	eG := params.ScalarBaseMult(e)
	Q := params.ScalarMult(rInv, params.Sub(sR, eG))

	if Q.IsInfinity() {
		return nil, ErrRecoveryFailed
	}

	return Q, nil
}
