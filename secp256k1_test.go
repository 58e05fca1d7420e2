package secp256k1

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"math/big"
	"testing"

	dcrsecp "github.com/decred/dcrd/dcrec/secp256k1/v4"
	dcrecdsa "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"github.com/stretchr/testify/require"

	"github.com/curvemath/secp256k1/ecdsa"
	"github.com/curvemath/secp256k1/group"
)

// errReader fails every read, standing in for a dead entropy source.
type errReader struct{}

func (errReader) Read(p []byte) (int, error) {
	return 0, errors.New("no entropy")
}

func TestGenerateKeyPair(t *testing.T) {
	pair, err := GenerateKeyPair(rand.Reader)
	require.NoError(t, err)
	require.NotNil(t, pair.Private)
	require.NotNil(t, pair.Public)

	// The public key must be the derivation of the private scalar.
	derived := group.Secp256k1().ScalarBaseMult(pair.Private.Scalar())
	require.True(t, derived.Equal(pair.Public.Point()))

	// Two independent generations should never collide.
	other, err := GenerateKeyPair(rand.Reader)
	require.NoError(t, err)
	require.NotEqual(t, pair.Private.Bytes(), other.Private.Bytes())
}

func TestGenerateKeyPairFailingReader(t *testing.T) {
	_, err := GenerateKeyPair(errReader{})
	require.ErrorIs(t, err, ErrInsufficientEntropy)

	// A reader that always produces out-of-range draws also fails.
	_, err = GenerateKeyPair(neverEndingFF{})
	require.ErrorIs(t, err, ErrInsufficientEntropy)
}

// neverEndingFF yields 0xFF forever; every draw lands at or above the curve
// order and gets rejected.
type neverEndingFF struct{}

func (neverEndingFF) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0xFF
	}
	return len(p), nil
}

func TestPrivateKeyFromBytes(t *testing.T) {
	one := make([]byte, 32)
	one[31] = 1
	priv, err := PrivateKeyFromBytes(one)
	require.NoError(t, err)
	require.Equal(t, one, priv.Bytes())

	// d = 1 derives Q = G.
	g := group.Secp256k1().Generator()
	require.True(t, priv.PublicKey().Point().Equal(g), "1*G should be the generator")

	_, err = PrivateKeyFromBytes(make([]byte, 32))
	require.ErrorIs(t, err, ErrInvalidPrivateKey, "zero is rejected")

	order, _ := hex.DecodeString("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141")
	_, err = PrivateKeyFromBytes(order)
	require.ErrorIs(t, err, ErrInvalidPrivateKey, "n is rejected")

	_, err = PrivateKeyFromBytes([]byte{0x01})
	require.ErrorIs(t, err, ErrInvalidPrivateKey, "short input is rejected")
}

func TestPrivateKeyClear(t *testing.T) {
	pair, err := GenerateKeyPair(rand.Reader)
	require.NoError(t, err)

	pair.Private.Clear()
	require.Equal(t, make([]byte, 32), pair.Private.Bytes())
}

func TestPublicKeyFromBytes(t *testing.T) {
	pair, err := GenerateKeyPair(rand.Reader)
	require.NoError(t, err)

	compressed := pair.Public.Bytes()
	parsed, err := PublicKeyFromBytes(compressed)
	require.NoError(t, err)
	require.True(t, parsed.Point().Equal(pair.Public.Point()))

	uncompressed := pair.Public.BytesUncompressed()
	parsed, err = PublicKeyFromBytes(uncompressed)
	require.NoError(t, err)
	require.True(t, parsed.Point().Equal(pair.Public.Point()))

	_, err = PublicKeyFromBytes(nil)
	require.ErrorIs(t, err, ErrInvalidPublicKey)

	_, err = PublicKeyFromBytes(make([]byte, 33))
	require.ErrorIs(t, err, ErrInvalidPublicKey, "the all-zero encoding is not a key")

	bad := append([]byte{}, compressed...)
	bad[0] = 0x05
	_, err = PublicKeyFromBytes(bad)
	require.ErrorIs(t, err, ErrInvalidPublicKey)
}

func TestKeyPairSignVerify(t *testing.T) {
	pair, err := GenerateKeyPair(rand.Reader)
	require.NoError(t, err)
	digest := sha256.Sum256([]byte("sign through the key types"))

	sig, err := pair.Private.Sign(digest[:], ecdsa.DeterministicNonces{})
	require.NoError(t, err)
	require.True(t, pair.Public.Verify(digest[:], sig))

	wrong := sha256.Sum256([]byte("a different message"))
	require.False(t, pair.Public.Verify(wrong[:], sig))

	other, err := GenerateKeyPair(rand.Reader)
	require.NoError(t, err)
	require.False(t, other.Public.Verify(digest[:], sig))
}

func TestGeneratedKeysRoundTrip(t *testing.T) {
	for i := 0; i < 20; i++ {
		pair, err := GenerateKeyPair(rand.Reader)
		require.NoError(t, err)

		digest := sha256.Sum256([]byte{byte(i), 0xA5})
		sig, err := pair.Private.Sign(digest[:], ecdsa.DeterministicNonces{})
		require.NoError(t, err)
		require.True(t, pair.Public.Verify(digest[:], sig), "key %d", i)

		// The same signature must verify under the decred implementation.
		theirPub, err := dcrsecp.ParsePubKey(pair.Public.Bytes())
		require.NoError(t, err, "key %d", i)
		var r, s dcrsecp.ModNScalar
		sigBytes := sig.Bytes()
		require.False(t, r.SetByteSlice(sigBytes[:32]))
		require.False(t, s.SetByteSlice(sigBytes[32:]))
		require.True(t, dcrecdsa.NewSignature(&r, &s).Verify(digest[:], theirPub), "key %d", i)

		// A single flipped digest bit invalidates it.
		flipped := digest
		flipped[0] ^= 0x01
		require.False(t, pair.Public.Verify(flipped[:], sig), "key %d", i)
	}
}

func TestS256CurveParams(t *testing.T) {
	params := S256().Params()
	require.Equal(t, "secp256k1", params.Name)
	require.Equal(t, 256, params.BitSize)
	require.Equal(t,
		"fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f",
		hex.EncodeToString(params.P.FillBytes(make([]byte, 32))))
	require.Equal(t,
		"fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141",
		hex.EncodeToString(params.N.FillBytes(make([]byte, 32))))
}

func TestS256CurveOperations(t *testing.T) {
	c := S256()
	params := c.Params()

	require.True(t, c.IsOnCurve(params.Gx, params.Gy))
	require.False(t, c.IsOnCurve(big.NewInt(1), big.NewInt(1)))

	// 2G via Double and via ScalarBaseMult must agree.
	dx, dy := c.Double(params.Gx, params.Gy)
	sx, sy := c.ScalarBaseMult([]byte{2})
	require.Zero(t, dx.Cmp(sx))
	require.Zero(t, dy.Cmp(sy))

	// G + 2G = 3G.
	ax, ay := c.Add(params.Gx, params.Gy, dx, dy)
	tx, ty := c.ScalarBaseMult([]byte{3})
	require.Zero(t, ax.Cmp(tx))
	require.Zero(t, ay.Cmp(ty))

	// ScalarMult through an arbitrary point agrees with the composed
	// base multiplication.
	mx, my := c.ScalarMult(dx, dy, []byte{3})
	wx, wy := c.ScalarBaseMult([]byte{6})
	require.Zero(t, mx.Cmp(wx))
	require.Zero(t, my.Cmp(wy))

	// The (0, 0) infinity convention: P + (-P) = O.
	negY := new(big.Int).Sub(params.P, params.Gy)
	ix, iy := c.Add(params.Gx, params.Gy, params.Gx, negY)
	require.Zero(t, ix.Sign())
	require.Zero(t, iy.Sign())
}

func TestPublicKeyToECDSA(t *testing.T) {
	pair, err := GenerateKeyPair(rand.Reader)
	require.NoError(t, err)

	std := pair.Public.ToECDSA()
	require.Equal(t, S256(), std.Curve)
	require.True(t, std.Curve.IsOnCurve(std.X, std.Y))
	require.Equal(t, pair.Public.Point().X().Bytes(), std.X.FillBytes(make([]byte, 32)))
}
