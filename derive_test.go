package srp

import (
	"crypto/sha256"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSHA256Derivation(t *testing.T) {
	salt := []byte("fixed-salt")
	password := []byte("password123")

	// x = SHA-256(salt | password), read big-endian.
	hash := sha256.New()
	hash.Write(salt)
	hash.Write(password)
	expected := new(big.Int).SetBytes(hash.Sum(nil))

	x := SHA256Derivation(salt, password)
	assert.Equal(t, 0, expected.Cmp(x), "x must equal H(salt | password)")

	// Pure function: same inputs, same output.
	again := SHA256Derivation(salt, password)
	assert.Equal(t, 0, x.Cmp(again))

	// Concatenation order is part of the contract.
	swapped := SHA256Derivation(password, salt)
	assert.NotEqual(t, 0, x.Cmp(swapped), "salt and password must not commute")
}

func TestPBKDF2Derivation(t *testing.T) {
	derive := PBKDF2Derivation(1000)

	x1 := derive([]byte("salt"), []byte("password"))
	x2 := derive([]byte("salt"), []byte("password"))
	assert.Equal(t, 0, x1.Cmp(x2), "derivation must be deterministic")

	other := derive([]byte("salt"), []byte("other-password"))
	assert.NotEqual(t, 0, x1.Cmp(other))

	moreRounds := PBKDF2Derivation(2000)([]byte("salt"), []byte("password"))
	assert.NotEqual(t, 0, x1.Cmp(moreRounds), "iteration count must change the key")
}

func TestComputeU(t *testing.T) {
	group := RFC3526Group1536

	A := new(big.Int).Exp(group.G, big.NewInt(12345), group.N)
	B := new(big.Int).Exp(group.G, big.NewInt(67890), group.N)

	u1 := computeU(group, A, B)
	u2 := computeU(group, A, B)
	assert.Equal(t, 0, u1.Cmp(u2), "u must be deterministic")

	// A-then-B ordering is part of the wire contract.
	swapped := computeU(group, B, A)
	assert.NotEqual(t, 0, u1.Cmp(swapped))

	// Padding: a small operand must hash the same as its padded form.
	small := big.NewInt(7)
	width := len(group.N.Bytes())
	hash := sha256.New()
	hash.Write(pad(small.Bytes(), width))
	hash.Write(pad(B.Bytes(), width))
	expected := new(big.Int).SetBytes(hash.Sum(nil))
	assert.Equal(t, 0, expected.Cmp(computeU(group, small, B)))
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	values := []*big.Int{
		big.NewInt(0),
		big.NewInt(1),
		big.NewInt(255),
		big.NewInt(256),
		new(big.Int).Sub(RFC3526Group1536.N, big.NewInt(1)),
	}

	for _, v := range values {
		assert.Equal(t, 0, v.Cmp(Decode(Encode(v))), "round trip failed for %v", v)
	}
}

func TestPad(t *testing.T) {
	padded := pad([]byte{0x01, 0x02}, 4)
	assert.Equal(t, []byte{0x00, 0x00, 0x01, 0x02}, padded)

	// Already at width: unchanged.
	assert.Equal(t, []byte{0x01, 0x02}, pad([]byte{0x01, 0x02}, 2))

	// Beyond width: unchanged, never truncated.
	assert.Equal(t, []byte{0x01, 0x02, 0x03}, pad([]byte{0x01, 0x02, 0x03}, 2))
}

func TestGroupDeriveDefaultsToSHA256(t *testing.T) {
	group, err := NewGroup("test", rfc5054Prime1024, 2, 3, 0, nil)
	require.NoError(t, err)

	x := group.derive([]byte("salt"), []byte("password"))
	expected := SHA256Derivation([]byte("salt"), []byte("password"))
	assert.Equal(t, 0, expected.Cmp(x))
}
