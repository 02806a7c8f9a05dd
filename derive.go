package srp

import (
	"crypto/sha256"
	"math/big"

	"golang.org/x/crypto/pbkdf2"
)

// KeyDerivation computes the private key x from a salt and password.
// The result is read as a big-endian integer. Both sides of a deployment
// must use the same derivation or their secrets silently diverge.
type KeyDerivation func(salt, password []byte) *big.Int

// SHA256Derivation is the default derivation: x = SHA-256(salt | password).
func SHA256Derivation(salt, password []byte) *big.Int {
	hash := sha256.New()
	hash.Write(salt)
	hash.Write(password)
	return new(big.Int).SetBytes(hash.Sum(nil))
}

// PBKDF2Derivation returns a key-stretching derivation built on
// PBKDF2-HMAC-SHA256: x = PBKDF2(password, salt, iterations).
// Custom groups can use it to slow down offline guessing against a stolen
// verifier; the built-in groups keep SHA256Derivation for interoperability.
func PBKDF2Derivation(iterations int) KeyDerivation {
	return func(salt, password []byte) *big.Int {
		key := pbkdf2.Key(password, salt, iterations, sha256.Size, sha256.New)
		return new(big.Int).SetBytes(key)
	}
}

// computeU computes the scrambling parameter u = H(PAD(A) | PAD(B)).
// Both operands are left-padded to the byte length of N so the hash input
// does not depend on leading zero bytes (RFC 5054 convention). The
// concatenation order, A then B, is part of the wire contract.
func computeU(group *Group, A, B *big.Int) *big.Int {
	width := len(group.N.Bytes())

	hash := sha256.New()
	hash.Write(pad(A.Bytes(), width))
	hash.Write(pad(B.Bytes(), width))

	return new(big.Int).SetBytes(hash.Sum(nil))
}

// Encode serializes a non-negative integer to minimal-width big-endian
// bytes, the form exchanged over the wire and fed into the session-key hash.
func Encode(x *big.Int) []byte {
	return x.Bytes()
}

// Decode is the inverse of Encode.
func Decode(b []byte) *big.Int {
	return new(big.Int).SetBytes(b)
}

// pad left-pads b with zero bytes to the given width. Input already at or
// beyond the width is returned unchanged.
func pad(b []byte, width int) []byte {
	if len(b) >= width {
		return b
	}
	padded := make([]byte, width)
	copy(padded[width-len(b):], b)
	return padded
}
