package srp

import (
	"crypto/subtle"
	"errors"
)

// Protocol errors. All of them are fatal to the current handshake attempt;
// the caller may start a fresh handshake with new ephemeral values.
var (
	// ErrMalformedGroup indicates group parameters that could not be parsed
	// or fail basic sanity checks.
	ErrMalformedGroup = errors.New("srp: malformed group parameters")

	// ErrRandomSource indicates the secure random source failed to produce
	// bytes.
	ErrRandomSource = errors.New("srp: secure random source unavailable")

	// ErrInvalidPublicValue indicates the peer sent a public ephemeral value
	// congruent to 0 mod N. Proceeding would let the peer force a
	// predictable secret, so the handshake aborts instead.
	ErrInvalidPublicValue = errors.New("srp: peer public value is 0 mod N")

	// ErrEmptyPassword indicates an empty password was offered for
	// registration or a handshake.
	ErrEmptyPassword = errors.New("srp: password must not be empty")

	// ErrStateCleared indicates a handshake was used after ClearSecrets.
	ErrStateCleared = errors.New("srp: handshake state already cleared")
)

// VerifyAuthenticator reports whether two authenticators (or session keys)
// are equal, in constant time. Callers comparing a received authenticator
// against their own MUST use this rather than bytes.Equal.
func VerifyAuthenticator(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}
