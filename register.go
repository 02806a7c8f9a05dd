package srp

import (
	"fmt"
	"io"
	"math/big"
)

// Register turns a password into the (salt, verifier) pair the server stores
// in place of the password: a fresh random salt of the group's salt length
// and verifier v = g^x mod N, with x derived from salt and password.
//
// Persisting the pair is the caller's job; this package never stores
// anything. The salt must not be regenerated for an account except on
// password change.
func (g *Group) Register(password []byte) (salt []byte, verifier *big.Int, err error) {
	return g.RegisterWithRandom(password, nil)
}

// RegisterWithRandom is Register with an explicit random source. A nil
// reader uses crypto/rand. Production code should call Register; the
// injection point exists so tests can produce reproducible credentials.
func (g *Group) RegisterWithRandom(password []byte, random io.Reader) ([]byte, *big.Int, error) {
	if len(password) == 0 {
		return nil, nil, ErrEmptyPassword
	}

	salt := make([]byte, g.saltLength())
	if _, err := io.ReadFull(defaultRandom(random), salt); err != nil {
		return nil, nil, fmt.Errorf("%w: drawing salt: %v", ErrRandomSource, err)
	}

	x := g.derive(salt, password)
	verifier := new(big.Int).Exp(g.G, x, g.N)

	return salt, verifier, nil
}
