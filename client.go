package srp

import (
	"crypto/hmac"
	"crypto/sha256"
	"io"
	"math/big"
)

// Client is the client side of a single SRP-6a handshake attempt. It owns a
// fresh ephemeral key pair and a private copy of the password; both live only
// for the attempt and are wiped by ClearSecrets. A Client must not be reused
// across attempts.
type Client struct {
	group      *Group
	password   []byte // owned copy, zeroized by ClearSecrets
	state      *ephemeral
	secret     *big.Int // premaster secret S, set by ComputeSecret
	sessionKey []byte   // session key K = H(S), set by ComputeSecret
}

// NewClient starts a client handshake for the given password, generating a
// fresh ephemeral key pair from crypto/rand.
func NewClient(group *Group, password []byte) (*Client, error) {
	return NewClientWithRandom(group, password, nil)
}

// NewClientWithRandom is NewClient with an explicit random source for the
// ephemeral key pair. A nil reader uses crypto/rand.
func NewClientWithRandom(group *Group, password []byte, random io.Reader) (*Client, error) {
	if len(password) == 0 {
		return nil, ErrEmptyPassword
	}

	state, err := newEphemeral(group, defaultRandom(random))
	if err != nil {
		return nil, err
	}

	// Copy the password so the caller's buffer can be discarded and
	// ClearSecrets can wipe ours.
	owned := make([]byte, len(password))
	copy(owned, password)

	return &Client{
		group:    group,
		password: owned,
		state:    state,
	}, nil
}

// A returns the client's public ephemeral value, to be sent to the server.
//
//nolint:gocritic // A is capitalized per RFC 5054 SRP-6a specification
func (c *Client) A() *big.Int {
	if c.state == nil {
		return nil
	}
	return c.state.public
}

// ComputeSecret consumes the server's public ephemeral value B and the
// account salt and returns the session authenticator
// HMAC-SHA256(key = K, message = salt), where K = H(S) and
// S = (B - k*g^x)^(a + u*x) mod N.
//
// It aborts with ErrInvalidPublicValue if B is degenerate (B mod N == 0):
// such a value would let the peer force a predictable secret.
//
//nolint:gocritic // B is capitalized per RFC 5054 SRP-6a specification
func (c *Client) ComputeSecret(B *big.Int, salt []byte) ([]byte, error) {
	if c.state == nil || c.password == nil {
		return nil, ErrStateCleared
	}

	N := c.group.N
	if B == nil || B.Sign() <= 0 || new(big.Int).Mod(B, N).Sign() == 0 {
		return nil, ErrInvalidPublicValue
	}

	u := computeU(c.group, c.state.public, B)
	x := c.group.derive(salt, c.password)

	// Base: B - k*g^x, normalized into [0, N). The naive subtraction can go
	// negative; big.Int.Mod always yields the non-negative residue.
	gx := new(big.Int).Exp(c.group.G, x, N)
	kgx := new(big.Int).Mul(c.group.K, gx)
	kgx.Mod(kgx, N)
	base := new(big.Int).Sub(B, kgx)
	base.Mod(base, N)

	// Exponent: a + u*x.
	exponent := new(big.Int).Mul(u, x)
	exponent.Add(exponent, c.state.private)

	// S = (B - k*g^x)^(a + u*x) mod N
	c.secret = new(big.Int).Exp(base, exponent, N)

	// K = H(S)
	key := sha256.Sum256(Encode(c.secret))
	c.sessionKey = key[:]

	mac := hmac.New(sha256.New, c.sessionKey)
	mac.Write(salt)
	return mac.Sum(nil), nil
}

// SessionKey returns the session key K. Valid only after a successful
// ComputeSecret and until ClearSecrets.
func (c *Client) SessionKey() []byte {
	return c.sessionKey
}

// ClearSecrets wipes the password, the private exponent, the premaster
// secret, and the session key. The client is unusable afterwards.
func (c *Client) ClearSecrets() {
	for i := range c.password {
		c.password[i] = 0
	}
	c.password = nil

	if c.state != nil {
		c.state.clear()
		c.state = nil
	}
	if c.secret != nil {
		c.secret.SetInt64(0)
		c.secret = nil
	}
	for i := range c.sessionKey {
		c.sessionKey[i] = 0
	}
	c.sessionKey = nil
}
