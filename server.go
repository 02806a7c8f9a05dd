package srp

import (
	"crypto/hmac"
	"crypto/sha256"
	"fmt"
	"io"
	"math/big"
)

// Server is the server side of a single SRP-6a handshake attempt for one
// account. It wraps a fresh ephemeral key pair plus the account's stored salt
// and verifier, and publishes B = (k*v + g^b) mod N, which folds the verifier
// into the public value. A Server must not be reused across attempts.
type Server struct {
	group      *Group
	salt       []byte
	verifier   *big.Int
	state      *ephemeral
	public     *big.Int // B, distinct from the raw ephemeral power
	secret     *big.Int // premaster secret S, set by ComputeSecret
	sessionKey []byte   // session key K = H(S), set by ComputeSecret
}

// NewServer starts a server handshake using the account's stored salt and
// verifier, generating a fresh ephemeral key pair from crypto/rand.
func NewServer(group *Group, salt []byte, verifier *big.Int) (*Server, error) {
	return NewServerWithRandom(group, salt, verifier, nil)
}

// NewServerWithRandom is NewServer with an explicit random source for the
// ephemeral key pair. A nil reader uses crypto/rand.
func NewServerWithRandom(group *Group, salt []byte, verifier *big.Int, random io.Reader) (*Server, error) {
	if verifier == nil || verifier.Sign() <= 0 {
		return nil, fmt.Errorf("srp: verifier must be a positive integer")
	}

	state, err := newEphemeral(group, defaultRandom(random))
	if err != nil {
		return nil, err
	}

	// B = (k*v + g^b) mod N. No subtraction here, so no sign correction.
	kv := new(big.Int).Mul(group.K, verifier)
	kv.Mod(kv, group.N)
	B := new(big.Int).Add(kv, state.public)
	B.Mod(B, group.N)

	// A zero B would be rejected by any correct client; restarting the
	// handshake with a fresh ephemeral is the caller's move.
	if B.Sign() == 0 {
		state.clear()
		return nil, fmt.Errorf("srp: generated B is 0 mod N, restart the handshake")
	}

	return &Server{
		group:    group,
		salt:     salt,
		verifier: verifier,
		state:    state,
		public:   B,
	}, nil
}

// B returns the server's public ephemeral value, to be sent to the client
// along with the account salt.
//
//nolint:gocritic // B is capitalized per RFC 5054 SRP-6a specification
func (s *Server) B() *big.Int {
	return s.public
}

// ComputeSecret consumes the client's public ephemeral value A and returns
// the session authenticator HMAC-SHA256(key = K, message = salt), where
// K = H(S) and S = (A * v^u)^b mod N.
//
// It aborts with ErrInvalidPublicValue if A is degenerate (A mod N == 0).
//
//nolint:gocritic // A is capitalized per RFC 5054 SRP-6a specification
func (s *Server) ComputeSecret(A *big.Int) ([]byte, error) {
	if s.state == nil {
		return nil, ErrStateCleared
	}

	N := s.group.N
	if A == nil || A.Sign() <= 0 || new(big.Int).Mod(A, N).Sign() == 0 {
		return nil, ErrInvalidPublicValue
	}

	u := computeU(s.group, A, s.public)

	// S = (A * v^u)^b mod N
	vu := new(big.Int).Exp(s.verifier, u, N)
	avu := new(big.Int).Mul(A, vu)
	avu.Mod(avu, N)
	s.secret = new(big.Int).Exp(avu, s.state.private, N)

	// K = H(S)
	key := sha256.Sum256(Encode(s.secret))
	s.sessionKey = key[:]

	mac := hmac.New(sha256.New, s.sessionKey)
	mac.Write(s.salt)
	return mac.Sum(nil), nil
}

// SessionKey returns the session key K. Valid only after a successful
// ComputeSecret and until ClearSecrets.
func (s *Server) SessionKey() []byte {
	return s.sessionKey
}

// ClearSecrets wipes the private exponent, the premaster secret, and the
// session key. The stored verifier is the credential store's copy and is
// left intact. The server is unusable afterwards.
func (s *Server) ClearSecrets() {
	if s.state != nil {
		s.state.clear()
		s.state = nil
	}
	if s.secret != nil {
		s.secret.SetInt64(0)
		s.secret = nil
	}
	for i := range s.sessionKey {
		s.sessionKey[i] = 0
	}
	s.sessionKey = nil
}
