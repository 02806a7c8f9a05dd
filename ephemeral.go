package srp

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

// ephemeral is the per-attempt key pair: a private exponent drawn fresh for
// every handshake and the public power g^private mod N. The same construction
// serves both sides; client and server differ only in what they do with the
// public value afterwards. An ephemeral must never be reused across attempts.
type ephemeral struct {
	private *big.Int
	public  *big.Int
}

// newEphemeral draws a private exponent uniformly from [0, N) using the given
// random source and computes the matching public value.
func newEphemeral(group *Group, random io.Reader) (*ephemeral, error) {
	private, err := rand.Int(random, group.N)
	if err != nil {
		return nil, fmt.Errorf("%w: drawing ephemeral exponent: %v", ErrRandomSource, err)
	}

	return &ephemeral{
		private: private,
		public:  new(big.Int).Exp(group.G, private, group.N),
	}, nil
}

// clear zeroizes the private exponent. The ephemeral is unusable afterwards.
func (e *ephemeral) clear() {
	if e.private != nil {
		e.private.SetInt64(0)
		e.private = nil
	}
	e.public = nil
}

// defaultRandom substitutes crypto/rand for a nil reader.
func defaultRandom(random io.Reader) io.Reader {
	if random == nil {
		return rand.Reader
	}
	return random
}
