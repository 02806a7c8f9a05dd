// Package srp implements the SRP-6a (Secure Remote Password) protocol engine:
// group parameters, registration, and the client- and server-side handshake
// computations. It deliberately stops at the protocol boundary: message
// transport, verifier storage, and session handling belong to the caller.
package srp

import (
	"fmt"
	"math/big"
)

// DefaultSaltLength is the salt length, in bytes, used by groups that do not
// specify their own.
const DefaultSaltLength = 16

// minGroupBits is the smallest modulus size accepted for a custom group.
const minGroupBits = 512

// Group holds the SRP group parameters shared by client and server.
// A Group is immutable after construction and safe for concurrent use by any
// number of handshakes. Client and server MUST use byte-identical parameters:
// a mismatch does not fail, it silently derives different secrets.
type Group struct {
	// Name identifies the group, e.g. "rfc3526.1536".
	Name string

	// N is the group modulus, a large safe prime.
	N *big.Int

	// G is the generator (2 for all built-in groups).
	G *big.Int

	// K is the multiplier. The built-in groups use the fixed SRP-6
	// constant k = 3 rather than SRP-6a's k = H(N | g); both sides of a
	// deployment must agree on the convention.
	K *big.Int

	// SaltLength is the length in bytes of salts drawn by Register.
	SaltLength int

	// Derive computes the private key x from salt and password.
	// When nil, SHA256Derivation is used.
	Derive KeyDerivation
}

// Built-in groups. All use g = 2 and k = 3.
var (
	// RFC5054Group1024 is the 1024-bit group from RFC 5054 Appendix A,
	// the group the published SRP test vectors use. Too small for new
	// deployments; kept for interoperability testing.
	RFC5054Group1024 = mustGroup("rfc5054.1024", rfc5054Prime1024)

	// RFC3526Group1536 is the 1536-bit MODP group from RFC 3526.
	RFC3526Group1536 = mustGroup("rfc3526.1536", rfc3526Prime1536)

	// RFC5054Group2048 is the 2048-bit group from RFC 5054 Appendix A.
	RFC5054Group2048 = mustGroup("rfc5054.2048", rfc5054Prime2048)
)

// DefaultGroup returns the group used when the deployment does not pick one
// explicitly: the RFC 3526 1536-bit MODP group.
func DefaultGroup() *Group {
	return RFC3526Group1536
}

// Hex literals as published in the RFCs.
const (
	rfc5054Prime1024 = "EEAF0AB9ADB38DD69C33F80AFA8FC5E86072618775FF3C0B9E" +
		"A2314C9C256576D674DF7496EA81D3383B4813D692C6E0E0D5D8E250B98B" +
		"E48E495C1D6089DAD15DC7D7B46154D6B6CE8EF4AD69B15D4982559B297B" +
		"CF1885C529F566660E57EC68EDBC3C05726CC02FD4CBF4976EAA9AFD5138" +
		"FE8376435B9FC61D2FC0EB06E3"

	rfc3526Prime1536 = "FFFFFFFFFFFFFFFFC90FDAA22168C234C4C6628B80DC1CD1" +
		"29024E088A67CC74020BBEA63B139B22514A08798E3404DDEF9519B3CD3A" +
		"431B302B0A6DF25F14374FE1356D6D51C245E485B576625E7EC6F44C42E9" +
		"A637ED6B0BFF5CB6F406B7EDEE386BFB5A899FA5AE9F24117C4B1FE64928" +
		"6651ECE45B3DC2007CB8A163BF0598DA48361C55D39A69163FA8FD24CF5F" +
		"83655D23DCA3AD961C62F356208552BB9ED529077096966D670C354E4ABC" +
		"9804F1746C08CA237327FFFFFFFFFFFFFFFF"

	rfc5054Prime2048 = "AC6BDB41324A9A9BF166DE5E1389582FAF72B6651987EE07" +
		"FC3192943DB56050A37329CBB4A099ED8193E0757767A13DD52312AB4B03" +
		"310DCD7F48A9DA04FD50E8083969EDB767B0CF6095179A163AB3661A05FB" +
		"D5FAAAE82918A9962F0B93B855F97993EC975EEAA80D740ADBF4FF747359" +
		"D041D5C33EA71D281E446B14773BCA97B43A23FB801676BD207A436C6481" +
		"F1D2B9078717461A5B9D32E688F87748544523B524B0D57D5EA77A2775D2" +
		"ECFA032CFBDBF52FB3786160279004E57AE6AF874E7303CE53299CCC041C" +
		"7BC308D82A5698F3A8D0C38271AE35F8E9DBFBB694B5C803D89F7AE435DE" +
		"236D525F54759B65E372FCD68EF20FA7111F9E4AFF73"
)

// NewGroup parses a custom group from a hexadecimal modulus and small
// generator and multiplier constants. It returns ErrMalformedGroup if the
// modulus does not parse, is even, or is shorter than 512 bits, or if the
// generator or multiplier is degenerate.
//
// saltLength and derive may be zero-valued to get the defaults
// (DefaultSaltLength and SHA256Derivation).
func NewGroup(name, nHex string, g, k uint64, saltLength int, derive KeyDerivation) (*Group, error) {
	n, ok := new(big.Int).SetString(nHex, 16)
	if !ok {
		return nil, fmt.Errorf("%w: modulus is not valid hex", ErrMalformedGroup)
	}
	if n.BitLen() < minGroupBits {
		return nil, fmt.Errorf("%w: modulus is only %d bits", ErrMalformedGroup, n.BitLen())
	}
	if n.Bit(0) != 1 {
		return nil, fmt.Errorf("%w: modulus must be odd", ErrMalformedGroup)
	}
	if g < 2 {
		return nil, fmt.Errorf("%w: generator must be at least 2", ErrMalformedGroup)
	}
	if k < 1 {
		return nil, fmt.Errorf("%w: multiplier must be at least 1", ErrMalformedGroup)
	}
	if saltLength < 0 {
		return nil, fmt.Errorf("%w: salt length must not be negative", ErrMalformedGroup)
	}
	if saltLength == 0 {
		saltLength = DefaultSaltLength
	}

	return &Group{
		Name:       name,
		N:          n,
		G:          new(big.Int).SetUint64(g),
		K:          new(big.Int).SetUint64(k),
		SaltLength: saltLength,
		Derive:     derive,
	}, nil
}

// mustGroup builds a built-in group from its RFC hex literal.
func mustGroup(name, nHex string) *Group {
	g, err := NewGroup(name, nHex, 2, 3, DefaultSaltLength, nil)
	if err != nil {
		panic(fmt.Sprintf("srp: bad built-in group %s: %v", name, err))
	}
	return g
}

// derive applies the group's key derivation, falling back to
// SHA256Derivation when none is configured.
func (g *Group) derive(salt, password []byte) *big.Int {
	if g.Derive != nil {
		return g.Derive(salt, password)
	}
	return SHA256Derivation(salt, password)
}

// saltLength returns the configured salt length or the default.
func (g *Group) saltLength() int {
	if g.SaltLength > 0 {
		return g.SaltLength
	}
	return DefaultSaltLength
}
