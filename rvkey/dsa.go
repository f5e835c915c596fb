package rvkey

import (
	"crypto/dsa"
	"crypto/rand"
	"crypto/sha1"
	"errors"
	"fmt"
	"math/big"
)

// DefaultBits is the key size used for new credential pairs.
const DefaultBits = 1024

// ErrGenerate is returned when the DSA primitive cannot produce a valid pair.
var ErrGenerate = errors.New("roomview: DSA key generation failed")

// ErrInvalidKeyFile is returned when a key file fails structural validation.
var ErrInvalidKeyFile = errors.New("roomview: not a valid key file")

// PrivateKey is a DSA signing key together with its public half.
// A PrivateKey is never mutated after creation.
type PrivateKey struct {
	key *dsa.PrivateKey
}

// PublicKey is a standalone DSA verification key.
// raw holds the original PEM bytes when the key was loaded from a file,
// so an import can persist it byte-for-byte.
type PublicKey struct {
	key *dsa.PublicKey
	raw []byte
}

// Generate creates a fresh key pair of the given size.
// Supported sizes are 1024, 2048 and 3072 bits.
func Generate(bits int) (*PrivateKey, error) {
	var size dsa.ParameterSizes
	switch bits {
	case 1024:
		size = dsa.L1024N160
	case 2048:
		size = dsa.L2048N256
	case 3072:
		size = dsa.L3072N256
	default:
		return nil, fmt.Errorf("%w: unsupported key size %d", ErrGenerate, bits)
	}

	key := new(dsa.PrivateKey)
	if err := dsa.GenerateParameters(&key.Parameters, rand.Reader, size); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerate, err)
	}
	if err := dsa.GenerateKey(key, rand.Reader); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerate, err)
	}
	return &PrivateKey{key: key}, nil
}

// Public returns the verification half of the pair.
func (k *PrivateKey) Public() *PublicKey {
	return &PublicKey{key: &k.key.PublicKey}
}

// IsValid reports whether the pair is cryptographically consistent.
// It checks the key structure and performs a sign/verify probe, so a pair
// that passes can actually produce verifiable signatures.
func (k *PrivateKey) IsValid() bool {
	if k == nil || k.key == nil || !paramsValid(&k.key.PublicKey) {
		return false
	}
	if k.key.X == nil || k.key.X.Sign() <= 0 || k.key.X.Cmp(k.key.Q) >= 0 {
		return false
	}
	// Y must equal G^X mod P.
	y := new(big.Int).Exp(k.key.G, k.key.X, k.key.P)
	if y.Cmp(k.key.Y) != 0 {
		return false
	}

	digest := sha1.Sum([]byte("roomview key validation probe"))
	r, s, err := dsa.Sign(rand.Reader, k.key, digest[:])
	if err != nil {
		return false
	}
	return dsa.Verify(&k.key.PublicKey, digest[:], r, s)
}

// IsValid reports whether the key is structurally sound: all parameters
// present, Q divides P-1, and both G and Y are in the subgroup range.
func (p *PublicKey) IsValid() bool {
	return p != nil && paramsValid(p.key)
}

func paramsValid(key *dsa.PublicKey) bool {
	if key == nil || key.P == nil || key.Q == nil || key.G == nil || key.Y == nil {
		return false
	}
	if key.P.BitLen() < 1024 || key.Q.Sign() <= 0 {
		return false
	}
	one := big.NewInt(1)
	pm1 := new(big.Int).Sub(key.P, one)
	if new(big.Int).Mod(pm1, key.Q).Sign() != 0 {
		return false
	}
	for _, v := range []*big.Int{key.G, key.Y} {
		if v.Cmp(one) <= 0 || v.Cmp(pm1) >= 0 {
			return false
		}
		// Subgroup membership: v^Q mod P == 1.
		if new(big.Int).Exp(v, key.Q, key.P).Cmp(one) != 0 {
			return false
		}
	}
	return true
}
