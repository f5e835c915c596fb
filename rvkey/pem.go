package rvkey

import (
	"crypto/dsa"
	"crypto/x509"
	"encoding/asn1"
	"encoding/pem"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
)

const (
	privatePEMType = "DSA PRIVATE KEY"
	publicPEMType  = "PUBLIC KEY"
)

// oidDSA is the PKIX object identifier for DSA keys (id-dsa).
var oidDSA = asn1.ObjectIdentifier{1, 2, 840, 10040, 4, 1}

// dsaPrivateASN1 is the OpenSSL DSA private key sequence.
type dsaPrivateASN1 struct {
	Version int
	P, Q, G *big.Int
	Y, X    *big.Int
}

// dsaParamsASN1 is the Dss-Parms sequence carried in the PKIX algorithm
// identifier.
type dsaParamsASN1 struct {
	P, Q, G *big.Int
}

type dsaAlgorithmASN1 struct {
	Algorithm  asn1.ObjectIdentifier
	Parameters dsaParamsASN1
}

// dsaPublicASN1 is the PKIX SubjectPublicKeyInfo for a DSA key. The bit
// string wraps Y as a DER INTEGER.
type dsaPublicASN1 struct {
	Algorithm dsaAlgorithmASN1
	PublicKey asn1.BitString
}

// MarshalPEM encodes the private key as an OpenSSL "DSA PRIVATE KEY" block.
func (k *PrivateKey) MarshalPEM() ([]byte, error) {
	der, err := asn1.Marshal(dsaPrivateASN1{
		Version: 0,
		P:       k.key.P,
		Q:       k.key.Q,
		G:       k.key.G,
		Y:       k.key.Y,
		X:       k.key.X,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal private key: %w", err)
	}
	return pem.EncodeToMemory(&pem.Block{Type: privatePEMType, Bytes: der}), nil
}

// MarshalPEM encodes the public key as a PKIX "PUBLIC KEY" block.
// If the key was loaded from a file, the original bytes are returned
// unchanged so an import copies the source byte-for-byte.
func (p *PublicKey) MarshalPEM() ([]byte, error) {
	if p.raw != nil {
		return p.raw, nil
	}
	der, err := p.marshalDER()
	if err != nil {
		return nil, err
	}
	return pem.EncodeToMemory(&pem.Block{Type: publicPEMType, Bytes: der}), nil
}

// marshalDER returns the PKIX DER encoding of the key, independent of the
// PEM framing of any file it was loaded from.
func (p *PublicKey) marshalDER() ([]byte, error) {
	if p.raw != nil {
		block, _ := pem.Decode(p.raw)
		if block == nil {
			return nil, fmt.Errorf("%w: missing PEM block", ErrInvalidKeyFile)
		}
		return block.Bytes, nil
	}
	yDER, err := asn1.Marshal(p.key.Y)
	if err != nil {
		return nil, fmt.Errorf("marshal public key value: %w", err)
	}
	der, err := asn1.Marshal(dsaPublicASN1{
		Algorithm: dsaAlgorithmASN1{
			Algorithm:  oidDSA,
			Parameters: dsaParamsASN1{P: p.key.P, Q: p.key.Q, G: p.key.G},
		},
		PublicKey: asn1.BitString{Bytes: yDER, BitLength: len(yDER) * 8},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal public key: %w", err)
	}
	return der, nil
}

// Save writes the private key to path with owner-only permissions.
// Parent directories are created as needed.
func (k *PrivateKey) Save(path string) error {
	data, err := k.MarshalPEM()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("create key directory: %w", err)
	}
	return atomicWriteFile(path, data, 0600)
}

// Save writes the public key to path. Public keys are world-readable.
func (p *PublicKey) Save(path string) error {
	data, err := p.MarshalPEM()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create key directory: %w", err)
	}
	return atomicWriteFile(path, data, 0644)
}

// LoadPrivateKey reads a private key saved by PrivateKey.Save.
func LoadPrivateKey(path string) (*PrivateKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read private key: %w", err)
	}
	block, _ := pem.Decode(data)
	if block == nil || block.Type != privatePEMType {
		return nil, fmt.Errorf("%w: %s: missing %s block", ErrInvalidKeyFile, path, privatePEMType)
	}
	var raw dsaPrivateASN1
	if rest, err := asn1.Unmarshal(block.Bytes, &raw); err != nil || len(rest) != 0 {
		return nil, fmt.Errorf("%w: %s: malformed DSA sequence", ErrInvalidKeyFile, path)
	}
	key := &dsa.PrivateKey{
		PublicKey: dsa.PublicKey{
			Parameters: dsa.Parameters{P: raw.P, Q: raw.Q, G: raw.G},
			Y:          raw.Y,
		},
		X: raw.X,
	}
	return &PrivateKey{key: key}, nil
}

// LoadPublicKey reads and structurally validates a public key file.
// It returns an error wrapping ErrInvalidKeyFile when the file is not a
// valid DSA public key; no filesystem mutation ever happens here.
func LoadPublicKey(path string) (*PublicKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read public key: %w", err)
	}
	block, _ := pem.Decode(data)
	if block == nil || block.Type != publicPEMType {
		return nil, fmt.Errorf("%w: %s: missing %s block", ErrInvalidKeyFile, path, publicPEMType)
	}
	parsed, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidKeyFile, path, err)
	}
	key, ok := parsed.(*dsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: %s: not a DSA key", ErrInvalidKeyFile, path)
	}
	pub := &PublicKey{key: key, raw: data}
	if !pub.IsValid() {
		return nil, fmt.Errorf("%w: %s: inconsistent key parameters", ErrInvalidKeyFile, path)
	}
	return pub, nil
}
