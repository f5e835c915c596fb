//go:build !windows

package rvstore

import (
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/nacl/secretbox"
)

// Embedded key for snapshot encryption. This provides obfuscation rather
// than strong security since anyone with access to the binary can extract
// it. The goal is to keep stored access-control data out of plain text;
// real protection comes from the 0600 database permissions.
var embeddedKey = [32]byte{
	0x4e, 0xd1, 0x27, 0x88, 0x0b, 0xa6, 0x93, 0x3c,
	0x61, 0xf9, 0x5e, 0x12, 0xc4, 0x70, 0xae, 0x9b,
	0x85, 0x2d, 0xf0, 0x49, 0x1c, 0xb7, 0x62, 0xd5,
	0x38, 0xe9, 0x04, 0xaf, 0x56, 0x91, 0x7c, 0xe3,
}

// encryptValue encrypts a configuration snapshot using nacl/secretbox with
// the embedded key. Returns nonce (24 bytes) + ciphertext.
func encryptValue(plaintext []byte) ([]byte, error) {
	var nonce [24]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	return secretbox.Seal(nonce[:], plaintext, &nonce, &embeddedKey), nil
}

// decryptValue decrypts a snapshot encrypted with encryptValue.
// Expects nonce (24 bytes) + ciphertext.
func decryptValue(ciphertext []byte) ([]byte, error) {
	if len(ciphertext) < 24+secretbox.Overhead {
		return nil, fmt.Errorf("snapshot too short")
	}

	var nonce [24]byte
	copy(nonce[:], ciphertext[:24])

	plaintext, ok := secretbox.Open(nil, ciphertext[24:], &nonce, &embeddedKey)
	if !ok {
		return nil, fmt.Errorf("snapshot decrypt failed")
	}

	return plaintext, nil
}
