//go:build windows

package rvstore

import (
	"github.com/billgraziano/dpapi"
)

// encryptValue encrypts a configuration snapshot using Windows DPAPI.
func encryptValue(plaintext []byte) ([]byte, error) {
	return dpapi.EncryptBytes(plaintext)
}

// decryptValue decrypts a snapshot encrypted with encryptValue using
// Windows DPAPI.
func decryptValue(ciphertext []byte) ([]byte, error) {
	return dpapi.DecryptBytes(ciphertext)
}
