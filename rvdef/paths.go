package rvdef

import "path/filepath"

// AppName is the product name used in default paths and registry keys.
const AppName = "roomview"

// PrivateKeyPath returns the canonical private key file location for a role.
// An empty destDir selects the platform default key directory.
func PrivateKeyPath(role Role, destDir string) string {
	if destDir == "" {
		destDir = DefaultKeyDir()
	}
	return filepath.Join(destDir, "private", role.DirName(), "key")
}

// PublicKeyPath returns the canonical public key file location for a role.
// An empty destDir selects the platform default key directory.
func PublicKeyPath(role Role, destDir string) string {
	if destDir == "" {
		destDir = DefaultKeyDir()
	}
	return filepath.Join(destDir, "public", role.DirName(), "key")
}
