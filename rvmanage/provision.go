package rvmanage

import (
	"fmt"
	"os"

	"github.com/roomview/roomview/rvdef"
	"github.com/roomview/roomview/rvkey"
	"github.com/roomview/roomview/rvnotify"
)

// permissionsReminder is appended to every successful key pair notice.
const permissionsReminder = "For now the private key is only readable by its owner. " +
	"Consider changing its group ownership so that the file is readable by all " +
	"members of a trusted group whose users are allowed to control this machine."

// Provisioner creates and imports role credentials.
//
// Concurrent provisioning calls for the same role race on the destination
// files; callers run at most one provisioning operation per role at a time.
type Provisioner struct {
	notify rvnotify.Notifier

	// generate produces the key pair; tests swap it to exercise the
	// generation and validation failure paths.
	generate func(bits int) (*rvkey.PrivateKey, error)
}

// NewProvisioner returns a Provisioner reporting through n.
// A nil n discards notices.
func NewProvisioner(n rvnotify.Notifier) *Provisioner {
	if n == nil {
		n = rvnotify.Discard{}
	}
	return &Provisioner{notify: n, generate: rvkey.Generate}
}

// CreateKeyPair generates a fresh key pair for role and writes both halves
// to their canonical paths under destDir (empty selects the platform
// default). An existing pair for the role is silently overwritten.
//
// If the private key write succeeds but the public key write fails, the
// private key is left in place and the returned PersistError names the
// public half; the destination must then be treated as partially written.
func (p *Provisioner) CreateKeyPair(role rvdef.Role, destDir string) error {
	privPath := rvdef.PrivateKeyPath(role, destDir)
	pubPath := rvdef.PublicKeyPath(role, destDir)

	key, err := p.generate(rvkey.DefaultBits)
	if err != nil {
		p.notify.Notify(rvnotify.LevelCritical, "Key generation",
			fmt.Sprintf("Could not generate a key pair for role %s: %v", role, err))
		return fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	if !key.IsValid() {
		p.notify.Notify(rvnotify.LevelCritical, "Key generation",
			fmt.Sprintf("Generated key pair for role %s failed validation.", role))
		return ErrGenerationFailed
	}

	if err := key.Save(privPath); err != nil {
		perr := &PersistError{Which: PersistPrivate, Path: privPath, Err: err}
		p.notify.Notify(rvnotify.LevelCritical, "Key generation", perr.Error())
		return perr
	}

	pub := key.Public()
	if err := pub.Save(pubPath); err != nil {
		perr := &PersistError{Which: PersistPublic, Path: pubPath, Err: err}
		p.notify.Notify(rvnotify.LevelCritical, "Key generation", perr.Error())
		return perr
	}

	p.notify.Notify(rvnotify.LevelInfo, "Key generation",
		fmt.Sprintf("Created new key pair for role %s (%s).\n\nPrivate key: %s\nPublic key: %s\n\n%s",
			role, pub.Fingerprint(), privPath, pubPath, permissionsReminder))
	return nil
}

// ImportPublicKey validates the public key at sourcePath and installs it at
// the canonical public key path for role under destDir.
//
// Validation happens before any filesystem mutation: an invalid source file
// leaves an existing destination untouched. A valid key replaces the
// destination; if the existing file cannot be removed the import fails with
// ErrReplaceExisting and nothing is written.
func (p *Provisioner) ImportPublicKey(role rvdef.Role, sourcePath, destDir string) error {
	pub, err := rvkey.LoadPublicKey(sourcePath)
	if err != nil {
		p.notify.Notify(rvnotify.LevelCritical, "Key import",
			fmt.Sprintf("File %s is not a valid public key file.", sourcePath))
		return err
	}

	destPath := rvdef.PublicKeyPath(role, destDir)
	if _, err := os.Stat(destPath); err == nil {
		// Make sure the owner can delete a read-only file.
		os.Chmod(destPath, 0600)
		if err := os.Remove(destPath); err != nil {
			p.notify.Notify(rvnotify.LevelCritical, "Key import",
				fmt.Sprintf("Could not remove existing public key file %s.", destPath))
			return fmt.Errorf("%w: %s: %v", ErrReplaceExisting, destPath, err)
		}
	}

	if err := pub.Save(destPath); err != nil {
		perr := &PersistError{Which: PersistPublic, Path: destPath, Err: err}
		p.notify.Notify(rvnotify.LevelCritical, "Key import", perr.Error())
		return perr
	}

	p.notify.Notify(rvnotify.LevelInfo, "Key import",
		fmt.Sprintf("Imported public key %s for role %s to %s.",
			pub.Fingerprint(), role, destPath))
	return nil
}
