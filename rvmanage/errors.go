package rvmanage

import (
	"errors"
	"fmt"
)

// ErrGenerationFailed is returned when the cryptographic primitive cannot
// produce a valid key pair.
var ErrGenerationFailed = errors.New("roomview: key pair generation failed")

// ErrReplaceExisting is returned when an existing destination key file
// cannot be removed during import. No new file is written in this case.
var ErrReplaceExisting = errors.New("roomview: could not replace existing public key file")

// Which half of a key pair a PersistError refers to.
const (
	PersistPrivate = "private key"
	PersistPublic  = "public key"
)

// PersistError reports a failed key file write and names which half failed.
// A failed CreateKeyPair may leave the private key already written; callers
// must treat the destination as partially written and clean up or retry.
type PersistError struct {
	Which string
	Path  string
	Err   error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("roomview: saving %s to %s failed: %v", e.Which, e.Path, e.Err)
}

func (e *PersistError) Unwrap() error {
	return e.Err
}
