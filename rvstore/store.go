// Package rvstore persists roomview configuration trees.
//
// The primary store is bbolt-backed and addressed by scope: ScopeSystem for
// the machine-wide configuration applied by the service, ScopeUser for
// per-user front-end settings. Snapshots are CBOR-encoded and encrypted at
// rest: DPAPI on Windows, nacl/secretbox with an embedded key elsewhere.
//
// TextStore reads and writes a human-editable flat-file form of the same
// tree, used by the CLI for importing configuration snippets and exporting
// snapshots.
package rvstore

import "github.com/roomview/roomview/rvconf"

// Scope selects whose configuration a store holds.
type Scope int

const (
	// ScopeSystem is the machine-wide configuration. Only one writer
	// should hold this scope at a time; the surrounding process is
	// responsible for single-instance enforcement.
	ScopeSystem Scope = iota

	// ScopeUser is the calling user's configuration.
	ScopeUser
)

// String returns the scope's display name.
func (s Scope) String() string {
	if s == ScopeUser {
		return "User"
	}
	return "System"
}

// Store persists configuration trees. Implementations replace the whole
// snapshot on Flush; there is no partial update.
type Store interface {
	// Flush durably replaces the stored snapshot with tree.
	Flush(tree *rvconf.Tree) error

	// Load returns the stored snapshot, or an empty tree if none exists.
	Load() (*rvconf.Tree, error)

	// Path returns the storage location for display purposes.
	Path() string
}
