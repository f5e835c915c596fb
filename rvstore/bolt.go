package rvstore

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"

	"github.com/roomview/roomview/rvconf"
	"github.com/roomview/roomview/rvdef"
)

var (
	bucketConfig = []byte("config")

	keySnapshot = []byte("snapshot")
)

// BoltStore is the bbolt-backed configuration store.
type BoltStore struct {
	db   *bbolt.DB
	path string
}

var _ Store = (*BoltStore)(nil)

// Options configures OpenBolt.
type Options struct {
	// Scope selects the default storage location. Ignored when Path is set.
	Scope Scope

	// Profile is the install profile name used in default paths.
	// Empty selects rvdef.AppName.
	Profile string

	// Path overrides the database location. Used by tests.
	Path string
}

// OpenBolt opens (creating if needed) the configuration database for the
// given options.
func OpenBolt(opts Options) (*BoltStore, error) {
	profile := opts.Profile
	if profile == "" {
		profile = rvdef.AppName
	}
	if err := rvdef.ValidateProfileName(profile); err != nil {
		return nil, err
	}

	path := opts.Path
	if path == "" {
		path = defaultStorePath(opts.Scope, profile)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("create store directory: %w", err)
	}

	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open configuration database: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketConfig)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create config bucket: %w", err)
	}

	return &BoltStore{db: db, path: path}, nil
}

// Flush durably replaces the stored snapshot with tree.
// The snapshot is encrypted before it reaches disk.
func (s *BoltStore) Flush(tree *rvconf.Tree) error {
	data, err := tree.MarshalBinary()
	if err != nil {
		return fmt.Errorf("encode configuration snapshot: %w", err)
	}
	sealed, err := encryptValue(data)
	if err != nil {
		return fmt.Errorf("encrypt configuration snapshot: %w", err)
	}
	err = s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketConfig).Put(keySnapshot, sealed)
	})
	if err != nil {
		return fmt.Errorf("write configuration snapshot: %w", err)
	}
	return nil
}

// Load returns the stored snapshot, or an empty tree if none exists.
func (s *BoltStore) Load() (*rvconf.Tree, error) {
	var sealed []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		if v := tx.Bucket(bucketConfig).Get(keySnapshot); v != nil {
			sealed = make([]byte, len(v))
			copy(sealed, v)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read configuration snapshot: %w", err)
	}
	if sealed == nil {
		return rvconf.New(), nil
	}
	data, err := decryptValue(sealed)
	if err != nil {
		return nil, fmt.Errorf("decrypt configuration snapshot: %w", err)
	}
	return rvconf.UnmarshalTree(data)
}

// Path returns the database location for display purposes.
func (s *BoltStore) Path() string {
	return s.path
}

// Close releases the database.
func (s *BoltStore) Close() error {
	return s.db.Close()
}
