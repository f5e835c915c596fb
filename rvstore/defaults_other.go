//go:build !windows

package rvstore

import (
	"os"
	"path/filepath"
)

// defaultStorePath returns the configuration database location for a scope.
func defaultStorePath(scope Scope, profile string) string {
	if scope == ScopeUser {
		base, err := os.UserConfigDir()
		if err != nil {
			base = filepath.Join(os.Getenv("HOME"), ".config")
		}
		return filepath.Join(base, profile, "config.db")
	}
	return filepath.Join("/etc", profile, "config.db")
}
