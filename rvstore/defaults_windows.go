//go:build windows

package rvstore

import (
	"os"
	"path/filepath"
)

// defaultStorePath returns the configuration database location for a scope.
func defaultStorePath(scope Scope, profile string) string {
	if scope == ScopeUser {
		appData := os.Getenv("APPDATA")
		return filepath.Join(appData, profile, "config.db")
	}
	programData := os.Getenv("PROGRAMDATA")
	if programData == "" {
		programData = `C:\ProgramData`
	}
	return filepath.Join(programData, profile, "config.db")
}
