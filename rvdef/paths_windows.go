//go:build windows

package rvdef

import (
	"os"
	"path/filepath"
)

// DefaultKeyDir returns the default base directory for role key files.
func DefaultKeyDir() string {
	programData := os.Getenv("PROGRAMDATA")
	if programData == "" {
		programData = `C:\ProgramData`
	}
	return filepath.Join(programData, AppName, "keys")
}
