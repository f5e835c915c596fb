//go:build !windows

package rvdef

// DefaultKeyDir returns the default base directory for role key files.
func DefaultKeyDir() string {
	return "/etc/" + AppName + "/keys"
}
