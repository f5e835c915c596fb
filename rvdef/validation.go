package rvdef

import (
	"fmt"
	"regexp"
)

// validProfileNameRegex matches valid profile names.
// Only alphanumeric characters, hyphens, and underscores are allowed.
// Must start with an alphanumeric character and be 1-64 characters long.
var validProfileNameRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_-]{0,63}$`)

// ValidateProfileName validates that a profile name is safe for use in
// filesystem paths and registry keys. Profiles allow side-by-side installs
// to keep separate configuration stores; the default profile is AppName.
// This prevents path traversal attacks and registry key injection.
func ValidateProfileName(profile string) error {
	if profile == "" {
		return fmt.Errorf("profile name cannot be empty")
	}
	if !validProfileNameRegex.MatchString(profile) {
		return fmt.Errorf("invalid profile name %q: must contain only alphanumeric characters, hyphens, and underscores, start with alphanumeric, and be 1-64 characters", profile)
	}
	return nil
}
