//go:build !windows

package rvsys

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/roomview/roomview/rvdef"
)

// SystemModifier drives system settings through systemd and /etc files.
type SystemModifier struct {
	// ServiceName is the systemd unit toggled for autostart.
	ServiceName string

	// ArgumentsPath is the environment file read by the service unit.
	ArgumentsPath string

	// run executes a system command. Replaceable for tests.
	run func(name string, args ...string) error
}

var _ Modifier = (*SystemModifier)(nil)

// New returns the platform system modifier.
func New() *SystemModifier {
	return &SystemModifier{
		ServiceName:   rvdef.AppName + "-service",
		ArgumentsPath: "/etc/default/" + rvdef.AppName,
		run: func(name string, args ...string) error {
			out, err := exec.Command(name, args...).CombinedOutput()
			if err != nil {
				return fmt.Errorf("%s: %w: %s", name, err, out)
			}
			return nil
		},
	}
}

// SetServiceAutostart enables or disables the service unit.
func (m *SystemModifier) SetServiceAutostart(enabled bool) error {
	verb := "disable"
	if enabled {
		verb = "enable"
	}
	return m.run("systemctl", verb, "--quiet", m.ServiceName)
}

// SetServiceArguments writes the service environment file consumed by the
// unit's EnvironmentFile directive.
func (m *SystemModifier) SetServiceArguments(args string) error {
	data := fmt.Sprintf("SERVICE_ARGS=%q\n", args)
	if err := os.MkdirAll(filepath.Dir(m.ArgumentsPath), 0755); err != nil {
		return err
	}
	return os.WriteFile(m.ArgumentsPath, []byte(data), 0644)
}

// EnableFirewallException is a no-op here: packet filtering policy is owned
// by the distribution firewall, not by the configurator.
func (m *SystemModifier) EnableFirewallException(enabled bool) error {
	return nil
}

// ApplyAccessControlList is unsupported: logon ACLs are a Windows concept.
func (m *SystemModifier) ApplyAccessControlList(encoded string) error {
	return ErrUnsupported
}

// SupportsAccessControlLists reports false; the applier skips ACL handling.
func (m *SystemModifier) SupportsAccessControlLists() bool {
	return false
}
