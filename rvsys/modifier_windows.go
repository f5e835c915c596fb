//go:build windows

package rvsys

import (
	"encoding/base64"
	"fmt"
	"os"
	"os/exec"

	"golang.org/x/sys/windows/registry"

	"github.com/roomview/roomview/rvdef"
)

const runKeyPath = `SOFTWARE\Microsoft\Windows\CurrentVersion\Run`

// SystemModifier drives system settings through the registry and netsh.
type SystemModifier struct {
	// ServiceName names the autostart Run value and the firewall rule.
	ServiceName string

	// ServiceKeyPath is the product registry key holding service settings.
	ServiceKeyPath string

	// ServiceBinary is the executable registered for autostart.
	ServiceBinary string

	// run executes a system command. Replaceable for tests.
	run func(name string, args ...string) error
}

var _ Modifier = (*SystemModifier)(nil)

// New returns the platform system modifier.
func New() *SystemModifier {
	exe, _ := os.Executable()
	return &SystemModifier{
		ServiceName:    rvdef.AppName + "-service",
		ServiceKeyPath: `SOFTWARE\` + rvdef.AppName + `\Service`,
		ServiceBinary:  exe,
		run: func(name string, args ...string) error {
			out, err := exec.Command(name, args...).CombinedOutput()
			if err != nil {
				return fmt.Errorf("%s: %w: %s", name, err, out)
			}
			return nil
		},
	}
}

// SetServiceAutostart adds or removes the service from the machine Run key.
func (m *SystemModifier) SetServiceAutostart(enabled bool) error {
	key, _, err := registry.CreateKey(registry.LOCAL_MACHINE, runKeyPath, registry.ALL_ACCESS)
	if err != nil {
		return fmt.Errorf("open run key: %w", err)
	}
	defer key.Close()

	if !enabled {
		err := key.DeleteValue(m.ServiceName)
		if err == registry.ErrNotExist {
			return nil
		}
		return err
	}
	return key.SetStringValue(m.ServiceName, m.ServiceBinary)
}

// SetServiceArguments stores the launch arguments in the service key.
func (m *SystemModifier) SetServiceArguments(args string) error {
	key, _, err := registry.CreateKey(registry.LOCAL_MACHINE, m.ServiceKeyPath, registry.ALL_ACCESS)
	if err != nil {
		return fmt.Errorf("open service key: %w", err)
	}
	defer key.Close()

	return key.SetStringValue("Arguments", args)
}

// EnableFirewallException adds or removes the advfirewall rule for the
// service binary.
func (m *SystemModifier) EnableFirewallException(enabled bool) error {
	if enabled {
		return m.run("netsh", "advfirewall", "firewall", "add", "rule",
			"name="+m.ServiceName, "dir=in", "action=allow",
			"program="+m.ServiceBinary, "enable=yes")
	}
	return m.run("netsh", "advfirewall", "firewall", "delete", "rule",
		"name="+m.ServiceName)
}

// ApplyAccessControlList decodes and installs the logon ACL in the service
// key. An empty value installs nothing.
func (m *SystemModifier) ApplyAccessControlList(encoded string) error {
	if encoded == "" {
		return nil
	}
	acl, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return fmt.Errorf("decode logon ACL: %w", err)
	}

	key, _, err := registry.CreateKey(registry.LOCAL_MACHINE, m.ServiceKeyPath, registry.ALL_ACCESS)
	if err != nil {
		return fmt.Errorf("open service key: %w", err)
	}
	defer key.Close()

	return key.SetBinaryValue("LogonACL", acl)
}

// SupportsAccessControlLists reports true; Windows applies logon ACLs.
func (m *SystemModifier) SupportsAccessControlLists() bool {
	return true
}
