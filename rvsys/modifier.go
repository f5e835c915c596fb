// Package rvsys modifies host system settings on behalf of the roomview
// configurator: service autostart, service launch arguments, the firewall
// exception for the service port, and (where the platform supports it) the
// encoded logon access-control list.
//
// Every method is best-effort from the caller's point of view: the applier
// treats a returned error as reportable, not fatal, and continues with the
// next action.
package rvsys

import "errors"

// ErrUnsupported is returned by actions the current platform cannot perform.
var ErrUnsupported = errors.New("roomview: not supported on this platform")

// Modifier applies individual system-level settings.
type Modifier interface {
	// SetServiceAutostart enables or disables starting the service at boot.
	SetServiceAutostart(enabled bool) error

	// SetServiceArguments stores the launch arguments the service is
	// started with.
	SetServiceArguments(args string) error

	// EnableFirewallException opens or closes the service port in the
	// host firewall.
	EnableFirewallException(enabled bool) error

	// ApplyAccessControlList installs the base64-encoded logon ACL.
	// An empty value is a no-op. Only meaningful when
	// SupportsAccessControlLists reports true.
	ApplyAccessControlList(encoded string) error

	// SupportsAccessControlLists reports whether this platform applies
	// logon ACLs at all.
	SupportsAccessControlLists() bool
}
