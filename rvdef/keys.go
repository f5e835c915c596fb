package rvdef

// Well-known configuration paths read during a configuration apply.
// A path is the /-joined sequence of tree keys from the root to a leaf.
const (
	// KeyServiceAutostart holds "1"/"0": start the service at boot.
	KeyServiceAutostart = "Service/Autostart"

	// KeyServiceArguments holds the launch arguments for the service.
	KeyServiceArguments = "Service/Arguments"

	// KeyFirewallException holds "1"/"0": open the service port in the
	// host firewall.
	KeyFirewallException = "Service/FirewallExceptionEnabled"

	// KeyEncodedLogonACL holds the base64-encoded logon access-control
	// list applied on platforms that support it.
	KeyEncodedLogonACL = "Authentication/EncodedLogonACL"

	// KeyLegacyLogonACL is the pre-encoding ACL value written by old
	// releases. It is removed whenever the encoded form is applied.
	KeyLegacyLogonACL = "Authentication/LogonACL"
)
