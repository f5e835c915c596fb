// Package rvkey handles DSA credential material for the roomview suite:
// key pair generation, validity checking, and PEM persistence.
//
// Private keys use the OpenSSL "DSA PRIVATE KEY" ASN.1 sequence; public
// keys use the PKIX SubjectPublicKeyInfo encoding ("PUBLIC KEY" PEM block),
// so key files interoperate with standard tooling.
//
// The package performs no path resolution and no system-modification side
// effects. Callers resolve destinations through rvdef and must serialize
// concurrent writes to the same destination path themselves.
package rvkey
