// Package rvdef holds shared definitions for the roomview configurator:
// the closed set of credential roles, the canonical on-disk locations of
// role key files, the well-known configuration paths driven during a
// configuration apply, and profile name validation.
//
// Everything in this package is pure data and path arithmetic. File and
// registry access lives in rvkey, rvstore and rvsys.
package rvdef
