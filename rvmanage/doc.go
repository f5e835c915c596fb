// Package rvmanage is the orchestration core of the roomview configurator.
//
// Provisioner creates and imports role credentials (rvkey, rvdef).
// Applier merges an incoming configuration into the authoritative tree,
// drives the ordered system-modification actions (rvsys), and persists the
// merged snapshot (rvstore). Provisioning errors abort the operation;
// apply-time failures are collected into a Report while the sequence runs
// to completion.
package rvmanage
