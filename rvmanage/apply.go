package rvmanage

import (
	"fmt"
	"sync"

	"github.com/roomview/roomview/rvconf"
	"github.com/roomview/roomview/rvdef"
	"github.com/roomview/roomview/rvnotify"
	"github.com/roomview/roomview/rvstore"
	"github.com/roomview/roomview/rvsys"
)

// Action names recorded in apply outcomes, in execution order.
const (
	ActionAutostart     = "service autostart"
	ActionArguments     = "service arguments"
	ActionFirewall      = "firewall exception"
	ActionAccessControl = "access control list"
	ActionPersist       = "persist configuration"
)

// Outcome is the result of one system-modification action.
type Outcome struct {
	Action string
	OK     bool
	Detail string
}

// Report aggregates the outcomes of one Apply call. Completed is true once
// every action has been attempted; it signals "apply ran to completion",
// not "every action succeeded". Inspect Failed for individual failures.
type Report struct {
	Outcomes  []Outcome
	Completed bool
}

// Failed returns the outcomes of actions that did not succeed.
func (r Report) Failed() []Outcome {
	var out []Outcome
	for _, o := range r.Outcomes {
		if !o.OK {
			out = append(out, o)
		}
	}
	return out
}

// ApplierConfig wires an Applier's collaborators.
type ApplierConfig struct {
	// Tree is the authoritative configuration. Nil starts empty.
	Tree *rvconf.Tree

	// Modifier applies system-level settings.
	Modifier rvsys.Modifier

	// Store persists the merged snapshot. Must be system-scoped.
	Store rvstore.Store

	// Notifier surfaces per-action failures. Nil discards.
	Notifier rvnotify.Notifier
}

// Applier owns the authoritative configuration tree and applies incoming
// configuration to the system.
type Applier struct {
	mu     sync.Mutex
	tree   *rvconf.Tree
	mod    rvsys.Modifier
	store  rvstore.Store
	notify rvnotify.Notifier
}

// NewApplier creates an Applier from cfg.
func NewApplier(cfg ApplierConfig) *Applier {
	tree := cfg.Tree
	if tree == nil {
		tree = rvconf.New()
	}
	notify := cfg.Notifier
	if notify == nil {
		notify = rvnotify.Discard{}
	}
	return &Applier{
		tree:   tree,
		mod:    cfg.Modifier,
		store:  cfg.Store,
		notify: notify,
	}
}

// Tree returns a snapshot copy of the authoritative configuration.
func (a *Applier) Tree() *rvconf.Tree {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.tree.Clone()
}

// Apply merges incoming into the authoritative tree, then attempts every
// system-modification action in fixed order, then persists the merged
// snapshot. A failed action is recorded and reported but never stops the
// sequence; the returned report always has Completed set once all steps
// have been attempted.
func (a *Applier) Apply(incoming *rvconf.Tree) Report {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.tree.Merge(incoming)

	var report Report
	record := func(action string, err error, failMsg string) {
		o := Outcome{Action: action, OK: err == nil}
		if err != nil {
			o.Detail = err.Error()
			a.notify.Notify(rvnotify.LevelCritical, "Apply configuration",
				fmt.Sprintf("%s: %v", failMsg, err))
		}
		report.Outcomes = append(report.Outcomes, o)
	}

	record(ActionAutostart,
		a.mod.SetServiceAutostart(a.tree.GetBool(rvdef.KeyServiceAutostart)),
		"Could not modify the autostart property for the service")

	args, _ := a.tree.Get(rvdef.KeyServiceArguments)
	record(ActionArguments,
		a.mod.SetServiceArguments(args),
		"Could not modify the service arguments")

	record(ActionFirewall,
		a.mod.EnableFirewallException(a.tree.GetBool(rvdef.KeyFirewallException)),
		"Could not change the firewall configuration for the service")

	if a.mod.SupportsAccessControlLists() {
		// The legacy plain ACL value is superseded by the encoded form.
		a.tree.Remove(rvdef.KeyLegacyLogonACL)

		encoded, _ := a.tree.Get(rvdef.KeyEncodedLogonACL)
		record(ActionAccessControl,
			a.mod.ApplyAccessControlList(encoded),
			"Could not apply the logon access control list")
	}

	record(ActionPersist,
		a.store.Flush(a.tree),
		"Could not write the system configuration")

	report.Completed = true
	return report
}
