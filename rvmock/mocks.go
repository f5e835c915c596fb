// Package rvmock provides in-memory test doubles for the configurator's
// collaborators: the system modifier, the notification sink, and the
// configuration store.
package rvmock

import (
	"sync"

	"github.com/roomview/roomview/rvconf"
	"github.com/roomview/roomview/rvnotify"
	"github.com/roomview/roomview/rvstore"
	"github.com/roomview/roomview/rvsys"
)

// Call records one invocation of a Modifier method.
type Call struct {
	Name string
	Arg  string
}

// Modifier records every action and fails the ones listed in Fail.
type Modifier struct {
	mu sync.Mutex

	// Fail maps a method name ("SetServiceAutostart", ...) to the error
	// it should return.
	Fail map[string]error

	// ACLSupported controls SupportsAccessControlLists.
	ACLSupported bool

	Calls []Call
}

var _ rvsys.Modifier = (*Modifier)(nil)

func (m *Modifier) record(name, arg string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, Call{Name: name, Arg: arg})
	return m.Fail[name]
}

func boolArg(v bool) string {
	if v {
		return "true"
	}
	return "false"
}

func (m *Modifier) SetServiceAutostart(enabled bool) error {
	return m.record("SetServiceAutostart", boolArg(enabled))
}

func (m *Modifier) SetServiceArguments(args string) error {
	return m.record("SetServiceArguments", args)
}

func (m *Modifier) EnableFirewallException(enabled bool) error {
	return m.record("EnableFirewallException", boolArg(enabled))
}

func (m *Modifier) ApplyAccessControlList(encoded string) error {
	return m.record("ApplyAccessControlList", encoded)
}

func (m *Modifier) SupportsAccessControlLists() bool {
	return m.ACLSupported
}

// CallNames returns the recorded method names in order.
func (m *Modifier) CallNames() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	names := make([]string, len(m.Calls))
	for i, c := range m.Calls {
		names[i] = c.Name
	}
	return names
}

// Event records one notification.
type Event struct {
	Level rvnotify.Level
	Title string
	Msg   string
}

// Notifier records every notice.
type Notifier struct {
	mu     sync.Mutex
	Events []Event
}

var _ rvnotify.Notifier = (*Notifier)(nil)

func (n *Notifier) Notify(level rvnotify.Level, title, msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Events = append(n.Events, Event{Level: level, Title: title, Msg: msg})
}

// Criticals returns the recorded critical notices.
func (n *Notifier) Criticals() []Event {
	n.mu.Lock()
	defer n.mu.Unlock()
	var out []Event
	for _, e := range n.Events {
		if e.Level == rvnotify.LevelCritical {
			out = append(out, e)
		}
	}
	return out
}

// Store keeps flushed snapshots in memory.
type Store struct {
	mu sync.Mutex

	// FlushErr, when set, is returned by Flush after recording the tree.
	FlushErr error

	// Tree is returned by Load. Nil loads an empty tree.
	Tree *rvconf.Tree

	Flushed []*rvconf.Tree
}

var _ rvstore.Store = (*Store)(nil)

func (s *Store) Flush(tree *rvconf.Tree) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Flushed = append(s.Flushed, tree.Clone())
	return s.FlushErr
}

func (s *Store) Load() (*rvconf.Tree, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Tree == nil {
		return rvconf.New(), nil
	}
	return s.Tree.Clone(), nil
}

func (s *Store) Path() string {
	return "mock"
}
