// Package rvnotify defines the notification sink the configurator core
// reports through. The core calls the sink for every provisioning or apply
// notice; the sink decides whether to surface it interactively. Silent mode
// suppresses interactive surfacing while still logging every event.
package rvnotify

import "log"

// Level classifies a notification.
type Level int

const (
	// LevelInfo is a success or progress notice.
	LevelInfo Level = iota

	// LevelCritical is a failure the user should act on.
	LevelCritical
)

// String returns the level's display name.
func (l Level) String() string {
	if l == LevelCritical {
		return "CRITICAL"
	}
	return "INFO"
}

// Notifier receives notices from the configurator core.
type Notifier interface {
	Notify(level Level, title, msg string)
}

// LogNotifier logs every notice and optionally forwards it to an
// interactive front end.
type LogNotifier struct {
	// Logger receives every notice. Nil selects the default logger.
	Logger *log.Logger

	// Silent suppresses the Interactive hook. Log output is unaffected.
	Silent bool

	// Interactive surfaces a notice to the user, typically as a dialog.
	// Nil when no front end is attached.
	Interactive func(level Level, title, msg string)
}

var _ Notifier = (*LogNotifier)(nil)

// Notify logs the notice and, unless silent, forwards it to the front end.
func (n *LogNotifier) Notify(level Level, title, msg string) {
	logger := n.Logger
	if logger == nil {
		logger = log.Default()
	}
	logger.Printf("%s: %s: %s", level, title, msg)

	if !n.Silent && n.Interactive != nil {
		n.Interactive(level, title, msg)
	}
}

// Discard drops every notice. Useful as a default in tests.
type Discard struct{}

var _ Notifier = Discard{}

// Notify does nothing.
func (Discard) Notify(level Level, title, msg string) {}
