package client

import "sync"

// Level grades a notification for presentation.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelInfo    Level = "info"
)

// Notifier receives user-facing outcome messages.
type Notifier interface {
	Success(message string)
	Error(message string)
	Info(message string)
}

// Notification is one toast: a message, its level, and an optional undo
// affordance attached to it.
type Notification struct {
	Message string
	Level   Level
	Undo    *UndoAction
}

// Toaster holds at most one notification. Showing a new one replaces the
// current one, which also discards the superseded undo affordance.
type Toaster struct {
	mu      sync.Mutex
	current *Notification
}

var _ Notifier = (*Toaster)(nil)

// Show replaces the current notification.
func (t *Toaster) Show(n Notification) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.current = &n
}

// Success shows a success-level notification.
func (t *Toaster) Success(message string) {
	t.Show(Notification{Message: message, Level: LevelSuccess})
}

// Error shows an error-level notification.
func (t *Toaster) Error(message string) {
	t.Show(Notification{Message: message, Level: LevelError})
}

// Info shows an info-level notification.
func (t *Toaster) Info(message string) {
	t.Show(Notification{Message: message, Level: LevelInfo})
}

// Current returns the displayed notification, or nil when dismissed.
func (t *Toaster) Current() *Notification {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current
}

// Dismiss clears the current notification.
func (t *Toaster) Dismiss() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.current = nil
}
