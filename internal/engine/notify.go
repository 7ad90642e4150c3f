package engine

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultNotificationDuration is how long a level-up banner stays visible
// before it auto-clears.
const DefaultNotificationDuration = 3 * time.Second

// Notification is a transient banner, currently only raised on level-up.
type Notification struct {
	ID       uuid.UUID
	Message  string
	RaisedAt time.Time
}

// Notifier holds at most one live notification and auto-clears it after a
// fixed display duration. A new notification replaces the current one and
// restarts the clock.
type Notifier struct {
	mu       sync.Mutex
	duration time.Duration
	current  *Notification
	timer    *time.Timer
}

func NewNotifier(duration time.Duration) *Notifier {
	if duration <= 0 {
		duration = DefaultNotificationDuration
	}
	return &Notifier{duration: duration}
}

// Raise publishes a new notification and schedules its auto-clear.
func (n *Notifier) Raise(message string) Notification {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.timer != nil {
		n.timer.Stop()
	}
	note := Notification{
		ID:       uuid.New(),
		Message:  message,
		RaisedAt: time.Now(),
	}
	n.current = &note
	n.timer = time.AfterFunc(n.duration, func() { n.clear(note.ID) })
	return note
}

// Current returns the live notification, or nil once it has expired.
func (n *Notifier) Current() *Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current == nil {
		return nil
	}
	note := *n.current
	return &note
}

// clear removes the notification only if it is still the one that scheduled
// this call; a newer notification keeps its own clock.
func (n *Notifier) clear(id uuid.UUID) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current != nil && n.current.ID == id {
		n.current = nil
	}
}

// Close cancels the pending auto-clear timer.
func (n *Notifier) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
	n.current = nil
}
