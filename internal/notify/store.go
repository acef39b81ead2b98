package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Kind classifies a notification for rendering
type Kind string

const (
	KindError   Kind = "error"
	KindInfo    Kind = "info"
	KindSuccess Kind = "success"
	KindWarning Kind = "warning"
)

// Notification is one user-visible outcome message
type Notification struct {
	CreatedAt time.Time
	ID        string
	Kind      Kind
	Message   string
}

const (
	// DefaultCapacity is how many notifications the store retains; the
	// oldest is evicted when a push would exceed it.
	DefaultCapacity = 5

	// DefaultTTL is how long a notification stays visible unless
	// dismissed earlier.
	DefaultTTL = 4 * time.Second
)

// Store is a bounded FIFO queue of notifications with per-entry expiry.
// The coordinator pushes outcomes into it; the rendering layer reads via
// List. Safe for concurrent use: remote calls settle on arbitrary
// goroutines.
type Store struct {
	max   int
	mu    sync.Mutex
	queue []Notification
	ttl   time.Duration
}

// Option configures a Store.
type Option func(*Store)

// WithCapacity overrides the queue capacity.
func WithCapacity(n int) Option {
	return func(s *Store) { s.max = n }
}

// WithTTL overrides the auto-dismiss TTL. Zero disables expiry.
func WithTTL(d time.Duration) Option {
	return func(s *Store) { s.ttl = d }
}

// NewStore creates a notification store with the default capacity and TTL.
func NewStore(opts ...Option) *Store {
	s := &Store{max: DefaultCapacity, ttl: DefaultTTL}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Push appends a notification, evicting the oldest entry when the queue is
// full, and schedules its auto-dismiss. Returns the notification id.
func (s *Store) Push(kind Kind, message string) string {
	n := Notification{
		CreatedAt: time.Now(),
		ID:        uuid.New().String(),
		Kind:      kind,
		Message:   message,
	}

	s.mu.Lock()
	if len(s.queue) >= s.max {
		s.queue = s.queue[1:]
	}
	s.queue = append(s.queue, n)
	s.mu.Unlock()

	if s.ttl > 0 {
		// The timer is not cancelled on manual dismiss; dismissing an
		// absent id is a no-op, so the late fire is harmless.
		time.AfterFunc(s.ttl, func() { s.Dismiss(n.ID) })
	}
	return n.ID
}

// Success pushes a success notification.
func (s *Store) Success(message string) string { return s.Push(KindSuccess, message) }

// Error pushes an error notification.
func (s *Store) Error(message string) string { return s.Push(KindError, message) }

// Dismiss removes the notification with the given id. Unknown ids are a
// no-op.
func (s *Store) Dismiss(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, n := range s.queue {
		if n.ID == id {
			s.queue = append(s.queue[:i], s.queue[i+1:]...)
			return
		}
	}
}

// List returns the live notifications, oldest first.
func (s *Store) List() []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Notification, len(s.queue))
	copy(out, s.queue)
	return out
}
