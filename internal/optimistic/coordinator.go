package optimistic

import (
	"context"
	"sync"

	"github.com/meridian-tui/meridian/internal/logging"
)

// Notifier receives the user-visible outcome of an operation. Implemented
// by notify.Store.
type Notifier interface {
	Success(message string) string
	Error(message string) string
}

// Status tracks where an operation is in its lifecycle. Operations are not
// retained after they settle; the status exists for logging.
type Status string

const (
	StatusCommitted  Status = "committed"
	StatusPending    Status = "pending"
	StatusRolledBack Status = "rolled_back"
)

// Operation describes one optimistic mutation. Apply mutates visible state
// immediately; Remote performs the confirming call; Rollback restores the
// exact pre-Apply snapshot when Remote fails. Operations sharing a Key are
// serialized so their apply/rollback pairs can never interleave; an empty
// Key opts out of serialization.
type Operation[R any] struct {
	Apply          func()
	ErrorMessage   string
	Key            string
	Remote         func(ctx context.Context) (R, error)
	Rollback       func()
	SuccessMessage string
}

// Coordinator applies local state changes ahead of their remote
// confirmation and reconciles once the remote call settles. It imposes no
// timeout and no retry: a started remote call always runs to completion,
// and its own timeout policy is the caller's business.
type Coordinator struct {
	locks    map[string]*sync.Mutex
	mu       sync.Mutex
	notifier Notifier
}

// NewCoordinator creates a coordinator that reports outcomes to notifier.
func NewCoordinator(notifier Notifier) *Coordinator {
	return &Coordinator{
		locks:    make(map[string]*sync.Mutex),
		notifier: notifier,
	}
}

// lockKey acquires the serialization lock for key, returning the unlock.
func (c *Coordinator) lockKey(key string) func() {
	if key == "" {
		return func() {}
	}
	c.mu.Lock()
	lock, ok := c.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		c.locks[key] = lock
	}
	c.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}

// Perform runs op: Apply synchronously, then Remote, then reconciliation.
// On success the applied state stands, a success notification is pushed,
// and the remote result is returned. On failure Rollback restores the
// pre-Apply snapshot, an error notification is pushed (the remote error
// text when present, else op.ErrorMessage), and the error is returned for
// any further handling by the caller. By the time Perform returns, the
// mutation is either confirmed or fully reverted — never half-applied.
func Perform[R any](ctx context.Context, c *Coordinator, op Operation[R]) (R, error) {
	unlock := c.lockKey(op.Key)
	defer unlock()

	logging.Logger.Debug("Optimistic operation starting", "key", op.Key, "status", StatusPending)
	if op.Apply != nil {
		op.Apply()
	}

	result, err := op.Remote(ctx)
	if err != nil {
		if op.Rollback != nil {
			op.Rollback()
		}
		logging.Logger.Debug("Optimistic operation rolled back", "key", op.Key, "status", StatusRolledBack, "error", err)

		message := err.Error()
		if message == "" {
			message = op.ErrorMessage
		}
		c.notifier.Error(message)

		var zero R
		return zero, err
	}

	logging.Logger.Debug("Optimistic operation committed", "key", op.Key, "status", StatusCommitted)
	c.notifier.Success(op.SuccessMessage)
	return result, nil
}
