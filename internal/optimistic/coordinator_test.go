package optimistic

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingNotifier captures the outcome messages pushed by the coordinator.
type recordingNotifier struct {
	errs      []string
	mu        sync.Mutex
	successes []string
}

func (n *recordingNotifier) Success(message string) string {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.successes = append(n.successes, message)
	return message
}

func (n *recordingNotifier) Error(message string) string {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.errs = append(n.errs, message)
	return message
}

// silentError carries no message, forcing the fallback to ErrorMessage.
type silentError struct{}

func (silentError) Error() string { return "" }

func TestPerform_SuccessCommitsAndNotifies(t *testing.T) {
	notifier := &recordingNotifier{}
	coordinator := NewCoordinator(notifier)

	applied := false
	rolledBack := false
	result, err := Perform(context.Background(), coordinator, Operation[int]{
		Apply:          func() { applied = true },
		Key:            "items",
		Remote:         func(ctx context.Context) (int, error) { return 42, nil },
		Rollback:       func() { rolledBack = true },
		SuccessMessage: "Deleted \"Census Tracts\"",
	})

	require.NoError(t, err)
	assert.Equal(t, 42, result)
	assert.True(t, applied)
	assert.False(t, rolledBack)
	assert.Equal(t, []string{"Deleted \"Census Tracts\""}, notifier.successes)
	assert.Empty(t, notifier.errs)
}

func TestPerform_FailureRollsBackAndNotifies(t *testing.T) {
	notifier := &recordingNotifier{}
	coordinator := NewCoordinator(notifier)

	applied := false
	rolledBack := false
	_, err := Perform(context.Background(), coordinator, Operation[int]{
		Apply: func() { applied = true },
		Key:   "items",
		Remote: func(ctx context.Context) (int, error) {
			return 0, errors.New("portal unavailable")
		},
		Rollback: func() { rolledBack = true },
	})

	require.Error(t, err)
	assert.True(t, applied)
	assert.True(t, rolledBack)
	assert.Empty(t, notifier.successes)
	assert.Equal(t, []string{"portal unavailable"}, notifier.errs)
}

func TestPerform_FailureReturnsZeroValue(t *testing.T) {
	coordinator := NewCoordinator(&recordingNotifier{})

	result, err := Perform(context.Background(), coordinator, Operation[string]{
		Remote: func(ctx context.Context) (string, error) {
			return "partial", errors.New("rejected")
		},
	})

	require.Error(t, err)
	assert.Empty(t, result)
}

func TestPerform_EmptyErrorTextFallsBackToErrorMessage(t *testing.T) {
	notifier := &recordingNotifier{}
	coordinator := NewCoordinator(notifier)

	_, err := Perform(context.Background(), coordinator, Operation[struct{}]{
		ErrorMessage: "Failed to delete 3 items",
		Remote: func(ctx context.Context) (struct{}, error) {
			return struct{}{}, silentError{}
		},
	})

	require.Error(t, err)
	assert.Equal(t, []string{"Failed to delete 3 items"}, notifier.errs)
}

func TestPerform_NilApplyAndRollbackAreOptional(t *testing.T) {
	coordinator := NewCoordinator(&recordingNotifier{})

	_, err := Perform(context.Background(), coordinator, Operation[struct{}]{
		Remote: func(ctx context.Context) (struct{}, error) {
			return struct{}{}, errors.New("boom")
		},
	})
	require.Error(t, err)

	_, err = Perform(context.Background(), coordinator, Operation[struct{}]{
		Remote: func(ctx context.Context) (struct{}, error) {
			return struct{}{}, nil
		},
	})
	require.NoError(t, err)
}

func TestPerform_SameKeySerializes(t *testing.T) {
	coordinator := NewCoordinator(&recordingNotifier{})

	var mu sync.Mutex
	var events []string
	record := func(event string) {
		mu.Lock()
		defer mu.Unlock()
		events = append(events, event)
	}

	var wg sync.WaitGroup
	for _, name := range []string{"a", "b"} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = Perform(context.Background(), coordinator, Operation[struct{}]{
				Key: "items",
				Remote: func(ctx context.Context) (struct{}, error) {
					record(name + ":start")
					record(name + ":end")
					return struct{}{}, nil
				},
			})
		}()
	}
	wg.Wait()

	// With both operations on the same key, each start must be followed
	// immediately by its own end.
	require.Len(t, events, 4)
	assert.Equal(t, events[0][:1], events[1][:1])
	assert.Equal(t, events[2][:1], events[3][:1])
}

func TestPerform_DifferentKeysRunConcurrently(t *testing.T) {
	coordinator := NewCoordinator(&recordingNotifier{})

	release := make(chan struct{})
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		_, _ = Perform(context.Background(), coordinator, Operation[struct{}]{
			Key: "items",
			Remote: func(ctx context.Context) (struct{}, error) {
				<-release
				return struct{}{}, nil
			},
		})
	}()

	// The users operation completes while the items one is still blocked,
	// then releases it. A deadlock here means the keys share a lock.
	_, err := Perform(context.Background(), coordinator, Operation[struct{}]{
		Key: "users",
		Remote: func(ctx context.Context) (struct{}, error) {
			close(release)
			return struct{}{}, nil
		},
	})
	require.NoError(t, err)
	wg.Wait()
}

func TestPerform_EmptyKeySkipsSerialization(t *testing.T) {
	coordinator := NewCoordinator(&recordingNotifier{})

	release := make(chan struct{})
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		_, _ = Perform(context.Background(), coordinator, Operation[struct{}]{
			Remote: func(ctx context.Context) (struct{}, error) {
				<-release
				return struct{}{}, nil
			},
		})
	}()

	_, err := Perform(context.Background(), coordinator, Operation[struct{}]{
		Remote: func(ctx context.Context) (struct{}, error) {
			close(release)
			return struct{}{}, nil
		},
	})
	require.NoError(t, err)
	wg.Wait()
}
