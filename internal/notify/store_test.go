package notify

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPush_ListsOldestFirst(t *testing.T) {
	store := NewStore(WithTTL(0))

	store.Push(KindInfo, "first")
	store.Push(KindInfo, "second")
	store.Push(KindInfo, "third")

	list := store.List()
	require.Len(t, list, 3)
	assert.Equal(t, "first", list[0].Message)
	assert.Equal(t, "second", list[1].Message)
	assert.Equal(t, "third", list[2].Message)
}

func TestPush_EvictsOldestAtCapacity(t *testing.T) {
	store := NewStore(WithTTL(0))

	for i := 1; i <= DefaultCapacity+1; i++ {
		store.Push(KindInfo, fmt.Sprintf("message %d", i))
	}

	list := store.List()
	require.Len(t, list, DefaultCapacity)
	assert.Equal(t, "message 2", list[0].Message)
	assert.Equal(t, fmt.Sprintf("message %d", DefaultCapacity+1), list[DefaultCapacity-1].Message)
}

func TestPush_CustomCapacity(t *testing.T) {
	store := NewStore(WithCapacity(2), WithTTL(0))

	store.Push(KindInfo, "a")
	store.Push(KindInfo, "b")
	store.Push(KindInfo, "c")

	list := store.List()
	require.Len(t, list, 2)
	assert.Equal(t, "b", list[0].Message)
	assert.Equal(t, "c", list[1].Message)
}

func TestPush_AutoDismissAfterTTL(t *testing.T) {
	store := NewStore(WithTTL(20 * time.Millisecond))

	store.Push(KindSuccess, "ephemeral")
	require.Len(t, store.List(), 1)

	assert.Eventually(t, func() bool {
		return len(store.List()) == 0
	}, time.Second, 5*time.Millisecond)
}

func TestPush_ZeroTTLDisablesExpiry(t *testing.T) {
	store := NewStore(WithTTL(0))
	store.Push(KindInfo, "sticky")

	time.Sleep(20 * time.Millisecond)
	assert.Len(t, store.List(), 1)
}

func TestDismiss_RemovesNotification(t *testing.T) {
	store := NewStore(WithTTL(0))

	store.Push(KindInfo, "keep")
	id := store.Push(KindError, "drop")

	store.Dismiss(id)

	list := store.List()
	require.Len(t, list, 1)
	assert.Equal(t, "keep", list[0].Message)
}

func TestDismiss_UnknownIDIsNoop(t *testing.T) {
	store := NewStore(WithTTL(0))
	store.Push(KindInfo, "keep")

	store.Dismiss("not-an-id")
	assert.Len(t, store.List(), 1)
}

func TestSuccessAndError_SetKinds(t *testing.T) {
	store := NewStore(WithTTL(0))

	store.Success("done")
	store.Error("failed")

	list := store.List()
	require.Len(t, list, 2)
	assert.Equal(t, KindSuccess, list[0].Kind)
	assert.Equal(t, KindError, list[1].Kind)
}

func TestList_ReturnsCopy(t *testing.T) {
	store := NewStore(WithTTL(0))
	store.Push(KindInfo, "original")

	list := store.List()
	list[0].Message = "mutated"

	assert.Equal(t, "original", store.List()[0].Message)
}
