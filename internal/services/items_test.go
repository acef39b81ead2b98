package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridian-tui/meridian/internal/adapters/portalmem"
	"github.com/meridian-tui/meridian/internal/domain"
	"github.com/meridian-tui/meridian/internal/notify"
	"github.com/meridian-tui/meridian/internal/optimistic"
)

func newTestItemService(t *testing.T) (*ItemService, *portalmem.Repository, *notify.Store) {
	t.Helper()
	repo := portalmem.NewSeededRepository()
	notifications := notify.NewStore(notify.WithTTL(0))
	coordinator := optimistic.NewCoordinator(notifications)

	service := NewItemService(repo, repo, coordinator)
	require.NoError(t, service.Refresh(context.Background()))
	return service, repo, notifications
}

func itemIDs(items []domain.Item) []string {
	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}
	return ids
}

func TestItemService_RefreshLoadsPortalItems(t *testing.T) {
	service, _, _ := newTestItemService(t)

	items := service.Items()
	require.Len(t, items, 6)
	assert.Equal(t, "itm-001", items[0].ID)
	assert.Equal(t, "City Parcels", items[0].Title)
}

func TestItemService_ItemsReturnsSnapshot(t *testing.T) {
	service, _, _ := newTestItemService(t)

	items := service.Items()
	items[0].Title = "mutated"

	assert.Equal(t, "City Parcels", service.Items()[0].Title)
}

func TestDeleteItems_RemovesFromCacheAndPortal(t *testing.T) {
	service, repo, notifications := newTestItemService(t)

	err := service.DeleteItems(context.Background(), []string{"itm-002"})
	require.NoError(t, err)

	assert.NotContains(t, itemIDs(service.Items()), "itm-002")

	remaining, err := repo.ListItems(context.Background())
	require.NoError(t, err)
	assert.Len(t, remaining, 5)

	list := notifications.List()
	require.Len(t, list, 1)
	assert.Equal(t, notify.KindSuccess, list[0].Kind)
	assert.Equal(t, `Deleted "Flood Zones 2026"`, list[0].Message)
}

func TestDeleteItems_BulkSuccessMessage(t *testing.T) {
	service, _, notifications := newTestItemService(t)

	err := service.DeleteItems(context.Background(), []string{"itm-001", "itm-003", "itm-005"})
	require.NoError(t, err)

	assert.Len(t, service.Items(), 3)

	list := notifications.List()
	require.Len(t, list, 1)
	assert.Equal(t, "Deleted 3 items", list[0].Message)
}

func TestDeleteItems_RollbackOnPortalFailure(t *testing.T) {
	service, repo, notifications := newTestItemService(t)
	before := service.Items()

	repo.FailNextWrite(errors.New("portal unavailable"))

	err := service.DeleteItems(context.Background(), []string{"itm-002"})
	require.Error(t, err)

	assert.Equal(t, before, service.Items())

	list := notifications.List()
	require.Len(t, list, 1)
	assert.Equal(t, notify.KindError, list[0].Kind)
	assert.Equal(t, "portal unavailable", list[0].Message)
}

func TestUpdateSharing_AppliesLevel(t *testing.T) {
	service, _, notifications := newTestItemService(t)

	err := service.UpdateSharing(context.Background(), []string{"itm-001", "itm-004"}, domain.SharingPublic)
	require.NoError(t, err)

	for _, item := range service.Items() {
		switch item.ID {
		case "itm-001", "itm-004":
			assert.Equal(t, domain.SharingPublic, item.Sharing)
		}
	}

	list := notifications.List()
	require.Len(t, list, 1)
	assert.Equal(t, "Shared 2 items", list[0].Message)
}

func TestUpdateSharing_PrivateUsesUnsharedVerb(t *testing.T) {
	service, _, notifications := newTestItemService(t)

	err := service.UpdateSharing(context.Background(), []string{"itm-002"}, domain.SharingPrivate)
	require.NoError(t, err)

	list := notifications.List()
	require.Len(t, list, 1)
	assert.Equal(t, `Unshared "Flood Zones 2026"`, list[0].Message)
}

func TestUpdateSharing_RollbackOnPortalFailure(t *testing.T) {
	service, repo, _ := newTestItemService(t)

	repo.FailNextWrite(errors.New("forbidden"))

	err := service.UpdateSharing(context.Background(), []string{"itm-004"}, domain.SharingPublic)
	require.Error(t, err)

	for _, item := range service.Items() {
		if item.ID == "itm-004" {
			assert.Equal(t, domain.SharingPrivate, item.Sharing)
		}
	}
}
