package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/meridian-tui/meridian/internal/domain"
	"github.com/meridian-tui/meridian/internal/logging"
	"github.com/meridian-tui/meridian/internal/optimistic"
	"github.com/meridian-tui/meridian/internal/ports"
)

// itemsResourceKey serializes optimistic operations on the item collection.
const itemsResourceKey = "items"

// ItemService caches the portal's item collection and mutates it
// optimistically: the cache changes before the portal confirms, and is
// rolled back when it doesn't.
type ItemService struct {
	coordinator *optimistic.Coordinator
	items       []domain.Item
	mu          sync.RWMutex
	reader      ports.ItemReader
	writer      ports.ItemWriter
}

// NewItemService creates an ItemService over the portal ports.
func NewItemService(reader ports.ItemReader, writer ports.ItemWriter, coordinator *optimistic.Coordinator) *ItemService {
	return &ItemService{
		coordinator: coordinator,
		reader:      reader,
		writer:      writer,
	}
}

// Refresh reloads the item cache from the portal.
func (s *ItemService) Refresh(ctx context.Context) error {
	items, err := s.reader.ListItems(ctx)
	if err != nil {
		return fmt.Errorf("failed to list items: %w", err)
	}
	s.setItems(items)
	return nil
}

// Items returns a snapshot of the cached items.
func (s *ItemService) Items() []domain.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Item, len(s.items))
	copy(out, s.items)
	return out
}

func (s *ItemService) setItems(items []domain.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = items
}

func (s *ItemService) collection() optimistic.Collection[domain.Item] {
	return optimistic.Collection[domain.Item]{
		Get:   s.Items,
		ID:    func(i domain.Item) string { return i.ID },
		Label: func(i domain.Item) string { return i.Title },
		Set:   s.setItems,
	}
}

// DeleteItems optimistically removes the given items from the cache, then
// confirms the deletion with the portal. On failure the cache is restored
// to the exact pre-delete state.
func (s *ItemService) DeleteItems(ctx context.Context, ids []string) error {
	logging.Logger.Info("Deleting items", "count", len(ids))
	return optimistic.DeleteItems(ctx, s.coordinator, itemsResourceKey,
		s.collection(), ids, s.writer.DeleteItems, "item")
}

// UpdateSharing optimistically changes the sharing level of the given items.
func (s *ItemService) UpdateSharing(ctx context.Context, ids []string, sharing domain.SharingLevel) error {
	logging.Logger.Info("Updating item sharing", "count", len(ids), "sharing", sharing)
	update := func(item domain.Item) domain.Item {
		item.Sharing = sharing
		return item
	}
	remote := func(ctx context.Context, ids []string) error {
		return s.writer.UpdateItemsSharing(ctx, ids, sharing)
	}
	verb := "Shared"
	if sharing == domain.SharingPrivate {
		verb = "Unshared"
	}
	return optimistic.UpdateItems(ctx, s.coordinator, itemsResourceKey,
		s.collection(), ids, update, remote, verb, "item")
}
