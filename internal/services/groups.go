package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/meridian-tui/meridian/internal/domain"
	"github.com/meridian-tui/meridian/internal/ports"
)

// GroupService caches the portal's groups. Groups are read-only in the
// panel for now.
type GroupService struct {
	groups []domain.Group
	mu     sync.RWMutex
	reader ports.GroupReader
}

// NewGroupService creates a GroupService over the portal ports.
func NewGroupService(reader ports.GroupReader) *GroupService {
	return &GroupService{reader: reader}
}

// Refresh reloads the group cache from the portal.
func (s *GroupService) Refresh(ctx context.Context) error {
	groups, err := s.reader.ListGroups(ctx)
	if err != nil {
		return fmt.Errorf("failed to list groups: %w", err)
	}
	s.mu.Lock()
	s.groups = groups
	s.mu.Unlock()
	return nil
}

// Groups returns a snapshot of the cached groups.
func (s *GroupService) Groups() []domain.Group {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Group, len(s.groups))
	copy(out, s.groups)
	return out
}
