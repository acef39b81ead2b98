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

// usersResourceKey serializes optimistic operations on the user collection.
const usersResourceKey = "users"

// UserService caches the portal's members and performs admin operations on
// them optimistically.
type UserService struct {
	admin       ports.UserAdmin
	coordinator *optimistic.Coordinator
	mu          sync.RWMutex
	reader      ports.UserReader
	users       []domain.User
}

// NewUserService creates a UserService over the portal ports.
func NewUserService(reader ports.UserReader, admin ports.UserAdmin, coordinator *optimistic.Coordinator) *UserService {
	return &UserService{
		admin:       admin,
		coordinator: coordinator,
		reader:      reader,
	}
}

// Refresh reloads the user cache from the portal.
func (s *UserService) Refresh(ctx context.Context) error {
	users, err := s.reader.ListUsers(ctx)
	if err != nil {
		return fmt.Errorf("failed to list users: %w", err)
	}
	s.setUsers(users)
	return nil
}

// Users returns a snapshot of the cached users.
func (s *UserService) Users() []domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.User, len(s.users))
	copy(out, s.users)
	return out
}

func (s *UserService) setUsers(users []domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = users
}

func (s *UserService) collection() optimistic.Collection[domain.User] {
	return optimistic.Collection[domain.User]{
		Get:   s.Users,
		ID:    func(u domain.User) string { return u.Username },
		Label: func(u domain.User) string { return u.Username },
		Set:   s.setUsers,
	}
}

// SetDisabled optimistically enables or disables a user account.
func (s *UserService) SetDisabled(ctx context.Context, username string, disabled bool) error {
	logging.Logger.Info("Setting user disabled", "username", username, "disabled", disabled)
	update := func(user domain.User) domain.User {
		user.Disabled = disabled
		return user
	}
	remote := func(ctx context.Context, ids []string) error {
		return s.admin.SetUserDisabled(ctx, username, disabled)
	}
	verb := "Disabled"
	if !disabled {
		verb = "Enabled"
	}
	return optimistic.UpdateItems(ctx, s.coordinator, usersResourceKey,
		s.collection(), []string{username}, update, remote, verb, "user")
}

// UpdateRole optimistically changes a user's role.
func (s *UserService) UpdateRole(ctx context.Context, username string, role domain.Role) error {
	logging.Logger.Info("Updating user role", "username", username, "role", role)
	update := func(user domain.User) domain.User {
		user.Role = role
		return user
	}
	remote := func(ctx context.Context, ids []string) error {
		return s.admin.UpdateUserRole(ctx, username, role)
	}
	return optimistic.UpdateItems(ctx, s.coordinator, usersResourceKey,
		s.collection(), []string{username}, update, remote, "Updated", "user")
}
