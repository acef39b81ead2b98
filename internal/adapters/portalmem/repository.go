package portalmem

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/meridian-tui/meridian/internal/domain"
)

// Repository is an in-memory stand-in for the remote portal API.
// It implements ports.PortalRepository so the panel can run without a live
// portal; writes honor an artificial latency and an injectable failure so
// optimistic rollback paths can be exercised end to end.
type Repository struct {
	groups    []domain.Group
	itemOrder []string
	items     map[string]domain.Item
	latency   time.Duration
	mu        sync.RWMutex
	nextErr   error
	userOrder []string
	users     map[string]domain.User
}

// NewRepository creates an empty in-memory portal repository.
func NewRepository() *Repository {
	return &Repository{
		items: make(map[string]domain.Item),
		users: make(map[string]domain.User),
	}
}

// NewSeededRepository creates a repository pre-loaded with demo content.
func NewSeededRepository() *Repository {
	r := NewRepository()
	for _, item := range seedItems() {
		r.AddItem(item)
	}
	for _, user := range seedUsers() {
		r.AddUser(user)
	}
	r.groups = seedGroups()
	return r
}

// SetLatency sets an artificial delay applied to every write call.
func (r *Repository) SetLatency(d time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.latency = d
}

// FailNextWrite makes the next write call return err instead of applying.
func (r *Repository) FailNextWrite(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextErr = err
}

// AddItem inserts an item, used for seeding and tests.
func (r *Repository) AddItem(item domain.Item) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[item.ID]; !ok {
		r.itemOrder = append(r.itemOrder, item.ID)
	}
	r.items[item.ID] = item
}

// AddUser inserts a user, used for seeding and tests.
func (r *Repository) AddUser(user domain.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.Username]; !ok {
		r.userOrder = append(r.userOrder, user.Username)
	}
	r.users[user.Username] = user
}

// beginWrite sleeps for the configured latency and consumes a pending
// injected failure. Callers must not hold the lock.
func (r *Repository) beginWrite(ctx context.Context) error {
	r.mu.Lock()
	delay := r.latency
	err := r.nextErr
	r.nextErr = nil
	r.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return err
}

// GetItem returns the item with the given id.
func (r *Repository) GetItem(ctx context.Context, id string) (*domain.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, ok := r.items[id]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	return &item, nil
}

// ListItems returns all items in insertion order.
func (r *Repository) ListItems(ctx context.Context) ([]domain.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	items := make([]domain.Item, 0, len(r.itemOrder))
	for _, id := range r.itemOrder {
		items = append(items, r.items[id])
	}
	return items, nil
}

// DeleteItem removes the item with the given id.
func (r *Repository) DeleteItem(ctx context.Context, id string) error {
	if err := r.beginWrite(ctx); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return domain.ErrItemNotFound
	}
	delete(r.items, id)
	for i, existing := range r.itemOrder {
		if existing == id {
			r.itemOrder = append(r.itemOrder[:i], r.itemOrder[i+1:]...)
			break
		}
	}
	return nil
}

// DeleteItems removes a batch of items, fanning out one call per id.
func (r *Repository) DeleteItems(ctx context.Context, ids []string) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, id := range ids {
		g.Go(func() error {
			return r.DeleteItem(ctx, id)
		})
	}
	return g.Wait()
}

// UpdateItemSharing changes the sharing level of one item.
func (r *Repository) UpdateItemSharing(ctx context.Context, id string, sharing domain.SharingLevel) error {
	if err := r.beginWrite(ctx); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok {
		return domain.ErrItemNotFound
	}
	item.Sharing = sharing
	item.Modified = time.Now().UTC()
	r.items[id] = item
	return nil
}

// UpdateItemsSharing changes the sharing level of a batch of items.
func (r *Repository) UpdateItemsSharing(ctx context.Context, ids []string, sharing domain.SharingLevel) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, id := range ids {
		g.Go(func() error {
			return r.UpdateItemSharing(ctx, id, sharing)
		})
	}
	return g.Wait()
}

// GetUser returns the user with the given username.
func (r *Repository) GetUser(ctx context.Context, username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &user, nil
}

// ListUsers returns all users in insertion order.
func (r *Repository) ListUsers(ctx context.Context) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	users := make([]domain.User, 0, len(r.userOrder))
	for _, username := range r.userOrder {
		users = append(users, r.users[username])
	}
	return users, nil
}

// SetUserDisabled enables or disables a user account.
func (r *Repository) SetUserDisabled(ctx context.Context, username string, disabled bool) error {
	if err := r.beginWrite(ctx); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[username]
	if !ok {
		return domain.ErrUserNotFound
	}
	user.Disabled = disabled
	r.users[username] = user
	return nil
}

// UpdateUserRole changes a user's role.
func (r *Repository) UpdateUserRole(ctx context.Context, username string, role domain.Role) error {
	if err := r.beginWrite(ctx); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[username]
	if !ok {
		return domain.ErrUserNotFound
	}
	user.Role = role
	r.users[username] = user
	return nil
}

// ListGroups returns all groups.
func (r *Repository) ListGroups(ctx context.Context) ([]domain.Group, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	groups := make([]domain.Group, len(r.groups))
	copy(groups, r.groups)
	return groups, nil
}

// Close releases nothing; present to satisfy ports.PortalRepository.
func (r *Repository) Close() error {
	return nil
}
