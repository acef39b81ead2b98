package ports

import (
	"context"

	"github.com/meridian-tui/meridian/internal/domain"
)

// ItemReader reads portal items
type ItemReader interface {
	GetItem(ctx context.Context, id string) (*domain.Item, error)
	ListItems(ctx context.Context) ([]domain.Item, error)
}

// ItemWriter deletes items and updates their sharing
type ItemWriter interface {
	DeleteItem(ctx context.Context, id string) error
	DeleteItems(ctx context.Context, ids []string) error
	UpdateItemSharing(ctx context.Context, id string, sharing domain.SharingLevel) error
	UpdateItemsSharing(ctx context.Context, ids []string, sharing domain.SharingLevel) error
}

// UserReader reads portal members
type UserReader interface {
	GetUser(ctx context.Context, username string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
}

// UserAdmin performs administrative user operations
type UserAdmin interface {
	SetUserDisabled(ctx context.Context, username string, disabled bool) error
	UpdateUserRole(ctx context.Context, username string, role domain.Role) error
}

// GroupReader reads portal groups
type GroupReader interface {
	ListGroups(ctx context.Context) ([]domain.Group, error)
}

// PortalRepository is the composite interface over the remote portal
type PortalRepository interface {
	ItemReader
	ItemWriter
	UserReader
	UserAdmin
	GroupReader
	Close() error
}
