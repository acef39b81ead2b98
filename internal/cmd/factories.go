package cmd

import (
	"time"

	"github.com/meridian-tui/meridian/internal/adapters/portalmem"
	"github.com/meridian-tui/meridian/internal/config"
	"github.com/meridian-tui/meridian/internal/notify"
	"github.com/meridian-tui/meridian/internal/optimistic"
	"github.com/meridian-tui/meridian/internal/ports"
	"github.com/meridian-tui/meridian/internal/services"
)

// defaultPortalLatency approximates a remote round-trip so optimistic
// updates are observable in the demo portal.
const defaultPortalLatency = 300 * time.Millisecond

// Container holds all dependencies for the application
type Container struct {
	Coordinator   *optimistic.Coordinator
	GroupService  *services.GroupService
	ItemService   *services.ItemService
	Notifications *notify.Store
	UserService   *services.UserService

	// Internal - for cleanup only
	portalRepo ports.PortalRepository
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(settings *config.Settings) (*Container, error) {
	portal := portalmem.NewSeededRepository()

	latency := defaultPortalLatency
	if settings != nil && settings.PortalLatencyMS != nil {
		latency = time.Duration(*settings.PortalLatencyMS) * time.Millisecond
	}
	portal.SetLatency(latency)

	var storeOpts []notify.Option
	if settings != nil && settings.NotificationTTLSeconds != nil {
		storeOpts = append(storeOpts, notify.WithTTL(time.Duration(*settings.NotificationTTLSeconds)*time.Second))
	}
	notifications := notify.NewStore(storeOpts...)

	coordinator := optimistic.NewCoordinator(notifications)

	return &Container{
		Coordinator:   coordinator,
		GroupService:  services.NewGroupService(portal),
		ItemService:   services.NewItemService(portal, portal, coordinator),
		Notifications: notifications,
		UserService:   services.NewUserService(portal, portal, coordinator),
		portalRepo:    portal,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.portalRepo != nil {
		return c.portalRepo.Close()
	}
	return nil
}
