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

func newTestUserService(t *testing.T) (*UserService, *portalmem.Repository, *notify.Store) {
	t.Helper()
	repo := portalmem.NewSeededRepository()
	notifications := notify.NewStore(notify.WithTTL(0))
	coordinator := optimistic.NewCoordinator(notifications)

	service := NewUserService(repo, repo, coordinator)
	require.NoError(t, service.Refresh(context.Background()))
	return service, repo, notifications
}

func findUser(t *testing.T, users []domain.User, username string) domain.User {
	t.Helper()
	for _, user := range users {
		if user.Username == username {
			return user
		}
	}
	t.Fatalf("user %q not found", username)
	return domain.User{}
}

func TestUserService_RefreshLoadsPortalUsers(t *testing.T) {
	service, _, _ := newTestUserService(t)

	users := service.Users()
	require.Len(t, users, 5)
	assert.Equal(t, "gis_admin", users[0].Username)
	assert.Equal(t, domain.RoleAdmin, users[0].Role)
}

func TestSetDisabled_DisablesUser(t *testing.T) {
	service, repo, notifications := newTestUserService(t)

	err := service.SetDisabled(context.Background(), "planning", true)
	require.NoError(t, err)

	assert.True(t, findUser(t, service.Users(), "planning").Disabled)

	stored, err := repo.GetUser(context.Background(), "planning")
	require.NoError(t, err)
	assert.True(t, stored.Disabled)

	list := notifications.List()
	require.Len(t, list, 1)
	assert.Equal(t, `Disabled "planning"`, list[0].Message)
}

func TestSetDisabled_EnableUsesEnabledVerb(t *testing.T) {
	service, _, notifications := newTestUserService(t)

	err := service.SetDisabled(context.Background(), "parks", false)
	require.NoError(t, err)

	assert.False(t, findUser(t, service.Users(), "parks").Disabled)

	list := notifications.List()
	require.Len(t, list, 1)
	assert.Equal(t, `Enabled "parks"`, list[0].Message)
}

func TestSetDisabled_RollbackOnPortalFailure(t *testing.T) {
	service, repo, notifications := newTestUserService(t)

	repo.FailNextWrite(errors.New("portal unavailable"))

	err := service.SetDisabled(context.Background(), "planning", true)
	require.Error(t, err)

	assert.False(t, findUser(t, service.Users(), "planning").Disabled)

	list := notifications.List()
	require.Len(t, list, 1)
	assert.Equal(t, notify.KindError, list[0].Kind)
}

func TestUpdateRole_ChangesRole(t *testing.T) {
	service, repo, notifications := newTestUserService(t)

	err := service.UpdateRole(context.Background(), "planning", domain.RolePublisher)
	require.NoError(t, err)

	assert.Equal(t, domain.RolePublisher, findUser(t, service.Users(), "planning").Role)

	stored, err := repo.GetUser(context.Background(), "planning")
	require.NoError(t, err)
	assert.Equal(t, domain.RolePublisher, stored.Role)

	list := notifications.List()
	require.Len(t, list, 1)
	assert.Equal(t, `Updated "planning"`, list[0].Message)
}

func TestUpdateRole_RollbackOnPortalFailure(t *testing.T) {
	service, repo, _ := newTestUserService(t)

	repo.FailNextWrite(errors.New("forbidden"))

	err := service.UpdateRole(context.Background(), "planning", domain.RoleAdmin)
	require.Error(t, err)

	assert.Equal(t, domain.RoleViewer, findUser(t, service.Users(), "planning").Role)
}
