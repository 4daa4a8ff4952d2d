//go:build integration

package db_test

import (
	"context"
	"testing"

	"citizen_registry/internal/db"
	"citizen_registry/internal/domain"
	"citizen_registry/internal/service"
	"citizen_registry/internal/store"
	"citizen_registry/internal/testutil/containers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBootstrap_SeedsAdminOnce(t *testing.T) {
	pg := containers.NewPostgresContainer(t)
	ctx := context.Background()

	require.NoError(t, db.Bootstrap(ctx, pg.DB, "admin123"))
	require.NoError(t, db.Bootstrap(ctx, pg.DB, "changed-password"))

	var users []domain.User
	require.NoError(t, pg.DB.Find(&users).Error)
	require.Len(t, users, 1)
	assert.Equal(t, db.AdminUsername, users[0].Username)
	assert.Equal(t, domain.RoleAdmin, users[0].Role)
	assert.NotEqual(t, "admin123", users[0].PasswordHash)

	// the first seed wins
	auth, err := service.NewAuthService(store.NewUserStore(pg.DB, pg.Config.DBOpTimeout), "secret")
	require.NoError(t, err)

	session, err := auth.Authenticate(ctx, "admin", "admin123")
	require.NoError(t, err)
	principal, err := auth.Authorize(session.Token)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, principal.Role)

	_, err = auth.Authenticate(ctx, "admin", "changed-password")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	_, err = auth.Authenticate(ctx, "nobody", "admin123")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestUsersRejectUnknownRole(t *testing.T) {
	pg := containers.NewPostgresContainer(t)
	ctx := context.Background()

	_, err := db.SeedUser(ctx, pg.DB, db.SeedAccount{Username: "auditor", Password: "pw", Role: "auditor", FullName: "Audit"})
	require.ErrorIs(t, err, domain.ErrInvalidRole)

	// the CHECK constraint catches writes that bypass the seeder
	err = pg.DB.WithContext(ctx).Create(&domain.User{
		Username:     "rogue",
		PasswordHash: "x",
		Role:         "superuser",
		FullName:     "Rogue",
	}).Error
	require.Error(t, err)

	created, err := db.SeedUser(ctx, pg.DB, db.SeedAccount{Username: "officer1", Password: "pw", Role: domain.RoleOfficer, FullName: "Officer One"})
	require.NoError(t, err)
	assert.True(t, created)

	var count int64
	require.NoError(t, pg.DB.Model(&domain.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
