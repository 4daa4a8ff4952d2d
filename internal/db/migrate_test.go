package db

import (
	"context"
	"testing"

	"citizen_registry/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedUser_RejectsUnknownRole(t *testing.T) {
	for _, role := range []string{"", "superuser", "Admin"} {
		created, err := SeedUser(context.Background(), nil, SeedAccount{
			Username: "intruder",
			Password: "secret",
			Role:     role,
			FullName: "Nobody",
		})
		require.ErrorIs(t, err, domain.ErrInvalidRole, "role %q", role)
		assert.False(t, created)
	}
}
