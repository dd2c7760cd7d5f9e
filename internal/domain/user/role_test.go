//go:build unit

package user_test

import (
	"testing"

	"sportshub/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRole(t *testing.T) {
	for _, s := range []string{"student", "instructor", "admin"} {
		role, err := user.NewRole(s)
		require.NoError(t, err, s)
		assert.Equal(t, s, role.String())
	}

	_, err := user.NewRole("viewer")
	assert.ErrorIs(t, err, user.ErrInvalidRole)
	_, err = user.NewRole("")
	assert.ErrorIs(t, err, user.ErrInvalidRole)
}

func TestActor_CanActFor(t *testing.T) {
	owner := uuid.New()

	assert.True(t, user.Actor{ID: owner, Role: user.RoleStudent}.CanActFor(owner))
	assert.False(t, user.Actor{ID: uuid.New(), Role: user.RoleStudent}.CanActFor(owner))
	assert.False(t, user.Actor{ID: uuid.New(), Role: user.RoleInstructor}.CanActFor(owner))
	assert.True(t, user.Actor{ID: uuid.New(), Role: user.RoleAdmin}.CanActFor(owner))
}
