//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"sportshub/internal/domain/user"
	"sportshub/internal/pkg/config"
	"sportshub/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const defaultTTL = time.Hour

// JWTHelper mints tokens the way the identity provider would.
type JWTHelper struct {
	service *jwt.Service
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{service: jwt.NewService(cfg.Secret, cfg.Issuer)}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := h.service.IssueToken(userID, role, defaultTTL)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := h.service.IssueToken(userID, role, -time.Minute)
	require.NoError(t, err)
	return token
}
