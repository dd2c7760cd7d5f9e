//go:build unit

package telemetry_test

import (
	"context"
	"testing"

	"sportshub/internal/infra/telemetry"
	"sportshub/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDisabled(t *testing.T) {
	cfg := config.NewTestConfig().Telemetry

	p, err := telemetry.Init(context.Background(), cfg)

	require.NoError(t, err)
	assert.False(t, p.Enabled())
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestShutdownNilProvider(t *testing.T) {
	var p *telemetry.Provider
	assert.NoError(t, p.Shutdown(context.Background()))
}
