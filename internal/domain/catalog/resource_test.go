//go:build unit

package catalog_test

import (
	"testing"
	"time"

	"sportshub/internal/domain/catalog"
	"sportshub/internal/domain/money"
	"sportshub/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindLookup(t *testing.T) {
	tests := []struct {
		kind     catalog.Kind
		mode     catalog.PricingMode
		windowed bool
	}{
		{catalog.KindCourt, catalog.PricingHourly, true},
		{catalog.KindInstructor, catalog.PricingHourly, true},
		{catalog.KindClassOccurrence, catalog.PricingFlatOptional, false},
		{catalog.KindPlan, catalog.PricingFlat, false},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.True(t, tt.kind.IsValid())
			assert.Equal(t, tt.mode, tt.kind.PricingMode())
			assert.Equal(t, tt.windowed, tt.kind.Windowed())
		})
	}
}

func TestParseKind(t *testing.T) {
	k, err := catalog.ParseKind("court")
	require.NoError(t, err)
	assert.Equal(t, catalog.KindCourt, k)

	_, err = catalog.ParseKind("sauna")
	assert.True(t, errs.Is(err, errs.ErrInvalidResource))
	assert.Contains(t, errs.Reason(err), "sauna")
}

func TestEnsureBookable(t *testing.T) {
	rate := money.FromCents(6000)
	active := catalog.NewCourt(uuid.New(), "Court 1", true, &rate)
	assert.NoError(t, active.EnsureBookable())

	inactive := catalog.NewCourt(uuid.New(), "Court 2", false, &rate)
	err := inactive.EnsureBookable()
	assert.True(t, errs.Is(err, errs.ErrResourceInactive))
	assert.Equal(t, "court Court 2 is not active", errs.Reason(err))
}

func TestClassOccurrence(t *testing.T) {
	start := time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC)
	occ := catalog.NewClassOccurrence(uuid.New(), "Yoga", true, nil, start, start.Add(time.Hour), 12)

	assert.Equal(t, catalog.KindClassOccurrence, occ.Kind())
	assert.Nil(t, occ.UnitPrice())
	assert.Equal(t, 12, occ.Capacity())
	assert.Equal(t, "class_occurrence:"+occ.ID().String(), occ.Ref().String())
}
