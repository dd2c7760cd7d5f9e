//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"sportshub/internal/infra"
	"sportshub/internal/infra/readstore"
	sqlc "sportshub/internal/infra/sqlc/generated"
	"sportshub/internal/pkg/pgconv"
	readstoremock "sportshub/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReservationReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	courtID, instructorID, occurrenceID := uuid.New(), uuid.New(), uuid.New()

	testCases := []struct {
		name           string
		row            sqlc.GetReservationViewByIDRow
		expectResource uuid.UUID
		expectCourt    *uuid.UUID
	}{
		{
			name: "court booking resolves to the court",
			row: sqlc.GetReservationViewByIDRow{
				Kind:    "court_booking",
				CourtID: pgconv.UUIDToPgtype(courtID),
			},
			expectResource: courtID,
		},
		{
			name: "personal session resolves to the instructor and keeps the court",
			row: sqlc.GetReservationViewByIDRow{
				Kind:         "personal_session",
				InstructorID: pgconv.UUIDToPgtype(instructorID),
				CourtID:      pgconv.UUIDToPgtype(courtID),
			},
			expectResource: instructorID,
			expectCourt:    &courtID,
		},
		{
			name: "class enrollment resolves to the occurrence",
			row: sqlc.GetReservationViewByIDRow{
				Kind:              "class_enrollment",
				ClassOccurrenceID: pgconv.UUIDToPgtype(occurrenceID),
			},
			expectResource: occurrenceID,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := readstoremock.NewMockReservationViewQueries(ctrl)
			mockDB := &mockDBTX{}
			store := readstore.NewReservationReadStore(mockQueries, mockDB)

			id := uuid.New()
			row := tc.row
			row.ID = id
			row.ResourceName = "Center Court"
			row.StartAt = pgconv.TimeToPgtype(baseTime)
			row.EndAt = pgconv.TimeToPgtype(baseTime.Add(time.Hour))
			row.TotalCents = 6000
			row.Status = "pending"
			mockQueries.EXPECT().GetReservationViewByID(ctx, mockDB, id).Return(row, nil)

			view, err := store.FindByID(ctx, id)
			require.NoError(t, err)
			assert.Equal(t, tc.expectResource, view.ResourceID)
			assert.Equal(t, tc.expectCourt, view.CourtID)
			assert.Equal(t, "Center Court", view.ResourceName)
			assert.Nil(t, view.Notes)
			assert.True(t, view.StartAt.Equal(baseTime))
		})
	}
}

func TestReservationReadStore_FindByID_NotFound(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockReservationViewQueries(ctrl)
	mockDB := &mockDBTX{}
	store := readstore.NewReservationReadStore(mockQueries, mockDB)

	mockQueries.EXPECT().GetReservationViewByID(ctx, mockDB, gomock.Any()).Return(sqlc.GetReservationViewByIDRow{}, pgx.ErrNoRows)

	view, err := store.FindByID(ctx, uuid.New())
	require.Error(t, err)
	assert.Nil(t, view)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestReservationReadStore_FindByUserKeyset(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockReservationViewQueries(ctrl)
	mockDB := &mockDBTX{}
	store := readstore.NewReservationReadStore(mockQueries, mockDB)

	userID, lastID := uuid.New(), uuid.New()
	mockQueries.EXPECT().ListReservationsByUserKeyset(ctx, mockDB, sqlc.ListReservationsByUserKeysetParams{
		UserID:         userID,
		AfterCreatedAt: pgconv.TimeToPgtype(baseTime),
		AfterID:        lastID,
		PageLimit:      3,
	}).Return([]sqlc.ListReservationsByUserKeysetRow{
		{ID: uuid.New(), Kind: "court_booking", Status: "confirmed", CreatedAt: pgconv.TimeToPgtype(baseTime.Add(-time.Minute))},
		{ID: uuid.New(), Kind: "class_enrollment", Status: "pending", CreatedAt: pgconv.TimeToPgtype(baseTime.Add(-2 * time.Minute))},
	}, nil)

	items, err := store.FindByUserKeyset(ctx, userID, baseTime, lastID, 3)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "confirmed", items[0].Status)
	assert.Equal(t, "class_enrollment", items[1].Kind)
}
