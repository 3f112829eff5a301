//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/repository"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/tests/common/builder"
	repositorymock "hotel-booking/tests/mock/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBookingRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		setupMock  func(*repositorymock.MockBookingWriteQueries, *booking.Booking, sqlc.DBTX)
		expectKind infra.RepositoryErrorKind
		check      func(t *testing.T, b *booking.Booking, err error)
	}{
		{
			name: "success: booking and every line written in order",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, b *booking.Booking, tx sqlc.DBTX) {
				mock.EXPECT().CreateBooking(ctx, tx, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateBookingParams) error {
						assert.Equal(t, b.ID(), arg.ID)
						assert.Equal(t, int32(2), arg.Adults)
						assert.Equal(t, "card", arg.PaymentMethod)
						return nil
					})
				for i, line := range b.Lines() {
					mock.EXPECT().CreateBookingRoom(ctx, tx, gomock.Any()).
						DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateBookingRoomParams) (int64, error) {
							assert.Equal(t, line.Room().ID(), arg.RoomID)
							assert.Equal(t, int32(i), arg.Position)
							assert.Equal(t, line.HasDiscount(), arg.DiscountID.Valid)
							return 1, nil
						})
				}
			},
		},
		{
			name: "error: booking insert fails",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, b *booking.Booking, tx sqlc.DBTX) {
				mock.EXPECT().CreateBooking(ctx, tx, gomock.Any()).Return(errors.New("database connection error"))
			},
			expectKind: infra.KindDBFailure,
		},
		{
			name: "error: overlapping stay reported as unavailable room",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, b *booking.Booking, tx sqlc.DBTX) {
				mock.EXPECT().CreateBooking(ctx, tx, gomock.Any()).Return(nil)
				mock.EXPECT().CreateBookingRoom(ctx, tx, gomock.Any()).Return(int64(0), &pgconn.PgError{
					Code:           "23P01",
					ConstraintName: "booking_rooms_no_overlap",
				})
			},
			expectKind: infra.KindConflict,
			check: func(t *testing.T, b *booking.Booking, err error) {
				var unavailable *booking.UnavailableRoomError
				require.True(t, errs.As(err, &unavailable))
				assert.Equal(t, b.Lines()[0].Room().ID(), unavailable.RoomID)
				assert.True(t, errs.Is(err, errs.ErrUnavailableRoom))
			},
		},
		{
			name: "error: other exclusion constraint stays a plain conflict",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, b *booking.Booking, tx sqlc.DBTX) {
				mock.EXPECT().CreateBooking(ctx, tx, gomock.Any()).Return(nil)
				mock.EXPECT().CreateBookingRoom(ctx, tx, gomock.Any()).Return(int64(0), &pgconn.PgError{
					Code:           "23P01",
					ConstraintName: "some_other_constraint",
				})
			},
			expectKind: infra.KindConflict,
			check: func(t *testing.T, _ *booking.Booking, err error) {
				assert.False(t, errs.Is(err, errs.ErrUnavailableRoom))
			},
		},
		{
			name: "error: line insert affected no rows",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, b *booking.Booking, tx sqlc.DBTX) {
				mock.EXPECT().CreateBooking(ctx, tx, gomock.Any()).Return(nil)
				mock.EXPECT().CreateBookingRoom(ctx, tx, gomock.Any()).Return(int64(0), nil)
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBookingRepository(mockQueries, mockDB)

			b := builder.NewBookingBuilder().BuildBooking(t)
			tc.setupMock(mockQueries, b, mockDB)

			err := repo.Create(ctx, mockDB, b)

			if tc.expectKind == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, infra.IsKind(err, tc.expectKind), "got %v", err)
			if tc.check != nil {
				tc.check(t, b, err)
			}
		})
	}
}
