//go:build unit

package httperr_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/handler/httperr"
	"hotel-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	roomID := uuid.New()
	stay, err := booking.NewStayPeriod(
		time.Date(2030, 1, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2030, 1, 15, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)

	notFound := errs.NewKind("hotel not found", errs.ErrNotFound)
	badRequest := errs.NewKind("invalid guest count", errs.ErrBadRequest)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
		wantDetail any
	}{
		{
			name:       "unavailable room with detail",
			err:        errs.Wrap(booking.NewUnavailableRoomError(roomID, stay, nil), "insert booking"),
			wantStatus: http.StatusConflict,
			wantMsg:    "Room is not available for the requested dates",
			wantDetail: httperr.UnavailableRoomDetail{RoomID: roomID.String(), CheckIn: "2030-01-10", CheckOut: "2030-01-15"},
		},
		{
			name:       "bare unavailable kind",
			err:        errs.NewKind("room taken", errs.ErrUnavailableRoom),
			wantStatus: http.StatusConflict,
			wantMsg:    "Room is not available for the requested dates",
		},
		{
			name:       "not found keeps its message",
			err:        notFound,
			wantStatus: http.StatusNotFound,
			wantMsg:    "hotel not found",
		},
		{
			name:       "unauthorized becomes forbidden",
			err:        errs.NewKind("booking belongs to another guest", errs.ErrUnauthorized),
			wantStatus: http.StatusForbidden,
			wantMsg:    "Access to this booking is not allowed",
		},
		{
			name:       "wrapped bad request",
			err:        errs.Wrapf(badRequest, "adults=%d", 0),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "adults=0: invalid guest count",
		},
		{
			name:       "handled bad request is a server error",
			err:        errs.Wrap(errs.Handled(badRequest), "invalid room row"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Internal server error",
		},
		{
			name:       "plain error hides its text",
			err:        errors.New("connection reset"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg, detail := httperr.Classify(tt.err)

			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
			assert.Equal(t, tt.wantDetail, detail)
		})
	}
}
