//go:build e2e

package booking_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	stdhttptest "net/http/httptest"
	"sync"
	"testing"
	"time"

	"hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/handler/httperr"
	"hotel-booking/internal/infra/notification"
	"hotel-booking/tests/common/authtest"
	"hotel-booking/tests/common/builder"
	"hotel-booking/tests/common/dbtest"
	"hotel-booking/tests/common/httptest"
	"hotel-booking/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const bookingsURL = "/api/bookings"

type BookingSuite struct {
	e2e.SharedSuite
}

func (s *BookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

func (s *BookingSuite) token(t *testing.T, userID uuid.UUID) string {
	return authtest.NewJWTHelper(s.Config.JWT).GenerateToken(t, userID)
}

func (s *BookingSuite) create(t *testing.T, b *builder.BookingBuilder, token string) response.BookingConfirmationResponse {
	t.Helper()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, b.BuildCreateRequestDTO(), token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created response.BookingConfirmationResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
	return created
}

// =============================================================================
// TestCreateBooking
// =============================================================================

func (s *BookingSuite) TestCreateBooking() {
	s.Run("Normal case: booking two rooms returns the discounted total", func() {
		t := s.T()

		b := builder.NewBookingBuilder()
		dbtest.SeedBookingScenario(t, s.DB, b)
		token := s.token(t, b.UserID)

		created := s.create(t, b, token)

		expected := response.BookingConfirmationResponse{
			GuestFullName: "Ada Lovelace",
			HotelName:     "Harbor View",
			RoomNumbers:   []string{"101", "102"},
			TotalPrice:    "3400.00",
		}
		opts := cmpopts.IgnoreFields(response.BookingConfirmationResponse{}, "ID")
		if diff := cmp.Diff(expected, created, opts); diff != "" {
			t.Errorf("confirmation mismatch (-want +got):\n%s", diff)
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/"+created.ID.String(), nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var fetched response.BookingConfirmationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &fetched))
		require.Equal(t, created, fetched)

		require.Equal(t, 1, dbtest.CountNotificationJobs(t, s.DB, notification.TopicBookingConfirmed))
	})

	s.Run("Normal case: back-to-back stays on the same room do not overlap", func() {
		t := s.T()

		b := builder.NewBookingBuilder()
		dbtest.SeedBookingScenario(t, s.DB, b)
		token := s.token(t, b.UserID)
		s.create(t, b, token)

		firstCheckOut := b.CheckOut
		next := b.With(func(nb *builder.BookingBuilder) {
			nb.CheckIn = firstCheckOut
			nb.CheckOut = firstCheckOut.AddDate(0, 0, 2)
		})
		created := s.create(t, next, token)
		require.Equal(t, "1360.00", created.TotalPrice)
	})

	s.Run("Error case: overlapping stay is rejected with the room and dates", func() {
		t := s.T()

		b := builder.NewBookingBuilder()
		dbtest.SeedBookingScenario(t, s.DB, b)
		token := s.token(t, b.UserID)
		s.create(t, b, token)

		target := b.Rooms[1]
		overlapping := b.With(func(nb *builder.BookingBuilder) {
			nb.Rooms = []builder.RoomSpec{target}
			nb.CheckIn = time.Date(2030, 1, 14, 0, 0, 0, 0, time.UTC)
			nb.CheckOut = time.Date(2030, 1, 18, 0, 0, 0, 0, time.UTC)
		})
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, overlapping.BuildCreateRequestDTO(), token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "not available")

		var body struct {
			Detail httperr.UnavailableRoomDetail `json:"detail"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.Equal(t, target.ID.String(), body.Detail.RoomID)
		require.Equal(t, "2030-01-14", body.Detail.CheckIn)
		require.Equal(t, "2030-01-18", body.Detail.CheckOut)
		require.Equal(t, 1, dbtest.CountBookingLines(t, s.DB, target.ID))
	})

	s.Run("Error case: too many guests for the selected rooms", func() {
		t := s.T()

		b := builder.NewBookingBuilder().With(func(nb *builder.BookingBuilder) {
			nb.Adults = 5
			nb.Children = 0
		})
		dbtest.SeedBookingScenario(t, s.DB, b)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, b.BuildCreateRequestDTO(), s.token(t, b.UserID))
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "invalid guest count")
		require.Equal(t, 0, dbtest.CountBookingLines(t, s.DB, b.Rooms[0].ID))
	})

	s.Run("Error case: unknown hotel returns 404", func() {
		t := s.T()

		b := builder.NewBookingBuilder()
		dbtest.SeedBookingScenario(t, s.DB, b)
		unknown := b.With(func(nb *builder.BookingBuilder) { nb.HotelID = uuid.New() })

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, unknown.BuildCreateRequestDTO(), s.token(t, b.UserID))
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "hotel not found")
	})

	s.Run("Error case: expired token returns 401", func() {
		t := s.T()

		b := builder.NewBookingBuilder()
		token := authtest.NewJWTHelper(s.Config.JWT).CreateExpiredToken(t, b.UserID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, b.BuildCreateRequestDTO(), token)
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid or expired token")
	})
}

// =============================================================================
// TestConcurrentBooking - only one of several racing requests wins the room
// =============================================================================

func (s *BookingSuite) TestConcurrentBooking() {
	s.Run("Exactly one of the concurrent requests succeeds", func() {
		t := s.T()

		b := builder.NewBookingBuilder().With(func(nb *builder.BookingBuilder) {
			nb.Rooms = nb.Rooms[:1]
			nb.Children = 0
		})
		dbtest.SeedBookingScenario(t, s.DB, b)
		token := s.token(t, b.UserID)

		payload, err := json.Marshal(b.BuildCreateRequestDTO())
		require.NoError(t, err)

		const racers = 8
		codes := make([]int, racers)
		var wg sync.WaitGroup
		start := make(chan struct{})
		for i := range racers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				<-start
				req := stdhttptest.NewRequest(http.MethodPost, bookingsURL, bytes.NewReader(payload))
				req.Header.Set("Content-Type", "application/json")
				req.Header.Set("Authorization", "Bearer "+token)
				rec := stdhttptest.NewRecorder()
				s.Router.ServeHTTP(rec, req)
				codes[i] = rec.Code
			}()
		}
		close(start)
		wg.Wait()

		created, conflicted := 0, 0
		for _, code := range codes {
			switch code {
			case http.StatusCreated:
				created++
			case http.StatusConflict:
				conflicted++
			}
		}
		require.Equal(t, 1, created, fmt.Sprintf("status codes: %v", codes))
		require.Equal(t, racers-1, conflicted, fmt.Sprintf("status codes: %v", codes))
		require.Equal(t, 1, dbtest.CountBookingLines(t, s.DB, b.Rooms[0].ID))
	})
}

// =============================================================================
// TestInvoice
// =============================================================================

func (s *BookingSuite) TestInvoice() {
	s.Run("Normal case: invoice keeps the discount bound at booking time", func() {
		t := s.T()

		b := builder.NewBookingBuilder()
		dbtest.SeedBookingScenario(t, s.DB, b)
		token := s.token(t, b.UserID)
		created := s.create(t, b, token)

		// a newer and larger discount must not change an existing booking
		dbtest.CreateTestDiscount(t, s.DB, b.Rooms[0].ID, 50,
			b.CheckIn.AddDate(0, 0, -1), b.CheckOut, time.Now())

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/"+created.ID.String()+"/invoice", nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var inv response.InvoiceResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &inv))
		require.Equal(t, "3500.00", inv.TotalPrice)
		require.Equal(t, "3400.00", inv.TotalPriceAfterDiscount)
		require.Len(t, inv.Rooms, 2)
		require.Equal(t, "180.00", inv.Rooms[0].PricePerNightAfterDiscount)
		require.Equal(t, "900.00", inv.Rooms[0].TotalPriceAfterDiscount)
		require.Equal(t, "2500.00", inv.Rooms[1].TotalPriceAfterDiscount)
		require.Equal(t, "ada@example.com", inv.GuestEmail)
	})

	s.Run("Normal case: invoice document downloads as PDF", func() {
		t := s.T()

		b := builder.NewBookingBuilder()
		dbtest.SeedBookingScenario(t, s.DB, b)
		token := s.token(t, b.UserID)
		created := s.create(t, b, token)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/"+created.ID.String()+"/invoice/document", nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		require.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
		require.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF-")))
	})

	s.Run("Error case: another guest cannot read the invoice", func() {
		t := s.T()

		b := builder.NewBookingBuilder()
		dbtest.SeedBookingScenario(t, s.DB, b)
		created := s.create(t, b, s.token(t, b.UserID))

		other := builder.NewBookingBuilder()
		dbtest.CreateTestGuest(t, s.DB, other.GuestID, other.UserID, "Grace", "Hopper", "grace@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/"+created.ID.String()+"/invoice", nil, s.token(t, other.UserID))
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "")
	})
}
