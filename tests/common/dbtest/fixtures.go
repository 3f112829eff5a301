//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"hotel-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestHotel(t *testing.T, db DBLike, id uuid.UUID, name string) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"INSERT INTO hotels (id, name, address, city) VALUES ($1, $2, $3, $4)",
		id, name, "1 Pier Road", "Lisbon")
	require.NoError(t, err)
}

func CreateTestGuest(t *testing.T, db DBLike, id, userID uuid.UUID, firstName, lastName, email string) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"INSERT INTO guests (id, user_id, first_name, last_name, email) VALUES ($1, $2, $3, $4, $5)",
		id, userID, firstName, lastName, email)
	require.NoError(t, err)
}

func CreateTestRoom(t *testing.T, db DBLike, hotelID uuid.UUID, spec builder.RoomSpec) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		`INSERT INTO rooms (id, hotel_id, number, room_type, price, adults_capacity, children_capacity)
		 VALUES ($1, $2, $3, $4, $5::numeric, $6, $7)`,
		spec.ID, hotelID, spec.Number, spec.Type, spec.Price, spec.Adults, spec.Children)
	require.NoError(t, err)
}

func CreateTestDiscount(t *testing.T, db DBLike, roomID uuid.UUID, percentage int64, start, end, createdAt time.Time) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO discounts (id, room_id, percentage, start_date, end_date, created_at)
		 VALUES ($1, $2, $3::numeric, $4, $5, $6)`,
		id, roomID, fmt.Sprint(percentage), start, end, createdAt)
	require.NoError(t, err)
	return id
}

// SeedBookingScenario stores the hotel, guest, rooms and discounts described
// by b. Discount windows span a month around the stay.
func SeedBookingScenario(t *testing.T, db DBLike, b *builder.BookingBuilder) {
	t.Helper()

	CreateTestHotel(t, db, b.HotelID, b.HotelName)
	CreateTestGuest(t, db, b.GuestID, b.UserID, b.GuestFirstName, b.GuestLastName, b.GuestEmail)
	for _, spec := range b.Rooms {
		CreateTestRoom(t, db, b.HotelID, spec)
		if spec.DiscountPct > 0 {
			CreateTestDiscount(t, db, spec.ID, spec.DiscountPct,
				b.CheckIn.AddDate(0, 0, -30), b.CheckOut.AddDate(0, 0, 30), b.CreatedAt)
		}
	}
}

func CountBookingLines(t *testing.T, db DBLike, roomID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM booking_rooms WHERE room_id = $1", roomID).Scan(&n)
	require.NoError(t, err)
	return n
}

func CountBookings(t *testing.T, db DBLike, guestID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM bookings WHERE guest_id = $1", guestID).Scan(&n)
	require.NoError(t, err)
	return n
}

func CountNotificationJobs(t *testing.T, db DBLike, topic string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM notification_jobs WHERE topic = $1", topic).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
