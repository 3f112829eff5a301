//go:build unit

package infra_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		kind         []infra.RepositoryErrorKind
		wantKind     infra.RepositoryErrorKind
		wantNotFound bool
	}{
		{name: "no rows", err: pgx.ErrNoRows, wantKind: infra.KindNotFound, wantNotFound: true},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, wantKind: infra.KindDuplicateKey},
		{name: "foreign key violation", err: &pgconn.PgError{Code: "23503"}, wantKind: infra.KindForeignKeyViolated},
		{name: "exclusion violation", err: &pgconn.PgError{Code: "23P01", ConstraintName: "booking_rooms_no_overlap"}, wantKind: infra.KindConflict},
		{name: "anything else", err: errors.New("connection reset"), wantKind: infra.KindDBFailure},
		{name: "explicit kind wins", err: errors.New("zero rows affected"), kind: []infra.RepositoryErrorKind{infra.KindNotFound}, wantKind: infra.KindNotFound, wantNotFound: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := infra.WrapRepoErr("operation failed", tt.err, tt.kind...)

			assert.True(t, infra.IsKind(got, tt.wantKind), "got %v", got)
			assert.Equal(t, tt.wantNotFound, errs.Is(got, errs.ErrNotFound))
			assert.ErrorIs(t, got, tt.err)
		})
	}
}

func TestConstraintName(t *testing.T) {
	err := infra.WrapRepoErr("insert failed", &pgconn.PgError{Code: "23P01", ConstraintName: "booking_rooms_no_overlap"})
	assert.Equal(t, "booking_rooms_no_overlap", infra.ConstraintName(err))
	assert.Empty(t, infra.ConstraintName(errors.New("plain")))
}

func TestWrapRepoErr_LogLevel(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })

	tests := []struct {
		name      string
		err       error
		wantLevel string
	}{
		{name: "no rows", err: pgx.ErrNoRows, wantLevel: "level=DEBUG"},
		{name: "overlap conflict", err: &pgconn.PgError{Code: "23P01", ConstraintName: "booking_rooms_no_overlap"}, wantLevel: "level=WARN"},
		{name: "db failure", err: errors.New("connection reset"), wantLevel: "level=ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			_ = infra.WrapRepoErr("operation failed", tt.err)
			assert.Contains(t, buf.String(), tt.wantLevel)
		})
	}
}
