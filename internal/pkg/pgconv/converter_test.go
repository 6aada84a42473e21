//go:build unit

package pgconv_test

import (
	"database/sql"
	"fmt"
	"testing"
	"time"

	"equipment-rental/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
)

func TestUUIDRoundTrip(t *testing.T) {
	id := uuid.New()
	got, ok := pgconv.UUIDFromPgtype(pgconv.UUIDToPgtype(id))
	assert.True(t, ok)
	assert.Equal(t, id, got)

	_, ok = pgconv.UUIDFromPgtype(pgtype.UUID{})
	assert.False(t, ok)
}

func TestTimeFromPgtype_NormalizesToUTC(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	in := time.Date(2024, 3, 5, 0, 30, 0, 0, tokyo)

	got := pgconv.TimeFromPgtype(pgtype.Timestamptz{Time: in, Valid: true})
	assert.Equal(t, time.UTC, got.Location())
	assert.True(t, got.Equal(in))

	assert.True(t, pgconv.TimeFromPgtype(pgtype.Timestamptz{}).IsZero())
}

func TestErrorClassification(t *testing.T) {
	assert.True(t, pgconv.IsNoRows(pgx.ErrNoRows))
	assert.True(t, pgconv.IsNoRows(fmt.Errorf("get: %w", sql.ErrNoRows)))
	assert.True(t, pgconv.IsUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, pgconv.IsReadOnlyViolation(&pgconn.PgError{Code: "25006"}))
	assert.True(t, pgconv.IsRetryable(&pgconn.PgError{Code: "40P01"}))
	assert.False(t, pgconv.IsRetryable(&pgconn.PgError{Code: "23505"}))
}
