//go:build unit

package repository

import (
	"strings"
	"testing"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	"shareit/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantKind infra.RepositoryErrorKind
	}{
		{
			name:     "unique violation",
			err:      &pgconn.PgError{Code: pgCodeUniqueViolation},
			wantKind: infra.KindDuplicateKey,
		},
		{
			name:     "foreign key violation",
			err:      &pgconn.PgError{Code: pgCodeForeignKeyViolation},
			wantKind: infra.KindForeignKeyViolated,
		},
		{
			name:     "exclusion violation",
			err:      &pgconn.PgError{Code: pgCodeExclusionViolation},
			wantKind: infra.KindConflict,
		},
		{
			name:     "other pg error",
			err:      &pgconn.PgError{Code: "57014"},
			wantKind: infra.KindDBFailure,
		},
		{
			name:     "non-pg error",
			err:      errs.New("connection reset"),
			wantKind: infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify("insert row", tt.err)
			assert.True(t, infra.IsKind(got, tt.wantKind))
		})
	}
}

func TestBucketFilter(t *testing.T) {
	tests := []struct {
		bucket   booking.Bucket
		needsNow bool
		contains string
	}{
		{booking.BucketAll, false, ""},
		// A booking ending exactly now is still CURRENT, not yet PAST.
		{booking.BucketCurrent, true, "start_date <= $2 AND b.end_date >= $2"},
		{booking.BucketFuture, true, "start_date > $2"},
		{booking.BucketPast, true, "end_date < $2"},
		{booking.BucketWaiting, false, "status = 'waiting'"},
		{booking.BucketRejected, false, "status = 'rejected'"},
	}

	for _, tt := range tests {
		t.Run(string(tt.bucket), func(t *testing.T) {
			cond, needsNow := bucketFilter(tt.bucket)
			assert.Equal(t, tt.needsNow, needsNow)
			if tt.contains == "" {
				assert.Empty(t, cond)
			} else {
				assert.True(t, strings.Contains(cond, tt.contains), cond)
			}
		})
	}
}
