package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	"shareit/internal/usecase"
	"shareit/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BookingRepository struct {
	db DBTX
}

func NewBookingRepository(db DBTX) *BookingRepository {
	return &BookingRepository{db: db}
}

const insertBookingQuery = `
INSERT INTO bookings (id, item_id, booker_id, start_date, end_date, status, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	_, err := r.db.Exec(ctx, insertBookingQuery,
		b.ID(), b.ItemID(), b.BookerID(), b.Period().Start(), b.Period().End(), string(b.Status()), b.CreatedAt())
	if err != nil {
		return classify("failed to insert booking", err)
	}
	return nil
}

const bookingSelectColumns = `
SELECT b.id, b.start_date, b.end_date, b.status, b.created_at,
       i.id, i.owner_id, i.name,
       u.id, u.name
FROM bookings b
JOIN items i ON i.id = b.item_id
JOIN users u ON u.id = b.booker_id
`

const findBookingByIDQuery = bookingSelectColumns + `
WHERE b.id = $1
`

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.BookingRM, error) {
	rm := &readmodel.BookingRM{}
	err := r.db.QueryRow(ctx, findBookingByIDQuery, id).Scan(
		&rm.ID, &rm.Start, &rm.End, &rm.Status, &rm.CreatedAt,
		&rm.Item.ID, &rm.Item.OwnerID, &rm.Item.Name,
		&rm.Booker.ID, &rm.Booker.Name,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return rm, nil
}

const updateBookingStatusQuery = `
UPDATE bookings
SET status = $2
WHERE id = $1
`

func (r *BookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) error {
	tag, err := r.db.Exec(ctx, updateBookingStatusQuery, id, string(status))
	if err != nil {
		return classify("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

// bucketFilter narrows a listing query to one temporal bucket. The returned
// condition references $2 as the reference instant when needsNow is true.
func bucketFilter(bucket booking.Bucket) (cond string, needsNow bool) {
	switch bucket {
	case booking.BucketCurrent:
		return "AND b.start_date <= $2 AND b.end_date >= $2", true
	case booking.BucketFuture:
		return "AND b.start_date > $2", true
	case booking.BucketPast:
		return "AND b.end_date < $2", true
	case booking.BucketWaiting:
		return "AND b.status = 'waiting'", false
	case booking.BucketRejected:
		return "AND b.status = 'rejected'", false
	default:
		return "", false
	}
}

func (r *BookingRepository) FindByBooker(
	ctx context.Context,
	bookerID uuid.UUID,
	bucket booking.Bucket,
	now time.Time,
	page usecase.Page,
) ([]*readmodel.BookingRM, error) {
	return r.list(ctx, "b.booker_id = $1", bookerID, bucket, now, page, "failed to list bookings by booker")
}

func (r *BookingRepository) FindByItemOwner(
	ctx context.Context,
	ownerID uuid.UUID,
	bucket booking.Bucket,
	now time.Time,
	page usecase.Page,
) ([]*readmodel.BookingRM, error) {
	return r.list(ctx, "i.owner_id = $1", ownerID, bucket, now, page, "failed to list bookings by item owner")
}

func (r *BookingRepository) list(
	ctx context.Context,
	subjectCond string,
	subjectID uuid.UUID,
	bucket booking.Bucket,
	now time.Time,
	page usecase.Page,
	errMsg string,
) ([]*readmodel.BookingRM, error) {
	args := []any{subjectID}
	cond, needsNow := bucketFilter(bucket)
	if needsNow {
		args = append(args, now)
	}
	limitClause := fmt.Sprintf("LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, page.Limit(), page.Offset())

	query := bookingSelectColumns + "WHERE " + subjectCond + "\n" + cond + `
ORDER BY b.end_date DESC
` + limitClause
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(errMsg, err)
	}
	return scanBookingRows(rows)
}

const hasOverlappingQuery = `
SELECT EXISTS (
    SELECT 1
    FROM bookings
    WHERE item_id = $1
      AND status IN ('waiting', 'approved')
      AND start_date < $3
      AND end_date > $2
)
`

// HasOverlapping reports whether an undecided or approved booking of the
// item intersects the half-open period [start, end).
func (r *BookingRepository) HasOverlapping(ctx context.Context, itemID uuid.UUID, start, end time.Time) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, hasOverlappingQuery, itemID, start, end).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check overlapping bookings", err)
	}
	return exists, nil
}

const hasFinishedBookingQuery = `
SELECT EXISTS (
    SELECT 1
    FROM bookings
    WHERE item_id = $1
      AND booker_id = $2
      AND status <> 'rejected'
      AND end_date <= $3
)
`

func (r *BookingRepository) HasFinishedBooking(ctx context.Context, itemID, userID uuid.UUID, now time.Time) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, hasFinishedBookingQuery, itemID, userID, now).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check finished bookings", err)
	}
	return exists, nil
}

const findLastForItemQuery = `
SELECT id, booker_id, start_date, end_date
FROM bookings
WHERE item_id = $1
  AND status IN ('waiting', 'approved')
  AND start_date <= $2
ORDER BY start_date DESC
LIMIT 1
`

func (r *BookingRepository) FindLastForItem(ctx context.Context, itemID uuid.UUID, now time.Time) (*readmodel.BookingShortRM, error) {
	return r.findShort(ctx, findLastForItemQuery, itemID, now)
}

const findNextForItemQuery = `
SELECT id, booker_id, start_date, end_date
FROM bookings
WHERE item_id = $1
  AND status IN ('waiting', 'approved')
  AND start_date > $2
ORDER BY start_date ASC
LIMIT 1
`

func (r *BookingRepository) FindNextForItem(ctx context.Context, itemID uuid.UUID, now time.Time) (*readmodel.BookingShortRM, error) {
	return r.findShort(ctx, findNextForItemQuery, itemID, now)
}

func (r *BookingRepository) findShort(ctx context.Context, query string, itemID uuid.UUID, now time.Time) (*readmodel.BookingShortRM, error) {
	rm := &readmodel.BookingShortRM{}
	err := r.db.QueryRow(ctx, query, itemID, now).Scan(&rm.ID, &rm.BookerID, &rm.Start, &rm.End)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find booking for item", err)
	}
	return rm, nil
}

func scanBookingRows(rows pgx.Rows) ([]*readmodel.BookingRM, error) {
	defer rows.Close()

	rms := []*readmodel.BookingRM{}
	for rows.Next() {
		rm := &readmodel.BookingRM{}
		err := rows.Scan(
			&rm.ID, &rm.Start, &rm.End, &rm.Status, &rm.CreatedAt,
			&rm.Item.ID, &rm.Item.OwnerID, &rm.Item.Name,
			&rm.Booker.ID, &rm.Booker.Name,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		rms = append(rms, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}
	return rms, nil
}
