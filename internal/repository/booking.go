package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
	"github.com/wilbyang/reserver/internal/domain"
)

// Postgres error codes translated into domain results. The exclusion
// constraint on bookings is the final arbiter for overlapping inserts:
// even when two writers both pass the in-memory check, at most one insert
// commits and the loser surfaces as ErrTimeConflict.
const (
	pgExclusionViolation = "23P01"
	pgCheckViolation     = "23514"
)

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (id, resource_id, start_time, end_time, note, owner_id, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		b.ID, b.ResourceID, b.Interval.Start, b.Interval.End,
		nullable(b.Note), b.OwnerID, b.Status, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgExclusionViolation:
				return domain.ErrTimeConflict
			case pgCheckViolation:
				return domain.ErrInvalidRange
			}
		}
		return storageErr("insert booking", err)
	}

	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT id, resource_id, start_time, end_time, note, owner_id, status, created_at, updated_at
			  FROM bookings
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, storageErr("get booking", err)
	}

	b, err := scanBooking(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, storageErr("scan booking", err)
	}

	return b, nil
}

func (r *BookingRepository) Cancel(ctx context.Context, id string) (bool, error) {
	query := `UPDATE bookings
			  SET status = $2, updated_at = now()
			  WHERE id = $1 AND status = $3`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, domain.BookingStatusCancelled, domain.BookingStatusActive)
	if err != nil {
		return false, storageErr("cancel booking", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, storageErr("cancel booking rows affected", err)
	}

	return rows > 0, nil
}

func (r *BookingRepository) ListActive(ctx context.Context, resourceID string, window domain.Interval) ([]*domain.Booking, error) {
	query := `SELECT id, resource_id, start_time, end_time, note, owner_id, status, created_at, updated_at
			  FROM bookings
			  WHERE resource_id = $1 AND status = $2
			  ORDER BY start_time ASC`
	args := []any{resourceID, domain.BookingStatusActive}

	if !window.IsZero() {
		// Half-open range intersection: starts before the window ends and
		// ends after the window starts.
		query = `SELECT id, resource_id, start_time, end_time, note, owner_id, status, created_at, updated_at
				 FROM bookings
				 WHERE resource_id = $1 AND status = $2
				   AND start_time < $4 AND end_time > $3
				 ORDER BY start_time ASC`
		args = append(args, window.Start, window.End)
	}

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, storageErr("list active bookings", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *BookingRepository) ListAllActive(ctx context.Context) ([]*domain.Booking, error) {
	query := `SELECT id, resource_id, start_time, end_time, note, owner_id, status, created_at, updated_at
			  FROM bookings
			  WHERE status = $1
			  ORDER BY resource_id, start_time ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, domain.BookingStatusActive)
	if err != nil {
		return nil, storageErr("list all active bookings", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *BookingRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Booking, error) {
	query := `SELECT id, resource_id, start_time, end_time, note, owner_id, status, created_at, updated_at
			  FROM bookings
			  WHERE owner_id = $1
			  ORDER BY start_time DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, ownerID)
	if err != nil {
		return nil, storageErr("list bookings by owner", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func scanBooking(scan func(dest ...any) error) (*domain.Booking, error) {
	var b domain.Booking
	var note sql.NullString
	if err := scan(
		&b.ID, &b.ResourceID, &b.Interval.Start, &b.Interval.End,
		&note, &b.OwnerID, &b.Status, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return nil, err
	}
	b.Note = note.String
	return &b, nil
}

func collectBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows.Scan)
		if err != nil {
			return nil, storageErr("scan booking", err)
		}
		res = append(res, b)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("iterate bookings", err)
	}
	return res, nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
