package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
	"github.com/wilbyang/reserver/internal/domain"
)

type WaitlistRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewWaitlistRepo(db *dbpg.DB) *WaitlistRepository {
	return &WaitlistRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *WaitlistRepository) Create(ctx context.Context, e *domain.WaitlistEntry) error {
	query := `INSERT INTO waitlist_entries (id, resource_id, owner_id, preferred_start, preferred_end, note, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.ResourceID, e.OwnerID, e.Preferred.Start, e.Preferred.End,
		nullable(e.Note), e.Status, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return storageErr("insert waitlist entry", err)
	}

	return nil
}

func (r *WaitlistRepository) GetByID(ctx context.Context, id string) (*domain.WaitlistEntry, error) {
	query := `SELECT id, resource_id, owner_id, preferred_start, preferred_end, note, status, created_at, updated_at
			  FROM waitlist_entries
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, storageErr("get waitlist entry", err)
	}

	e, err := scanEntry(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEntryNotFound
		}
		return nil, storageErr("scan waitlist entry", err)
	}

	return e, nil
}

func (r *WaitlistRepository) PendingByResource(ctx context.Context, resourceID string) ([]*domain.WaitlistEntry, error) {
	query := `SELECT id, resource_id, owner_id, preferred_start, preferred_end, note, status, created_at, updated_at
			  FROM waitlist_entries
			  WHERE resource_id = $1 AND status = $2
			  ORDER BY created_at ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, resourceID, domain.WaitlistStatusPending)
	if err != nil {
		return nil, storageErr("list pending by resource", err)
	}
	defer rows.Close()

	return collectEntries(rows)
}

func (r *WaitlistRepository) PendingByOwner(ctx context.Context, ownerID string) ([]*domain.WaitlistEntry, error) {
	query := `SELECT id, resource_id, owner_id, preferred_start, preferred_end, note, status, created_at, updated_at
			  FROM waitlist_entries
			  WHERE owner_id = $1 AND status = $2
			  ORDER BY created_at ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, ownerID, domain.WaitlistStatusPending)
	if err != nil {
		return nil, storageErr("list pending by owner", err)
	}
	defer rows.Close()

	return collectEntries(rows)
}

// Cancel is owner-scoped on purpose: an entry that exists but belongs to
// someone else is indistinguishable from one that does not exist.
func (r *WaitlistRepository) Cancel(ctx context.Context, entryID, ownerID string) (bool, error) {
	query := `UPDATE waitlist_entries
			  SET status = $3, updated_at = now()
			  WHERE id = $1 AND owner_id = $2 AND status = ANY($4)`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		entryID, ownerID, domain.WaitlistStatusCancelled,
		pq.Array([]domain.WaitlistStatus{domain.WaitlistStatusPending, domain.WaitlistStatusNotified}),
	)
	if err != nil {
		return false, storageErr("cancel waitlist entry", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, storageErr("cancel waitlist entry rows affected", err)
	}

	return rows > 0, nil
}

func (r *WaitlistRepository) MarkNotified(ctx context.Context, entryID string) error {
	return r.transition(ctx, entryID, domain.WaitlistStatusPending, domain.WaitlistStatusNotified)
}

func (r *WaitlistRepository) MarkBooked(ctx context.Context, entryID string) error {
	return r.transition(ctx, entryID, domain.WaitlistStatusNotified, domain.WaitlistStatusBooked)
}

// transition applies a single guarded status move. The WHERE clause is the
// state machine: a row not in the expected status stays untouched.
func (r *WaitlistRepository) transition(ctx context.Context, entryID string, from, to domain.WaitlistStatus) error {
	query := `UPDATE waitlist_entries
			  SET status = $3, updated_at = now()
			  WHERE id = $1 AND status = $2`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, entryID, from, to)
	if err != nil {
		return storageErr(fmt.Sprintf("transition entry to %s", to), err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return storageErr("transition rows affected", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: entry %s is not %s", domain.ErrEntryNotFound, entryID, from)
	}

	return nil
}

func (r *WaitlistRepository) ExpireNotified(ctx context.Context, deadline time.Time) ([]*domain.WaitlistEntry, error) {
	query := `UPDATE waitlist_entries
			  SET status = $1, updated_at = now()
			  WHERE status = $2 AND updated_at < $3
			  RETURNING id, resource_id, owner_id, preferred_start, preferred_end, note, status, created_at, updated_at`

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.WaitlistStatusExpired, domain.WaitlistStatusNotified, deadline,
	)
	if err != nil {
		return nil, storageErr("expire notified entries", err)
	}
	defer rows.Close()

	return collectEntries(rows)
}

func scanEntry(scan func(dest ...any) error) (*domain.WaitlistEntry, error) {
	var e domain.WaitlistEntry
	var note sql.NullString
	if err := scan(
		&e.ID, &e.ResourceID, &e.OwnerID, &e.Preferred.Start, &e.Preferred.End,
		&note, &e.Status, &e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return nil, err
	}
	e.Note = note.String
	return &e, nil
}

func collectEntries(rows *sql.Rows) ([]*domain.WaitlistEntry, error) {
	var res []*domain.WaitlistEntry
	for rows.Next() {
		e, err := scanEntry(rows.Scan)
		if err != nil {
			return nil, storageErr("scan waitlist entry", err)
		}
		res = append(res, e)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("iterate waitlist entries", err)
	}
	return res, nil
}
