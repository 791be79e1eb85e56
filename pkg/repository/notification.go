package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/umputun/huntmatch/pkg/domain"
)

// NotificationRepository records outcomes of processed notification jobs
type NotificationRepository struct {
	*store
}

type notificationRow struct {
	JobID       string    `db:"job_id"`
	RecipientID string    `db:"recipient_id"`
	PostID      string    `db:"post_id"`
	Status      string    `db:"status"`
	Error       string    `db:"error"`
	CreatedAt   time.Time `db:"created_at"`
}

// Record stores the outcome of a job, a re-executed job overwrites its previous outcome
func (r *NotificationRepository) Record(ctx context.Context, e domain.NotificationLogEntry) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	row := notificationRow{
		JobID: e.JobID, RecipientID: e.RecipientID, PostID: e.PostID,
		Status: string(e.Status), Error: e.Error, CreatedAt: e.CreatedAt,
	}
	query := `
		INSERT INTO notification_log (job_id, recipient_id, post_id, status, error, created_at)
		VALUES (:job_id, :recipient_id, :post_id, :status, :error, :created_at)
		ON CONFLICT (job_id) DO UPDATE
		SET status = excluded.status, error = excluded.error, created_at = excluded.created_at`
	if _, err := r.db.NamedExecContext(ctx, query, row); err != nil {
		return upstream("record notification", err)
	}
	return nil
}

// GetByJob returns the recorded outcome of a job, domain.ErrNotFound if none
func (r *NotificationRepository) GetByJob(ctx context.Context, jobID string) (*domain.NotificationLogEntry, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var row notificationRow
	query := r.db.Rebind("SELECT job_id, recipient_id, post_id, status, error, created_at FROM notification_log WHERE job_id = ?")
	if err := r.db.GetContext(ctx, &row, query, jobID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("notification %s: %w", jobID, domain.ErrNotFound)
		}
		return nil, upstream("get notification", err)
	}
	return row.toDomain(), nil
}

// ListByRecipient returns the most recent outcomes for a recipient
func (r *NotificationRepository) ListByRecipient(ctx context.Context, recipientID string, limit int) ([]domain.NotificationLogEntry, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := r.db.Rebind(`
		SELECT job_id, recipient_id, post_id, status, error, created_at
		FROM notification_log
		WHERE recipient_id = ?
		ORDER BY created_at DESC
		LIMIT ?`)
	var rows []notificationRow
	if err := r.db.SelectContext(ctx, &rows, query, recipientID, limit); err != nil {
		return nil, upstream("list notifications", err)
	}

	res := make([]domain.NotificationLogEntry, len(rows))
	for i, row := range rows {
		res[i] = *row.toDomain()
	}
	return res, nil
}

func (n *notificationRow) toDomain() *domain.NotificationLogEntry {
	return &domain.NotificationLogEntry{
		JobID:       n.JobID,
		RecipientID: n.RecipientID,
		PostID:      n.PostID,
		Status:      domain.DeliveryStatus(n.Status),
		Error:       n.Error,
		CreatedAt:   n.CreatedAt,
	}
}
