package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/huntmatch/pkg/domain"
	"github.com/umputun/huntmatch/pkg/queue"
)

//go:generate moq -out mocks/block_checker.go -pkg mocks -skip-ensure -fmt goimports . BlockChecker
//go:generate moq -out mocks/deliverer.go -pkg mocks -skip-ensure -fmt goimports . Deliverer
//go:generate moq -out mocks/recorder.go -pkg mocks -skip-ensure -fmt goimports . Recorder

// BlockChecker tells if recipient blocked sender
type BlockChecker interface {
	IsBlocked(ctx context.Context, recipientID, senderID string) (bool, error)
}

// Deliverer sends a notification to its recipient
type Deliverer interface {
	Deliver(ctx context.Context, job domain.NotificationJob) error
}

// Recorder keeps outcomes of notification jobs
type Recorder interface {
	Record(ctx context.Context, e domain.NotificationLogEntry) error
}

// Worker handles notification jobs. The block check happens at delivery time,
// so a block created after the job was enqueued still suppresses it.
type Worker struct {
	blocks    BlockChecker
	deliverer Deliverer
	recorder  Recorder // optional
}

// NewWorker makes notification worker, recorder may be nil
func NewWorker(blocks BlockChecker, deliverer Deliverer, recorder Recorder) *Worker {
	return &Worker{blocks: blocks, deliverer: deliverer, recorder: recorder}
}

// Handle processes notify envelope. Errors are retried by the queue, except ErrMalformed
// which the pool dead-letters at once.
func (w *Worker) Handle(ctx context.Context, env queue.Envelope) error {
	job, err := env.NotifyJob()
	if err != nil {
		return err
	}
	_, err = w.Process(ctx, env.ID, job)
	return err
}

// Process delivers job unless the recipient blocked the post author
func (w *Worker) Process(ctx context.Context, jobID string, job domain.NotificationJob) (domain.DeliveryStatus, error) {
	blocked, err := w.blocks.IsBlocked(ctx, job.RecipientID, job.AuthorID)
	if err != nil {
		return domain.StatusFailed, fmt.Errorf("check block of %s by %s: %w", job.AuthorID, job.RecipientID, err)
	}
	if blocked {
		lgr.Printf("[INFO] notice suppressed, %s blocked %s", job.RecipientID, job.AuthorID)
		w.record(ctx, jobID, job, domain.StatusSuppressed, nil)
		return domain.StatusSuppressed, nil
	}

	if err := w.deliverer.Deliver(ctx, job); err != nil {
		w.record(ctx, jobID, job, domain.StatusFailed, err)
		return domain.StatusFailed, fmt.Errorf("deliver to %s: %w", job.RecipientID, err)
	}
	w.record(ctx, jobID, job, domain.StatusDelivered, nil)
	return domain.StatusDelivered, nil
}

// record stores outcome, failures are only logged
func (w *Worker) record(ctx context.Context, jobID string, job domain.NotificationJob, status domain.DeliveryStatus, cause error) {
	if w.recorder == nil {
		return
	}
	e := domain.NotificationLogEntry{
		JobID:       jobID,
		RecipientID: job.RecipientID,
		PostID:      job.PostID,
		Status:      status,
		CreatedAt:   time.Now().UTC(),
	}
	if cause != nil {
		e.Error = cause.Error()
	}
	if err := w.recorder.Record(ctx, e); err != nil {
		lgr.Printf("[WARN] failed to record %s outcome of job %s: %v", status, jobID, err)
	}
}
