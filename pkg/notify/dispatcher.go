// Package notify fans out notification jobs for matched hunters and delivers them
package notify

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/huntmatch/pkg/domain"
)

//go:generate moq -out mocks/publisher.go -pkg mocks -skip-ensure -fmt goimports . Publisher

// Publisher enqueues notification jobs
type Publisher interface {
	PublishNotify(ctx context.Context, job domain.NotificationJob) (string, error)
}

// Report lists the outcome of a fan-out
type Report struct {
	Enqueued []string               // recipients with an enqueued job, in candidate order
	Failed   []domain.FanoutFailure // recipients whose enqueue failed
}

// FailedIDs returns recipients of failed enqueues
func (r Report) FailedIDs() []string {
	res := make([]string, 0, len(r.Failed))
	for _, f := range r.Failed {
		res = append(res, f.RecipientID)
	}
	return res
}

// Dispatcher enqueues one notification job per candidate
type Dispatcher struct {
	pub     Publisher
	timeout time.Duration
}

// NewDispatcher makes dispatcher, timeout bounds every single enqueue, default 3s
func NewDispatcher(pub Publisher, timeout time.Duration) *Dispatcher {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Dispatcher{pub: pub, timeout: timeout}
}

// Dispatch enqueues a job for each candidate and keeps going after failed enqueues.
// Returns *domain.PartialFanoutError if some enqueues failed and domain.ErrUpstream if all of them did.
func (d *Dispatcher) Dispatch(ctx context.Context, candidates []domain.MatchCandidate) (Report, error) {
	rep := Report{Enqueued: []string{}, Failed: []domain.FanoutFailure{}}
	for _, c := range candidates {
		job := domain.NotificationJob{
			RecipientID: c.HunterID,
			PostID:      c.PostID,
			AuthorID:    c.AuthorID,
			Keywords:    c.Keywords,
			Rank:        c.Rank,
		}
		if err := d.enqueue(ctx, job); err != nil {
			lgr.Printf("[WARN] failed to enqueue notification for %s about post %s: %v", c.HunterID, c.PostID, err)
			rep.Failed = append(rep.Failed, domain.FanoutFailure{RecipientID: c.HunterID, Err: err})
			continue
		}
		rep.Enqueued = append(rep.Enqueued, c.HunterID)
	}

	switch {
	case len(rep.Failed) == 0:
		return rep, nil
	case len(rep.Enqueued) == 0:
		errs := make([]error, 0, len(rep.Failed))
		for _, f := range rep.Failed {
			errs = append(errs, f.Err)
		}
		return rep, fmt.Errorf("all %d notification enqueues failed: %w: %w", len(rep.Failed), domain.ErrUpstream, errors.Join(errs...))
	default:
		return rep, &domain.PartialFanoutError{Enqueued: rep.Enqueued, Failed: rep.Failed}
	}
}

func (d *Dispatcher) enqueue(ctx context.Context, job domain.NotificationJob) error {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()
	id, err := d.pub.PublishNotify(ctx, job)
	if err != nil {
		return err
	}
	lgr.Printf("[DEBUG] enqueued notification %s for %s about post %s", id, job.RecipientID, job.PostID)
	return nil
}
