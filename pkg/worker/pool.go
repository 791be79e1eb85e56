// Package worker runs queue consumers with bounded concurrency
package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/huntmatch/pkg/queue"
)

//go:generate moq -out mocks/source.go -pkg mocks -skip-ensure -fmt goimports . Source

// Source gives reserved jobs of a queue and takes their outcome
type Source interface {
	Reserve(ctx context.Context, name string) (*queue.Delivery, error)
	Ack(ctx context.Context, name string, d *queue.Delivery) error
	Nack(ctx context.Context, name string, d *queue.Delivery, cause error) error
	Release(ctx context.Context, name string, d *queue.Delivery) error
	Bury(ctx context.Context, name string, d *queue.Delivery, cause error) error
	RecoverProcessing(ctx context.Context, name string) (int, error)
}

// Handler processes a single job
type Handler interface {
	Handle(ctx context.Context, env queue.Envelope) error
}

// HandlerFunc adapts a function to Handler
type HandlerFunc func(ctx context.Context, env queue.Envelope) error

// Handle calls f(ctx, env)
func (f HandlerFunc) Handle(ctx context.Context, env queue.Envelope) error { return f(ctx, env) }

// Config defines pool parameters
type Config struct {
	Queue         string
	Concurrency   int           // max jobs handled at once, default 4
	HandleTimeout time.Duration // per job timeout, default 30s
	RetryDelay    time.Duration // pause after failed reserve, default 1s
}

// Stats is a snapshot of pool counters
type Stats struct {
	Queue     string `json:"queue"`
	Succeeded int64  `json:"succeeded"`
	Failed    int64  `json:"failed"`
}

// Pool reserves jobs from a single queue and runs handler for each of them
type Pool struct {
	src     Source
	handler Handler
	cfg     Config

	succeeded atomic.Int64
	failed    atomic.Int64

	wg     sync.WaitGroup
	cancel context.CancelFunc
}

// New makes a pool, call Start to begin consuming
func New(src Source, handler Handler, cfg Config) *Pool {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 4
	}
	if cfg.HandleTimeout <= 0 {
		cfg.HandleTimeout = 30 * time.Second
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = time.Second
	}
	return &Pool{src: src, handler: handler, cfg: cfg}
}

// Start returns jobs orphaned by a previous run to pending and begins consuming
func (p *Pool) Start(ctx context.Context) error {
	if p.cfg.Queue == "" {
		return errors.New("worker pool without queue name")
	}
	n, err := p.src.RecoverProcessing(ctx, p.cfg.Queue)
	if err != nil {
		return fmt.Errorf("recover %s: %w", p.cfg.Queue, err)
	}
	if n > 0 {
		lgr.Printf("[INFO] recovered %d unfinished jobs of %s", n, p.cfg.Queue)
	}

	ctx, p.cancel = context.WithCancel(ctx)
	p.wg.Add(1)
	go p.consume(ctx)
	lgr.Printf("[INFO] worker pool for %s started with concurrency %d", p.cfg.Queue, p.cfg.Concurrency)
	return nil
}

// Stop ends reserving and waits for jobs in flight, each of them still bounded by HandleTimeout.
// Jobs reserved after the stop began go back to pending without using an attempt.
func (p *Pool) Stop() {
	lgr.Printf("[INFO] stopping worker pool for %s", p.cfg.Queue)
	if p.cancel != nil {
		p.cancel()
	}
	p.wg.Wait()
	lgr.Printf("[INFO] worker pool for %s stopped", p.cfg.Queue)
}

// Stats returns counters of handled jobs
func (p *Pool) Stats() Stats {
	return Stats{Queue: p.cfg.Queue, Succeeded: p.succeeded.Load(), Failed: p.failed.Load()}
}

func (p *Pool) consume(ctx context.Context) {
	defer p.wg.Done()

	var g errgroup.Group
	g.SetLimit(p.cfg.Concurrency)
	defer func() { _ = g.Wait() }()

	for {
		if ctx.Err() != nil {
			return
		}
		d, err := p.src.Reserve(ctx, p.cfg.Queue)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			if errors.Is(err, queue.ErrMalformed) {
				lgr.Printf("[WARN] dropped malformed job from %s: %v", p.cfg.Queue, err)
				continue
			}
			lgr.Printf("[WARN] failed to reserve from %s: %v", p.cfg.Queue, err)
			select {
			case <-ctx.Done():
				return
			case <-time.After(p.cfg.RetryDelay):
			}
			continue
		}
		if d == nil {
			continue
		}
		if ctx.Err() != nil {
			// reserve returned a job while stopping
			p.release(ctx, d)
			return
		}

		g.Go(func() error {
			p.process(ctx, d)
			return nil
		})
	}
}

// process runs handler and settles the job. The handler and Ack/Nack are not bound to pool
// cancellation, a job taken before Stop is finished and gets its outcome recorded.
func (p *Pool) process(ctx context.Context, d *queue.Delivery) {
	settleCtx := context.WithoutCancel(ctx)
	if ctx.Err() != nil {
		// waited for a free slot past Stop, not started yet
		p.release(ctx, d)
		return
	}

	err := p.handle(settleCtx, d.Envelope)
	switch {
	case err == nil:
		p.succeeded.Add(1)
		if ackErr := p.src.Ack(settleCtx, p.cfg.Queue, d); ackErr != nil {
			lgr.Printf("[WARN] failed to ack %s in %s: %v", d.ID, p.cfg.Queue, ackErr)
		}
	case errors.Is(err, queue.ErrMalformed):
		p.failed.Add(1)
		if buryErr := p.src.Bury(settleCtx, p.cfg.Queue, d, err); buryErr != nil {
			lgr.Printf("[WARN] failed to bury %s in %s: %v", d.ID, p.cfg.Queue, buryErr)
		}
	default:
		p.failed.Add(1)
		lgr.Printf("[WARN] job %s in %s failed, attempt %d: %v", d.ID, p.cfg.Queue, d.Attempt+1, err)
		if nackErr := p.src.Nack(settleCtx, p.cfg.Queue, d, err); nackErr != nil {
			lgr.Printf("[WARN] failed to nack %s in %s: %v", d.ID, p.cfg.Queue, nackErr)
		}
	}
}

// release puts a job reserved during shutdown back to pending
func (p *Pool) release(ctx context.Context, d *queue.Delivery) {
	if err := p.src.Release(context.WithoutCancel(ctx), p.cfg.Queue, d); err != nil {
		lgr.Printf("[WARN] failed to release %s in %s: %v", d.ID, p.cfg.Queue, err)
		return
	}
	lgr.Printf("[DEBUG] released %s back to %s", d.ID, p.cfg.Queue)
}

func (p *Pool) handle(ctx context.Context, env queue.Envelope) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panic: %v", r)
		}
	}()
	ctx, cancel := context.WithTimeout(ctx, p.cfg.HandleTimeout)
	defer cancel()
	return p.handler.Handle(ctx, env)
}
