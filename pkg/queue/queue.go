// Package queue implements a durable at-least-once job queue on redis lists.
//
// Each logical queue uses three lists: pending jobs, jobs in processing and dead letters.
// Reserve atomically moves a job from pending to processing, Ack removes it from processing,
// Nack puts it back to pending with incremented attempt or into dead letters after MaxAttempts.
// Release returns a job to pending without counting the attempt, Bury dead-letters it at once.
package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/redis/go-redis/v9"

	"github.com/umputun/huntmatch/pkg/domain"
)

// names of logical queues
const (
	NotifyQueue = "hunters_notify"
	IngestQueue = "ingest_solved"
)

// Config defines queue parameters
type Config struct {
	Prefix       string        // key prefix, default "huntmatch"
	MaxAttempts  int           // attempts before a job goes to dead letters, default 5
	BlockTimeout time.Duration // how long Reserve waits for a job, default 5s
	CallTimeout  time.Duration // timeout of non-blocking redis calls, default 3s
}

// Queue is a redis backed job queue
type Queue struct {
	client redis.Cmdable
	cfg    Config
}

// Delivery is a reserved job, must be acked or nacked
type Delivery struct {
	Envelope
	raw string
}

// Stats shows sizes of the lists of a queue
type Stats struct {
	Pending    int64 `json:"pending"`
	Processing int64 `json:"processing"`
	Dead       int64 `json:"dead"`
}

// New makes a queue on top of a connected redis client
func New(client redis.Cmdable, cfg Config) *Queue {
	if cfg.Prefix == "" {
		cfg.Prefix = "huntmatch"
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 5
	}
	if cfg.BlockTimeout <= 0 {
		cfg.BlockTimeout = 5 * time.Second
	}
	if cfg.CallTimeout <= 0 {
		cfg.CallTimeout = 3 * time.Second
	}
	return &Queue{client: client, cfg: cfg}
}

// PublishNotify enqueues a notification job and returns its id
func (q *Queue) PublishNotify(ctx context.Context, job domain.NotificationJob) (string, error) {
	env, err := NewNotifyEnvelope(job)
	if err != nil {
		return "", err
	}
	return env.ID, q.Enqueue(ctx, NotifyQueue, env)
}

// PublishIngest enqueues an ingest job and returns its id
func (q *Queue) PublishIngest(ctx context.Context, job domain.IngestJob) (string, error) {
	env, err := NewIngestEnvelope(job)
	if err != nil {
		return "", err
	}
	return env.ID, q.Enqueue(ctx, IngestQueue, env)
}

// Enqueue writes envelope to the pending list of the queue.
// Returns once redis accepted the write, doesn't wait for processing.
func (q *Queue) Enqueue(ctx context.Context, name string, env Envelope) error {
	data, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("encode envelope %s: %w", env.ID, err)
	}

	ctx, cancel := context.WithTimeout(ctx, q.cfg.CallTimeout)
	defer cancel()
	if err := q.client.LPush(ctx, q.pendingKey(name), data).Err(); err != nil {
		return fmt.Errorf("enqueue %s to %s: %w: %w", env.ID, name, domain.ErrUpstream, err)
	}
	return nil
}

// Reserve waits up to BlockTimeout for the next job and moves it to processing.
// Returns nil delivery if nothing arrived. Malformed records are moved to dead letters
// and reported with ErrMalformed.
func (q *Queue) Reserve(ctx context.Context, name string) (*Delivery, error) {
	raw, err := q.client.BLMove(ctx, q.pendingKey(name), q.processingKey(name), "RIGHT", "LEFT", q.cfg.BlockTimeout).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reserve from %s: %w: %w", name, domain.ErrUpstream, err)
	}

	env, err := decodeEnvelope(raw)
	if err != nil {
		if dlErr := q.bury(ctx, name, raw, raw); dlErr != nil {
			lgr.Printf("[WARN] can't move malformed job to dead letters of %s: %v", name, dlErr)
		}
		return nil, err
	}
	return &Delivery{Envelope: env, raw: raw}, nil
}

// Ack removes processed job from processing list
func (q *Queue) Ack(ctx context.Context, name string, d *Delivery) error {
	ctx, cancel := context.WithTimeout(ctx, q.cfg.CallTimeout)
	defer cancel()
	if err := q.client.LRem(ctx, q.processingKey(name), 1, d.raw).Err(); err != nil {
		return fmt.Errorf("ack %s in %s: %w: %w", d.ID, name, domain.ErrUpstream, err)
	}
	return nil
}

// Nack returns failed job to pending with incremented attempt,
// or moves it to dead letters once MaxAttempts is reached
func (q *Queue) Nack(ctx context.Context, name string, d *Delivery, cause error) error {
	env := d.Envelope
	env.Attempt++
	if cause != nil {
		env.LastError = cause.Error()
	}
	data, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("encode envelope %s: %w", env.ID, err)
	}

	if env.Attempt >= q.cfg.MaxAttempts {
		lgr.Printf("[WARN] job %s in %s failed %d times, moving to dead letters: %v", env.ID, name, env.Attempt, cause)
		return q.bury(ctx, name, d.raw, string(data))
	}

	ctx, cancel := context.WithTimeout(ctx, q.cfg.CallTimeout)
	defer cancel()
	_, err = q.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LRem(ctx, q.processingKey(name), 1, d.raw)
		pipe.LPush(ctx, q.pendingKey(name), data)
		return nil
	})
	if err != nil {
		return fmt.Errorf("nack %s in %s: %w: %w", env.ID, name, domain.ErrUpstream, err)
	}
	return nil
}

// Release returns a reserved job to the head of pending untouched, the attempt is not counted.
// Used for jobs reserved by a stopping worker.
func (q *Queue) Release(ctx context.Context, name string, d *Delivery) error {
	ctx, cancel := context.WithTimeout(ctx, q.cfg.CallTimeout)
	defer cancel()
	_, err := q.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LRem(ctx, q.processingKey(name), 1, d.raw)
		pipe.RPush(ctx, q.pendingKey(name), d.raw)
		return nil
	})
	if err != nil {
		return fmt.Errorf("release %s in %s: %w: %w", d.ID, name, domain.ErrUpstream, err)
	}
	return nil
}

// Bury moves a reserved job to dead letters right away, for failures retry can't fix
func (q *Queue) Bury(ctx context.Context, name string, d *Delivery, cause error) error {
	env := d.Envelope
	env.Attempt++
	if cause != nil {
		env.LastError = cause.Error()
	}
	data, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("encode envelope %s: %w", env.ID, err)
	}
	lgr.Printf("[WARN] job %s in %s can't be handled, moving to dead letters: %v", env.ID, name, cause)
	return q.bury(ctx, name, d.raw, string(data))
}

// RecoverProcessing moves jobs left in processing by a crashed worker back to pending.
// Jobs still being handled by another live worker will be handled twice, which is fine
// for at-least-once delivery.
func (q *Queue) RecoverProcessing(ctx context.Context, name string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, q.cfg.CallTimeout)
	defer cancel()

	count := 0
	for {
		err := q.client.LMove(ctx, q.processingKey(name), q.pendingKey(name), "LEFT", "RIGHT").Err()
		if errors.Is(err, redis.Nil) {
			return count, nil
		}
		if err != nil {
			return count, fmt.Errorf("recover processing of %s: %w: %w", name, domain.ErrUpstream, err)
		}
		count++
	}
}

// Stats returns list sizes of the queue
func (q *Queue) Stats(ctx context.Context, name string) (Stats, error) {
	ctx, cancel := context.WithTimeout(ctx, q.cfg.CallTimeout)
	defer cancel()

	var pending, processing, dead *redis.IntCmd
	_, err := q.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		pending = pipe.LLen(ctx, q.pendingKey(name))
		processing = pipe.LLen(ctx, q.processingKey(name))
		dead = pipe.LLen(ctx, q.deadKey(name))
		return nil
	})
	if err != nil {
		return Stats{}, fmt.Errorf("stats of %s: %w: %w", name, domain.ErrUpstream, err)
	}
	return Stats{Pending: pending.Val(), Processing: processing.Val(), Dead: dead.Val()}, nil
}

// DeadLetters returns up to limit envelopes from dead letters, newest first
func (q *Queue) DeadLetters(ctx context.Context, name string, limit int) ([]Envelope, error) {
	ctx, cancel := context.WithTimeout(ctx, q.cfg.CallTimeout)
	defer cancel()

	raws, err := q.client.LRange(ctx, q.deadKey(name), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("read dead letters of %s: %w: %w", name, domain.ErrUpstream, err)
	}
	res := make([]Envelope, 0, len(raws))
	for _, raw := range raws {
		var env Envelope
		if err := json.Unmarshal([]byte(raw), &env); err != nil {
			continue // malformed records are kept as is, nothing to show
		}
		res = append(res, env)
	}
	return res, nil
}

// bury removes raw from processing and pushes record to dead letters
func (q *Queue) bury(ctx context.Context, name, raw, record string) error {
	ctx, cancel := context.WithTimeout(ctx, q.cfg.CallTimeout)
	defer cancel()
	_, err := q.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LRem(ctx, q.processingKey(name), 1, raw)
		pipe.LPush(ctx, q.deadKey(name), record)
		return nil
	})
	if err != nil {
		return fmt.Errorf("bury job in %s: %w: %w", name, domain.ErrUpstream, err)
	}
	return nil
}

func (q *Queue) pendingKey(name string) string    { return q.cfg.Prefix + ":" + name }
func (q *Queue) processingKey(name string) string { return q.cfg.Prefix + ":" + name + ":processing" }
func (q *Queue) deadKey(name string) string       { return q.cfg.Prefix + ":" + name + ":dead" }
