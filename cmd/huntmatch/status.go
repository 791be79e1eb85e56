package main

import (
	"context"
	"fmt"

	"github.com/umputun/huntmatch/pkg/queue"
	"github.com/umputun/huntmatch/pkg/repository"
	"github.com/umputun/huntmatch/pkg/worker"
)

// deadLettersShown is the number of the latest dead letters reported per queue
const deadLettersShown = 5

// deadLetter is a job given up on, payload is not exposed
type deadLetter struct {
	ID        string `json:"id"`
	Kind      string `json:"kind"`
	Attempt   int    `json:"attempt"`
	LastError string `json:"last_error"`
}

// statusReporter collects state of the stores, queues and local worker pools
type statusReporter struct {
	repos *repository.Repositories
	queue *queue.Queue
	pools []*worker.Pool
}

// Status implements server.StatusProvider
func (s *statusReporter) Status(ctx context.Context) (map[string]any, error) {
	res := map[string]any{}
	if err := s.repos.Ping(ctx); err != nil {
		return res, fmt.Errorf("database: %w", err)
	}
	docs, err := s.repos.Knowledge.Count(ctx)
	if err != nil {
		return res, fmt.Errorf("database: %w", err)
	}
	res["knowledge_docs"] = docs

	queues := map[string]queue.Stats{}
	dead := map[string][]deadLetter{}
	for _, name := range []string{queue.NotifyQueue, queue.IngestQueue} {
		st, err := s.queue.Stats(ctx, name)
		if err != nil {
			return res, fmt.Errorf("queue %s: %w", name, err)
		}
		queues[name] = st

		envs, err := s.queue.DeadLetters(ctx, name, deadLettersShown)
		if err != nil {
			return res, fmt.Errorf("queue %s: %w", name, err)
		}
		dead[name] = make([]deadLetter, 0, len(envs))
		for _, env := range envs {
			dead[name] = append(dead[name], deadLetter{ID: env.ID, Kind: string(env.Kind), Attempt: env.Attempt, LastError: env.LastError})
		}
	}
	res["queues"] = queues
	res["dead_letters"] = dead

	workers := make([]worker.Stats, 0, len(s.pools))
	for _, p := range s.pools {
		workers = append(workers, p.Stats())
	}
	res["workers"] = workers
	return res, nil
}
