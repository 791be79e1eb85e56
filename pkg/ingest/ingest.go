// Package ingest turns solved posts into knowledge documents used by suggestions
package ingest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/huntmatch/pkg/domain"
	"github.com/umputun/huntmatch/pkg/queue"
)

//go:generate moq -out mocks/posts.go -pkg mocks -skip-ensure -fmt goimports . Posts
//go:generate moq -out mocks/knowledge.go -pkg mocks -skip-ensure -fmt goimports . KnowledgeWriter
//go:generate moq -out mocks/publisher.go -pkg mocks -skip-ensure -fmt goimports . Publisher

// Posts reads posts and their approved solutions
type Posts interface {
	GetPost(ctx context.Context, id string) (*domain.Post, error)
	GetSolvedPost(ctx context.Context, id string) (*domain.SolvedPost, error)
}

// KnowledgeWriter stores knowledge documents, one per post
type KnowledgeWriter interface {
	Upsert(ctx context.Context, k domain.SolvedKnowledge) error
}

// Publisher enqueues ingest jobs
type Publisher interface {
	PublishIngest(ctx context.Context, job domain.IngestJob) (string, error)
}

// Service requests and performs ingestion of solved posts
type Service struct {
	posts     Posts
	knowledge KnowledgeWriter
	pub       Publisher
	now       func() time.Time
}

// NewService makes ingest service
func NewService(posts Posts, knowledge KnowledgeWriter, pub Publisher) *Service {
	return &Service{posts: posts, knowledge: knowledge, pub: pub, now: func() time.Time { return time.Now().UTC() }}
}

// Document builds knowledge content of a solved post
func Document(sp domain.SolvedPost) string {
	return sp.Title + "\n" + sp.Body + "\n---\nSOLUTION:\n" + sp.SolutionText
}

// RequestIngest checks the post exists and enqueues its ingestion
func (s *Service) RequestIngest(ctx context.Context, postID string) error {
	if postID == "" {
		return fmt.Errorf("post id is required: %w", domain.ErrInvalidInput)
	}
	if _, err := s.posts.GetPost(ctx, postID); err != nil {
		return fmt.Errorf("get post %s: %w", postID, err)
	}
	id, err := s.pub.PublishIngest(ctx, domain.IngestJob{PostID: postID})
	if err != nil {
		return fmt.Errorf("enqueue ingest of %s: %w", postID, err)
	}
	lgr.Printf("[DEBUG] enqueued ingest %s for post %s", id, postID)
	return nil
}

// Handle processes ingest envelope
func (s *Service) Handle(ctx context.Context, env queue.Envelope) error {
	job, err := env.IngestJob()
	if err != nil {
		return err
	}
	return s.Ingest(ctx, job.PostID)
}

// Ingest stores the document of the post if it has an approved solution.
// Post without one, or gone, is a successful no-op. Repeating it only refreshes the record.
func (s *Service) Ingest(ctx context.Context, postID string) error {
	sp, err := s.posts.GetSolvedPost(ctx, postID)
	if errors.Is(err, domain.ErrNotFound) {
		lgr.Printf("[DEBUG] post %s has no approved solution, nothing to ingest", postID)
		return nil
	}
	if err != nil {
		return fmt.Errorf("get solved post %s: %w", postID, err)
	}

	k := domain.SolvedKnowledge{PostID: postID, Content: Document(*sp), UpdatedAt: s.now()}
	if err := s.knowledge.Upsert(ctx, k); err != nil {
		return fmt.Errorf("store knowledge of %s: %w", postID, err)
	}
	lgr.Printf("[INFO] ingested solved post %s, %d chars", postID, len(k.Content))
	return nil
}
