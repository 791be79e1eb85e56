// Package matcher selects hunters for a post by overlap of post keywords and hunter skills
package matcher

import (
	"context"
	"fmt"

	"github.com/umputun/huntmatch/pkg/domain"
	"github.com/umputun/huntmatch/pkg/keywords"
)

//go:generate moq -out mocks/posts.go -pkg mocks -skip-ensure -fmt goimports . PostReader
//go:generate moq -out mocks/hunters.go -pkg mocks -skip-ensure -fmt goimports . HunterFinder

// DefaultLimit is the max number of candidates returned by Match
const DefaultLimit = 20

// PostReader reads posts
type PostReader interface {
	GetPost(ctx context.Context, id string) (*domain.Post, error)
}

// HunterFinder looks up approved hunters by skills, ordered by reward desc then id
type HunterFinder interface {
	FindBySkills(ctx context.Context, skills []string, limit int) ([]domain.Hunter, error)
}

// Result of matching a single post
type Result struct {
	Post       *domain.Post
	Keywords   []string
	Candidates []domain.MatchCandidate
}

// Service matches posts to hunters
type Service struct {
	posts   PostReader
	hunters HunterFinder
	limit   int
}

// NewService makes matcher, limit <= 0 means DefaultLimit
func NewService(posts PostReader, hunters HunterFinder, limit int) *Service {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Service{posts: posts, hunters: hunters, limit: limit}
}

// Match extracts keywords of the post and returns approved hunters having any of them as a skill.
// Post without keywords yields no candidates and the hunter directory is not queried.
func (s *Service) Match(ctx context.Context, postID string) (Result, error) {
	if postID == "" {
		return Result{}, fmt.Errorf("post id is required: %w", domain.ErrInvalidInput)
	}
	post, err := s.posts.GetPost(ctx, postID)
	if err != nil {
		return Result{}, fmt.Errorf("get post %s: %w", postID, err)
	}

	res := Result{Post: post, Keywords: keywords.Extract(post.Text(), keywords.DefaultLimit), Candidates: []domain.MatchCandidate{}}
	if len(res.Keywords) == 0 {
		return res, nil
	}

	hunters, err := s.hunters.FindBySkills(ctx, res.Keywords, s.limit)
	if err != nil {
		return Result{}, fmt.Errorf("find hunters for post %s: %w", postID, err)
	}
	for _, h := range hunters {
		res.Candidates = append(res.Candidates, domain.MatchCandidate{
			HunterID: h.UserID,
			PostID:   post.ID,
			AuthorID: post.AuthorID,
			Keywords: res.Keywords,
			Rank:     h.RewardTotal,
		})
	}
	return res, nil
}

// Keywords returns keywords of the post when postID is set, otherwise keywords of text
func (s *Service) Keywords(ctx context.Context, text, postID string) ([]string, error) {
	if postID == "" {
		return keywords.Extract(text, keywords.DefaultLimit), nil
	}
	post, err := s.posts.GetPost(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("get post %s: %w", postID, err)
	}
	return keywords.Extract(post.Text(), keywords.DefaultLimit), nil
}
