// Package suggest finds solved posts relevant to a question
package suggest

import (
	"context"
	"fmt"

	"github.com/umputun/huntmatch/pkg/domain"
	"github.com/umputun/huntmatch/pkg/keywords"
)

//go:generate moq -out mocks/posts.go -pkg mocks -skip-ensure -fmt goimports . PostReader
//go:generate moq -out mocks/searcher.go -pkg mocks -skip-ensure -fmt goimports . Searcher

// DefaultLimit is the max number of suggestions
const DefaultLimit = 5

// PostReader reads posts
type PostReader interface {
	GetPost(ctx context.Context, id string) (*domain.Post, error)
}

// Searcher finds knowledge documents containing any of the keywords
type Searcher interface {
	Search(ctx context.Context, keywords []string, limit int) ([]domain.SolvedKnowledge, error)
}

// Request is a suggestion query, PostID wins over Text when both are set
type Request struct {
	Text   string `json:"text"`
	PostID string `json:"postId"`
}

// Result of a suggestion query
type Result struct {
	Keywords    []string            `json:"keywords"`
	Suggestions []domain.Suggestion `json:"suggestions"`
}

// Service makes suggestions from the solved knowledge
type Service struct {
	posts    PostReader
	searcher Searcher
	limit    int
}

// NewService makes suggestion service, limit <= 0 means DefaultLimit
func NewService(posts PostReader, searcher Searcher, limit int) *Service {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Service{posts: posts, searcher: searcher, limit: limit}
}

// Suggest extracts keywords of the query and returns snippets of solved posts containing any of them.
// Matching is a plain case-sensitive substring test, results are not ranked.
func (s *Service) Suggest(ctx context.Context, req Request) (Result, error) {
	text := req.Text
	if req.PostID != "" {
		post, err := s.posts.GetPost(ctx, req.PostID)
		if err != nil {
			return Result{}, fmt.Errorf("get post %s: %w", req.PostID, err)
		}
		text = post.Text()
	}

	res := Result{Keywords: keywords.Extract(text, keywords.DefaultLimit), Suggestions: []domain.Suggestion{}}
	if len(res.Keywords) == 0 {
		return res, nil
	}

	docs, err := s.searcher.Search(ctx, res.Keywords, s.limit)
	if err != nil {
		return Result{}, fmt.Errorf("search knowledge: %w", err)
	}
	for _, d := range docs {
		res.Suggestions = append(res.Suggestions, domain.Suggestion{PostID: d.PostID, Snippet: d.Snippet()})
	}
	return res, nil
}
