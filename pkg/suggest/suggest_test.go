package suggest

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/huntmatch/pkg/domain"
	"github.com/umputun/huntmatch/pkg/ingest"
	"github.com/umputun/huntmatch/pkg/repository"
	"github.com/umputun/huntmatch/pkg/suggest/mocks"
)

func TestService_SuggestFromText(t *testing.T) {
	searcher := &mocks.SearcherMock{SearchFunc: func(context.Context, []string, int) ([]domain.SolvedKnowledge, error) {
		return []domain.SolvedKnowledge{
			{PostID: "p1", Content: strings.Repeat("é", 600)},
			{PostID: "p2", Content: "short"},
		}, nil
	}}
	posts := &mocks.PostReaderMock{}

	res, err := NewService(posts, searcher, 0).Suggest(context.Background(), Request{Text: "websocket reconnect websocket"})
	require.NoError(t, err)
	assert.Equal(t, []string{"websocket", "reconnect"}, res.Keywords)
	require.Len(t, res.Suggestions, 2)
	assert.Equal(t, "p1", res.Suggestions[0].PostID)
	assert.Equal(t, 500, len([]rune(res.Suggestions[0].Snippet)))
	assert.Equal(t, domain.Suggestion{PostID: "p2", Snippet: "short"}, res.Suggestions[1])

	require.Len(t, searcher.SearchCalls(), 1)
	assert.Equal(t, DefaultLimit, searcher.SearchCalls()[0].Limit)
	assert.Empty(t, posts.GetPostCalls())
}

func TestService_SuggestPostWinsOverText(t *testing.T) {
	posts := &mocks.PostReaderMock{GetPostFunc: func(_ context.Context, id string) (*domain.Post, error) {
		if id == "p1" {
			return &domain.Post{ID: "p1", Title: "grpc streaming", Body: "deadline"}, nil
		}
		return nil, domain.ErrNotFound
	}}
	searcher := &mocks.SearcherMock{SearchFunc: func(context.Context, []string, int) ([]domain.SolvedKnowledge, error) {
		return nil, nil
	}}
	svc := NewService(posts, searcher, 3)

	res, err := svc.Suggest(context.Background(), Request{Text: "kubernetes ingress", PostID: "p1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"grpc", "streaming", "deadline"}, res.Keywords)
	assert.NotNil(t, res.Suggestions)
	assert.Empty(t, res.Suggestions)
	assert.Equal(t, 3, searcher.SearchCalls()[0].Limit)

	_, err = svc.Suggest(context.Background(), Request{Text: "kubernetes", PostID: "missing"})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestService_SuggestEmptyQuery(t *testing.T) {
	searcher := &mocks.SearcherMock{}
	svc := NewService(&mocks.PostReaderMock{}, searcher, 0)

	for _, req := range []Request{{}, {Text: "   "}, {Text: "the and for"}} {
		res, err := svc.Suggest(context.Background(), req)
		require.NoError(t, err)
		assert.Empty(t, res.Keywords)
		assert.NotNil(t, res.Keywords)
		assert.Empty(t, res.Suggestions)
	}
	assert.Empty(t, searcher.SearchCalls(), "no keywords, no search")
}

func TestService_SuggestSearchError(t *testing.T) {
	searcher := &mocks.SearcherMock{SearchFunc: func(context.Context, []string, int) ([]domain.SolvedKnowledge, error) {
		return nil, domain.ErrUpstream
	}}
	_, err := NewService(&mocks.PostReaderMock{}, searcher, 0).Suggest(context.Background(), Request{Text: "websocket"})
	require.ErrorIs(t, err, domain.ErrUpstream)
}

func TestService_SuggestWithRepository(t *testing.T) {
	ctx := context.Background()
	repos, err := repository.NewRepositories(ctx, repository.Config{DSN: ":memory:", MaxOpenConns: 1})
	require.NoError(t, err)
	defer repos.Close()

	require.NoError(t, repos.Post.CreatePost(ctx, &domain.Post{ID: "p1", Title: "Connection drops",
		Body: "our websocket closes after a minute", AuthorID: "a1"}))
	require.NoError(t, repos.Post.SaveSolution(ctx, domain.Solution{PostID: "p1", Text: "raise proxy idle timeout", Approved: true}, "h1"))
	require.NoError(t, ingest.NewService(repos.Post, repos.Knowledge, nil).Ingest(ctx, "p1"))

	svc := NewService(repos.Post, repos.Knowledge, 0)

	res, err := svc.Suggest(ctx, Request{Text: "websocket keeps disconnecting"})
	require.NoError(t, err)
	require.Len(t, res.Suggestions, 1)
	assert.Equal(t, "p1", res.Suggestions[0].PostID)
	assert.True(t, strings.HasPrefix(res.Suggestions[0].Snippet, "Connection drops\n"))

	// the solved post itself as a query finds its own document
	res, err = svc.Suggest(ctx, Request{PostID: "p1"})
	require.NoError(t, err)
	require.Len(t, res.Suggestions, 1)
	assert.Equal(t, "p1", res.Suggestions[0].PostID)

	res, err = svc.Suggest(ctx, Request{Text: "kubernetes ingress certificates"})
	require.NoError(t, err)
	assert.Empty(t, res.Suggestions)
}
