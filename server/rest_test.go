package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/huntmatch/pkg/domain"
	"github.com/umputun/huntmatch/pkg/matcher"
	"github.com/umputun/huntmatch/pkg/notify"
	"github.com/umputun/huntmatch/pkg/suggest"
	"github.com/umputun/huntmatch/server/mocks"
)

func doRequest(t *testing.T, srv *Server, method, path, body string, headers map[string]string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), rec.Body.String())
	return rec.Code, resp
}

func matchResult() matcher.Result {
	kws := []string{"rust", "networking"}
	return matcher.Result{
		Post:     &domain.Post{ID: "p1", AuthorID: "a1"},
		Keywords: kws,
		Candidates: []domain.MatchCandidate{
			{HunterID: "h1", PostID: "p1", AuthorID: "a1", Keywords: kws, Rank: 900},
			{HunterID: "h2", PostID: "p1", AuthorID: "a1", Keywords: kws, Rank: 500},
		},
	}
}

func TestServer_MatchNotify(t *testing.T) {
	m := &mocks.MatcherMock{MatchFunc: func(_ context.Context, postID string) (matcher.Result, error) {
		if postID == "p1" {
			return matchResult(), nil
		}
		return matcher.Result{}, fmt.Errorf("get post %s: %w", postID, domain.ErrNotFound)
	}}

	t.Run("all enqueued", func(t *testing.T) {
		d := &mocks.DispatcherMock{DispatchFunc: func(_ context.Context, cs []domain.MatchCandidate) (notify.Report, error) {
			return notify.Report{Enqueued: []string{"h1", "h2"}}, nil
		}}
		srv := New(testConfig(":8080"), Deps{Matcher: m, Dispatcher: d}, "test", false)

		code, resp := doRequest(t, srv, http.MethodPost, "/api/v1/match-notify", `{"postId":"p1"}`, nil)
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, []any{"h1", "h2"}, resp["notified"])
		assert.Equal(t, []any{}, resp["failed"])
		assert.Equal(t, []any{"rust", "networking"}, resp["keywords"])

		require.Len(t, d.DispatchCalls(), 1)
		assert.Len(t, d.DispatchCalls()[0].Candidates, 2)
	})

	t.Run("partial fan-out", func(t *testing.T) {
		failed := []domain.FanoutFailure{{RecipientID: "h2", Err: domain.ErrUpstream}}
		d := &mocks.DispatcherMock{DispatchFunc: func(context.Context, []domain.MatchCandidate) (notify.Report, error) {
			return notify.Report{Enqueued: []string{"h1"}, Failed: failed},
				&domain.PartialFanoutError{Enqueued: []string{"h1"}, Failed: failed}
		}}
		srv := New(testConfig(":8080"), Deps{Matcher: m, Dispatcher: d}, "test", false)

		code, resp := doRequest(t, srv, http.MethodPost, "/api/v1/match-notify", `{"postId":"p1"}`, nil)
		assert.Equal(t, http.StatusMultiStatus, code)
		assert.Equal(t, []any{"h1"}, resp["notified"])
		assert.Equal(t, []any{"h2"}, resp["failed"])
	})

	t.Run("all failed", func(t *testing.T) {
		d := &mocks.DispatcherMock{DispatchFunc: func(context.Context, []domain.MatchCandidate) (notify.Report, error) {
			return notify.Report{}, fmt.Errorf("all failed: %w", domain.ErrUpstream)
		}}
		srv := New(testConfig(":8080"), Deps{Matcher: m, Dispatcher: d}, "test", false)

		code, resp := doRequest(t, srv, http.MethodPost, "/api/v1/match-notify", `{"postId":"p1"}`, nil)
		assert.Equal(t, http.StatusBadGateway, code)
		assert.Contains(t, resp["error"], "all failed")
	})

	t.Run("post not found", func(t *testing.T) {
		d := &mocks.DispatcherMock{}
		srv := New(testConfig(":8080"), Deps{Matcher: m, Dispatcher: d}, "test", false)

		code, resp := doRequest(t, srv, http.MethodPost, "/api/v1/match-notify", `{"postId":"nope"}`, nil)
		assert.Equal(t, http.StatusNotFound, code)
		assert.Contains(t, resp["error"], "not found")
		assert.Empty(t, d.DispatchCalls())
	})

	t.Run("bad requests", func(t *testing.T) {
		srv := New(testConfig(":8080"), Deps{Matcher: m, Dispatcher: &mocks.DispatcherMock{}}, "test", false)

		code, resp := doRequest(t, srv, http.MethodPost, "/api/v1/match-notify", `{}`, nil)
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "missing postId", resp["error"])

		code, _ = doRequest(t, srv, http.MethodPost, "/api/v1/match-notify", `{"postId":`, nil)
		assert.Equal(t, http.StatusBadRequest, code)
	})
}

func TestServer_Ingest(t *testing.T) {
	ing := &mocks.IngesterMock{RequestIngestFunc: func(_ context.Context, postID string) error {
		switch postID {
		case "p1":
			return nil
		case "down":
			return fmt.Errorf("enqueue: %w", domain.ErrUpstream)
		}
		return domain.ErrNotFound
	}}
	srv := New(testConfig(":8080"), Deps{Ingester: ing}, "test", false)

	code, resp := doRequest(t, srv, http.MethodPost, "/api/v1/ingest", `{"postId":"p1"}`, nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, resp["ok"])

	code, _ = doRequest(t, srv, http.MethodPost, "/api/v1/ingest", `{"postId":"missing"}`, nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = doRequest(t, srv, http.MethodPost, "/api/v1/ingest", `{"postId":"down"}`, nil)
	assert.Equal(t, http.StatusBadGateway, code)

	code, resp = doRequest(t, srv, http.MethodPost, "/api/v1/ingest", ``, nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "missing postId", resp["error"])
	assert.Len(t, ing.RequestIngestCalls(), 3)
}

func TestServer_Suggest(t *testing.T) {
	sg := &mocks.SuggesterMock{SuggestFunc: func(_ context.Context, req suggest.Request) (suggest.Result, error) {
		if req.PostID == "missing" {
			return suggest.Result{}, domain.ErrNotFound
		}
		return suggest.Result{
			Keywords:    []string{"websocket"},
			Suggestions: []domain.Suggestion{{PostID: "p9", Snippet: "websocket drops"}},
		}, nil
	}}
	srv := New(testConfig(":8080"), Deps{Suggester: sg}, "test", false)

	code, resp := doRequest(t, srv, http.MethodPost, "/api/v1/suggest", `{"text":"websocket"}`, nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, []any{"websocket"}, resp["keywords"])
	assert.Equal(t, []any{map[string]any{"postId": "p9", "snippet": "websocket drops"}}, resp["suggestions"])
	assert.Equal(t, suggest.Request{Text: "websocket"}, sg.SuggestCalls()[0].Req)

	code, _ = doRequest(t, srv, http.MethodPost, "/api/v1/suggest", `{"postId":"missing"}`, nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestServer_Keywords(t *testing.T) {
	m := &mocks.MatcherMock{KeywordsFunc: func(_ context.Context, text, postID string) ([]string, error) {
		if postID != "" {
			return nil, errors.New("boom")
		}
		return []string{"terraform"}, nil
	}}
	srv := New(testConfig(":8080"), Deps{Matcher: m}, "test", false)

	code, resp := doRequest(t, srv, http.MethodPost, "/api/v1/keywords", `{"text":"terraform plan"}`, nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, []any{"terraform"}, resp["keywords"])

	code, resp = doRequest(t, srv, http.MethodPost, "/api/v1/keywords", `{"postId":"p1"}`, nil)
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "boom", resp["error"])
}

func TestServer_Blocks(t *testing.T) {
	bl := &mocks.BlocklistMock{
		BlockFunc: func(_ context.Context, userID, targetID string) error {
			if userID == targetID {
				return fmt.Errorf("self block: %w", domain.ErrInvalidInput)
			}
			return nil
		},
		UnblockFunc: func(context.Context, string, string) error { return nil },
		BlockedFunc: func(context.Context, string) ([]string, error) { return []string{"a1", "a2"}, nil },
	}
	srv := New(testConfig(":8080"), Deps{Blocklist: bl}, "test", false)
	caller := map[string]string{"X-User-ID": "u1"}

	code, resp := doRequest(t, srv, http.MethodPost, "/api/v1/blocks/a1", "", caller)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, resp["ok"])
	require.Len(t, bl.BlockCalls(), 1)
	assert.Equal(t, "u1", bl.BlockCalls()[0].UserID)
	assert.Equal(t, "a1", bl.BlockCalls()[0].TargetID)

	code, _ = doRequest(t, srv, http.MethodPost, "/api/v1/blocks/u1", "", caller)
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = doRequest(t, srv, http.MethodDelete, "/api/v1/blocks/a1", "", caller)
	assert.Equal(t, http.StatusOK, code)
	require.Len(t, bl.UnblockCalls(), 1)

	code, resp = doRequest(t, srv, http.MethodGet, "/api/v1/blocks", "", caller)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, []any{"a1", "a2"}, resp["blocked"])

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/api/v1/blocks"},
		{http.MethodPost, "/api/v1/blocks/a1"},
		{http.MethodDelete, "/api/v1/blocks/a1"},
	} {
		code, resp = doRequest(t, srv, tc.method, tc.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, code, tc.path)
		assert.Contains(t, resp["error"], "X-User-ID")
	}
	assert.Len(t, bl.BlockCalls(), 2)
}

func TestServer_Notifications(t *testing.T) {
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	nm := &mocks.NotificationsMock{
		ListByRecipientFunc: func(_ context.Context, recipientID string, limit int) ([]domain.NotificationLogEntry, error) {
			if recipientID == "broken" {
				return nil, fmt.Errorf("list: %w", domain.ErrUpstream)
			}
			return []domain.NotificationLogEntry{
				{JobID: "j2", RecipientID: recipientID, PostID: "p2", Status: domain.StatusSuppressed, CreatedAt: created},
				{JobID: "j1", RecipientID: recipientID, PostID: "p1", Status: domain.StatusFailed, Error: "webhook 500", CreatedAt: created},
			}, nil
		},
		GetByJobFunc: func(_ context.Context, jobID string) (*domain.NotificationLogEntry, error) {
			if jobID != "j1" {
				return nil, fmt.Errorf("notification %s: %w", jobID, domain.ErrNotFound)
			}
			return &domain.NotificationLogEntry{JobID: "j1", RecipientID: "u1", PostID: "p1", Status: domain.StatusDelivered, CreatedAt: created}, nil
		},
	}
	srv := New(testConfig(":8080"), Deps{Notifications: nm}, "test", false)

	t.Run("list of the caller", func(t *testing.T) {
		code, resp := doRequest(t, srv, http.MethodGet, "/api/v1/notifications?limit=5", "", map[string]string{"X-User-ID": "u1"})
		assert.Equal(t, http.StatusOK, code)
		list, ok := resp["notifications"].([]any)
		require.True(t, ok)
		require.Len(t, list, 2)
		assert.Equal(t, map[string]any{"jobId": "j2", "postId": "p2", "status": "suppressed",
			"createdAt": "2026-03-01T10:00:00Z"}, list[0])
		assert.Equal(t, "webhook 500", list[1].(map[string]any)["error"])

		calls := nm.ListByRecipientCalls()
		require.NotEmpty(t, calls)
		assert.Equal(t, "u1", calls[len(calls)-1].RecipientID)
		assert.Equal(t, 5, calls[len(calls)-1].Limit)
	})

	t.Run("default limit", func(t *testing.T) {
		code, _ := doRequest(t, srv, http.MethodGet, "/api/v1/notifications", "", map[string]string{"X-User-ID": "u1"})
		assert.Equal(t, http.StatusOK, code)
		calls := nm.ListByRecipientCalls()
		assert.Equal(t, defaultNotificationsLimit, calls[len(calls)-1].Limit)
	})

	t.Run("bad limit", func(t *testing.T) {
		before := len(nm.ListByRecipientCalls())
		for _, v := range []string{"0", "-1", "101", "ten"} {
			code, _ := doRequest(t, srv, http.MethodGet, "/api/v1/notifications?limit="+v, "", map[string]string{"X-User-ID": "u1"})
			assert.Equal(t, http.StatusBadRequest, code, v)
		}
		assert.Len(t, nm.ListByRecipientCalls(), before)
	})

	t.Run("store down", func(t *testing.T) {
		code, _ := doRequest(t, srv, http.MethodGet, "/api/v1/notifications", "", map[string]string{"X-User-ID": "broken"})
		assert.Equal(t, http.StatusBadGateway, code)
	})

	t.Run("single job", func(t *testing.T) {
		code, resp := doRequest(t, srv, http.MethodGet, "/api/v1/notifications/j1", "", map[string]string{"X-User-ID": "u1"})
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "delivered", resp["status"])
		assert.Equal(t, "p1", resp["postId"])

		code, _ = doRequest(t, srv, http.MethodGet, "/api/v1/notifications/j1", "", map[string]string{"X-User-ID": "u2"})
		assert.Equal(t, http.StatusNotFound, code, "job of another user")

		code, _ = doRequest(t, srv, http.MethodGet, "/api/v1/notifications/j9", "", map[string]string{"X-User-ID": "u1"})
		assert.Equal(t, http.StatusNotFound, code)
	})

	t.Run("no caller", func(t *testing.T) {
		for _, path := range []string{"/api/v1/notifications", "/api/v1/notifications/j1"} {
			code, resp := doRequest(t, srv, http.MethodGet, path, "", nil)
			assert.Equal(t, http.StatusUnauthorized, code, path)
			assert.Contains(t, resp["error"], "X-User-ID")
		}
	})
}

func TestServer_Status(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		st := &mocks.StatusProviderMock{StatusFunc: func(context.Context) (map[string]any, error) {
			return map[string]any{"knowledge_docs": 3}, nil
		}}
		srv := New(testConfig(":8080"), Deps{Status: st}, "1.0.0", false)
		code, resp := doRequest(t, srv, http.MethodGet, "/api/v1/status", "", nil)
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "ok", resp["status"])
		assert.Equal(t, "1.0.0", resp["version"])
		assert.InDelta(t, 3, resp["knowledge_docs"], 0)
	})

	t.Run("degraded", func(t *testing.T) {
		st := &mocks.StatusProviderMock{StatusFunc: func(context.Context) (map[string]any, error) {
			return nil, errors.New("redis down")
		}}
		srv := New(testConfig(":8080"), Deps{Status: st}, "1.0.0", false)
		code, resp := doRequest(t, srv, http.MethodGet, "/api/v1/status", "", nil)
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "degraded", resp["status"])
		assert.Equal(t, "redis down", resp["error"])
	})
}

func TestRenderServiceError(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{err: fmt.Errorf("x: %w", domain.ErrNotFound), code: http.StatusNotFound},
		{err: fmt.Errorf("x: %w", domain.ErrInvalidInput), code: http.StatusBadRequest},
		{err: fmt.Errorf("x: %w", domain.ErrUpstream), code: http.StatusBadGateway},
		{err: errors.New("other"), code: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		renderServiceError(rec, httptest.NewRequest(http.MethodGet, "/", http.NoBody), tt.err)
		assert.Equal(t, tt.code, rec.Code, tt.err.Error())
		assert.JSONEq(t, fmt.Sprintf(`{"error":%q}`, tt.err.Error()), rec.Body.String())
	}
}
