package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/huntmatch/pkg/config"
	"github.com/umputun/huntmatch/pkg/domain"
	"github.com/umputun/huntmatch/pkg/repository"
)

func TestRun_MissingConfig(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	err := run(ctx, Opts{Config: "non-existent-config.yml"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to load config")
}

func TestRun_InvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invalid.yml")
	require.NoError(t, os.WriteFile(path, []byte("invalid: yaml: content: ["), 0o600))

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	err := run(ctx, Opts{Config: path})
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to load config")
}

func TestRun_RedisUnavailable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	path := writeTestConfig(t, filepath.Join(t.TempDir(), "hm.db"), addr, "127.0.0.1:0")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := run(ctx, Opts{Config: path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to connect to redis")
}

func TestRun_EndToEnd(t *testing.T) {
	mr := miniredis.RunT(t)
	dbPath := filepath.Join(t.TempDir(), "hm.db")
	seedDatabase(t, dbPath)

	port := freePort(t)
	path := writeTestConfig(t, dbPath, mr.Addr(), fmt.Sprintf("127.0.0.1:%d", port))
	base := fmt.Sprintf("http://127.0.0.1:%d", port)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- run(ctx, Opts{Config: path, Mode: "all"}) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get(base + "/ping")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		return string(body) == "pong"
	}, 5*time.Second, 50*time.Millisecond)

	// match and notify, only the approved rust hunter is picked
	code, resp := postJSON(t, base+"/api/v1/match-notify", `{"postId":"p1"}`, nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, []any{"H1"}, resp["notified"])
	assert.Equal(t, []any{"rust", "networking"}, resp["keywords"])

	repos, err := repository.NewRepositories(context.Background(), repository.Config{DSN: dbPath})
	require.NoError(t, err)
	defer repos.Close()

	require.Eventually(t, func() bool {
		entries, err := repos.Notification.ListByRecipient(context.Background(), "H1", 10)
		return err == nil && len(entries) == 1 && entries[0].Status == domain.StatusDelivered
	}, 5*time.Second, 50*time.Millisecond)

	// block the author, the next notification is suppressed
	code, _ = postJSON(t, base+"/api/v1/blocks/a1", "", map[string]string{"X-User-ID": "H1"})
	assert.Equal(t, http.StatusOK, code)
	code, _ = postJSON(t, base+"/api/v1/match-notify", `{"postId":"p1"}`, nil)
	assert.Equal(t, http.StatusOK, code)
	require.Eventually(t, func() bool {
		entries, err := repos.Notification.ListByRecipient(context.Background(), "H1", 10)
		if err != nil || len(entries) != 2 {
			return false
		}
		return containsStatus([]domain.DeliveryStatus{entries[0].Status, entries[1].Status}, domain.StatusSuppressed)
	}, 5*time.Second, 50*time.Millisecond)

	// delivery log is visible to the recipient only
	req, err := http.NewRequest(http.MethodGet, base+"/api/v1/notifications?limit=10", http.NoBody)
	require.NoError(t, err)
	req.Header.Set("X-User-ID", "H1")
	listResp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	var list struct {
		Notifications []struct {
			JobID  string `json:"jobId"`
			PostID string `json:"postId"`
			Status string `json:"status"`
		} `json:"notifications"`
	}
	require.NoError(t, json.NewDecoder(listResp.Body).Decode(&list))
	listResp.Body.Close()
	require.Len(t, list.Notifications, 2)
	assert.Equal(t, "p1", list.Notifications[0].PostID)

	req, err = http.NewRequest(http.MethodGet, base+"/api/v1/notifications/"+list.Notifications[0].JobID, http.NoBody)
	require.NoError(t, err)
	req.Header.Set("X-User-ID", "H2")
	otherResp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	otherResp.Body.Close()
	assert.Equal(t, http.StatusNotFound, otherResp.StatusCode)

	// ingest the solved post and get it suggested
	code, resp = postJSON(t, base+"/api/v1/ingest", `{"postId":"p2"}`, nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, resp["ok"])
	require.Eventually(t, func() bool {
		code, resp := postJSON(t, base+"/api/v1/suggest", `{"text":"websocket disconnects"}`, nil)
		if code != http.StatusOK {
			return false
		}
		suggestions, ok := resp["suggestions"].([]any)
		return ok && len(suggestions) == 1 && suggestions[0].(map[string]any)["postId"] == "p2"
	}, 5*time.Second, 50*time.Millisecond)

	code, _ = postJSON(t, base+"/api/v1/ingest", `{"postId":"nope"}`, nil)
	assert.Equal(t, http.StatusNotFound, code)

	statusResp, err := http.Get(base + "/api/v1/status")
	require.NoError(t, err)
	var status map[string]any
	require.NoError(t, json.NewDecoder(statusResp.Body).Decode(&status))
	statusResp.Body.Close()
	assert.Equal(t, "ok", status["status"])
	assert.InDelta(t, 1, status["knowledge_docs"], 0)
	assert.Equal(t, map[string]any{"hunters_notify": []any{}, "ingest_solved": []any{}}, status["dead_letters"])

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("shutdown timeout")
	}
}

func TestSecrets(t *testing.T) {
	cfg := &config.Config{
		Database: config.DatabaseConfig{DSN: "postgres://hm:dbpass@db:5432/hm"},
		Redis:    config.RedisConfig{URL: "redis://:redispass@cache:6379/0"},
	}
	assert.Equal(t, []string{"dbpass", "redispass"}, secrets(cfg))

	cfg = &config.Config{Database: config.DatabaseConfig{DSN: "hm.db"}, Redis: config.RedisConfig{URL: "redis://cache:6379"}}
	assert.Empty(t, secrets(cfg))
}

func TestSetupLog(t *testing.T) {
	setupLog(true)
	setupLog(false)
	setupLog(true, "secret1", "secret2")
}

func seedDatabase(t *testing.T, dbPath string) {
	t.Helper()
	ctx := context.Background()
	repos, err := repository.NewRepositories(ctx, repository.Config{DSN: dbPath})
	require.NoError(t, err)
	defer repos.Close()

	require.NoError(t, repos.Post.CreatePost(ctx, &domain.Post{ID: "p1", Title: "rust networking", AuthorID: "a1"}))
	require.NoError(t, repos.Post.CreatePost(ctx, &domain.Post{ID: "p2", Title: "socket drops",
		Body: "websocket closes after a minute", AuthorID: "a2"}))
	require.NoError(t, repos.Post.SaveSolution(ctx, domain.Solution{PostID: "p2", Text: "raise proxy idle timeout", Approved: true}, "H2"))
	require.NoError(t, repos.Hunter.SaveHunter(ctx, domain.Hunter{UserID: "H1", Approved: true, Skills: []string{"rust"}, RewardTotal: 500}))
	require.NoError(t, repos.Hunter.SaveHunter(ctx, domain.Hunter{UserID: "H2", Approved: true, Skills: []string{"go"}, RewardTotal: 900}))
}

func writeTestConfig(t *testing.T, dbPath, redisAddr, listen string) string {
	t.Helper()
	content := fmt.Sprintf(`
server:
  listen: %q
database:
  dsn: %q
redis:
  url: redis://%s/0
  timeout: 1s
queue:
  prefix: e2e
  block_timeout: 1s
`, listen, dbPath, redisAddr)
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(strings.TrimSpace(content)), 0o600))
	return path
}

func postJSON(t *testing.T, url, body string, headers map[string]string) (int, map[string]any) {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, url, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var res map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&res)
	return resp.StatusCode, res
}

func freePort(t *testing.T) int {
	t.Helper()
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

func containsStatus(statuses []domain.DeliveryStatus, want domain.DeliveryStatus) bool {
	for _, s := range statuses {
		if s == want {
			return true
		}
	}
	return false
}
