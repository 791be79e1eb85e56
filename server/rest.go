package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/umputun/huntmatch/pkg/domain"
	"github.com/umputun/huntmatch/pkg/suggest"
)

// userHeader carries id of the authenticated caller, set by the gateway in front of the service
const userHeader = "X-User-ID"

// postRequest is the body of match-notify and ingest calls
type postRequest struct {
	PostID string `json:"postId"`
}

// matchNotifyResponse lists hunters with enqueued notifications
type matchNotifyResponse struct {
	Notified []string `json:"notified"`
	Failed   []string `json:"failed"`
	Keywords []string `json:"keywords"`
}

// notificationResponse is an outcome of a notification job as seen by its recipient
type notificationResponse struct {
	JobID     string    `json:"jobId"`
	PostID    string    `json:"postId"`
	Status    string    `json:"status"`
	Error     string    `json:"error,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

const (
	defaultNotificationsLimit = 20
	maxNotificationsLimit     = 100
)

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]any{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	if s.deps.Status != nil {
		details, err := s.deps.Status.Status(r.Context())
		if err != nil {
			log.Printf("[WARN] status check failed: %v", err)
			status["status"] = "degraded"
			status["error"] = err.Error()
		}
		for k, v := range details {
			status[k] = v
		}
	}
	renderJSON(w, r, http.StatusOK, status)
}

// matchNotifyHandler matches hunters for the post and enqueues a notification for each of them.
// Responds with 207 when only some of the notifications were enqueued.
func (s *Server) matchNotifyHandler(w http.ResponseWriter, r *http.Request) {
	var req postRequest
	if err := decodeJSON(r, &req); err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	if req.PostID == "" {
		renderError(w, r, fmt.Errorf("missing postId"), http.StatusBadRequest)
		return
	}

	res, err := s.deps.Matcher.Match(r.Context(), req.PostID)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}

	rep, err := s.deps.Dispatcher.Dispatch(r.Context(), res.Candidates)
	resp := matchNotifyResponse{Notified: rep.Enqueued, Failed: rep.FailedIDs(), Keywords: res.Keywords}
	if resp.Notified == nil {
		resp.Notified = []string{}
	}
	switch {
	case err == nil:
		renderJSON(w, r, http.StatusOK, resp)
	case errors.Is(err, domain.ErrPartialFanout):
		log.Printf("[WARN] partial fan-out for post %s: %v", req.PostID, err)
		renderJSON(w, r, http.StatusMultiStatus, resp)
	default:
		renderServiceError(w, r, err)
	}
}

// ingestHandler enqueues ingestion of a solved post
func (s *Server) ingestHandler(w http.ResponseWriter, r *http.Request) {
	var req postRequest
	if err := decodeJSON(r, &req); err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	if req.PostID == "" {
		renderError(w, r, fmt.Errorf("missing postId"), http.StatusBadRequest)
		return
	}

	if err := s.deps.Ingester.RequestIngest(r.Context(), req.PostID); err != nil {
		renderServiceError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]bool{"ok": true})
}

// suggestHandler returns solved posts relevant to the text or post
func (s *Server) suggestHandler(w http.ResponseWriter, r *http.Request) {
	var req suggest.Request
	if err := decodeJSON(r, &req); err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	res, err := s.deps.Suggester.Suggest(r.Context(), req)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, res)
}

// keywordsHandler returns keywords of the text or post
func (s *Server) keywordsHandler(w http.ResponseWriter, r *http.Request) {
	var req suggest.Request
	if err := decodeJSON(r, &req); err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	kws, err := s.deps.Matcher.Keywords(r.Context(), req.Text, req.PostID)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string][]string{"keywords": kws})
}

// listBlocksHandler returns users blocked by the caller
func (s *Server) listBlocksHandler(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get(userHeader)
	if userID == "" {
		renderError(w, r, fmt.Errorf("missing %s header", userHeader), http.StatusUnauthorized)
		return
	}

	blocked, err := s.deps.Blocklist.Blocked(r.Context(), userID)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string][]string{"blocked": blocked})
}

// blockHandler adds target to the caller's block list
func (s *Server) blockHandler(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get(userHeader)
	if userID == "" {
		renderError(w, r, fmt.Errorf("missing %s header", userHeader), http.StatusUnauthorized)
		return
	}

	if err := s.deps.Blocklist.Block(r.Context(), userID, r.PathValue("targetId")); err != nil {
		renderServiceError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]bool{"ok": true})
}

// unblockHandler removes target from the caller's block list
func (s *Server) unblockHandler(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get(userHeader)
	if userID == "" {
		renderError(w, r, fmt.Errorf("missing %s header", userHeader), http.StatusUnauthorized)
		return
	}

	if err := s.deps.Blocklist.Unblock(r.Context(), userID, r.PathValue("targetId")); err != nil {
		renderServiceError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]bool{"ok": true})
}

// listNotificationsHandler returns recent notification outcomes of the caller, ?limit=N up to 100
func (s *Server) listNotificationsHandler(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get(userHeader)
	if userID == "" {
		renderError(w, r, fmt.Errorf("missing %s header", userHeader), http.StatusUnauthorized)
		return
	}

	limit := defaultNotificationsLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > maxNotificationsLimit {
			renderError(w, r, fmt.Errorf("limit must be between 1 and %d", maxNotificationsLimit), http.StatusBadRequest)
			return
		}
		limit = n
	}

	entries, err := s.deps.Notifications.ListByRecipient(r.Context(), userID, limit)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}
	resp := make([]notificationResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, toNotificationResponse(e))
	}
	renderJSON(w, r, http.StatusOK, map[string][]notificationResponse{"notifications": resp})
}

// getNotificationHandler returns outcome of a single job, only to its recipient
func (s *Server) getNotificationHandler(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get(userHeader)
	if userID == "" {
		renderError(w, r, fmt.Errorf("missing %s header", userHeader), http.StatusUnauthorized)
		return
	}

	jobID := r.PathValue("jobId")
	entry, err := s.deps.Notifications.GetByJob(r.Context(), jobID)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}
	if entry.RecipientID != userID {
		// jobs of other users are not disclosed
		renderServiceError(w, r, fmt.Errorf("notification %s: %w", jobID, domain.ErrNotFound))
		return
	}
	renderJSON(w, r, http.StatusOK, toNotificationResponse(*entry))
}

func toNotificationResponse(e domain.NotificationLogEntry) notificationResponse {
	return notificationResponse{JobID: e.JobID, PostID: e.PostID, Status: string(e.Status), Error: e.Error, CreatedAt: e.CreatedAt}
}

// decodeJSON reads request body, empty body is an empty request
func decodeJSON(r *http.Request, v any) error {
	if r.Body == nil || r.ContentLength == 0 {
		return nil
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}

// renderServiceError maps service errors to status codes
func renderServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		renderError(w, r, err, http.StatusNotFound)
	case errors.Is(err, domain.ErrInvalidInput):
		renderError(w, r, err, http.StatusBadRequest)
	case errors.Is(err, domain.ErrUpstream):
		log.Printf("[WARN] upstream failure on %s %s: %v", r.Method, r.URL.Path, err)
		renderError(w, r, err, http.StatusBadGateway)
	default:
		log.Printf("[ERROR] %s %s failed: %v", r.Method, r.URL.Path, err)
		renderError(w, r, err, http.StatusInternalServerError)
	}
}
