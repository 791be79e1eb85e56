package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/microcosm-cc/bluemonday"

	"github.com/umputun/huntmatch/pkg/domain"
)

// LogDeliverer writes notices to the log, used when no webhook is configured
type LogDeliverer struct{}

// Deliver logs the notice with up to five keywords
func (LogDeliverer) Deliver(_ context.Context, job domain.NotificationJob) error {
	lgr.Printf("[INFO] notify hunter %s about post %s (rank=%d) keywords=%s",
		job.RecipientID, job.PostID, job.Rank, strings.Join(firstN(job.Keywords, 5), ","))
	return nil
}

// WebhookDeliverer posts notices as JSON to an external endpoint
type WebhookDeliverer struct {
	endpoint string
	client   *http.Client
	policy   *bluemonday.Policy
}

// webhookNotice is the body sent to the webhook
type webhookNotice struct {
	RecipientID string   `json:"recipient_id"`
	PostID      string   `json:"post_id"`
	AuthorID    string   `json:"author_id"`
	Keywords    []string `json:"keywords"`
	Rank        int64    `json:"rank"`
	Message     string   `json:"message"`
}

// NewWebhookDeliverer makes deliverer for the endpoint url
func NewWebhookDeliverer(endpoint string, timeout time.Duration) (*WebhookDeliverer, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse webhook url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("invalid webhook url %q", endpoint)
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &WebhookDeliverer{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
		policy:   bluemonday.StrictPolicy(),
	}, nil
}

// Deliver posts the notice, any non-2xx response is an error.
// Ids come from outside, so everything rendered into the message is stripped of markup.
func (w *WebhookDeliverer) Deliver(ctx context.Context, job domain.NotificationJob) error {
	notice := webhookNotice{
		RecipientID: job.RecipientID,
		PostID:      job.PostID,
		AuthorID:    job.AuthorID,
		Keywords:    job.Keywords,
		Rank:        job.Rank,
		Message: w.policy.Sanitize(fmt.Sprintf("new post %s matches your skills: %s",
			job.PostID, strings.Join(firstN(job.Keywords, 5), ", "))),
	}
	body, err := json.Marshal(notice)
	if err != nil {
		return fmt.Errorf("encode notice: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "huntmatch/1.0")

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("post notice to %s: %w: %w", w.endpoint, domain.ErrUpstream, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64*1024))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook responded with %d: %w", resp.StatusCode, domain.ErrUpstream)
	}
	return nil
}

func firstN(values []string, n int) []string {
	if len(values) <= n {
		return values
	}
	return values[:n]
}
