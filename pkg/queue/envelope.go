package queue

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/umputun/huntmatch/pkg/domain"
)

// Kind tags the payload type of an envelope
type Kind string

const (
	KindNotify Kind = "notify"
	KindIngest Kind = "ingest"
)

// ErrMalformed is returned for envelopes that can't be decoded or have invalid payload
var ErrMalformed = errors.New("malformed job")

// Envelope is the queued record, payload decoding depends on Kind
type Envelope struct {
	ID         string          `json:"id"`
	Kind       Kind            `json:"kind"`
	Attempt    int             `json:"attempt"`
	EnqueuedAt time.Time       `json:"enqueued_at"`
	LastError  string          `json:"last_error,omitempty"`
	Payload    json.RawMessage `json:"payload"`
}

// NewNotifyEnvelope wraps a notification job, rejecting jobs with missing fields
func NewNotifyEnvelope(job domain.NotificationJob) (Envelope, error) {
	if err := validateNotify(job); err != nil {
		return Envelope{}, err
	}
	return newEnvelope(KindNotify, job)
}

// NewIngestEnvelope wraps an ingest job, rejecting jobs without post id
func NewIngestEnvelope(job domain.IngestJob) (Envelope, error) {
	if err := validateIngest(job); err != nil {
		return Envelope{}, err
	}
	return newEnvelope(KindIngest, job)
}

// NotifyJob decodes notification payload, fails for other kinds
func (e Envelope) NotifyJob() (domain.NotificationJob, error) {
	var job domain.NotificationJob
	if e.Kind != KindNotify {
		return job, fmt.Errorf("envelope %s is %q, not %q: %w", e.ID, e.Kind, KindNotify, ErrMalformed)
	}
	if err := json.Unmarshal(e.Payload, &job); err != nil {
		return job, fmt.Errorf("decode notify payload %s: %w: %w", e.ID, ErrMalformed, err)
	}
	return job, validateNotify(job)
}

// IngestJob decodes ingest payload, fails for other kinds
func (e Envelope) IngestJob() (domain.IngestJob, error) {
	var job domain.IngestJob
	if e.Kind != KindIngest {
		return job, fmt.Errorf("envelope %s is %q, not %q: %w", e.ID, e.Kind, KindIngest, ErrMalformed)
	}
	if err := json.Unmarshal(e.Payload, &job); err != nil {
		return job, fmt.Errorf("decode ingest payload %s: %w: %w", e.ID, ErrMalformed, err)
	}
	return job, validateIngest(job)
}

// decodeEnvelope parses a raw queue record and validates its payload by kind
func decodeEnvelope(raw string) (Envelope, error) {
	var env Envelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		return env, fmt.Errorf("decode envelope: %w: %w", ErrMalformed, err)
	}
	if env.ID == "" {
		return env, fmt.Errorf("envelope without id: %w", ErrMalformed)
	}

	var err error
	switch env.Kind {
	case KindNotify:
		_, err = env.NotifyJob()
	case KindIngest:
		_, err = env.IngestJob()
	default:
		err = fmt.Errorf("envelope %s has unknown kind %q: %w", env.ID, env.Kind, ErrMalformed)
	}
	return env, err
}

func newEnvelope(kind Kind, payload any) (Envelope, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, fmt.Errorf("encode %s payload: %w", kind, err)
	}
	return Envelope{
		ID:         uuid.New().String(),
		Kind:       kind,
		EnqueuedAt: time.Now().UTC(),
		Payload:    data,
	}, nil
}

func validateNotify(job domain.NotificationJob) error {
	switch {
	case job.RecipientID == "":
		return fmt.Errorf("notify job without recipient: %w: %w", ErrMalformed, domain.ErrInvalidInput)
	case job.PostID == "":
		return fmt.Errorf("notify job without post id: %w: %w", ErrMalformed, domain.ErrInvalidInput)
	case job.AuthorID == "":
		return fmt.Errorf("notify job without author id: %w: %w", ErrMalformed, domain.ErrInvalidInput)
	}
	return nil
}

func validateIngest(job domain.IngestJob) error {
	if job.PostID == "" {
		return fmt.Errorf("ingest job without post id: %w: %w", ErrMalformed, domain.ErrInvalidInput)
	}
	return nil
}
