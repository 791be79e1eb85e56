package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is returned when a referenced post or record is absent
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput is returned for missing required fields and self-block attempts
	ErrInvalidInput = errors.New("invalid input")
	// ErrUpstream is returned when a store or queue call failed
	ErrUpstream = errors.New("upstream unavailable")
	// ErrPartialFanout is matched by PartialFanoutError
	ErrPartialFanout = errors.New("partial fan-out failure")
)

// FanoutFailure is a single candidate that could not be enqueued
type FanoutFailure struct {
	RecipientID string
	Err         error
}

// PartialFanoutError reports notification enqueues that failed while others succeeded
type PartialFanoutError struct {
	Enqueued []string
	Failed   []FanoutFailure
}

func (e *PartialFanoutError) Error() string {
	ids := make([]string, 0, len(e.Failed))
	for _, f := range e.Failed {
		ids = append(ids, f.RecipientID)
	}
	return fmt.Sprintf("%s: %d enqueued, %d failed [%s]", ErrPartialFanout, len(e.Enqueued), len(e.Failed), strings.Join(ids, ","))
}

// Is makes errors.Is(err, ErrPartialFanout) true
func (e *PartialFanoutError) Is(target error) bool {
	return target == ErrPartialFanout
}

// Unwrap returns the underlying enqueue errors
func (e *PartialFanoutError) Unwrap() []error {
	errs := make([]error, 0, len(e.Failed))
	for _, f := range e.Failed {
		errs = append(errs, f.Err)
	}
	return errs
}
