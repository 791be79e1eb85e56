package blocklist

import (
	"context"
	"fmt"
	"slices"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/huntmatch/pkg/domain"
)

//go:generate moq -out mocks/keyset.go -pkg mocks -skip-ensure -fmt goimports . KeySet

// KeySet is a per-user set store
type KeySet interface {
	Add(ctx context.Context, userID, member string) error
	Remove(ctx context.Context, userID, member string) error
	IsMember(ctx context.Context, userID, member string) (bool, error)
	Members(ctx context.Context, userID string) ([]string, error)
}

// Service manages directed block relations, blocker -> blocked.
// Each user only writes its own set, reads are plain membership checks.
type Service struct {
	store KeySet
}

// NewService makes blocklist service
func NewService(store KeySet) *Service {
	return &Service{store: store}
}

// Block makes userID mute targetID. Blocking yourself is rejected and nothing is stored.
func (s *Service) Block(ctx context.Context, userID, targetID string) error {
	if err := validate(userID, targetID); err != nil {
		return err
	}
	if err := s.store.Add(ctx, userID, targetID); err != nil {
		return err
	}
	lgr.Printf("[DEBUG] user %s blocked %s", userID, targetID)
	return nil
}

// Unblock removes targetID from the blocklist of userID
func (s *Service) Unblock(ctx context.Context, userID, targetID string) error {
	if userID == "" || targetID == "" {
		return fmt.Errorf("user and target are required: %w", domain.ErrInvalidInput)
	}
	if err := s.store.Remove(ctx, userID, targetID); err != nil {
		return err
	}
	lgr.Printf("[DEBUG] user %s unblocked %s", userID, targetID)
	return nil
}

// Blocked lists ids blocked by userID, sorted
func (s *Service) Blocked(ctx context.Context, userID string) ([]string, error) {
	if userID == "" {
		return nil, fmt.Errorf("user is required: %w", domain.ErrInvalidInput)
	}
	ids, err := s.store.Members(ctx, userID)
	if err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []string{}
	}
	slices.Sort(ids)
	return ids, nil
}

// IsBlocked reports whether recipientID has blocked senderID
func (s *Service) IsBlocked(ctx context.Context, recipientID, senderID string) (bool, error) {
	return s.store.IsMember(ctx, recipientID, senderID)
}

func validate(userID, targetID string) error {
	if userID == "" || targetID == "" {
		return fmt.Errorf("user and target are required: %w", domain.ErrInvalidInput)
	}
	if userID == targetID {
		return fmt.Errorf("can't block yourself: %w", domain.ErrInvalidInput)
	}
	return nil
}
