package blocklist

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/huntmatch/pkg/blocklist/mocks"
	"github.com/umputun/huntmatch/pkg/domain"
)

func TestService_Block(t *testing.T) {
	store := &mocks.KeySetMock{
		AddFunc: func(ctx context.Context, userID, member string) error { return nil },
	}
	svc := NewService(store)

	t.Run("valid block", func(t *testing.T) {
		require.NoError(t, svc.Block(context.Background(), "alice", "bob"))
		require.Len(t, store.AddCalls(), 1)
		assert.Equal(t, "alice", store.AddCalls()[0].UserID)
		assert.Equal(t, "bob", store.AddCalls()[0].Member)
	})

	t.Run("self block rejected", func(t *testing.T) {
		err := svc.Block(context.Background(), "alice", "alice")
		require.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Len(t, store.AddCalls(), 1, "nothing stored for self block")
	})

	t.Run("empty target rejected", func(t *testing.T) {
		err := svc.Block(context.Background(), "alice", "")
		require.ErrorIs(t, err, domain.ErrInvalidInput)
		err = svc.Block(context.Background(), "", "bob")
		require.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Len(t, store.AddCalls(), 1)
	})

	t.Run("store error passed through", func(t *testing.T) {
		failing := &mocks.KeySetMock{
			AddFunc: func(ctx context.Context, userID, member string) error {
				return errors.Join(domain.ErrUpstream, errors.New("connection refused"))
			},
		}
		err := NewService(failing).Block(context.Background(), "alice", "bob")
		require.ErrorIs(t, err, domain.ErrUpstream)
	})
}

func TestService_UnblockAndList(t *testing.T) {
	store := &mocks.KeySetMock{
		RemoveFunc:  func(ctx context.Context, userID, member string) error { return nil },
		MembersFunc: func(ctx context.Context, userID string) ([]string, error) { return []string{"zed", "bob"}, nil },
	}
	svc := NewService(store)

	require.NoError(t, svc.Unblock(context.Background(), "alice", "bob"))
	require.Len(t, store.RemoveCalls(), 1)

	err := svc.Unblock(context.Background(), "alice", "")
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	ids, err := svc.Blocked(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"bob", "zed"}, ids)

	_, err = svc.Blocked(context.Background(), "")
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestService_BlockedEmpty(t *testing.T) {
	svc := NewService(&mocks.KeySetMock{
		MembersFunc: func(ctx context.Context, userID string) ([]string, error) { return nil, nil },
	})
	ids, err := svc.Blocked(context.Background(), "alice")
	require.NoError(t, err)
	assert.NotNil(t, ids)
	assert.Empty(t, ids)
}

func TestService_IsBlocked(t *testing.T) {
	_, client := setupRedis(t)
	svc := NewService(NewRedisStore(client))
	ctx := context.Background()

	blocked, err := svc.IsBlocked(ctx, "alice", "bob")
	require.NoError(t, err)
	assert.False(t, blocked)

	require.NoError(t, svc.Block(ctx, "alice", "bob"))
	blocked, err = svc.IsBlocked(ctx, "alice", "bob")
	require.NoError(t, err)
	assert.True(t, blocked)

	require.NoError(t, svc.Unblock(ctx, "alice", "bob"))
	blocked, err = svc.IsBlocked(ctx, "alice", "bob")
	require.NoError(t, err)
	assert.False(t, blocked)
}
