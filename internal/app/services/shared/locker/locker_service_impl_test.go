package locker

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubRedisRepo struct {
	values map[string]string
}

func newStubRedisRepo() *stubRedisRepo {
	return &stubRedisRepo{values: make(map[string]string)}
}

func (r *stubRedisRepo) Delete(ctx context.Context, key string) error {
	delete(r.values, key)
	return nil
}

func (r *stubRedisRepo) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	r.values[key] = fmt.Sprint(value)
	return nil
}

func (r *stubRedisRepo) Get(ctx context.Context, key string) (string, error) {
	return r.values[key], nil
}

func (r *stubRedisRepo) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	if _, exists := r.values[key]; exists {
		return false, nil
	}
	r.values[key] = fmt.Sprint(value)
	return true, nil
}

func (r *stubRedisRepo) CompareAndDelete(ctx context.Context, key, value string) (bool, error) {
	if stored, exists := r.values[key]; !exists || stored != value {
		return false, nil
	}
	delete(r.values, key)
	return true, nil
}

func TestLockService(t *testing.T) {
	t.Run("acquire and release round trip", func(t *testing.T) {
		repo := newStubRedisRepo()
		svc := &lockService{redisRepo: repo, Log: zap.NewNop()}

		acquired, token, err := svc.TryLock(context.Background(), "booking:prac-1:2026-03-02", time.Minute)
		require.NoError(t, err)
		require.True(t, acquired)
		require.NotEmpty(t, token)

		require.NoError(t, svc.Unlock(context.Background(), "booking:prac-1:2026-03-02", token))
		_, held := repo.values["booking:prac-1:2026-03-02"]
		assert.False(t, held, "lock key must be gone after release")
	})

	t.Run("held lock is not re-acquired", func(t *testing.T) {
		repo := newStubRedisRepo()
		svc := &lockService{redisRepo: repo, Log: zap.NewNop()}

		acquired, _, err := svc.TryLock(context.Background(), "k", time.Minute)
		require.NoError(t, err)
		require.True(t, acquired)

		acquired, _, err = svc.TryLock(context.Background(), "k", time.Minute)
		require.NoError(t, err)
		assert.False(t, acquired)
	})

	t.Run("stale token does not release another holder's lock", func(t *testing.T) {
		repo := newStubRedisRepo()
		svc := &lockService{redisRepo: repo, Log: zap.NewNop()}

		_, staleToken, err := svc.TryLock(context.Background(), "k", time.Minute)
		require.NoError(t, err)

		// The lock expires and another holder takes it over.
		delete(repo.values, "k")
		_, freshToken, err := svc.TryLock(context.Background(), "k", time.Minute)
		require.NoError(t, err)

		require.NoError(t, svc.Unlock(context.Background(), "k", staleToken))
		assert.Equal(t, freshToken, repo.values["k"], "the new holder's lock must survive a stale release")
	})
}
