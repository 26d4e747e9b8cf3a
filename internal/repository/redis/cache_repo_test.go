package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/DRSN-tech/soares-modas/internal/cfg"
	"github.com/DRSN-tech/soares-modas/internal/domain"
	"github.com/DRSN-tech/soares-modas/internal/repository/redis"
	"github.com/DRSN-tech/soares-modas/internal/repository/redis/converter"
	"github.com/DRSN-tech/soares-modas/pkg/clients"
	"github.com/DRSN-tech/soares-modas/pkg/logger"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCacheRepo(t *testing.T) (*redis.CacheRepo, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	redisCfg := &cfg.RedisCfg{Addr: mr.Addr(), ProductTTL: time.Minute, DialTimeout: time.Second, Timeout: time.Second}
	client := clients.NewRedisClient(redisCfg)
	t.Cleanup(func() { _ = client.Close() })

	return redis.NewCacheRepo(client, converter.ProductConv{}, redisCfg, logger.NewNopLogger()), mr
}

func TestCacheRepo_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	repo, mr := newCacheRepo(t)

	badge := "BESTSELLER"
	products := []domain.Product{
		{ID: 1, Name: "Vestido", Price: 12990, Category: "vestidos", Badge: &badge, Available: true, Stock: 3, MinStock: 5},
		{ID: 2, Name: "Blusa", Price: 4990, Category: "blusas"},
	}
	require.NoError(t, repo.SetProducts(ctx, products))

	assert.True(t, mr.Exists("product:1"))
	assert.Equal(t, time.Minute, mr.TTL("product:1"))

	got, err := repo.GetProducts(ctx, []int64{1, 2, 3})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, products[0], got[1])
	assert.Equal(t, "Blusa", got[2].Name)

	require.NoError(t, repo.DeleteProducts(ctx, []int64{1}))
	got, err = repo.GetProducts(ctx, []int64{1, 2})
	require.NoError(t, err)
	assert.NotContains(t, got, int64(1))
	assert.Contains(t, got, int64(2))
}

func TestCacheRepo_TTLExpiry(t *testing.T) {
	ctx := context.Background()
	repo, mr := newCacheRepo(t)

	require.NoError(t, repo.SetProducts(ctx, []domain.Product{{ID: 1, Name: "Saia"}}))
	mr.FastForward(2 * time.Minute)

	got, err := repo.GetProducts(ctx, []int64{1})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCacheRepo_CorruptedEntryIsMiss(t *testing.T) {
	ctx := context.Background()
	repo, mr := newCacheRepo(t)

	require.NoError(t, mr.Set("product:1", "{not json"))
	require.NoError(t, mr.Set("product:2", `{"id":3,"name":"wrong"}`))

	got, err := repo.GetProducts(ctx, []int64{1, 2})
	require.NoError(t, err)
	assert.Empty(t, got)
	// запись с чужим id удаляется
	assert.False(t, mr.Exists("product:2"))
}

func TestCacheRepo_Unavailable(t *testing.T) {
	repo, mr := newCacheRepo(t)
	mr.Close()

	_, err := repo.GetProducts(context.Background(), []int64{1})
	assert.Error(t, err)
}
