package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/stagedash/pkg/adapters/memory"
	"github.com/aretw0/stagedash/pkg/adapters/redis"
	"github.com/aretw0/stagedash/pkg/domain"
	"github.com/aretw0/stagedash/pkg/ports"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixture() []domain.Pipeline {
	return []domain.Pipeline{
		{Name: "web-frontend", Stages: []domain.Stage{
			domain.NewStage("Source", "Succeeded"),
			domain.NewStage("Build", "InProgress"),
			domain.NewStage("Deploy", ""),
		}},
		{Name: "billing-api", Stages: []domain.Stage{
			domain.NewStage("Test", "Failed"),
		}},
	}
}

// countingSource counts upstream calls.
type countingSource struct {
	ports.PipelineSource
	lists  int
	states int
}

func (s *countingSource) ListPipelines(ctx context.Context) ([]string, error) {
	s.lists++
	return s.PipelineSource.ListPipelines(ctx)
}

func (s *countingSource) PipelineState(ctx context.Context, name string) (*domain.Pipeline, error) {
	s.states++
	return s.PipelineSource.PipelineState(ctx, name)
}

func setup(t *testing.T, opts ...redis.Option) (*miniredis.Miniredis, *countingSource, *redis.Cache) {
	t.Helper()
	mr := miniredis.RunT(t)

	upstream, err := memory.NewSource(fixture()...)
	require.NoError(t, err)
	counting := &countingSource{PipelineSource: upstream}

	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	cache := redis.NewFromClient(counting, client, opts...)
	t.Cleanup(func() { _ = cache.Close() })
	return mr, counting, cache
}

func TestCache_Contract(t *testing.T) {
	_, _, cache := setup(t)
	ports.RunPipelineSourceContract(t, cache, fixture())
}

func TestCache_ServesFromRedis(t *testing.T) {
	ctx := context.Background()
	mr, upstream, cache := setup(t)

	for range 3 {
		_, err := cache.ListPipelines(ctx)
		require.NoError(t, err)
		_, err = cache.PipelineState(ctx, "web-frontend")
		require.NoError(t, err)
	}

	assert.Equal(t, 1, upstream.lists)
	assert.Equal(t, 1, upstream.states)
	assert.True(t, mr.Exists("stagedash:pipelines"))
	assert.True(t, mr.Exists("stagedash:pipeline:web-frontend"))
}

func TestCache_EntriesExpire(t *testing.T) {
	ctx := context.Background()
	mr, upstream, cache := setup(t, redis.WithTTL(10*time.Second), redis.WithPrefix("test:"))

	_, err := cache.PipelineState(ctx, "billing-api")
	require.NoError(t, err)
	assert.Equal(t, 10*time.Second, mr.TTL("test:pipeline:billing-api"))

	mr.FastForward(11 * time.Second)

	_, err = cache.PipelineState(ctx, "billing-api")
	require.NoError(t, err)
	assert.Equal(t, 2, upstream.states)
}

func TestCache_NotFoundIsNotCached(t *testing.T) {
	ctx := context.Background()
	mr, _, cache := setup(t)

	_, err := cache.PipelineState(ctx, "ghost")
	assert.ErrorIs(t, err, domain.ErrPipelineNotFound)
	assert.False(t, mr.Exists("stagedash:pipeline:ghost"))
}

func TestCache_FallsThroughWhenRedisIsDown(t *testing.T) {
	ctx := context.Background()
	mr, upstream, cache := setup(t)
	mr.Close()

	p, err := cache.PipelineState(ctx, "web-frontend")
	require.NoError(t, err)
	assert.Equal(t, "web-frontend", p.Name)
	assert.Equal(t, 1, upstream.states)
}

func TestCache_CorruptEntryIsRefreshed(t *testing.T) {
	ctx := context.Background()
	mr, upstream, cache := setup(t)
	require.NoError(t, mr.Set("stagedash:pipelines", "{not json"))

	names, err := cache.ListPipelines(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"web-frontend", "billing-api"}, names)
	assert.Equal(t, 1, upstream.lists)
}

func TestCache_Invalidate(t *testing.T) {
	ctx := context.Background()
	mr, upstream, cache := setup(t)

	_, err := cache.ListPipelines(ctx)
	require.NoError(t, err)
	_, err = cache.PipelineState(ctx, "web-frontend")
	require.NoError(t, err)

	require.NoError(t, cache.Invalidate(ctx, "web-frontend"))
	assert.False(t, mr.Exists("stagedash:pipelines"))
	assert.False(t, mr.Exists("stagedash:pipeline:web-frontend"))

	_, err = cache.ListPipelines(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, upstream.lists)
}
