package workspace_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/salesdesk/internal/workspace"
	"github.com/dmitrymomot/salesdesk/pkg/form"
	"github.com/dmitrymomot/salesdesk/pkg/selection"
)

func unreachableClient(t *testing.T) *redis.Client {
	t.Helper()
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func newRedisStore(t *testing.T, ttl time.Duration) (*workspace.RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return workspace.NewRedisStore(client, ttl, workspace.WithKeyPrefix("test:")), mr
}

func TestRedisStore_Unavailable(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := workspace.NewRedisStore(unreachableClient(t), time.Hour, workspace.WithKeyPrefix("test:"))

	_, err := store.Load(ctx, "v1")
	assert.ErrorIs(t, err, workspace.ErrStoreUnavailable)

	called := false
	_, err = store.Update(ctx, "v1", func(*workspace.Workspace) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, workspace.ErrStoreUnavailable)
	assert.False(t, called)

	assert.ErrorIs(t, store.Ping(ctx), workspace.ErrStoreUnavailable)
}

func TestRedisStore_LoadUnknownVisitor(t *testing.T) {
	t.Parallel()

	store, mr := newRedisStore(t, time.Hour)

	ws, err := store.Load(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(workspace.New(), ws))
	assert.False(t, mr.Exists("test:nobody"))
	require.NoError(t, store.Ping(context.Background()))
}

func TestRedisStore_UpdateThenLoad(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, mr := newRedisStore(t, time.Hour)

	got, err := store.Update(ctx, "v1", func(ws *workspace.Workspace) error {
		ws.Sales.Selection = selection.Reduce(ws.Sales.Selection, selection.SelectAll{Total: 5})
		ws.Sales.Page = 2
		ws.SaleForm = form.Reduce(form.SaleSchema(), ws.SaleForm, form.Opened{}).State
		ws.SaleForm.Values["customerName"] = "A<B Corp"
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 5, got.Sales.Selection.Selected)
	assert.True(t, mr.Exists("test:v1"))

	loaded, err := store.Load(ctx, "v1")
	require.NoError(t, err)
	if diff := cmp.Diff(got, loaded, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("reloaded workspace differs (-updated +loaded):\n%s", diff)
	}

	other, err := store.Load(ctx, "v2")
	require.NoError(t, err)
	assert.Zero(t, other.Sales.Selection.Selected)
}

func TestRedisStore_UpdateSetsTTL(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, mr := newRedisStore(t, time.Hour)

	_, err := store.Update(ctx, "v1", func(ws *workspace.Workspace) error {
		ws.Customers.Page = 3
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, time.Hour, mr.TTL("test:v1"))
}

func TestRedisStore_TTLSlidesOnUpdate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, mr := newRedisStore(t, time.Hour)
	touch := func(ws *workspace.Workspace) error {
		ws.Sales.Page++
		return nil
	}

	_, err := store.Update(ctx, "v1", touch)
	require.NoError(t, err)

	mr.FastForward(40 * time.Minute)
	assert.Equal(t, 20*time.Minute, mr.TTL("test:v1"))

	_, err = store.Update(ctx, "v1", touch)
	require.NoError(t, err)
	assert.Equal(t, time.Hour, mr.TTL("test:v1"))

	mr.FastForward(40 * time.Minute)
	ws, err := store.Load(ctx, "v1")
	require.NoError(t, err)
	assert.Equal(t, 3, ws.Sales.Page)

	mr.FastForward(time.Hour)
	ws, err = store.Load(ctx, "v1")
	require.NoError(t, err)
	assert.Equal(t, 1, ws.Sales.Page)
}

func TestRedisStore_UpdateErrorSavesNothing(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, mr := newRedisStore(t, time.Hour)
	boom := errors.New("boom")

	_, err := store.Update(ctx, "v1", func(ws *workspace.Workspace) error {
		ws.SaleForm.Open = true
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, workspace.ErrStoreUnavailable)
	assert.False(t, mr.Exists("test:v1"))

	ws, err := store.Load(ctx, "v1")
	require.NoError(t, err)
	assert.False(t, ws.SaleForm.Open)
}

func TestRedisStore_ConcurrentWriterConflict(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, mr := newRedisStore(t, time.Hour)

	calls := 0
	_, err := store.Update(ctx, "v1", func(ws *workspace.Workspace) error {
		calls++
		// Another request writes the key between WATCH and EXEC.
		return mr.Set("test:v1", `{"sales":{"page":9,"size":10}}`)
	})
	assert.ErrorIs(t, err, workspace.ErrConflict)
	assert.Equal(t, 3, calls)

	ws, err := store.Load(ctx, "v1")
	require.NoError(t, err)
	assert.Equal(t, 9, ws.Sales.Page)
}

func TestRedisStore_ConflictRetrySucceeds(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, mr := newRedisStore(t, time.Hour)

	calls := 0
	got, err := store.Update(ctx, "v1", func(ws *workspace.Workspace) error {
		calls++
		if calls == 1 {
			return mr.Set("test:v1", `{"sales":{"page":4,"size":10}}`)
		}
		ws.Sales.Page++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, 5, got.Sales.Page)
}

func TestRedisStore_CorruptState(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, mr := newRedisStore(t, time.Hour)
	require.NoError(t, mr.Set("test:v1", "not json"))

	_, err := store.Load(ctx, "v1")
	assert.ErrorIs(t, err, workspace.ErrCorruptState)

	_, err = store.Update(ctx, "v1", func(*workspace.Workspace) error { return nil })
	assert.ErrorIs(t, err, workspace.ErrCorruptState)
}
