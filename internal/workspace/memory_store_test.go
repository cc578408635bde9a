package workspace_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/salesdesk/internal/workspace"
	"github.com/dmitrymomot/salesdesk/pkg/selection"
)

func TestMemoryStore_LoadUnknownVisitor(t *testing.T) {
	t.Parallel()

	store := workspace.NewMemoryStore(10, 0)
	ws, err := store.Load(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Equal(t, workspace.New(), ws)
	assert.Equal(t, 0, store.Len())
}

func TestMemoryStore_Update(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := workspace.NewMemoryStore(10, 0)

	got, err := store.Update(ctx, "v1", func(ws *workspace.Workspace) error {
		ws.Sales.Selection = selection.Reduce(ws.Sales.Selection, selection.SelectAll{Total: 7})
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 7, got.Sales.Selection.Selected)

	loaded, err := store.Load(ctx, "v1")
	require.NoError(t, err)
	assert.Equal(t, 7, loaded.Sales.Selection.Selected)

	other, err := store.Load(ctx, "v2")
	require.NoError(t, err)
	assert.Zero(t, other.Sales.Selection.Selected)
}

func TestMemoryStore_UpdateErrorDiscardsChanges(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := workspace.NewMemoryStore(10, 0)
	boom := errors.New("boom")

	_, err := store.Update(ctx, "v1", func(ws *workspace.Workspace) error {
		ws.SaleForm.Open = true
		return boom
	})
	assert.ErrorIs(t, err, boom)

	ws, err := store.Load(ctx, "v1")
	require.NoError(t, err)
	assert.False(t, ws.SaleForm.Open)
}

func TestMemoryStore_LoadReturnsCopy(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := workspace.NewMemoryStore(10, 0)
	_, err := store.Update(ctx, "v1", func(ws *workspace.Workspace) error {
		ws.CustomerForm.Values["companyName"] = "Acme"
		return nil
	})
	require.NoError(t, err)

	ws, err := store.Load(ctx, "v1")
	require.NoError(t, err)
	ws.CustomerForm.Values["companyName"] = "changed"

	again, err := store.Load(ctx, "v1")
	require.NoError(t, err)
	assert.Equal(t, "Acme", again.CustomerForm.Values["companyName"])
}

func TestMemoryStore_ConcurrentUpdatesAreSerialised(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := workspace.NewMemoryStore(10, 0)
	_, err := store.Update(ctx, "v1", func(ws *workspace.Workspace) error {
		ws.Sales.Selection = selection.New(100)
		return nil
	})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = store.Update(ctx, "v1", func(ws *workspace.Workspace) error {
				ws.Sales.Selection = selection.Reduce(ws.Sales.Selection, selection.SelectOne{})
				return nil
			})
		}()
	}
	wg.Wait()

	ws, err := store.Load(ctx, "v1")
	require.NoError(t, err)
	assert.Equal(t, 50, ws.Sales.Selection.Selected)
}

func TestMemoryStore_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := workspace.NewMemoryStore(10, 0)
	_, err := store.Update(ctx, "v1", func(*workspace.Workspace) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
	assert.NoError(t, store.Ping(context.Background()))
}
