package ports

import (
	"context"
	"testing"
	"time"

	"github.com/drossy/stars/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunStateStoreContract runs a suite of tests to verify that a StateStore implementation
// adheres to the defined interface contract.
func RunStateStoreContract(t *testing.T, store StateStore) {
	ctx := context.Background()
	app := "contract-test-app-" + time.Now().Format("20060102150405")

	t.Run("Save and Load", func(t *testing.T) {
		require.NoError(t, store.SaveCurrent(ctx, app, "mainMenu"))

		name, err := store.LoadCurrent(ctx, app)
		require.NoError(t, err)
		assert.Equal(t, "mainMenu", name)
	})

	t.Run("Overwrite", func(t *testing.T) {
		require.NoError(t, store.SaveCurrent(ctx, app, "mainMenu"))
		require.NoError(t, store.SaveCurrent(ctx, app, "inGame"))

		name, err := store.LoadCurrent(ctx, app)
		require.NoError(t, err)
		assert.Equal(t, "inGame", name)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.LoadCurrent(ctx, "non-existent-"+app)
		assert.ErrorIs(t, err, domain.ErrNoSavedState)
	})

	t.Run("Apps Are Isolated", func(t *testing.T) {
		other := app + "-other"
		require.NoError(t, store.SaveCurrent(ctx, app, "mainMenu"))
		require.NoError(t, store.SaveCurrent(ctx, other, "mainState"))
		defer func() { _ = store.Clear(ctx, other) }()

		name, err := store.LoadCurrent(ctx, app)
		require.NoError(t, err)
		assert.Equal(t, "mainMenu", name)
	})

	t.Run("Clear", func(t *testing.T) {
		require.NoError(t, store.SaveCurrent(ctx, app, "mainMenu"))
		require.NoError(t, store.Clear(ctx, app))

		_, err := store.LoadCurrent(ctx, app)
		assert.ErrorIs(t, err, domain.ErrNoSavedState, "Load after Clear should return ErrNoSavedState")
	})
}
