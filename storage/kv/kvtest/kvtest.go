// Package kvtest holds the conformance tests every core.Storage must pass.
package kvtest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/unirepo/core"
)

// Run exercises the storage contract against the storages returned by newStorage.
// Each call of newStorage must return an empty storage scoped to the given origin.
func Run(t *testing.T, newStorage func(t *testing.T, origin string) core.Storage) {
	ctx := context.Background()

	t.Run("absent key", func(t *testing.T) {
		s := newStorage(t, "absent")
		val, ok, err := s.GetItem(ctx, core.KeyUsers)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, val)
	})

	t.Run("set then get", func(t *testing.T) {
		s := newStorage(t, "setget")
		require.NoError(t, s.SetItem(ctx, core.KeyMaterials, `[{"id":"1"}]`))
		val, ok, err := s.GetItem(ctx, core.KeyMaterials)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, `[{"id":"1"}]`, val)
	})

	t.Run("set overwrites", func(t *testing.T) {
		s := newStorage(t, "overwrite")
		require.NoError(t, s.SetItem(ctx, core.KeyProjects, `[]`))
		require.NoError(t, s.SetItem(ctx, core.KeyProjects, `[{"id":"p1"}]`))
		val, _, err := s.GetItem(ctx, core.KeyProjects)
		require.NoError(t, err)
		assert.Equal(t, `[{"id":"p1"}]`, val)
	})

	t.Run("empty value is present", func(t *testing.T) {
		s := newStorage(t, "emptyval")
		require.NoError(t, s.SetItem(ctx, core.KeyCurrentUser, ""))
		_, ok, err := s.GetItem(ctx, core.KeyCurrentUser)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("remove", func(t *testing.T) {
		s := newStorage(t, "remove")
		require.NoError(t, s.SetItem(ctx, core.KeyCurrentUser, `{"id":"1"}`))
		require.NoError(t, s.RemoveItem(ctx, core.KeyCurrentUser))
		_, ok, err := s.GetItem(ctx, core.KeyCurrentUser)
		require.NoError(t, err)
		assert.False(t, ok)

		// removing an absent key is not an error
		assert.NoError(t, s.RemoveItem(ctx, core.KeyCurrentUser))
	})

	t.Run("keys are independent", func(t *testing.T) {
		s := newStorage(t, "independent")
		require.NoError(t, s.SetItem(ctx, core.KeyUsers, `["u"]`))
		require.NoError(t, s.SetItem(ctx, core.KeyCitations, `["c"]`))
		require.NoError(t, s.RemoveItem(ctx, core.KeyUsers))
		val, ok, err := s.GetItem(ctx, core.KeyCitations)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, `["c"]`, val)
	})
}
