package rediskv

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/unirepo/core"
	"github.com/trezcool/unirepo/storage/kv/kvtest"
)

func TestStorage(t *testing.T) {
	srv := miniredis.RunT(t)
	kvtest.Run(t, func(t *testing.T, origin string) core.Storage {
		s, err := Open(context.Background(), Options{Addr: srv.Addr(), Origin: origin})
		require.NoError(t, err)
		t.Cleanup(func() { _ = s.Close() })
		return s
	})
}

func TestStorage_prefix(t *testing.T) {
	ctx := context.Background()
	srv := miniredis.RunT(t)
	s, err := Open(ctx, Options{Addr: srv.Addr(), Origin: "unijos"})
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.SetItem(ctx, core.KeyUsers, "[]"))
	val, err := srv.Get("unijos:users")
	require.NoError(t, err)
	assert.Equal(t, "[]", val)
}

func TestOpen_unreachable(t *testing.T) {
	srv := miniredis.RunT(t)
	addr := srv.Addr()
	srv.Close()

	_, err := Open(context.Background(), Options{Addr: addr, Origin: "unijos"})
	assert.Error(t, err)
}
