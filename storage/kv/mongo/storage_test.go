package mongokv

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/trezcool/unirepo/core"
	"github.com/trezcool/unirepo/storage/kv/kvtest"
)

// TEST_MONGO_URI points to a disposable server, e.g. mongodb://localhost:27017
func TestStorage(t *testing.T) {
	uri := os.Getenv("TEST_MONGO_URI")
	if uri == "" {
		t.Skip("TEST_MONGO_URI not set")
	}

	kvtest.Run(t, func(t *testing.T, origin string) core.Storage {
		ctx := context.Background()
		s, err := Open(ctx, uri, "unirepo_test", origin)
		require.NoError(t, err)
		_, err = s.coll.DeleteMany(ctx, bson.M{"origin": origin})
		require.NoError(t, err)
		t.Cleanup(func() { _ = s.Close() })
		return s
	})
}
