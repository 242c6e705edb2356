package mongokv

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/trezcool/unirepo/core"
)

const collectionName = "kv_items"

type item struct {
	Origin    string    `bson:"origin"`
	Key       string    `bson:"key"`
	Value     string    `bson:"value"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

// Storage keeps every item as a document of the kv_items collection, unique by (origin, key).
type Storage struct {
	client *mongo.Client
	coll   *mongo.Collection
	origin string
}

var _ core.Storage = (*Storage)(nil) // interface compliance check

func Open(ctx context.Context, uri, database, origin string) (*Storage, error) {
	connCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Wrap(err, "connecting to mongo")
	}
	if err = client.Ping(connCtx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.Wrap(err, "pinging mongo")
	}

	coll := client.Database(database).Collection(collectionName)
	_, err = coll.Indexes().CreateOne(connCtx, mongo.IndexModel{
		Keys:    bson.D{{Key: "origin", Value: 1}, {Key: "key", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.Wrap(err, "creating index")
	}
	return &Storage{client: client, coll: coll, origin: origin}, nil
}

func (s *Storage) filter(key string) bson.M {
	return bson.M{"origin": s.origin, "key": key}
}

func (s *Storage) GetItem(ctx context.Context, key string) (string, bool, error) {
	var it item
	err := s.coll.FindOne(ctx, s.filter(key)).Decode(&it)
	if err == mongo.ErrNoDocuments {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return it.Value, true, nil
}

func (s *Storage) SetItem(ctx context.Context, key, value string) error {
	it := item{Origin: s.origin, Key: key, Value: value, UpdatedAt: time.Now().UTC()}
	_, err := s.coll.ReplaceOne(ctx, s.filter(key), it, options.Replace().SetUpsert(true))
	return err
}

func (s *Storage) RemoveItem(ctx context.Context, key string) error {
	_, err := s.coll.DeleteOne(ctx, s.filter(key))
	return err
}

func (s *Storage) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}
