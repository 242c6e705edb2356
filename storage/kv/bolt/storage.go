package boltkv

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.etcd.io/bbolt"

	"github.com/trezcool/unirepo/core"
)

// Storage keeps the items of an origin in a bbolt bucket named after it.
type Storage struct {
	db     *bbolt.DB
	bucket []byte
}

var _ core.Storage = (*Storage)(nil) // interface compliance check

func Open(path, origin string) (*Storage, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, errors.Wrap(err, "opening bolt file")
	}

	bucket := []byte(origin)
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "creating bucket")
	}
	return &Storage{db: db, bucket: bucket}, nil
}

func (s *Storage) GetItem(_ context.Context, key string) (string, bool, error) {
	var (
		val string
		ok  bool
	)
	err := s.db.View(func(tx *bbolt.Tx) error {
		// the slice is only valid for the life of the transaction
		if v := tx.Bucket(s.bucket).Get([]byte(key)); v != nil {
			val, ok = string(v), true
		}
		return nil
	})
	return val, ok, err
}

func (s *Storage) SetItem(_ context.Context, key, value string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(s.bucket).Put([]byte(key), []byte(value))
	})
}

func (s *Storage) RemoveItem(_ context.Context, key string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(s.bucket).Delete([]byte(key))
	})
}

func (s *Storage) Close() error {
	return s.db.Close()
}
