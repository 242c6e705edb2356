// Package localstore implements the domain repositories over a core.Storage.
// Each partition key holds one JSON array that is read whole and rewritten whole on every change.
package localstore

import (
	"bytes"
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/trezcool/unirepo/core"
)

var errNotFound = errors.New("record not found")

// DB serializes the read-modify-write cycles on each partition of a storage.
type DB struct {
	storage core.Storage
	logger  core.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex

	now func() time.Time // mockable
}

func New(storage core.Storage, logger core.Logger) *DB {
	return &DB{
		storage: storage,
		logger:  logger,
		locks:   make(map[string]*sync.Mutex),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (db *DB) Storage() core.Storage { return db.storage }

// lock acquires the partition mutex of key and returns its release func.
func (db *DB) lock(key string) func() {
	db.mu.Lock()
	l, ok := db.locks[key]
	if !ok {
		l = new(sync.Mutex)
		db.locks[key] = l
	}
	db.mu.Unlock()

	l.Lock()
	return l.Unlock
}

// load returns the raw records of a partition.
// An absent key or an undecodable value both read as an empty partition.
func (db *DB) load(ctx context.Context, key string) ([]json.RawMessage, error) {
	val, ok, err := db.storage.GetItem(ctx, key)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", key)
	}
	if !ok || val == "" {
		return []json.RawMessage{}, nil
	}

	var raws []json.RawMessage
	if err = json.Unmarshal([]byte(val), &raws); err != nil {
		db.logger.Warn("malformed partition read as empty", map[string]interface{}{"key": key}, err)
		return []json.RawMessage{}, nil
	}
	if raws == nil { // "null"
		raws = []json.RawMessage{}
	}
	return raws, nil
}

// store writes raws as a JSON array, each record copied byte for byte.
func (db *DB) store(ctx context.Context, key string, raws []json.RawMessage) error {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, raw := range raws {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.Write(raw)
	}
	buf.WriteByte(']')
	if err := db.storage.SetItem(ctx, key, buf.String()); err != nil {
		return errors.Wrapf(err, "writing %s", key)
	}
	return nil
}

// IsEmpty reports whether the partition at key holds no record.
func (db *DB) IsEmpty(ctx context.Context, key string) (bool, error) {
	raws, err := db.load(ctx, key)
	if err != nil {
		return false, err
	}
	return len(raws) == 0, nil
}

// Count returns the number of records in the partition at key.
func (db *DB) Count(ctx context.Context, key string) (int, error) {
	raws, err := db.load(ctx, key)
	if err != nil {
		return 0, err
	}
	return len(raws), nil
}

// marshal encodes a record without escaping HTML characters.
func marshal(v interface{}) (json.RawMessage, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
