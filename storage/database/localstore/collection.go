package localstore

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
)

type recordID struct {
	ID string `json:"id"`
}

func rawID(raw json.RawMessage) string {
	var rid recordID
	_ = json.Unmarshal(raw, &rid)
	return rid.ID
}

// collection gives typed access to the partition at key.
// Records are kept raw while rewriting so that untouched records are written back unchanged.
type collection[T any] struct {
	db  *DB
	key string
	id  func(T) string
}

func newCollection[T any](db *DB, key string, id func(T) string) collection[T] {
	return collection[T]{db: db, key: key, id: id}
}

func (c collection[T]) decode(raws []json.RawMessage) []T {
	recs := make([]T, 0, len(raws))
	for _, raw := range raws {
		var rec T
		if err := json.Unmarshal(raw, &rec); err != nil {
			c.db.logger.Warn("skipping malformed record", map[string]interface{}{"key": c.key}, err)
			continue
		}
		recs = append(recs, rec)
	}
	return recs
}

// all returns every record of the partition, in stored order.
func (c collection[T]) all(ctx context.Context) ([]T, error) {
	raws, err := c.db.load(ctx, c.key)
	if err != nil {
		return nil, err
	}
	return c.decode(raws), nil
}

// filter returns the records for which keep is true, in stored order.
func (c collection[T]) filter(ctx context.Context, keep func(T) bool) ([]T, error) {
	recs, err := c.all(ctx)
	if err != nil {
		return nil, err
	}
	kept := make([]T, 0, len(recs))
	for _, rec := range recs {
		if keep(rec) {
			kept = append(kept, rec)
		}
	}
	return kept, nil
}

// find returns the first record with id, or errNotFound.
func (c collection[T]) find(ctx context.Context, id string) (T, error) {
	var zero T
	raws, err := c.db.load(ctx, c.key)
	if err != nil {
		return zero, err
	}
	for _, raw := range raws {
		if rawID(raw) != id {
			continue
		}
		var rec T
		if err = json.Unmarshal(raw, &rec); err != nil {
			return zero, errors.Wrapf(err, "decoding %s record", c.key)
		}
		return rec, nil
	}
	return zero, errNotFound
}

// errUnchanged lets a mutation skip the write.
var errUnchanged = errors.New("partition unchanged")

// mutate runs fn on the raw records while holding the partition lock and stores its result.
// Nothing is written when fn fails or returns errUnchanged.
func (c collection[T]) mutate(ctx context.Context, fn func(raws []json.RawMessage) ([]json.RawMessage, error)) error {
	unlock := c.db.lock(c.key)
	defer unlock()

	raws, err := c.db.load(ctx, c.key)
	if err != nil {
		return err
	}
	if raws, err = fn(raws); err != nil {
		if err == errUnchanged {
			return nil
		}
		return err
	}
	return c.db.store(ctx, c.key, raws)
}

// insert appends recs.
func (c collection[T]) insert(ctx context.Context, recs ...T) error {
	return c.mutate(ctx, func(raws []json.RawMessage) ([]json.RawMessage, error) {
		for _, rec := range recs {
			raw, err := marshal(rec)
			if err != nil {
				return nil, errors.Wrapf(err, "encoding %s record", c.key)
			}
			raws = append(raws, raw)
		}
		return raws, nil
	})
}

// save replaces the record sharing rec's id, or appends rec when there is none.
func (c collection[T]) save(ctx context.Context, rec T) error {
	_, err := c.upsert(ctx, rec, nil)
	return err
}

// upsert is save with onReplace applied to rec only when it replaces a stored record.
// It returns the record as written.
func (c collection[T]) upsert(ctx context.Context, rec T, onReplace func(rec *T)) (T, error) {
	id := c.id(rec)
	err := c.mutate(ctx, func(raws []json.RawMessage) ([]json.RawMessage, error) {
		idx := -1
		for i := range raws {
			if rawID(raws[i]) == id {
				idx = i
				break
			}
		}
		if idx >= 0 && onReplace != nil {
			onReplace(&rec)
		}
		raw, err := marshal(rec)
		if err != nil {
			return nil, errors.Wrapf(err, "encoding %s record", c.key)
		}
		if idx < 0 {
			return append(raws, raw), nil
		}
		raws[idx] = raw
		return raws, nil
	})
	return rec, err
}

// update decodes the record with id, applies fn to it and writes it back in place.
func (c collection[T]) update(ctx context.Context, id string, fn func(rec *T) error) (T, error) {
	var updated T
	err := c.mutate(ctx, func(raws []json.RawMessage) ([]json.RawMessage, error) {
		for i := range raws {
			if rawID(raws[i]) != id {
				continue
			}
			if err := json.Unmarshal(raws[i], &updated); err != nil {
				return nil, errors.Wrapf(err, "decoding %s record", c.key)
			}
			if err := fn(&updated); err != nil {
				return nil, err
			}
			raw, err := marshal(updated)
			if err != nil {
				return nil, errors.Wrapf(err, "encoding %s record", c.key)
			}
			raws[i] = raw
			return raws, nil
		}
		return nil, errNotFound
	})
	return updated, err
}

// delete removes every record whose id is in ids. It returns how many were removed.
func (c collection[T]) delete(ctx context.Context, ids ...string) (int, error) {
	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	var removed int
	err := c.mutate(ctx, func(raws []json.RawMessage) ([]json.RawMessage, error) {
		kept := raws[:0]
		for _, raw := range raws {
			if drop[rawID(raw)] {
				removed++
				continue
			}
			kept = append(kept, raw)
		}
		if removed == 0 {
			return nil, errUnchanged
		}
		return kept, nil
	})
	return removed, err
}

// notFound maps errNotFound to the repository's own sentinel.
func notFound(err, sentinel error) error {
	if errors.Is(err, errNotFound) {
		return sentinel
	}
	return err
}
