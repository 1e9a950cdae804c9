package app

import (
	"github.com/covenant-labs/covenant"
	"github.com/covenant-labs/covenant/errors"
)

// Savepoint isolates all writes of the wrapped handler inside a cache wrap.
// The cache is written to the backing store only when the handler succeeds.
// On an error, or a panic, every pending write is discarded, so a failed
// operation leaves no partial state behind.
type Savepoint struct {
	next covenant.Handler
}

var _ covenant.Handler = Savepoint{}

// NewSavepoint wraps the given handler with an all-or-nothing write
// boundary. Panics raised by the handler surface as ErrPanic errors.
func NewSavepoint(next covenant.Handler) Savepoint {
	return Savepoint{next: next}
}

// Check runs the wrapped handler against a savepoint.
func (s Savepoint) Check(ctx covenant.Context, store covenant.KVStore, tx covenant.Tx) (res *covenant.CheckResult, err error) {
	defer errors.Recover(&err)

	cstore, ok := store.(covenant.CacheableKVStore)
	if !ok {
		return s.next.Check(ctx, store, tx)
	}

	cache := cstore.CacheWrap()
	if res, err = s.next.Check(ctx, cache, tx); err != nil {
		cache.Discard()
		return nil, err
	}
	cache.Write()
	return res, nil
}

// Deliver runs the wrapped handler against a savepoint.
func (s Savepoint) Deliver(ctx covenant.Context, store covenant.KVStore, tx covenant.Tx) (res *covenant.DeliverResult, err error) {
	defer errors.Recover(&err)

	cstore, ok := store.(covenant.CacheableKVStore)
	if !ok {
		return s.next.Deliver(ctx, store, tx)
	}

	cache := cstore.CacheWrap()
	if res, err = s.next.Deliver(ctx, cache, tx); err != nil {
		cache.Discard()
		return nil, err
	}
	cache.Write()
	return res, nil
}
