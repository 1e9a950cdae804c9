package covenant

import (
	"context"
	"time"

	"github.com/covenant-labs/covenant/errors"
)

// Context is just an alias for the standard implementation. We use functions
// to extend it to our domain.
type Context = context.Context

type contextKey int // local to the covenant module

const (
	contextKeyHeight contextKey = iota
	contextKeyTime
)

// WithHeight sets the block height for the Context.
// Panics if called twice.
func WithHeight(ctx Context, height int64) Context {
	if _, ok := GetHeight(ctx); ok {
		panic("Double set height")
	}
	return context.WithValue(ctx, contextKeyHeight, height)
}

// GetHeight returns the current block height. The second argument is false
// if no height was set.
func GetHeight(ctx Context) (int64, bool) {
	val, ok := ctx.Value(contextKeyHeight).(int64)
	return val, ok
}

// WithBlockTime sets the block time for the Context. Block time is always
// represented in UTC.
func WithBlockTime(ctx Context, t time.Time) Context {
	return context.WithValue(ctx, contextKeyTime, t.UTC())
}

// BlockTime returns the block time as declared for this Context. The second
// argument is false if no time was set.
func BlockTime(ctx Context) (time.Time, bool) {
	val, ok := ctx.Value(contextKeyTime).(time.Time)
	return val, ok
}

// IsExpired returns true if given time is in the past as compared to the
// "now" as declared for the context. Expiration is inclusive, meaning that
// if current time is equal to the expiration time than this function
// returns true.
//
// This function panics if the block time is not provided in the context.
// This must never happen. The panic is here to prevent from a broken setup
// to be processing data incorrectly.
func IsExpired(ctx Context, t UnixTime) bool {
	blockNow, err := BlockTimeErr(ctx)
	if err != nil {
		panic(err)
	}
	return !t.Time().After(blockNow)
}

// BlockTimeErr behaves the same as BlockTime but returns an error instead of
// a boolean flag. It is a convenience helper for handlers that must not
// panic.
func BlockTimeErr(ctx Context) (time.Time, error) {
	now, ok := BlockTime(ctx)
	if !ok {
		return time.Time{}, errors.Wrap(errors.ErrHuman, "block time not present in the context")
	}
	return now, nil
}
