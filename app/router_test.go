package app

import (
	"context"
	"testing"

	"github.com/covenant-labs/covenant"
	"github.com/covenant-labs/covenant/covtest"
	"github.com/covenant-labs/covenant/errors"
	"github.com/covenant-labs/covenant/store"
)

func TestRouterDispatch(t *testing.T) {
	r := NewRouter()
	h := &covtest.Handler{}
	r.Handle(&covtest.Msg{RoutePath: "test/good"}, h)

	db := store.MemStore()
	ctx := context.Background()

	tx := &covtest.Tx{Msg: &covtest.Msg{RoutePath: "test/good"}}
	if _, err := r.Check(ctx, db, tx); err != nil {
		t.Fatalf("check failed: %+v", err)
	}
	if _, err := r.Deliver(ctx, db, tx); err != nil {
		t.Fatalf("deliver failed: %+v", err)
	}
	if got := h.CallCount(); got != 2 {
		t.Fatalf("want 2 handler calls, got %d", got)
	}

	miss := &covtest.Tx{Msg: &covtest.Msg{RoutePath: "test/missing"}}
	if _, err := r.Deliver(ctx, db, miss); !errors.ErrNotFound.Is(err) {
		t.Fatalf("unregistered path must not be found, got %+v", err)
	}
}

func TestRouterRejectsDuplicatePath(t *testing.T) {
	r := NewRouter()
	r.Handle(&covtest.Msg{RoutePath: "test/good"}, &covtest.Handler{})

	defer func() {
		if recover() == nil {
			t.Fatal("panic expected")
		}
	}()
	r.Handle(&covtest.Msg{RoutePath: "test/good"}, &covtest.Handler{})
}

var _ covenant.Handler = (*covtest.Handler)(nil)
