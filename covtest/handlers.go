package covtest

import (
	"sync/atomic"

	"github.com/covenant-labs/covenant"
)

// Handler implements covenant.Handler and records the number of times its
// methods were called. Both the results and the errors returned can be
// configured.
type Handler struct {
	checkCall   int64
	deliverCall int64

	// CheckResult is returned by Check. A zero value result is returned
	// if not set.
	CheckResult covenant.CheckResult
	// CheckErr if set is returned by Check.
	CheckErr error

	// DeliverResult is returned by Deliver. A zero value result is
	// returned if not set.
	DeliverResult covenant.DeliverResult
	// DeliverErr if set is returned by Deliver.
	DeliverErr error
}

var _ covenant.Handler = (*Handler)(nil)

func (h *Handler) Check(ctx covenant.Context, db covenant.KVStore, tx covenant.Tx) (*covenant.CheckResult, error) {
	atomic.AddInt64(&h.checkCall, 1)
	res := h.CheckResult
	return &res, h.CheckErr
}

func (h *Handler) Deliver(ctx covenant.Context, db covenant.KVStore, tx covenant.Tx) (*covenant.DeliverResult, error) {
	atomic.AddInt64(&h.deliverCall, 1)
	res := h.DeliverResult
	return &res, h.DeliverErr
}

func (h *Handler) CheckCallCount() int {
	return int(atomic.LoadInt64(&h.checkCall))
}

func (h *Handler) DeliverCallCount() int {
	return int(atomic.LoadInt64(&h.deliverCall))
}

func (h *Handler) CallCount() int {
	return h.CheckCallCount() + h.DeliverCallCount()
}
