package app

import (
	"regexp"

	"github.com/covenant-labs/covenant"
	"github.com/covenant-labs/covenant/errors"
)

// isPath is the RegExp to ensure the routes make reasonable paths.
var isPath = regexp.MustCompile(`^[a-zA-Z0-9_/]+$`).MatchString

// Router allows us to register many handlers with different paths and then
// direct each message to the proper handler.
type Router struct {
	routes map[string]covenant.Handler
}

var _ covenant.Registry = (*Router)(nil)
var _ covenant.Handler = (*Router)(nil)

// NewRouter initializes a router with no routes.
func NewRouter() *Router {
	return &Router{
		routes: make(map[string]covenant.Handler),
	}
}

// Handle assigns the given handler to handle all messages of the same type
// as the given message. Handle panics on a malformed path or when assigning
// to an already registered path, as this is a programmer error that should
// never get into a release.
func (r *Router) Handle(m covenant.Msg, h covenant.Handler) {
	path := m.Path()
	if !isPath(path) {
		panic("invalid path: " + path)
	}
	if _, ok := r.routes[path]; ok {
		panic("re-registering route: " + path)
	}
	r.routes[path] = h
}

// handler returns the registered Handler for this message path or a
// noSuchPathHandler if no handler was registered under that path.
func (r *Router) handler(tx covenant.Tx) covenant.Handler {
	msg, err := tx.GetMsg()
	if err != nil || msg == nil {
		return noSuchPathHandler{path: "<nil>"}
	}
	if h, ok := r.routes[msg.Path()]; ok {
		return h
	}
	return noSuchPathHandler{path: msg.Path()}
}

// Check dispatches the transaction to the handler registered for the
// message path.
func (r *Router) Check(ctx covenant.Context, store covenant.KVStore, tx covenant.Tx) (*covenant.CheckResult, error) {
	return r.handler(tx).Check(ctx, store, tx)
}

// Deliver dispatches the transaction to the handler registered for the
// message path.
func (r *Router) Deliver(ctx covenant.Context, store covenant.KVStore, tx covenant.Tx) (*covenant.DeliverResult, error) {
	return r.handler(tx).Deliver(ctx, store, tx)
}

// noSuchPathHandler always returns an ErrNotFound failure. It is returned
// by the router for all unregistered paths to keep the dispatch code free
// of special cases.
type noSuchPathHandler struct {
	path string
}

var _ covenant.Handler = noSuchPathHandler{}

func (h noSuchPathHandler) Check(covenant.Context, covenant.KVStore, covenant.Tx) (*covenant.CheckResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for message path %q", h.path)
}

func (h noSuchPathHandler) Deliver(covenant.Context, covenant.KVStore, covenant.Tx) (*covenant.DeliverResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for message path %q", h.path)
}
