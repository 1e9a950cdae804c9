package covenant

import (
	"encoding/json"
)

// Handler is a core engine that can process a few specific messages. This
// could represent "vote on a covenant", or "claim covenant funds".
type Handler interface {
	Checker
	Deliverer
}

// Checker is a subset of Handler to verify the validity of a transaction.
// It is its own interface to allow better type controls.
type Checker interface {
	Check(ctx Context, store KVStore, tx Tx) (*CheckResult, error)
}

// Deliverer is a subset of Handler to execute a transaction.
type Deliverer interface {
	Deliver(ctx Context, store KVStore, tx Tx) (*DeliverResult, error)
}

// Registry is an interface to register your handler, the setup side of a
// Router.
type Registry interface {
	// Handle assigns given handler to process messages of the same type
	// as the given message.
	Handle(Msg, Handler)
}

// CheckResult captures any non-error abci result to make sure people use
// error for error cases.
type CheckResult struct {
	// GasAllocated is the maximum units of work we allow this tx to
	// perform.
	GasAllocated int64
	// GasPayment is the total fees for this tx (or other source of
	// payment).
	GasPayment int64
}

// Tag is a key-value pair emitted by a handler for external auditors and
// indexers. It is the observable event trail of a state transition.
type Tag struct {
	Key   []byte
	Value []byte
}

// NewTag is a shortcut to create a tag from strings.
func NewTag(key, value string) Tag {
	return Tag{Key: []byte(key), Value: []byte(value)}
}

// DeliverResult captures any non-error abci result to make sure people use
// error for error cases.
type DeliverResult struct {
	// Data is a machine-parseable return value, like an id of the newly
	// created entity.
	Data []byte
	// Log is human readable data.
	Log string
	// Tags is the list of events emitted by this delivery.
	Tags []Tag
	// GasUsed is the units of work performed.
	GasUsed int64
}

// Options are the app options. Each extension can look up its key and parse
// the json as desired.
type Options map[string]json.RawMessage

// ReadOptions reads the values stored under a given key and parses the json
// into the given obj. Returns an error if it cannot parse. Noop and no error
// if the key is missing.
func (o Options) ReadOptions(key string, obj interface{}) error {
	msg := o[key]
	if len(msg) == 0 {
		return nil
	}
	return json.Unmarshal(msg, obj)
}

// Initializer implementations are used to initialize extensions from genesis
// file contents.
type Initializer interface {
	FromGenesis(Options, KVStore) error
}
