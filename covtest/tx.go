package covtest

import "github.com/covenant-labs/covenant"

// Tx represents a covenant transaction. The transaction carries a single
// message that is to be processed.
type Tx struct {
	// Msg is the message that is to be processed by this transaction.
	Msg covenant.Msg
	// Err if set is returned by any method call.
	Err error
}

var _ covenant.Tx = (*Tx)(nil)

func (tx *Tx) GetMsg() (covenant.Msg, error) {
	return tx.Msg, tx.Err
}

// Msg is a mock implementation of the covenant.Msg interface.
type Msg struct {
	// RoutePath is returned by the Path method, consumed by the router.
	RoutePath string
	// Err if set is returned by Validate.
	Err error
}

var _ covenant.Msg = (*Msg)(nil)

func (m *Msg) Path() string {
	return m.RoutePath
}

func (m *Msg) Validate() error {
	return m.Err
}
