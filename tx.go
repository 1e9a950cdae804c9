package covenant

import (
	"reflect"

	"github.com/covenant-labs/covenant/errors"
)

// Msg is a request for the ledger to take an action (make a state
// transition). It is just the request and must be validated by the handlers.
// All authentication information is in the wrapping Tx.
type Msg interface {
	// Path returns the message path. This is used by the Router to locate
	// the proper Handler. Msg should be created alongside the Handler
	// that corresponds to it.
	Path() string

	// Validate performs a sanity check of the message content. It does
	// not guarantee the message can be applied, only that it is well
	// formed.
	Validate() error
}

// Tx represents the data sent from the user to the chain. It includes the
// actual message, along with information needed to authenticate the sender,
// which is kept outside of this core package.
type Tx interface {
	// GetMsg returns the action we wish to communicate.
	GetMsg() (Msg, error)
}

// LoadMsg extracts the message from the transaction and unloads it into the
// destination. Before returning the message is validated.
func LoadMsg(tx Tx, destination Msg) error {
	msg, err := tx.GetMsg()
	if err != nil {
		return errors.Wrap(err, "cannot get message")
	}
	if msg == nil {
		return errors.Wrap(errors.ErrState, "transaction without a message")
	}

	dstVal := reflect.ValueOf(destination)
	if dstVal.Kind() != reflect.Ptr || dstVal.IsNil() {
		return errors.Wrapf(errors.ErrType, "destination must be a non nil pointer, got %T", destination)
	}
	msgVal := reflect.ValueOf(msg)
	if msgVal.Type() != dstVal.Type() {
		return errors.Wrapf(errors.ErrType, "want %T, got %T", destination, msg)
	}
	dstVal.Elem().Set(msgVal.Elem())
	return destination.Validate()
}
