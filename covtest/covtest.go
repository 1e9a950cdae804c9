/*
Package covtest provides mocks and helpers for testing covenant extensions.

Mocks are dumb implementations of the core interfaces that allow tests to
focus on the behavior of a single handler without bootstrapping the whole
application.
*/
package covtest

import (
	"encoding/binary"

	"github.com/covenant-labs/covenant"
	"github.com/covenant-labs/covenant/crypto"
)

// NewKey returns a new random private key.
func NewKey() *crypto.PrivateKey {
	return crypto.GenPrivKeyEd25519()
}

// NewCondition returns the condition of a newly generated key.
func NewCondition() covenant.Condition {
	return NewKey().PublicKey().Condition()
}

// SequenceID returns an ID encoded the same way the orm sequence does it.
// Use it in tests to reference entities created with sequence generated
// keys.
func SequenceID(n int64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(n))
	return b
}
