package orm

import (
	"fmt"
	"regexp"

	"github.com/covenant-labs/covenant"
	"github.com/covenant-labs/covenant/errors"
	"github.com/tendermint/go-amino"
)

var isBucketName = regexp.MustCompile(`^[a-z_]{3,10}$`).MatchString

// cdc serializes all models stored in buckets. Models are plain structs so
// reflection based encoding requires no registration.
var cdc = amino.NewCodec()

// Model is implemented by any entity that can be stored in a bucket. A model
// is validated before it is persisted.
type Model interface {
	Validate() error
}

// ModelBucket is a prefixed subspace of the database holding exactly one
// type of model.
//
// This is a generic building block that should be embedded in a type-safe
// wrapper to ensure all data is of the same type.
type ModelBucket struct {
	name   string
	prefix []byte
}

// NewModelBucket creates a bucket to store models under the given name
// prefix.
func NewModelBucket(name string) ModelBucket {
	if !isBucketName(name) {
		panic(fmt.Sprintf("illegal bucket: %s", name))
	}
	return ModelBucket{
		name:   name,
		prefix: append([]byte(name), ':'),
	}
}

// DBKey is the full key we store in the db, including prefix. We copy into a
// new array rather than use append, as we don't want consecutive calls to
// overwrite the same byte array.
func (b ModelBucket) DBKey(key []byte) []byte {
	l := len(b.prefix)
	out := make([]byte, l+len(key))
	copy(out, b.prefix)
	copy(out[l:], key)
	return out
}

// One loads the model stored under the given key into dest. It returns an
// ErrNotFound wrapped error if there is no value under that key.
func (b ModelBucket) One(db covenant.ReadOnlyKVStore, key []byte, dest Model) error {
	raw := db.Get(b.DBKey(key))
	if raw == nil {
		return errors.Wrapf(errors.ErrNotFound, "%s: %X", b.name, key)
	}
	if err := cdc.UnmarshalBinaryBare(raw, dest); err != nil {
		return errors.Wrapf(err, "cannot unmarshal %s model", b.name)
	}
	return nil
}

// Has returns true if a value is stored under the given key.
func (b ModelBucket) Has(db covenant.ReadOnlyKVStore, key []byte) bool {
	return db.Has(b.DBKey(key))
}

// Put validates the model and stores it under the given key.
func (b ModelBucket) Put(db covenant.KVStore, key []byte, m Model) error {
	if err := m.Validate(); err != nil {
		return errors.Wrapf(err, "invalid %s model", b.name)
	}
	raw, err := cdc.MarshalBinaryBare(m)
	if err != nil {
		return errors.Wrapf(err, "cannot marshal %s model", b.name)
	}
	db.Set(b.DBKey(key), raw)
	return nil
}

// Delete removes the value stored under the given key. Deleting a
// non-existing key is a noop.
func (b ModelBucket) Delete(db covenant.KVStore, key []byte) error {
	db.Delete(b.DBKey(key))
	return nil
}
