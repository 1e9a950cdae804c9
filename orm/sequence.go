package orm

import (
	"encoding/binary"

	"github.com/covenant-labs/covenant"
)

// Sequence maintains a monotonically increasing counter in the database.
type Sequence struct {
	id []byte
}

// NewSequence returns a sequence counter scoped by bucket and name.
func NewSequence(bucket, name string) Sequence {
	id := "_s." + bucket + ":" + name
	return Sequence{
		id: []byte(id),
	}
}

// NextVal increments the sequence and returns its state as an 8 byte big
// endian encoded key.
func (s Sequence) NextVal(db covenant.KVStore) ([]byte, error) {
	curr := s.curVal(db)
	bz := encodeSequence(curr + 1)
	db.Set(s.id, bz)
	return bz, nil
}

// Latest returns the last value generated by this sequence. Zero means no
// value was generated yet.
func (s Sequence) Latest(db covenant.ReadOnlyKVStore) int64 {
	return s.curVal(db)
}

func (s Sequence) curVal(db covenant.ReadOnlyKVStore) int64 {
	raw := db.Get(s.id)
	if raw == nil {
		return 0
	}
	return decodeSequence(raw)
}

func encodeSequence(val int64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, uint64(val))
	return bz
}

func decodeSequence(bz []byte) int64 {
	return int64(binary.BigEndian.Uint64(bz))
}
