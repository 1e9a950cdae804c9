package orm

import (
	"bytes"
	"testing"

	"github.com/covenant-labs/covenant/errors"
	"github.com/covenant-labs/covenant/store"
)

type counter struct {
	Count int64
}

func (c *counter) Validate() error {
	if c.Count < 0 {
		return errors.Wrap(errors.ErrState, "negative count")
	}
	return nil
}

func TestBucketPutOneDelete(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts")

	key := []byte("mykey")
	if err := b.Put(db, key, &counter{Count: 55}); err != nil {
		t.Fatalf("cannot save: %+v", err)
	}
	if !b.Has(db, key) {
		t.Fatal("saved model not found")
	}

	var loaded counter
	if err := b.One(db, key, &loaded); err != nil {
		t.Fatalf("cannot load: %+v", err)
	}
	if loaded.Count != 55 {
		t.Fatalf("unexpected value loaded: %d", loaded.Count)
	}

	if err := b.Delete(db, key); err != nil {
		t.Fatalf("cannot delete: %+v", err)
	}
	if err := b.One(db, key, &loaded); !errors.ErrNotFound.Is(err) {
		t.Fatalf("want not found after delete, got %+v", err)
	}
}

func TestBucketRejectsInvalidModel(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts")

	if err := b.Put(db, []byte("mykey"), &counter{Count: -1}); !errors.ErrState.Is(err) {
		t.Fatalf("invalid model must not be saved, got %+v", err)
	}
}

func TestBucketPrefixesKeys(t *testing.T) {
	db := store.MemStore()
	a := NewModelBucket("aaa")
	b := NewModelBucket("bbb")

	key := []byte("shared")
	if err := a.Put(db, key, &counter{Count: 1}); err != nil {
		t.Fatalf("cannot save: %+v", err)
	}
	if b.Has(db, key) {
		t.Fatal("buckets must not share key space")
	}
}

func TestSequence(t *testing.T) {
	db := store.MemStore()
	seq := NewSequence("cnts", "id")

	if seq.Latest(db) != 0 {
		t.Fatal("fresh sequence must start at zero")
	}
	first, err := seq.NextVal(db)
	if err != nil {
		t.Fatalf("cannot increment: %+v", err)
	}
	second, err := seq.NextVal(db)
	if err != nil {
		t.Fatalf("cannot increment: %+v", err)
	}
	if bytes.Equal(first, second) {
		t.Fatal("sequence must produce unique keys")
	}
	if got := seq.Latest(db); got != 2 {
		t.Fatalf("want 2, got %d", got)
	}
	if want := encodeSequence(2); !bytes.Equal(second, want) {
		t.Fatalf("want %X, got %X", want, second)
	}
}
