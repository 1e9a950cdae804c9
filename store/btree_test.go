package store

import (
	"bytes"
	"testing"
)

func TestMemStoreSetGetDelete(t *testing.T) {
	db := MemStore()

	k, v := []byte("france"), []byte("paris")
	if db.Has(k) {
		t.Fatal("empty store must not have the key")
	}
	db.Set(k, v)
	if !db.Has(k) {
		t.Fatal("store must have the key after set")
	}
	if got := db.Get(k); !bytes.Equal(got, v) {
		t.Fatalf("want %q, got %q", v, got)
	}
	db.Delete(k)
	if db.Has(k) {
		t.Fatal("store must not have the key after delete")
	}
	if got := db.Get(k); got != nil {
		t.Fatalf("want nil, got %q", got)
	}
}

func TestCacheWrapWrite(t *testing.T) {
	db := MemStore()
	db.Set([]byte("a"), []byte("1"))

	cache := db.CacheWrap()
	cache.Set([]byte("b"), []byte("2"))
	cache.Delete([]byte("a"))

	// Changes are not visible in the backing store yet.
	if db.Has([]byte("b")) {
		t.Fatal("cached write leaked to the backing store")
	}
	if !db.Has([]byte("a")) {
		t.Fatal("cached delete leaked to the backing store")
	}
	// But they are visible through the cache.
	if !cache.Has([]byte("b")) {
		t.Fatal("cache must expose its own writes")
	}
	if cache.Has([]byte("a")) {
		t.Fatal("cache must expose its own deletes")
	}

	cache.Write()

	if got := db.Get([]byte("b")); !bytes.Equal(got, []byte("2")) {
		t.Fatalf("write must flush the cache, got %q", got)
	}
	if db.Has([]byte("a")) {
		t.Fatal("write must flush deletes as well")
	}
}

func TestCacheWrapDiscard(t *testing.T) {
	db := MemStore()
	db.Set([]byte("a"), []byte("1"))

	cache := db.CacheWrap()
	cache.Set([]byte("b"), []byte("2"))
	cache.Delete([]byte("a"))
	cache.Discard()

	if db.Has([]byte("b")) {
		t.Fatal("discarded write must not reach the backing store")
	}
	if !bytes.Equal(db.Get([]byte("a")), []byte("1")) {
		t.Fatal("discarded delete must not reach the backing store")
	}
}

func TestCacheWrapLayering(t *testing.T) {
	db := MemStore()
	first := db.CacheWrap()
	first.Set([]byte("a"), []byte("1"))

	second := first.CacheWrap()
	second.Set([]byte("a"), []byte("2"))

	if got := first.Get([]byte("a")); !bytes.Equal(got, []byte("1")) {
		t.Fatalf("inner cache must shadow the outer one, got %q", got)
	}
	second.Write()
	if got := first.Get([]byte("a")); !bytes.Equal(got, []byte("2")) {
		t.Fatalf("inner write must land in the outer cache, got %q", got)
	}
	if db.Has([]byte("a")) {
		t.Fatal("nothing may reach the store before the outer write")
	}
}
