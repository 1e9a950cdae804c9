package store

import (
	"bytes"
	"testing"
)

func TestNonAtomicBatch(t *testing.T) {
	out := MemStore()
	out.Set([]byte("gone"), []byte("soon"))

	batch := NewNonAtomicBatch(out)
	batch.Set([]byte("a"), []byte("1"))
	batch.Set([]byte("b"), []byte("2"))
	batch.Delete([]byte("gone"))

	// Nothing is applied before Write.
	if out.Has([]byte("a")) {
		t.Fatal("batched set must not apply immediately")
	}

	ops := batch.ShowOps()
	if len(ops) != 3 {
		t.Fatalf("want 3 planned ops, got %d", len(ops))
	}
	if !ops[0].IsSetOp() || !bytes.Equal(ops[0].Key(), []byte("a")) {
		t.Fatalf("unexpected first op: %v", ops[0])
	}
	if ops[2].IsSetOp() {
		t.Fatal("last op must be a delete")
	}

	batch.Write()

	if got := out.Get([]byte("b")); !bytes.Equal(got, []byte("2")) {
		t.Fatalf("want batched value, got %q", got)
	}
	if out.Has([]byte("gone")) {
		t.Fatal("batched delete must apply on write")
	}
	if len(batch.ShowOps()) != 0 {
		t.Fatal("write must reset the batch")
	}
}

func TestOpApply(t *testing.T) {
	out := MemStore()
	SetOp([]byte("k"), []byte("v")).Apply(out)
	if got := out.Get([]byte("k")); !bytes.Equal(got, []byte("v")) {
		t.Fatalf("want applied value, got %q", got)
	}
	DelOp([]byte("k")).Apply(out)
	if out.Has([]byte("k")) {
		t.Fatal("delete op must remove the key")
	}
}
