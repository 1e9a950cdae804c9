package x

import (
	"context"
	"testing"

	"github.com/covenant-labs/covenant/covtest"
)

func TestChainAuth(t *testing.T) {
	a := covtest.NewCondition()
	b := covtest.NewCondition()
	other := covtest.NewCondition()

	auth := ChainAuth(
		&covtest.Auth{Signer: a},
		&covtest.Auth{Signer: b},
	)
	ctx := context.Background()

	conds := auth.GetConditions(ctx)
	if len(conds) != 2 {
		t.Fatalf("want both conditions, got %v", conds)
	}
	if !auth.HasAddress(ctx, a.Address()) {
		t.Fatal("first authenticator must be consulted")
	}
	if !auth.HasAddress(ctx, b.Address()) {
		t.Fatal("second authenticator must be consulted")
	}
	if auth.HasAddress(ctx, other.Address()) {
		t.Fatal("unknown address must not authenticate")
	}

	addrs := GetAddresses(ctx, auth)
	if len(addrs) != 2 || !addrs[0].Equals(a.Address()) || !addrs[1].Equals(b.Address()) {
		t.Fatalf("unexpected addresses: %v", addrs)
	}

	if got := MainSigner(ctx, auth); !got.Equals(a) {
		t.Fatalf("want the first condition as main signer, got %s", got)
	}
}

func TestMainSignerEmpty(t *testing.T) {
	auth := ChainAuth(&covtest.Auth{})
	if got := MainSigner(context.Background(), auth); got != nil {
		t.Fatalf("want nil without signers, got %s", got)
	}
}
