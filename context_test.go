package covenant

import (
	stdcontext "context"
	"testing"
)

func TestHeight(t *testing.T) {
	ctx := stdcontext.Background()
	if _, ok := GetHeight(ctx); ok {
		t.Fatal("fresh context must not carry a height")
	}

	ctx = WithHeight(ctx, 7)
	if got, ok := GetHeight(ctx); !ok || got != 7 {
		t.Fatalf("want height 7, got %d (%v)", got, ok)
	}

	defer func() {
		if recover() == nil {
			t.Fatal("setting the height twice must panic")
		}
	}()
	WithHeight(ctx, 8)
}

func TestBlockTimeMissing(t *testing.T) {
	if _, ok := BlockTime(stdcontext.Background()); ok {
		t.Fatal("fresh context must not carry a block time")
	}
	if _, err := BlockTimeErr(stdcontext.Background()); err == nil {
		t.Fatal("want an error without a block time")
	}
}
