package coin

import (
	"testing"

	"github.com/covenant-labs/covenant/errors"
)

func TestCoinAdd(t *testing.T) {
	cases := map[string]struct {
		a, b    Coin
		want    Coin
		wantErr *errors.Error
	}{
		"same currency": {
			a:    NewCoin(100, "GAS"),
			b:    NewCoin(1, "GAS"),
			want: NewCoin(101, "GAS"),
		},
		"zero value with no ticker adopts the other currency": {
			a:    NewCoin(0, ""),
			b:    NewCoin(5, "GAS"),
			want: NewCoin(5, "GAS"),
		},
		"negative amounts are allowed": {
			a:    NewCoin(5, "GAS"),
			b:    NewCoin(-7, "GAS"),
			want: NewCoin(-2, "GAS"),
		},
		"currency mismatch": {
			a:       NewCoin(1, "GAS"),
			b:       NewCoin(1, "DOGE"),
			wantErr: errors.ErrAmount,
		},
		"result out of range": {
			a:       NewCoin(MaxAmount, "GAS"),
			b:       NewCoin(1, "GAS"),
			wantErr: errors.ErrOverflow,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := tc.a.Add(tc.b)
			if tc.wantErr != nil {
				if !tc.wantErr.Is(err) {
					t.Fatalf("want %v error, got %+v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %+v", err)
			}
			if !got.Equals(tc.want) {
				t.Fatalf("want %v, got %v", tc.want, got)
			}
		})
	}
}

func TestCoinSubtractUnderflow(t *testing.T) {
	a := NewCoin(MinAmount, "GAS")
	if _, err := a.Subtract(NewCoin(1, "GAS")); !errors.ErrOverflow.Is(err) {
		t.Fatalf("subtraction below the minimum must fail, got %+v", err)
	}
}

func TestCoinDivide(t *testing.T) {
	cases := map[string]struct {
		total    Coin
		pieces   int64
		wantOne  Coin
		wantRest Coin
		wantErr  *errors.Error
	}{
		"even split": {
			total:    NewCoin(80, "GAS"),
			pieces:   2,
			wantOne:  NewCoin(40, "GAS"),
			wantRest: NewCoin(0, "GAS"),
		},
		"odd split": {
			total:    NewCoin(81, "GAS"),
			pieces:   2,
			wantOne:  NewCoin(40, "GAS"),
			wantRest: NewCoin(1, "GAS"),
		},
		"split of one": {
			total:    NewCoin(1, "GAS"),
			pieces:   2,
			wantOne:  NewCoin(0, "GAS"),
			wantRest: NewCoin(1, "GAS"),
		},
		"zero pieces": {
			total:   NewCoin(80, "GAS"),
			pieces:  0,
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			one, rest, err := tc.total.Divide(tc.pieces)
			if tc.wantErr != nil {
				if !tc.wantErr.Is(err) {
					t.Fatalf("want %v error, got %+v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %+v", err)
			}
			if !one.Equals(tc.wantOne) {
				t.Fatalf("want one %v, got %v", tc.wantOne, one)
			}
			if !rest.Equals(tc.wantRest) {
				t.Fatalf("want rest %v, got %v", tc.wantRest, rest)
			}
		})
	}
}

func TestCoinMultiplyOverflow(t *testing.T) {
	c := NewCoin(MaxAmount, "GAS")
	if _, err := c.Multiply(3); !errors.ErrOverflow.Is(err) {
		t.Fatalf("multiplication beyond the maximum must fail, got %+v", err)
	}
}

func TestCoinValidate(t *testing.T) {
	if err := NewCoin(1, "GAS").Validate(); err != nil {
		t.Fatalf("valid coin: %+v", err)
	}
	if err := NewCoin(1, "gas").Validate(); !errors.ErrAmount.Is(err) {
		t.Fatalf("lowercase ticker must be rejected, got %+v", err)
	}
	if err := NewCoin(MaxAmount+1, "GAS").Validate(); !errors.ErrOverflow.Is(err) {
		t.Fatalf("out of range amount must be rejected, got %+v", err)
	}
}

func TestCombineCoins(t *testing.T) {
	cs, err := CombineCoins(
		NewCoin(5, "GAS"),
		NewCoin(2, "ATOM"),
		NewCoin(3, "GAS"),
	)
	if err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}
	want := Coins{NewCoinp(2, "ATOM"), NewCoinp(8, "GAS")}
	if !cs.Equals(want) {
		t.Fatalf("want %v, got %v", want, cs)
	}
	if err := cs.Validate(); err != nil {
		t.Fatalf("combined set must be valid: %+v", err)
	}
}

func TestCoinsAddRemovesZero(t *testing.T) {
	cs, err := CombineCoins(NewCoin(5, "GAS"))
	if err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}
	cs, err = cs.Subtract(NewCoin(5, "GAS"))
	if err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}
	if len(cs) != 0 {
		t.Fatalf("zero coins must be dropped from the set: %v", cs)
	}
}

func TestCoinIsGTE(t *testing.T) {
	if !NewCoin(5, "GAS").IsGTE(NewCoin(5, "GAS")) {
		t.Fatal("equal amounts must compare as greater or equal")
	}
	if !NewCoin(6, "GAS").IsGTE(NewCoin(5, "GAS")) {
		t.Fatal("larger amount must compare as greater or equal")
	}
	if NewCoin(4, "GAS").IsGTE(NewCoin(5, "GAS")) {
		t.Fatal("smaller amount must not compare as greater or equal")
	}

	defer func() {
		if recover() == nil {
			t.Fatal("currency mismatch must panic")
		}
	}()
	NewCoin(5, "GAS").IsGTE(NewCoin(5, "DOGE"))
}
