package coin

import (
	"fmt"
	"regexp"

	"github.com/covenant-labs/covenant/errors"
)

// IsCC is the RegExp to ensure valid currency codes
var IsCC = regexp.MustCompile(`^[A-Z]{3,4}$`).MatchString

const (
	// MaxAmount is the largest amount we accept
	MaxAmount int64 = 999999999999999 // 10^15-1
	// MinAmount is the lowest amount we accept
	MinAmount = -MaxAmount
)

// Coin is a fixed amount of indivisible base units of one currency. Unlike
// floating point representations it is safe to compare for equality and all
// arithmetic is overflow checked.
type Coin struct {
	Amount int64  `json:"amount"`
	Ticker string `json:"ticker"`
}

// NewCoin creates a new coin object.
func NewCoin(amount int64, ticker string) Coin {
	return Coin{
		Amount: amount,
		Ticker: ticker,
	}
}

// NewCoinp returns a pointer to a new coin.
func NewCoinp(amount int64, ticker string) *Coin {
	c := NewCoin(amount, ticker)
	return &c
}

// ID returns a coin ticker name.
func (c Coin) ID() string {
	return c.Ticker
}

// Add combines two coins. Returns an error if they are of different
// currencies or if the combination would cause an overflow.
func (c Coin) Add(o Coin) (Coin, error) {
	// If one of the values is zero, use the ticker of the other one, so
	// that a zero value coin with no ticker can be combined with any
	// currency.
	if c.Ticker == "" && c.Amount == 0 {
		c.Ticker = o.Ticker
	}
	if o.Ticker == "" && o.Amount == 0 {
		o.Ticker = c.Ticker
	}
	if !c.SameType(o) {
		return Coin{}, errors.Wrapf(errors.ErrAmount, "adding %s to %s", o.Ticker, c.Ticker)
	}

	amount, err := add64(c.Amount, o.Amount)
	if err != nil {
		return Coin{}, err
	}
	res := Coin{Ticker: c.Ticker, Amount: amount}
	return res, res.Validate()
}

// Subtract removes the amount of the other coin from this one. Returns an
// error on a currency mismatch or when the result is out of bounds.
func (c Coin) Subtract(o Coin) (Coin, error) {
	return c.Add(o.Negative())
}

// Negative returns the opposite coin: (c.Amount = -c.Amount).
func (c Coin) Negative() Coin {
	return Coin{
		Ticker: c.Ticker,
		Amount: -1 * c.Amount,
	}
}

// Multiply returns the result of a coin value multiplication. This method
// can fail if the result would overflow the maximum coin value.
func (c Coin) Multiply(times int64) (Coin, error) {
	amount, err := mul64(c.Amount, times)
	if err != nil {
		return Coin{}, err
	}
	res := Coin{Ticker: c.Ticker, Amount: amount}
	return res, res.Validate()
}

// Divide splits the value of a coin into the given amount of pieces and
// returns a single piece together with the leftover that cannot be evenly
// distributed. For example dividing 7 into 2 pieces results in a single
// piece of 3 and a leftover of 1.
//   7 = 3 x 2 + 1
func (c Coin) Divide(pieces int64) (Coin, Coin, error) {
	// This is an invalid use of the method.
	if pieces <= 0 {
		zero := Coin{Ticker: c.Ticker}
		return zero, zero, errors.Wrap(errors.ErrInput, "pieces must be greater than zero")
	}

	one := Coin{
		Ticker: c.Ticker,
		Amount: c.Amount / pieces,
	}
	rest := Coin{
		Ticker: c.Ticker,
		Amount: c.Amount % pieces,
	}
	return one, rest, nil
}

// Compare will check values of two coins, without inspecting the currency
// code. It is up to the caller to determine if they want to check this. It
// returns -1, 0 or 1 depending on whether c is smaller, equal or greater
// than o.
func (c Coin) Compare(o Coin) int {
	switch {
	case c.Amount < o.Amount:
		return -1
	case c.Amount > o.Amount:
		return 1
	default:
		return 0
	}
}

// Equals returns true if all fields are identical.
func (c Coin) Equals(o Coin) bool {
	return c.Ticker == o.Ticker && c.Amount == o.Amount
}

// IsZero returns true if the amount is zero.
func (c Coin) IsZero() bool {
	return c.Amount == 0
}

// IsPositive returns true if the amount is greater than zero.
func (c Coin) IsPositive() bool {
	return c.Amount > 0
}

// IsNonNegative returns true if the amount is zero or higher.
func (c Coin) IsNonNegative() bool {
	return c.Amount >= 0
}

// IsGTE returns true if the amount is at least as high as the other. Note
// that it panics on a currency mismatch, after a SameType check is expected.
func (c Coin) IsGTE(o Coin) bool {
	if !c.SameType(o) {
		panic("coin currency mismatch")
	}
	return c.Amount >= o.Amount
}

// SameType returns true if both coins use the same ticker.
func (c Coin) SameType(o Coin) bool {
	return c.Ticker == o.Ticker
}

// Clone provides an independent copy of a coin pointer.
func (c *Coin) Clone() *Coin {
	if c == nil {
		return nil
	}
	res := *c
	return &res
}

// Validate ensures that the coin is in the valid range and the currency code
// is well formed.
func (c Coin) Validate() error {
	if !IsCC(c.Ticker) {
		return errors.Wrapf(errors.ErrAmount, "invalid currency: %s", c.Ticker)
	}
	if c.Amount < MinAmount || c.Amount > MaxAmount {
		return errors.Wrap(errors.ErrOverflow, "amount out of range")
	}
	return nil
}

func (c Coin) String() string {
	return fmt.Sprintf("%d %s", c.Amount, c.Ticker)
}

// add64 adds two int64 numbers. If the result overflows the int64 size the
// ErrOverflow is returned.
func add64(a, b int64) (int64, error) {
	c := a + b
	if b > 0 && c < a {
		return 0, errors.Wrap(errors.ErrOverflow, "addition")
	}
	if b < 0 && c > a {
		return 0, errors.Wrap(errors.ErrOverflow, "addition")
	}
	return c, nil
}

// mul64 multiplies two int64 numbers. If the result overflows the int64 size
// the ErrOverflow is returned.
func mul64(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	c := a * b
	if c/a != b {
		return c, errors.Wrap(errors.ErrOverflow, "multiplication")
	}
	return c, nil
}
