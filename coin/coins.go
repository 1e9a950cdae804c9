package coin

import (
	"sort"
	"strings"

	"github.com/covenant-labs/covenant/errors"
)

// Coins is a set of coins, one per currency, sorted by ticker and with all
// zero values removed.
type Coins []*Coin

// CombineCoins creates a Coins set out of the given coins, making sure they
// are sorted and duplicates of the same currency combined.
func CombineCoins(cs ...Coin) (Coins, error) {
	var res Coins
	for _, c := range cs {
		next, err := res.Add(c)
		if err != nil {
			return nil, err
		}
		res = next
	}
	return res, nil
}

// Clone returns a deep copy of this set.
func (cs Coins) Clone() Coins {
	res := make(Coins, len(cs))
	for i, c := range cs {
		res[i] = c.Clone()
	}
	return res
}

// Add returns a new set with the given coin folded in. The receiver is not
// modified. Zero results are removed from the set.
func (cs Coins) Add(c Coin) (Coins, error) {
	if c.IsZero() {
		return cs, nil
	}
	if !IsCC(c.Ticker) {
		return nil, errors.Wrapf(errors.ErrAmount, "invalid currency: %s", c.Ticker)
	}

	res := cs.Clone()
	for i, have := range res {
		if have.Ticker == c.Ticker {
			sum, err := have.Add(c)
			if err != nil {
				return nil, err
			}
			if sum.IsZero() {
				return append(res[:i], res[i+1:]...), nil
			}
			res[i] = &sum
			return res, nil
		}
	}
	res = append(res, &c)
	sort.Slice(res, func(i, j int) bool {
		return res[i].Ticker < res[j].Ticker
	})
	return res, nil
}

// Subtract returns a new set with the given coin removed. The result may
// contain negative amounts.
func (cs Coins) Subtract(c Coin) (Coins, error) {
	return cs.Add(c.Negative())
}

// Coin returns the coin of the given currency that is stored in this set. A
// zero value coin is returned when the currency is not present.
func (cs Coins) Coin(ticker string) Coin {
	for _, c := range cs {
		if c.Ticker == ticker {
			return *c
		}
	}
	return Coin{Ticker: ticker}
}

// Contains returns true if this set holds at least the given amount.
func (cs Coins) Contains(c Coin) bool {
	if c.IsZero() {
		return true
	}
	return cs.Coin(c.Ticker).Amount >= c.Amount
}

// IsPositive returns true if this set holds at least one coin and all coins
// are positive.
func (cs Coins) IsPositive() bool {
	if len(cs) == 0 {
		return false
	}
	return cs.IsNonNegative()
}

// IsNonNegative returns true if no coin in this set is negative.
func (cs Coins) IsNonNegative() bool {
	for _, c := range cs {
		if !c.IsNonNegative() {
			return false
		}
	}
	return true
}

// Equals returns true if both sets contain the same coins.
func (cs Coins) Equals(o Coins) bool {
	if len(cs) != len(o) {
		return false
	}
	for i := range cs {
		if !cs[i].Equals(*o[i]) {
			return false
		}
	}
	return true
}

// Validate ensures the set is sorted, has no duplicates and all coins are
// valid.
func (cs Coins) Validate() error {
	last := ""
	for _, c := range cs {
		if err := c.Validate(); err != nil {
			return err
		}
		if c.IsZero() {
			return errors.Wrap(errors.ErrState, "zero coin in a set")
		}
		if c.Ticker <= last {
			return errors.Wrap(errors.ErrState, "coins not sorted by ticker")
		}
		last = c.Ticker
	}
	return nil
}

func (cs Coins) String() string {
	chunks := make([]string, len(cs))
	for i, c := range cs {
		chunks[i] = c.String()
	}
	return strings.Join(chunks, ", ")
}
