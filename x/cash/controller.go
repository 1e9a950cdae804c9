package cash

import (
	"github.com/covenant-labs/covenant"
	"github.com/covenant-labs/covenant/coin"
	"github.com/covenant-labs/covenant/errors"
)

// CoinMover is the capability other extensions require to transfer value.
type CoinMover interface {
	// MoveCoins removes the amount from the source wallet and adds it to
	// the destination wallet. It fails without any change when the
	// source does not hold a sufficient balance.
	MoveCoins(db covenant.KVStore, src covenant.Address, dest covenant.Address, amount coin.Coin) error
}

// Balancer is the capability to report the current funds of an account.
type Balancer interface {
	Balance(db covenant.ReadOnlyKVStore, addr covenant.Address) (coin.Coins, error)
}

// CoinMinter is the capability to create new coins out of thin air. It is
// used during genesis initialization only.
type CoinMinter interface {
	CoinMint(db covenant.KVStore, dest covenant.Address, amount coin.Coin) error
}

// Controller is the full interface exposed by this extension.
type Controller interface {
	CoinMover
	Balancer
	CoinMinter
}

// CashController implements the Controller interface on top of the wallet
// bucket.
type CashController struct {
	bucket WalletBucket
}

var _ Controller = CashController{}

// NewController returns a controller using the given bucket as wallet
// storage.
func NewController(bucket WalletBucket) CashController {
	return CashController{bucket: bucket}
}

// MoveCoins moves the given amount from src to dest. If src doesn't exist,
// or doesn't have sufficient coins, it fails.
func (c CashController) MoveCoins(db covenant.KVStore, src covenant.Address, dest covenant.Address, amount coin.Coin) error {
	if !amount.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "non-positive transfer: %v", amount)
	}

	sender, err := c.bucket.Wallet(db, src)
	if err != nil {
		return err
	}
	if sender == nil {
		return errors.Wrapf(errors.ErrEmpty, "empty account %s", src)
	}
	if !sender.Coins.Contains(amount) {
		return errors.Wrapf(errors.ErrInsufficientAmount, "holds %s, needs %s", sender.Coins.Coin(amount.Ticker), amount)
	}

	recipient, err := c.bucket.GetOrCreate(db, dest)
	if err != nil {
		return err
	}

	if sender.Coins, err = sender.Coins.Subtract(amount); err != nil {
		return err
	}
	if recipient.Coins, err = recipient.Coins.Add(amount); err != nil {
		return err
	}

	if err := c.bucket.Save(db, sender); err != nil {
		return err
	}
	return c.bucket.Save(db, recipient)
}

// Balance returns the coins held by the given account. An account that does
// not exist reports an empty balance.
func (c CashController) Balance(db covenant.ReadOnlyKVStore, addr covenant.Address) (coin.Coins, error) {
	w, err := c.bucket.Wallet(db, addr)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, nil
	}
	return w.Coins, nil
}

// CoinMint attempts to add the given amount of coins to the destination
// address.
func (c CashController) CoinMint(db covenant.KVStore, dest covenant.Address, amount coin.Coin) error {
	recipient, err := c.bucket.GetOrCreate(db, dest)
	if err != nil {
		return err
	}
	if recipient.Coins, err = recipient.Coins.Add(amount); err != nil {
		return err
	}
	return c.bucket.Save(db, recipient)
}
