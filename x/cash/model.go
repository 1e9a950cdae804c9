package cash

import (
	"github.com/covenant-labs/covenant"
	"github.com/covenant-labs/covenant/coin"
	"github.com/covenant-labs/covenant/errors"
	"github.com/covenant-labs/covenant/orm"
)

// Wallet is the actual container for one account's coins.
type Wallet struct {
	Address covenant.Address
	Coins   coin.Coins
}

var _ orm.Model = (*Wallet)(nil)

// Validate ensures the wallet is well formed.
func (w *Wallet) Validate() error {
	if err := w.Address.Validate(); err != nil {
		return errors.Wrap(err, "address")
	}
	return w.Coins.Validate()
}

// NewWallet creates an empty wallet for the given address.
func NewWallet(addr covenant.Address) *Wallet {
	return &Wallet{Address: addr}
}

// WalletWith creates a wallet holding the given coins.
func WalletWith(addr covenant.Address, coins ...coin.Coin) (*Wallet, error) {
	set, err := coin.CombineCoins(coins...)
	if err != nil {
		return nil, err
	}
	return &Wallet{
		Address: addr,
		Coins:   set,
	}, nil
}

// WalletBucket is a type-safe bucket of wallets keyed by account address.
type WalletBucket struct {
	orm.ModelBucket
}

// NewBucket creates a bucket for storing wallet state.
func NewBucket() WalletBucket {
	return WalletBucket{
		ModelBucket: orm.NewModelBucket("cash"),
	}
}

// Wallet loads the wallet of the given address. A nil wallet and no error
// is returned when the account does not exist.
func (b WalletBucket) Wallet(db covenant.ReadOnlyKVStore, addr covenant.Address) (*Wallet, error) {
	var w Wallet
	switch err := b.One(db, addr, &w); {
	case err == nil:
		return &w, nil
	case errors.ErrNotFound.Is(err):
		return nil, nil
	default:
		return nil, err
	}
}

// GetOrCreate loads the wallet of the given address, creating an empty one
// if it does not exist yet.
func (b WalletBucket) GetOrCreate(db covenant.ReadOnlyKVStore, addr covenant.Address) (*Wallet, error) {
	w, err := b.Wallet(db, addr)
	if err != nil {
		return nil, err
	}
	if w == nil {
		w = NewWallet(addr)
	}
	return w, nil
}

// Save persists the wallet under its own address.
func (b WalletBucket) Save(db covenant.KVStore, w *Wallet) error {
	return b.Put(db, w.Address, w)
}
