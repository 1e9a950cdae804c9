package pact

import (
	"github.com/covenant-labs/covenant"
	"github.com/covenant-labs/covenant/coin"
	"github.com/covenant-labs/covenant/errors"
	"github.com/covenant-labs/covenant/x/cash"
)

// Initializer fulfils the covenant.Initializer interface to load data from
// the genesis file.
type Initializer struct {
	Minter cash.CoinMinter
}

var _ covenant.Initializer = (*Initializer)(nil)

// FromGenesis will parse initial pacts from the genesis and save them to
// the database. The goodwill amount of each pact is minted onto its
// account.
func (i *Initializer) FromGenesis(opts covenant.Options, db covenant.KVStore) error {
	type genesisPact struct {
		Owner            covenant.Address      `json:"owner"`
		Participant      covenant.Address      `json:"participant"`
		Amount           coin.Coin             `json:"amount"`
		Reserve          coin.Coin             `json:"reserve"`
		CreatedAt        covenant.UnixTime     `json:"created_at"`
		ParticipantDelay covenant.UnixDuration `json:"participant_delay"`
		OwnerDelay       covenant.UnixDuration `json:"owner_delay"`
	}
	var pacts []genesisPact
	if err := opts.ReadOptions("pact", &pacts); err != nil {
		return err
	}

	bucket := NewBucket()
	for n, g := range pacts {
		key, err := pactSeq.NextVal(db)
		if err != nil {
			return err
		}
		zero := coin.NewCoin(0, g.Reserve.Ticker)
		p := &Pact{
			Owner:              g.Owner,
			Participant:        g.Participant,
			OwnerBalance:       Balance{Total: zero, Claimed: zero},
			ParticipantBalance: Balance{Total: g.Amount, Claimed: zero},
			TotalReceived:      g.Amount,
			Goodwill:           g.Amount,
			Reserve:            g.Reserve,
			CreatedAt:          g.CreatedAt,
			ParticipantDelay:   g.ParticipantDelay,
			OwnerDelay:         g.OwnerDelay,
			Address:            Condition(key).Address(),
		}
		if err := bucket.Put(db, key, p); err != nil {
			return errors.Wrapf(err, "pact #%d", n)
		}
		if g.Amount.IsPositive() {
			if err := i.Minter.CoinMint(db, p.Address, g.Amount); err != nil {
				return errors.Wrapf(err, "pact #%d goodwill", n)
			}
		}
	}
	return nil
}
