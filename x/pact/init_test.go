package pact

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/covenant-labs/covenant"
	"github.com/covenant-labs/covenant/coin"
	"github.com/covenant-labs/covenant/covtest"
	"github.com/covenant-labs/covenant/covtest/assert"
	"github.com/covenant-labs/covenant/store"
	"github.com/covenant-labs/covenant/x/cash"
)

func TestGenesisInitializer(t *testing.T) {
	owner := covtest.NewCondition().Address()
	participant := covtest.NewCondition().Address()

	raw := fmt.Sprintf(`[
		{
			"owner": %q,
			"participant": %q,
			"amount": {"amount": 100, "ticker": "IOV"},
			"reserve": {"amount": 10, "ticker": "IOV"},
			"created_at": 1579514400,
			"participant_delay": "120h",
			"owner_delay": "240h"
		}
	]`, owner.String(), participant.String())
	opts := covenant.Options{"pact": json.RawMessage(raw)}

	db := store.MemStore()
	ctrl := cash.NewController(cash.NewBucket())
	ini := Initializer{Minter: ctrl}
	assert.Nil(t, ini.FromGenesis(opts, db))

	bucket := NewBucket()
	var p Pact
	assert.Nil(t, bucket.One(db, covtest.SequenceID(1), &p))
	assert.Equal(t, owner, p.Owner)
	assert.Equal(t, participant, p.Participant)
	assert.Equal(t, coin.NewCoin(100, "IOV"), p.Goodwill)
	assert.Equal(t, covenant.UnixTime(1579514400), p.CreatedAt)
	assert.Equal(t, covenant.UnixDuration(0), p.TimeToParticipantClaim(p.CreatedAt.Add(p.ParticipantDelay.Duration())))

	// The goodwill was minted onto the pact account.
	funds, err := ctrl.Balance(db, p.Address)
	assert.Nil(t, err)
	assert.Equal(t, coin.NewCoin(100, "IOV"), funds.Coin("IOV"))
}

func TestGenesisInitializerEmpty(t *testing.T) {
	db := store.MemStore()
	ctrl := cash.NewController(cash.NewBucket())
	ini := Initializer{Minter: ctrl}
	assert.Nil(t, ini.FromGenesis(covenant.Options{}, db))
	assert.Equal(t, false, NewBucket().Has(db, covtest.SequenceID(1)))
}
