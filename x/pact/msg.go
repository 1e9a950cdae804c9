package pact

import (
	"github.com/covenant-labs/covenant"
	"github.com/covenant-labs/covenant/coin"
	"github.com/covenant-labs/covenant/errors"
)

const (
	pathCreateMsg  = "pact/create"
	pathVoteMsg    = "pact/vote"
	pathClaimMsg   = "pact/claim"
	pathDepositMsg = "pact/deposit"

	maxMemoSize int = 128
)

var _ covenant.Msg = (*CreateMsg)(nil)
var _ covenant.Msg = (*VoteMsg)(nil)
var _ covenant.Msg = (*ClaimMsg)(nil)
var _ covenant.Msg = (*DepositMsg)(nil)

// CreateMsg starts a new pact between the main signer (owner) and the given
// participant. Amount is the initial goodwill deposit taken from the owner's
// wallet.
type CreateMsg struct {
	Participant      covenant.Address
	Amount           coin.Coin
	Reserve          coin.Coin
	ParticipantDelay covenant.UnixDuration
	OwnerDelay       covenant.UnixDuration
	Memo             string
}

func (CreateMsg) Path() string {
	return pathCreateMsg
}

// Validate makes sure that this is sensible.
func (m *CreateMsg) Validate() error {
	if m.Participant == nil {
		return errors.Wrap(errors.ErrEmpty, "participant")
	}
	if err := m.Participant.Validate(); err != nil {
		return errors.Wrap(err, "participant")
	}
	if !m.Reserve.IsPositive() {
		return errors.Wrap(errors.ErrAmount, "reserve must be positive")
	}
	if err := m.Reserve.Validate(); err != nil {
		return errors.Wrap(err, "reserve")
	}
	if !m.Amount.IsNonNegative() {
		return errors.Wrap(errors.ErrAmount, "negative amount")
	}
	if !m.Amount.SameType(m.Reserve) {
		return errors.Wrap(errors.ErrAmount, "amount and reserve currency mismatch")
	}
	if m.ParticipantDelay <= 0 || m.OwnerDelay <= 0 {
		return errors.Wrap(errors.ErrInput, "delays must be positive")
	}
	if m.ParticipantDelay >= m.OwnerDelay {
		return errors.Wrap(errors.ErrInput, "participant delay must be shorter than owner delay")
	}
	if len(m.Memo) > maxMemoSize {
		return errors.Wrapf(errors.ErrInput, "memo %s", m.Memo)
	}
	return nil
}

// VoteMsg records the caller's current choice of disposition. It may be
// cast any number of times while the pact is unresolved, each cast
// overwrites the previous one.
type VoteMsg struct {
	PactID []byte
	Choice Vote
}

func (VoteMsg) Path() string {
	return pathVoteMsg
}

// Validate makes sure that this is sensible.
func (m *VoteMsg) Validate() error {
	if err := validatePactID(m.PactID); err != nil {
		return err
	}
	return m.Choice.Validate()
}

// ClaimMsg requests a payout. On a resolved pact it pays the caller's
// outstanding entitlement, otherwise it attempts the time-gated fallback.
type ClaimMsg struct {
	PactID []byte
}

func (ClaimMsg) Path() string {
	return pathClaimMsg
}

// Validate makes sure that this is sensible.
func (m *ClaimMsg) Validate() error {
	return validatePactID(m.PactID)
}

// DepositMsg adds funds to the pact's account. Any sender may deposit at
// any time.
type DepositMsg struct {
	PactID []byte
	Amount coin.Coin
}

func (DepositMsg) Path() string {
	return pathDepositMsg
}

// Validate makes sure that this is sensible.
func (m *DepositMsg) Validate() error {
	if err := validatePactID(m.PactID); err != nil {
		return err
	}
	if !m.Amount.IsPositive() {
		return errors.Wrap(errors.ErrAmount, "deposit must be positive")
	}
	return m.Amount.Validate()
}

func validatePactID(id []byte) error {
	if len(id) == 0 {
		return errors.Wrap(errors.ErrEmpty, "pact id")
	}
	if len(id) != 8 {
		return errors.Wrapf(errors.ErrInput, "pact id: %X", id)
	}
	return nil
}
