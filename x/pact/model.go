package pact

import (
	"fmt"

	"github.com/covenant-labs/covenant"
	"github.com/covenant-labs/covenant/coin"
	"github.com/covenant-labs/covenant/errors"
	"github.com/covenant-labs/covenant/orm"
)

// Vote is a single party's current choice of disposition. VoteNone is the
// unset sentinel and is never a valid cast vote.
type Vote int32

const (
	VoteNone    Vote = 0
	VoteRefund  Vote = 1
	VoteSplit   Vote = 2
	VotePayFull Vote = 3
)

// Validate returns an error unless this is a castable vote.
func (v Vote) Validate() error {
	switch v {
	case VoteRefund, VoteSplit, VotePayFull:
		return nil
	case VoteNone:
		return errors.Wrap(errors.ErrInput, "vote is required")
	default:
		return errors.Wrapf(errors.ErrInput, "unknown vote: %d", v)
	}
}

func (v Vote) String() string {
	switch v {
	case VoteNone:
		return "none"
	case VoteRefund:
		return "refund"
	case VoteSplit:
		return "split"
	case VotePayFull:
		return "payfull"
	default:
		return fmt.Sprintf("invalid(%d)", int32(v))
	}
}

// Disposition is the consensus outcome. It is set at most once,
// irrevocably, the instant both parties' votes are equal and not VoteNone.
type Disposition int32

const (
	// DispositionRefund sends all available funds to the participant.
	DispositionRefund Disposition = 1
	// DispositionSplit divides available funds evenly, with the
	// participant taking the extra unit on an odd remainder.
	DispositionSplit Disposition = 2
	// DispositionPayFull sends all available funds to the owner.
	DispositionPayFull Disposition = 3
)

// Validate returns an error unless this is one of the closed set of
// dispositions.
func (d Disposition) Validate() error {
	switch d {
	case DispositionRefund, DispositionSplit, DispositionPayFull:
		return nil
	default:
		return errors.Wrapf(errors.ErrState, "unknown disposition: %d", d)
	}
}

func (d Disposition) String() string {
	switch d {
	case DispositionRefund:
		return "refund"
	case DispositionSplit:
		return "split"
	case DispositionPayFull:
		return "payfull"
	default:
		return fmt.Sprintf("invalid(%d)", int32(d))
	}
}

// Balance is one party's entitlement record. Total is the cumulative amount
// the party is owed, Claimed the amount already paid out against it.
// Claimed never exceeds Total and never decreases.
type Balance struct {
	Total   coin.Coin
	Claimed coin.Coin
}

// Claimable returns the part of the entitlement that was not paid out yet.
func (b Balance) Claimable() (coin.Coin, error) {
	return b.Total.Subtract(b.Claimed)
}

// Validate ensures the record is consistent.
func (b Balance) Validate() error {
	if !b.Total.IsNonNegative() {
		return errors.Wrap(errors.ErrAmount, "negative total")
	}
	if !b.Claimed.IsNonNegative() {
		return errors.Wrap(errors.ErrAmount, "negative claimed")
	}
	if !b.Total.SameType(b.Claimed) {
		return errors.Wrap(errors.ErrAmount, "currency mismatch")
	}
	if b.Claimed.Compare(b.Total) > 0 {
		return errors.Wrap(errors.ErrState, "claimed exceeds total")
	}
	return nil
}

// Pact is a two-party escrow instance. Exactly two identities, fixed at
// creation, may vote and be paid: the owner and the participant.
//
// TotalReceived tracks every deposit ever made and does not gate payouts.
// Deposits made after resolution still increase the held balance but are
// not attributed to any entitlement. Such funds cannot be claimed through
// the resolved path. This gap is intentional, do not patch it here without
// a protocol decision.
type Pact struct {
	Owner       covenant.Address
	Participant covenant.Address

	OwnerVote       Vote
	ParticipantVote Vote

	// Resolved flips false to true exactly once and never reverts.
	Resolved    bool
	Disposition Disposition

	OwnerBalance       Balance
	ParticipantBalance Balance

	TotalReceived coin.Coin

	// Goodwill is the initial amount recorded at creation. No operation
	// updates it.
	Goodwill coin.Coin

	// Reserve is withheld from every payout computation so that each
	// party can cover the fee of its own eventual claim.
	Reserve coin.Coin

	CreatedAt        covenant.UnixTime
	ParticipantDelay covenant.UnixDuration
	OwnerDelay       covenant.UnixDuration

	// One-shot guards of the time-gated fallback path.
	OwnerTimedClaim       bool
	ParticipantTimedClaim bool

	// Address is the account holding this pact's funds.
	Address covenant.Address
}

var _ orm.Model = (*Pact)(nil)

// Validate ensures the pact is consistent.
func (p *Pact) Validate() error {
	if err := p.Owner.Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}
	if err := p.Participant.Validate(); err != nil {
		return errors.Wrap(err, "participant")
	}
	if p.Owner.Equals(p.Participant) {
		return errors.Wrap(errors.ErrInput, "owner and participant are the same identity")
	}
	if err := p.Address.Validate(); err != nil {
		return errors.Wrap(err, "address")
	}
	if !p.Reserve.IsPositive() {
		return errors.Wrap(errors.ErrAmount, "reserve must be positive")
	}
	if err := p.Reserve.Validate(); err != nil {
		return errors.Wrap(err, "reserve")
	}
	if p.ParticipantDelay <= 0 || p.OwnerDelay <= 0 {
		return errors.Wrap(errors.ErrInput, "delays must be positive")
	}
	if p.ParticipantDelay >= p.OwnerDelay {
		return errors.Wrap(errors.ErrInput, "participant delay must be shorter than owner delay")
	}
	if p.CreatedAt.IsZero() {
		return errors.Wrap(errors.ErrInput, "creation time is required")
	}
	if err := p.CreatedAt.Validate(); err != nil {
		return errors.Wrap(err, "creation time")
	}
	if !p.TotalReceived.IsNonNegative() {
		return errors.Wrap(errors.ErrAmount, "negative total received")
	}
	if !p.Goodwill.IsNonNegative() {
		return errors.Wrap(errors.ErrAmount, "negative goodwill")
	}
	if err := p.OwnerBalance.Validate(); err != nil {
		return errors.Wrap(err, "owner balance")
	}
	if err := p.ParticipantBalance.Validate(); err != nil {
		return errors.Wrap(err, "participant balance")
	}
	if p.Resolved {
		if err := p.Disposition.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// IsParty returns true if the address is one of the two fixed identities.
func (p *Pact) IsParty(addr covenant.Address) bool {
	return p.Owner.Equals(addr) || p.Participant.Equals(addr)
}

// BalanceOf returns a pointer into the pact's entitlement record of the
// given identity, or nil if the identity holds no record.
func (p *Pact) BalanceOf(addr covenant.Address) *Balance {
	switch {
	case p.Owner.Equals(addr):
		return &p.OwnerBalance
	case p.Participant.Equals(addr):
		return &p.ParticipantBalance
	default:
		return nil
	}
}

// SetVote overwrites the current vote of the given party. A party may
// change its vote freely any number of times before resolution.
func (p *Pact) SetVote(addr covenant.Address, v Vote) error {
	switch {
	case p.Owner.Equals(addr):
		p.OwnerVote = v
	case p.Participant.Equals(addr):
		p.ParticipantVote = v
	default:
		return errors.Wrap(errors.ErrUnauthorized, "not a party of this pact")
	}
	return nil
}

// Agreement returns the matched disposition and true when both parties'
// votes are cast and identical.
func (p *Pact) Agreement() (Disposition, bool) {
	if p.OwnerVote == VoteNone || p.OwnerVote != p.ParticipantVote {
		return 0, false
	}
	return Disposition(p.OwnerVote), true
}

// resolve converts the agreed disposition into final entitlements. It runs
// exactly once per pact. The available amount excludes both parties'
// reserves. Claimed values are left untouched, no transfer happens here.
func (p *Pact) resolve(d Disposition, available coin.Coin) error {
	if p.Resolved {
		return errors.Wrap(errors.ErrState, "already resolved")
	}
	if !available.IsNonNegative() {
		return errors.Wrap(errors.ErrInsufficientAmount, "held balance cannot cover both reserves")
	}

	switch d {
	case DispositionRefund:
		p.ParticipantBalance.Total = available
		p.OwnerBalance.Total = coin.Coin{Ticker: available.Ticker}
	case DispositionPayFull:
		p.OwnerBalance.Total = available
		p.ParticipantBalance.Total = coin.Coin{Ticker: available.Ticker}
	case DispositionSplit:
		half, extra, err := available.Divide(2)
		if err != nil {
			return err
		}
		// The odd unit never favors the owner.
		participant, err := half.Add(extra)
		if err != nil {
			return err
		}
		p.ParticipantBalance.Total = participant
		p.OwnerBalance.Total = half
	default:
		return errors.Wrapf(errors.ErrState, "unknown disposition: %d", d)
	}

	p.Resolved = true
	p.Disposition = d
	return nil
}

// Available returns the balance a query should report as claimable in
// total: the held balance minus a single reserve.
func (p *Pact) Available(held coin.Coin) (coin.Coin, error) {
	return held.Subtract(p.Reserve)
}

// TimeToParticipantClaim returns the remaining wait until the participant's
// time-gated claim unlocks. Zero is returned once eligible.
func (p *Pact) TimeToParticipantClaim(now covenant.UnixTime) covenant.UnixDuration {
	return timeTo(p.CreatedAt.Add(p.ParticipantDelay.Duration()), now)
}

// TimeToOwnerClaim returns the remaining wait until the owner's time-gated
// claim unlocks. Zero is returned once eligible.
func (p *Pact) TimeToOwnerClaim(now covenant.UnixTime) covenant.UnixDuration {
	return timeTo(p.CreatedAt.Add(p.OwnerDelay.Duration()), now)
}

func timeTo(unlock, now covenant.UnixTime) covenant.UnixDuration {
	if now >= unlock {
		return 0
	}
	return covenant.UnixDuration(unlock - now)
}

// Condition calculates the funds account condition of a pact given its key.
func Condition(key []byte) covenant.Condition {
	return covenant.NewCondition("pact", "seq", key)
}

// NewBucket returns a bucket for storing pact state.
func NewBucket() orm.ModelBucket {
	return orm.NewModelBucket("pact")
}

var pactSeq = orm.NewSequence("pact", "id")
