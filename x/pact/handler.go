package pact

import (
	"fmt"

	"github.com/covenant-labs/covenant"
	"github.com/covenant-labs/covenant/coin"
	"github.com/covenant-labs/covenant/errors"
	"github.com/covenant-labs/covenant/orm"
	"github.com/covenant-labs/covenant/x"
	"github.com/covenant-labs/covenant/x/cash"
)

const (
	createCost  int64 = 300
	voteCost    int64 = 50
	claimCost   int64 = 200
	depositCost int64 = 100
)

// RegisterRoutes will instantiate and register all handlers in this package.
func RegisterRoutes(r covenant.Registry, auth x.Authenticator, ctrl cash.Controller) {
	bucket := NewBucket()
	r.Handle(&CreateMsg{}, CreateHandler{auth: auth, bucket: bucket, cash: ctrl})
	r.Handle(&VoteMsg{}, VoteHandler{auth: auth, bucket: bucket, cash: ctrl})
	r.Handle(&ClaimMsg{}, ClaimHandler{auth: auth, bucket: bucket, cash: ctrl})
	r.Handle(&DepositMsg{}, DepositHandler{auth: auth, bucket: bucket, cash: ctrl})
}

// CreateHandler creates a new pact and collects the initial goodwill
// deposit from the owner.
type CreateHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
	cash   cash.Controller
}

var _ covenant.Handler = CreateHandler{}

func (h CreateHandler) Check(ctx covenant.Context, db covenant.KVStore, tx covenant.Tx) (*covenant.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &covenant.CheckResult{GasAllocated: createCost}, nil
}

func (h CreateHandler) Deliver(ctx covenant.Context, db covenant.KVStore, tx covenant.Tx) (*covenant.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	now, err := covenant.BlockTimeErr(ctx)
	if err != nil {
		return nil, err
	}

	key, err := pactSeq.NextVal(db)
	if err != nil {
		return nil, err
	}
	owner := x.MainSigner(ctx, h.auth).Address()
	zero := coin.NewCoin(0, msg.Reserve.Ticker)
	p := &Pact{
		Owner:              owner,
		Participant:        msg.Participant,
		OwnerBalance:       Balance{Total: zero, Claimed: zero},
		ParticipantBalance: Balance{Total: msg.Amount, Claimed: zero},
		TotalReceived:      msg.Amount,
		Goodwill:           msg.Amount,
		Reserve:            msg.Reserve,
		CreatedAt:          covenant.AsUnixTime(now),
		ParticipantDelay:   msg.ParticipantDelay,
		OwnerDelay:         msg.OwnerDelay,
		Address:            Condition(key).Address(),
	}
	if err := h.bucket.Put(db, key, p); err != nil {
		return nil, err
	}

	if msg.Amount.IsPositive() {
		if err := h.cash.MoveCoins(db, owner, p.Address, msg.Amount); err != nil {
			return nil, errors.Wrap(err, "cannot collect goodwill")
		}
	}

	res := &covenant.DeliverResult{
		Data: key,
		Tags: []covenant.Tag{
			covenant.NewTag(TagDeposit, fmt.Sprintf("%X/%v", key, p.TotalReceived)),
		},
	}
	return res, nil
}

func (h CreateHandler) validate(ctx covenant.Context, db covenant.KVStore, tx covenant.Tx) (*CreateMsg, error) {
	var msg CreateMsg
	if err := covenant.LoadMsg(tx, &msg); err != nil {
		return nil, err
	}
	sender := x.MainSigner(ctx, h.auth)
	if sender == nil {
		return nil, errors.Wrap(errors.ErrUnauthorized, "no signer")
	}
	if msg.Participant.Equals(sender.Address()) {
		return nil, errors.Wrap(errors.ErrInput, "sender cannot be the participant")
	}
	return &msg, nil
}

// VoteHandler records votes and resolves the pact the moment both parties
// agree.
type VoteHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
	cash   cash.Controller
}

var _ covenant.Handler = VoteHandler{}

func (h VoteHandler) Check(ctx covenant.Context, db covenant.KVStore, tx covenant.Tx) (*covenant.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &covenant.CheckResult{GasAllocated: voteCost}, nil
}

func (h VoteHandler) Deliver(ctx covenant.Context, db covenant.KVStore, tx covenant.Tx) (*covenant.DeliverResult, error) {
	msg, p, voter, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	if err := p.SetVote(voter, msg.Choice); err != nil {
		return nil, err
	}
	tags := []covenant.Tag{
		covenant.NewTag(TagVote, fmt.Sprintf("%X/%s", msg.PactID, msg.Choice)),
	}

	if d, ok := p.Agreement(); ok {
		held, err := h.held(db, p)
		if err != nil {
			return nil, err
		}
		// Both parties keep a reserve for the fee of their own claim.
		reserves, err := p.Reserve.Multiply(2)
		if err != nil {
			return nil, err
		}
		available, err := held.Subtract(reserves)
		if err != nil {
			return nil, err
		}
		if err := p.resolve(d, available); err != nil {
			return nil, err
		}
		tags = append(tags, covenant.NewTag(TagAgreement, fmt.Sprintf("%X/%s", msg.PactID, d)))
	}

	if err := h.bucket.Put(db, msg.PactID, p); err != nil {
		return nil, err
	}
	return &covenant.DeliverResult{Tags: tags}, nil
}

func (h VoteHandler) held(db covenant.KVStore, p *Pact) (coin.Coin, error) {
	funds, err := h.cash.Balance(db, p.Address)
	if err != nil {
		return coin.Coin{}, err
	}
	return funds.Coin(p.Reserve.Ticker), nil
}

func (h VoteHandler) validate(ctx covenant.Context, db covenant.KVStore, tx covenant.Tx) (*VoteMsg, *Pact, covenant.Address, error) {
	var msg VoteMsg
	if err := covenant.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, err
	}
	var p Pact
	if err := h.bucket.One(db, msg.PactID, &p); err != nil {
		return nil, nil, nil, err
	}
	if p.Resolved {
		return nil, nil, nil, errors.Wrap(errors.ErrState, "already resolved")
	}
	var voter covenant.Address
	switch {
	case h.auth.HasAddress(ctx, p.Owner):
		voter = p.Owner
	case h.auth.HasAddress(ctx, p.Participant):
		voter = p.Participant
	default:
		return nil, nil, nil, errors.Wrap(errors.ErrUnauthorized, "not a party of this pact")
	}
	return &msg, &p, voter, nil
}

// ClaimHandler pays out entitlements on a resolved pact and handles the
// one-shot time-gated fallback on an unresolved one.
type ClaimHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
	cash   cash.Controller
}

var _ covenant.Handler = ClaimHandler{}

func (h ClaimHandler) Check(ctx covenant.Context, db covenant.KVStore, tx covenant.Tx) (*covenant.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &covenant.CheckResult{GasAllocated: claimCost}, nil
}

func (h ClaimHandler) Deliver(ctx covenant.Context, db covenant.KVStore, tx covenant.Tx) (*covenant.DeliverResult, error) {
	msg, p, claimer, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	funds, err := h.cash.Balance(db, p.Address)
	if err != nil {
		return nil, err
	}
	held := funds.Coin(p.Reserve.Ticker)

	if p.Resolved {
		return h.payout(db, msg.PactID, p, claimer, held)
	}
	return h.timedPayout(ctx, db, msg.PactID, p, claimer, held)
}

// payout transfers the claimer's outstanding entitlement. State is saved
// before coins move so a re-entrant call observes the updated claim.
func (h ClaimHandler) payout(db covenant.KVStore, key []byte, p *Pact, claimer covenant.Address, held coin.Coin) (*covenant.DeliverResult, error) {
	bal := p.BalanceOf(claimer)
	if bal == nil {
		return nil, errors.Wrapf(ErrNoClaim, "no balance record for %s", claimer)
	}
	claimable, err := bal.Claimable()
	if err != nil {
		return nil, err
	}
	if !claimable.IsPositive() {
		return nil, errors.Wrapf(ErrNoClaim, "balance %s", bal.Total)
	}
	need, err := claimable.Add(p.Reserve)
	if err != nil {
		return nil, err
	}
	if !held.IsGTE(need) {
		return nil, errors.Wrapf(errors.ErrInsufficientAmount, "holds %s, needs %s", held, need)
	}

	if bal.Claimed, err = bal.Claimed.Add(claimable); err != nil {
		return nil, err
	}
	if err := h.bucket.Put(db, key, p); err != nil {
		return nil, err
	}
	if err := h.cash.MoveCoins(db, p.Address, claimer, claimable); err != nil {
		return nil, err
	}

	res := &covenant.DeliverResult{
		Tags: []covenant.Tag{
			covenant.NewTag(TagClaim, fmt.Sprintf("%X/%v", key, claimable)),
		},
	}
	return res, nil
}

// timedPayout is the fallback for a pact that never reached agreement. Each
// party may use it once, after its own delay passed. The participant's
// delay is the shorter one.
func (h ClaimHandler) timedPayout(ctx covenant.Context, db covenant.KVStore, key []byte, p *Pact, claimer covenant.Address, held coin.Coin) (*covenant.DeliverResult, error) {
	var (
		used  *bool
		delay func(covenant.UnixTime) covenant.UnixDuration
	)
	if p.Owner.Equals(claimer) {
		used = &p.OwnerTimedClaim
		delay = p.TimeToOwnerClaim
	} else {
		used = &p.ParticipantTimedClaim
		delay = p.TimeToParticipantClaim
	}
	if *used {
		return nil, errors.Wrap(ErrAlreadyClaimed, "timed claim was used")
	}

	now, err := covenant.BlockTimeErr(ctx)
	if err != nil {
		return nil, err
	}
	if wait := delay(covenant.AsUnixTime(now)); wait > 0 {
		return nil, errors.Wrapf(ErrTooEarly, "%s left", wait)
	}

	payout, err := p.Available(held)
	if err != nil {
		return nil, err
	}
	if !payout.IsPositive() {
		return nil, errors.Wrapf(ErrNoClaim, "holds %s", held)
	}

	bal := p.BalanceOf(claimer)
	bal.Total = payout
	bal.Claimed = payout
	*used = true
	if err := h.bucket.Put(db, key, p); err != nil {
		return nil, err
	}
	if err := h.cash.MoveCoins(db, p.Address, claimer, payout); err != nil {
		return nil, err
	}

	res := &covenant.DeliverResult{
		Tags: []covenant.Tag{
			covenant.NewTag(TagTimedClaim, fmt.Sprintf("%X/%v", key, payout)),
		},
	}
	return res, nil
}

func (h ClaimHandler) validate(ctx covenant.Context, db covenant.KVStore, tx covenant.Tx) (*ClaimMsg, *Pact, covenant.Address, error) {
	var msg ClaimMsg
	if err := covenant.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, err
	}
	var p Pact
	if err := h.bucket.One(db, msg.PactID, &p); err != nil {
		return nil, nil, nil, err
	}
	sender := x.MainSigner(ctx, h.auth)
	if sender == nil {
		return nil, nil, nil, errors.Wrap(errors.ErrUnauthorized, "no signer")
	}
	claimer := sender.Address()
	// The resolved path is open to anyone holding a balance record. The
	// fallback is for the two parties only.
	if !p.Resolved && !p.IsParty(claimer) {
		return nil, nil, nil, errors.Wrap(errors.ErrUnauthorized, "not a party of this pact")
	}
	return &msg, &p, claimer, nil
}

// DepositHandler moves funds from any sender onto a pact account.
type DepositHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
	cash   cash.Controller
}

var _ covenant.Handler = DepositHandler{}

func (h DepositHandler) Check(ctx covenant.Context, db covenant.KVStore, tx covenant.Tx) (*covenant.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &covenant.CheckResult{GasAllocated: depositCost}, nil
}

func (h DepositHandler) Deliver(ctx covenant.Context, db covenant.KVStore, tx covenant.Tx) (*covenant.DeliverResult, error) {
	msg, p, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	sender := x.MainSigner(ctx, h.auth).Address()

	if p.TotalReceived, err = p.TotalReceived.Add(msg.Amount); err != nil {
		return nil, err
	}
	// Deposits after resolution raise the held balance but are not
	// attributed to any entitlement.
	if !p.Resolved {
		p.ParticipantBalance.Total, err = p.ParticipantBalance.Total.Add(msg.Amount)
		if err != nil {
			return nil, err
		}
	}
	if err := h.bucket.Put(db, msg.PactID, p); err != nil {
		return nil, err
	}
	if err := h.cash.MoveCoins(db, sender, p.Address, msg.Amount); err != nil {
		return nil, err
	}

	res := &covenant.DeliverResult{
		Tags: []covenant.Tag{
			covenant.NewTag(TagDeposit, fmt.Sprintf("%X/%v", msg.PactID, p.TotalReceived)),
		},
	}
	return res, nil
}

func (h DepositHandler) validate(ctx covenant.Context, db covenant.KVStore, tx covenant.Tx) (*DepositMsg, *Pact, error) {
	var msg DepositMsg
	if err := covenant.LoadMsg(tx, &msg); err != nil {
		return nil, nil, err
	}
	var p Pact
	if err := h.bucket.One(db, msg.PactID, &p); err != nil {
		return nil, nil, err
	}
	if x.MainSigner(ctx, h.auth) == nil {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "no signer")
	}
	return &msg, &p, nil
}
