package pact

import "github.com/covenant-labs/covenant/errors"

// Error codes 1010-1020 are reserved for the pact extension.
var (
	// ErrTooEarly is returned when a time-gated claim is attempted
	// before the claiming party's unlock delay elapsed.
	ErrTooEarly = errors.Register(1010, "too early to claim")

	// ErrAlreadyClaimed is returned when a party attempts a second
	// time-gated claim. That path allows at most one claim per party.
	ErrAlreadyClaimed = errors.Register(1011, "already claimed")

	// ErrNoClaim is returned when the caller has no claimable amount.
	ErrNoClaim = errors.Register(1012, "no claimable amount")
)
