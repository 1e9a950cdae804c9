/*
Package pact implements a two-party trustless escrow.

An owner and a participant jointly hold funds deposited over time. Release
of those funds is governed either by mutual agreement (both parties casting
the same vote over three possible dispositions) or, failing agreement, by a
time-delayed unilateral claim.

While the pact is unresolved every deposit is provisionally credited to the
participant. The moment both votes match, the pact resolves exactly once and
converts the agreed disposition into final entitlements:

  Refund  - everything to the participant
  Split   - even division, the participant gets the extra unit
  PayFull - everything to the owner

A fixed reserve is withheld from every payout computation so that both
parties can always cover the fee of their own eventual claim.

If consensus is never reached, each party may claim the entire remaining
balance (net of one reserve) after its own delay has elapsed. The
participant's delay is strictly shorter than the owner's. This fallback is
one-shot per party.
*/
package pact
