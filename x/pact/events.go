package pact

// Tag keys attached to deliver results so indexers can follow pact
// lifecycles without replaying state.
const (
	// TagVote marks a recorded vote. Value is "<pactID>/<choice>".
	TagVote = "pact-vote"

	// TagAgreement marks the moment both votes match and the pact
	// resolves. Value is "<pactID>/<disposition>".
	TagAgreement = "pact-agreement"

	// TagClaim marks a payout against a resolved pact. Value is
	// "<pactID>/<amount>".
	TagClaim = "pact-claim"

	// TagTimedClaim marks a fallback payout on an unresolved pact.
	// Value is "<pactID>/<amount>".
	TagTimedClaim = "pact-timed-claim"

	// TagDeposit marks funds arriving on a pact account. Value is
	// "<pactID>/<total received>".
	TagDeposit = "pact-deposit"

	// TagGoodwillUpdate is reserved for goodwill changes after
	// creation. No handler emits it yet.
	TagGoodwillUpdate = "pact-goodwill"
)
