// Package ports defines the collaborators the proposal module consumes. Each one is
// owned elsewhere (registry, ledger, voting, lending facility, guard policy); this
// module depends only on these contracts.
package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"treasury/internal/audit"
	"treasury/internal/proposal/models"
	"treasury/pkg/domain"
)

//go:generate mockgen -source=ports.go -destination=mocks/mocks.go -package=mocks

// ExtensionKind names a registry extension slot.
type ExtensionKind string

// AdapterKind names a registry adapter slot.
type AdapterKind string

const (
	ExtensionBank ExtensionKind = "bank"
	AdapterVoting AdapterKind   = "voting"
)

// Registry is the organization's proposal registry and component directory.
type Registry interface {
	// SubmitProposal registers id with the organization. Fails if the id is taken.
	SubmitProposal(ctx context.Context, org domain.OrganizationID, id domain.ProposalID) error

	// SponsorProposal marks id sponsored by sponsor and binds the voting adapter.
	SponsorProposal(ctx context.Context, org domain.OrganizationID, id domain.ProposalID, sponsor, votingAdapter domain.Address) error

	// ProcessProposal marks id processed. Fails if it already was.
	ProcessProposal(ctx context.Context, org domain.OrganizationID, id domain.ProposalID) error

	// ExtensionAddress resolves an extension (e.g. the bank ledger) for org.
	ExtensionAddress(ctx context.Context, org domain.OrganizationID, kind ExtensionKind) (domain.Address, error)

	// AdapterAddress resolves an adapter (e.g. voting) for org.
	AdapterAddress(ctx context.Context, org domain.OrganizationID, kind AdapterKind) (domain.Address, error)

	// VotingAdapter returns the adapter bound to id at sponsorship, ok=false if none.
	VotingAdapter(ctx context.Context, org domain.OrganizationID, id domain.ProposalID) (domain.Address, bool, error)
}

// Ledger is an organization's internal balance ledger keyed by (account, token).
type Ledger interface {
	IsTokenAllowed(ctx context.Context, token domain.Address) (bool, error)
	SubtractFromBalance(ctx context.Context, account, token domain.Address, amount decimal.Decimal) error
	AddToBalance(ctx context.Context, account, token domain.Address, amount decimal.Decimal) error
	BalanceOf(ctx context.Context, account, token domain.Address) (decimal.Decimal, error)

	// Withdraw moves amount out of destination's ledger balance into destination's
	// directly held custody.
	Withdraw(ctx context.Context, destination, token domain.Address, amount decimal.Decimal) error
}

// Ledgers resolves the ledger extension deployed at an address.
type Ledgers interface {
	Ledger(ctx context.Context, addr domain.Address) (Ledger, error)
}

// Voting is a voting adapter as seen by the proposal module.
type Voting interface {
	// SenderAddress resolves the identity credited for an action taken by caller
	// through actor, given adapter-specific data (e.g. a delegation signature).
	SenderAddress(ctx context.Context, org domain.OrganizationID, actor domain.Address, data []byte, caller domain.Address) (domain.Address, error)
	StartNewVoting(ctx context.Context, org domain.OrganizationID, id domain.ProposalID, data []byte) error
	VoteResult(ctx context.Context, org domain.OrganizationID, id domain.ProposalID) (models.VoteResult, error)
}

// VotingAdapters resolves the voting adapter deployed at an address.
type VotingAdapters interface {
	Voting(ctx context.Context, addr domain.Address) (Voting, error)
}

// LendingPool is the external lending facility.
type LendingPool interface {
	Deposit(ctx context.Context, token domain.Address, amount decimal.Decimal, onBehalfOf domain.Address, referral uint16) error
	Withdraw(ctx context.Context, token domain.Address, amount decimal.Decimal, to domain.Address) error
	Borrow(ctx context.Context, token domain.Address, amount decimal.Decimal, rateMode uint8, referral uint16, onBehalfOf domain.Address) error
	Repay(ctx context.Context, token domain.Address, amount decimal.Decimal, rateMode uint8, onBehalfOf domain.Address) error
}

// Lending shapes and issues a single lending facility call for an action.
type Lending interface {
	Execute(ctx context.Context, action models.Action, token domain.Address, amount decimal.Decimal, onBehalfOf domain.Address) error
}

// Custody moves directly held (non-ledger) token balances between accounts.
type Custody interface {
	Transfer(ctx context.Context, token, from, to domain.Address, amount decimal.Decimal) error
}

// Locker provides the per-organization reentrancy lock. Lock fails immediately
// when the organization is already locked; release must be called exactly once.
type Locker interface {
	Lock(ctx context.Context, org domain.OrganizationID) (release func(), err error)
}

// ReservedAccounts reports accounts that may never receive funds.
type ReservedAccounts interface {
	IsReserved(ctx context.Context, org domain.OrganizationID, account domain.Address) bool
}

// AuditPublisher emits audit events for treasury operations.
type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}
