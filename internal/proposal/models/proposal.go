package models

import (
	"time"

	"github.com/shopspring/decimal"

	"treasury/pkg/domain"
	dErrors "treasury/pkg/domain-errors"
)

// Key identifies a proposal. Proposal ids are only unique within an organization.
type Key struct {
	Organization domain.OrganizationID
	ID           domain.ProposalID
}

func (k Key) String() string {
	return k.Organization.String() + "/" + k.ID.String()
}

// Proposal is a funding request against the lending facility.
//
// Invariants:
//   - Amount is a positive integer in the token's smallest unit
//   - Action is one of the four known actions
//   - Applicant, Token and DebtTokenRecipient are set
//   - Everything except Sponsor and ProcessedAt is fixed at submission
//
// ProcessedAt mirrors the registry's own processed flag so a second Process is
// rejected locally even if the registry were to allow it.
type Proposal struct {
	Organization       domain.OrganizationID `json:"organization"`
	ID                 domain.ProposalID     `json:"id"`
	Applicant          domain.Address        `json:"applicant"`
	Amount             decimal.Decimal       `json:"amount"`
	Token              domain.Address        `json:"token"`
	Action             Action                `json:"action"`
	DebtTokenRecipient domain.Address        `json:"debt_token_recipient"`
	Sponsor            domain.Address        `json:"sponsor,omitempty"`
	SubmittedAt        time.Time             `json:"submitted_at"`
	ProcessedAt        *time.Time            `json:"processed_at,omitempty"`
}

// ValidAmount reports whether a is usable as a proposal amount.
func ValidAmount(a decimal.Decimal) bool {
	return a.IsPositive() && a.IsInteger()
}

// NewProposal builds a proposal, enforcing its invariants. A zero debt token
// recipient defaults to the applicant.
func NewProposal(
	key Key,
	applicant domain.Address,
	token domain.Address,
	amount decimal.Decimal,
	action Action,
	debtTokenRecipient domain.Address,
	now time.Time,
) (*Proposal, error) {
	if !ValidAmount(amount) {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "amount must be a positive integer")
	}
	if !action.IsValid() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "unknown action")
	}
	if applicant == "" || token == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "applicant and token are required")
	}
	if debtTokenRecipient == "" {
		debtTokenRecipient = applicant
	}
	return &Proposal{
		Organization:       key.Organization,
		ID:                 key.ID,
		Applicant:          applicant,
		Amount:             amount,
		Token:              token,
		Action:             action,
		DebtTokenRecipient: debtTokenRecipient,
		SubmittedAt:        now,
	}, nil
}

func (p *Proposal) Key() Key {
	return Key{Organization: p.Organization, ID: p.ID}
}

func (p *Proposal) IsProcessed() bool {
	return p.ProcessedAt != nil
}

// CanProcess rejects proposals that already moved funds.
func (p *Proposal) CanProcess() error {
	if p.IsProcessed() {
		return dErrors.Wrap(ErrAlreadyProcessed, dErrors.CodeConflict, "proposal already processed")
	}
	return nil
}

// ApplyProcessed records that funds moved. Call CanProcess first.
func (p *Proposal) ApplyProcessed(now time.Time) {
	p.ProcessedAt = &now
}

// ApplySponsor records the identity credited with sponsoring the proposal.
func (p *Proposal) ApplySponsor(sponsor domain.Address) {
	p.Sponsor = sponsor
}

// Clone returns a copy safe to hand across store boundaries.
func (p *Proposal) Clone() *Proposal {
	if p == nil {
		return nil
	}
	c := *p
	if p.ProcessedAt != nil {
		t := *p.ProcessedAt
		c.ProcessedAt = &t
	}
	return &c
}
