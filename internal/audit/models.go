package audit

import "time"

// EventCategory classifies audit events by their primary purpose so sinks can
// route and retain them differently.
type EventCategory string

const (
	// CategoryTreasury covers events that move or commit organization funds.
	CategoryTreasury EventCategory = "treasury"

	// CategoryGovernance covers proposal lifecycle events that do not move funds.
	CategoryGovernance EventCategory = "governance"
)

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	ID           string
	Category     EventCategory
	Timestamp    time.Time
	Action       string
	Organization string
	ProposalID   string
	// TreasuryAction is the lending action (deposit, withdraw, borrow, repay).
	TreasuryAction string
	Actor          string
	Token          string
	Amount         string
	RequestID      string
}

type AuditEvent string

const (
	EventProposalSubmitted AuditEvent = "proposal_submitted"
	EventProposalProcessed AuditEvent = "proposal_processed"
	EventTransferRejected  AuditEvent = "direct_transfer_rejected"
)

var eventCategories = map[AuditEvent]EventCategory{
	EventProposalSubmitted: CategoryGovernance,
	EventProposalProcessed: CategoryTreasury,
	EventTransferRejected:  CategoryTreasury,
}

// Category returns the category for a known event, governance otherwise.
func (e AuditEvent) Category() EventCategory {
	if c, ok := eventCategories[e]; ok {
		return c
	}
	return CategoryGovernance
}
