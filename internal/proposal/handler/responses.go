package handler

import (
	"time"

	"treasury/internal/proposal/models"
)

// ProposalResponse is the HTTP view of a proposal.
type ProposalResponse struct {
	Organization       string     `json:"organization"`
	ProposalID         string     `json:"proposal_id"`
	Applicant          string     `json:"applicant"`
	Token              string     `json:"token"`
	Amount             string     `json:"amount"`
	Action             string     `json:"action"`
	DebtTokenRecipient string     `json:"debt_token_recipient"`
	Sponsor            string     `json:"sponsor,omitempty"`
	SubmittedAt        time.Time  `json:"submitted_at"`
	Processed          bool       `json:"processed"`
	ProcessedAt        *time.Time `json:"processed_at,omitempty"`
}

// ProposalListResponse wraps an organization's proposals.
type ProposalListResponse struct {
	Proposals []ProposalResponse `json:"proposals"`
}

func FromProposal(p *models.Proposal) ProposalResponse {
	return ProposalResponse{
		Organization:       p.Organization.String(),
		ProposalID:         p.ID.String(),
		Applicant:          p.Applicant.String(),
		Token:              p.Token.String(),
		Amount:             p.Amount.String(),
		Action:             p.Action.String(),
		DebtTokenRecipient: p.DebtTokenRecipient.String(),
		Sponsor:            p.Sponsor.String(),
		SubmittedAt:        p.SubmittedAt,
		Processed:          p.IsProcessed(),
		ProcessedAt:        p.ProcessedAt,
	}
}

func FromProposals(list []*models.Proposal) ProposalListResponse {
	out := ProposalListResponse{Proposals: make([]ProposalResponse, 0, len(list))}
	for _, p := range list {
		out.Proposals = append(out.Proposals, FromProposal(p))
	}
	return out
}
