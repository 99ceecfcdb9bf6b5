package handler

import (
	"strings"

	"github.com/shopspring/decimal"

	"treasury/internal/proposal/models"
	"treasury/pkg/domain"
	dErrors "treasury/pkg/domain-errors"
)

// SubmitProposalRequest is the body of POST /organizations/{org}/proposals.
type SubmitProposalRequest struct {
	ProposalID         string          `json:"proposal_id"`
	Applicant          string          `json:"applicant"`
	Token              string          `json:"token"`
	Amount             decimal.Decimal `json:"amount"`
	Action             string          `json:"action"`
	DebtTokenRecipient string          `json:"debt_token_recipient,omitempty"`
	// Data is base64 in JSON and passed through to the voting adapter.
	Data []byte `json:"data,omitempty"`

	parsedID        domain.ProposalID
	parsedApplicant domain.Address
	parsedToken     domain.Address
	parsedAction    models.Action
	parsedRecipient domain.Address
}

// Validate parses identifiers and the action. Amount is left to the service so
// it is checked under the organization lock alongside the other preconditions.
func (r *SubmitProposalRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}

	id, err := domain.ParseProposalID(strings.TrimSpace(r.ProposalID))
	if err != nil {
		return err
	}
	r.parsedID = id

	if r.parsedApplicant, err = parseRequired("applicant", r.Applicant); err != nil {
		return err
	}
	if r.parsedToken, err = parseRequired("token", r.Token); err != nil {
		return err
	}
	if r.DebtTokenRecipient = strings.TrimSpace(r.DebtTokenRecipient); r.DebtTokenRecipient != "" {
		if r.parsedRecipient, err = domain.ParseAddress(r.DebtTokenRecipient); err != nil {
			return err
		}
	}

	action, err := models.ParseAction(r.Action)
	if err != nil {
		return err
	}
	r.parsedAction = action
	return nil
}

// ReceiveFundsRequest is the body of POST /custody/receive.
type ReceiveFundsRequest struct {
	Token string `json:"token"`

	parsedToken domain.Address
}

func (r *ReceiveFundsRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	token, err := parseRequired("token", r.Token)
	if err != nil {
		return err
	}
	r.parsedToken = token
	return nil
}

func parseRequired(field, value string) (domain.Address, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", dErrors.New(dErrors.CodeValidation, field+" is required")
	}
	return domain.ParseAddress(value)
}
