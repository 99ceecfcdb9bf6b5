package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"

	"treasury/internal/audit"
	"treasury/internal/proposal/models"
	"treasury/internal/proposal/ports"
	"treasury/internal/proposal/store"
	"treasury/pkg/domain"
	dErrors "treasury/pkg/domain-errors"
	"treasury/pkg/requestcontext"
)

// SubmitRequest carries a new funding request. An empty DebtTokenRecipient
// defaults to the applicant; an empty Caller falls back to the request context.
type SubmitRequest struct {
	Organization       domain.OrganizationID
	ProposalID         domain.ProposalID
	Applicant          domain.Address
	Token              domain.Address
	Amount             decimal.Decimal
	Action             models.Action
	DebtTokenRecipient domain.Address
	// Data is passed untouched to the voting adapter (e.g. a sponsorship signature).
	Data   []byte
	Caller domain.Address
}

// Submit validates, records and sponsors a proposal, then starts its vote.
//
// Amount, token allow-list and reserved-applicant checks all run before anything
// is written. Registration, the record write, sponsorship and the vote start form
// one unit of work: a failure in any of them leaves no record and, for
// collaborators that join the unit's journal, frees the id for a retry.
func (s *Service) Submit(ctx context.Context, req SubmitRequest) (p *models.Proposal, err error) {
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, "proposal.submit")
	span.SetAttributes(
		attribute.String("organization", req.Organization.String()),
		attribute.String("proposal_id", req.ProposalID.String()),
		attribute.String("action", req.Action.String()),
	)
	defer func() {
		if s.metrics != nil {
			s.metrics.ObserveSubmit(start)
		}
		s.finish(span, "submit", err)
	}()

	if req.Caller.IsZero() {
		req.Caller = requestcontext.Caller(ctx)
	}
	if err := validateShape(req); err != nil {
		return nil, err
	}

	release, err := s.locker.Lock(ctx, req.Organization)
	if err != nil {
		return nil, err
	}
	defer release()

	if err := s.checkPreconditions(ctx, req); err != nil {
		return nil, err
	}

	key := models.Key{Organization: req.Organization, ID: req.ProposalID}
	p, err = models.NewProposal(key, req.Applicant, req.Token, req.Amount, req.Action, req.DebtTokenRecipient, requestcontext.Now(ctx))
	if err != nil {
		return nil, err
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context, tx store.Store) error {
		return s.record(ctx, tx, p, req)
	})
	if err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.IncSubmitted(p.Action.String())
	}
	audit.LogAudit(ctx, s.logger, s.auditPublisher, audit.EventProposalSubmitted,
		"organization", p.Organization,
		"proposal_id", p.ID,
		"action", p.Action,
		"actor", p.Sponsor,
		"token", p.Token,
		"amount", p.Amount,
	)
	return p, nil
}

func validateShape(req SubmitRequest) error {
	switch {
	case req.Organization.Address().IsZero():
		return dErrors.New(dErrors.CodeValidation, "organization is required")
	case req.ProposalID == "":
		return dErrors.New(dErrors.CodeValidation, "proposal id is required")
	case req.Applicant == "":
		return dErrors.New(dErrors.CodeValidation, "applicant is required")
	case req.Token.IsZero():
		return dErrors.New(dErrors.CodeValidation, "token is required")
	case !req.Action.IsValid():
		return dErrors.New(dErrors.CodeValidation, "action must be one of deposit, withdraw, borrow, repay")
	case req.Caller.IsZero():
		return dErrors.New(dErrors.CodeUnauthorized, "caller is required")
	}
	return nil
}

// checkPreconditions runs the mutation-free submit checks in order: amount,
// token allow-list, reserved applicant.
func (s *Service) checkPreconditions(ctx context.Context, req SubmitRequest) error {
	if !models.ValidAmount(req.Amount) {
		return dErrors.Wrap(models.ErrInvalidAmount, dErrors.CodeValidation, "amount must be a positive integer")
	}

	ledger, _, err := s.bankLedger(ctx, req.Organization)
	if err != nil {
		return err
	}
	allowed, err := ledger.IsTokenAllowed(ctx, req.Token)
	if err != nil {
		return fmt.Errorf("check token allow-list: %w", err)
	}
	if !allowed {
		return dErrors.Wrap(models.ErrTokenNotAllowed, dErrors.CodeValidation, "token "+req.Token.String()+" is not allowed")
	}

	if s.reserved.IsReserved(ctx, req.Organization, req.Applicant) {
		return dErrors.Wrap(models.ErrReservedApplicant, dErrors.CodeForbidden, "applicant is a reserved account")
	}
	return nil
}

// record registers, persists and sponsors p, then starts its vote.
func (s *Service) record(ctx context.Context, tx store.Store, p *models.Proposal, req SubmitRequest) error {
	org, id := p.Organization, p.ID

	if err := s.registry.SubmitProposal(ctx, org, id); err != nil {
		return fmt.Errorf("register proposal: %w", err)
	}
	if err := tx.Save(ctx, p); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "save proposal")
	}

	votingAddr, err := s.registry.AdapterAddress(ctx, org, ports.AdapterVoting)
	if err != nil {
		return fmt.Errorf("resolve voting adapter: %w", err)
	}
	voting, err := s.votings.Voting(ctx, votingAddr)
	if err != nil {
		return fmt.Errorf("resolve voting adapter: %w", err)
	}
	sponsor, err := voting.SenderAddress(ctx, org, s.self, req.Data, req.Caller)
	if err != nil {
		return fmt.Errorf("resolve sponsor: %w", err)
	}

	p.ApplySponsor(sponsor)
	if err := tx.Save(ctx, p); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "save proposal")
	}
	if err := s.registry.SponsorProposal(ctx, org, id, sponsor, votingAddr); err != nil {
		return fmt.Errorf("sponsor proposal: %w", err)
	}
	if err := voting.StartNewVoting(ctx, org, id, req.Data); err != nil {
		return fmt.Errorf("start voting: %w", err)
	}
	return nil
}

// bankLedger resolves the organization's bank extension and its ledger.
func (s *Service) bankLedger(ctx context.Context, org domain.OrganizationID) (ports.Ledger, domain.Address, error) {
	addr, err := s.registry.ExtensionAddress(ctx, org, ports.ExtensionBank)
	if err != nil {
		return nil, "", fmt.Errorf("resolve bank extension: %w", err)
	}
	ledger, err := s.ledgers.Ledger(ctx, addr)
	if err != nil {
		return nil, "", fmt.Errorf("resolve bank ledger: %w", err)
	}
	return ledger, addr, nil
}
