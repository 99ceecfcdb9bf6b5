package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"treasury/internal/audit"
	"treasury/internal/proposal/models"
	"treasury/internal/proposal/store"
	"treasury/pkg/domain"
	dErrors "treasury/pkg/domain-errors"
	"treasury/pkg/platform/sentinel"
	"treasury/pkg/requestcontext"
)

// Process executes a passed proposal: it marks the proposal processed with the
// registry, stages funds and issues the lending call for its action.
//
// Amount, token and applicant are not re-checked; what held at submission is
// trusted. Once the organization lock is held the operation runs to completion
// even if ctx is cancelled. The registry mark, the staging, the lending call and
// the record write form one unit of work: if any step fails, collaborators that
// join the unit's journal undo their part and the proposal can be processed again.
func (s *Service) Process(ctx context.Context, org domain.OrganizationID, id domain.ProposalID) (err error) {
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, "proposal.process")
	span.SetAttributes(
		attribute.String("organization", org.String()),
		attribute.String("proposal_id", id.String()),
	)
	defer func() {
		if s.metrics != nil {
			s.metrics.ObserveProcess(start)
		}
		s.finish(span, "process", err)
	}()

	release, err := s.locker.Lock(ctx, org)
	if err != nil {
		return err
	}
	defer release()
	ctx = context.WithoutCancel(ctx)

	p, err := s.store.FindByKey(ctx, models.Key{Organization: org, ID: id})
	if err != nil {
		return notFoundOr(err, "load proposal")
	}
	if err := p.CanProcess(); err != nil {
		return err
	}
	span.SetAttributes(attribute.String("action", p.Action.String()))

	if err := s.requirePassed(ctx, p); err != nil {
		return err
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context, tx store.Store) error {
		if err := s.registry.ProcessProposal(ctx, org, id); err != nil {
			return fmt.Errorf("mark proposal processed: %w", err)
		}
		if err := p.Action.Dispatch(&dispatcher{ctx: ctx, svc: s, proposal: p}); err != nil {
			return err
		}
		p.ApplyProcessed(requestcontext.Now(ctx))
		if err := tx.Save(ctx, p); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "save proposal")
		}
		return nil
	})
	if err != nil {
		return err
	}

	if s.metrics != nil {
		s.metrics.IncProcessed(p.Action.String())
	}
	audit.LogAudit(ctx, s.logger, s.auditPublisher, audit.EventProposalProcessed,
		"organization", p.Organization,
		"proposal_id", p.ID,
		"action", p.Action,
		"actor", requestcontext.Caller(ctx),
		"token", p.Token,
		"amount", p.Amount,
	)
	return nil
}

// requirePassed resolves the voting adapter bound to p and checks its result.
func (s *Service) requirePassed(ctx context.Context, p *models.Proposal) error {
	addr, ok, err := s.registry.VotingAdapter(ctx, p.Organization, p.ID)
	if err != nil {
		return fmt.Errorf("resolve voting adapter: %w", err)
	}
	if !ok || addr.IsZero() {
		return dErrors.Wrap(models.ErrAdapterNotFound, dErrors.CodePreconditionFailed, "no voting adapter for proposal")
	}
	voting, err := s.votings.Voting(ctx, addr)
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.Wrap(models.ErrAdapterNotFound, dErrors.CodePreconditionFailed, "voting adapter "+addr.String()+" is not deployed")
	}
	if err != nil {
		return fmt.Errorf("resolve voting adapter: %w", err)
	}

	result, err := voting.VoteResult(ctx, p.Organization, p.ID)
	if err != nil {
		return fmt.Errorf("read vote result: %w", err)
	}
	if !result.Passed() {
		return dErrors.Wrap(models.ErrVoteNotPassed, dErrors.CodePreconditionFailed, "vote result is "+result.String())
	}
	return nil
}
