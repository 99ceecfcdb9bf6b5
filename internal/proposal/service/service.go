// Package service runs the proposal lifecycle: submit validates and records a
// funding request and starts its vote; process confirms the vote passed, stages
// funds and issues exactly one lending facility call.
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"treasury/internal/audit"
	"treasury/internal/proposal/models"
	"treasury/internal/proposal/ports"
	"treasury/internal/proposal/store"
	"treasury/pkg/domain"
	dErrors "treasury/pkg/domain-errors"
	"treasury/pkg/platform/sentinel"
)

const tracerName = "treasury/internal/proposal/service"

// Recorder is the subset of proposal metrics the service records.
// *metrics.Metrics satisfies it.
type Recorder interface {
	IncSubmitted(action string)
	IncProcessed(action string)
	IncFailure(operation string, err error)
	ObserveSubmit(start time.Time)
	ObserveProcess(start time.Time)
}

// Config names the accounts the service acts with.
type Config struct {
	// Self is this service's own custody account.
	Self domain.Address
	// Treasury is the organization's pooled ledger account.
	Treasury domain.Address
}

// Collaborators groups the required dependencies.
type Collaborators struct {
	Registry ports.Registry
	Ledgers  ports.Ledgers
	Votings  ports.VotingAdapters
	Lending  ports.Lending
	Custody  ports.Custody
	Locker   ports.Locker
	Reserved ports.ReservedAccounts
	Store    store.Store
	Tx       store.Tx
}

// Service is the proposal lifecycle controller.
type Service struct {
	registry ports.Registry
	ledgers  ports.Ledgers
	votings  ports.VotingAdapters
	lending  ports.Lending
	custody  ports.Custody
	locker   ports.Locker
	reserved ports.ReservedAccounts
	store    store.Store
	tx       store.Tx

	self     domain.Address
	treasury domain.Address

	logger         *slog.Logger
	metrics        Recorder
	auditPublisher ports.AuditPublisher
	tracer         trace.Tracer
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m Recorder) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithAuditPublisher(p ports.AuditPublisher) Option {
	return func(s *Service) {
		s.auditPublisher = p
	}
}

func WithTracer(t trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = t
	}
}

func New(c Collaborators, cfg Config, opts ...Option) (*Service, error) {
	switch {
	case c.Registry == nil:
		return nil, errors.New("registry is required")
	case c.Ledgers == nil:
		return nil, errors.New("ledgers are required")
	case c.Votings == nil:
		return nil, errors.New("voting adapters are required")
	case c.Lending == nil:
		return nil, errors.New("lending client is required")
	case c.Custody == nil:
		return nil, errors.New("custody is required")
	case c.Locker == nil:
		return nil, errors.New("locker is required")
	case c.Reserved == nil:
		return nil, errors.New("reserved accounts policy is required")
	case c.Store == nil:
		return nil, errors.New("store is required")
	case c.Tx == nil:
		return nil, errors.New("store transaction runner is required")
	case cfg.Self.IsZero():
		return nil, errors.New("self account is required")
	case cfg.Treasury.IsZero():
		return nil, errors.New("treasury account is required")
	}

	s := &Service{
		registry: c.Registry,
		ledgers:  c.Ledgers,
		votings:  c.Votings,
		lending:  c.Lending,
		custody:  c.Custody,
		locker:   c.Locker,
		reserved: c.Reserved,
		store:    c.Store,
		tx:       c.Tx,
		self:     cfg.Self,
		treasury: cfg.Treasury,
		logger:   slog.Default(),
		tracer:   otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s, nil
}

// Get returns the stored proposal.
func (s *Service) Get(ctx context.Context, org domain.OrganizationID, id domain.ProposalID) (*models.Proposal, error) {
	p, err := s.store.FindByKey(ctx, models.Key{Organization: org, ID: id})
	if err != nil {
		return nil, notFoundOr(err, "load proposal")
	}
	return p, nil
}

// List returns an organization's proposals in submission order.
func (s *Service) List(ctx context.Context, org domain.OrganizationID) ([]*models.Proposal, error) {
	list, err := s.store.ListByOrganization(ctx, org)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "list proposals")
	}
	return list, nil
}

// ReceiveFunds rejects every unsolicited transfer to the service's account.
func (s *Service) ReceiveFunds(ctx context.Context, from, token domain.Address) error {
	audit.LogAudit(ctx, s.logger, s.auditPublisher, audit.EventTransferRejected,
		"actor", from,
		"token", token,
	)
	return dErrors.Wrap(models.ErrDirectTransferRejected, dErrors.CodeForbidden, "direct transfers are not accepted")
}

func notFoundOr(err error, op string) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.Wrap(models.ErrProposalNotFound, dErrors.CodeNotFound, "proposal not found")
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, op)
}

// finish records the outcome of an operation on its span and failure counter.
func (s *Service) finish(span trace.Span, operation string, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, string(dErrors.CodeOf(err)))
		if s.metrics != nil {
			s.metrics.IncFailure(operation, err)
		}
	}
	span.End()
}
