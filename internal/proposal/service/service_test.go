package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"treasury/internal/audit"
	"treasury/internal/proposal/models"
	"treasury/internal/proposal/ports"
	"treasury/internal/proposal/ports/mocks"
	"treasury/internal/proposal/store"
	"treasury/pkg/domain"
	dErrors "treasury/pkg/domain-errors"
	"treasury/pkg/platform/sentinel"
	"treasury/pkg/platform/tx"
	"treasury/pkg/requestcontext"
)

var (
	org        = domain.OrganizationID(domain.MustAddress("0xaa00000000000000000000000000000000000001"))
	self       = domain.MustAddress("0xad00000000000000000000000000000000000001")
	treasury   = domain.MustAddress("0x000000000000000000000000000000000000dead")
	bankAddr   = domain.MustAddress("0xba00000000000000000000000000000000000001")
	votingAddr = domain.MustAddress("0x0e00000000000000000000000000000000000001")
	applicant  = domain.MustAddress("0x1000000000000000000000000000000000000001")
	member     = domain.MustAddress("0x2000000000000000000000000000000000000002")
	token      = domain.MustAddress("0x7000000000000000000000000000000000000001")
	propID     = domain.ProposalID("prop-1")
	amount     = decimal.NewFromInt(1000)
	data       = []byte("sponsorship")
)

// =============================================================================
// Proposal Service Test Suite
// =============================================================================
// Justification for unit tests: every collaborator is a strict mock, so each
// test pins the exact set and order of external calls. An unexpected ledger
// or lending call fails the test, which is how "no mutation" and "exactly one
// external call" are checked.

type ServiceSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	registry *mocks.MockRegistry
	ledgers  *mocks.MockLedgers
	ledger   *mocks.MockLedger
	votings  *mocks.MockVotingAdapters
	voting   *mocks.MockVoting
	lending  *mocks.MockLending
	custody  *mocks.MockCustody
	locker   *mocks.MockLocker
	reserved *mocks.MockReservedAccounts
	audit    *mocks.MockAuditPublisher
	store    *store.InMemoryStore
	service  *Service
	ctx      context.Context
	released int
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.registry = mocks.NewMockRegistry(s.ctrl)
	s.ledgers = mocks.NewMockLedgers(s.ctrl)
	s.ledger = mocks.NewMockLedger(s.ctrl)
	s.votings = mocks.NewMockVotingAdapters(s.ctrl)
	s.voting = mocks.NewMockVoting(s.ctrl)
	s.lending = mocks.NewMockLending(s.ctrl)
	s.custody = mocks.NewMockCustody(s.ctrl)
	s.locker = mocks.NewMockLocker(s.ctrl)
	s.reserved = mocks.NewMockReservedAccounts(s.ctrl)
	s.audit = mocks.NewMockAuditPublisher(s.ctrl)
	s.store = store.NewInMemoryStore()
	s.released = 0
	s.ctx = requestcontext.WithTime(context.Background(), time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	var err error
	s.service, err = New(s.collaborators(), Config{Self: self, Treasury: treasury},
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithAuditPublisher(s.audit),
	)
	s.Require().NoError(err)
}

func (s *ServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ServiceSuite) collaborators() Collaborators {
	return Collaborators{
		Registry: s.registry,
		Ledgers:  s.ledgers,
		Votings:  s.votings,
		Lending:  s.lending,
		Custody:  s.custody,
		Locker:   s.locker,
		Reserved: s.reserved,
		Store:    s.store,
		Tx:       s.store,
	}
}

func (s *ServiceSuite) expectLock() {
	s.locker.EXPECT().Lock(gomock.Any(), org).Return(func() { s.released++ }, nil)
}

func (s *ServiceSuite) expectBankLedger() {
	s.registry.EXPECT().ExtensionAddress(gomock.Any(), org, ports.ExtensionBank).Return(bankAddr, nil)
	s.ledgers.EXPECT().Ledger(gomock.Any(), bankAddr).Return(s.ledger, nil)
}

func (s *ServiceSuite) expectAudit(event audit.AuditEvent) {
	s.audit.EXPECT().Emit(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e audit.Event) error {
		s.Equal(string(event), e.Action)
		return nil
	})
}

func (s *ServiceSuite) submitRequest(action models.Action, amt decimal.Decimal) SubmitRequest {
	return SubmitRequest{
		Organization: org,
		ProposalID:   propID,
		Applicant:    applicant,
		Token:        token,
		Amount:       amt,
		Action:       action,
		Data:         data,
		Caller:       member,
	}
}

func (s *ServiceSuite) seed(action models.Action) *models.Proposal {
	p, err := models.NewProposal(models.Key{Organization: org, ID: propID}, applicant, token, amount, action, "", time.Now())
	s.Require().NoError(err)
	p.ApplySponsor(member)
	s.Require().NoError(s.store.Save(s.ctx, p))
	return p
}

func (s *ServiceSuite) assertNotStored() {
	_, err := s.store.FindByKey(s.ctx, models.Key{Organization: org, ID: propID})
	s.ErrorIs(err, sentinel.ErrNotFound)
}

// =============================================================================
// Constructor Tests (Invariant Enforcement)
// =============================================================================

func (s *ServiceSuite) TestNew() {
	cases := map[string]func(c *Collaborators, cfg *Config){
		"registry is required":                 func(c *Collaborators, _ *Config) { c.Registry = nil },
		"ledgers are required":                 func(c *Collaborators, _ *Config) { c.Ledgers = nil },
		"voting adapters are required":         func(c *Collaborators, _ *Config) { c.Votings = nil },
		"lending client is required":           func(c *Collaborators, _ *Config) { c.Lending = nil },
		"custody is required":                  func(c *Collaborators, _ *Config) { c.Custody = nil },
		"locker is required":                   func(c *Collaborators, _ *Config) { c.Locker = nil },
		"reserved accounts policy is required": func(c *Collaborators, _ *Config) { c.Reserved = nil },
		"store is required":                    func(c *Collaborators, _ *Config) { c.Store = nil },
		"store transaction runner is required": func(c *Collaborators, _ *Config) { c.Tx = nil },
		"self account is required":             func(_ *Collaborators, cfg *Config) { cfg.Self = "" },
		"treasury account is required":         func(_ *Collaborators, cfg *Config) { cfg.Treasury = domain.ZeroAddress },
	}
	for msg, mutate := range cases {
		s.Run(msg, func() {
			c := s.collaborators()
			cfg := Config{Self: self, Treasury: treasury}
			mutate(&c, &cfg)
			_, err := New(c, cfg)
			s.Require().Error(err)
			s.Contains(err.Error(), msg)
		})
	}

	s.Run("valid collaborators return configured service", func() {
		svc, err := New(s.collaborators(), Config{Self: self, Treasury: treasury}, WithAuditPublisher(s.audit))
		s.Require().NoError(err)
		s.Equal(s.audit, svc.auditPublisher)
		s.NotNil(svc.tracer)
	})
}

// =============================================================================
// Submit Tests
// =============================================================================

func (s *ServiceSuite) TestSubmit_InvalidAmount() {
	for _, amt := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-5), decimal.RequireFromString("1.5")} {
		s.Run(amt.String(), func() {
			s.expectLock()

			_, err := s.service.Submit(s.ctx, s.submitRequest(models.ActionDeposit, amt))
			s.ErrorIs(err, models.ErrInvalidAmount)
			s.True(dErrors.HasCode(err, dErrors.CodeValidation))
			s.assertNotStored()
		})
	}
	s.Equal(3, s.released)
}

func (s *ServiceSuite) TestSubmit_TokenNotAllowed() {
	s.expectLock()
	s.expectBankLedger()
	s.ledger.EXPECT().IsTokenAllowed(gomock.Any(), token).Return(false, nil)

	_, err := s.service.Submit(s.ctx, s.submitRequest(models.ActionDeposit, amount))
	s.ErrorIs(err, models.ErrTokenNotAllowed)
	s.assertNotStored()
	s.Equal(1, s.released)
}

func (s *ServiceSuite) TestSubmit_ReservedApplicant() {
	s.expectLock()
	s.expectBankLedger()
	s.ledger.EXPECT().IsTokenAllowed(gomock.Any(), token).Return(true, nil)
	s.reserved.EXPECT().IsReserved(gomock.Any(), org, applicant).Return(true)

	_, err := s.service.Submit(s.ctx, s.submitRequest(models.ActionDeposit, amount))
	s.ErrorIs(err, models.ErrReservedApplicant)
	s.True(dErrors.HasCode(err, dErrors.CodeForbidden))
	s.assertNotStored()
}

func (s *ServiceSuite) expectValidSubmit() {
	s.expectLock()
	s.expectBankLedger()
	s.ledger.EXPECT().IsTokenAllowed(gomock.Any(), token).Return(true, nil)
	s.reserved.EXPECT().IsReserved(gomock.Any(), org, applicant).Return(false)
}

func (s *ServiceSuite) TestSubmit_Success() {
	s.expectValidSubmit()
	gomock.InOrder(
		s.registry.EXPECT().SubmitProposal(gomock.Any(), org, propID).Return(nil),
		s.registry.EXPECT().AdapterAddress(gomock.Any(), org, ports.AdapterVoting).Return(votingAddr, nil),
		s.votings.EXPECT().Voting(gomock.Any(), votingAddr).Return(s.voting, nil),
		s.voting.EXPECT().SenderAddress(gomock.Any(), org, self, data, member).Return(member, nil),
		s.registry.EXPECT().SponsorProposal(gomock.Any(), org, propID, member, votingAddr).Return(nil),
		s.voting.EXPECT().StartNewVoting(gomock.Any(), org, propID, data).Return(nil),
	)
	s.expectAudit(audit.EventProposalSubmitted)

	p, err := s.service.Submit(s.ctx, s.submitRequest(models.ActionDeposit, amount))
	s.Require().NoError(err)
	s.Equal(models.ActionDeposit, p.Action)

	stored, err := s.store.FindByKey(s.ctx, p.Key())
	s.Require().NoError(err)
	s.Equal(models.ActionDeposit, stored.Action)
	s.Equal("1000", stored.Amount.String())
	s.Equal(applicant, stored.DebtTokenRecipient)
	s.Equal(member, stored.Sponsor)
	s.Equal(requestcontext.Now(s.ctx), stored.SubmittedAt)
	s.False(stored.IsProcessed())
	s.Equal(1, s.released)
}

func (s *ServiceSuite) TestSubmit_CallerFromContext() {
	s.expectValidSubmit()
	s.registry.EXPECT().SubmitProposal(gomock.Any(), org, propID).Return(nil)
	s.registry.EXPECT().AdapterAddress(gomock.Any(), org, ports.AdapterVoting).Return(votingAddr, nil)
	s.votings.EXPECT().Voting(gomock.Any(), votingAddr).Return(s.voting, nil)
	s.voting.EXPECT().SenderAddress(gomock.Any(), org, self, data, member).Return(member, nil)
	s.registry.EXPECT().SponsorProposal(gomock.Any(), org, propID, member, votingAddr).Return(nil)
	s.voting.EXPECT().StartNewVoting(gomock.Any(), org, propID, data).Return(nil)
	s.expectAudit(audit.EventProposalSubmitted)

	req := s.submitRequest(models.ActionBorrow, amount)
	req.Caller = ""
	req.DebtTokenRecipient = member
	p, err := s.service.Submit(requestcontext.WithCaller(s.ctx, member), req)
	s.Require().NoError(err)
	s.Equal(member, p.DebtTokenRecipient)
}

func (s *ServiceSuite) TestSubmit_RequiresCaller() {
	req := s.submitRequest(models.ActionDeposit, amount)
	req.Caller = ""
	_, err := s.service.Submit(s.ctx, req)
	s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
}

func (s *ServiceSuite) TestSubmit_CollaboratorFailuresPropagate() {
	s.Run("registry rejects the id", func() {
		s.expectValidSubmit()
		taken := dErrors.New(dErrors.CodeConflict, "proposal id already used")
		s.registry.EXPECT().SubmitProposal(gomock.Any(), org, propID).Return(taken)

		_, err := s.service.Submit(s.ctx, s.submitRequest(models.ActionDeposit, amount))
		s.ErrorIs(err, taken)
		s.True(dErrors.HasCode(err, dErrors.CodeConflict))
		s.assertNotStored()
	})

	s.Run("voting adapter fails to start the vote", func() {
		registered := map[domain.ProposalID]bool{}
		expectRegistration := func() {
			s.registry.EXPECT().SubmitProposal(gomock.Any(), org, propID).
				DoAndReturn(func(ctx context.Context, _ domain.OrganizationID, id domain.ProposalID) error {
					if registered[id] {
						return dErrors.New(dErrors.CodeConflict, "proposal id already used")
					}
					registered[id] = true
					tx.OnRollback(ctx, func() { delete(registered, id) })
					return nil
				})
			s.registry.EXPECT().AdapterAddress(gomock.Any(), org, ports.AdapterVoting).Return(votingAddr, nil)
			s.votings.EXPECT().Voting(gomock.Any(), votingAddr).Return(s.voting, nil)
			s.voting.EXPECT().SenderAddress(gomock.Any(), org, self, data, member).Return(member, nil)
			s.registry.EXPECT().SponsorProposal(gomock.Any(), org, propID, member, votingAddr).Return(nil)
		}

		s.expectValidSubmit()
		expectRegistration()
		boom := errors.New("voting unavailable")
		s.voting.EXPECT().StartNewVoting(gomock.Any(), org, propID, data).Return(boom)

		_, err := s.service.Submit(s.ctx, s.submitRequest(models.ActionDeposit, amount))
		s.ErrorIs(err, boom)
		s.assertNotStored()
		s.False(registered[propID], "registration is undone with the failed unit of work")

		s.expectValidSubmit()
		expectRegistration()
		s.voting.EXPECT().StartNewVoting(gomock.Any(), org, propID, data).Return(nil)
		s.expectAudit(audit.EventProposalSubmitted)

		p, err := s.service.Submit(s.ctx, s.submitRequest(models.ActionDeposit, amount))
		s.Require().NoError(err, "resubmitting the same id succeeds")
		s.Equal(propID, p.ID)
		s.True(registered[propID])
	})
}

func (s *ServiceSuite) TestSubmit_LockContention() {
	busy := dErrors.Wrap(models.ErrReentrantCall, dErrors.CodeConflict, "busy")
	s.locker.EXPECT().Lock(gomock.Any(), org).Return(nil, busy)

	_, err := s.service.Submit(s.ctx, s.submitRequest(models.ActionDeposit, amount))
	s.ErrorIs(err, models.ErrReentrantCall)
	s.assertNotStored()
}

// =============================================================================
// Process Tests
// =============================================================================

func (s *ServiceSuite) expectPassedVote() {
	s.registry.EXPECT().VotingAdapter(gomock.Any(), org, propID).Return(votingAddr, true, nil)
	s.votings.EXPECT().Voting(gomock.Any(), votingAddr).Return(s.voting, nil)
	s.voting.EXPECT().VoteResult(gomock.Any(), org, propID).Return(models.VotePass, nil)
}

func (s *ServiceSuite) assertProcessed(want bool) {
	p, err := s.store.FindByKey(s.ctx, models.Key{Organization: org, ID: propID})
	s.Require().NoError(err)
	s.Equal(want, p.IsProcessed())
}

func (s *ServiceSuite) TestProcess_NotFound() {
	s.expectLock()
	err := s.service.Process(s.ctx, org, propID)
	s.ErrorIs(err, models.ErrProposalNotFound)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	s.Equal(1, s.released)
}

func (s *ServiceSuite) TestProcess_AdapterNotFound() {
	s.seed(models.ActionDeposit)

	s.Run("registry has no adapter bound", func() {
		s.expectLock()
		s.registry.EXPECT().VotingAdapter(gomock.Any(), org, propID).Return(domain.Address(""), false, nil)

		err := s.service.Process(s.ctx, org, propID)
		s.ErrorIs(err, models.ErrAdapterNotFound)
		s.True(dErrors.HasCode(err, dErrors.CodePreconditionFailed))
	})

	s.Run("bound adapter is not deployed", func() {
		s.expectLock()
		s.registry.EXPECT().VotingAdapter(gomock.Any(), org, propID).Return(votingAddr, true, nil)
		s.votings.EXPECT().Voting(gomock.Any(), votingAddr).Return(nil, sentinel.ErrNotFound)

		err := s.service.Process(s.ctx, org, propID)
		s.ErrorIs(err, models.ErrAdapterNotFound)
	})

	s.assertProcessed(false)
}

func (s *ServiceSuite) TestProcess_VoteNotPassed() {
	s.seed(models.ActionDeposit)

	for _, result := range []models.VoteResult{models.VoteNotStarted, models.VoteInProgress, models.VoteGracePeriod, models.VoteTie, models.VoteFail} {
		s.Run(result.String(), func() {
			s.expectLock()
			s.registry.EXPECT().VotingAdapter(gomock.Any(), org, propID).Return(votingAddr, true, nil)
			s.votings.EXPECT().Voting(gomock.Any(), votingAddr).Return(s.voting, nil)
			s.voting.EXPECT().VoteResult(gomock.Any(), org, propID).Return(result, nil)

			err := s.service.Process(s.ctx, org, propID)
			s.ErrorIs(err, models.ErrVoteNotPassed)
			s.True(dErrors.HasCode(err, dErrors.CodePreconditionFailed))
		})
	}
	s.assertProcessed(false)
}

func (s *ServiceSuite) TestProcess_StagedActions() {
	for _, action := range []models.Action{models.ActionDeposit, models.ActionWithdraw, models.ActionRepay} {
		s.Run(action.String(), func() {
			s.SetupTest()
			s.seed(action)
			s.expectLock()
			s.expectPassedVote()
			gomock.InOrder(
				s.registry.EXPECT().ProcessProposal(gomock.Any(), org, propID).Return(nil),
				s.registry.EXPECT().ExtensionAddress(gomock.Any(), org, ports.ExtensionBank).Return(bankAddr, nil),
				s.ledgers.EXPECT().Ledger(gomock.Any(), bankAddr).Return(s.ledger, nil),
				s.ledger.EXPECT().SubtractFromBalance(gomock.Any(), treasury, token, amount).Return(nil),
				s.ledger.EXPECT().AddToBalance(gomock.Any(), self, token, amount).Return(nil),
				s.ledger.EXPECT().BalanceOf(gomock.Any(), self, token).Return(amount, nil),
				s.ledger.EXPECT().Withdraw(gomock.Any(), self, token, amount).Return(nil),
				s.lending.EXPECT().Execute(gomock.Any(), action, token, amount, bankAddr).Return(nil),
			)
			s.expectAudit(audit.EventProposalProcessed)

			s.Require().NoError(s.service.Process(s.ctx, org, propID))
			s.assertProcessed(true)
			s.Equal(1, s.released)
		})
	}
}

func (s *ServiceSuite) TestProcess_WithdrawsWholeStagedBalance() {
	s.seed(models.ActionDeposit)
	s.expectLock()
	s.expectPassedVote()
	s.registry.EXPECT().ProcessProposal(gomock.Any(), org, propID).Return(nil)
	s.expectBankLedger()
	leftover := decimal.NewFromInt(1003)
	s.ledger.EXPECT().SubtractFromBalance(gomock.Any(), treasury, token, amount).Return(nil)
	s.ledger.EXPECT().AddToBalance(gomock.Any(), self, token, amount).Return(nil)
	s.ledger.EXPECT().BalanceOf(gomock.Any(), self, token).Return(leftover, nil)
	s.ledger.EXPECT().Withdraw(gomock.Any(), self, token, leftover).Return(nil)
	s.lending.EXPECT().Execute(gomock.Any(), models.ActionDeposit, token, amount, bankAddr).Return(nil)
	s.expectAudit(audit.EventProposalProcessed)

	s.Require().NoError(s.service.Process(s.ctx, org, propID))
}

func (s *ServiceSuite) TestProcess_Borrow() {
	s.seed(models.ActionBorrow)
	s.expectLock()
	s.expectPassedVote()
	gomock.InOrder(
		s.registry.EXPECT().ProcessProposal(gomock.Any(), org, propID).Return(nil),
		s.lending.EXPECT().Execute(gomock.Any(), models.ActionBorrow, token, amount, self).Return(nil),
		s.custody.EXPECT().Transfer(gomock.Any(), token, self, treasury, amount).Return(nil),
	)
	s.expectAudit(audit.EventProposalProcessed)

	s.Require().NoError(s.service.Process(s.ctx, org, propID))
	s.assertProcessed(true)
}

func (s *ServiceSuite) TestProcess_InsufficientBalance() {
	s.seed(models.ActionRepay)
	s.expectLock()
	s.expectPassedVote()
	s.registry.EXPECT().ProcessProposal(gomock.Any(), org, propID).Return(nil)
	s.expectBankLedger()
	s.ledger.EXPECT().SubtractFromBalance(gomock.Any(), treasury, token, amount).Return(nil)
	s.ledger.EXPECT().AddToBalance(gomock.Any(), self, token, amount).Return(nil)
	s.ledger.EXPECT().BalanceOf(gomock.Any(), self, token).Return(decimal.NewFromInt(999), nil)

	err := s.service.Process(s.ctx, org, propID)
	s.ErrorIs(err, models.ErrInsufficientBalance)
	s.assertProcessed(false)
}

func (s *ServiceSuite) TestProcess_LendingFailureAborts() {
	s.seed(models.ActionBorrow)
	s.expectLock()
	s.expectPassedVote()
	poolErr := errors.New("borrow cap reached")
	marked := false
	s.registry.EXPECT().ProcessProposal(gomock.Any(), org, propID).
		DoAndReturn(func(ctx context.Context, _ domain.OrganizationID, _ domain.ProposalID) error {
			marked = true
			tx.OnRollback(ctx, func() { marked = false })
			return nil
		})
	s.lending.EXPECT().Execute(gomock.Any(), models.ActionBorrow, token, amount, self).Return(poolErr)

	err := s.service.Process(s.ctx, org, propID)
	s.ErrorIs(err, poolErr)
	s.assertProcessed(false)
	s.False(marked, "the registry mark is undone with the failed unit of work")
	s.Equal(1, s.released)
}

func (s *ServiceSuite) TestProcess_RegistryRejectsSecondProcess() {
	s.seed(models.ActionDeposit)
	s.expectLock()
	s.expectPassedVote()
	done := dErrors.New(dErrors.CodeConflict, "proposal already processed")
	s.registry.EXPECT().ProcessProposal(gomock.Any(), org, propID).Return(done)

	err := s.service.Process(s.ctx, org, propID)
	s.ErrorIs(err, done)
}

func (s *ServiceSuite) TestProcess_AlreadyProcessedLocally() {
	p := s.seed(models.ActionDeposit)
	p.ApplyProcessed(time.Now())
	s.Require().NoError(s.store.Save(s.ctx, p))
	s.expectLock()

	err := s.service.Process(s.ctx, org, propID)
	s.ErrorIs(err, models.ErrAlreadyProcessed)
	s.True(dErrors.HasCode(err, dErrors.CodeConflict))
}

func (s *ServiceSuite) TestProcess_LockContention() {
	s.seed(models.ActionDeposit)
	s.locker.EXPECT().Lock(gomock.Any(), org).Return(nil, dErrors.Wrap(models.ErrReentrantCall, dErrors.CodeConflict, "busy"))

	err := s.service.Process(s.ctx, org, propID)
	s.ErrorIs(err, models.ErrReentrantCall)
	s.assertProcessed(false)
}

func (s *ServiceSuite) TestProcess_IgnoresCancellationOnceLocked() {
	s.seed(models.ActionBorrow)
	ctx, cancel := context.WithCancel(s.ctx)
	s.locker.EXPECT().Lock(gomock.Any(), org).DoAndReturn(func(context.Context, domain.OrganizationID) (func(), error) {
		cancel()
		return func() { s.released++ }, nil
	})
	s.expectPassedVote()
	s.registry.EXPECT().ProcessProposal(gomock.Any(), org, propID).Return(nil)
	s.lending.EXPECT().Execute(gomock.Any(), models.ActionBorrow, token, amount, self).
		DoAndReturn(func(ctx context.Context, _ models.Action, _ domain.Address, _ decimal.Decimal, _ domain.Address) error {
			s.NoError(ctx.Err())
			return nil
		})
	s.custody.EXPECT().Transfer(gomock.Any(), token, self, treasury, amount).Return(nil)
	s.expectAudit(audit.EventProposalProcessed)

	s.Require().NoError(s.service.Process(ctx, org, propID))
	s.assertProcessed(true)
}

// =============================================================================
// Read and Direct Transfer Tests
// =============================================================================

func (s *ServiceSuite) TestGet() {
	s.seed(models.ActionWithdraw)

	p, err := s.service.Get(s.ctx, org, propID)
	s.Require().NoError(err)
	s.Equal(models.ActionWithdraw, p.Action)

	_, err = s.service.Get(s.ctx, org, "missing")
	s.ErrorIs(err, models.ErrProposalNotFound)

	list, err := s.service.List(s.ctx, org)
	s.Require().NoError(err)
	s.Len(list, 1)
}

func (s *ServiceSuite) TestReceiveFunds_AlwaysRejected() {
	s.expectAudit(audit.EventTransferRejected)

	err := s.service.ReceiveFunds(s.ctx, member, token)
	s.ErrorIs(err, models.ErrDirectTransferRejected)
	s.True(dErrors.HasCode(err, dErrors.CodeForbidden))
}
