package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"treasury/internal/proposal/models"
	"treasury/pkg/domain"
	"treasury/pkg/platform/sentinel"
	"treasury/pkg/platform/tx"
)

var (
	orgA      = domain.OrganizationID(domain.MustAddress("0xaa00000000000000000000000000000000000001"))
	orgB      = domain.OrganizationID(domain.MustAddress("0xbb00000000000000000000000000000000000001"))
	applicant = domain.MustAddress("0x1000000000000000000000000000000000000001")
	token     = domain.MustAddress("0x7000000000000000000000000000000000000001")
)

func newProposal(org domain.OrganizationID, id string, amount int64, at time.Time) *models.Proposal {
	p, err := models.NewProposal(
		models.Key{Organization: org, ID: domain.ProposalID(id)},
		applicant, token, decimal.NewFromInt(amount), models.ActionDeposit, "", at,
	)
	if err != nil {
		panic(err)
	}
	return p
}

type InMemoryStoreSuite struct {
	suite.Suite
	ctx   context.Context
	store *InMemoryStore
	now   time.Time
}

func TestInMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(InMemoryStoreSuite))
}

func (s *InMemoryStoreSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = NewInMemoryStore()
	s.now = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
}

func (s *InMemoryStoreSuite) TestSaveAndFind() {
	p := newProposal(orgA, "prop-1", 1000, s.now)
	s.Require().NoError(s.store.Save(s.ctx, p))

	got, err := s.store.FindByKey(s.ctx, p.Key())
	s.Require().NoError(err)
	s.Equal(p, got)

	s.Run("returned record is a copy", func() {
		got.ApplyProcessed(s.now)
		again, err := s.store.FindByKey(s.ctx, p.Key())
		s.Require().NoError(err)
		s.False(again.IsProcessed())
	})

	s.Run("missing key reports not found", func() {
		_, err := s.store.FindByKey(s.ctx, models.Key{Organization: orgA, ID: "missing"})
		s.ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("same id in another organization is a different record", func() {
		_, err := s.store.FindByKey(s.ctx, models.Key{Organization: orgB, ID: "prop-1"})
		s.ErrorIs(err, sentinel.ErrNotFound)
	})
}

func (s *InMemoryStoreSuite) TestSaveOverwritesInPlace() {
	s.Require().NoError(s.store.Save(s.ctx, newProposal(orgA, "prop-1", 1000, s.now)))
	s.Require().NoError(s.store.Save(s.ctx, newProposal(orgA, "prop-1", 42, s.now)))

	list, err := s.store.ListByOrganization(s.ctx, orgA)
	s.Require().NoError(err)
	s.Require().Len(list, 1)
	s.Equal("42", list[0].Amount.String())
}

func (s *InMemoryStoreSuite) TestListOrdersBySubmission() {
	s.Require().NoError(s.store.Save(s.ctx, newProposal(orgA, "b", 1, s.now.Add(time.Minute))))
	s.Require().NoError(s.store.Save(s.ctx, newProposal(orgA, "a", 1, s.now)))
	s.Require().NoError(s.store.Save(s.ctx, newProposal(orgB, "c", 1, s.now)))

	list, err := s.store.ListByOrganization(s.ctx, orgA)
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal(domain.ProposalID("a"), list[0].ID)
	s.Equal(domain.ProposalID("b"), list[1].ID)
}

func (s *InMemoryStoreSuite) TestRunInTx() {
	p := newProposal(orgA, "prop-1", 1000, s.now)

	s.Run("failed callback leaves no trace", func() {
		boom := errors.New("voting adapter unavailable")
		err := s.store.RunInTx(s.ctx, func(ctx context.Context, tx Store) error {
			s.Require().NoError(tx.Save(s.ctx, p))
			staged, err := tx.FindByKey(s.ctx, p.Key())
			s.Require().NoError(err)
			s.Equal(p.Amount, staged.Amount)
			return boom
		})
		s.ErrorIs(err, boom)

		_, err = s.store.FindByKey(s.ctx, p.Key())
		s.ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("successful callback commits", func() {
		err := s.store.RunInTx(s.ctx, func(ctx context.Context, tx Store) error {
			return tx.Save(s.ctx, p)
		})
		s.Require().NoError(err)

		got, err := s.store.FindByKey(s.ctx, p.Key())
		s.Require().NoError(err)
		s.Equal(p.ID, got.ID)
	})

	s.Run("staged list merges uncommitted writes", func() {
		err := s.store.RunInTx(s.ctx, func(ctx context.Context, tx Store) error {
			s.Require().NoError(tx.Save(s.ctx, newProposal(orgA, "prop-2", 5, s.now.Add(time.Second))))
			list, err := tx.ListByOrganization(s.ctx, orgA)
			s.Require().NoError(err)
			s.Len(list, 2)
			return errors.New("rollback")
		})
		s.Error(err)

		list, err := s.store.ListByOrganization(s.ctx, orgA)
		s.Require().NoError(err)
		s.Len(list, 1)
	})
}

func (s *InMemoryStoreSuite) TestRunInTx_StagedListKeepsSubmissionOrder() {
	s.Require().NoError(s.store.Save(s.ctx, newProposal(orgA, "m", 1, s.now.Add(2*time.Minute))))

	err := s.store.RunInTx(s.ctx, func(ctx context.Context, st Store) error {
		for i, id := range []string{"z", "y", "x", "w"} {
			s.Require().NoError(st.Save(ctx, newProposal(orgA, id, 1, s.now.Add(time.Duration(i)*time.Second))))
		}
		list, err := st.ListByOrganization(ctx, orgA)
		s.Require().NoError(err)
		ids := make([]domain.ProposalID, 0, len(list))
		for _, p := range list {
			ids = append(ids, p.ID)
		}
		s.Equal([]domain.ProposalID{"z", "y", "x", "w", "m"}, ids)
		return nil
	})
	s.Require().NoError(err)
}

func (s *InMemoryStoreSuite) TestRunInTx_JournalRollsBackOnFailure() {
	var undone []string
	err := s.store.RunInTx(s.ctx, func(ctx context.Context, st Store) error {
		tx.OnRollback(ctx, func() { undone = append(undone, "ledger debit") })
		tx.OnRollback(ctx, func() { undone = append(undone, "registry mark") })
		return errors.New("lending call failed")
	})
	s.Error(err)
	s.Equal([]string{"registry mark", "ledger debit"}, undone)

	undone = nil
	s.Require().NoError(s.store.RunInTx(s.ctx, func(ctx context.Context, st Store) error {
		tx.OnRollback(ctx, func() { undone = append(undone, "kept") })
		return nil
	}))
	s.Empty(undone, "committed work is not compensated")
}

func (s *InMemoryStoreSuite) TestRunInTx_NestedUnitForAnotherOrganization() {
	done := make(chan error, 1)
	go func() {
		done <- s.store.RunInTx(s.ctx, func(ctx context.Context, st Store) error {
			if err := st.Save(ctx, newProposal(orgA, "outer", 1, s.now)); err != nil {
				return err
			}
			return s.store.RunInTx(ctx, func(ctx context.Context, inner Store) error {
				return inner.Save(ctx, newProposal(orgB, "inner", 1, s.now))
			})
		})
	}()

	select {
	case err := <-done:
		s.Require().NoError(err)
	case <-time.After(2 * time.Second):
		s.FailNow("nested transaction for another organization did not return")
	}

	_, err := s.store.FindByKey(s.ctx, models.Key{Organization: orgA, ID: "outer"})
	s.NoError(err)
	_, err = s.store.FindByKey(s.ctx, models.Key{Organization: orgB, ID: "inner"})
	s.NoError(err)
}
