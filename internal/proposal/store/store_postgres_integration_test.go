//go:build integration

package store_test

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"treasury/internal/proposal/models"
	"treasury/internal/proposal/store"
	"treasury/pkg/domain"
	"treasury/pkg/platform/sentinel"
	"treasury/pkg/platform/tx"
	"treasury/pkg/testutil/containers"
)

var (
	org       = domain.OrganizationID(domain.MustAddress("0xaa00000000000000000000000000000000000001"))
	applicant = domain.MustAddress("0x1000000000000000000000000000000000000001")
	token     = domain.MustAddress("0x7000000000000000000000000000000000000001")
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *store.PostgresStore
	tx       *store.PostgresTx
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.postgres = containers.GetManager().GetPostgres(s.T())
	s.Require().NoError(store.Migrate(context.Background(), s.postgres.DB))
	s.store = store.NewPostgres(s.postgres.DB)
	s.tx = store.NewPostgresTxRunner(s.postgres.DB)
}

func (s *PostgresStoreSuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateTables(context.Background(), "treasury_proposals"))
}

func makeProposal(id string, amount decimal.Decimal) *models.Proposal {
	p, err := models.NewProposal(
		models.Key{Organization: org, ID: domain.ProposalID(id)},
		applicant, token, amount, models.ActionBorrow, "",
		time.Now().UTC().Truncate(time.Microsecond),
	)
	if err != nil {
		panic(err)
	}
	return p
}

func (s *PostgresStoreSuite) TestRoundTripPreservesLargeAmounts() {
	ctx := context.Background()
	wei, _ := new(big.Int).SetString("123456789012345678901234567890", 10)
	p := makeProposal("prop-1", decimal.NewFromBigInt(wei, 0))
	p.ApplySponsor(applicant)

	s.Require().NoError(s.store.Save(ctx, p))

	got, err := s.store.FindByKey(ctx, p.Key())
	s.Require().NoError(err)
	s.Equal(p.Amount.String(), got.Amount.String())
	s.Equal(models.ActionBorrow, got.Action)
	s.Equal(applicant, got.DebtTokenRecipient)
	s.Equal(applicant, got.Sponsor)
	s.Nil(got.ProcessedAt)
	s.True(p.SubmittedAt.Equal(got.SubmittedAt))
}

func (s *PostgresStoreSuite) TestUpsertOverwrites() {
	ctx := context.Background()
	p := makeProposal("prop-1", decimal.NewFromInt(10))
	s.Require().NoError(s.store.Save(ctx, p))

	p.ApplyProcessed(time.Now().UTC())
	s.Require().NoError(s.store.Save(ctx, p))

	list, err := s.store.ListByOrganization(ctx, org)
	s.Require().NoError(err)
	s.Require().Len(list, 1)
	s.True(list[0].IsProcessed())
}

func (s *PostgresStoreSuite) TestRunInTxRollsBack() {
	ctx := context.Background()
	p := makeProposal("prop-1", decimal.NewFromInt(10))

	err := s.tx.RunInTx(ctx, func(ctx context.Context, tx store.Store) error {
		s.Require().NoError(tx.Save(ctx, p))
		return errors.New("abort")
	})
	s.Error(err)

	_, err = s.store.FindByKey(ctx, p.Key())
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestRunInTxCommits() {
	ctx := context.Background()
	p := makeProposal("prop-2", decimal.NewFromInt(10))

	s.Require().NoError(s.tx.RunInTx(ctx, func(ctx context.Context, tx store.Store) error {
		return tx.Save(ctx, p)
	}))

	_, err := s.store.FindByKey(ctx, p.Key())
	s.NoError(err)
}

func (s *PostgresStoreSuite) TestRunInTxCompensatesOnFailure() {
	ctx := context.Background()
	p := makeProposal("prop-3", decimal.NewFromInt(10))

	compensated := false
	err := s.tx.RunInTx(ctx, func(ctx context.Context, st store.Store) error {
		_, joined := tx.From(ctx)
		s.True(joined, "the unit of work carries the sql transaction")
		s.Require().NoError(st.Save(ctx, p))
		tx.OnRollback(ctx, func() { compensated = true })
		return errors.New("lending call failed")
	})
	s.Error(err)
	s.True(compensated)

	_, err = s.store.FindByKey(ctx, p.Key())
	s.ErrorIs(err, sentinel.ErrNotFound)
}
