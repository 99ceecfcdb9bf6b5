package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"treasury/internal/proposal/models"
	"treasury/pkg/domain"
	dErrors "treasury/pkg/domain-errors"
	"treasury/pkg/platform/sentinel"
	"treasury/pkg/platform/tx"
)

// Schema creates the proposal table. Amounts are whole token units and may exceed
// 64 bits, hence NUMERIC(78, 0).
const Schema = `
CREATE TABLE IF NOT EXISTS treasury_proposals (
	organization_id      TEXT NOT NULL,
	proposal_id          TEXT NOT NULL,
	applicant            TEXT NOT NULL,
	amount               NUMERIC(78, 0) NOT NULL CHECK (amount > 0),
	token                TEXT NOT NULL,
	action               TEXT NOT NULL,
	debt_token_recipient TEXT NOT NULL,
	sponsor              TEXT,
	submitted_at         TIMESTAMPTZ NOT NULL,
	processed_at         TIMESTAMPTZ,
	PRIMARY KEY (organization_id, proposal_id)
)`

const selectColumns = `organization_id, proposal_id, applicant, amount, token, action,
	debt_token_recipient, sponsor, submitted_at, processed_at`

// PostgresStore persists proposals in PostgreSQL.
type PostgresStore struct {
	db   *sql.DB
	exec tx.Executor
}

// NewPostgres constructs a PostgreSQL-backed proposal store. Calls join the
// transaction carried by the context, if any.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// NewPostgresTx binds a store to an open transaction.
func NewPostgresTx(t *sql.Tx) *PostgresStore {
	return &PostgresStore{exec: t}
}

// Migrate applies Schema.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("migrate proposal schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) executor(ctx context.Context) tx.Executor {
	if s.exec != nil {
		return s.exec
	}
	return tx.ExecutorFor(ctx, s.db)
}

func (s *PostgresStore) Save(ctx context.Context, p *models.Proposal) error {
	if p == nil {
		return fmt.Errorf("proposal is required")
	}
	_, err := s.executor(ctx).ExecContext(ctx, `
		INSERT INTO treasury_proposals (`+selectColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (organization_id, proposal_id) DO UPDATE SET
			applicant = EXCLUDED.applicant,
			amount = EXCLUDED.amount,
			token = EXCLUDED.token,
			action = EXCLUDED.action,
			debt_token_recipient = EXCLUDED.debt_token_recipient,
			sponsor = EXCLUDED.sponsor,
			submitted_at = EXCLUDED.submitted_at,
			processed_at = EXCLUDED.processed_at`,
		p.Organization.String(),
		p.ID.String(),
		p.Applicant.String(),
		p.Amount,
		p.Token.String(),
		p.Action.String(),
		p.DebtTokenRecipient.String(),
		nullString(p.Sponsor.String()),
		p.SubmittedAt,
		p.ProcessedAt,
	)
	if err != nil {
		return translate(err, "save proposal")
	}
	return nil
}

func (s *PostgresStore) FindByKey(ctx context.Context, key models.Key) (*models.Proposal, error) {
	row := s.executor(ctx).QueryRowContext(ctx, `
		SELECT `+selectColumns+`
		FROM treasury_proposals
		WHERE organization_id = $1 AND proposal_id = $2`,
		key.Organization.String(), key.ID.String(),
	)
	p, err := scanProposal(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("proposal %s: %w", key, sentinel.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find proposal: %w", err)
	}
	return p, nil
}

func (s *PostgresStore) ListByOrganization(ctx context.Context, org domain.OrganizationID) ([]*models.Proposal, error) {
	rows, err := s.executor(ctx).QueryContext(ctx, `
		SELECT `+selectColumns+`
		FROM treasury_proposals
		WHERE organization_id = $1
		ORDER BY submitted_at, proposal_id`,
		org.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("list proposals: %w", err)
	}
	defer rows.Close()

	var out []*models.Proposal
	for rows.Next() {
		p, err := scanProposal(rows)
		if err != nil {
			return nil, fmt.Errorf("scan proposal: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list proposals: %w", err)
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProposal(row scanner) (*models.Proposal, error) {
	var (
		org, id, applicant, token, action, debtRecipient string
		amount                                           decimal.Decimal
		sponsor                                          sql.NullString
		p                                                models.Proposal
		processedAt                                      sql.NullTime
	)
	if err := row.Scan(&org, &id, &applicant, &amount, &token, &action, &debtRecipient, &sponsor, &p.SubmittedAt, &processedAt); err != nil {
		return nil, err
	}
	a, err := models.ParseAction(action)
	if err != nil {
		return nil, fmt.Errorf("stored action %q: %w", action, err)
	}
	p.Organization = domain.OrganizationID(org)
	p.ID = domain.ProposalID(id)
	p.Applicant = domain.Address(applicant)
	p.Amount = amount
	p.Token = domain.Address(token)
	p.Action = a
	p.DebtTokenRecipient = domain.Address(debtRecipient)
	if sponsor.Valid {
		p.Sponsor = domain.Address(sponsor.String)
	}
	if processedAt.Valid {
		t := processedAt.Time
		p.ProcessedAt = &t
	}
	return &p, nil
}

// translate maps integrity violations to domain errors; the rest stay internal.
func translate(err error, op string) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Class() == "23" {
		return dErrors.Wrap(err, dErrors.CodeInvariantViolation, op+": "+pqErr.Code.Name())
	}
	return fmt.Errorf("%s: %w", op, err)
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

var (
	_ Store = (*PostgresStore)(nil)
)
