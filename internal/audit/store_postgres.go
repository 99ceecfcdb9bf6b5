package audit

import (
	"context"
	"database/sql"
	"fmt"

	"treasury/pkg/platform/tx"
)

// PostgresSchema creates the audit event table.
const PostgresSchema = `
CREATE TABLE IF NOT EXISTS treasury_audit_events (
	id              UUID PRIMARY KEY,
	category        TEXT NOT NULL,
	timestamp       TIMESTAMPTZ NOT NULL,
	action          TEXT NOT NULL,
	organization_id TEXT NOT NULL,
	proposal_id     TEXT,
	treasury_action TEXT,
	actor           TEXT,
	token           TEXT,
	amount          NUMERIC(78, 0),
	request_id      TEXT
);
CREATE INDEX IF NOT EXISTS treasury_audit_events_org_ts
	ON treasury_audit_events (organization_id, timestamp)`

// PostgresStore persists audit events in PostgreSQL. Appends join the
// transaction carried by the context, if any.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// MigratePostgres applies PostgresSchema.
func MigratePostgres(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, PostgresSchema); err != nil {
		return fmt.Errorf("migrate audit schema: %w", err)
	}
	return nil
}

// Append inserts event. Duplicate ids are ignored so redelivery is harmless.
func (s *PostgresStore) Append(ctx context.Context, event Event) error {
	event = prepare(event)

	query := `
		INSERT INTO treasury_audit_events (
			id, category, timestamp, action, organization_id, proposal_id,
			treasury_action, actor, token, amount, request_id
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO NOTHING
	`
	_, err := tx.ExecutorFor(ctx, s.db).ExecContext(ctx, query,
		event.ID,
		string(event.Category),
		event.Timestamp,
		event.Action,
		event.Organization,
		nullable(event.ProposalID),
		nullable(event.TreasuryAction),
		nullable(event.Actor),
		nullable(event.Token),
		nullable(event.Amount),
		nullable(event.RequestID),
	)
	if err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}

// ListByOrganization returns an organization's events oldest first.
func (s *PostgresStore) ListByOrganization(ctx context.Context, org string) ([]Event, error) {
	query := `
		SELECT id, category, timestamp, action, organization_id,
			   COALESCE(proposal_id, ''), COALESCE(treasury_action, ''), COALESCE(actor, ''),
			   COALESCE(token, ''), COALESCE(amount::TEXT, ''), COALESCE(request_id, '')
		FROM treasury_audit_events
		WHERE organization_id = $1
		ORDER BY timestamp ASC
	`
	rows, err := s.db.QueryContext(ctx, query, org)
	if err != nil {
		return nil, fmt.Errorf("query audit events: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var (
			e        Event
			category string
		)
		if err := rows.Scan(
			&e.ID,
			&category,
			&e.Timestamp,
			&e.Action,
			&e.Organization,
			&e.ProposalID,
			&e.TreasuryAction,
			&e.Actor,
			&e.Token,
			&e.Amount,
			&e.RequestID,
		); err != nil {
			return nil, fmt.Errorf("scan audit event: %w", err)
		}
		e.Category = EventCategory(category)
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit events: %w", err)
	}
	return events, nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
