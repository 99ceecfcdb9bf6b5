package store

import (
	"context"
	"database/sql"
	"time"

	dErrors "treasury/pkg/domain-errors"
	"treasury/pkg/platform/tx"
)

// PostgresTx runs store work inside a database transaction.
//
// No timeout is imposed by default: the unit of work includes collaborator calls,
// and a deadline firing between those calls and Commit would leave their effects
// in place with the record unwritten. WithTxTimeout opts in to a bound that
// applies only when ctx has no deadline of its own.
type PostgresTx struct {
	db      *sql.DB
	timeout time.Duration
}

// PostgresTxOption configures a PostgresTx.
type PostgresTxOption func(*PostgresTx)

// WithTxTimeout bounds transactions whose context carries no deadline. Zero
// disables the bound.
func WithTxTimeout(d time.Duration) PostgresTxOption {
	return func(t *PostgresTx) {
		t.timeout = d
	}
}

func NewPostgresTxRunner(db *sql.DB, opts ...PostgresTxOption) *PostgresTx {
	t := &PostgresTx{db: db}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// RunInTx begins a transaction, hands fn a context carrying both the *sql.Tx and
// a rollback journal, and commits when fn succeeds. The journal is rolled back
// when fn fails or the commit does.
func (t *PostgresTx) RunInTx(ctx context.Context, fn func(ctx context.Context, store Store) error) error {
	if err := ctx.Err(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeTimeout, "transaction aborted: context cancelled")
	}

	ctx, cancel := boundContext(ctx, t.timeout)
	defer cancel()

	sqlTx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = sqlTx.Rollback()
	}()

	ctx, journal := tx.WithJournal(tx.WithTx(ctx, sqlTx))
	if err := fn(ctx, NewPostgresTx(sqlTx)); err != nil {
		journal.Rollback()
		return err
	}
	if err := sqlTx.Commit(); err != nil {
		journal.Rollback()
		return dErrors.Wrap(err, dErrors.CodeInternal, "commit proposal transaction")
	}
	return nil
}

// boundContext applies timeout to ctx when it is positive and ctx has no
// deadline yet.
func boundContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return ctx, func() {}
	}
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}

var _ Tx = (*PostgresTx)(nil)
