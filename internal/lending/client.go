// Package lending shapes treasury actions into lending facility calls.
package lending

import (
	"context"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"treasury/internal/proposal/models"
	"treasury/internal/proposal/ports"
	"treasury/pkg/domain"
)

const (
	// ReferralCode is sent with every deposit and borrow.
	ReferralCode uint16 = 0

	// InterestRateModeStable is the rate mode for borrow and repay.
	InterestRateModeStable uint8 = 1
)

// Recorder observes lending calls. *metrics.Metrics satisfies it.
type Recorder interface {
	ObserveLendingCall(action string, start time.Time, err error)
}

// Client issues exactly one pool call per Execute. It never retries; a failed call
// fails the whole operation.
type Client struct {
	pool     ports.LendingPool
	logger   *slog.Logger
	recorder Recorder
}

type Option func(*Client)

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

func WithRecorder(r Recorder) Option {
	return func(c *Client) {
		c.recorder = r
	}
}

func NewClient(pool ports.LendingPool, opts ...Option) *Client {
	c := &Client{pool: pool}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Execute issues the pool call for action. For Withdraw, onBehalfOf is the
// recipient of the withdrawn funds.
func (c *Client) Execute(ctx context.Context, action models.Action, token domain.Address, amount decimal.Decimal, onBehalfOf domain.Address) error {
	start := time.Now()
	err := action.Dispatch(&poolCall{
		ctx:        ctx,
		pool:       c.pool,
		token:      token,
		amount:     amount,
		onBehalfOf: onBehalfOf,
	})
	if c.recorder != nil {
		c.recorder.ObserveLendingCall(action.String(), start, err)
	}
	if c.logger != nil {
		c.logger.DebugContext(ctx, "lending call",
			"action", action.String(),
			"token", token,
			"amount", amount,
			"on_behalf_of", onBehalfOf,
			"error", err,
		)
	}
	return err
}

// poolCall binds one Execute's arguments to the per-action call shapes.
type poolCall struct {
	ctx        context.Context
	pool       ports.LendingPool
	token      domain.Address
	amount     decimal.Decimal
	onBehalfOf domain.Address
}

func (p *poolCall) OnDeposit() error {
	return p.pool.Deposit(p.ctx, p.token, p.amount, p.onBehalfOf, ReferralCode)
}

func (p *poolCall) OnWithdraw() error {
	return p.pool.Withdraw(p.ctx, p.token, p.amount, p.onBehalfOf)
}

func (p *poolCall) OnBorrow() error {
	return p.pool.Borrow(p.ctx, p.token, p.amount, InterestRateModeStable, ReferralCode, p.onBehalfOf)
}

func (p *poolCall) OnRepay() error {
	return p.pool.Repay(p.ctx, p.token, p.amount, InterestRateModeStable, p.onBehalfOf)
}

var _ ports.Lending = (*Client)(nil)
