package lending

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"treasury/internal/proposal/ports"
	"treasury/pkg/domain"
	"treasury/pkg/platform/tx"
)

var (
	ErrNoDebt          = errors.New("repay exceeds outstanding debt")
	ErrNoSupply        = errors.New("withdraw exceeds supplied balance")
	ErrInvalidRateMode = errors.New("invalid interest rate mode")
)

// Call is one recorded pool invocation.
type Call struct {
	Method     string
	Token      domain.Address
	Amount     decimal.Decimal
	OnBehalfOf domain.Address
	RateMode   uint8
	Referral   uint16
}

type position struct {
	account domain.Address
	token   domain.Address
}

type recordedCall struct {
	seq  uint64
	call Call
}

// SimulatedPool is an in-process lending facility for development and tests.
// Funds settle through custody: the pool holds liquidity under its reserve
// address and every call is made as caller.
//
//   - Deposit pulls from caller, credits onBehalfOf's supply
//   - Withdraw burns caller's claim tokens, debits to's supply, pays to
//   - Borrow books debt on onBehalfOf, pays caller
//   - Repay pulls from caller, reduces onBehalfOf's debt
//
// Inside a unit of work (see tx.Journal) a call that is later rolled back leaves
// no position change and no entry in the call log.
type SimulatedPool struct {
	custody ports.Custody
	caller  domain.Address
	reserve domain.Address

	mu       sync.Mutex
	supplied map[position]decimal.Decimal
	debt     map[position]decimal.Decimal
	calls    []recordedCall
	seq      uint64
}

func NewSimulatedPool(custody ports.Custody, caller, reserve domain.Address) *SimulatedPool {
	return &SimulatedPool{
		custody:  custody,
		caller:   caller,
		reserve:  reserve,
		supplied: make(map[position]decimal.Decimal),
		debt:     make(map[position]decimal.Decimal),
	}
}

func (p *SimulatedPool) Deposit(ctx context.Context, token domain.Address, amount decimal.Decimal, onBehalfOf domain.Address, referral uint16) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.custody.Transfer(ctx, token, p.caller, p.reserve, amount); err != nil {
		return fmt.Errorf("deposit: %w", err)
	}
	p.book(ctx, p.supplied, position{onBehalfOf, token}, amount,
		Call{Method: "deposit", Token: token, Amount: amount, OnBehalfOf: onBehalfOf, Referral: referral})
	return nil
}

func (p *SimulatedPool) Withdraw(ctx context.Context, token domain.Address, amount decimal.Decimal, to domain.Address) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	pos := position{to, token}
	if p.supplied[pos].LessThan(amount) {
		return ErrNoSupply
	}
	if err := p.custody.Transfer(ctx, token, p.caller, p.reserve, amount); err != nil {
		return fmt.Errorf("withdraw: burn claim: %w", err)
	}
	if err := p.custody.Transfer(ctx, token, p.reserve, to, amount); err != nil {
		return fmt.Errorf("withdraw: pay out: %w", err)
	}
	p.book(ctx, p.supplied, pos, amount.Neg(),
		Call{Method: "withdraw", Token: token, Amount: amount, OnBehalfOf: to})
	return nil
}

func (p *SimulatedPool) Borrow(ctx context.Context, token domain.Address, amount decimal.Decimal, rateMode uint8, referral uint16, onBehalfOf domain.Address) error {
	if err := validRateMode(rateMode); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.custody.Transfer(ctx, token, p.reserve, p.caller, amount); err != nil {
		return fmt.Errorf("borrow: %w", err)
	}
	p.book(ctx, p.debt, position{onBehalfOf, token}, amount,
		Call{Method: "borrow", Token: token, Amount: amount, OnBehalfOf: onBehalfOf, RateMode: rateMode, Referral: referral})
	return nil
}

func (p *SimulatedPool) Repay(ctx context.Context, token domain.Address, amount decimal.Decimal, rateMode uint8, onBehalfOf domain.Address) error {
	if err := validRateMode(rateMode); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	pos := position{onBehalfOf, token}
	if p.debt[pos].LessThan(amount) {
		return ErrNoDebt
	}
	if err := p.custody.Transfer(ctx, token, p.caller, p.reserve, amount); err != nil {
		return fmt.Errorf("repay: %w", err)
	}
	p.book(ctx, p.debt, pos, amount.Neg(),
		Call{Method: "repay", Token: token, Amount: amount, OnBehalfOf: onBehalfOf, RateMode: rateMode})
	return nil
}

// Supplied returns account's supply position in token.
func (p *SimulatedPool) Supplied(account, token domain.Address) decimal.Decimal {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.supplied[position{account, token}]
}

// Debt returns account's outstanding debt in token.
func (p *SimulatedPool) Debt(account, token domain.Address) decimal.Decimal {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.debt[position{account, token}]
}

// Calls returns the recorded calls in order.
func (p *SimulatedPool) Calls() []Call {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Call, 0, len(p.calls))
	for _, rc := range p.calls {
		out = append(out, rc.call)
	}
	return out
}

// book applies delta to a position, logs call, and registers the inverse of both
// with ctx's journal. Callers hold p.mu.
func (p *SimulatedPool) book(ctx context.Context, book map[position]decimal.Decimal, pos position, delta decimal.Decimal, call Call) {
	p.seq++
	seq := p.seq
	book[pos] = book[pos].Add(delta)
	p.calls = append(p.calls, recordedCall{seq: seq, call: call})

	tx.OnRollback(ctx, func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		book[pos] = book[pos].Sub(delta)
		for i := len(p.calls) - 1; i >= 0; i-- {
			if p.calls[i].seq == seq {
				p.calls = append(p.calls[:i], p.calls[i+1:]...)
				break
			}
		}
	})
}

func validRateMode(mode uint8) error {
	if mode != 1 && mode != 2 {
		return ErrInvalidRateMode
	}
	return nil
}

var _ ports.LendingPool = (*SimulatedPool)(nil)
