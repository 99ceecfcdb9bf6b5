package bank

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"treasury/internal/proposal/ports"
	"treasury/pkg/domain"
	"treasury/pkg/platform/sentinel"
	"treasury/pkg/platform/tx"
)

// Ledger is one organization's bank extension. Internal balances are bookkeeping
// entries; the tokens behind them sit in the vault under the ledger's own address.
// Balance changes made inside a unit of work are reversed if it fails.
type Ledger struct {
	address domain.Address
	vault   *Vault

	mu       sync.RWMutex
	allowed  map[domain.Address]bool
	balances map[holding]decimal.Decimal
}

func NewLedger(address domain.Address, vault *Vault) *Ledger {
	return &Ledger{
		address:  address,
		vault:    vault,
		allowed:  make(map[domain.Address]bool),
		balances: make(map[holding]decimal.Decimal),
	}
}

func (l *Ledger) Address() domain.Address {
	return l.address
}

// AllowToken adds token to the allow-list.
func (l *Ledger) AllowToken(token domain.Address) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.allowed[token] = true
}

func (l *Ledger) IsTokenAllowed(_ context.Context, token domain.Address) (bool, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.allowed[token], nil
}

func (l *Ledger) SubtractFromBalance(ctx context.Context, account, token domain.Address, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	h := holding{account, token}
	if l.balances[h].LessThan(amount) {
		return fmt.Errorf("subtract %s of %s from %s: %w", amount, token, account, ErrInsufficientFunds)
	}
	l.adjust(ctx, h, amount.Neg())
	return nil
}

func (l *Ledger) AddToBalance(ctx context.Context, account, token domain.Address, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.adjust(ctx, holding{account, token}, amount)
	return nil
}

func (l *Ledger) BalanceOf(_ context.Context, account, token domain.Address) (decimal.Decimal, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.balances[holding{account, token}], nil
}

// Withdraw releases destination's ledger balance into destination's custody.
func (l *Ledger) Withdraw(ctx context.Context, destination, token domain.Address, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	h := holding{destination, token}
	if l.balances[h].LessThan(amount) {
		return fmt.Errorf("withdraw %s of %s for %s: %w", amount, token, destination, ErrInsufficientFunds)
	}
	if err := l.vault.Transfer(ctx, token, l.address, destination, amount); err != nil {
		return err
	}
	l.adjust(ctx, h, amount.Neg())
	return nil
}

// adjust applies delta to h and registers the inverse with ctx's journal.
// Callers hold l.mu.
func (l *Ledger) adjust(ctx context.Context, h holding, delta decimal.Decimal) {
	l.balances[h] = l.balances[h].Add(delta)
	tx.OnRollback(ctx, func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		l.balances[h] = l.balances[h].Sub(delta)
	})
}

// Fund moves tokens from a holder's custody into the ledger, crediting account.
func (l *Ledger) Fund(ctx context.Context, from, account, token domain.Address, amount decimal.Decimal) error {
	if err := l.vault.Transfer(ctx, token, from, l.address, amount); err != nil {
		return err
	}
	return l.AddToBalance(ctx, account, token, amount)
}

// Directory resolves ledgers by address.
type Directory struct {
	mu      sync.RWMutex
	ledgers map[domain.Address]*Ledger
}

func NewDirectory(ledgers ...*Ledger) *Directory {
	d := &Directory{ledgers: make(map[domain.Address]*Ledger)}
	for _, l := range ledgers {
		d.Register(l)
	}
	return d
}

func (d *Directory) Register(l *Ledger) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.ledgers[l.address] = l
}

func (d *Directory) Ledger(_ context.Context, addr domain.Address) (ports.Ledger, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	l, ok := d.ledgers[addr]
	if !ok {
		return nil, fmt.Errorf("ledger %s: %w", addr, sentinel.ErrNotFound)
	}
	return l, nil
}

var (
	_ ports.Ledger  = (*Ledger)(nil)
	_ ports.Ledgers = (*Directory)(nil)
	_ ports.Custody = (*Vault)(nil)
)
