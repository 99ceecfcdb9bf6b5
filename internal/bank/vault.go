// Package bank provides in-process reference implementations of the organization
// bank extension: an internal ledger per organization and the vault of directly
// held token balances that ledgers and the lending facility settle against.
package bank

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"treasury/pkg/domain"
	"treasury/pkg/platform/tx"
)

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidAmount     = errors.New("amount must be positive")
)

type holding struct {
	account domain.Address
	token   domain.Address
}

// Vault tracks directly held (custody) balances per (account, token).
type Vault struct {
	mu       sync.RWMutex
	balances map[holding]decimal.Decimal
}

func NewVault() *Vault {
	return &Vault{balances: make(map[holding]decimal.Decimal)}
}

// Mint credits account out of thin air. Used to seed development and test balances.
func (v *Vault) Mint(account, token domain.Address, amount decimal.Decimal) {
	v.mu.Lock()
	defer v.mu.Unlock()
	h := holding{account, token}
	v.balances[h] = v.balances[h].Add(amount)
}

func (v *Vault) BalanceOf(account, token domain.Address) decimal.Decimal {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.balances[holding{account, token}]
}

// Transfer moves amount of token from one account's custody to another's. Inside
// a unit of work the move is reversed if the work fails.
func (v *Vault) Transfer(ctx context.Context, token, from, to domain.Address, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	v.mu.Lock()
	defer v.mu.Unlock()

	src := holding{from, token}
	if v.balances[src].LessThan(amount) {
		return fmt.Errorf("transfer %s of %s from %s: %w", amount, token, from, ErrInsufficientFunds)
	}
	dst := holding{to, token}
	v.move(src, dst, amount)
	tx.OnRollback(ctx, func() {
		v.mu.Lock()
		defer v.mu.Unlock()
		v.move(dst, src, amount)
	})
	return nil
}

func (v *Vault) move(src, dst holding, amount decimal.Decimal) {
	v.balances[src] = v.balances[src].Sub(amount)
	v.balances[dst] = v.balances[dst].Add(amount)
}
