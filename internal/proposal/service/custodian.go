package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"treasury/internal/proposal/models"
	"treasury/internal/proposal/ports"
	"treasury/pkg/domain"
	dErrors "treasury/pkg/domain-errors"
)

// stage moves amount of token from one ledger account to another, then releases
// the destination's entire ledger balance into its directly held custody.
//
// The balance check guards against ledger accounting bugs; a correct ledger
// never trips it.
func stage(ctx context.Context, ledger ports.Ledger, from, to, token domain.Address, amount decimal.Decimal) error {
	if err := ledger.SubtractFromBalance(ctx, from, token, amount); err != nil {
		return fmt.Errorf("debit %s: %w", from, err)
	}
	if err := ledger.AddToBalance(ctx, to, token, amount); err != nil {
		return fmt.Errorf("credit %s: %w", to, err)
	}

	balance, err := ledger.BalanceOf(ctx, to, token)
	if err != nil {
		return fmt.Errorf("read balance of %s: %w", to, err)
	}
	if balance.LessThan(amount) {
		return dErrors.Wrap(models.ErrInsufficientBalance, dErrors.CodePreconditionFailed,
			fmt.Sprintf("ledger balance %s is below staged amount %s", balance, amount))
	}

	if err := ledger.Withdraw(ctx, to, token, balance); err != nil {
		return fmt.Errorf("withdraw to custody: %w", err)
	}
	return nil
}
