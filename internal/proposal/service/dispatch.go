package service

import (
	"context"
	"fmt"

	"treasury/internal/proposal/models"
)

// dispatcher routes a passed proposal to its staging path and lending call.
//
//	borrow:                   borrow on behalf of self, then self -> treasury custody transfer
//	deposit, withdraw, repay: stage treasury -> self through the ledger, then call
//	                          on behalf of the bank extension
type dispatcher struct {
	ctx      context.Context
	svc      *Service
	proposal *models.Proposal
}

func (d *dispatcher) OnDeposit() error {
	return d.staged(models.ActionDeposit)
}

func (d *dispatcher) OnWithdraw() error {
	return d.staged(models.ActionWithdraw)
}

func (d *dispatcher) OnRepay() error {
	return d.staged(models.ActionRepay)
}

func (d *dispatcher) OnBorrow() error {
	s, p := d.svc, d.proposal
	if err := s.lending.Execute(d.ctx, models.ActionBorrow, p.Token, p.Amount, s.self); err != nil {
		return fmt.Errorf("lending borrow: %w", err)
	}
	if err := s.custody.Transfer(d.ctx, p.Token, s.self, s.treasury, p.Amount); err != nil {
		return fmt.Errorf("transfer borrowed funds to treasury: %w", err)
	}
	return nil
}

// staged releases the proposal amount from the treasury ledger account into
// custody, then issues the lending call on behalf of the bank extension.
func (d *dispatcher) staged(action models.Action) error {
	s, p := d.svc, d.proposal
	ledger, bank, err := s.bankLedger(d.ctx, p.Organization)
	if err != nil {
		return err
	}
	if err := stage(d.ctx, ledger, s.treasury, s.self, p.Token, p.Amount); err != nil {
		return err
	}
	if err := s.lending.Execute(d.ctx, action, p.Token, p.Amount, bank); err != nil {
		return fmt.Errorf("lending %s: %w", action, err)
	}
	return nil
}

var _ models.ActionHandler = (*dispatcher)(nil)
