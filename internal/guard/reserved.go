package guard

import (
	"context"

	"treasury/internal/proposal/ports"
	"treasury/pkg/domain"
)

// Marker accounts the bank extension uses for internal bookkeeping.
var (
	EscrowAccount = domain.MustAddress("0x000000000000000000000000000000000000beef")
	TotalAccount  = domain.MustAddress("0x000000000000000000000000000000000000babe")
)

// ReservedSet is a static reserved-account policy shared by every organization:
// the zero address, the bookkeeping markers, the treasury account and any
// configured extras.
type ReservedSet struct {
	accounts map[domain.Address]struct{}
}

func NewReservedSet(treasury domain.Address, extra ...domain.Address) *ReservedSet {
	r := &ReservedSet{accounts: make(map[domain.Address]struct{})}
	for _, a := range append([]domain.Address{domain.ZeroAddress, EscrowAccount, TotalAccount, treasury}, extra...) {
		r.accounts[a] = struct{}{}
	}
	return r
}

func (r *ReservedSet) IsReserved(_ context.Context, _ domain.OrganizationID, account domain.Address) bool {
	_, ok := r.accounts[account]
	return ok
}

var _ ports.ReservedAccounts = (*ReservedSet)(nil)
