package main

import (
	"context"

	"github.com/shopspring/decimal"

	"treasury/internal/bank"
	"treasury/internal/lending"
	"treasury/internal/platform/config"
	"treasury/internal/registry"
	"treasury/internal/voting"
	"treasury/pkg/domain"
)

// Fixed addresses of the in-process development organization.
var (
	devOrganization = domain.OrganizationID(domain.MustAddress("0xaa00000000000000000000000000000000000001"))
	devBank         = domain.MustAddress("0xba00000000000000000000000000000000000001")
	devVoting       = domain.MustAddress("0x0e00000000000000000000000000000000000001")
	devToken        = domain.MustAddress("0x7000000000000000000000000000000000000001")
	devPoolReserve  = domain.MustAddress("0x5e00000000000000000000000000000000000001")
	devMember       = domain.MustAddress("0x2000000000000000000000000000000000000002")
)

// devNetwork is the in-process stand-in for the registry, bank, voting and
// lending deployments the service talks to.
type devNetwork struct {
	vault    *bank.Vault
	ledgers  *bank.Directory
	registry *registry.Registry
	voting   *voting.Adapter
	votings  *voting.Directory
	pool     *lending.SimulatedPool
}

func newDevNetwork(ctx context.Context, cfg config.Treasury) (*devNetwork, error) {
	vault := bank.NewVault()
	ledger := bank.NewLedger(devBank, vault)
	ledger.AllowToken(devToken)

	vault.Mint(devMember, devToken, decimal.NewFromInt(1_000_000))
	vault.Mint(devPoolReserve, devToken, decimal.NewFromInt(1_000_000))
	if err := ledger.Fund(ctx, devMember, cfg.Account, devToken, decimal.NewFromInt(500_000)); err != nil {
		return nil, err
	}

	reg := registry.New()
	reg.Install(devOrganization, devBank, devVoting)
	adapter := voting.NewAdapter(devVoting)

	return &devNetwork{
		vault:    vault,
		ledgers:  bank.NewDirectory(ledger),
		registry: reg,
		voting:   adapter,
		votings:  voting.NewDirectory(adapter),
		pool:     lending.NewSimulatedPool(vault, cfg.Adapter, devPoolReserve),
	}, nil
}
