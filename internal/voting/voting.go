// Package voting is a reference voting adapter whose outcomes are recorded by hand.
// Tallying is out of scope: a proposal's result is whatever was last recorded.
package voting

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"treasury/internal/proposal/models"
	"treasury/internal/proposal/ports"
	"treasury/pkg/domain"
	dErrors "treasury/pkg/domain-errors"
	"treasury/pkg/platform/sentinel"
	"treasury/pkg/platform/tx"
)

var (
	ErrAlreadyStarted = errors.New("voting already started")
	ErrNotStarted     = errors.New("voting not started")
)

type ballotKey struct {
	org domain.OrganizationID
	id  domain.ProposalID
}

type delegation struct {
	org      domain.OrganizationID
	delegate domain.Address
}

// Adapter tracks one result per proposal and optional member delegations.
type Adapter struct {
	address domain.Address

	mu          sync.RWMutex
	results     map[ballotKey]models.VoteResult
	delegations map[delegation]domain.Address
}

func NewAdapter(address domain.Address) *Adapter {
	return &Adapter{
		address:     address,
		results:     make(map[ballotKey]models.VoteResult),
		delegations: make(map[delegation]domain.Address),
	}
}

func (a *Adapter) Address() domain.Address {
	return a.address
}

// Delegate lets delegate act for member in org.
func (a *Adapter) Delegate(org domain.OrganizationID, member, delegate domain.Address) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.delegations[delegation{org, delegate}] = member
}

// SenderAddress credits the member the caller is delegated by, or the caller itself.
func (a *Adapter) SenderAddress(_ context.Context, org domain.OrganizationID, _ domain.Address, _ []byte, caller domain.Address) (domain.Address, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if member, ok := a.delegations[delegation{org, caller}]; ok {
		return member, nil
	}
	return caller, nil
}

// StartNewVoting opens a ballot for id. A ballot opened inside a unit of work that
// later fails is dropped again.
func (a *Adapter) StartNewVoting(ctx context.Context, org domain.OrganizationID, id domain.ProposalID, _ []byte) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	k := ballotKey{org, id}
	if _, ok := a.results[k]; ok {
		return dErrors.Wrap(ErrAlreadyStarted, dErrors.CodeConflict, "voting for "+id.String()+" already started")
	}
	a.results[k] = models.VoteInProgress
	tx.OnRollback(ctx, func() {
		a.mu.Lock()
		defer a.mu.Unlock()
		delete(a.results, k)
	})
	return nil
}

func (a *Adapter) VoteResult(_ context.Context, org domain.OrganizationID, id domain.ProposalID) (models.VoteResult, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	r, ok := a.results[ballotKey{org, id}]
	if !ok {
		return models.VoteNotStarted, nil
	}
	return r, nil
}

// Record sets the outcome of a started vote.
func (a *Adapter) Record(_ context.Context, org domain.OrganizationID, id domain.ProposalID, result models.VoteResult) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	k := ballotKey{org, id}
	if _, ok := a.results[k]; !ok {
		return dErrors.Wrap(ErrNotStarted, dErrors.CodePreconditionFailed, "voting for "+id.String()+" not started")
	}
	a.results[k] = result
	return nil
}

// Directory resolves adapters by address.
type Directory struct {
	mu       sync.RWMutex
	adapters map[domain.Address]*Adapter
}

func NewDirectory(adapters ...*Adapter) *Directory {
	d := &Directory{adapters: make(map[domain.Address]*Adapter)}
	for _, a := range adapters {
		d.adapters[a.address] = a
	}
	return d
}

func (d *Directory) Voting(_ context.Context, addr domain.Address) (ports.Voting, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	a, ok := d.adapters[addr]
	if !ok {
		return nil, fmt.Errorf("voting adapter %s: %w", addr, sentinel.ErrNotFound)
	}
	return a, nil
}

var (
	_ ports.Voting         = (*Adapter)(nil)
	_ ports.VotingAdapters = (*Directory)(nil)
)
