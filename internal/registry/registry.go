// Package registry is an in-memory organization registry: per-organization proposal
// flags and the directory of installed extensions and adapters.
package registry

import (
	"context"
	"errors"
	"sync"

	"treasury/internal/proposal/ports"
	"treasury/pkg/domain"
	dErrors "treasury/pkg/domain-errors"
	"treasury/pkg/platform/tx"
)

var (
	ErrUnknownOrganization = errors.New("unknown organization")
	ErrProposalExists      = errors.New("proposal id already used")
	ErrUnknownProposal     = errors.New("unknown proposal")
	ErrAlreadySponsored    = errors.New("proposal already sponsored")
	ErrNotSponsored        = errors.New("proposal not sponsored")
	ErrAlreadyProcessed    = errors.New("proposal already processed")
	ErrNotInstalled        = errors.New("component not installed")
)

type proposalFlags struct {
	sponsor       domain.Address
	votingAdapter domain.Address
	sponsored     bool
	processed     bool
}

type organization struct {
	extensions map[ports.ExtensionKind]domain.Address
	adapters   map[ports.AdapterKind]domain.Address
	proposals  map[domain.ProposalID]*proposalFlags
}

// Registry holds every organization known to this process. Proposal flag changes
// made inside a unit of work (see tx.Journal) are undone when it fails.
type Registry struct {
	mu   sync.RWMutex
	orgs map[domain.OrganizationID]*organization
}

func New() *Registry {
	return &Registry{orgs: make(map[domain.OrganizationID]*organization)}
}

// Install registers org if needed and sets its bank extension and voting adapter.
func (r *Registry) Install(org domain.OrganizationID, bank, voting domain.Address) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o := r.orgs[org]
	if o == nil {
		o = &organization{
			extensions: make(map[ports.ExtensionKind]domain.Address),
			adapters:   make(map[ports.AdapterKind]domain.Address),
			proposals:  make(map[domain.ProposalID]*proposalFlags),
		}
		r.orgs[org] = o
	}
	if !bank.IsZero() {
		o.extensions[ports.ExtensionBank] = bank
	}
	if !voting.IsZero() {
		o.adapters[ports.AdapterVoting] = voting
	}
}

// Organizations lists the registered organization ids.
func (r *Registry) Organizations() []domain.OrganizationID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.OrganizationID, 0, len(r.orgs))
	for id := range r.orgs {
		out = append(out, id)
	}
	return out
}

func (r *Registry) SubmitProposal(ctx context.Context, org domain.OrganizationID, id domain.ProposalID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, err := r.org(org)
	if err != nil {
		return err
	}
	if _, ok := o.proposals[id]; ok {
		return dErrors.Wrap(ErrProposalExists, dErrors.CodeConflict, "proposal "+id.String()+" already exists")
	}
	o.proposals[id] = &proposalFlags{}
	tx.OnRollback(ctx, func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(o.proposals, id)
	})
	return nil
}

func (r *Registry) SponsorProposal(ctx context.Context, org domain.OrganizationID, id domain.ProposalID, sponsor, votingAdapter domain.Address) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, err := r.proposal(org, id)
	if err != nil {
		return err
	}
	if p.sponsored {
		return dErrors.Wrap(ErrAlreadySponsored, dErrors.CodeConflict, "proposal "+id.String()+" already sponsored")
	}
	p.sponsored = true
	p.sponsor = sponsor
	p.votingAdapter = votingAdapter
	tx.OnRollback(ctx, func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		p.sponsored = false
		p.sponsor = ""
		p.votingAdapter = ""
	})
	return nil
}

func (r *Registry) ProcessProposal(ctx context.Context, org domain.OrganizationID, id domain.ProposalID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, err := r.proposal(org, id)
	if err != nil {
		return err
	}
	if !p.sponsored {
		return dErrors.Wrap(ErrNotSponsored, dErrors.CodePreconditionFailed, "proposal "+id.String()+" not sponsored")
	}
	if p.processed {
		return dErrors.Wrap(ErrAlreadyProcessed, dErrors.CodeConflict, "proposal "+id.String()+" already processed")
	}
	p.processed = true
	tx.OnRollback(ctx, func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		p.processed = false
	})
	return nil
}

func (r *Registry) ExtensionAddress(_ context.Context, org domain.OrganizationID, kind ports.ExtensionKind) (domain.Address, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, err := r.org(org)
	if err != nil {
		return "", err
	}
	addr, ok := o.extensions[kind]
	if !ok {
		return "", dErrors.Wrap(ErrNotInstalled, dErrors.CodeNotFound, "extension "+string(kind)+" not installed")
	}
	return addr, nil
}

func (r *Registry) AdapterAddress(_ context.Context, org domain.OrganizationID, kind ports.AdapterKind) (domain.Address, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, err := r.org(org)
	if err != nil {
		return "", err
	}
	addr, ok := o.adapters[kind]
	if !ok {
		return "", dErrors.Wrap(ErrNotInstalled, dErrors.CodeNotFound, "adapter "+string(kind)+" not installed")
	}
	return addr, nil
}

// VotingAdapter reports the adapter bound at sponsorship. Unknown or unsponsored
// proposals report ok=false.
func (r *Registry) VotingAdapter(_ context.Context, org domain.OrganizationID, id domain.ProposalID) (domain.Address, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, err := r.org(org)
	if err != nil {
		return "", false, err
	}
	p, ok := o.proposals[id]
	if !ok || p.votingAdapter.IsZero() {
		return "", false, nil
	}
	return p.votingAdapter, true, nil
}

// Sponsor returns the identity credited with sponsoring id.
func (r *Registry) Sponsor(org domain.OrganizationID, id domain.ProposalID) (domain.Address, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, err := r.proposal(org, id)
	if err != nil || !p.sponsored {
		return "", false
	}
	return p.sponsor, true
}

// IsProcessed reports the registry's processed flag for id.
func (r *Registry) IsProcessed(org domain.OrganizationID, id domain.ProposalID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, err := r.proposal(org, id)
	return err == nil && p.processed
}

func (r *Registry) org(id domain.OrganizationID) (*organization, error) {
	o, ok := r.orgs[id]
	if !ok {
		return nil, dErrors.Wrap(ErrUnknownOrganization, dErrors.CodeNotFound, "organization "+id.String()+" not registered")
	}
	return o, nil
}

func (r *Registry) proposal(org domain.OrganizationID, id domain.ProposalID) (*proposalFlags, error) {
	o, err := r.org(org)
	if err != nil {
		return nil, err
	}
	p, ok := o.proposals[id]
	if !ok {
		return nil, dErrors.Wrap(ErrUnknownProposal, dErrors.CodeNotFound, "proposal "+id.String()+" not registered")
	}
	return p, nil
}

var _ ports.Registry = (*Registry)(nil)
