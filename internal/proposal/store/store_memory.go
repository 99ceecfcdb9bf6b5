package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"treasury/internal/proposal/models"
	"treasury/pkg/domain"
	"treasury/pkg/platform/sentinel"
	"treasury/pkg/platform/tx"
)

// InMemoryStore keeps proposals in a two-level map: organization, then id.
// Records are cloned on the way in and out so callers never share state with it.
type InMemoryStore struct {
	mu        sync.RWMutex
	proposals map[domain.OrganizationID]map[domain.ProposalID]*models.Proposal
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{proposals: make(map[domain.OrganizationID]map[domain.ProposalID]*models.Proposal)}
}

func (s *InMemoryStore) Save(_ context.Context, p *models.Proposal) error {
	if p == nil {
		return fmt.Errorf("proposal is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.put(p.Clone())
	return nil
}

func (s *InMemoryStore) FindByKey(_ context.Context, key models.Key) (*models.Proposal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.proposals[key.Organization][key.ID]
	if !ok {
		return nil, fmt.Errorf("proposal %s: %w", key, sentinel.ErrNotFound)
	}
	return p.Clone(), nil
}

func (s *InMemoryStore) ListByOrganization(_ context.Context, org domain.OrganizationID) ([]*models.Proposal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Proposal, 0, len(s.proposals[org]))
	for _, p := range s.proposals[org] {
		out = append(out, p.Clone())
	}
	sortBySubmission(out)
	return out, nil
}

// RunInTx stages fn's writes and applies them together only when fn succeeds.
// Transactions are not serialized against each other: exclusion per organization
// is the caller's lock, and a unit of work for another organization may start
// from inside this one.
func (s *InMemoryStore) RunInTx(ctx context.Context, fn func(ctx context.Context, store Store) error) error {
	ctx, journal := tx.WithJournal(ctx)
	staged := &stagedStore{base: s, writes: make(map[models.Key]*models.Proposal)}
	if err := fn(ctx, staged); err != nil {
		journal.Rollback()
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range staged.writes {
		s.put(p)
	}
	return nil
}

func (s *InMemoryStore) put(p *models.Proposal) {
	byID, ok := s.proposals[p.Organization]
	if !ok {
		byID = make(map[domain.ProposalID]*models.Proposal)
		s.proposals[p.Organization] = byID
	}
	byID[p.ID] = p
}

// sortBySubmission orders proposals by submission time, then id.
func sortBySubmission(out []*models.Proposal) {
	sort.Slice(out, func(i, j int) bool {
		if out[i].SubmittedAt.Equal(out[j].SubmittedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].SubmittedAt.Before(out[j].SubmittedAt)
	})
}

// stagedStore reads through to the base store and buffers writes.
type stagedStore struct {
	base   *InMemoryStore
	writes map[models.Key]*models.Proposal
}

func (t *stagedStore) Save(_ context.Context, p *models.Proposal) error {
	if p == nil {
		return fmt.Errorf("proposal is required")
	}
	t.writes[p.Key()] = p.Clone()
	return nil
}

func (t *stagedStore) FindByKey(ctx context.Context, key models.Key) (*models.Proposal, error) {
	if p, ok := t.writes[key]; ok {
		return p.Clone(), nil
	}
	return t.base.FindByKey(ctx, key)
}

func (t *stagedStore) ListByOrganization(ctx context.Context, org domain.OrganizationID) ([]*models.Proposal, error) {
	committed, err := t.base.ListByOrganization(ctx, org)
	if err != nil {
		return nil, err
	}
	out := make([]*models.Proposal, 0, len(committed))
	for _, p := range committed {
		if _, overwritten := t.writes[p.Key()]; !overwritten {
			out = append(out, p)
		}
	}
	for key, p := range t.writes {
		if key.Organization == org {
			out = append(out, p.Clone())
		}
	}
	sortBySubmission(out)
	return out, nil
}

var (
	_ Store = (*InMemoryStore)(nil)
	_ Tx    = (*InMemoryStore)(nil)
	_ Store = (*stagedStore)(nil)
)
