// Package store persists proposal records keyed by (organization, proposal id).
package store

import (
	"context"

	"treasury/internal/proposal/models"
	"treasury/pkg/domain"
)

// Store is the proposal persistence contract. Save overwrites any record under the
// same key; uniqueness of ids is the registry's job, not the store's.
type Store interface {
	Save(ctx context.Context, p *models.Proposal) error
	FindByKey(ctx context.Context, key models.Key) (*models.Proposal, error)
	ListByOrganization(ctx context.Context, org domain.OrganizationID) ([]*models.Proposal, error)
}

// Tx provides a transactional boundary for a unit of work. Writes made through
// the Store handed to fn become visible only if fn returns nil and the commit
// succeeds. The context handed to fn carries a tx.Journal: collaborators called
// with it register compensations that run when the unit of work fails.
type Tx interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context, store Store) error) error
}
