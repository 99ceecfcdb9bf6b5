// Package guard implements the per-organization reentrancy lock and the reserved
// account check consumed by the proposal service.
package guard

import (
	"context"
	"sync"

	"treasury/internal/proposal/models"
	"treasury/internal/proposal/ports"
	"treasury/pkg/domain"
	dErrors "treasury/pkg/domain-errors"
)

// ContentionRecorder counts rejected lock attempts. *metrics.Metrics satisfies it.
type ContentionRecorder interface {
	IncLockContention()
}

// LocalLocker is an in-process lock keyed by organization. It never waits: a
// second Lock for a held organization fails with ErrReentrantCall.
type LocalLocker struct {
	mu       sync.Mutex
	locks    map[domain.OrganizationID]*sync.Mutex
	recorder ContentionRecorder
}

func NewLocalLocker(recorder ContentionRecorder) *LocalLocker {
	return &LocalLocker{
		locks:    make(map[domain.OrganizationID]*sync.Mutex),
		recorder: recorder,
	}
}

func (l *LocalLocker) Lock(_ context.Context, org domain.OrganizationID) (func(), error) {
	l.mu.Lock()
	m, ok := l.locks[org]
	if !ok {
		m = &sync.Mutex{}
		l.locks[org] = m
	}
	l.mu.Unlock()

	if !m.TryLock() {
		if l.recorder != nil {
			l.recorder.IncLockContention()
		}
		return nil, reentrant(org)
	}

	var once sync.Once
	return func() { once.Do(m.Unlock) }, nil
}

func reentrant(org domain.OrganizationID) error {
	return dErrors.Wrap(models.ErrReentrantCall, dErrors.CodeConflict, "organization "+org.String()+" is busy")
}

var _ ports.Locker = (*LocalLocker)(nil)
