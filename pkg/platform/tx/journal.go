package tx

import (
	"context"
	"sync"
)

type journalKey struct{}

// Journal collects compensations for in-process side effects made inside a unit
// of work. The transaction runner that owns it calls Rollback when the work fails
// or does not commit; on success the journal is simply dropped.
type Journal struct {
	mu   sync.Mutex
	undo []func()
}

// WithJournal starts a new journal and returns a context carrying it. A journal
// already on ctx is shadowed, not joined: nested units of work roll back alone.
func WithJournal(ctx context.Context) (context.Context, *Journal) {
	j := &Journal{}
	return context.WithValue(ctx, journalKey{}, j), j
}

// JournalFrom extracts the journal carried by ctx, if any.
func JournalFrom(ctx context.Context) (*Journal, bool) {
	j, ok := ctx.Value(journalKey{}).(*Journal)
	return j, ok
}

// OnRollback registers undo with the journal carried by ctx. Outside a unit of
// work the effect is final and undo is dropped.
func OnRollback(ctx context.Context, undo func()) {
	if j, ok := JournalFrom(ctx); ok {
		j.add(undo)
	}
}

func (j *Journal) add(undo func()) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.undo = append(j.undo, undo)
}

// Rollback runs the registered compensations newest first, then empties the
// journal so a second call is a no-op.
func (j *Journal) Rollback() {
	j.mu.Lock()
	undo := j.undo
	j.undo = nil
	j.mu.Unlock()

	for i := len(undo) - 1; i >= 0; i-- {
		undo[i]()
	}
}

// Len reports how many compensations are pending.
func (j *Journal) Len() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return len(j.undo)
}
