package guard

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"treasury/internal/proposal/models"
	"treasury/pkg/domain"
	dErrors "treasury/pkg/domain-errors"
)

var (
	orgA = domain.OrganizationID(domain.MustAddress("0xaa00000000000000000000000000000000000001"))
	orgB = domain.OrganizationID(domain.MustAddress("0xbb00000000000000000000000000000000000001"))
)

type countingRecorder struct{ n atomic.Int32 }

func (c *countingRecorder) IncLockContention() { c.n.Add(1) }

func TestLocalLocker(t *testing.T) {
	ctx := context.Background()

	t.Run("second lock on the same organization fails fast", func(t *testing.T) {
		rec := &countingRecorder{}
		l := NewLocalLocker(rec)

		release, err := l.Lock(ctx, orgA)
		require.NoError(t, err)
		defer release()

		_, err = l.Lock(ctx, orgA)
		require.Error(t, err)
		assert.ErrorIs(t, err, models.ErrReentrantCall)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeConflict))
		assert.Equal(t, int32(1), rec.n.Load())
	})

	t.Run("organizations are independent", func(t *testing.T) {
		l := NewLocalLocker(nil)
		releaseA, err := l.Lock(ctx, orgA)
		require.NoError(t, err)
		defer releaseA()

		releaseB, err := l.Lock(ctx, orgB)
		require.NoError(t, err)
		releaseB()
	})

	t.Run("release makes the organization available again", func(t *testing.T) {
		l := NewLocalLocker(nil)
		release, err := l.Lock(ctx, orgA)
		require.NoError(t, err)
		release()
		release()

		again, err := l.Lock(ctx, orgA)
		require.NoError(t, err)
		again()
	})

	t.Run("concurrent callers get exactly one holder", func(t *testing.T) {
		l := NewLocalLocker(nil)
		const n = 32
		var (
			wg      sync.WaitGroup
			holders atomic.Int32
			start   = make(chan struct{})
			held    = make(chan func(), n)
		)
		for range n {
			wg.Add(1)
			go func() {
				defer wg.Done()
				<-start
				if release, err := l.Lock(ctx, orgA); err == nil {
					holders.Add(1)
					held <- release
				}
			}()
		}
		close(start)
		wg.Wait()
		close(held)
		for release := range held {
			release()
		}
		assert.Equal(t, int32(1), holders.Load())
	})
}

func TestReservedSet(t *testing.T) {
	ctx := context.Background()
	treasuryAcct := domain.MustAddress("0x000000000000000000000000000000000000dead")
	extra := domain.MustAddress("0x5000000000000000000000000000000000000005")
	member := domain.MustAddress("0x1000000000000000000000000000000000000001")

	r := NewReservedSet(treasuryAcct, extra)

	for _, a := range []domain.Address{domain.ZeroAddress, EscrowAccount, TotalAccount, treasuryAcct, extra} {
		assert.True(t, r.IsReserved(ctx, orgA, a), a.String())
	}
	assert.False(t, r.IsReserved(ctx, orgA, member))
}
