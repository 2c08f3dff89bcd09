package time

import (
	"context"
	"sync"
	"time"

	"github.com/amirhossein-jamali/finance-ledger/internal/domain/port/core"
)

// FixedTimeProvider is a settable clock. Timeouts still use real time.
type FixedTimeProvider struct {
	mu  sync.RWMutex
	now time.Time
}

// NewFixedTimeProvider creates a clock frozen at now
func NewFixedTimeProvider(now time.Time) *FixedTimeProvider {
	return &FixedTimeProvider{now: now.UTC()}
}

// Now returns the frozen time
func (p *FixedTimeProvider) Now() time.Time {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.now
}

// Set moves the clock to t
func (p *FixedTimeProvider) Set(t time.Time) {
	p.mu.Lock()
	p.now = t.UTC()
	p.mu.Unlock()
}

// Advance moves the clock forward by d
func (p *FixedTimeProvider) Advance(d time.Duration) {
	p.mu.Lock()
	p.now = p.now.Add(d)
	p.mu.Unlock()
}

// Since returns the frozen time minus t
func (p *FixedTimeProvider) Since(t time.Time) core.Duration {
	return core.Duration(p.Now().Sub(t))
}

// WithTimeout returns a context that will be canceled after the specified timeout
func (p *FixedTimeProvider) WithTimeout(ctx context.Context, timeout core.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout.Std())
}
