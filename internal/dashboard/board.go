package dashboard

import (
	"sync"

	"github.com/spec-kit/maintenance-dashboard/internal/domain"
	"github.com/spec-kit/maintenance-dashboard/internal/render"
	"github.com/spec-kit/maintenance-dashboard/internal/source"
)

// Board keeps the maintenance-eligible subset of the provider's latest
// snapshot and hands out per-request views over it.
type Board struct {
	columns     []render.Column
	unsubscribe func()

	mu         sync.RWMutex
	eligible   []domain.Ticket
	state      State
	generation uint64
	settled    bool
}

// NewBoard subscribes to provider and derives the current eligible set. A
// notification may land between Subscribe and the initial Snapshot read, so
// update drops anything older than what it already holds.
func NewBoard(provider source.Provider, detailPath string) *Board {
	b := &Board{columns: Columns(detailPath)}
	b.unsubscribe = provider.Subscribe(b.update)
	b.update(provider.Snapshot())
	return b
}

// Close stops following the provider.
func (b *Board) Close() {
	if b.unsubscribe != nil {
		b.unsubscribe()
	}
}

func (b *Board) update(snap source.Snapshot) {
	eligible := MaintenanceEligible(snap.Tickets)

	b.mu.Lock()
	defer b.mu.Unlock()
	if snap.Generation < b.generation || (b.settled && snap.Loading) {
		return
	}
	b.generation = snap.Generation
	b.settled = b.settled || !snap.Loading
	b.eligible = eligible
	b.state = State{
		Loading:     snap.Loading,
		Err:         snap.Err,
		Stale:       snap.Stale,
		Version:     snap.Version,
		RefreshedAt: snap.RefreshedAt,
	}
}

// View returns a fresh view with the status filter at FilterAll.
func (b *Board) View() *View {
	b.mu.RLock()
	eligible, state := b.eligible, b.state
	b.mu.RUnlock()
	return NewView(eligible, state, b.columns)
}

// Eligible returns the number of maintenance-eligible tickets.
func (b *Board) Eligible() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.eligible)
}
