package dashboard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/maintenance-dashboard/internal/domain"
	"github.com/spec-kit/maintenance-dashboard/internal/source"
)

type fakeProvider struct {
	snap         source.Snapshot
	subscribers  []func(source.Snapshot)
	unsubscribed bool
}

func (f *fakeProvider) Snapshot() source.Snapshot { return f.snap }

func (f *fakeProvider) Subscribe(fn func(source.Snapshot)) func() {
	f.subscribers = append(f.subscribers, fn)
	return func() { f.unsubscribed = true }
}

func (f *fakeProvider) push(snap source.Snapshot) {
	f.snap = snap
	for _, fn := range f.subscribers {
		fn(snap)
	}
}

func TestBoardFollowsProvider(t *testing.T) {
	provider := &fakeProvider{snap: source.Snapshot{Loading: true}}
	board := NewBoard(provider, "")
	defer board.Close()

	v := board.View()
	assert.True(t, v.Loading())
	assert.Zero(t, v.Count())

	provider.push(source.Snapshot{
		Version:    1,
		Generation: 1,
		Tickets: []domain.Ticket{
			{ID: "1", Status: domain.TicketStatusPending},
			{ID: "2", Status: domain.TicketStatusApproved},
			{ID: "3", Status: domain.TicketStatusClosed},
			{ID: "4", Status: domain.TicketStatusRejected},
		},
	})

	v = board.View()
	assert.False(t, v.Loading())
	assert.Equal(t, []string{"2", "3"}, ids(v.Tickets()))
	assert.Equal(t, 2, board.Eligible())
}

func TestBoardIgnoresOlderSnapshots(t *testing.T) {
	provider := &fakeProvider{snap: source.Snapshot{
		Version:    2,
		Generation: 2,
		Tickets:    []domain.Ticket{{ID: "new", Status: domain.TicketStatusAssigned}},
	}}
	board := NewBoard(provider, "")

	provider.push(source.Snapshot{
		Version:    1,
		Generation: 1,
		Tickets:    []domain.Ticket{{ID: "old", Status: domain.TicketStatusAssigned}},
	})

	assert.Equal(t, []string{"new"}, ids(board.View().Tickets()))
}

// settlesDuringSubscribe delivers the first settled snapshot to
// subscribers while NewBoard is still reading the initial value, then
// hands back the loading snapshot it read before the load finished.
type settlesDuringSubscribe struct {
	fakeProvider
	settled source.Snapshot
	fired   bool
}

func (p *settlesDuringSubscribe) Snapshot() source.Snapshot {
	if !p.fired {
		p.fired = true
		for _, fn := range p.subscribers {
			fn(p.settled)
		}
		return source.Snapshot{Loading: true}
	}
	return p.settled
}

func TestBoardKeepsSettledStateOverEarlierLoadingSnapshot(t *testing.T) {
	loadErr := errors.New("db down")

	cases := []struct {
		name    string
		settled source.Snapshot
	}{
		{name: "failure with generation", settled: source.Snapshot{Err: loadErr, Generation: 1}},
		{name: "failure without generation", settled: source.Snapshot{Err: loadErr}},
		{name: "success", settled: source.Snapshot{
			Version:    1,
			Generation: 1,
			Tickets:    []domain.Ticket{{ID: "9", Status: domain.TicketStatusInProgress}},
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			provider := &settlesDuringSubscribe{settled: tc.settled}
			board := NewBoard(provider, "")
			defer board.Close()

			v := board.View()
			assert.False(t, v.Loading())
			assert.Equal(t, tc.settled.Err, v.State().Err)
			assert.Equal(t, len(tc.settled.Tickets), v.Count())
			if tc.settled.Err != nil {
				assert.NotEmpty(t, v.Notice())
			}
		})
	}
}

func TestBoardAppliesFailureAfterLoading(t *testing.T) {
	provider := &fakeProvider{snap: source.Snapshot{Loading: true}}
	board := NewBoard(provider, "")

	provider.push(source.Snapshot{Err: errors.New("db down"), Generation: 1})

	v := board.View()
	assert.False(t, v.Loading())
	assert.Equal(t, "Tickets could not be loaded.", v.Notice())
}

func TestBoardViewsAreIndependent(t *testing.T) {
	provider := &fakeProvider{snap: source.Snapshot{
		Version: 1,
		Tickets: []domain.Ticket{
			{ID: "1", Status: domain.TicketStatusApproved},
			{ID: "2", Status: domain.TicketStatusClosed},
		},
	}}
	board := NewBoard(provider, "")

	first := board.View()
	require.NoError(t, first.Select(StatusFilter("Closed")))
	second := board.View()

	assert.Equal(t, 1, first.Count())
	assert.Equal(t, FilterAll, second.Filter())
	assert.Equal(t, 2, second.Count())
	assert.Len(t, provider.snap.Tickets, 2)
}

func TestBoardClose(t *testing.T) {
	provider := &fakeProvider{}
	board := NewBoard(provider, "")
	board.Close()
	assert.True(t, provider.unsubscribed)
}
