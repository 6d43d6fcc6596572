package dashboard

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/maintenance-dashboard/internal/domain"
	"github.com/spec-kit/maintenance-dashboard/internal/render"
)

func sampleEligible() []domain.Ticket {
	return MaintenanceEligible([]domain.Ticket{
		{ID: "T-1", Issue: "Broken AC", LastUpdated: "2024-03-01 10:00", Category: "HVAC", Status: domain.TicketStatusApproved},
		{ID: "T-2", Issue: "Leak <kitchen>", LastUpdated: "2024-03-02 11:30", Category: "Plumbing", Status: domain.TicketStatusClosed},
		{ID: "T-3", Issue: "Pending job", Category: "Misc", Status: domain.TicketStatusPending},
	})
}

func TestColumnsPlan(t *testing.T) {
	cols := Columns("")
	require.Len(t, cols, 5)

	headers := make([]string, 0, len(cols))
	for _, c := range cols {
		headers = append(headers, c.Header)
	}
	assert.Equal(t, []string{"ID", "Issue", "Category", "Status", "Actions"}, headers)
	assert.Equal(t, render.ColumnAccessor, cols[2].Kind)
	assert.Equal(t, "category", cols[2].Field)
	assert.NotEmpty(t, cols[2].ClassName)

	tk := sampleEligible()[1]
	assert.Equal(t, `<span class="ticket-id">T-2</span>`, string(cols[0].Cell(tk)))
	issue := string(cols[1].Cell(tk))
	assert.Contains(t, issue, "Leak &lt;kitchen&gt;")
	assert.Less(t, strings.Index(issue, "Leak"), strings.Index(issue, "2024-03-02 11:30"))
	assert.Equal(t, string(render.StatusBadge(domain.TicketStatusClosed, render.BadgeSmall)), string(cols[3].Cell(tk)))
	assert.Contains(t, string(cols[4].Cell(tk)), `href="/admin/ticket/T-2"`)
}

func TestColumnsCustomDetailPath(t *testing.T) {
	cols := Columns("/tickets/:id")
	assert.Contains(t, string(cols[4].Cell(domain.Ticket{ID: "9"})), `href="/tickets/9"`)
}

func TestViewStartsAtAll(t *testing.T) {
	v := NewView(sampleEligible(), State{}, Columns(""))

	assert.Equal(t, FilterAll, v.Filter())
	assert.Equal(t, []string{"T-1", "T-2"}, ids(v.Tickets()))
	assert.Equal(t, 2, v.Count())
	assert.False(t, v.Loading())
}

func TestViewSelect(t *testing.T) {
	v := NewView(sampleEligible(), State{}, Columns(""))

	require.NoError(t, v.Select(StatusFilter("Closed")))
	assert.Equal(t, []string{"T-2"}, ids(v.Tickets()))

	require.NoError(t, v.Select(StatusFilter("Completed")))
	assert.Zero(t, v.Count())

	require.NoError(t, v.Select(FilterAll))
	assert.Equal(t, 2, v.Count())
}

func TestViewSelectRejectsUnknown(t *testing.T) {
	v := NewView(sampleEligible(), State{}, Columns(""))
	require.NoError(t, v.Select(StatusFilter("Approved")))

	assert.Error(t, v.Select(StatusFilter("Pending")))
	assert.Equal(t, StatusFilter("Approved"), v.Filter())
	assert.Equal(t, 1, v.Count())
}

func TestViewRender(t *testing.T) {
	v := NewView(sampleEligible(), State{Version: 1}, Columns(""))
	require.NoError(t, v.Select(StatusFilter("Closed")))

	var b strings.Builder
	require.NoError(t, v.Render(&b))
	out := b.String()

	assert.Contains(t, out, "<title>Maintenance Dashboard | Maintenance Ticketing System</title>")
	assert.Contains(t, out, "Assigned Tasks (1)")
	assert.Contains(t, out, `<option value="Closed" selected>Closed</option>`)
	assert.Contains(t, out, `<option value="All">All Statuses</option>`)
	assert.Contains(t, out, `data-ticket-id="T-2"`)
	assert.NotContains(t, out, `data-ticket-id="T-1"`)
	assert.NotContains(t, out, `class="notice"`)
}

func TestViewRenderLoadingAndEmpty(t *testing.T) {
	t.Run("loading", func(t *testing.T) {
		v := NewView(sampleEligible(), State{Loading: true}, Columns(""))
		var b strings.Builder
		require.NoError(t, v.Render(&b))
		assert.Contains(t, b.String(), render.LoadingText)
		assert.NotContains(t, b.String(), `data-ticket-id=`)
	})

	t.Run("empty", func(t *testing.T) {
		v := NewView(nil, State{}, Columns(""))
		var b strings.Builder
		require.NoError(t, v.Render(&b))
		assert.Contains(t, b.String(), render.EmptyText)
		assert.Contains(t, b.String(), "Assigned Tasks (0)")
	})
}

func TestViewNotice(t *testing.T) {
	boom := errors.New("boom")
	assert.Empty(t, NewView(nil, State{}, nil).Notice())
	assert.Contains(t, NewView(nil, State{Err: boom}, nil).Notice(), "could not be loaded")
	assert.Contains(t, NewView(nil, State{Err: boom, Version: 2}, nil).Notice(), "out of date")
	assert.Contains(t, NewView(nil, State{Err: boom, Version: 1, Stale: true}, nil).Notice(), "cached")
}
