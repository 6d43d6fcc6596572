package render

import (
	"html/template"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/maintenance-dashboard/internal/domain"
)

func TestColumnCell(t *testing.T) {
	ticket := domain.Ticket{ID: "7", Category: "<Plumbing>", Status: domain.TicketStatusClosed}

	t.Run("accessor escapes field", func(t *testing.T) {
		col := Accessor("Category", "category", "muted")
		assert.Equal(t, ColumnAccessor, col.Kind)
		assert.Equal(t, template.HTML("&lt;Plumbing&gt;"), col.Cell(ticket))
	})

	t.Run("accessor unknown field is empty", func(t *testing.T) {
		assert.Empty(t, Accessor("Nope", "nope", "").Cell(ticket))
	})

	t.Run("custom calls render", func(t *testing.T) {
		col := Custom("ID", func(t domain.Ticket) template.HTML { return template.HTML("<b>" + t.ID + "</b>") })
		assert.Equal(t, ColumnCustom, col.Kind)
		assert.Equal(t, template.HTML("<b>7</b>"), col.Cell(ticket))
	})

	t.Run("custom without render is empty", func(t *testing.T) {
		assert.Empty(t, Column{Kind: ColumnCustom}.Cell(ticket))
	})
}

func TestColumnKindString(t *testing.T) {
	assert.Equal(t, "accessor", ColumnAccessor.String())
	assert.Equal(t, "custom", ColumnCustom.String())
	assert.Equal(t, "unknown", ColumnKind(9).String())
}

func TestStatusBadge(t *testing.T) {
	cases := []struct {
		status domain.TicketStatus
		color  BadgeColor
	}{
		{domain.TicketStatusCompleted, BadgeSuccess},
		{domain.TicketStatusClosed, BadgeSuccess},
		{domain.TicketStatusInProgress, BadgeWarning},
		{domain.TicketStatusApproved, BadgeInfo},
		{domain.TicketStatusRejected, BadgeError},
		{domain.TicketStatus("Mystery"), BadgeLight},
	}
	for _, tc := range cases {
		t.Run(string(tc.status), func(t *testing.T) {
			assert.Equal(t, tc.color, ColorFor(tc.status))
			html := string(StatusBadge(tc.status, BadgeSmall))
			assert.Contains(t, html, "badge-"+string(tc.color))
			assert.Contains(t, html, "badge-sm")
		})
	}
}

func TestStatusBadgeEscapesAndDefaultsSize(t *testing.T) {
	html := string(StatusBadge(domain.TicketStatus("<x>"), BadgeSize("huge")))
	assert.Contains(t, html, "&lt;x&gt;")
	assert.Contains(t, html, "badge-md")
}

func TestDetailPath(t *testing.T) {
	assert.Equal(t, "/admin/ticket/42", DetailPath("", "42"))
	assert.Equal(t, "/tickets/a%2Fb/view", DetailPath("/tickets/:id/view", "a/b"))

	link := string(DetailLink("", "42", "View"))
	assert.Contains(t, link, `href="/admin/ticket/42"`)
	assert.Contains(t, link, ">View</a>")
}

func TestRenderTable(t *testing.T) {
	columns := []Column{
		Accessor("ID", "id", "ticket-id"),
		Accessor("Category", "category", ""),
	}
	tickets := []domain.Ticket{
		{ID: "1", Category: "HVAC"},
		{ID: "2", Category: "Electrical"},
	}

	t.Run("rows", func(t *testing.T) {
		html, err := Table(tickets, columns, false)
		require.NoError(t, err)
		out := string(html)
		assert.Contains(t, out, "<th>ID</th><th>Category</th>")
		assert.Contains(t, out, `<tr data-ticket-id="1"><td class="ticket-id">1</td><td>HVAC</td></tr>`)
		assert.Less(t, strings.Index(out, "HVAC"), strings.Index(out, "Electrical"))
		assert.NotContains(t, out, EmptyText)
	})

	t.Run("empty", func(t *testing.T) {
		html, err := Table(nil, columns, false)
		require.NoError(t, err)
		assert.Contains(t, string(html), EmptyText)
		assert.Contains(t, string(html), `colspan="2"`)
	})

	t.Run("loading wins over rows", func(t *testing.T) {
		html, err := Table(tickets, columns, true)
		require.NoError(t, err)
		assert.Contains(t, string(html), LoadingText)
		assert.NotContains(t, string(html), "HVAC")
	})
}

func TestRenderPage(t *testing.T) {
	var b strings.Builder
	err := RenderPage(&b, PageMeta{Title: "A & B", Description: "desc"}, template.HTML("<main>hi</main>"))
	require.NoError(t, err)
	assert.Contains(t, b.String(), "<title>A &amp; B</title>")
	assert.Contains(t, b.String(), "<main>hi</main>")
}

func TestFragment(t *testing.T) {
	ok := template.Must(template.New("ok").Parse(`<b>{{.Name}}</b>`))
	assert.Equal(t, template.HTML("<b>a&amp;b</b>"), Fragment(ok, struct{ Name string }{"a&b"}))

	broken := template.Must(template.New("broken").Parse(`<b>{{.Missing}}</b>`))
	assert.Equal(t, template.HTML(""), Fragment(broken, struct{ Name string }{"x"}))
}
