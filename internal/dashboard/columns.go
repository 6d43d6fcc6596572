package dashboard

import (
	"html/template"

	"github.com/spec-kit/maintenance-dashboard/internal/domain"
	"github.com/spec-kit/maintenance-dashboard/internal/render"
)

var (
	idCellTmpl = template.Must(template.New("id").Parse(
		`<span class="ticket-id">{{.ID}}</span>`))
	issueCellTmpl = template.Must(template.New("issue").Parse(
		`<div class="ticket-issue-cell"><span class="ticket-issue">{{.Issue}}</span><span class="ticket-updated">{{.LastUpdated}}</span></div>`))
)

// Columns returns the dashboard's column plan. detailPath is the ticket
// detail route template, for example "/admin/ticket/:id".
func Columns(detailPath string) []render.Column {
	return []render.Column{
		render.Custom("ID", func(t domain.Ticket) template.HTML {
			return render.Fragment(idCellTmpl, t)
		}),
		render.Custom("Issue", func(t domain.Ticket) template.HTML {
			return render.Fragment(issueCellTmpl, t)
		}),
		render.Accessor("Category", "category", "muted"),
		render.Custom("Status", func(t domain.Ticket) template.HTML {
			return render.StatusBadge(t.Status, render.BadgeSmall)
		}),
		render.Custom("Actions", func(t domain.Ticket) template.HTML {
			return render.DetailLink(detailPath, t.ID, "View")
		}),
	}
}
