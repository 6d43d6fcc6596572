package dashboard

import (
	"html/template"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/spec-kit/maintenance-dashboard/internal/domain"
	"github.com/spec-kit/maintenance-dashboard/internal/render"
)

// Meta is the dashboard page metadata.
var Meta = render.PageMeta{
	Title:       "Maintenance Dashboard | Maintenance Ticketing System",
	Description: "Maintenance dashboard for managing assigned tickets.",
}

const (
	heading    = "Maintenance Dashboard"
	subheading = "View and manage tickets assigned to the maintenance department."
)

// State is what a view knows about its ticket source.
type State struct {
	Loading     bool
	Err         error
	Stale       bool
	Version     uint64
	RefreshedAt time.Time
}

// View is one rendering of the dashboard. It owns the status filter, which
// starts at FilterAll and lives as long as the view.
type View struct {
	eligible []domain.Ticket
	state    State
	columns  []render.Column
	filter   StatusFilter
	visible  []domain.Ticket
}

// NewView builds a view over an already maintenance-eligible ticket set.
func NewView(eligible []domain.Ticket, state State, columns []render.Column) *View {
	v := &View{
		eligible: eligible,
		state:    state,
		columns:  columns,
		filter:   FilterAll,
	}
	v.derive()
	return v
}

// Select replaces the status filter and re-derives the visible rows.
func (v *View) Select(f StatusFilter) error {
	if !f.Valid() {
		return invalidFilter(string(f))
	}
	v.filter = f
	v.derive()
	return nil
}

func (v *View) derive() {
	v.visible = ApplyStatusFilter(v.eligible, v.filter)
}

// Filter returns the current selection.
func (v *View) Filter() StatusFilter { return v.filter }

// Tickets returns the visible rows.
func (v *View) Tickets() []domain.Ticket { return slices.Clone(v.visible) }

// Count is the number of visible rows.
func (v *View) Count() int { return len(v.visible) }

// Loading reports whether the ticket source is still loading.
func (v *View) Loading() bool { return v.state.Loading }

// State returns the source state the view was built from.
func (v *View) State() State { return v.state }

// Columns returns the column plan.
func (v *View) Columns() []render.Column { return v.columns }

const bodyTmplText = `<div class="dashboard">
<div>
<h2>{{.Heading}}</h2>
<p class="muted">{{.Subheading}}</p>
</div>
{{- if .Notice}}
<div class="notice" role="status">{{.Notice}}</div>
{{- end}}
<div class="panel">
<div class="toolbar">
<h3>Assigned Tasks ({{.Count}})</h3>
<form method="get">
<select name="status" onchange="this.form.submit()">
{{- range .Options}}
<option value="{{.Value}}"{{if eq .Value $.Selected}} selected{{end}}>{{.Label}}</option>
{{- end}}
</select>
<noscript><button type="submit">Apply</button></noscript>
</form>
</div>
{{.Table}}
</div>
</div>`

var bodyTmpl = template.Must(template.New("dashboard").Parse(bodyTmplText))

// Notice describes a source problem worth showing above the table.
func (v *View) Notice() string {
	switch {
	case v.state.Err == nil:
		return ""
	case v.state.Stale:
		return "Showing cached tickets; the ticket service is currently unreachable."
	case v.state.Version > 0:
		return "Tickets may be out of date; the last refresh failed."
	default:
		return "Tickets could not be loaded."
	}
}

// Render writes the full dashboard page.
func (v *View) Render(w io.Writer) error {
	table, err := render.Table(v.visible, v.columns, v.state.Loading)
	if err != nil {
		return err
	}
	var body strings.Builder
	err = bodyTmpl.Execute(&body, struct {
		Heading    string
		Subheading string
		Notice     string
		Count      int
		Options    []FilterOption
		Selected   StatusFilter
		Table      template.HTML
	}{heading, subheading, v.Notice(), v.Count(), FilterOptions, v.filter, table})
	if err != nil {
		return err
	}
	return render.RenderPage(w, Meta, template.HTML(body.String()))
}
