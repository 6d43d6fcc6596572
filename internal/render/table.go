package render

import (
	"html/template"
	"io"
	"strings"

	"github.com/spec-kit/maintenance-dashboard/internal/domain"
)

const (
	LoadingText = "Loading tickets..."
	EmptyText   = "No tickets found"
)

const tableTmplText = `<div class="ticket-table">
<table>
<thead><tr>{{range .Headers}}<th>{{.}}</th>{{end}}</tr></thead>
<tbody>
{{- if .Loading}}
<tr class="ticket-table-loading"><td colspan="{{.Span}}">{{.LoadingText}}</td></tr>
{{- else if not .Rows}}
<tr class="ticket-table-empty"><td colspan="{{.Span}}">{{.EmptyText}}</td></tr>
{{- else}}
{{- range .Rows}}
<tr data-ticket-id="{{.ID}}">{{range .Cells}}<td{{if .Class}} class="{{.Class}}"{{end}}>{{.Content}}</td>{{end}}</tr>
{{- end}}
{{- end}}
</tbody>
</table>
</div>`

var tableTmpl = template.Must(template.New("table").Parse(tableTmplText))

type tableCell struct {
	Class   string
	Content template.HTML
}

type tableRow struct {
	ID    string
	Cells []tableCell
}

type tableData struct {
	Headers     []string
	Rows        []tableRow
	Loading     bool
	Span        int
	LoadingText string
	EmptyText   string
}

// RenderTable writes the ticket table. The loading state wins over rows;
// no rows renders the empty state.
func RenderTable(w io.Writer, tickets []domain.Ticket, columns []Column, loading bool) error {
	data := tableData{
		Headers:     make([]string, 0, len(columns)),
		Loading:     loading,
		Span:        len(columns),
		LoadingText: LoadingText,
		EmptyText:   EmptyText,
	}
	for _, col := range columns {
		data.Headers = append(data.Headers, col.Header)
	}
	if !loading {
		data.Rows = make([]tableRow, 0, len(tickets))
		for _, t := range tickets {
			row := tableRow{ID: t.ID, Cells: make([]tableCell, 0, len(columns))}
			for _, col := range columns {
				row.Cells = append(row.Cells, tableCell{Class: col.ClassName, Content: col.Cell(t)})
			}
			data.Rows = append(data.Rows, row)
		}
	}
	return tableTmpl.Execute(w, data)
}

// Table is RenderTable into an HTML fragment.
func Table(tickets []domain.Ticket, columns []Column, loading bool) (template.HTML, error) {
	var b strings.Builder
	if err := RenderTable(&b, tickets, columns, loading); err != nil {
		return "", err
	}
	return template.HTML(b.String()), nil
}
