package render

import (
	"html/template"
	"strings"

	"github.com/spec-kit/maintenance-dashboard/internal/domain"
)

// ColumnKind tags how a column produces its cell.
type ColumnKind int

const (
	// ColumnAccessor reads a ticket field by key.
	ColumnAccessor ColumnKind = iota
	// ColumnCustom calls a render function per row.
	ColumnCustom
)

func (k ColumnKind) String() string {
	switch k {
	case ColumnAccessor:
		return "accessor"
	case ColumnCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// Column describes one table column.
type Column struct {
	Header    string
	Kind      ColumnKind
	Field     string
	Render    func(domain.Ticket) template.HTML
	ClassName string
}

// Accessor builds a column that displays a ticket field.
func Accessor(header, field, className string) Column {
	return Column{Header: header, Kind: ColumnAccessor, Field: field, ClassName: className}
}

// Custom builds a column rendered by fn.
func Custom(header string, fn func(domain.Ticket) template.HTML) Column {
	return Column{Header: header, Kind: ColumnCustom, Render: fn}
}

// Cell renders the column for one ticket. Accessor values are escaped; an
// unknown field or a custom column without a render function yields an
// empty cell.
func (c Column) Cell(t domain.Ticket) template.HTML {
	switch c.Kind {
	case ColumnCustom:
		if c.Render == nil {
			return ""
		}
		return c.Render(t)
	default:
		val, ok := t.Field(c.Field)
		if !ok {
			return ""
		}
		return template.HTML(template.HTMLEscapeString(val))
	}
}

// Fragment executes tmpl into an HTML fragment for a cell. A failed
// execution yields an empty fragment.
func Fragment(tmpl *template.Template, data any) template.HTML {
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return ""
	}
	return template.HTML(b.String())
}
