package render

import (
	"html/template"
	"io"
)

// PageMeta carries the document title and description.
type PageMeta struct {
	Title       string
	Description string
}

const pageTmplText = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Meta.Title}}</title>
<meta name="description" content="{{.Meta.Description}}">
<style>
body{font-family:system-ui,sans-serif;margin:0;padding:24px;background:#f9fafb;color:#1f2937}
.panel{border:1px solid #e5e7eb;border-radius:16px;background:#fff;padding:16px 24px}
.toolbar{display:flex;justify-content:space-between;align-items:center;margin-bottom:24px}
.notice{border-radius:8px;padding:8px 12px;margin-bottom:16px;background:#fef3c7;color:#92400e;font-size:14px}
table{width:100%;border-collapse:collapse}
th,td{text-align:left;padding:12px;border-bottom:1px solid #f3f4f6;font-size:14px}
th{color:#6b7280;font-weight:500}
.ticket-id,.ticket-issue{font-weight:500}
.ticket-updated,.muted{color:#6b7280;font-size:12px}
.ticket-issue-cell{display:flex;flex-direction:column}
.ticket-table-empty td,.ticket-table-loading td{text-align:center;color:#6b7280}
.ticket-action{padding:8px;border-radius:8px;background:#f9fafb;color:#6b7280;font-size:12px;text-decoration:none}
.badge{display:inline-block;border-radius:9999px;padding:2px 10px;font-weight:500}
.badge-sm{font-size:12px}.badge-md{font-size:14px}
.badge-success{background:#ecfdf3;color:#039855}.badge-warning{background:#fffaeb;color:#dc6803}
.badge-info{background:#f0f9ff;color:#0086c9}.badge-error{background:#fef3f2;color:#d92d20}
.badge-light{background:#f2f4f7;color:#344054}
</style>
</head>
<body>
{{.Body}}
</body>
</html>`

var pageTmpl = template.Must(template.New("page").Parse(pageTmplText))

// RenderPage wraps body in the document shell.
func RenderPage(w io.Writer, meta PageMeta, body template.HTML) error {
	return pageTmpl.Execute(w, struct {
		Meta PageMeta
		Body template.HTML
	}{meta, body})
}
