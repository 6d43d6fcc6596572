package render

import (
	"html/template"
	"net/url"
	"strings"
)

// DefaultDetailPath is the ticket detail route template.
const DefaultDetailPath = "/admin/ticket/:id"

var linkTmpl = template.Must(template.New("link").Parse(
	`<a href="{{.Href}}" class="ticket-action">{{.Label}}</a>`))

// DetailPath substitutes the ticket id into pathTemplate's :id segment.
func DetailPath(pathTemplate, id string) string {
	if pathTemplate == "" {
		pathTemplate = DefaultDetailPath
	}
	return strings.Replace(pathTemplate, ":id", url.PathEscape(id), 1)
}

// DetailLink renders an anchor to the ticket detail view.
func DetailLink(pathTemplate, id, label string) template.HTML {
	return Fragment(linkTmpl, struct {
		Href  string
		Label string
	}{DetailPath(pathTemplate, id), label})
}
