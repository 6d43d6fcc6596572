package render

import (
	"html/template"

	"github.com/spec-kit/maintenance-dashboard/internal/domain"
)

// BadgeSize is the size hint passed to StatusBadge.
type BadgeSize string

const (
	BadgeSmall  BadgeSize = "sm"
	BadgeMedium BadgeSize = "md"
)

// BadgeColor groups statuses into visual tones.
type BadgeColor string

const (
	BadgeSuccess BadgeColor = "success"
	BadgeWarning BadgeColor = "warning"
	BadgeInfo    BadgeColor = "info"
	BadgeError   BadgeColor = "error"
	BadgeLight   BadgeColor = "light"
)

var badgeColors = map[domain.TicketStatus]BadgeColor{
	domain.TicketStatusCompleted:  BadgeSuccess,
	domain.TicketStatusClosed:     BadgeSuccess,
	domain.TicketStatusPending:    BadgeWarning,
	domain.TicketStatusInProgress: BadgeWarning,
	domain.TicketStatusApproved:   BadgeInfo,
	domain.TicketStatusAssigned:   BadgeInfo,
	domain.TicketStatusRejected:   BadgeError,
	domain.TicketStatusReopened:   BadgeError,
}

var badgeTmpl = template.Must(template.New("badge").Parse(
	`<span class="badge badge-{{.Color}} badge-{{.Size}}">{{.Label}}</span>`))

// ColorFor returns the tone for a status; unknown statuses are light.
func ColorFor(status domain.TicketStatus) BadgeColor {
	if c, ok := badgeColors[status]; ok {
		return c
	}
	return BadgeLight
}

// StatusBadge renders a status as a coloured badge.
func StatusBadge(status domain.TicketStatus, size BadgeSize) template.HTML {
	if size != BadgeSmall && size != BadgeMedium {
		size = BadgeMedium
	}
	return Fragment(badgeTmpl, struct {
		Color BadgeColor
		Size  BadgeSize
		Label string
	}{ColorFor(status), size, string(status)})
}
