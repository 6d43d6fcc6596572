package dashboard

import (
	"github.com/spec-kit/maintenance-dashboard/internal/domain"
	apperrors "github.com/spec-kit/maintenance-dashboard/pkg/util/errorutil"
)

// StatusFilter is the user's status selection.
type StatusFilter string

// FilterAll disables status narrowing.
const FilterAll StatusFilter = "All"

// FilterOption is one entry of the status selector.
type FilterOption struct {
	Value StatusFilter `json:"value"`
	Label string       `json:"label"`
}

// FilterOptions lists the selector entries in display order. The set is
// maintained separately from domain.TicketStatuses and must be updated by
// hand when maintenance statuses change.
var FilterOptions = []FilterOption{
	{Value: FilterAll, Label: "All Statuses"},
	{Value: StatusFilter(domain.TicketStatusApproved), Label: "Approved"},
	{Value: StatusFilter(domain.TicketStatusAssigned), Label: "Assigned"},
	{Value: StatusFilter(domain.TicketStatusInProgress), Label: "In Progress"},
	{Value: StatusFilter(domain.TicketStatusCompleted), Label: "Completed"},
	{Value: StatusFilter(domain.TicketStatusClosed), Label: "Closed"},
}

// eligibleStatuses are the states past approval gating that the
// maintenance team works on.
var eligibleStatuses = map[domain.TicketStatus]struct{}{
	domain.TicketStatusApproved:   {},
	domain.TicketStatusAssigned:   {},
	domain.TicketStatusInProgress: {},
	domain.TicketStatusCompleted:  {},
	domain.TicketStatusClosed:     {},
}

// IsEligible reports whether a ticket with status s belongs on the dashboard.
func IsEligible(s domain.TicketStatus) bool {
	_, ok := eligibleStatuses[s]
	return ok
}

// Valid reports whether f is one of FilterOptions.
func (f StatusFilter) Valid() bool {
	for _, opt := range FilterOptions {
		if opt.Value == f {
			return true
		}
	}
	return false
}

// ParseStatusFilter validates a raw selection. Empty means FilterAll.
func ParseStatusFilter(raw string) (StatusFilter, error) {
	if raw == "" {
		return FilterAll, nil
	}
	f := StatusFilter(raw)
	if !f.Valid() {
		return "", invalidFilter(raw)
	}
	return f, nil
}

func invalidFilter(raw string) error {
	allowed := make([]string, 0, len(FilterOptions))
	for _, opt := range FilterOptions {
		allowed = append(allowed, string(opt.Value))
	}
	return apperrors.NewValidationError("invalid status filter", map[string]any{
		"status":  raw,
		"allowed": allowed,
	})
}

// MaintenanceEligible keeps the tickets whose status is eligible, in order.
// The input is not modified.
func MaintenanceEligible(tickets []domain.Ticket) []domain.Ticket {
	out := make([]domain.Ticket, 0, len(tickets))
	for _, t := range tickets {
		if IsEligible(t.Status) {
			out = append(out, t)
		}
	}
	return out
}

// ApplyStatusFilter narrows tickets to exact status equality unless f is
// FilterAll. The result never aliases the input.
func ApplyStatusFilter(tickets []domain.Ticket, f StatusFilter) []domain.Ticket {
	out := make([]domain.Ticket, 0, len(tickets))
	for _, t := range tickets {
		if f == FilterAll || t.Status == domain.TicketStatus(f) {
			out = append(out, t)
		}
	}
	return out
}

// Visible runs both filter stages.
func Visible(tickets []domain.Ticket, f StatusFilter) []domain.Ticket {
	return ApplyStatusFilter(MaintenanceEligible(tickets), f)
}
