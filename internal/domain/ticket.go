package domain

// TicketStatus enumerates lifecycle states for tickets.
type TicketStatus string

const (
	TicketStatusPending    TicketStatus = "Pending"
	TicketStatusApproved   TicketStatus = "Approved"
	TicketStatusAssigned   TicketStatus = "Assigned"
	TicketStatusInProgress TicketStatus = "In Progress"
	TicketStatusCompleted  TicketStatus = "Completed"
	TicketStatusClosed     TicketStatus = "Closed"
	TicketStatusReopened   TicketStatus = "Reopened"
	TicketStatusRejected   TicketStatus = "Rejected"
)

// TicketStatuses lists every known lifecycle state in workflow order.
var TicketStatuses = []TicketStatus{
	TicketStatusPending,
	TicketStatusApproved,
	TicketStatusAssigned,
	TicketStatusInProgress,
	TicketStatusCompleted,
	TicketStatusClosed,
	TicketStatusReopened,
	TicketStatusRejected,
}

// Valid reports whether the status is a known lifecycle state.
func (s TicketStatus) Valid() bool {
	for _, known := range TicketStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Ticket is a maintenance work item.
type Ticket struct {
	ID          string       `json:"id"`
	Issue       string       `json:"issue"`
	LastUpdated string       `json:"lastUpdated"`
	Category    string       `json:"category"`
	Status      TicketStatus `json:"status"`
}

// Field returns the display value for an accessor key.
func (t Ticket) Field(key string) (string, bool) {
	switch key {
	case "id":
		return t.ID, true
	case "issue":
		return t.Issue, true
	case "lastUpdated":
		return t.LastUpdated, true
	case "category":
		return t.Category, true
	case "status":
		return string(t.Status), true
	default:
		return "", false
	}
}
