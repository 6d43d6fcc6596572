package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTicketsRefreshed     EventType = "tickets_refreshed"
	EventTicketsRefreshFailed EventType = "tickets_refresh_failed"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// TicketsRefreshedPayload payload.
type TicketsRefreshedPayload struct {
	Version   uint64        `json:"version"`
	Count     int           `json:"count"`
	Duration  time.Duration `json:"duration"`
	FromCache bool          `json:"from_cache"`
}

// TicketsRefreshFailedPayload payload.
type TicketsRefreshFailedPayload struct {
	Error    string        `json:"error"`
	Duration time.Duration `json:"duration"`
}
