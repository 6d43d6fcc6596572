package dto

import (
	"time"

	"github.com/spec-kit/maintenance-dashboard/internal/domain"
)

// TicketRow is one visible dashboard row.
type TicketRow struct {
	ID          string              `json:"id"`
	Issue       string              `json:"issue"`
	LastUpdated string              `json:"last_updated"`
	Category    string              `json:"category"`
	Status      domain.TicketStatus `json:"status"`
	DetailPath  string              `json:"detail_path"`
}

// ColumnDescriptor describes a column of the dashboard table.
type ColumnDescriptor struct {
	Header    string `json:"header"`
	Kind      string `json:"kind"`
	Field     string `json:"field,omitempty"`
	ClassName string `json:"class_name,omitempty"`
}

// FilterOption is one selectable status.
type FilterOption struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
}

// DashboardResponse is the JSON form of the maintenance dashboard.
type DashboardResponse struct {
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Filter      string             `json:"filter"`
	Options     []FilterOption     `json:"options"`
	Loading     bool               `json:"loading"`
	Count       int                `json:"count"`
	Tickets     []TicketRow        `json:"tickets"`
	Columns     []ColumnDescriptor `json:"columns"`
	Version     uint64             `json:"version"`
	RefreshedAt *time.Time         `json:"refreshed_at,omitempty"`
	Notice      string             `json:"notice,omitempty"`
}

// TicketDetailResponse provides full ticket info.
type TicketDetailResponse struct {
	ID          string              `json:"id"`
	Issue       string              `json:"issue"`
	LastUpdated string              `json:"last_updated"`
	Category    string              `json:"category"`
	Status      domain.TicketStatus `json:"status"`
	Maintenance bool                `json:"maintenance"`
}
