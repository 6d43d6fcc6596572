package handlers

import (
	"bytes"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/maintenance-dashboard/internal/api/dto"
	"github.com/spec-kit/maintenance-dashboard/internal/dashboard"
	"github.com/spec-kit/maintenance-dashboard/internal/domain"
	"github.com/spec-kit/maintenance-dashboard/internal/render"
	"github.com/spec-kit/maintenance-dashboard/internal/service"
	apperrors "github.com/spec-kit/maintenance-dashboard/pkg/util/errorutil"
)

// DashboardHandler serves the maintenance dashboard and ticket detail.
type DashboardHandler struct {
	board      *dashboard.Board
	tickets    *service.TicketService
	detailPath string
}

// NewDashboardHandler constructs handler.
func NewDashboardHandler(board *dashboard.Board, tickets *service.TicketService, detailPath string) *DashboardHandler {
	if detailPath == "" {
		detailPath = render.DefaultDetailPath
	}
	return &DashboardHandler{board: board, tickets: tickets, detailPath: detailPath}
}

// Page GET /maintenance.
func (h *DashboardHandler) Page(c *fiber.Ctx) error {
	view, err := h.view(c)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := view.Render(&buf); err != nil {
		return apperrors.NewInternalError(err)
	}
	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}

// List GET /api/maintenance/tickets.
func (h *DashboardHandler) List(c *fiber.Ctx) error {
	view, err := h.view(c)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": h.dashboardResponse(view)})
}

// GetTicket GET /admin/ticket/:id.
func (h *DashboardHandler) GetTicket(c *fiber.Ctx) error {
	ticket, err := h.tickets.GetTicket(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": ticketDetail(ticket)})
}

func (h *DashboardHandler) view(c *fiber.Ctx) (*dashboard.View, error) {
	filter, err := dashboard.ParseStatusFilter(c.Query("status"))
	if err != nil {
		return nil, err
	}
	view := h.board.View()
	if err := view.Select(filter); err != nil {
		return nil, err
	}
	return view, nil
}

func (h *DashboardHandler) dashboardResponse(view *dashboard.View) dto.DashboardResponse {
	state := view.State()
	resp := dto.DashboardResponse{
		Title:       dashboard.Meta.Title,
		Description: dashboard.Meta.Description,
		Filter:      string(view.Filter()),
		Loading:     view.Loading(),
		Count:       view.Count(),
		Version:     state.Version,
		Notice:      view.Notice(),
	}
	if !state.RefreshedAt.IsZero() {
		refreshed := state.RefreshedAt
		resp.RefreshedAt = &refreshed
	}

	resp.Options = make([]dto.FilterOption, 0, len(dashboard.FilterOptions))
	for _, opt := range dashboard.FilterOptions {
		resp.Options = append(resp.Options, dto.FilterOption{
			Value:    string(opt.Value),
			Label:    opt.Label,
			Selected: opt.Value == view.Filter(),
		})
	}

	for _, col := range view.Columns() {
		resp.Columns = append(resp.Columns, dto.ColumnDescriptor{
			Header:    col.Header,
			Kind:      col.Kind.String(),
			Field:     col.Field,
			ClassName: col.ClassName,
		})
	}

	tickets := view.Tickets()
	resp.Tickets = make([]dto.TicketRow, 0, len(tickets))
	for _, t := range tickets {
		resp.Tickets = append(resp.Tickets, dto.TicketRow{
			ID:          t.ID,
			Issue:       t.Issue,
			LastUpdated: t.LastUpdated,
			Category:    t.Category,
			Status:      t.Status,
			DetailPath:  render.DetailPath(h.detailPath, t.ID),
		})
	}
	return resp
}

func ticketDetail(ticket *domain.Ticket) dto.TicketDetailResponse {
	return dto.TicketDetailResponse{
		ID:          ticket.ID,
		Issue:       ticket.Issue,
		LastUpdated: ticket.LastUpdated,
		Category:    ticket.Category,
		Status:      ticket.Status,
		Maintenance: dashboard.IsEligible(ticket.Status),
	}
}
