package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/maintenance-dashboard/internal/domain"
	"github.com/spec-kit/maintenance-dashboard/internal/repository"
	"github.com/spec-kit/maintenance-dashboard/internal/source"
	apperrors "github.com/spec-kit/maintenance-dashboard/pkg/util/errorutil"
)

// TicketService resolves individual tickets for the detail route.
type TicketService struct {
	provider source.Provider
	tickets  repository.TicketRepository
}

// TicketDependencies bundles collaborators for ticket service.
type TicketDependencies struct {
	Provider   source.Provider
	TicketRepo repository.TicketRepository
}

// NewTicketService constructs the service.
func NewTicketService(deps TicketDependencies) *TicketService {
	return &TicketService{provider: deps.Provider, tickets: deps.TicketRepo}
}

// GetTicket looks the ticket up in the current snapshot first and falls
// back to the repository for tickets the snapshot does not hold.
func (s *TicketService) GetTicket(ctx context.Context, id string) (*domain.Ticket, error) {
	if s.provider != nil {
		for _, t := range s.provider.Snapshot().Tickets {
			if t.ID == id {
				return &t, nil
			}
		}
	}
	if s.tickets == nil {
		return nil, apperrors.NewNotFound("ticket", map[string]any{"id": id})
	}
	ticket, err := s.tickets.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("ticket", map[string]any{"id": id})
		}
		return nil, apperrors.NewInternalError(err)
	}
	return ticket, nil
}
