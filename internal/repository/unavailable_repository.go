package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/maintenance-dashboard/internal/domain"
)

// ErrNoDatabase is returned when no database is configured.
var ErrNoDatabase = errors.New("database not configured")

type unavailableRepository struct{}

// NewUnavailableRepository returns a repository that has no tickets to
// offer. Listing fails so callers fall back to their cache.
func NewUnavailableRepository() TicketRepository {
	return unavailableRepository{}
}

func (unavailableRepository) ListAll(ctx context.Context) ([]domain.Ticket, error) {
	return nil, ErrNoDatabase
}

func (unavailableRepository) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	return nil, pgx.ErrNoRows
}
