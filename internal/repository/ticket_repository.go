package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/maintenance-dashboard/internal/domain"
)

// LastUpdatedLayout formats updated_at into the display timestamp.
const LastUpdatedLayout = "2006-01-02 15:04"

// TicketRepository encapsulates ticket persistence.
type TicketRepository interface {
	ListAll(ctx context.Context) ([]domain.Ticket, error)
	GetByID(ctx context.Context, id string) (*domain.Ticket, error)
}

type ticketRepository struct {
	pool *pgxpool.Pool
}

// NewTicketRepository instantiates repository.
func NewTicketRepository(pool *pgxpool.Pool) TicketRepository {
	return &ticketRepository{pool: pool}
}

func (r *ticketRepository) ListAll(ctx context.Context) ([]domain.Ticket, error) {
	const query = `
        SELECT id, issue, category, status, updated_at
        FROM tickets ORDER BY id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTickets(rows)
}

func (r *ticketRepository) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	const query = `
        SELECT id, issue, category, status, updated_at
        FROM tickets WHERE id=$1`
	ticket, err := scanTicket(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

func scanTicket(row pgx.Row) (domain.Ticket, error) {
	var (
		ticket    domain.Ticket
		updatedAt time.Time
	)
	if err := row.Scan(
		&ticket.ID,
		&ticket.Issue,
		&ticket.Category,
		&ticket.Status,
		&updatedAt,
	); err != nil {
		return domain.Ticket{}, err
	}
	ticket.LastUpdated = updatedAt.UTC().Format(LastUpdatedLayout)
	return ticket, nil
}

func scanTickets(rows pgx.Rows) ([]domain.Ticket, error) {
	var result []domain.Ticket
	for rows.Next() {
		ticket, err := scanTicket(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, ticket)
	}
	return result, rows.Err()
}
