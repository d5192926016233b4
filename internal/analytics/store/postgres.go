package store

import (
	"context"

	"github.com/cosmichub/api/internal/analytics"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres persists analytics events to PostgreSQL.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres creates a PostgreSQL-backed analytics store.
func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

func (p *Postgres) SaveLinkCreated(ctx context.Context, event *analytics.LinkCreatedEvent) error {
	query := `
		INSERT INTO link_created_events (url, link_date, created_at, client_ip, user_agent)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := p.pool.Exec(ctx, query,
		event.URL,
		event.Date,
		event.CreatedAt,
		event.ClientIP,
		event.UserAgent,
	)

	return err
}

func (p *Postgres) SaveMessageReceived(ctx context.Context, event *analytics.MessageReceivedEvent) error {
	query := `
		INSERT INTO message_received_events (message_id, has_email, length, received_at, client_ip, user_agent)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := p.pool.Exec(ctx, query,
		event.MessageID,
		event.HasEmail,
		event.Length,
		event.ReceivedAt,
		event.ClientIP,
		event.UserAgent,
	)

	return err
}
