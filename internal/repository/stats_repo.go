package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sams408/safeon-id-vault/internal/domain"

	"github.com/sirupsen/logrus"
)

type postgresStatsRepository struct {
	db  *sql.DB
	log *logrus.Logger
}

func NewPostgresStatsRepository(db *sql.DB, logger *logrus.Logger) domain.StatsRepository {
	return &postgresStatsRepository{db: db, log: logger}
}

func (r *postgresStatsRepository) Stats(ctx context.Context) (*domain.Stats, error) {
	query := `
        SELECT
            (SELECT count(*) FROM clients),
            (SELECT count(*) FROM clients WHERE status = 'active'),
            (SELECT count(*) FROM users),
            (SELECT count(*) FROM users WHERE status = 'active'),
            (SELECT count(*) FROM products),
            (SELECT count(*) FROM categories)`
	stats := &domain.Stats{}
	err := r.db.QueryRowContext(ctx, query).Scan(
		&stats.Clients,
		&stats.ActiveClients,
		&stats.Users,
		&stats.ActiveUsers,
		&stats.Products,
		&stats.Categories,
	)
	if err != nil {
		r.log.Errorf("Repository: Failed to compute dashboard stats: %v", err)
		return nil, fmt.Errorf("could not compute stats: %w", err)
	}
	return stats, nil
}
