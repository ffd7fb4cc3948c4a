package repository

import (
	"context"
	"fmt"
	"net/url"

	"github.com/sams408/safeon-id-vault/internal/domain"
	"github.com/sams408/safeon-id-vault/internal/repository/memory"
	"github.com/sams408/safeon-id-vault/pkg/db"

	"github.com/sirupsen/logrus"
)

// Store bundles every repository behind one backend.
type Store struct {
	Backend    string
	Clients    domain.ClientRepository
	Users      domain.UserRepository
	Products   domain.ProductRepository
	Categories domain.CategoryRepository
	Accounts   domain.AccountRepository
	Stats      domain.StatsRepository

	ping  func(ctx context.Context) error
	close func() error
}

func (s *Store) Ping(ctx context.Context) error { return s.ping(ctx) }

func (s *Store) Close() error { return s.close() }

// Open picks the backend from the URL scheme: postgres:// and postgresql://
// use lib/pq, memory:// keeps everything in process.
func Open(ctx context.Context, databaseURL string, logger *logrus.Logger) (*Store, error) {
	u, err := url.Parse(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid database URL: %w", err)
	}

	switch u.Scheme {
	case "memory":
		logger.Warn("Using in-memory storage; data is lost on restart")
		return NewMemoryStore(memory.NewStore()), nil
	case "postgres", "postgresql":
		database, err := db.Connect(ctx, databaseURL)
		if err != nil {
			return nil, err
		}
		logger.Info("Database connection established.")
		return &Store{
			Backend:    "postgres",
			Clients:    NewPostgresClientRepository(database, logger),
			Users:      NewPostgresUserRepository(database, logger),
			Products:   NewPostgresProductRepository(database, logger),
			Categories: NewPostgresCategoryRepository(database, logger),
			Accounts:   NewPostgresAccountRepository(database, logger),
			Stats:      NewPostgresStatsRepository(database, logger),
			ping:       func(ctx context.Context) error { return db.Ping(ctx, database) },
			close:      database.Close,
		}, nil
	default:
		return nil, fmt.Errorf("unsupported database URL scheme %q", u.Scheme)
	}
}

func NewMemoryStore(m *memory.Store) *Store {
	return &Store{
		Backend:    "memory",
		Clients:    m,
		Users:      m,
		Products:   m,
		Categories: m,
		Accounts:   m,
		Stats:      m,
		ping:       m.Ping,
		close:      m.Close,
	}
}
