//go:build integration

package repository

import (
	"context"
	"database/sql"
	"io"
	"os"
	"testing"

	"github.com/sams408/safeon-id-vault/internal/domain"
	"github.com/sams408/safeon-id-vault/pkg/db"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Run with: TEST_DATABASE_URL=postgres://... go test -tags integration ./internal/repository/
func openTestDB(t *testing.T) (*sql.DB, *logrus.Logger) {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	log := logrus.New()
	log.SetOutput(io.Discard)

	ctx := context.Background()
	database, err := db.Connect(ctx, url)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	_, err = db.Migrate(ctx, database, log)
	require.NoError(t, err)
	_, err = database.ExecContext(ctx, `TRUNCATE products, users, categories, clients, accounts`)
	require.NoError(t, err)
	return database, log
}

func TestPostgresClientLifecycle(t *testing.T) {
	database, log := openTestDB(t)
	ctx := context.Background()
	clients := NewPostgresClientRepository(database, log)
	users := NewPostgresUserRepository(database, log)

	c, err := clients.CreateClient(ctx, &domain.Client{Name: "Acme", Email: "ops@acme.io", Status: domain.StatusActive})
	require.NoError(t, err)
	_, err = uuid.Parse(c.ID)
	require.NoError(t, err)

	got, err := clients.GetClientByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme", got.Name)

	_, err = clients.GetClientByID(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	updated, err := clients.UpdateClient(ctx, c.ID, map[string]interface{}{"status": "inactive"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInactive, updated.Status)

	_, err = clients.UpdateClient(ctx, c.ID, map[string]interface{}{"status": "archived"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = users.CreateUser(ctx, &domain.User{ClientID: uuid.NewString(), Name: "Ana", Email: "ana@acme.io", Status: domain.StatusActive})
	assert.ErrorIs(t, err, domain.ErrMissingReference)

	u, err := users.CreateUser(ctx, &domain.User{ClientID: c.ID, Name: "Ana", Email: "ana@acme.io", Status: domain.StatusActive})
	require.NoError(t, err)
	assert.Equal(t, "Acme", u.ClientName)

	assert.ErrorIs(t, clients.DeleteClient(ctx, c.ID), domain.ErrReferenced)
	require.NoError(t, users.DeleteUser(ctx, u.ID))
	require.NoError(t, clients.DeleteClient(ctx, c.ID))
	assert.ErrorIs(t, clients.DeleteClient(ctx, c.ID), domain.ErrNotFound)
}

func TestPostgresCategoryFunctions(t *testing.T) {
	database, log := openTestDB(t)
	ctx := context.Background()
	clients := NewPostgresClientRepository(database, log)
	products := NewPostgresProductRepository(database, log)
	categories := NewPostgresCategoryRepository(database, log)

	c, err := clients.CreateClient(ctx, &domain.Client{Name: "Acme", Email: "ops@acme.io", Status: domain.StatusActive})
	require.NoError(t, err)

	hw, err := categories.CreateCategory(ctx, "Hardware")
	require.NoError(t, err)
	_, err = categories.CreateCategory(ctx, "Hardware")
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)

	p, err := products.CreateProduct(ctx, &domain.Product{Name: "Key", ClientID: c.ID, CategoryID: hw.ID, Category: hw.Name})
	require.NoError(t, err)

	got, err := categories.GetCategoryByID(ctx, hw.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.ProductCount)

	renamed, err := categories.UpdateCategory(ctx, &domain.Category{ID: hw.ID, Name: "Devices"})
	require.NoError(t, err)
	assert.Equal(t, "Devices", renamed.Name)

	p, err = products.GetProductByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Devices", p.Category)

	require.NoError(t, categories.DeleteCategory(ctx, hw.ID))
	assert.ErrorIs(t, categories.DeleteCategory(ctx, hw.ID), domain.ErrNotFound)

	p, err = products.GetProductByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, p.CategoryID)
	assert.Empty(t, p.Category)

	list, err := categories.ListCategories(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestPostgresAccountsAndStats(t *testing.T) {
	database, log := openTestDB(t)
	ctx := context.Background()
	accounts := NewPostgresAccountRepository(database, log)

	a, err := accounts.CreateAccount(ctx, &domain.Account{Name: "Admin", Email: "admin@safeon.io", PasswordHash: "x"})
	require.NoError(t, err)
	_, err = accounts.CreateAccount(ctx, &domain.Account{Name: "Admin", Email: "admin@safeon.io", PasswordHash: "x"})
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)

	byEmail, err := accounts.GetAccountByEmail(ctx, "admin@safeon.io")
	require.NoError(t, err)
	assert.Equal(t, a.ID, byEmail.ID)

	updated, err := accounts.UpdateAccount(ctx, a.ID, map[string]interface{}{"phone": "+34 600", "company": "SafeOn", "email": "x@y.io"})
	require.NoError(t, err)
	assert.Equal(t, "+34 600", updated.Phone)
	assert.Equal(t, "SafeOn", updated.Company)
	assert.Equal(t, "admin@safeon.io", updated.Email)

	_, err = accounts.UpdateAccount(ctx, uuid.NewString(), map[string]interface{}{"name": "Ghost"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	stats, err := NewPostgresStatsRepository(database, log).Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.Stats{}, *stats)
}
