package memory

import (
	"context"
	"testing"
	"time"

	"github.com/sams408/safeon-id-vault/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() func() time.Time {
	t := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time { return t }
}

func seedClient(t *testing.T, s *Store, name string) *domain.Client {
	t.Helper()
	c, err := s.CreateClient(context.Background(), &domain.Client{Name: name, Email: name + "@acme.test", Status: domain.StatusActive})
	require.NoError(t, err)
	return c
}

func TestListClientsNewestFirst(t *testing.T) {
	s := NewStore()
	s.now = fixedClock()

	seedClient(t, s, "first")
	seedClient(t, s, "second")
	seedClient(t, s, "third")

	clients, err := s.ListClients(context.Background())
	require.NoError(t, err)
	require.Len(t, clients, 3)
	assert.Equal(t, []string{"third", "second", "first"}, []string{clients[0].Name, clients[1].Name, clients[2].Name})
}

func TestUserRequiresExistingClient(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	_, err := s.CreateUser(ctx, &domain.User{ClientID: "missing", Name: "Ana", Status: domain.StatusActive})
	assert.ErrorIs(t, err, domain.ErrMissingReference)

	c := seedClient(t, s, "acme")
	u, err := s.CreateUser(ctx, &domain.User{ClientID: c.ID, Name: "Ana", Status: domain.StatusActive})
	require.NoError(t, err)
	assert.Equal(t, "acme", u.ClientName)
}

func TestDeleteReferencedClient(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	c := seedClient(t, s, "acme")
	_, err := s.CreateProduct(ctx, &domain.Product{Name: "vault", ClientID: c.ID})
	require.NoError(t, err)

	err = s.DeleteClient(ctx, c.ID)
	assert.ErrorIs(t, err, domain.ErrReferenced)

	err = s.DeleteClient(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCategoryLifecycle(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	c := seedClient(t, s, "acme")

	tech, err := s.CreateCategory(ctx, "Technology")
	require.NoError(t, err)
	_, err = s.CreateCategory(ctx, "Technology")
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)

	p, err := s.CreateProduct(ctx, &domain.Product{Name: "vault", ClientID: c.ID, CategoryID: tech.ID, Category: tech.Name})
	require.NoError(t, err)

	got, err := s.GetCategoryByID(ctx, tech.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.ProductCount)

	_, err = s.UpdateCategory(ctx, &domain.Category{ID: tech.ID, Name: "Tech"})
	require.NoError(t, err)
	renamed, err := s.GetProductByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tech", renamed.Category)

	require.NoError(t, s.DeleteCategory(ctx, tech.ID))
	detached, err := s.GetProductByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, detached.CategoryID)
	assert.Empty(t, detached.Category)
}

func TestStats(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	seedClient(t, s, "a")
	_, err := s.CreateClient(ctx, &domain.Client{Name: "b", Status: domain.StatusInactive})
	require.NoError(t, err)

	stats, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Clients)
	assert.Equal(t, 1, stats.ActiveClients)
}

func TestUpdateAccountKeepsEmail(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	a, err := s.CreateAccount(ctx, &domain.Account{Name: "Admin", Email: "admin@safeon.io", PasswordHash: "old"})
	require.NoError(t, err)

	updated, err := s.UpdateAccount(ctx, a.ID, map[string]interface{}{
		"company":       "SafeOn",
		"password_hash": "new",
		"email":         "other@safeon.io",
	})
	require.NoError(t, err)
	assert.Equal(t, "SafeOn", updated.Company)
	assert.Equal(t, "admin@safeon.io", updated.Email)

	stored, err := s.GetAccountByEmail(ctx, "admin@safeon.io")
	require.NoError(t, err)
	assert.Equal(t, "new", stored.PasswordHash)
	assert.Equal(t, "Admin", stored.Name)

	_, err = s.UpdateAccount(ctx, "missing", map[string]interface{}{"name": "x"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
