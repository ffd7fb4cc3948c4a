package usecase

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/sams408/safeon-id-vault/internal/domain"
	"github.com/sams408/safeon-id-vault/internal/repository/memory"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	mu      sync.Mutex
	changes []domain.EntityChange
	err     error
}

func (p *recordingPublisher) Publish(_ context.Context, change domain.EntityChange) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.changes = append(p.changes, change)
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) actions() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.changes))
	for _, c := range p.changes {
		out = append(out, c.Entity+":"+string(c.Action))
	}
	return out
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

type fixture struct {
	store      *memory.Store
	publisher  *recordingPublisher
	clients    ClientUseCase
	users      UserUseCase
	products   ProductUseCase
	categories CategoryUseCase
}

func newFixture() *fixture {
	store := memory.NewStore()
	pub := &recordingPublisher{}
	log := quietLogger()
	return &fixture{
		store:      store,
		publisher:  pub,
		clients:    NewClientUseCase(store, pub, log),
		users:      NewUserUseCase(store, store, pub, log),
		products:   NewProductUseCase(store, store, store, pub, log),
		categories: NewCategoryUseCase(store, pub, log),
	}
}

func (f *fixture) client(t *testing.T) *domain.Client {
	t.Helper()
	c, err := f.clients.CreateClient(context.Background(), &domain.Client{Name: "Acme", Email: "ops@acme.io"})
	require.NoError(t, err)
	return c
}

func TestCreateClient(t *testing.T) {
	tests := []struct {
		name    string
		client  domain.Client
		wantErr error
	}{
		{name: "defaults status to active", client: domain.Client{Name: " Acme ", Email: "ops@acme.io"}},
		{name: "empty name", client: domain.Client{Name: "  ", Email: "ops@acme.io"}, wantErr: domain.ErrInvalidInput},
		{name: "bad email", client: domain.Client{Name: "Acme", Email: "acme"}, wantErr: domain.ErrInvalidInput},
		{name: "bad status", client: domain.Client{Name: "Acme", Email: "ops@acme.io", Status: "archived"}, wantErr: domain.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			c := tt.client
			got, err := f.clients.CreateClient(context.Background(), &c)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, f.publisher.actions())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Acme", got.Name)
			assert.Equal(t, domain.StatusActive, got.Status)
			assert.NotEmpty(t, got.ID)
			assert.Equal(t, []string{"client:created"}, f.publisher.actions())
		})
	}
}

func TestUpdateClientPartial(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	c := f.client(t)

	updated, err := f.clients.UpdateClient(ctx, c.ID, map[string]interface{}{"status": "INACTIVE", "unknown": 1})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInactive, updated.Status)
	assert.Equal(t, "Acme", updated.Name)
	assert.Equal(t, "ops@acme.io", updated.Email)

	same, err := f.clients.UpdateClient(ctx, c.ID, map[string]interface{}{})
	require.NoError(t, err)
	assert.Equal(t, updated, same)

	_, err = f.clients.UpdateClient(ctx, c.ID, map[string]interface{}{"name": ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.clients.UpdateClient(ctx, c.ID, map[string]interface{}{"email": 42})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.clients.UpdateClient(ctx, "missing", map[string]interface{}{"name": "x"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.Equal(t, []string{"client:created", "client:updated"}, f.publisher.actions())
}

func TestBlankIDsAreInvalid(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.clients.GetClientByID(ctx, " ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = f.users.GetUserByID(ctx, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = f.products.GetProductByID(ctx, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = f.categories.GetCategoryByID(ctx, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.ErrorIs(t, f.clients.DeleteClient(ctx, ""), domain.ErrInvalidInput)
}

func TestDeleteReferencedClientConflicts(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	c := f.client(t)
	_, err := f.users.CreateUser(ctx, &domain.User{ClientID: c.ID, Name: "Ana", Email: "ana@acme.io"})
	require.NoError(t, err)

	err = f.clients.DeleteClient(ctx, c.ID)
	assert.ErrorIs(t, err, domain.ErrReferenced)
}

func TestCreateUser(t *testing.T) {
	f := newFixture()
	c := f.client(t)
	ctx := domain.WithActor(context.Background(), "admin@safeon.io")

	_, err := f.users.CreateUser(ctx, &domain.User{ClientID: "nope", Name: "Ana", Email: "ana@acme.io"})
	assert.ErrorIs(t, err, domain.ErrMissingReference)

	_, err = f.users.CreateUser(ctx, &domain.User{Name: "Ana", Email: "ana@acme.io"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	u, err := f.users.CreateUser(ctx, &domain.User{ClientID: c.ID, Name: "Ana", Email: "ana@acme.io"})
	require.NoError(t, err)
	assert.Equal(t, "admin@safeon.io", u.CreatedBy)
	assert.Equal(t, "Acme", u.ClientName)
	assert.Equal(t, domain.StatusActive, u.Status)

	last := f.publisher.changes[len(f.publisher.changes)-1]
	assert.Equal(t, "admin@safeon.io", last.Actor)
	assert.Equal(t, u.ID, last.ID)
}

func TestUpdateUserClientMustExist(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	c := f.client(t)
	u, err := f.users.CreateUser(ctx, &domain.User{ClientID: c.ID, Name: "Ana", Email: "ana@acme.io"})
	require.NoError(t, err)

	_, err = f.users.UpdateUser(ctx, u.ID, map[string]interface{}{"client_id": "ghost"})
	assert.ErrorIs(t, err, domain.ErrMissingReference)

	updated, err := f.users.UpdateUser(ctx, u.ID, map[string]interface{}{"name": "Ana Maria", "created_by": "hacker"})
	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", updated.Name)
	assert.Equal(t, u.CreatedBy, updated.CreatedBy)
}

func TestProductCategoryLifecycle(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	c := f.client(t)

	hw, err := f.categories.CreateCategory(ctx, " Hardware ")
	require.NoError(t, err)
	assert.Equal(t, "Hardware", hw.Name)

	_, err = f.categories.CreateCategory(ctx, "Hardware")
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)

	_, err = f.products.CreateProduct(ctx, &domain.Product{Name: "Key", ClientID: c.ID, CategoryID: "ghost"})
	assert.ErrorIs(t, err, domain.ErrMissingReference)

	p, err := f.products.CreateProduct(ctx, &domain.Product{Name: "Key", ClientID: c.ID, CategoryID: hw.ID, Category: "spoofed"})
	require.NoError(t, err)
	assert.Equal(t, "Hardware", p.Category)

	sw, err := f.categories.CreateCategory(ctx, "Software")
	require.NoError(t, err)
	p, err = f.products.UpdateProduct(ctx, p.ID, map[string]interface{}{"category_id": sw.ID})
	require.NoError(t, err)
	assert.Equal(t, sw.ID, p.CategoryID)
	assert.Equal(t, "Software", p.Category)

	_, err = f.categories.UpdateCategory(ctx, sw.ID, "Apps")
	require.NoError(t, err)
	p, err = f.products.GetProductByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Apps", p.Category)

	p, err = f.products.UpdateProduct(ctx, p.ID, map[string]interface{}{"category_id": nil})
	require.NoError(t, err)
	assert.Empty(t, p.CategoryID)
	assert.Empty(t, p.Category)

	_, err = f.categories.UpdateCategory(ctx, hw.ID, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	require.NoError(t, f.categories.DeleteCategory(ctx, hw.ID))
	assert.ErrorIs(t, f.categories.DeleteCategory(ctx, hw.ID), domain.ErrNotFound)
}

func TestPublishFailureDoesNotFailMutation(t *testing.T) {
	f := newFixture()
	f.publisher.err = errors.New("broker down")

	_, err := f.categories.CreateCategory(context.Background(), "Hardware")
	require.NoError(t, err)
	assert.Equal(t, []string{"category:created"}, f.publisher.actions())
}

func TestDashboardStats(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	c := f.client(t)
	_, err := f.clients.CreateClient(ctx, &domain.Client{Name: "Globex", Email: "it@globex.com", Status: domain.StatusInactive})
	require.NoError(t, err)
	_, err = f.users.CreateUser(ctx, &domain.User{ClientID: c.ID, Name: "Ana", Email: "ana@acme.io"})
	require.NoError(t, err)

	stats, err := NewDashboardUseCase(f.store, quietLogger()).Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Clients)
	assert.Equal(t, 1, stats.ActiveClients)
	assert.Equal(t, 1, stats.Users)
	assert.Equal(t, 1, stats.ActiveUsers)
}
