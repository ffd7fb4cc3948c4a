// Package memory is a map-backed implementation of every repository in
// domain. It mirrors the Postgres schema rules: foreign keys, unique category
// names and account emails, list ordering, and category detachment on delete.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/sams408/safeon-id-vault/internal/domain"

	"github.com/google/uuid"
)

type record[T any] struct {
	seq   int64
	value T
}

type Store struct {
	mu  sync.RWMutex
	seq int64
	now func() time.Time

	clients    map[string]record[domain.Client]
	users      map[string]record[domain.User]
	products   map[string]record[domain.Product]
	categories map[string]record[domain.Category]
	accounts   map[string]record[domain.Account]
}

func NewStore() *Store {
	return &Store{
		now:        time.Now,
		clients:    map[string]record[domain.Client]{},
		users:      map[string]record[domain.User]{},
		products:   map[string]record[domain.Product]{},
		categories: map[string]record[domain.Category]{},
		accounts:   map[string]record[domain.Account]{},
	}
}

func (s *Store) Ping(context.Context) error { return nil }

func (s *Store) Close() error { return nil }

func (s *Store) next() int64 {
	s.seq++
	return s.seq
}

// newestFirst sorts by created_at descending, insertion order breaking ties.
func newestFirst[T any](records map[string]record[T], createdAt func(T) time.Time) []T {
	list := make([]record[T], 0, len(records))
	for _, r := range records {
		list = append(list, r)
	}
	sort.Slice(list, func(i, j int) bool {
		ti, tj := createdAt(list[i].value), createdAt(list[j].value)
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return list[i].seq > list[j].seq
	})
	out := make([]T, 0, len(list))
	for _, r := range list {
		out = append(out, r.value)
	}
	return out
}

func str(updates map[string]interface{}, key string) (string, bool) {
	v, ok := updates[key]
	if !ok {
		return "", false
	}
	s, _ := v.(string)
	return s, true
}

// Clients

func (s *Store) CreateClient(_ context.Context, client *domain.Client) (*domain.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !client.Status.Valid() {
		return nil, fmt.Errorf("%w: client data constraint violation: status", domain.ErrInvalidInput)
	}
	c := *client
	c.ID = uuid.NewString()
	c.CreatedAt = s.now()
	s.clients[c.ID] = record[domain.Client]{seq: s.next(), value: c}
	return &c, nil
}

func (s *Store) GetClientByID(_ context.Context, id string) (*domain.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.clients[id]
	if !ok {
		return nil, fmt.Errorf("client with id %s %w", id, domain.ErrNotFound)
	}
	c := r.value
	return &c, nil
}

func (s *Store) UpdateClient(_ context.Context, id string, updates map[string]interface{}) (*domain.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.clients[id]
	if !ok {
		return nil, fmt.Errorf("client with id %s %w", id, domain.ErrNotFound)
	}
	c := r.value
	if v, ok := str(updates, "name"); ok {
		c.Name = v
	}
	if v, ok := str(updates, "email"); ok {
		c.Email = v
	}
	if v, ok := str(updates, "phone"); ok {
		c.Phone = v
	}
	if v, ok := str(updates, "status"); ok {
		if !domain.Status(v).Valid() {
			return nil, fmt.Errorf("%w: client data constraint violation: status", domain.ErrInvalidInput)
		}
		c.Status = domain.Status(v)
	}
	r.value = c
	s.clients[id] = r
	return &c, nil
}

func (s *Store) DeleteClient(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.clients[id]; !ok {
		return fmt.Errorf("client with id %s %w", id, domain.ErrNotFound)
	}
	for _, u := range s.users {
		if u.value.ClientID == id {
			return fmt.Errorf("client with id %s %w by users or products", id, domain.ErrReferenced)
		}
	}
	for _, p := range s.products {
		if p.value.ClientID == id {
			return fmt.Errorf("client with id %s %w by users or products", id, domain.ErrReferenced)
		}
	}
	delete(s.clients, id)
	return nil
}

func (s *Store) ListClients(context.Context) ([]domain.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return newestFirst(s.clients, func(c domain.Client) time.Time { return c.CreatedAt }), nil
}

// Users

func (s *Store) withClientName(u domain.User) domain.User {
	u.ClientName = ""
	if c, ok := s.clients[u.ClientID]; ok {
		u.ClientName = c.value.Name
	}
	return u
}

func (s *Store) CreateUser(_ context.Context, user *domain.User) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.clients[user.ClientID]; !ok {
		return nil, fmt.Errorf("client with id %s %w", user.ClientID, domain.ErrMissingReference)
	}
	if !user.Status.Valid() {
		return nil, fmt.Errorf("%w: user data constraint violation: status", domain.ErrInvalidInput)
	}
	u := *user
	u.ID = uuid.NewString()
	u.CreatedAt = s.now()
	s.users[u.ID] = record[domain.User]{seq: s.next(), value: u}
	u = s.withClientName(u)
	return &u, nil
}

func (s *Store) GetUserByID(_ context.Context, id string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.users[id]
	if !ok {
		return nil, fmt.Errorf("user with id %s %w", id, domain.ErrNotFound)
	}
	u := s.withClientName(r.value)
	return &u, nil
}

func (s *Store) UpdateUser(_ context.Context, id string, updates map[string]interface{}) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.users[id]
	if !ok {
		return nil, fmt.Errorf("user with id %s %w", id, domain.ErrNotFound)
	}
	u := r.value
	if v, ok := str(updates, "client_id"); ok {
		if _, exists := s.clients[v]; !exists {
			return nil, fmt.Errorf("client with id %s %w", v, domain.ErrMissingReference)
		}
		u.ClientID = v
	}
	if v, ok := str(updates, "name"); ok {
		u.Name = v
	}
	if v, ok := str(updates, "email"); ok {
		u.Email = v
	}
	if v, ok := str(updates, "status"); ok {
		if !domain.Status(v).Valid() {
			return nil, fmt.Errorf("%w: user data constraint violation: status", domain.ErrInvalidInput)
		}
		u.Status = domain.Status(v)
	}
	if v, ok := str(updates, "created_by"); ok {
		u.CreatedBy = v
	}
	r.value = u
	s.users[id] = r
	u = s.withClientName(u)
	return &u, nil
}

func (s *Store) DeleteUser(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return fmt.Errorf("user with id %s %w", id, domain.ErrNotFound)
	}
	delete(s.users, id)
	return nil
}

func (s *Store) ListUsers(context.Context) ([]domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := newestFirst(s.users, func(u domain.User) time.Time { return u.CreatedAt })
	for i := range users {
		users[i] = s.withClientName(users[i])
	}
	return users, nil
}

// Products

func (s *Store) withClientNameProduct(p domain.Product) domain.Product {
	p.ClientName = ""
	if c, ok := s.clients[p.ClientID]; ok {
		p.ClientName = c.value.Name
	}
	return p
}

func (s *Store) CreateProduct(_ context.Context, product *domain.Product) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.clients[product.ClientID]; !ok {
		return nil, fmt.Errorf("client or category for product '%s' %w", product.Name, domain.ErrMissingReference)
	}
	if product.CategoryID != "" {
		if _, ok := s.categories[product.CategoryID]; !ok {
			return nil, fmt.Errorf("client or category for product '%s' %w", product.Name, domain.ErrMissingReference)
		}
	}
	p := *product
	p.ID = uuid.NewString()
	p.CreatedAt = s.now()
	s.products[p.ID] = record[domain.Product]{seq: s.next(), value: p}
	p = s.withClientNameProduct(p)
	return &p, nil
}

func (s *Store) GetProductByID(_ context.Context, id string) (*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.products[id]
	if !ok {
		return nil, fmt.Errorf("product with id %s %w", id, domain.ErrNotFound)
	}
	p := s.withClientNameProduct(r.value)
	return &p, nil
}

func (s *Store) UpdateProduct(_ context.Context, id string, updates map[string]interface{}) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.products[id]
	if !ok {
		return nil, fmt.Errorf("product with id %s %w", id, domain.ErrNotFound)
	}
	p := r.value
	if v, ok := str(updates, "client_id"); ok {
		if _, exists := s.clients[v]; !exists {
			return nil, fmt.Errorf("client or category for product %s %w", id, domain.ErrMissingReference)
		}
		p.ClientID = v
	}
	if v, ok := str(updates, "category_id"); ok {
		if _, exists := s.categories[v]; v != "" && !exists {
			return nil, fmt.Errorf("client or category for product %s %w", id, domain.ErrMissingReference)
		}
		p.CategoryID = v
	}
	if v, ok := str(updates, "category"); ok {
		p.Category = v
	}
	if v, ok := str(updates, "name"); ok {
		p.Name = v
	}
	if v, ok := str(updates, "description"); ok {
		p.Description = v
	}
	if v, ok := str(updates, "created_by"); ok {
		p.CreatedBy = v
	}
	r.value = p
	s.products[id] = r
	p = s.withClientNameProduct(p)
	return &p, nil
}

func (s *Store) DeleteProduct(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[id]; !ok {
		return fmt.Errorf("product with id %s %w", id, domain.ErrNotFound)
	}
	delete(s.products, id)
	return nil
}

func (s *Store) ListProducts(context.Context) ([]domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	products := newestFirst(s.products, func(p domain.Product) time.Time { return p.CreatedAt })
	for i := range products {
		products[i] = s.withClientNameProduct(products[i])
	}
	return products, nil
}

// Categories

func (s *Store) withCount(c domain.Category) domain.Category {
	c.ProductCount = 0
	for _, p := range s.products {
		if p.value.CategoryID == c.ID {
			c.ProductCount++
		}
	}
	return c
}

func (s *Store) categoryNameTaken(name, exceptID string) bool {
	for id, c := range s.categories {
		if id != exceptID && c.value.Name == name {
			return true
		}
	}
	return false
}

func (s *Store) CreateCategory(_ context.Context, name string) (*domain.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.categoryNameTaken(name, "") {
		return nil, fmt.Errorf("category with name '%s' %w", name, domain.ErrAlreadyExists)
	}
	c := domain.Category{ID: uuid.NewString(), Name: name, CreatedAt: s.now()}
	s.categories[c.ID] = record[domain.Category]{seq: s.next(), value: c}
	return &c, nil
}

func (s *Store) GetCategoryByID(_ context.Context, id string) (*domain.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.categories[id]
	if !ok {
		return nil, fmt.Errorf("category with id %s %w", id, domain.ErrNotFound)
	}
	c := s.withCount(r.value)
	return &c, nil
}

func (s *Store) UpdateCategory(_ context.Context, category *domain.Category) (*domain.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.categories[category.ID]
	if !ok {
		return nil, fmt.Errorf("category with id %s %w", category.ID, domain.ErrNotFound)
	}
	if s.categoryNameTaken(category.Name, category.ID) {
		return nil, fmt.Errorf("category with name '%s' %w", category.Name, domain.ErrAlreadyExists)
	}
	r.value.Name = category.Name
	s.categories[category.ID] = r
	for id, p := range s.products {
		if p.value.CategoryID == category.ID {
			p.value.Category = category.Name
			s.products[id] = p
		}
	}
	c := s.withCount(r.value)
	return &c, nil
}

func (s *Store) DeleteCategory(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.categories[id]; !ok {
		return fmt.Errorf("category with id %s %w", id, domain.ErrNotFound)
	}
	for pid, p := range s.products {
		if p.value.CategoryID == id {
			p.value.CategoryID = ""
			p.value.Category = ""
			s.products[pid] = p
		}
	}
	delete(s.categories, id)
	return nil
}

func (s *Store) ListCategories(context.Context) ([]domain.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	categories := make([]domain.Category, 0, len(s.categories))
	for _, r := range s.categories {
		categories = append(categories, s.withCount(r.value))
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].Name < categories[j].Name })
	return categories, nil
}

// Accounts

func (s *Store) CreateAccount(_ context.Context, account *domain.Account) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.accounts {
		if a.value.Email == account.Email {
			return nil, fmt.Errorf("account with email '%s' %w", account.Email, domain.ErrAlreadyExists)
		}
	}
	a := *account
	a.ID = uuid.NewString()
	a.CreatedAt = s.now()
	s.accounts[a.ID] = record[domain.Account]{seq: s.next(), value: a}
	return &a, nil
}

func (s *Store) GetAccountByEmail(_ context.Context, email string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.accounts {
		if a.value.Email == email {
			account := a.value
			return &account, nil
		}
	}
	return nil, fmt.Errorf("account with email %s %w", email, domain.ErrNotFound)
}

func (s *Store) GetAccountByID(_ context.Context, id string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.accounts[id]
	if !ok {
		return nil, fmt.Errorf("account with id %s %w", id, domain.ErrNotFound)
	}
	account := a.value
	return &account, nil
}

func (s *Store) UpdateAccount(_ context.Context, id string, updates map[string]interface{}) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.accounts[id]
	if !ok {
		return nil, fmt.Errorf("account with id %s %w", id, domain.ErrNotFound)
	}
	a := r.value
	if v, ok := str(updates, "name"); ok {
		a.Name = v
	}
	if v, ok := str(updates, "phone"); ok {
		a.Phone = v
	}
	if v, ok := str(updates, "company"); ok {
		a.Company = v
	}
	if v, ok := str(updates, "password_hash"); ok {
		a.PasswordHash = v
	}
	r.value = a
	s.accounts[id] = r
	return &a, nil
}

// Stats

func (s *Store) Stats(context.Context) (*domain.Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := &domain.Stats{
		Clients:    len(s.clients),
		Users:      len(s.users),
		Products:   len(s.products),
		Categories: len(s.categories),
	}
	for _, c := range s.clients {
		if c.value.Status == domain.StatusActive {
			stats.ActiveClients++
		}
	}
	for _, u := range s.users {
		if u.value.Status == domain.StatusActive {
			stats.ActiveUsers++
		}
	}
	return stats, nil
}
