package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/sams408/safeon-id-vault/internal/domain"

	"github.com/sirupsen/logrus"
)

var clientColumns = map[string]bool{"name": true, "email": true, "phone": true, "status": true}

type postgresClientRepository struct {
	db  *sql.DB
	log *logrus.Logger
}

func NewPostgresClientRepository(db *sql.DB, logger *logrus.Logger) domain.ClientRepository {
	return &postgresClientRepository{
		db:  db,
		log: logger,
	}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanClient(row rowScanner) (*domain.Client, error) {
	client := &domain.Client{}
	var status string
	err := row.Scan(&client.ID, &client.Name, &client.Email, &client.Phone, &status, &client.CreatedAt)
	if err != nil {
		return nil, err
	}
	client.Status = domain.Status(status)
	return client, nil
}

func (r *postgresClientRepository) CreateClient(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	query := `
        INSERT INTO clients (name, email, phone, status)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at`
	err := r.db.QueryRowContext(ctx, query, client.Name, client.Email, client.Phone, string(client.Status)).Scan(&client.ID, &client.CreatedAt)
	if err != nil {
		if code, msg := pqCode(err); code == pqCheckViolation {
			r.log.Warnf("Repository: Check constraint violation for client '%s': %s", client.Name, msg)
			return nil, fmt.Errorf("%w: client data constraint violation: %s", domain.ErrInvalidInput, msg)
		}
		r.log.Errorf("Repository: Failed to create client '%s': %v", client.Name, err)
		return nil, fmt.Errorf("could not create client: %w", err)
	}
	r.log.Infof("Repository: Client created successfully with ID: %s, Name: %s", client.ID, client.Name)
	return client, nil
}

func (r *postgresClientRepository) GetClientByID(ctx context.Context, id string) (*domain.Client, error) {
	query := `
        SELECT id, name, email, phone, status, created_at
        FROM clients
        WHERE id = $1`
	client, err := scanClient(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || isInvalidID(err) {
			r.log.Warnf("Repository: Client with ID %s not found", id)
			return nil, fmt.Errorf("client with id %s %w", id, domain.ErrNotFound)
		}
		r.log.Errorf("Repository: Failed to get client by ID %s: %v", id, err)
		return nil, fmt.Errorf("could not get client by id: %w", err)
	}
	return client, nil
}

func (r *postgresClientRepository) UpdateClient(ctx context.Context, id string, updates map[string]interface{}) (*domain.Client, error) {
	setClauses, args := buildSetClauses(updates, clientColumns, r.log, "client", id)
	if len(setClauses) == 0 {
		r.log.Infof("Repository: No fields provided for client update ID %s. Returning current client.", id)
		return r.GetClientByID(ctx, id)
	}

	query := "UPDATE clients SET " + strings.Join(setClauses, ", ") +
		fmt.Sprintf(" WHERE id = $%d RETURNING id, name, email, phone, status, created_at", len(args)+1)
	args = append(args, id)

	r.log.Debugf("Repository: Executing partial update query for client ID %s: %s", id, query)

	client, err := scanClient(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || isInvalidID(err) {
			r.log.Warnf("Repository: Client with ID %s not found for update", id)
			return nil, fmt.Errorf("client with id %s %w", id, domain.ErrNotFound)
		}
		if code, msg := pqCode(err); code == pqCheckViolation {
			r.log.Warnf("Repository: Check constraint violation for client update ID %s: %s", id, msg)
			return nil, fmt.Errorf("%w: client data constraint violation: %s", domain.ErrInvalidInput, msg)
		}
		r.log.Errorf("Repository: Failed to update client ID %s: %v", id, err)
		return nil, fmt.Errorf("could not update client: %w", err)
	}

	r.log.Infof("Repository: Client updated successfully with ID: %s", id)
	return client, nil
}

func (r *postgresClientRepository) DeleteClient(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		if isInvalidID(err) {
			return fmt.Errorf("client with id %s %w", id, domain.ErrNotFound)
		}
		if code, _ := pqCode(err); code == pqForeignKeyViolation {
			r.log.Warnf("Repository: Client ID %s still has users or products", id)
			return fmt.Errorf("client with id %s %w by users or products", id, domain.ErrReferenced)
		}
		r.log.Errorf("Repository: Failed to delete client ID %s: %v", id, err)
		return fmt.Errorf("could not delete client: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.Errorf("Repository: Failed to get rows affected after deleting client ID %s: %v", id, err)
		return fmt.Errorf("could not confirm client deletion: %w", err)
	}
	if rowsAffected == 0 {
		r.log.Warnf("Repository: Attempted to delete non-existent client ID %s", id)
		return fmt.Errorf("client with id %s %w", id, domain.ErrNotFound)
	}

	r.log.Infof("Repository: Client deleted successfully with ID: %s", id)
	return nil
}

func (r *postgresClientRepository) ListClients(ctx context.Context) ([]domain.Client, error) {
	query := `
        SELECT id, name, email, phone, status, created_at
        FROM clients
        ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.log.Errorf("Repository: Failed to list clients: %v", err)
		return nil, fmt.Errorf("could not list clients: %w", err)
	}
	defer rows.Close()

	clients := []domain.Client{}
	for rows.Next() {
		client, err := scanClient(rows)
		if err != nil {
			r.log.Errorf("Repository: Failed to scan client row: %v", err)
			return nil, fmt.Errorf("error scanning client data: %w", err)
		}
		clients = append(clients, *client)
	}
	if err = rows.Err(); err != nil {
		r.log.Errorf("Repository: Error during clients list iteration: %v", err)
		return nil, fmt.Errorf("error iterating clients: %w", err)
	}

	r.log.Infof("Repository: Retrieved %d clients", len(clients))
	return clients, nil
}
