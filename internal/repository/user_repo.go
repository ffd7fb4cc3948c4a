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

var userColumns = map[string]bool{"client_id": true, "name": true, "email": true, "status": true, "created_by": true}

const userSelect = `
        SELECT u.id, u.client_id, COALESCE(c.name, ''), u.name, u.email, u.status, u.created_by, u.created_at
        FROM users u
        LEFT JOIN clients c ON c.id = u.client_id`

type postgresUserRepository struct {
	db  *sql.DB
	log *logrus.Logger
}

func NewPostgresUserRepository(db *sql.DB, logger *logrus.Logger) domain.UserRepository {
	return &postgresUserRepository{
		db:  db,
		log: logger,
	}
}

func scanUser(row rowScanner) (*domain.User, error) {
	user := &domain.User{}
	var status string
	err := row.Scan(
		&user.ID,
		&user.ClientID,
		&user.ClientName,
		&user.Name,
		&user.Email,
		&status,
		&user.CreatedBy,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	user.Status = domain.Status(status)
	return user, nil
}

func (r *postgresUserRepository) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
        INSERT INTO users (client_id, name, email, status, created_by)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id`

	r.log.Debugf("Repository: Attempting to create user with email: %s", user.Email)

	var id string
	err := r.db.QueryRowContext(ctx, query, user.ClientID, user.Name, user.Email, string(user.Status), user.CreatedBy).Scan(&id)
	if err != nil {
		code, msg := pqCode(err)
		if code == pqForeignKeyViolation || code == pqInvalidTextRep {
			r.log.Warnf("Repository: Attempted to create user with non-existent client ID: %s", user.ClientID)
			return nil, fmt.Errorf("client with id %s %w", user.ClientID, domain.ErrMissingReference)
		}
		if code == pqCheckViolation {
			r.log.Warnf("Repository: Check constraint violation for user '%s': %s", user.Email, msg)
			return nil, fmt.Errorf("%w: user data constraint violation: %s", domain.ErrInvalidInput, msg)
		}
		r.log.Errorf("Repository: Failed to create user '%s': %v", user.Email, err)
		return nil, fmt.Errorf("could not create user: %w", err)
	}

	r.log.Infof("Repository: User created successfully with ID: %s, Email: %s", id, user.Email)
	return r.GetUserByID(ctx, id)
}

func (r *postgresUserRepository) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	user, err := scanUser(r.db.QueryRowContext(ctx, userSelect+` WHERE u.id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || isInvalidID(err) {
			r.log.Warnf("Repository: User with ID %s not found", id)
			return nil, fmt.Errorf("user with id %s %w", id, domain.ErrNotFound)
		}
		r.log.Errorf("Repository: Failed to get user by ID %s: %v", id, err)
		return nil, fmt.Errorf("could not get user by id: %w", err)
	}
	return user, nil
}

func (r *postgresUserRepository) UpdateUser(ctx context.Context, id string, updates map[string]interface{}) (*domain.User, error) {
	setClauses, args := buildSetClauses(updates, userColumns, r.log, "user", id)
	if len(setClauses) == 0 {
		r.log.Infof("Repository: No fields provided for user update ID %s. Returning current user.", id)
		return r.GetUserByID(ctx, id)
	}

	query := "UPDATE users SET " + strings.Join(setClauses, ", ") + fmt.Sprintf(" WHERE id = $%d", len(args)+1)
	args = append(args, id)

	r.log.Debugf("Repository: Executing partial update query for user ID %s: %s", id, query)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		code, msg := pqCode(err)
		if code == pqForeignKeyViolation {
			clientID, _ := updates["client_id"].(string)
			r.log.Warnf("Repository: Attempted to update user ID %s with non-existent client ID: %s", id, clientID)
			return nil, fmt.Errorf("client with id %s %w", clientID, domain.ErrMissingReference)
		}
		if code == pqCheckViolation {
			r.log.Warnf("Repository: Check constraint violation for user update ID %s: %s", id, msg)
			return nil, fmt.Errorf("%w: user data constraint violation: %s", domain.ErrInvalidInput, msg)
		}
		if code == pqInvalidTextRep {
			return nil, fmt.Errorf("user with id %s %w", id, domain.ErrNotFound)
		}
		r.log.Errorf("Repository: Failed to execute partial update for user ID %s: %v", id, err)
		return nil, fmt.Errorf("could not partially update user: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.Errorf("Repository: Failed to get rows affected after partial update for user ID %s: %v", id, err)
		return nil, fmt.Errorf("could not confirm user update: %w", err)
	}
	if rowsAffected == 0 {
		r.log.Warnf("Repository: User with ID %s not found for update (0 rows affected)", id)
		return nil, fmt.Errorf("user with id %s %w", id, domain.ErrNotFound)
	}

	r.log.Infof("Repository: Partial update successful for user ID %s. Fetching updated user.", id)
	return r.GetUserByID(ctx, id)
}

func (r *postgresUserRepository) DeleteUser(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		if isInvalidID(err) {
			return fmt.Errorf("user with id %s %w", id, domain.ErrNotFound)
		}
		r.log.Errorf("Repository: Failed to delete user ID %s: %v", id, err)
		return fmt.Errorf("could not delete user: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.Errorf("Repository: Failed to get rows affected after deleting user ID %s: %v", id, err)
		return fmt.Errorf("could not confirm user deletion: %w", err)
	}
	if rowsAffected == 0 {
		r.log.Warnf("Repository: Attempted to delete non-existent user ID %s", id)
		return fmt.Errorf("user with id %s %w", id, domain.ErrNotFound)
	}
	r.log.Infof("Repository: User deleted successfully with ID: %s", id)
	return nil
}

func (r *postgresUserRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx, userSelect+` ORDER BY u.created_at DESC`)
	if err != nil {
		r.log.Errorf("Repository: Failed to list users: %v", err)
		return nil, fmt.Errorf("could not list users: %w", err)
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			r.log.Errorf("Repository: Failed to scan user row: %v", err)
			return nil, fmt.Errorf("error scanning user data: %w", err)
		}
		users = append(users, *user)
	}
	if err = rows.Err(); err != nil {
		r.log.Errorf("Repository: Error during users list iteration: %v", err)
		return nil, fmt.Errorf("error iterating users: %w", err)
	}
	r.log.Infof("Repository: Retrieved %d users", len(users))
	return users, nil
}
