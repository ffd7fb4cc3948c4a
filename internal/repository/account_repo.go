package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/sams408/safeon-id-vault/internal/domain"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var accountColumns = map[string]bool{"name": true, "phone": true, "company": true, "password_hash": true}

const accountSelect = `
        SELECT id, name, email, phone, company, password_hash, created_at
        FROM accounts`

type postgresAccountRepository struct {
	db  *sql.DB
	log *logrus.Logger
}

func NewPostgresAccountRepository(db *sql.DB, logger *logrus.Logger) domain.AccountRepository {
	return &postgresAccountRepository{
		db:  db,
		log: logger,
	}
}

func (r *postgresAccountRepository) CreateAccount(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	query := `
        INSERT INTO accounts (id, name, email, phone, company, password_hash)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING created_at`

	account.ID = uuid.NewString()
	err := r.db.QueryRowContext(ctx, query,
		account.ID, account.Name, account.Email, account.Phone, account.Company, account.PasswordHash,
	).Scan(&account.CreatedAt)
	if err != nil {
		if code, _ := pqCode(err); code == pqUniqueViolation {
			r.log.Warnf("Repository: Attempted to create account with duplicate email: %s", account.Email)
			return nil, fmt.Errorf("account with email '%s' %w", account.Email, domain.ErrAlreadyExists)
		}
		r.log.Errorf("Repository: Failed to create account '%s': %v", account.Email, err)
		return nil, fmt.Errorf("could not create account: %w", err)
	}

	r.log.Infof("Repository: Account created successfully with ID: %s, Email: %s", account.ID, account.Email)
	return account, nil
}

func (r *postgresAccountRepository) GetAccountByEmail(ctx context.Context, email string) (*domain.Account, error) {
	return r.getAccount(ctx, accountSelect+" WHERE email = $1", email, "email")
}

func (r *postgresAccountRepository) GetAccountByID(ctx context.Context, id string) (*domain.Account, error) {
	return r.getAccount(ctx, accountSelect+" WHERE id = $1", id, "id")
}

func (r *postgresAccountRepository) UpdateAccount(ctx context.Context, id string, updates map[string]interface{}) (*domain.Account, error) {
	setClauses, args := buildSetClauses(updates, accountColumns, r.log, "account", id)
	if len(setClauses) == 0 {
		r.log.Infof("Repository: No fields provided for account update ID %s. Returning current account.", id)
		return r.GetAccountByID(ctx, id)
	}

	query := "UPDATE accounts SET " + strings.Join(setClauses, ", ") +
		fmt.Sprintf(" WHERE id = $%d RETURNING id, name, email, phone, company, password_hash, created_at", len(args)+1)
	args = append(args, id)

	account, err := scanAccount(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || isInvalidID(err) {
			r.log.Warnf("Repository: Account with ID %s not found for update", id)
			return nil, fmt.Errorf("account with id %s %w", id, domain.ErrNotFound)
		}
		r.log.Errorf("Repository: Failed to update account ID %s: %v", id, err)
		return nil, fmt.Errorf("could not update account: %w", err)
	}

	r.log.Infof("Repository: Account updated successfully with ID: %s", id)
	return account, nil
}

func (r *postgresAccountRepository) getAccount(ctx context.Context, query, value, field string) (*domain.Account, error) {
	account, err := scanAccount(r.db.QueryRowContext(ctx, query, value))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || isInvalidID(err) {
			r.log.Warnf("Repository: Account with %s %s not found", field, value)
			return nil, fmt.Errorf("account with %s %s %w", field, value, domain.ErrNotFound)
		}
		r.log.Errorf("Repository: Failed to get account by %s %s: %v", field, value, err)
		return nil, fmt.Errorf("could not get account by %s: %w", field, err)
	}
	return account, nil
}

func scanAccount(row rowScanner) (*domain.Account, error) {
	account := &domain.Account{}
	err := row.Scan(
		&account.ID,
		&account.Name,
		&account.Email,
		&account.Phone,
		&account.Company,
		&account.PasswordHash,
		&account.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return account, nil
}
