package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sams408/safeon-id-vault/internal/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// Claims carried by a session token.
type Claims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

type Session struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expires_at"`
	Account   *domain.Account `json:"account"`
}

type AuthUseCase interface {
	Register(ctx context.Context, name, email, password, confirm string) (*domain.Account, error)
	Login(ctx context.Context, email, password string) (*Session, error)
	ParseToken(token string) (*Claims, error)
	Profile(ctx context.Context, id string) (*domain.Account, error)
	UpdateProfile(ctx context.Context, id string, updates map[string]interface{}) (*domain.Account, error)
	ChangePassword(ctx context.Context, id, current, password, confirm string) error
}

type authUseCase struct {
	accountRepo domain.AccountRepository
	secret      []byte
	ttl         time.Duration
	now         func() time.Time
	log         *logrus.Logger
}

func NewAuthUseCase(repo domain.AccountRepository, secret string, ttl time.Duration, logger *logrus.Logger) AuthUseCase {
	return &authUseCase{
		accountRepo: repo,
		secret:      []byte(secret),
		ttl:         ttl,
		now:         time.Now,
		log:         logger,
	}
}

var errBadCredentials = fmt.Errorf("invalid email or password: %w", domain.ErrUnauthorized)

func (uc *authUseCase) Register(ctx context.Context, name, email, password, confirm string) (*domain.Account, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	if name == "" {
		uc.log.Warn("Use Case: Registration failed - empty name")
		return nil, invalid("name cannot be empty")
	}
	if !isValidEmail(email) {
		uc.log.Warnf("Use Case: Registration failed - invalid email format: %s", email)
		return nil, invalid("invalid email format")
	}
	if err := validatePassword(password); err != nil {
		uc.log.Warnf("Use Case: Registration failed - password validation error: %v", err)
		return nil, err
	}
	if password != confirm {
		uc.log.Warnf("Use Case: Registration failed - passwords do not match for %s", email)
		return nil, invalid("passwords do not match")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		uc.log.Errorf("Use Case: Failed to hash password for %s: %v", email, err)
		return nil, fmt.Errorf("internal error processing password: %w", err)
	}

	account, err := uc.accountRepo.CreateAccount(ctx, &domain.Account{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
	})
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to create account %s: %v", email, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Account registered successfully: %s (ID: %s)", email, account.ID)
	return account, nil
}

func (uc *authUseCase) Login(ctx context.Context, email, password string) (*Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !isValidEmail(email) || password == "" {
		uc.log.Warnf("Use Case: Auth failed - invalid email or empty password for %s", email)
		return nil, errBadCredentials
	}

	account, err := uc.accountRepo.GetAccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			uc.log.Warnf("Use Case: Auth failed - account not found: %s", email)
			return nil, errBadCredentials
		}
		uc.log.Errorf("Use Case: Error retrieving account %s: %v", email, err)
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			uc.log.Warnf("Use Case: Auth failed - incorrect password for %s (ID: %s)", email, account.ID)
			return nil, errBadCredentials
		}
		uc.log.Errorf("Use Case: Error comparing password hash for %s: %v", email, err)
		return nil, fmt.Errorf("internal error during authentication: %w", err)
	}

	now := uc.now()
	expiresAt := now.Add(uc.ttl)
	claims := Claims{
		Email: account.Email,
		Name:  account.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   account.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(uc.secret)
	if err != nil {
		uc.log.Errorf("Use Case: Failed to sign token for %s: %v", email, err)
		return nil, fmt.Errorf("internal error during authentication: %w", err)
	}

	uc.log.Infof("Use Case: Authentication successful for %s (ID: %s)", email, account.ID)
	return &Session{Token: signed, ExpiresAt: expiresAt, Account: account}, nil
}

func (uc *authUseCase) ParseToken(token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return uc.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(uc.now))
	if err != nil || !parsed.Valid {
		return nil, fmt.Errorf("invalid or expired token: %w", domain.ErrUnauthorized)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("token has no subject: %w", domain.ErrUnauthorized)
	}
	return claims, nil
}

func (uc *authUseCase) Profile(ctx context.Context, id string) (*domain.Account, error) {
	account, err := uc.accountRepo.GetAccountByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("account %s no longer exists: %w", id, domain.ErrUnauthorized)
		}
		return nil, err
	}
	return account, nil
}

func (uc *authUseCase) UpdateProfile(ctx context.Context, id string, updates map[string]interface{}) (*domain.Account, error) {
	current, err := uc.Profile(ctx, id)
	if err != nil {
		return nil, err
	}

	validUpdates := make(map[string]interface{})
	for key, value := range updates {
		switch key {
		case "name":
			name, err := stringUpdate(key, value, false)
			if err != nil {
				return nil, err
			}
			if name == "" {
				uc.log.Warnf("Use Case: Empty 'name' provided for profile update ID %s", id)
				return nil, invalid("name cannot be empty")
			}
			validUpdates[key] = name
		case "phone", "company":
			v, err := stringUpdate(key, value, true)
			if err != nil {
				return nil, err
			}
			validUpdates[key] = v
		default:
			uc.log.Warnf("Use Case: Ignoring unknown or immutable field '%s' during profile update for account ID %s", key, id)
		}
	}

	if len(validUpdates) == 0 {
		uc.log.Infof("Use Case: No valid fields to update for account ID %s", id)
		return current, nil
	}

	account, err := uc.accountRepo.UpdateAccount(ctx, id, validUpdates)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to update account ID %s: %v", id, err)
		return nil, err
	}
	uc.log.Infof("Use Case: Profile updated for account ID %s", id)
	return account, nil
}

func (uc *authUseCase) ChangePassword(ctx context.Context, id, current, password, confirm string) error {
	account, err := uc.Profile(ctx, id)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(current)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			uc.log.Warnf("Use Case: Password change rejected - wrong current password for ID %s", id)
			return fmt.Errorf("current password is incorrect: %w", domain.ErrUnauthorized)
		}
		uc.log.Errorf("Use Case: Error comparing password hash for ID %s: %v", id, err)
		return fmt.Errorf("internal error processing password: %w", err)
	}
	if err := validatePassword(password); err != nil {
		uc.log.Warnf("Use Case: Password change rejected for ID %s: %v", id, err)
		return err
	}
	if password != confirm {
		uc.log.Warnf("Use Case: Password change rejected - passwords do not match for ID %s", id)
		return invalid("passwords do not match")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		uc.log.Errorf("Use Case: Failed to hash password for ID %s: %v", id, err)
		return fmt.Errorf("internal error processing password: %w", err)
	}
	if _, err := uc.accountRepo.UpdateAccount(ctx, id, map[string]interface{}{"password_hash": string(hashedPassword)}); err != nil {
		uc.log.Errorf("Use Case: Repository failed to store new password for ID %s: %v", id, err)
		return err
	}

	uc.log.Infof("Use Case: Password changed for account ID %s", id)
	return nil
}
