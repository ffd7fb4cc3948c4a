package usecase

import (
	"context"
	"strings"

	"github.com/sams408/safeon-id-vault/internal/domain"

	"github.com/sirupsen/logrus"
)

type UserUseCase interface {
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	GetUserByID(ctx context.Context, id string) (*domain.User, error)
	UpdateUser(ctx context.Context, id string, updates map[string]interface{}) (*domain.User, error)
	DeleteUser(ctx context.Context, id string) error
	ListUsers(ctx context.Context) ([]domain.User, error)
}

type userUseCase struct {
	userRepo   domain.UserRepository
	clientRepo domain.ClientRepository
	notifier
	log *logrus.Logger
}

func NewUserUseCase(uRepo domain.UserRepository, cRepo domain.ClientRepository, publisher domain.EventPublisher, logger *logrus.Logger) UserUseCase {
	return &userUseCase{
		userRepo:   uRepo,
		clientRepo: cRepo,
		notifier:   notifier{publisher: publisher, log: logger},
		log:        logger,
	}
}

func (uc *userUseCase) checkClient(ctx context.Context, clientID string) error {
	if clientID == "" {
		return invalid("client_id is required")
	}
	if _, err := uc.clientRepo.GetClientByID(ctx, clientID); err != nil {
		uc.log.Warnf("Use Case: Client ID %s not found for user: %v", clientID, err)
		return requireReference(err, "client", clientID)
	}
	return nil
}

func (uc *userUseCase) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	user.Name = strings.TrimSpace(user.Name)
	user.Email = strings.TrimSpace(user.Email)
	user.ClientID = strings.TrimSpace(user.ClientID)
	user.CreatedBy = strings.TrimSpace(user.CreatedBy)

	if user.Name == "" {
		uc.log.Warn("Use Case: Attempted to create user with empty name")
		return nil, invalid("user name cannot be empty")
	}
	if !isValidEmail(user.Email) {
		uc.log.Warnf("Use Case: Attempted to create user '%s' with invalid email: %s", user.Name, user.Email)
		return nil, invalid("invalid email format")
	}
	status, err := normalizeStatus(user.Status)
	if err != nil {
		return nil, err
	}
	user.Status = status
	if err := uc.checkClient(ctx, user.ClientID); err != nil {
		return nil, err
	}
	if user.CreatedBy == "" {
		user.CreatedBy = domain.ActorFrom(ctx)
	}

	uc.log.Infof("Use Case: Attempting to create user '%s' for client %s", user.Name, user.ClientID)
	created, err := uc.userRepo.CreateUser(ctx, user)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to create user '%s': %v", user.Name, err)
		return nil, err
	}

	uc.log.Infof("Use Case: User '%s' created successfully with ID %s", created.Name, created.ID)
	uc.notify(ctx, "user", domain.ActionCreated, created.ID)
	return created, nil
}

func (uc *userUseCase) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		uc.log.Warn("Use Case: Attempted to get user with empty ID")
		return nil, invalid("invalid user ID")
	}

	user, err := uc.userRepo.GetUserByID(ctx, id)
	if err != nil {
		uc.log.Warnf("Use Case: Repository failed to get user ID %s: %v", id, err)
		return nil, err
	}
	return user, nil
}

func (uc *userUseCase) UpdateUser(ctx context.Context, id string, updates map[string]interface{}) (*domain.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		uc.log.Warn("Use Case: Attempted update with empty user ID")
		return nil, invalid("invalid user ID for update")
	}

	current, err := uc.userRepo.GetUserByID(ctx, id)
	if err != nil {
		uc.log.Warnf("Use Case: User ID %s not found for update: %v", id, err)
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
				return nil, invalid("user name cannot be empty if provided for update")
			}
			validUpdates[key] = name
		case "email":
			email, err := stringUpdate(key, value, false)
			if err != nil {
				return nil, err
			}
			if !isValidEmail(email) {
				return nil, invalid("invalid email format")
			}
			validUpdates[key] = email
		case "status":
			raw, err := stringUpdate(key, value, false)
			if err != nil {
				return nil, err
			}
			status := domain.Status(strings.ToLower(raw))
			if !status.Valid() {
				return nil, invalid("status must be 'active' or 'inactive', got '%s'", raw)
			}
			validUpdates[key] = string(status)
		case "client_id":
			clientID, err := stringUpdate(key, value, false)
			if err != nil {
				return nil, err
			}
			if err := uc.checkClient(ctx, clientID); err != nil {
				return nil, err
			}
			validUpdates[key] = clientID
		default:
			uc.log.Warnf("Use Case: Ignoring unknown or immutable field '%s' during update for user ID %s", key, id)
		}
	}

	if len(validUpdates) == 0 {
		uc.log.Infof("Use Case: No valid fields to update for user ID %s", id)
		return current, nil
	}

	updated, err := uc.userRepo.UpdateUser(ctx, id, validUpdates)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to update user ID %s: %v", id, err)
		return nil, err
	}

	uc.log.Infof("Use Case: User ID %s updated successfully", id)
	uc.notify(ctx, "user", domain.ActionUpdated, id)
	return updated, nil
}

func (uc *userUseCase) DeleteUser(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return invalid("invalid user ID for delete")
	}

	if err := uc.userRepo.DeleteUser(ctx, id); err != nil {
		uc.log.Errorf("Use Case: Repository failed to delete user ID %s: %v", id, err)
		return err
	}

	uc.log.Infof("Use Case: User ID %s deleted successfully", id)
	uc.notify(ctx, "user", domain.ActionDeleted, id)
	return nil
}

func (uc *userUseCase) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := uc.userRepo.ListUsers(ctx)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list users: %v", err)
		return nil, err
	}
	uc.log.Infof("Use Case: Retrieved %d users", len(users))
	return users, nil
}
