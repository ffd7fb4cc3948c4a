package usecase

import (
	"context"
	"strings"

	"github.com/sams408/safeon-id-vault/internal/domain"

	"github.com/sirupsen/logrus"
)

type ClientUseCase interface {
	CreateClient(ctx context.Context, client *domain.Client) (*domain.Client, error)
	GetClientByID(ctx context.Context, id string) (*domain.Client, error)
	UpdateClient(ctx context.Context, id string, updates map[string]interface{}) (*domain.Client, error)
	DeleteClient(ctx context.Context, id string) error
	ListClients(ctx context.Context) ([]domain.Client, error)
}

type clientUseCase struct {
	clientRepo domain.ClientRepository
	notifier
	log *logrus.Logger
}

func NewClientUseCase(repo domain.ClientRepository, publisher domain.EventPublisher, logger *logrus.Logger) ClientUseCase {
	return &clientUseCase{
		clientRepo: repo,
		notifier:   notifier{publisher: publisher, log: logger},
		log:        logger,
	}
}

func (uc *clientUseCase) CreateClient(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	client.Name = strings.TrimSpace(client.Name)
	client.Email = strings.TrimSpace(client.Email)
	client.Phone = strings.TrimSpace(client.Phone)

	if client.Name == "" {
		uc.log.Warn("Use Case: Attempted to create client with empty name")
		return nil, invalid("client name cannot be empty")
	}
	if !isValidEmail(client.Email) {
		uc.log.Warnf("Use Case: Attempted to create client '%s' with invalid email: %s", client.Name, client.Email)
		return nil, invalid("invalid email format")
	}
	status, err := normalizeStatus(client.Status)
	if err != nil {
		uc.log.Warnf("Use Case: Attempted to create client '%s' with invalid status: %v", client.Name, err)
		return nil, err
	}
	client.Status = status

	uc.log.Infof("Use Case: Attempting to create client '%s'", client.Name)
	created, err := uc.clientRepo.CreateClient(ctx, client)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to create client '%s': %v", client.Name, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Client '%s' created successfully with ID %s", created.Name, created.ID)
	uc.notify(ctx, "client", domain.ActionCreated, created.ID)
	return created, nil
}

func (uc *clientUseCase) GetClientByID(ctx context.Context, id string) (*domain.Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		uc.log.Warn("Use Case: Attempted to get client with empty ID")
		return nil, invalid("invalid client ID")
	}

	client, err := uc.clientRepo.GetClientByID(ctx, id)
	if err != nil {
		uc.log.Warnf("Use Case: Repository failed to get client ID %s: %v", id, err)
		return nil, err
	}
	return client, nil
}

func (uc *clientUseCase) UpdateClient(ctx context.Context, id string, updates map[string]interface{}) (*domain.Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		uc.log.Warn("Use Case: Attempted update with empty client ID")
		return nil, invalid("invalid client ID for update")
	}

	current, err := uc.clientRepo.GetClientByID(ctx, id)
	if err != nil {
		uc.log.Warnf("Use Case: Client ID %s not found for update: %v", id, err)
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
				uc.log.Warnf("Use Case: Empty 'name' provided for update ID %s", id)
				return nil, invalid("client name cannot be empty if provided for update")
			}
			validUpdates[key] = name
		case "email":
			email, err := stringUpdate(key, value, false)
			if err != nil {
				return nil, err
			}
			if !isValidEmail(email) {
				uc.log.Warnf("Use Case: Invalid 'email' provided for update ID %s", id)
				return nil, invalid("invalid email format")
			}
			validUpdates[key] = email
		case "phone":
			phone, err := stringUpdate(key, value, true)
			if err != nil {
				return nil, err
			}
			validUpdates[key] = phone
		case "status":
			raw, err := stringUpdate(key, value, false)
			if err != nil {
				return nil, err
			}
			status := domain.Status(strings.ToLower(raw))
			if !status.Valid() {
				uc.log.Warnf("Use Case: Invalid 'status' %q provided for update ID %s", raw, id)
				return nil, invalid("status must be 'active' or 'inactive', got '%s'", raw)
			}
			validUpdates[key] = string(status)
		default:
			uc.log.Warnf("Use Case: Ignoring unknown or immutable field '%s' during update for client ID %s", key, id)
		}
	}

	if len(validUpdates) == 0 {
		uc.log.Infof("Use Case: No valid fields to update for client ID %s", id)
		return current, nil
	}

	updated, err := uc.clientRepo.UpdateClient(ctx, id, validUpdates)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to update client ID %s: %v", id, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Client ID %s updated successfully", id)
	uc.notify(ctx, "client", domain.ActionUpdated, id)
	return updated, nil
}

func (uc *clientUseCase) DeleteClient(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		uc.log.Warn("Use Case: Attempted to delete client with empty ID")
		return invalid("invalid client ID for delete")
	}

	if err := uc.clientRepo.DeleteClient(ctx, id); err != nil {
		uc.log.Errorf("Use Case: Repository failed to delete client ID %s: %v", id, err)
		return err
	}

	uc.log.Infof("Use Case: Client ID %s deleted successfully", id)
	uc.notify(ctx, "client", domain.ActionDeleted, id)
	return nil
}

func (uc *clientUseCase) ListClients(ctx context.Context) ([]domain.Client, error) {
	clients, err := uc.clientRepo.ListClients(ctx)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list clients: %v", err)
		return nil, err
	}
	uc.log.Infof("Use Case: Retrieved %d clients", len(clients))
	return clients, nil
}
