package domain

import "context"

type ClientRepository interface {
	CreateClient(ctx context.Context, client *Client) (*Client, error)
	GetClientByID(ctx context.Context, id string) (*Client, error)
	UpdateClient(ctx context.Context, id string, updates map[string]interface{}) (*Client, error)
	DeleteClient(ctx context.Context, id string) error
	ListClients(ctx context.Context) ([]Client, error)
}
