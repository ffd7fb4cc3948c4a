package domain

import "context"

type AccountRepository interface {
	CreateAccount(ctx context.Context, account *Account) (*Account, error)
	GetAccountByEmail(ctx context.Context, email string) (*Account, error)
	GetAccountByID(ctx context.Context, id string) (*Account, error)
	// UpdateAccount applies name, phone, company and password_hash updates.
	// The email is the sign-in identity and never changes.
	UpdateAccount(ctx context.Context, id string, updates map[string]interface{}) (*Account, error)
}

type StatsRepository interface {
	Stats(ctx context.Context) (*Stats, error)
}
