package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/sams408/safeon-id-vault/internal/domain"
	"github.com/sams408/safeon-id-vault/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterValidation(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		confirm  string
	}{
		{name: "bad email", email: "nope", password: "Secret123", confirm: "Secret123"},
		{name: "short password", email: "a@b.io", password: "Ab1", confirm: "Ab1"},
		{name: "no digit", email: "a@b.io", password: "SecretPass", confirm: "SecretPass"},
		{name: "mismatch", email: "a@b.io", password: "Secret123", confirm: "Secret124"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewAuthUseCase(memory.NewStore(), "secret", time.Hour, quietLogger())
			_, err := uc.Register(context.Background(), "Admin", tt.email, tt.password, tt.confirm)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestRegisterLoginParse(t *testing.T) {
	ctx := context.Background()
	uc := NewAuthUseCase(memory.NewStore(), "secret", time.Hour, quietLogger())

	account, err := uc.Register(ctx, "Admin", " Admin@SafeOn.io ", "Secret123", "Secret123")
	require.NoError(t, err)
	assert.Equal(t, "admin@safeon.io", account.Email)
	assert.NotEqual(t, "Secret123", account.PasswordHash)

	_, err = uc.Register(ctx, "Admin", "admin@safeon.io", "Secret123", "Secret123")
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)

	_, err = uc.Login(ctx, "admin@safeon.io", "Wrong1234")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = uc.Login(ctx, "ghost@safeon.io", "Secret123")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	session, err := uc.Login(ctx, "ADMIN@safeon.io", "Secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)

	claims, err := uc.ParseToken(session.Token)
	require.NoError(t, err)
	assert.Equal(t, account.ID, claims.Subject)
	assert.Equal(t, "admin@safeon.io", claims.Email)
	assert.Equal(t, "Admin", claims.Name)

	profile, err := uc.Profile(ctx, claims.Subject)
	require.NoError(t, err)
	assert.Equal(t, account.ID, profile.ID)

	_, err = uc.Profile(ctx, "ghost")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestParseTokenRejects(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	uc := NewAuthUseCase(store, "secret", time.Hour, quietLogger()).(*authUseCase)
	_, err := uc.Register(ctx, "Admin", "admin@safeon.io", "Secret123", "Secret123")
	require.NoError(t, err)
	session, err := uc.Login(ctx, "admin@safeon.io", "Secret123")
	require.NoError(t, err)

	other := NewAuthUseCase(store, "other-secret", time.Hour, quietLogger())
	_, err = other.ParseToken(session.Token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	uc.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = uc.ParseToken(session.Token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.ParseToken("garbage")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestUpdateProfile(t *testing.T) {
	tests := []struct {
		name    string
		updates map[string]interface{}
		wantErr error
		check   func(t *testing.T, a *domain.Account)
	}{
		{
			name:    "trims fields",
			updates: map[string]interface{}{"name": "  Ana Admin ", "phone": " +34 600 ", "company": "SafeOn"},
			check: func(t *testing.T, a *domain.Account) {
				assert.Equal(t, "Ana Admin", a.Name)
				assert.Equal(t, "+34 600", a.Phone)
				assert.Equal(t, "SafeOn", a.Company)
			},
		},
		{
			name:    "null clears optional field",
			updates: map[string]interface{}{"company": nil},
			check:   func(t *testing.T, a *domain.Account) { assert.Empty(t, a.Company) },
		},
		{
			name:    "email is immutable",
			updates: map[string]interface{}{"email": "other@safeon.io"},
			check:   func(t *testing.T, a *domain.Account) { assert.Equal(t, "admin@safeon.io", a.Email) },
		},
		{name: "blank name", updates: map[string]interface{}{"name": "   "}, wantErr: domain.ErrInvalidInput},
		{name: "null name", updates: map[string]interface{}{"name": nil}, wantErr: domain.ErrInvalidInput},
		{name: "non-string phone", updates: map[string]interface{}{"phone": 600}, wantErr: domain.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			uc := NewAuthUseCase(memory.NewStore(), "secret", time.Hour, quietLogger())
			account, err := uc.Register(ctx, "Admin", "admin@safeon.io", "Secret123", "Secret123")
			require.NoError(t, err)

			updated, err := uc.UpdateProfile(ctx, account.ID, tt.updates)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, updated)

			stored, err := uc.Profile(ctx, account.ID)
			require.NoError(t, err)
			assert.Equal(t, updated, stored)
		})
	}

	_, err := NewAuthUseCase(memory.NewStore(), "secret", time.Hour, quietLogger()).UpdateProfile(context.Background(), "ghost", map[string]interface{}{"name": "x"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestChangePassword(t *testing.T) {
	tests := []struct {
		name     string
		current  string
		password string
		confirm  string
		wantErr  error
	}{
		{name: "changed", current: "Secret123", password: "Another456", confirm: "Another456"},
		{name: "wrong current", current: "Secret999", password: "Another456", confirm: "Another456", wantErr: domain.ErrUnauthorized},
		{name: "weak new", current: "Secret123", password: "weak", confirm: "weak", wantErr: domain.ErrInvalidInput},
		{name: "mismatch", current: "Secret123", password: "Another456", confirm: "Another457", wantErr: domain.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			uc := NewAuthUseCase(memory.NewStore(), "secret", time.Hour, quietLogger())
			account, err := uc.Register(ctx, "Admin", "admin@safeon.io", "Secret123", "Secret123")
			require.NoError(t, err)

			err = uc.ChangePassword(ctx, account.ID, tt.current, tt.password, tt.confirm)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				_, err = uc.Login(ctx, "admin@safeon.io", "Secret123")
				assert.NoError(t, err, "old password must keep working")
				return
			}
			require.NoError(t, err)

			_, err = uc.Login(ctx, "admin@safeon.io", "Secret123")
			assert.ErrorIs(t, err, domain.ErrUnauthorized)
			_, err = uc.Login(ctx, "admin@safeon.io", tt.password)
			assert.NoError(t, err)
		})
	}
}
