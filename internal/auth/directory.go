package auth

import (
	"context"
	"errors"
	"strings"

	"taskboard/internal/entity"

	"gorm.io/gorm"
)

// ErrPrincipalNotFound indicates that no lookup provider knows the username.
var ErrPrincipalNotFound = errors.New("principal not found")

// Principal is an authenticated identity resolved from a username.
type Principal struct {
	Username     string
	Role         string
	PasswordHash string
}

// LookupProvider resolves a username to a principal.
type LookupProvider interface {
	Lookup(ctx context.Context, username string) (Principal, error)
}

// Directory chains lookup providers in order; the first hit wins. A built-in
// account therefore shadows a database row with the same username.
type Directory struct {
	providers []LookupProvider
}

// NewDirectory creates a directory over the given providers, consulted in order.
func NewDirectory(providers ...LookupProvider) *Directory {
	return &Directory{providers: providers}
}

// Lookup resolves username against each provider in turn. Providers report an
// unknown name with ErrPrincipalNotFound; any other error aborts the chain.
func (d *Directory) Lookup(ctx context.Context, username string) (Principal, error) {
	if d == nil {
		return Principal{}, ErrPrincipalNotFound
	}
	for _, p := range d.providers {
		principal, err := p.Lookup(ctx, username)
		if err == nil {
			return principal, nil
		}
		if !errors.Is(err, ErrPrincipalNotFound) {
			return Principal{}, err
		}
	}
	return Principal{}, ErrPrincipalNotFound
}

// BuiltinAccount describes a fixed account held only in process memory.
type BuiltinAccount struct {
	Username string
	Password string
	Role     string
}

// MemoryProvider serves a fixed principal set built at startup. The map is
// never mutated afterwards, so concurrent reads need no synchronisation.
type MemoryProvider struct {
	principals map[string]Principal
}

// NewMemoryProvider hashes the account passwords and builds the provider.
func NewMemoryProvider(accounts []BuiltinAccount) (*MemoryProvider, error) {
	principals := make(map[string]Principal, len(accounts))
	for _, account := range accounts {
		hash, err := HashPassword(account.Password)
		if err != nil {
			return nil, err
		}
		principals[account.Username] = Principal{
			Username:     account.Username,
			Role:         account.Role,
			PasswordHash: hash,
		}
	}
	return &MemoryProvider{principals: principals}, nil
}

// Lookup returns the built-in principal for username, if any.
func (p *MemoryProvider) Lookup(_ context.Context, username string) (Principal, error) {
	if p == nil {
		return Principal{}, ErrPrincipalNotFound
	}
	principal, ok := p.principals[username]
	if !ok {
		return Principal{}, ErrPrincipalNotFound
	}
	return principal, nil
}

// CredentialSource is the slice of the repository the store provider needs.
type CredentialSource interface {
	GetUserByUsername(ctx context.Context, username string) (*entity.DbUser, error)
}

// StoreProvider resolves principals from the credential store.
type StoreProvider struct {
	source CredentialSource
}

// NewStoreProvider wraps a credential source as a lookup provider.
func NewStoreProvider(source CredentialSource) *StoreProvider {
	return &StoreProvider{source: source}
}

// Lookup queries the credential store by exact username.
func (p *StoreProvider) Lookup(ctx context.Context, username string) (Principal, error) {
	if p == nil || p.source == nil {
		return Principal{}, ErrPrincipalNotFound
	}
	if strings.TrimSpace(username) == "" {
		return Principal{}, ErrPrincipalNotFound
	}
	user, err := p.source.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Principal{}, ErrPrincipalNotFound
		}
		return Principal{}, err
	}
	return Principal{
		Username:     user.Username,
		Role:         user.Role,
		PasswordHash: user.PasswordHash,
	}, nil
}
