package datasources

import (
	"context"
	"time"

	"github.com/jbeshir/content-ratings/internal/domain"
)

// APITokenCreator creates a new API token.
type APITokenCreator interface {
	CreateAPIToken(
		ctx context.Context,
		id string, userID int64, tokenHash, tokenPrefix string,
		name *string,
		expiresAt *time.Time,
	) error
}

// APITokenByHashGetter retrieves an API token by its hash.
type APITokenByHashGetter interface {
	GetAPITokenByHash(ctx context.Context, tokenHash string) (domain.APIToken, error)
}

// APITokenLastUsedUpdater updates the last_used_at timestamp for a token.
type APITokenLastUsedUpdater interface {
	UpdateAPITokenLastUsed(ctx context.Context, tokenID string) error
}

// UserAPITokenCounter counts active tokens for a user.
type UserAPITokenCounter interface {
	CountUserActiveAPITokens(ctx context.Context, userID int64) (int64, error)
}

// UserAPITokenLister lists all tokens for a user.
type UserAPITokenLister interface {
	ListUserAPITokens(ctx context.Context, userID int64) ([]domain.APIToken, error)
}

// APITokenRevoker revokes one of a user's tokens. It returns
// domain.ErrNotFound when the user has no such active token.
type APITokenRevoker interface {
	RevokeAPIToken(ctx context.Context, tokenID string, userID int64) error
}

// APITokenRepository combines all API token operations.
type APITokenRepository interface {
	APITokenCreator
	APITokenByHashGetter
	APITokenLastUsedUpdater
	UserAPITokenLister
	UserAPITokenCounter
	APITokenRevoker
}
