package command

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jbeshir/content-ratings/internal/datasources"
)

// MaxAPITokensPerUser is the maximum number of active tokens a user can have.
const MaxAPITokensPerUser = 10

// ErrTokenLimitExceeded is returned when a user has reached the maximum number of active tokens.
var ErrTokenLimitExceeded = errors.New("user has reached maximum number of active tokens")

// APITokenPrefix marks API tokens in the Authorization header and cookie.
const APITokenPrefix = "ratings_api|"

// CreateAPITokenRequest is the request for the CreateAPIToken command.
// A zero ExpiresIn creates a token that does not expire.
type CreateAPITokenRequest struct {
	UserID    int64
	Name      *string
	ExpiresIn time.Duration
}

// CreateAPITokenResponse is the response from the CreateAPIToken command.
type CreateAPITokenResponse struct {
	TokenID   string
	FullToken string
	Prefix    string
}

// CreateAPIToken handles creating new API tokens.
type CreateAPIToken struct {
	Users        datasources.UserGetter
	TokenCounter datasources.UserAPITokenCounter
	TokenCreator datasources.APITokenCreator
}

// NewCreateAPIToken creates a properly initialized CreateAPIToken command.
func NewCreateAPIToken(
	users datasources.UserGetter,
	tokenCounter datasources.UserAPITokenCounter,
	tokenCreator datasources.APITokenCreator,
) *CreateAPIToken {
	return &CreateAPIToken{
		Users:        users,
		TokenCounter: tokenCounter,
		TokenCreator: tokenCreator,
	}
}

// HashAPIToken returns the stored form of a full token.
func HashAPIToken(fullToken string) string {
	hash := sha256.Sum256([]byte(fullToken))
	return hex.EncodeToString(hash[:])
}

// Execute creates a new API token for the user.
func (c *CreateAPIToken) Execute(ctx context.Context, req CreateAPITokenRequest) (CreateAPITokenResponse, error) {
	if _, err := c.Users.GetUser(ctx, req.UserID); err != nil {
		return CreateAPITokenResponse{}, fmt.Errorf("looking up user [%d]: %w", req.UserID, err)
	}

	count, err := c.TokenCounter.CountUserActiveAPITokens(ctx, req.UserID)
	if err != nil {
		return CreateAPITokenResponse{}, fmt.Errorf("counting user tokens: %w", err)
	}
	if count >= MaxAPITokensPerUser {
		return CreateAPITokenResponse{}, ErrTokenLimitExceeded
	}

	// 32 random bytes, hex encoded
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return CreateAPITokenResponse{}, fmt.Errorf("generating random token: %w", err)
	}

	tokenHex := hex.EncodeToString(tokenBytes)
	fullToken := APITokenPrefix + tokenHex
	tokenPrefix := tokenHex[:8]
	tokenID := uuid.New().String()

	var expiresAt *time.Time
	if req.ExpiresIn > 0 {
		t := time.Now().Add(req.ExpiresIn)
		expiresAt = &t
	}

	if err := c.TokenCreator.CreateAPIToken(ctx, tokenID, req.UserID, HashAPIToken(fullToken), tokenPrefix,
		req.Name, expiresAt); err != nil {
		return CreateAPITokenResponse{}, fmt.Errorf("creating token: %w", err)
	}

	return CreateAPITokenResponse{
		TokenID:   tokenID,
		FullToken: fullToken,
		Prefix:    tokenPrefix,
	}, nil
}
