package router

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	jwtmiddleware "github.com/auth0/go-jwt-middleware/v2"
	"github.com/jbeshir/content-ratings/internal/command"
	"github.com/jbeshir/content-ratings/internal/datasources"
	"github.com/jbeshir/content-ratings/internal/domain"
)

// APITokenCookieName is the cookie browsers can carry an API token in.
const APITokenCookieName = "api_token"

// AuthResult represents the result of a successful authentication.
type AuthResult struct {
	User   domain.User
	Method domain.AuthMethod
}

// AuthValidator attempts to validate authentication from a request.
// Returns nil, nil if this validator doesn't apply (wrong auth type).
// Returns AuthResult, nil on success.
// Returns nil, error if validation was attempted but failed.
type AuthValidator func(r *http.Request) (*AuthResult, error)

// NewAuthMiddleware creates a middleware that validates requests using multiple authentication methods.
func NewAuthMiddleware(validators []AuthValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, validate := range validators {
				result, err := validate(r)
				if result == nil && err == nil {
					continue // This validator doesn't apply
				}

				if err != nil {
					logger := domain.LoggerFromContext(r.Context())
					logger.WarnContext(r.Context(), "authentication failed", "error", err)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusUnauthorized)
					_, _ = fmt.Fprintf(w, `{"message":"%s"}`, err.Error())
					return
				}

				logger := domain.LoggerFromContext(r.Context()).With("actor_id", result.User.ID)
				ctx := domain.ContextWithLogger(r.Context(), logger)
				ctx = domain.ContextWithActor(ctx, result.User)
				ctx = domain.ContextWithAuthMethod(ctx, result.Method)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			// No validator matched - continue without auth (for public endpoints)
			next.ServeHTTP(w, r)
		})
	}
}

// NewAPITokenValidator creates a validator for API tokens sent as a bearer
// token or in the api_token cookie.
// It asynchronously updates the token's last_used_at timestamp on successful validation.
func NewAPITokenValidator(
	ctx context.Context,
	tokenGetter datasources.APITokenByHashGetter,
	lastUsedUpdater datasources.APITokenLastUsedUpdater,
	users datasources.UserGetter,
) AuthValidator {
	// Asynchronous best-effort tracking of the last used time of each token.
	// If the service restarts up to the buffer size of updates here might be lost, but this is tolerable.
	// We apply backpressure at the point the channel becomes full.
	updateChan := make(chan string, 100)
	go func() {
		for tokenID := range updateChan {
			updateErr := lastUsedUpdater.UpdateAPITokenLastUsed(context.WithoutCancel(ctx), tokenID)
			if updateErr != nil {
				logger := domain.LoggerFromContext(ctx).With("token", tokenID)
				logger.WarnContext(context.WithoutCancel(ctx),
					"failed to update last used time for token",
					"error", updateErr)
			}
		}
	}()

	extractCookie := jwtmiddleware.CookieTokenExtractor(APITokenCookieName)

	return func(r *http.Request) (*AuthResult, error) {
		fullToken := ""
		if authHeader := r.Header.Get("Authorization"); strings.HasPrefix(authHeader, "Bearer "+command.APITokenPrefix) {
			fullToken = authHeader[len("Bearer "):]
		} else if cookieToken, err := extractCookie(r); err == nil && strings.HasPrefix(cookieToken, command.APITokenPrefix) {
			fullToken = cookieToken
		}
		if fullToken == "" {
			return nil, nil
		}

		token, err := tokenGetter.GetAPITokenByHash(r.Context(), command.HashAPIToken(fullToken))
		if err != nil {
			return nil, fmt.Errorf("invalid API token")
		}

		if !token.IsActive() {
			return nil, fmt.Errorf("API token is revoked or expired")
		}

		user, err := users.GetUser(r.Context(), token.UserID)
		if err != nil {
			return nil, fmt.Errorf("API token user not found")
		}

		select {
		case updateChan <- token.ID:
		default:
		}

		return &AuthResult{
			User:   user,
			Method: domain.AuthMethodAPIToken,
		}, nil
	}
}
