package router

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/auth0/go-jwt-middleware/v2/jwks"
	"github.com/auth0/go-jwt-middleware/v2/validator"
	"github.com/jbeshir/content-ratings/internal/datasources"
	"github.com/jbeshir/content-ratings/internal/domain"
)

const auth0AuthHeaderPrefix = "Bearer auth0|"

// NewAuth0Validator creates a validator for Auth0 JWT tokens. The token
// subject must belong to a known user.
func NewAuth0Validator(
	auth0Domain, auth0Audience string,
	users datasources.UserBySubjectGetter,
) (AuthValidator, error) {
	issuerURL, err := url.Parse("https://" + auth0Domain + "/")
	if err != nil {
		return nil, fmt.Errorf("failed to parse the issuer url: %w", err)
	}

	provider := jwks.NewCachingProvider(issuerURL, 5*time.Minute)
	jwtValidator, err := validator.New(
		provider.KeyFunc,
		validator.RS256,
		issuerURL.String(),
		[]string{auth0Audience},
		validator.WithAllowedClockSkew(time.Minute),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT validator: %w", err)
	}

	return auth0Validator(jwtValidator, users), nil
}

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (interface{}, error)
}

func auth0Validator(tokens tokenValidator, users datasources.UserBySubjectGetter) AuthValidator {
	return func(r *http.Request) (*AuthResult, error) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, auth0AuthHeaderPrefix) {
			return nil, nil
		}

		token, err := tokens.ValidateToken(r.Context(), authHeader[len(auth0AuthHeaderPrefix):])
		if err != nil {
			return nil, fmt.Errorf("invalid JWT token")
		}

		claims, ok := token.(*validator.ValidatedClaims)
		if !ok {
			return nil, fmt.Errorf("invalid JWT token")
		}
		user, err := users.GetUserByAuthSubject(r.Context(), claims.RegisteredClaims.Subject)
		if err != nil {
			logger := domain.LoggerFromContext(r.Context())
			logger.WarnContext(r.Context(), "no user for JWT subject",
				"subject", claims.RegisteredClaims.Subject, "error", err)
			return nil, fmt.Errorf("unknown user")
		}

		return &AuthResult{
			User:   user,
			Method: domain.AuthMethodAuth0,
		}, nil
	}
}
