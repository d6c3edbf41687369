package router

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/auth0/go-jwt-middleware/v2/validator"
	"github.com/jbeshir/content-ratings/internal/datasources/mocks"
	"github.com/jbeshir/content-ratings/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type tokenValidatorFunc func(ctx context.Context, token string) (interface{}, error)

func (f tokenValidatorFunc) ValidateToken(ctx context.Context, token string) (interface{}, error) {
	return f(ctx, token)
}

func TestAuth0Validator(t *testing.T) {
	ada := domain.User{ID: 1, DisplayName: "Ada", Role: domain.RoleAdministrator}

	tokens := tokenValidatorFunc(func(_ context.Context, token string) (interface{}, error) {
		if token != "good" {
			return nil, errors.New("bad signature")
		}
		return &validator.ValidatedClaims{
			RegisteredClaims: validator.RegisteredClaims{Subject: "auth0|ada"},
		}, nil
	})

	cases := []struct {
		name       string
		header     string
		setupMocks func(users *mocks.MockUserBySubjectGetter)
		wantResult *AuthResult
		wantErr    string
	}{
		{
			name:       "not_auth0",
			header:     "Bearer wpcr_0123",
			setupMocks: func(*mocks.MockUserBySubjectGetter) {},
		},
		{
			name:       "invalid_token",
			header:     "Bearer auth0|forged",
			setupMocks: func(*mocks.MockUserBySubjectGetter) {},
			wantErr:    "invalid JWT token",
		},
		{
			name:   "known_subject",
			header: "Bearer auth0|good",
			setupMocks: func(users *mocks.MockUserBySubjectGetter) {
				users.EXPECT().GetUserByAuthSubject(mock.Anything, "auth0|ada").Return(ada, nil)
			},
			wantResult: &AuthResult{User: ada, Method: domain.AuthMethodAuth0},
		},
		{
			name:   "unknown_subject",
			header: "Bearer auth0|good",
			setupMocks: func(users *mocks.MockUserBySubjectGetter) {
				users.EXPECT().GetUserByAuthSubject(mock.Anything, "auth0|ada").Return(domain.User{}, domain.ErrNotFound)
			},
			wantErr: "unknown user",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			users := mocks.NewMockUserBySubjectGetter(t)
			tc.setupMocks(users)

			req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(testContext())
			req.Header.Set("Authorization", tc.header)

			result, err := auth0Validator(tokens, users)(req)
			if tc.wantErr != "" {
				require.EqualError(t, err, tc.wantErr)
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantResult, result)
		})
	}
}
