package router

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jbeshir/content-ratings/internal/command"
	"github.com/jbeshir/content-ratings/internal/datasources/mocks"
	"github.com/jbeshir/content-ratings/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testContext() context.Context {
	return domain.ContextWithLogger(context.Background(), slog.New(slog.DiscardHandler))
}

func actorEcho() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, ok := domain.ActorFromContext(r.Context())
		if !ok {
			_, _ = w.Write([]byte("anonymous"))
			return
		}
		_, _ = w.Write([]byte(actor.DisplayName + ":" + string(domain.AuthMethodFromContext(r.Context()))))
	})
}

func TestNewAuthMiddleware(t *testing.T) {
	ada := domain.User{ID: 1, DisplayName: "Ada", Role: domain.RoleAdministrator}

	skip := func(*http.Request) (*AuthResult, error) { return nil, nil }
	accept := func(*http.Request) (*AuthResult, error) {
		return &AuthResult{User: ada, Method: domain.AuthMethodAPIToken}, nil
	}
	reject := func(*http.Request) (*AuthResult, error) { return nil, errors.New("invalid API token") }

	cases := []struct {
		name       string
		validators []AuthValidator
		wantStatus int
		wantBody   string
	}{
		{name: "no_validators", wantStatus: http.StatusOK, wantBody: "anonymous"},
		{name: "none_apply", validators: []AuthValidator{skip, skip}, wantStatus: http.StatusOK, wantBody: "anonymous"},
		{name: "second_applies", validators: []AuthValidator{skip, accept}, wantStatus: http.StatusOK, wantBody: "Ada:api_token"},
		{
			name:       "rejected",
			validators: []AuthValidator{reject, accept},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"message":"invalid API token"}`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewAuthMiddleware(tc.validators)(actorEcho())

			req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(testContext())
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Equal(t, tc.wantBody, rec.Body.String())
		})
	}
}

func TestNewAPITokenValidator(t *testing.T) {
	fullToken := command.APITokenPrefix + "0123456789abcdef"
	revokedAt := time.Now().Add(-time.Hour)
	ada := domain.User{ID: 1, DisplayName: "Ada"}

	cases := []struct {
		name       string
		header     string
		cookie     string
		token      domain.APIToken
		tokenErr   error
		lookup     bool
		wantNil    bool
		wantErr    bool
		userLookup bool
	}{
		{name: "no_credentials", wantNil: true},
		{name: "other_bearer", header: "Bearer auth0|abc", wantNil: true},
		{
			name:       "header_token",
			header:     "Bearer " + fullToken,
			token:      domain.APIToken{ID: "tok1", UserID: 1},
			lookup:     true,
			userLookup: true,
		},
		{
			name:       "cookie_token",
			cookie:     fullToken,
			token:      domain.APIToken{ID: "tok1", UserID: 1},
			lookup:     true,
			userLookup: true,
		},
		{name: "cookie_without_prefix", cookie: "something-else", wantNil: true},
		{
			name:     "unknown_token",
			header:   "Bearer " + fullToken,
			tokenErr: domain.ErrNotFound,
			lookup:   true,
			wantErr:  true,
		},
		{
			name:    "revoked_token",
			header:  "Bearer " + fullToken,
			token:   domain.APIToken{ID: "tok1", UserID: 1, RevokedAt: &revokedAt},
			lookup:  true,
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			getter := mocks.NewMockAPITokenByHashGetter(t)
			updater := mocks.NewMockAPITokenLastUsedUpdater(t)
			users := mocks.NewMockUserGetter(t)

			if tc.lookup {
				getter.EXPECT().
					GetAPITokenByHash(mock.Anything, command.HashAPIToken(fullToken)).
					Return(tc.token, tc.tokenErr)
			}
			if tc.userLookup {
				users.EXPECT().GetUser(mock.Anything, int64(1)).Return(ada, nil)
			}
			updater.EXPECT().UpdateAPITokenLastUsed(mock.Anything, "tok1").Return(nil).Maybe()

			validate := NewAPITokenValidator(testContext(), getter, updater, users)

			req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(testContext())
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: APITokenCookieName, Value: tc.cookie})
			}

			result, err := validate(req)
			switch {
			case tc.wantNil:
				assert.NoError(t, err)
				assert.Nil(t, result)
			case tc.wantErr:
				assert.Error(t, err)
				assert.Nil(t, result)
			default:
				require.NoError(t, err)
				require.NotNil(t, result)
				assert.Equal(t, ada, result.User)
				assert.Equal(t, domain.AuthMethodAPIToken, result.Method)
			}
		})
	}
}

func TestRequireAdminMiddleware(t *testing.T) {
	cases := []struct {
		name       string
		actor      *domain.User
		wantStatus int
	}{
		{name: "anonymous", wantStatus: http.StatusUnauthorized},
		{name: "editor", actor: &domain.User{ID: 2, Role: domain.RoleEditor}, wantStatus: http.StatusForbidden},
		{name: "administrator", actor: &domain.User{ID: 1, Role: domain.RoleAdministrator}, wantStatus: http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := testContext()
			if tc.actor != nil {
				ctx = domain.ContextWithActor(ctx, *tc.actor)
			}
			req := httptest.NewRequest(http.MethodGet, "/admin/settings", nil).WithContext(ctx)
			rec := httptest.NewRecorder()

			requireAdminMiddleware(actorEcho()).ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}
