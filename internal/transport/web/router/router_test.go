package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jbeshir/content-ratings/internal/command"
	cmdmocks "github.com/jbeshir/content-ratings/internal/command/mocks"
	"github.com/jbeshir/content-ratings/internal/datasources/mocks"
	"github.com/jbeshir/content-ratings/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type contentMocks struct {
	*mocks.MockContentFetcher
	*mocks.MockCategoryLister
}

type tokenMocks struct {
	*mocks.MockUserAPITokenLister
	*mocks.MockAPITokenRevoker
}

type staticIssuer struct{}

func (staticIssuer) Issue(int64, string) (string, error) { return "nonce", nil }

func testRouter(t *testing.T, cmds Commands) http.Handler {
	t.Helper()
	content := contentMocks{
		MockContentFetcher: mocks.NewMockContentFetcher(t),
		MockCategoryLister: mocks.NewMockCategoryLister(t),
	}
	apiTokens := tokenMocks{
		MockUserAPITokenLister: mocks.NewMockUserAPITokenLister(t),
		MockAPITokenRevoker:    mocks.NewMockAPITokenRevoker(t),
	}
	h, err := MakeRouter(content, apiTokens, cmds, staticIssuer{}, FeedConfig{BaseURL: "https://example.com"},
		time.Minute, NewAuthMiddleware(nil))
	require.NoError(t, err)
	return h
}

func TestMakeRouter_RatingAPI(t *testing.T) {
	getRating := cmdmocks.NewMockCommand[int64, domain.Rating](t)
	settings := cmdmocks.NewMockCommand[command.Empty, domain.Settings](t)
	getRating.EXPECT().Execute(mock.Anything, int64(42)).Return(domain.RatingOf(4), nil)
	settings.EXPECT().Execute(mock.Anything, command.Empty{}).Return(domain.DefaultSettings(), nil)

	h := testRouter(t, Commands{GetRating: getRating, Settings: settings})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/content/42/rating", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "max-age=60", rec.Header().Get("Cache-Control"))
	assert.JSONEq(t, `{"content_id":42,"rating":4,"scale":5,"display":"4 / 5"}`, rec.Body.String())
}

func TestMakeRouter_Routing(t *testing.T) {
	cases := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{name: "non_numeric_content", method: http.MethodGet, path: "/content/abc", wantStatus: http.StatusNotFound},
		{name: "settings_requires_auth", method: http.MethodGet, path: "/admin/settings", wantStatus: http.StatusUnauthorized},
		{name: "overview_requires_auth", method: http.MethodGet, path: "/admin/ratings", wantStatus: http.StatusUnauthorized},
		{
			name:       "editor_requires_auth",
			method:     http.MethodPost,
			path:       "/admin/content/42/rating",
			wantStatus: http.StatusUnauthorized,
		},
		{name: "tokens_require_auth", method: http.MethodPost, path: "/v1/tokens", wantStatus: http.StatusUnauthorized},
		{name: "token_list_requires_auth", method: http.MethodGet, path: "/v1/tokens", wantStatus: http.StatusUnauthorized},
		{
			name:       "token_revoke_requires_auth",
			method:     http.MethodDelete,
			path:       "/v1/tokens/tok1",
			wantStatus: http.StatusUnauthorized,
		},
		{name: "preflight", method: http.MethodOptions, path: "/v1/ratings/top", wantStatus: http.StatusOK},
		{name: "wrong_method", method: http.MethodDelete, path: "/rss/top-rated", wantStatus: http.StatusMethodNotAllowed},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := testRouter(t, Commands{})

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))

			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}
