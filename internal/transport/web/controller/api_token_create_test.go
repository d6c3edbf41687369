package controller

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jbeshir/content-ratings/internal/command"
	cmdmocks "github.com/jbeshir/content-ratings/internal/command/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAPITokenCreate(t *testing.T) {
	name := "ci"

	cases := []struct {
		name       string
		body       string
		anonymous  bool
		wantReq    *command.CreateAPITokenRequest
		cmdErr     error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "created",
			body:       `{"name":"ci","expires_in_days":30}`,
			wantReq:    &command.CreateAPITokenRequest{UserID: testAuthor.ID, Name: &name, ExpiresIn: 30 * 24 * time.Hour},
			wantStatus: http.StatusCreated,
			wantBody:   `{"id":"tok1","token":"ratings_api|abc","prefix":"abc"}`,
		},
		{
			name:       "empty_body",
			wantReq:    &command.CreateAPITokenRequest{UserID: testAuthor.ID},
			wantStatus: http.StatusCreated,
			wantBody:   `{"id":"tok1","token":"ratings_api|abc","prefix":"abc"}`,
		},
		{name: "anonymous", anonymous: true, wantStatus: http.StatusUnauthorized},
		{name: "malformed_body", body: `{"name":`, wantStatus: http.StatusBadRequest},
		{name: "negative_expiry", body: `{"expires_in_days":-1}`, wantStatus: http.StatusBadRequest},
		{
			name:       "limit_exceeded",
			wantReq:    &command.CreateAPITokenRequest{UserID: testAuthor.ID},
			cmdErr:     command.ErrTokenLimitExceeded,
			wantStatus: http.StatusConflict,
		},
		{
			name:       "store_error",
			wantReq:    &command.CreateAPITokenRequest{UserID: testAuthor.ID},
			cmdErr:     errors.New("connection reset"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd := cmdmocks.NewMockCommand[command.CreateAPITokenRequest, command.CreateAPITokenResponse](t)
			if tc.wantReq != nil {
				cmd.EXPECT().Execute(mock.Anything, *tc.wantReq).Return(command.CreateAPITokenResponse{
					TokenID:   "tok1",
					FullToken: "ratings_api|abc",
					Prefix:    "abc",
				}, tc.cmdErr)
			}

			req := httptest.NewRequest(http.MethodPost, "/v1/tokens", strings.NewReader(tc.body))
			if tc.anonymous {
				req = testContext()(req)
			} else {
				req = testContextWithActor(testAuthor)(req)
			}
			rec := httptest.NewRecorder()

			APITokenCreate{CreateCmd: cmd}.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantBody != "" {
				assert.JSONEq(t, tc.wantBody, rec.Body.String())
			}
		})
	}
}
