package controller

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/jbeshir/content-ratings/internal/command"
	cmdmocks "github.com/jbeshir/content-ratings/internal/command/mocks"
	"github.com/jbeshir/content-ratings/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAdminSettings_Get(t *testing.T) {
	ctrl := AdminSettings{
		SettingsCmd:       testSettings(t, domain.Scale10),
		UpdateSettingsCmd: cmdmocks.NewMockCommand[command.UpdateSettingsRequest, domain.Settings](t),
		Tokens:            testIssuer(t),
	}

	req := httptest.NewRequest(http.MethodGet, "/admin/settings", nil)
	req = testContextWithActor(testAdmin)(req)
	rec := httptest.NewRecorder()

	ctrl.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "General Settings")
	assert.Contains(t, body, `<option value="5">5 Stars/Points</option>`)
	assert.Contains(t, body, `<option value="10" selected>10 Stars/Points</option>`)
	assert.Contains(t, body, `name="settings_nonce"`)
}

func TestAdminSettings_Post(t *testing.T) {
	cases := []struct {
		name         string
		form         url.Values
		updateErr    error
		wantStatus   int
		wantLocation string
		wantContains string
	}{
		{
			name:         "saved",
			form:         url.Values{"rating_scale": {"10"}, "settings_nonce": {"tok"}},
			wantStatus:   http.StatusSeeOther,
			wantLocation: "/admin/settings?saved=1",
		},
		{
			name:         "invalid_scale",
			form:         url.Values{"rating_scale": {"7"}, "settings_nonce": {"tok"}},
			updateErr:    domain.ErrInvalidScale,
			wantStatus:   http.StatusBadRequest,
			wantContains: "The rating scale must be 5 or 10.",
		},
		{
			name:         "invalid_token",
			form:         url.Values{"rating_scale": {"10"}},
			updateErr:    domain.ErrInvalidToken,
			wantStatus:   http.StatusForbidden,
			wantContains: "The form has expired.",
		},
		{
			name:         "store_error",
			form:         url.Values{"rating_scale": {"10"}, "settings_nonce": {"tok"}},
			updateErr:    errors.New("boom"),
			wantStatus:   http.StatusInternalServerError,
			wantContains: "could not be saved",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			update := cmdmocks.NewMockCommand[command.UpdateSettingsRequest, domain.Settings](t)
			update.EXPECT().
				Execute(mock.Anything, command.UpdateSettingsRequest{
					Actor:    testAdmin,
					Token:    tc.form.Get("settings_nonce"),
					RawScale: tc.form.Get("rating_scale"),
				}).
				Return(domain.Settings{RatingScale: domain.Scale10}, tc.updateErr)

			ctrl := AdminSettings{
				SettingsCmd:       testSettings(t, domain.Scale5),
				UpdateSettingsCmd: update,
				Tokens:            testIssuer(t),
			}

			req := httptest.NewRequest(http.MethodPost, "/admin/settings", strings.NewReader(tc.form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			req = testContextWithActor(testAdmin)(req)
			rec := httptest.NewRecorder()

			ctrl.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantLocation != "" {
				assert.Equal(t, tc.wantLocation, rec.Header().Get("Location"))
			}
			if tc.wantContains != "" {
				assert.Contains(t, rec.Body.String(), tc.wantContains)
			}
		})
	}
}
