package command

import (
	"errors"
	"testing"

	"github.com/jbeshir/content-ratings/internal/datasources/mocks"
	"github.com/jbeshir/content-ratings/internal/domain"
	"github.com/jbeshir/content-ratings/internal/nonce"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetSettings_Execute(t *testing.T) {
	cases := []struct {
		name    string
		raw     []byte
		found   bool
		getErr  error
		want    domain.Settings
		wantErr bool
	}{
		{name: "never_saved", want: domain.Settings{RatingScale: domain.Scale5}},
		{name: "saved_ten", raw: []byte(`{"rating_scale":10}`), found: true, want: domain.Settings{RatingScale: domain.Scale10}},
		{name: "saved_as_string", raw: []byte(`{"rating_scale":"10"}`), found: true, want: domain.Settings{RatingScale: domain.Scale10}},
		{name: "invalid_scale_falls_back", raw: []byte(`{"rating_scale":7}`), found: true, want: domain.Settings{RatingScale: domain.Scale5}},
		{name: "missing_field", raw: []byte(`{}`), found: true, want: domain.Settings{RatingScale: domain.Scale5}},
		{name: "corrupt", raw: []byte(`not json`), found: true, want: domain.Settings{RatingScale: domain.Scale5}},
		{name: "store_error", getErr: errors.New("boom"), wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			getter := mocks.NewMockOptionGetter(t)
			getter.EXPECT().
				GetOption(mock.Anything, domain.SettingsOptionKey).
				Return(tc.raw, tc.found, tc.getErr)

			got, err := NewGetSettings(getter).Execute(testContext(), Empty{})
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestUpdateSettings_Execute(t *testing.T) {
	issuer := testIssuer(t)
	admin := domain.User{ID: 1, Role: domain.RoleAdministrator}

	cases := []struct {
		name      string
		actor     domain.User
		token     string
		rawScale  string
		wantStore string
		wantErr   error
	}{
		{
			name:      "admin_sets_ten",
			actor:     admin,
			token:     issueToken(t, issuer, admin.ID, nonce.ScopeUpdateSettings),
			rawScale:  "10",
			wantStore: `{"rating_scale":10}`,
		},
		{
			name:      "admin_sets_five",
			actor:     admin,
			token:     issueToken(t, issuer, admin.ID, nonce.ScopeUpdateSettings),
			rawScale:  " 5 ",
			wantStore: `{"rating_scale":5}`,
		},
		{
			name:     "bad_token",
			actor:    admin,
			token:    issueToken(t, issuer, admin.ID, nonce.SaveRatingScope(1)),
			rawScale: "10",
			wantErr:  domain.ErrInvalidToken,
		},
		{
			name:     "editor_not_allowed",
			actor:    testEditor,
			token:    issueToken(t, issuer, testEditor.ID, nonce.ScopeUpdateSettings),
			rawScale: "10",
			wantErr:  domain.ErrUnauthorized,
		},
		{
			name:     "scale_not_enumerated",
			actor:    admin,
			token:    issueToken(t, issuer, admin.ID, nonce.ScopeUpdateSettings),
			rawScale: "7",
			wantErr:  domain.ErrInvalidScale,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			setter := mocks.NewMockOptionSetter(t)
			if tc.wantStore != "" {
				setter.EXPECT().
					SetOption(mock.Anything, domain.SettingsOptionKey, []byte(tc.wantStore)).
					Return(nil)
			}

			got, err := NewUpdateSettings(issuer, setter).Execute(testContext(), UpdateSettingsRequest{
				Actor:    tc.actor,
				Token:    tc.token,
				RawScale: tc.rawScale,
			})
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.RatingScale.Valid())
		})
	}
}

// Changing the scale must not rewrite stored ratings; only the option is written.
func TestUpdateSettings_Execute_LeavesRatingsAlone(t *testing.T) {
	issuer := testIssuer(t)
	admin := domain.User{ID: 1, Role: domain.RoleAdministrator}

	setter := mocks.NewMockOptionSetter(t)
	setter.EXPECT().
		SetOption(mock.Anything, domain.SettingsOptionKey, mock.Anything).
		Return(nil).
		Once()

	_, err := NewUpdateSettings(issuer, setter).Execute(testContext(), UpdateSettingsRequest{
		Actor:    admin,
		Token:    issueToken(t, issuer, admin.ID, nonce.ScopeUpdateSettings),
		RawScale: "5",
	})
	require.NoError(t, err)

	getter := mocks.NewMockContentFieldGetter(t)
	getter.EXPECT().
		GetContentField(mock.Anything, int64(9), domain.RatingFieldKey).
		Return("8", true, nil)

	rating, err := NewGetRating(getter).Execute(testContext(), 9)
	require.NoError(t, err)
	assert.Equal(t, domain.RatingOf(8), rating)
}
