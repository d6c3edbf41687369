package command

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"testing"

	"github.com/jbeshir/content-ratings/internal/datasources/mocks"
	"github.com/jbeshir/content-ratings/internal/domain"
	"github.com/jbeshir/content-ratings/internal/nonce"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func testContext() context.Context {
	return domain.ContextWithLogger(context.Background(), testLogger())
}

func testIssuer(t *testing.T) *nonce.Issuer {
	t.Helper()
	issuer, err := nonce.NewIssuer("test-secret")
	require.NoError(t, err)
	return issuer
}

func issueToken(t *testing.T, issuer *nonce.Issuer, userID int64, scope string) string {
	t.Helper()
	token, err := issuer.Issue(userID, scope)
	require.NoError(t, err)
	return token
}

var (
	testEditor = domain.User{ID: 1, DisplayName: "Ada", Role: domain.RoleEditor}
	testAuthor = domain.User{ID: 2, DisplayName: "Grace", Role: domain.RoleAuthor}
	testReader = domain.User{ID: 3, DisplayName: "Linus", Role: domain.RoleSubscriber}
)

func TestSetRating_Execute(t *testing.T) {
	issuer := testIssuer(t)
	post := domain.ContentItem{ID: 42, Type: domain.ContentTypePost, Author: testAuthor}
	attachment := domain.ContentItem{ID: 42, Type: "attachment", Author: testAuthor}

	cases := []struct {
		name        string
		actor       domain.User
		token       string
		autosave    bool
		raw         string
		scale       domain.Scale
		items       []domain.ContentItem
		fetch       bool
		wantWrite   string
		wantErr     error
		wantWritten bool
	}{
		{
			name:        "editor_sets_rating",
			actor:       testEditor,
			token:       issueToken(t, issuer, testEditor.ID, nonce.SaveRatingScope(42)),
			raw:         "4",
			scale:       domain.Scale5,
			items:       []domain.ContentItem{post},
			fetch:       true,
			wantWrite:   "4",
			wantWritten: true,
		},
		{
			name:        "author_rates_own_post_with_whitespace",
			actor:       testAuthor,
			token:       issueToken(t, issuer, testAuthor.ID, nonce.SaveRatingScope(42)),
			raw:         "  <b>7</b> ",
			scale:       domain.Scale10,
			items:       []domain.ContentItem{post},
			fetch:       true,
			wantWrite:   "7",
			wantWritten: true,
		},
		{
			name:        "zero_is_a_rating",
			actor:       testEditor,
			token:       issueToken(t, issuer, testEditor.ID, nonce.SaveRatingScope(42)),
			raw:         "0",
			scale:       domain.Scale5,
			items:       []domain.ContentItem{post},
			fetch:       true,
			wantWrite:   "0",
			wantWritten: true,
		},
		{
			name:    "missing_token",
			actor:   testEditor,
			raw:     "4",
			scale:   domain.Scale5,
			wantErr: domain.ErrInvalidToken,
		},
		{
			name:    "token_for_other_item",
			actor:   testEditor,
			token:   issueToken(t, issuer, testEditor.ID, nonce.SaveRatingScope(43)),
			raw:     "4",
			scale:   domain.Scale5,
			wantErr: domain.ErrInvalidToken,
		},
		{
			name:    "token_for_other_user",
			actor:   testEditor,
			token:   issueToken(t, issuer, testAuthor.ID, nonce.SaveRatingScope(42)),
			raw:     "4",
			scale:   domain.Scale5,
			wantErr: domain.ErrInvalidToken,
		},
		{
			name:    "subscriber_not_allowed",
			actor:   testReader,
			token:   issueToken(t, issuer, testReader.ID, nonce.SaveRatingScope(42)),
			raw:     "4",
			scale:   domain.Scale5,
			items:   []domain.ContentItem{post},
			fetch:   true,
			wantErr: domain.ErrUnauthorized,
		},
		{
			name:    "author_cannot_rate_others_post",
			actor:   domain.User{ID: 9, Role: domain.RoleAuthor},
			token:   issueToken(t, issuer, 9, nonce.SaveRatingScope(42)),
			raw:     "4",
			scale:   domain.Scale5,
			items:   []domain.ContentItem{post},
			fetch:   true,
			wantErr: domain.ErrUnauthorized,
		},
		{
			name:     "autosave_suppressed",
			actor:    testEditor,
			token:    issueToken(t, issuer, testEditor.ID, nonce.SaveRatingScope(42)),
			autosave: true,
			raw:      "4",
			scale:    domain.Scale5,
			items:    []domain.ContentItem{post},
			fetch:    true,
			wantErr:  domain.ErrSuppressedWrite,
		},
		{
			name:    "unknown_item",
			actor:   testEditor,
			token:   issueToken(t, issuer, testEditor.ID, nonce.SaveRatingScope(42)),
			raw:     "4",
			scale:   domain.Scale5,
			fetch:   true,
			wantErr: domain.ErrNotFound,
		},
		{
			name:    "not_a_post_or_page",
			actor:   testEditor,
			token:   issueToken(t, issuer, testEditor.ID, nonce.SaveRatingScope(42)),
			raw:     "4",
			scale:   domain.Scale5,
			items:   []domain.ContentItem{attachment},
			fetch:   true,
			wantErr: domain.ErrNotFound,
		},
		{
			name:    "above_scale",
			actor:   testEditor,
			token:   issueToken(t, issuer, testEditor.ID, nonce.SaveRatingScope(42)),
			raw:     "6",
			scale:   domain.Scale5,
			items:   []domain.ContentItem{post},
			fetch:   true,
			wantErr: domain.ErrRatingOutOfRange,
		},
		{
			name:    "negative",
			actor:   testEditor,
			token:   issueToken(t, issuer, testEditor.ID, nonce.SaveRatingScope(42)),
			raw:     "-1",
			scale:   domain.Scale10,
			items:   []domain.ContentItem{post},
			fetch:   true,
			wantErr: domain.ErrRatingOutOfRange,
		},
		{
			name:    "not_a_number",
			actor:   testEditor,
			token:   issueToken(t, issuer, testEditor.ID, nonce.SaveRatingScope(42)),
			raw:     "great",
			scale:   domain.Scale5,
			items:   []domain.ContentItem{post},
			fetch:   true,
			wantErr: domain.ErrInvalidRating,
		},
		{
			name:  "blank_leaves_rating_unchanged",
			actor: testEditor,
			token: issueToken(t, issuer, testEditor.ID, nonce.SaveRatingScope(42)),
			raw:   "   ",
			scale: domain.Scale5,
			items: []domain.ContentItem{post},
			fetch: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fetcher := mocks.NewMockContentFetcher(t)
			setter := mocks.NewMockContentFieldSetter(t)

			if tc.fetch {
				fetcher.EXPECT().
					FetchContentByID(mock.Anything, []int64{42}).
					Return(tc.items, nil)
			}
			if tc.wantWrite != "" {
				setter.EXPECT().
					SetContentField(mock.Anything, int64(42), domain.RatingFieldKey, tc.wantWrite).
					Return(nil)
			}

			cmd := NewSetRating(issuer, fetcher, setter)
			res, err := cmd.Execute(testContext(), SetRatingRequest{
				Actor:     tc.actor,
				ContentID: 42,
				RawValue:  tc.raw,
				Token:     tc.token,
				Autosave:  tc.autosave,
				Settings:  domain.Settings{RatingScale: tc.scale},
			})

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.False(t, res.Written)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantWritten, res.Written)
		})
	}
}

func TestSetRating_Execute_AcceptsWholeScale(t *testing.T) {
	issuer := testIssuer(t)
	post := domain.ContentItem{ID: 7, Type: domain.ContentTypePage}

	for _, scale := range domain.ValidScales {
		for v := 0; v <= int(scale); v++ {
			t.Run(strconv.Itoa(int(scale))+"_"+strconv.Itoa(v), func(t *testing.T) {
				fetcher := mocks.NewMockContentFetcher(t)
				setter := mocks.NewMockContentFieldSetter(t)

				fetcher.EXPECT().FetchContentByID(mock.Anything, []int64{7}).Return([]domain.ContentItem{post}, nil)
				setter.EXPECT().
					SetContentField(mock.Anything, int64(7), domain.RatingFieldKey, strconv.Itoa(v)).
					Return(nil)

				cmd := NewSetRating(issuer, fetcher, setter)
				res, err := cmd.Execute(testContext(), SetRatingRequest{
					Actor:     testEditor,
					ContentID: 7,
					RawValue:  strconv.Itoa(v),
					Token:     issueToken(t, issuer, testEditor.ID, nonce.SaveRatingScope(7)),
					Settings:  domain.Settings{RatingScale: scale},
				})
				require.NoError(t, err)
				assert.True(t, res.Written)
				assert.Equal(t, domain.RatingOf(v), res.Rating)
			})
		}
	}
}

func TestSetRating_Execute_StoreError(t *testing.T) {
	issuer := testIssuer(t)
	fetcher := mocks.NewMockContentFetcher(t)
	setter := mocks.NewMockContentFieldSetter(t)
	storeErr := errors.New("connection reset")

	fetcher.EXPECT().
		FetchContentByID(mock.Anything, []int64{42}).
		Return([]domain.ContentItem{{ID: 42, Type: domain.ContentTypePost}}, nil)
	setter.EXPECT().
		SetContentField(mock.Anything, int64(42), domain.RatingFieldKey, "3").
		Return(storeErr)

	cmd := NewSetRating(issuer, fetcher, setter)
	_, err := cmd.Execute(testContext(), SetRatingRequest{
		Actor:     testEditor,
		ContentID: 42,
		RawValue:  "3",
		Token:     issueToken(t, issuer, testEditor.ID, nonce.SaveRatingScope(42)),
		Settings:  domain.DefaultSettings(),
	})
	require.ErrorIs(t, err, storeErr)
}
