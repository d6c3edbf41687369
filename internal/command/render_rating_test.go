package command

import (
	"errors"
	"testing"

	"github.com/jbeshir/content-ratings/internal/datasources/mocks"
	"github.com/jbeshir/content-ratings/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRenderRating_Execute(t *testing.T) {
	author := domain.User{ID: 2, DisplayName: "Grace Hopper", Email: "grace@example.com"}
	item := domain.ContentItem{ID: 8, Type: domain.ContentTypePost, Author: author}

	cases := []struct {
		name       string
		contentID  int64
		scale      domain.Scale
		raw        string
		found      bool
		getErr     error
		fetch      bool
		items      []domain.ContentItem
		fetchErr   error
		wantState  domain.DisplayState
		wantText   string
		wantFilled int
		wantAuthor string
	}{
		{
			name:      "outside_content",
			contentID: 0,
			wantState: domain.DisplayStateEmpty,
		},
		{
			name:      "never_rated",
			contentID: 8,
			scale:     domain.Scale5,
			wantState: domain.DisplayStateUnrated,
		},
		{
			name:      "blank_value",
			contentID: 8,
			scale:     domain.Scale5,
			raw:       "",
			found:     true,
			wantState: domain.DisplayStateUnrated,
		},
		{
			name:      "read_error_degrades",
			contentID: 8,
			scale:     domain.Scale5,
			getErr:    errors.New("boom"),
			wantState: domain.DisplayStateUnrated,
		},
		{
			name:       "eight_of_ten",
			contentID:  8,
			scale:      domain.Scale10,
			raw:        "8",
			found:      true,
			fetch:      true,
			items:      []domain.ContentItem{item},
			wantState:  domain.DisplayStateRated,
			wantText:   "8 / 10",
			wantFilled: 8,
			wantAuthor: "Grace Hopper",
		},
		{
			name:       "stored_above_scale_is_clamped",
			contentID:  8,
			scale:      domain.Scale5,
			raw:        "9",
			found:      true,
			fetch:      true,
			items:      []domain.ContentItem{item},
			wantState:  domain.DisplayStateRated,
			wantText:   "5 / 5",
			wantFilled: 5,
			wantAuthor: "Grace Hopper",
		},
		{
			name:       "author_lookup_fails",
			contentID:  8,
			scale:      domain.Scale5,
			raw:        "3",
			found:      true,
			fetch:      true,
			fetchErr:   errors.New("boom"),
			wantState:  domain.DisplayStateRated,
			wantText:   "3 / 5",
			wantFilled: 3,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			getter := mocks.NewMockContentFieldGetter(t)
			fetcher := mocks.NewMockContentFetcher(t)

			if tc.contentID != 0 {
				getter.EXPECT().
					GetContentField(mock.Anything, tc.contentID, domain.RatingFieldKey).
					Return(tc.raw, tc.found, tc.getErr)
			}
			if tc.fetch {
				fetcher.EXPECT().
					FetchContentByID(mock.Anything, []int64{tc.contentID}).
					Return(tc.items, tc.fetchErr)
			}

			got, err := NewRenderRating(getter, fetcher).Execute(testContext(), RenderRatingRequest{
				ContentID: tc.contentID,
				Settings:  domain.Settings{RatingScale: tc.scale},
			})
			require.NoError(t, err)
			assert.Equal(t, tc.wantState, got.State)
			if tc.wantState != domain.DisplayStateRated {
				return
			}

			assert.Equal(t, tc.wantText, got.Numeric)
			assert.Len(t, got.Glyphs, int(tc.scale))
			filled := 0
			for _, g := range got.Glyphs {
				if g == domain.GlyphFilled {
					filled++
				}
			}
			assert.Equal(t, tc.wantFilled, filled)
			assert.Equal(t, tc.wantAuthor, got.AuthorName)
			if tc.wantAuthor != "" {
				assert.Equal(t, domain.AvatarURL(author.Email, domain.AvatarSize), got.AvatarURL)
			}
		})
	}
}
