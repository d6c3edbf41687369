package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jbeshir/content-ratings/internal/command"
	cmdmocks "github.com/jbeshir/content-ratings/internal/command/mocks"
	"github.com/jbeshir/content-ratings/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTopRatedList_ServeHTTP(t *testing.T) {
	results := []domain.RatedContent{
		{Item: domain.ContentItem{ID: 102, Title: "Ten"}, RawRating: "10", Rating: domain.RatingOf(10)},
		{Item: domain.ContentItem{ID: 101, Title: "Nine"}, RawRating: "9", Rating: domain.RatingOf(9)},
	}

	cases := []struct {
		name       string
		query      string
		wantReq    command.TopRatedRequest
		listErr    error
		wantStatus int
	}{
		{name: "defaults", query: "", wantReq: command.TopRatedRequest{}, wantStatus: http.StatusOK},
		{
			name:       "filters",
			query:      "?category=5&tag=Databases&limit=3",
			wantReq:    command.TopRatedRequest{CategoryID: 5, Tag: "Databases", Limit: 3},
			wantStatus: http.StatusOK,
		},
		{
			name:       "limit_capped",
			query:      "?limit=5000",
			wantReq:    command.TopRatedRequest{Limit: 100},
			wantStatus: http.StatusOK,
		},
		{
			name:       "malformed_filters_ignored",
			query:      "?category=abc&limit=-1",
			wantReq:    command.TopRatedRequest{},
			wantStatus: http.StatusOK,
		},
		{name: "list_error", wantReq: command.TopRatedRequest{}, listErr: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			topRated := cmdmocks.NewMockCommand[command.TopRatedRequest, []domain.RatedContent](t)
			topRated.EXPECT().Execute(mock.Anything, tc.wantReq).Return(results, tc.listErr)

			ctrl := TopRatedList{
				TopRatedCmd: topRated,
				SettingsCmd: testSettings(t, domain.Scale10),
				CacheMaxAge: time.Minute,
			}

			req := httptest.NewRequest(http.MethodGet, "/v1/ratings/top"+tc.query, nil)
			req = testContext()(req)
			rec := httptest.NewRecorder()

			ctrl.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantStatus != http.StatusOK {
				return
			}

			var got TopRatedListResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			require.Len(t, got.Data, 2)
			assert.Equal(t, int64(102), got.Data[0].Item.ID)
			assert.Equal(t, domain.RatingOf(10), got.Data[0].Rating)
			assert.Equal(t, domain.Scale10, got.Metadata.Scale)
		})
	}
}
