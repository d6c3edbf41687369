package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	cmdmocks "github.com/jbeshir/content-ratings/internal/command/mocks"
	"github.com/jbeshir/content-ratings/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRatingGet_ServeHTTP(t *testing.T) {
	eight := 8

	cases := []struct {
		name          string
		contentID     string
		setupContext  func(r *http.Request) *http.Request
		rating        domain.Rating
		getErr        error
		skipGet       bool
		wantStatus    int
		wantCacheCtrl string
		wantResp      *RatingGetResponse
	}{
		{
			name:          "rated",
			contentID:     "42",
			setupContext:  testContext(),
			rating:        domain.RatingOf(8),
			wantStatus:    http.StatusOK,
			wantCacheCtrl: "max-age=60",
			wantResp:      &RatingGetResponse{ContentID: 42, Rating: &eight, Scale: domain.Scale10, Display: "8 / 10"},
		},
		{
			name:          "unrated",
			contentID:     "42",
			setupContext:  testContext(),
			rating:        domain.Rating{},
			wantStatus:    http.StatusOK,
			wantCacheCtrl: "max-age=60",
			wantResp:      &RatingGetResponse{ContentID: 42, Scale: domain.Scale10},
		},
		{
			name:         "no_cache_for_authenticated_user",
			contentID:    "42",
			setupContext: testContextWithActor(testAdmin),
			rating:       domain.RatingOf(8),
			wantStatus:   http.StatusOK,
			wantResp:     &RatingGetResponse{ContentID: 42, Rating: &eight, Scale: domain.Scale10, Display: "8 / 10"},
		},
		{
			name:         "bad_id",
			contentID:    "x",
			setupContext: testContext(),
			skipGet:      true,
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:         "store_error",
			contentID:    "42",
			setupContext: testContext(),
			getErr:       errors.New("boom"),
			wantStatus:   http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			getRating := cmdmocks.NewMockCommand[int64, domain.Rating](t)
			if !tc.skipGet {
				getRating.EXPECT().Execute(mock.Anything, int64(42)).Return(tc.rating, tc.getErr)
			}

			ctrl := RatingGet{
				GetRatingCmd: getRating,
				SettingsCmd:  testSettings(t, domain.Scale10),
				CacheMaxAge:  time.Minute,
			}

			req := httptest.NewRequest(http.MethodGet, "/v1/content/"+tc.contentID+"/rating", nil)
			req = tc.setupContext(req)
			req = mux.SetURLVars(req, map[string]string{"content_id": tc.contentID})
			rec := httptest.NewRecorder()

			ctrl.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Equal(t, tc.wantCacheCtrl, rec.Header().Get("Cache-Control"))
			if tc.wantResp == nil {
				return
			}

			var got RatingGetResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, *tc.wantResp, got)
		})
	}
}
