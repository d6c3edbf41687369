package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/jbeshir/content-ratings/internal/command"
	"github.com/jbeshir/content-ratings/internal/domain"
)

type TopRatedList struct {
	TopRatedCmd command.Command[command.TopRatedRequest, []domain.RatedContent]
	SettingsCmd command.Command[command.Empty, domain.Settings]
	CacheMaxAge time.Duration
}

type TopRatedListResponse struct {
	Data     []domain.RatedContent `json:"data"`
	Metadata TopRatedListMetadata  `json:"metadata"`
}

type TopRatedListMetadata struct {
	Scale      domain.Scale `json:"scale"`
	CategoryID int64        `json:"category_id,omitempty"`
	Tag        string       `json:"tag,omitempty"`
}

func (c TopRatedList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	req := topRatedRequestFromQuery(r.URL.Query())

	results, err := c.TopRatedCmd.Execute(r.Context(), req)
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to list top rated content", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	settings := loadSettings(r.Context(), c.SettingsCmd)

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))

	if err := json.NewEncoder(w).Encode(TopRatedListResponse{
		Data: results,
		Metadata: TopRatedListMetadata{
			Scale:      settings.Scale(),
			CategoryID: req.CategoryID,
			Tag:        req.Tag,
		},
	}); err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write top rated content to response", "error", err)
	}
}
