package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/jbeshir/content-ratings/internal/command"
	"github.com/jbeshir/content-ratings/internal/domain"
)

type RatingGet struct {
	GetRatingCmd command.Command[int64, domain.Rating]
	SettingsCmd  command.Command[command.Empty, domain.Settings]
	CacheMaxAge  time.Duration
}

// RatingGetResponse reports a null rating for unrated items.
type RatingGetResponse struct {
	ContentID int64        `json:"content_id"`
	Rating    *int         `json:"rating"`
	Scale     domain.Scale `json:"scale"`
	Display   string       `json:"display,omitempty"`
}

func (c RatingGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	contentID, err := contentIDFromVars(r)
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to parse content ID", "error", err)

		w.WriteHeader(http.StatusBadRequest)
		return
	}

	logger := domain.LoggerFromContext(r.Context()).With("content_id", contentID)
	ctx := domain.ContextWithLogger(r.Context(), logger)

	rating, err := c.GetRatingCmd.Execute(ctx, contentID)
	if err != nil {
		logger.ErrorContext(ctx, "unable to fetch rating", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	settings := loadSettings(ctx, c.SettingsCmd)
	resp := RatingGetResponse{ContentID: contentID, Scale: settings.Scale()}
	if rating.Rated {
		v := rating.Value
		resp.Rating = &v
		resp.Display = domain.NewRatedDisplay(v, settings.Scale()).Numeric
	}

	w.Header().Set("Content-Type", "application/json")
	if _, ok := domain.ActorFromContext(ctx); !ok {
		w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))
	}

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.ErrorContext(ctx, "unable to write rating to response", "error", err)
	}
}
