package controller

import (
	"context"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/jbeshir/content-ratings/internal/command"
	"github.com/jbeshir/content-ratings/internal/domain"
	"github.com/jbeshir/content-ratings/internal/render"
)

// RatingFragment serves the bare rating HTML of an item for embedding.
type RatingFragment struct {
	RenderRatingCmd command.Command[command.RenderRatingRequest, domain.RatingDisplay]
	SettingsCmd     command.Command[command.Empty, domain.Settings]
	CacheMaxAge     time.Duration
}

func (c RatingFragment) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	contentID, err := contentIDFromVars(r)
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to parse content ID", "error", err)

		w.WriteHeader(http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	fragment, err := ratingFragment(ctx, c.RenderRatingCmd, c.SettingsCmd, contentID)
	if err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to render rating", "content_id", contentID, "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))

	if _, err := w.Write([]byte(fragment)); err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write rating to response", "error", err)
	}
}

func ratingFragment(
	ctx context.Context,
	renderCmd command.Command[command.RenderRatingRequest, domain.RatingDisplay],
	settingsCmd command.Command[command.Empty, domain.Settings],
	contentID int64,
) (template.HTML, error) {
	display, err := renderCmd.Execute(ctx, command.RenderRatingRequest{
		ContentID: contentID,
		Settings:  loadSettings(ctx, settingsCmd),
	})
	if err != nil {
		return "", fmt.Errorf("preparing rating display: %w", err)
	}
	return render.Fragment(display)
}
