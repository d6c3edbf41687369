package controller

import (
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/jbeshir/content-ratings/internal/command"
	"github.com/jbeshir/content-ratings/internal/datasources"
	"github.com/jbeshir/content-ratings/internal/domain"
	"github.com/jbeshir/content-ratings/internal/render"
)

// ContentView shows a content item to readers, expanding rating tags in its
// body.
type ContentView struct {
	Fetcher         datasources.ContentFetcher
	RenderRatingCmd command.Command[command.RenderRatingRequest, domain.RatingDisplay]
	SettingsCmd     command.Command[command.Empty, domain.Settings]
	CacheMaxAge     time.Duration
}

type contentPage struct {
	Title string
	Item  domain.ContentItem
	Body  template.HTML
}

func (c ContentView) ServeHTTP(w http.ResponseWriter, r *http.Request) {
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
	r = r.WithContext(ctx)

	items, err := c.Fetcher.FetchContentByID(ctx, []int64{contentID})
	if err != nil {
		logger.ErrorContext(ctx, "unable to fetch content item", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if len(items) == 0 {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	item := items[0]

	fragment, err := ratingFragment(ctx, c.RenderRatingCmd, c.SettingsCmd, item.ID)
	if err != nil {
		logger.ErrorContext(ctx, "unable to render rating", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	body, err := render.Body(item.Body, fragment)
	if err != nil {
		logger.ErrorContext(ctx, "unable to render content body", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if _, ok := domain.ActorFromContext(ctx); !ok {
		w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))
	}
	writePage(w, r, http.StatusOK, "content", contentPage{Title: item.Title, Item: item, Body: body})
}
