package controller

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/feeds"
	"github.com/jbeshir/content-ratings/internal/command"
	"github.com/jbeshir/content-ratings/internal/domain"
)

// TopRatedRSS publishes the top-rated listing as an RSS feed. It accepts the
// same filters as the JSON listing.
type TopRatedRSS struct {
	FeedHostname    string
	FeedPath        string
	FeedAuthorName  string
	FeedAuthorEmail string
	TopRatedCmd     command.Command[command.TopRatedRequest, []domain.RatedContent]
	SettingsCmd     command.Command[command.Empty, domain.Settings]
	CacheMaxAge     time.Duration
}

func (c TopRatedRSS) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	feed := &feeds.Feed{
		Title:       "Top Rated Content",
		Link:        &feeds.Link{Href: c.FeedHostname + c.FeedPath},
		Description: "Posts and pages with the highest editor ratings",
		Author:      &feeds.Author{Name: c.FeedAuthorName, Email: c.FeedAuthorEmail},
		Created:     time.Now(),
	}

	results, err := c.TopRatedCmd.Execute(r.Context(), topRatedRequestFromQuery(r.URL.Query()))
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to list top rated content for feed", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	scale := loadSettings(r.Context(), c.SettingsCmd).Scale()
	for _, rc := range results {
		feed.Items = append(feed.Items, &feeds.Item{
			Id:          strconv.FormatInt(rc.Item.ID, 10),
			IsPermaLink: "false",
			Title:       rc.Item.Title,
			Link:        &feeds.Link{Href: c.FeedHostname + rc.Item.PublicPath()},
			Description: "Editor rating: " + domain.NewRatedDisplay(rc.Rating.Value, scale).Numeric,
			Author: &feeds.Author{
				Name: rc.Item.Author.DisplayName,
			},
			Created: rc.Item.PublishedAt,
		})
	}

	rss, err := feed.ToRss()
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to format feed as RSS", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/xml")
	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))

	if _, err := w.Write([]byte(rss)); err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write feed to response", "error", err)
	}
}
