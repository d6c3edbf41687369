package router

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/jbeshir/content-ratings/internal/command"
	"github.com/jbeshir/content-ratings/internal/datasources"
	"github.com/jbeshir/content-ratings/internal/domain"
	"github.com/jbeshir/content-ratings/internal/transport/web/controller"
)

// Commands are the use cases served over HTTP.
type Commands struct {
	GetRating      command.Command[int64, domain.Rating]
	SetRating      command.Command[command.SetRatingRequest, command.SetRatingResponse]
	Settings       command.Command[command.Empty, domain.Settings]
	UpdateSettings command.Command[command.UpdateSettingsRequest, domain.Settings]
	RenderRating   command.Command[command.RenderRatingRequest, domain.RatingDisplay]
	TopRated       command.Command[command.TopRatedRequest, []domain.RatedContent]
	CreateAPIToken command.Command[command.CreateAPITokenRequest, command.CreateAPITokenResponse]
}

// APITokenStore lists and revokes a user's API tokens.
type APITokenStore interface {
	datasources.UserAPITokenLister
	datasources.APITokenRevoker
}

type FeedConfig struct {
	BaseURL     string
	AuthorName  string
	AuthorEmail string
}

func MakeRouter(
	content interface {
		datasources.ContentFetcher
		datasources.CategoryLister
	},
	apiTokens APITokenStore,
	cmds Commands,
	tokens controller.TokenIssuer,
	feed FeedConfig,
	cacheMaxAge time.Duration,
	authMiddleware func(http.Handler) http.Handler,
) (http.Handler, error) {
	r := mux.NewRouter()
	r.Use(authMiddleware)

	r.Handle("/content/{content_id:[0-9]+}", controller.ContentView{
		Fetcher:         content,
		RenderRatingCmd: cmds.RenderRating,
		SettingsCmd:     cmds.Settings,
		CacheMaxAge:     cacheMaxAge,
	}).Methods(http.MethodGet)

	r.Handle("/content/{content_id:[0-9]+}/rating", controller.RatingFragment{
		RenderRatingCmd: cmds.RenderRating,
		SettingsCmd:     cmds.Settings,
		CacheMaxAge:     cacheMaxAge,
	}).Methods(http.MethodGet)

	r.Handle("/rss/top-rated", controller.TopRatedRSS{
		FeedHostname:    feed.BaseURL,
		FeedPath:        "/rss/top-rated",
		FeedAuthorName:  feed.AuthorName,
		FeedAuthorEmail: feed.AuthorEmail,
		TopRatedCmd:     cmds.TopRated,
		SettingsCmd:     cmds.Settings,
		CacheMaxAge:     cacheMaxAge,
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/v1").Subrouter()
	api.Use(corsMiddleware)

	api.Handle("/content/{content_id:[0-9]+}/rating", controller.RatingGet{
		GetRatingCmd: cmds.GetRating,
		SettingsCmd:  cmds.Settings,
		CacheMaxAge:  cacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	api.Handle("/ratings/top", controller.TopRatedList{
		TopRatedCmd: cmds.TopRated,
		SettingsCmd: cmds.Settings,
		CacheMaxAge: cacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	api.Handle("/tokens", requireAuthMiddleware(controller.APITokenCreate{
		CreateCmd: cmds.CreateAPIToken,
	})).Methods(http.MethodPost, http.MethodOptions)

	api.Handle("/tokens", requireAuthMiddleware(controller.APITokenList{
		TokenLister: apiTokens,
	})).Methods(http.MethodGet)

	api.Handle("/tokens/{token_id}", requireAuthMiddleware(controller.APITokenRevoke{
		TokenRevoker: apiTokens,
	})).Methods(http.MethodDelete, http.MethodOptions)

	admin := r.PathPrefix("/admin").Subrouter()

	admin.Handle("/settings", requireAdminMiddleware(controller.AdminSettings{
		SettingsCmd:       cmds.Settings,
		UpdateSettingsCmd: cmds.UpdateSettings,
		Tokens:            tokens,
	})).Methods(http.MethodGet, http.MethodPost)

	admin.Handle("/ratings", requireAdminMiddleware(controller.AdminOverview{
		TopRatedCmd: cmds.TopRated,
		Categories:  content,
	})).Methods(http.MethodGet)

	admin.Handle("/content/{content_id:[0-9]+}/rating", requireAuthMiddleware(controller.AdminRatingEditor{
		Fetcher:      content,
		GetRatingCmd: cmds.GetRating,
		SetRatingCmd: cmds.SetRating,
		SettingsCmd:  cmds.Settings,
		Tokens:       tokens,
	})).Methods(http.MethodGet, http.MethodPost)

	return r, nil
}
