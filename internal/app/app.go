package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jbeshir/content-ratings/internal/command"
	"github.com/jbeshir/content-ratings/internal/nonce"
	"github.com/jbeshir/content-ratings/internal/transport/web/router"
	"github.com/jbeshir/content-ratings/internal/transport/web/server"
)

type Component interface {
	Run(ctx context.Context) error
}

func Setup(ctx context.Context) ([]Component, error) {
	store, err := OpenStore(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up store: %w", err)
	}
	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("migrating store: %w", err)
	}

	issuer, err := nonce.NewIssuer(MustGetEnvAsString(ctx, "NONCE_SECRET"))
	if err != nil {
		return nil, fmt.Errorf("setting up form token issuer: %w", err)
	}

	authMiddleware, err := setupAuthMiddleware(ctx, store)
	if err != nil {
		return nil, fmt.Errorf("setting up auth middleware: %w", err)
	}

	httpRouter, err := router.MakeRouter(
		store,
		store,
		NewCommands(store, issuer),
		issuer,
		router.FeedConfig{
			BaseURL:     MustGetEnvAsString(ctx, "PUBLIC_BASE_URL"),
			AuthorName:  MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_NAME"),
			AuthorEmail: MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_EMAIL"),
		},
		MustGetEnvAsDuration(ctx, "RSS_FEED_CACHE_MAX_AGE"),
		authMiddleware,
	)
	if err != nil {
		return nil, fmt.Errorf("unable to create HTTP router: %w", err)
	}

	return []Component{
		&server.Server{
			TLSDisabled:       MustGetEnvAsBoolean(ctx, "HTTP_TLS_DISABLED"),
			TLSDisabledPort:   MustGetEnvAsInt(ctx, "PORT"),
			AutocertHostnames: MustGetEnvAsStrings(ctx, "HTTP_AUTOCERT_HOSTNAMES"),
			Router:            httpRouter,
		},
	}, nil
}

// NewCommands builds the use cases over a store.
func NewCommands(store *Store, tokens command.TokenVerifier) router.Commands {
	settings := command.NewGetSettings(store)
	return router.Commands{
		GetRating:      command.NewGetRating(store),
		SetRating:      command.NewSetRating(tokens, store, store),
		Settings:       settings,
		UpdateSettings: command.NewUpdateSettings(tokens, store),
		RenderRating:   command.NewRenderRating(store, store),
		TopRated:       command.NewTopRated(store, store, store, DefaultTopRatedConfig()),
		CreateAPIToken: command.NewCreateAPIToken(store, store, store),
	}
}

func setupAuthMiddleware(ctx context.Context, store *Store) (func(http.Handler) http.Handler, error) {
	var validators []router.AuthValidator

	for _, driver := range MustGetEnvAsStrings(ctx, "AUTH_DRIVERS") {
		switch driver {
		case "auth0":
			v, err := router.NewAuth0Validator(
				MustGetEnvAsString(ctx, "AUTH0_DOMAIN"),
				MustGetEnvAsString(ctx, "AUTH0_AUDIENCE"),
				store,
			)
			if err != nil {
				return nil, fmt.Errorf("creating Auth0 validator: %w", err)
			}
			validators = append(validators, v)
		case "api_token":
			validators = append(validators, router.NewAPITokenValidator(ctx, store, store, store))
		default:
			return nil, fmt.Errorf("unknown auth driver [%s]", driver)
		}
	}

	return router.NewAuthMiddleware(validators), nil
}
