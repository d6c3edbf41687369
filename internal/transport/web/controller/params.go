package controller

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/jbeshir/content-ratings/internal/command"
	"github.com/jbeshir/content-ratings/internal/domain"
)

const maxTopRatedLimit = 100

// TokenIssuer issues anti-forgery tokens embedded in forms.
type TokenIssuer interface {
	Issue(userID int64, scope string) (string, error)
}

func contentIDFromVars(r *http.Request) (int64, error) {
	raw := mux.Vars(r)["content_id"]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("unable to parse content ID [%s]: %w", raw, err)
	}
	if id < 1 {
		return 0, fmt.Errorf("invalid content ID [%d]", id)
	}
	return id, nil
}

// topRatedRequestFromQuery reads the category, tag and limit filters.
// Malformed values fall back to no filter rather than failing the request.
func topRatedRequestFromQuery(q url.Values) command.TopRatedRequest {
	var req command.TopRatedRequest

	if category, err := strconv.ParseInt(q.Get("category"), 10, 64); err == nil && category > 0 {
		req.CategoryID = category
	}
	req.Tag = domain.SanitizeText(q.Get("tag"))

	if limit, err := strconv.Atoi(q.Get("limit")); err == nil && limit > 0 {
		req.Limit = min(limit, maxTopRatedLimit)
	}

	return req
}

// loadSettings returns the site settings, or the defaults if they cannot be
// read.
func loadSettings(ctx context.Context, cmd command.Command[command.Empty, domain.Settings]) domain.Settings {
	settings, err := cmd.Execute(ctx, command.Empty{})
	if err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to load rating settings, using defaults", "error", err)
		return domain.DefaultSettings()
	}
	return settings
}
