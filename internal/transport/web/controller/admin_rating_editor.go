package controller

import (
	"errors"
	"net/http"
	"slices"

	"github.com/jbeshir/content-ratings/internal/command"
	"github.com/jbeshir/content-ratings/internal/datasources"
	"github.com/jbeshir/content-ratings/internal/domain"
	"github.com/jbeshir/content-ratings/internal/nonce"
)

// AdminRatingEditor shows and handles the editor rating form of a post or
// page.
type AdminRatingEditor struct {
	Fetcher      datasources.ContentFetcher
	GetRatingCmd command.Command[int64, domain.Rating]
	SetRatingCmd command.Command[command.SetRatingRequest, command.SetRatingResponse]
	SettingsCmd  command.Command[command.Empty, domain.Settings]
	Tokens       TokenIssuer
}

type ratingEditorPage struct {
	Title string
	Item  domain.ContentItem
	Scale domain.Scale
	Value string
	Nonce string
	Saved bool
	Error string
}

func (c AdminRatingEditor) ServeHTTP(w http.ResponseWriter, r *http.Request) {
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

	actor, ok := domain.ActorFromContext(ctx)
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	items, err := c.Fetcher.FetchContentByID(ctx, []int64{contentID})
	if err != nil {
		logger.ErrorContext(ctx, "unable to fetch content item", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if len(items) == 0 || !slices.Contains(domain.RatableContentTypes, items[0].Type) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	item := items[0]

	settings := loadSettings(ctx, c.SettingsCmd)
	page := ratingEditorPage{
		Title: "Editor Rating: " + item.Title,
		Item:  item,
		Scale: settings.Scale(),
	}

	if r.Method != http.MethodPost {
		if !actor.CanEdit(item) {
			w.WriteHeader(http.StatusForbidden)
			return
		}

		rating, err := c.GetRatingCmd.Execute(ctx, item.ID)
		if err != nil {
			logger.ErrorContext(ctx, "unable to fetch rating", "error", err)

			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		page.Value = rating.String()
		page.Saved = r.URL.Query().Get("saved") == "1"
		c.writeForm(w, r, http.StatusOK, actor, page)
		return
	}

	if err := r.ParseForm(); err != nil {
		logger.ErrorContext(ctx, "unable to parse rating form", "error", err)

		w.WriteHeader(http.StatusBadRequest)
		return
	}

	_, err = c.SetRatingCmd.Execute(ctx, command.SetRatingRequest{
		Actor:     actor,
		ContentID: item.ID,
		RawValue:  r.PostForm.Get("rating"),
		Token:     r.PostForm.Get("rating_nonce"),
		Autosave:  r.PostForm.Get("autosave") == "1",
		Settings:  settings,
	})
	if errors.Is(err, domain.ErrSuppressedWrite) {
		w.WriteHeader(http.StatusAccepted)
		return
	}
	if errors.Is(err, domain.ErrUnauthorized) {
		logger.WarnContext(ctx, "rating submission not permitted", "error", err)

		w.WriteHeader(http.StatusForbidden)
		return
	}
	if err != nil {
		status, message := formError(err, page.Scale)
		if status == http.StatusInternalServerError {
			logger.ErrorContext(ctx, "unable to save rating", "error", err)
		} else {
			logger.WarnContext(ctx, "rejected rating submission", "error", err)
		}

		page.Value = domain.SanitizeText(r.PostForm.Get("rating"))
		page.Error = message
		c.writeForm(w, r, status, actor, page)
		return
	}

	http.Redirect(w, r, item.EditPath()+"?saved=1", http.StatusSeeOther)
}

func (c AdminRatingEditor) writeForm(
	w http.ResponseWriter, r *http.Request, status int, actor domain.User, page ratingEditorPage,
) {
	token, err := c.Tokens.Issue(actor.ID, nonce.SaveRatingScope(page.Item.ID))
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to issue form token", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	page.Nonce = token
	writePage(w, r, status, "rating_editor", page)
}
