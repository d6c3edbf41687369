package controller

import (
	"net/http"
	"strconv"

	"github.com/jbeshir/content-ratings/internal/command"
	"github.com/jbeshir/content-ratings/internal/domain"
	"github.com/jbeshir/content-ratings/internal/nonce"
)

// AdminSettings shows and handles the site-wide rating settings form.
type AdminSettings struct {
	SettingsCmd       command.Command[command.Empty, domain.Settings]
	UpdateSettingsCmd command.Command[command.UpdateSettingsRequest, domain.Settings]
	Tokens            TokenIssuer
}

type scaleChoice struct {
	Value    string
	Label    string
	Selected bool
}

type settingsPage struct {
	Title   string
	Choices []scaleChoice
	Nonce   string
	Saved   bool
	Error   string
}

func scaleChoices(selected domain.Scale) []scaleChoice {
	choices := make([]scaleChoice, 0, len(domain.ValidScales))
	for _, s := range domain.ValidScales {
		v := strconv.Itoa(int(s))
		choices = append(choices, scaleChoice{
			Value:    v,
			Label:    v + " Stars/Points",
			Selected: s == selected,
		})
	}
	return choices
}

func (c AdminSettings) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	actor, ok := domain.ActorFromContext(ctx)
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if r.Method != http.MethodPost {
		settings := loadSettings(ctx, c.SettingsCmd)
		c.writeForm(w, r, http.StatusOK, actor, settingsPage{
			Choices: scaleChoices(settings.Scale()),
			Saved:   r.URL.Query().Get("saved") == "1",
		})
		return
	}

	if err := r.ParseForm(); err != nil {
		logger.ErrorContext(ctx, "unable to parse settings form", "error", err)

		w.WriteHeader(http.StatusBadRequest)
		return
	}

	_, err := c.UpdateSettingsCmd.Execute(ctx, command.UpdateSettingsRequest{
		Actor:    actor,
		Token:    r.PostForm.Get("settings_nonce"),
		RawScale: r.PostForm.Get("rating_scale"),
	})
	if err != nil {
		settings := loadSettings(ctx, c.SettingsCmd)
		status, message := formError(err, settings.Scale())
		if status == http.StatusInternalServerError {
			logger.ErrorContext(ctx, "unable to save settings", "error", err)
		} else {
			logger.WarnContext(ctx, "rejected settings submission", "error", err)
		}

		c.writeForm(w, r, status, actor, settingsPage{
			Choices: scaleChoices(settings.Scale()),
			Error:   message,
		})
		return
	}

	http.Redirect(w, r, "/admin/settings?saved=1", http.StatusSeeOther)
}

func (c AdminSettings) writeForm(
	w http.ResponseWriter, r *http.Request, status int, actor domain.User, page settingsPage,
) {
	token, err := c.Tokens.Issue(actor.ID, nonce.ScopeUpdateSettings)
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to issue form token", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	page.Title = "Content Ratings Settings"
	page.Nonce = token
	writePage(w, r, status, "settings", page)
}
