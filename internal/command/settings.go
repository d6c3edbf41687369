package command

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jbeshir/content-ratings/internal/datasources"
	"github.com/jbeshir/content-ratings/internal/domain"
	"github.com/jbeshir/content-ratings/internal/nonce"
)

// GetSettings loads the site-wide rating settings, applying defaults when
// none have been saved.
type GetSettings struct {
	OptionGetter datasources.OptionGetter
}

func NewGetSettings(optionGetter datasources.OptionGetter) *GetSettings {
	return &GetSettings{OptionGetter: optionGetter}
}

func (c *GetSettings) Execute(ctx context.Context, _ Empty) (domain.Settings, error) {
	raw, found, err := c.OptionGetter.GetOption(ctx, domain.SettingsOptionKey)
	if err != nil {
		return domain.Settings{}, fmt.Errorf("reading settings option: %w", err)
	}
	if !found {
		return domain.DefaultSettings(), nil
	}

	settings := domain.DefaultSettings()
	if err := json.Unmarshal(raw, &settings); err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.WarnContext(ctx, "stored settings are not decodable, using defaults", "error", err)
		return domain.DefaultSettings(), nil
	}
	settings.RatingScale = settings.Scale()
	return settings, nil
}

// UpdateSettingsRequest is a settings form submission.
type UpdateSettingsRequest struct {
	Actor    domain.User
	Token    string
	RawScale string
}

type UpdateSettings struct {
	Tokens       TokenVerifier
	OptionSetter datasources.OptionSetter
}

func NewUpdateSettings(tokens TokenVerifier, optionSetter datasources.OptionSetter) *UpdateSettings {
	return &UpdateSettings{Tokens: tokens, OptionSetter: optionSetter}
}

// Execute stores a new rating scale. Stored ratings are not touched.
func (c *UpdateSettings) Execute(ctx context.Context, req UpdateSettingsRequest) (domain.Settings, error) {
	if !c.Tokens.Verify(req.Token, req.Actor.ID, nonce.ScopeUpdateSettings) {
		return domain.Settings{}, domain.ErrInvalidToken
	}
	if !req.Actor.CanAdminister() {
		return domain.Settings{}, domain.ErrUnauthorized
	}

	scale, err := domain.ParseScale(req.RawScale)
	if err != nil {
		return domain.Settings{}, err
	}

	settings := domain.Settings{RatingScale: scale}
	raw, err := json.Marshal(settings)
	if err != nil {
		return domain.Settings{}, fmt.Errorf("encoding settings: %w", err)
	}
	if err := c.OptionSetter.SetOption(ctx, domain.SettingsOptionKey, raw); err != nil {
		return domain.Settings{}, fmt.Errorf("storing settings option: %w", err)
	}

	logger := domain.LoggerFromContext(ctx)
	logger.InfoContext(ctx, "updated rating settings", "ratingScale", scale, "actorID", req.Actor.ID)

	return settings, nil
}
