package command

import (
	"context"
	"fmt"
	"slices"
	"strconv"

	"github.com/jbeshir/content-ratings/internal/datasources"
	"github.com/jbeshir/content-ratings/internal/domain"
	"github.com/jbeshir/content-ratings/internal/nonce"
)

// SetRatingRequest is a rating form submission.
type SetRatingRequest struct {
	Actor     domain.User
	ContentID int64
	RawValue  string
	Token     string
	Autosave  bool
	Settings  domain.Settings
}

type SetRatingResponse struct {
	Rating  domain.Rating
	Written bool
}

// SetRating validates and stores an editor rating.
type SetRating struct {
	Tokens      TokenVerifier
	Fetcher     datasources.ContentFetcher
	FieldSetter datasources.ContentFieldSetter
}

func NewSetRating(
	tokens TokenVerifier,
	fetcher datasources.ContentFetcher,
	fieldSetter datasources.ContentFieldSetter,
) *SetRating {
	return &SetRating{
		Tokens:      tokens,
		Fetcher:     fetcher,
		FieldSetter: fieldSetter,
	}
}

// Execute checks the token, the actor's permission and the autosave flag, in
// that order, before validating the value against the configured scale.
// A blank value leaves the stored rating unchanged.
func (c *SetRating) Execute(ctx context.Context, req SetRatingRequest) (SetRatingResponse, error) {
	logger := domain.LoggerFromContext(ctx)

	if !c.Tokens.Verify(req.Token, req.Actor.ID, nonce.SaveRatingScope(req.ContentID)) {
		return SetRatingResponse{}, domain.ErrInvalidToken
	}

	items, err := c.Fetcher.FetchContentByID(ctx, []int64{req.ContentID})
	if err != nil {
		return SetRatingResponse{}, fmt.Errorf("fetching content item: %w", err)
	}
	if len(items) == 0 || !slices.Contains(domain.RatableContentTypes, items[0].Type) {
		return SetRatingResponse{}, fmt.Errorf("content item [%d]: %w", req.ContentID, domain.ErrNotFound)
	}
	if !req.Actor.CanEdit(items[0]) {
		return SetRatingResponse{}, domain.ErrUnauthorized
	}

	if req.Autosave {
		return SetRatingResponse{}, domain.ErrSuppressedWrite
	}

	value := domain.SanitizeText(req.RawValue)
	if value == "" {
		logger.DebugContext(ctx, "blank rating submitted, leaving rating unchanged", "contentID", req.ContentID)
		return SetRatingResponse{}, nil
	}

	v, err := strconv.Atoi(value)
	if err != nil {
		return SetRatingResponse{}, fmt.Errorf("%w: %q", domain.ErrInvalidRating, value)
	}
	scale := req.Settings.Scale()
	if v < 0 || v > int(scale) {
		return SetRatingResponse{}, fmt.Errorf("%w: %d not in 0-%d", domain.ErrRatingOutOfRange, v, scale)
	}

	rating := domain.RatingOf(v)
	if err := c.FieldSetter.SetContentField(ctx, req.ContentID, domain.RatingFieldKey, rating.String()); err != nil {
		return SetRatingResponse{}, fmt.Errorf("storing rating: %w", err)
	}

	logger.DebugContext(ctx, "set editor rating",
		"contentID", req.ContentID, "rating", v, "actorID", req.Actor.ID)

	return SetRatingResponse{Rating: rating, Written: true}, nil
}
