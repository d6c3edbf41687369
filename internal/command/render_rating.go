package command

import (
	"context"

	"github.com/jbeshir/content-ratings/internal/datasources"
	"github.com/jbeshir/content-ratings/internal/domain"
)

// RenderRatingRequest identifies the item being rendered. A zero ContentID
// means the rating tag appeared outside of any content item.
type RenderRatingRequest struct {
	ContentID int64
	Settings  domain.Settings
}

// RenderRating prepares the public display of an item's rating. It does not
// fail: lookup errors are logged and degrade the display.
type RenderRating struct {
	FieldGetter datasources.ContentFieldGetter
	Fetcher     datasources.ContentFetcher
}

func NewRenderRating(fieldGetter datasources.ContentFieldGetter, fetcher datasources.ContentFetcher) *RenderRating {
	return &RenderRating{FieldGetter: fieldGetter, Fetcher: fetcher}
}

func (c *RenderRating) Execute(ctx context.Context, req RenderRatingRequest) (domain.RatingDisplay, error) {
	if req.ContentID == 0 {
		return domain.RatingDisplay{State: domain.DisplayStateEmpty}, nil
	}

	logger := domain.LoggerFromContext(ctx).With("contentID", req.ContentID)
	unrated := domain.RatingDisplay{State: domain.DisplayStateUnrated, Scale: req.Settings.Scale()}

	raw, found, err := c.FieldGetter.GetContentField(ctx, req.ContentID, domain.RatingFieldKey)
	if err != nil {
		logger.WarnContext(ctx, "unable to read rating for display", "error", err)
		return unrated, nil
	}
	if !found {
		return unrated, nil
	}
	rating := domain.ParseRating(raw)
	if !rating.Rated {
		return unrated, nil
	}

	display := domain.NewRatedDisplay(rating.Value, req.Settings.Scale())

	items, err := c.Fetcher.FetchContentByID(ctx, []int64{req.ContentID})
	if err != nil {
		logger.WarnContext(ctx, "unable to fetch author for rating display", "error", err)
		return display, nil
	}
	if len(items) > 0 && items[0].Author.ID != 0 {
		display.AuthorName = items[0].Author.DisplayName
		display.AvatarURL = domain.AvatarURL(items[0].Author.Email, domain.AvatarSize)
	}

	return display, nil
}
