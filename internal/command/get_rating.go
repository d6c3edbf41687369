package command

import (
	"context"
	"fmt"

	"github.com/jbeshir/content-ratings/internal/datasources"
	"github.com/jbeshir/content-ratings/internal/domain"
)

// GetRating reads the editor rating of a content item. Missing items and
// missing or unparseable values are all reported as unrated.
type GetRating struct {
	FieldGetter datasources.ContentFieldGetter
}

func NewGetRating(fieldGetter datasources.ContentFieldGetter) *GetRating {
	return &GetRating{FieldGetter: fieldGetter}
}

func (c *GetRating) Execute(ctx context.Context, contentID int64) (domain.Rating, error) {
	raw, found, err := c.FieldGetter.GetContentField(ctx, contentID, domain.RatingFieldKey)
	if err != nil {
		return domain.Rating{}, fmt.Errorf("reading rating field: %w", err)
	}
	if !found {
		return domain.Rating{}, nil
	}
	return domain.ParseRating(raw), nil
}
