package command

import (
	"context"
	"fmt"

	"github.com/jbeshir/content-ratings/internal/datasources"
	"github.com/jbeshir/content-ratings/internal/domain"
)

// DefaultTopRatedLimit is the fixed page size of top-rated listings.
const DefaultTopRatedLimit = 10

// TopRatedRequest filters a top-rated listing. Zero values mean no filter.
type TopRatedRequest struct {
	CategoryID int64
	Tag        string
	Limit      int
}

// TopRatedConfig bounds the size of listings. Zero values use
// DefaultTopRatedLimit and no maximum.
type TopRatedConfig struct {
	DefaultLimit int
	MaxLimit     int
}

// TopRated ranks rated posts and pages by rating, highest first. Ties are
// broken by content ID ascending.
type TopRated struct {
	Lister  datasources.TopRatedContentLister
	Tags    datasources.TagResolver
	Fetcher datasources.ContentFetcher
	Config  TopRatedConfig
}

func NewTopRated(
	lister datasources.TopRatedContentLister,
	tags datasources.TagResolver,
	fetcher datasources.ContentFetcher,
	config TopRatedConfig,
) *TopRated {
	return &TopRated{
		Lister:  lister,
		Tags:    tags,
		Fetcher: fetcher,
		Config:  config,
	}
}

func (c *TopRated) limit(requested int) int {
	limit := requested
	if limit <= 0 {
		limit = c.Config.DefaultLimit
	}
	if limit <= 0 {
		limit = DefaultTopRatedLimit
	}
	if c.Config.MaxLimit > 0 {
		limit = min(limit, c.Config.MaxLimit)
	}
	return limit
}

func (c *TopRated) Execute(ctx context.Context, req TopRatedRequest) ([]domain.RatedContent, error) {
	filters := domain.TopRatedFilters{CategoryID: req.CategoryID}

	if req.Tag != "" {
		tag, found, err := c.Tags.ResolveTag(ctx, req.Tag)
		if err != nil {
			return nil, fmt.Errorf("resolving tag filter: %w", err)
		}
		if !found {
			return []domain.RatedContent{}, nil
		}
		filters.TagID = tag.ID
	}

	entries, err := c.Lister.ListTopRatedContent(ctx, filters, c.limit(req.Limit))
	if err != nil {
		return nil, fmt.Errorf("listing top rated content: %w", err)
	}
	if len(entries) == 0 {
		return []domain.RatedContent{}, nil
	}

	ids := make([]int64, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.ContentID)
	}

	items, err := c.Fetcher.FetchContentByID(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("fetching top rated content: %w", err)
	}
	itemMap := make(map[int64]domain.ContentItem, len(items))
	for _, item := range items {
		itemMap[item.ID] = item
	}

	results := make([]domain.RatedContent, 0, len(entries))
	for _, e := range entries {
		item, ok := itemMap[e.ContentID]
		if !ok {
			continue
		}
		results = append(results, domain.RatedContent{
			Item:      item,
			RawRating: e.Value,
			Rating:    domain.ParseRating(e.Value),
		})
	}

	return results, nil
}
