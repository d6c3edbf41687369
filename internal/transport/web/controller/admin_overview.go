package controller

import (
	"net/http"
	"strings"

	"github.com/jbeshir/content-ratings/internal/command"
	"github.com/jbeshir/content-ratings/internal/datasources"
	"github.com/jbeshir/content-ratings/internal/domain"
)

// AdminOverview lists the top-rated posts and pages for administrators,
// filtered by category and tag.
type AdminOverview struct {
	TopRatedCmd command.Command[command.TopRatedRequest, []domain.RatedContent]
	Categories  datasources.CategoryLister
}

type overviewRow struct {
	Title      string
	EditPath   string
	Rating     string
	Categories string
	Tags       string
}

type overviewPage struct {
	Title      string
	Categories []domain.Category
	CategoryID int64
	Tag        string
	Rows       []overviewRow
}

func (c AdminOverview) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	req := topRatedRequestFromQuery(r.URL.Query())
	req.Limit = command.DefaultTopRatedLimit

	categories, err := c.Categories.ListCategories(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "unable to list categories", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	results, err := c.TopRatedCmd.Execute(ctx, req)
	if err != nil {
		logger.ErrorContext(ctx, "unable to list top rated content", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	rows := make([]overviewRow, 0, len(results))
	for _, rc := range results {
		rows = append(rows, overviewRow{
			Title:      rc.Item.Title,
			EditPath:   rc.Item.EditPath(),
			Rating:     rc.RawRating,
			Categories: joinNames(rc.Item.Categories, func(cat domain.Category) string { return cat.Name }),
			Tags:       joinNames(rc.Item.Tags, func(t domain.Tag) string { return t.Name }),
		})
	}

	writePage(w, r, http.StatusOK, "overview", overviewPage{
		Title:      "Top Rated Content",
		Categories: categories,
		CategoryID: req.CategoryID,
		Tag:        req.Tag,
		Rows:       rows,
	})
}

func joinNames[T any](values []T, name func(T) string) string {
	if len(values) == 0 {
		return "-"
	}
	names := make([]string, 0, len(values))
	for _, v := range values {
		names = append(names, name(v))
	}
	return strings.Join(names, ", ")
}
