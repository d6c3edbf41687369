package domain

import (
	"strconv"
	"time"
)

type ContentType string

const (
	ContentTypePost ContentType = "post"
	ContentTypePage ContentType = "page"
)

// RatableContentTypes are the content types that carry an editor rating.
var RatableContentTypes = []ContentType{
	ContentTypePost,
	ContentTypePage,
}

type ContentItem struct {
	ID          int64       `json:"id"`
	Type        ContentType `json:"type"`
	Title       string      `json:"title"`
	Body        string      `json:"-"`
	Author      User        `json:"author"`
	Categories  []Category  `json:"categories"`
	Tags        []Tag       `json:"tags"`
	PublishedAt time.Time   `json:"published_at"`
}

// EditPath is the edit link of the item: the page where its rating is set.
func (c ContentItem) EditPath() string {
	return "/admin/content/" + strconv.FormatInt(c.ID, 10) + "/rating"
}

// PublicPath is where the item is shown to readers.
func (c ContentItem) PublicPath() string {
	return "/content/" + strconv.FormatInt(c.ID, 10)
}

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type Tag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// TopRatedFilters restricts a top-rated listing. Zero values mean no filter.
type TopRatedFilters struct {
	CategoryID int64
	TagID      int64
}

// RatingEntry is a stored rating field as it appears in a ranked listing.
type RatingEntry struct {
	ContentID int64
	Value     string
}

// RatedContent is a content item together with its stored rating.
type RatedContent struct {
	Item      ContentItem `json:"item"`
	RawRating string      `json:"raw_rating"`
	Rating    Rating      `json:"rating"`
}
