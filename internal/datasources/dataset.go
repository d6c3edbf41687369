package datasources

import (
	"context"

	"github.com/jbeshir/content-ratings/internal/domain"
)

// ContentRepository is the host content store: items, their metadata fields,
// taxonomy and global options.
type ContentRepository interface {
	ContentFieldGetter
	ContentFieldSetter
	OptionGetter
	OptionSetter
	ContentFetcher
	TopRatedContentLister
	TagResolver
	CategoryLister
	UserGetter
	UserBySubjectGetter
	FixtureSaver
	APITokenRepository
}

// ContentFieldGetter reads a single metadata field of a content item.
// The boolean is false when the field is not set.
type ContentFieldGetter interface {
	GetContentField(ctx context.Context, contentID int64, key string) (string, bool, error)
}

// ContentFieldSetter writes a single metadata field, replacing any prior value.
type ContentFieldSetter interface {
	SetContentField(ctx context.Context, contentID int64, key, value string) error
}

// OptionGetter reads a global option. The boolean is false when it is not set.
type OptionGetter interface {
	GetOption(ctx context.Context, key string) ([]byte, bool, error)
}

type OptionSetter interface {
	SetOption(ctx context.Context, key string, value []byte) error
}

// ContentFetcher loads content items with their author and taxonomy, in the
// order of the given IDs. Unknown IDs are skipped.
type ContentFetcher interface {
	FetchContentByID(ctx context.Context, ids []int64) ([]domain.ContentItem, error)
}

// TopRatedContentLister lists rated post and page IDs ordered by numeric
// rating descending, then ID ascending.
type TopRatedContentLister interface {
	ListTopRatedContent(ctx context.Context, filters domain.TopRatedFilters, limit int) ([]domain.RatingEntry, error)
}

// TagResolver finds a tag by slug, falling back to a case-insensitive name
// match. The boolean is false when no tag matches.
type TagResolver interface {
	ResolveTag(ctx context.Context, slugOrName string) (domain.Tag, bool, error)
}

type CategoryLister interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
}

// UserGetter returns domain.ErrNotFound for unknown users.
type UserGetter interface {
	GetUser(ctx context.Context, id int64) (domain.User, error)
}

// UserBySubjectGetter maps an external identity provider subject to a user.
// It returns domain.ErrNotFound for unknown subjects.
type UserBySubjectGetter interface {
	GetUserByAuthSubject(ctx context.Context, subject string) (domain.User, error)
}

// FixtureSaver creates or replaces host content records.
type FixtureSaver interface {
	SaveUser(ctx context.Context, user domain.User) error
	SaveCategory(ctx context.Context, category domain.Category) error
	SaveTag(ctx context.Context, tag domain.Tag) error
	SaveContentItem(ctx context.Context, item domain.ContentItem) error
}
