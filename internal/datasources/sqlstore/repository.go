package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/huandu/go-sqlbuilder"
	"github.com/jbeshir/content-ratings/internal/datasources"
	"github.com/jbeshir/content-ratings/internal/domain"
)

var _ datasources.ContentRepository = (*Repository)(nil)

// Repository implements the content store on top of database/sql. The same
// queries serve MySQL and SQLite; Dialect covers the differences.
type Repository struct {
	db      *sql.DB
	dialect Dialect
}

func New(db *sql.DB, dialect Dialect) *Repository {
	return &Repository{db: db, dialect: dialect}
}

func (r *Repository) GetContentField(ctx context.Context, contentID int64, key string) (string, bool, error) {
	sb := r.dialect.Flavor.NewSelectBuilder()
	sb.Select("meta_value").From("content_meta")
	sb.Where(sb.Equal("content_id", contentID), sb.Equal("meta_key", key))

	query, args := sb.Build()
	var value string
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("getting content field [%s]: %w", key, err)
	}
	return value, true, nil
}

func (r *Repository) SetContentField(ctx context.Context, contentID int64, key, value string) error {
	cols := []string{"content_id", "meta_key", "meta_value"}
	if err := r.upsert(ctx, r.db, "content_meta", []string{"content_id", "meta_key"}, cols,
		contentID, key, value); err != nil {
		return fmt.Errorf("setting content field [%s]: %w", key, err)
	}
	return nil
}

func (r *Repository) GetOption(ctx context.Context, key string) ([]byte, bool, error) {
	sb := r.dialect.Flavor.NewSelectBuilder()
	sb.Select("option_value").From("options")
	sb.Where(sb.Equal("option_key", key))

	query, args := sb.Build()
	var value string
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("getting option [%s]: %w", key, err)
	}
	return []byte(value), true, nil
}

func (r *Repository) SetOption(ctx context.Context, key string, value []byte) error {
	if err := r.upsert(ctx, r.db, "options", []string{"option_key"}, []string{"option_key", "option_value"},
		key, string(value)); err != nil {
		return fmt.Errorf("setting option [%s]: %w", key, err)
	}
	return nil
}

func (r *Repository) ListTopRatedContent(
	ctx context.Context,
	filters domain.TopRatedFilters,
	limit int,
) ([]domain.RatingEntry, error) {
	types := make([]interface{}, 0, len(domain.RatableContentTypes))
	for _, t := range domain.RatableContentTypes {
		types = append(types, string(t))
	}

	sb := r.dialect.Flavor.NewSelectBuilder()
	sb.Select("c.id", "m.meta_value")
	sb.From("content_items c")
	sb.Join("content_meta m", "m.content_id = c.id", sb.Equal("m.meta_key", domain.RatingFieldKey))

	if filters.CategoryID != 0 {
		sb.Join("content_categories cc", "cc.content_id = c.id", sb.Equal("cc.category_id", filters.CategoryID))
	}
	if filters.TagID != 0 {
		sb.Join("content_tags ct", "ct.content_id = c.id", sb.Equal("ct.tag_id", filters.TagID))
	}

	sb.Where(sb.In("c.type", types...), sb.NotEqual("m.meta_value", ""))
	sb.OrderBy(r.dialect.numericCast("m.meta_value")+" DESC", "c.id ASC")
	sb.Limit(limit)

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running top rated query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	entries := []domain.RatingEntry{}
	for rows.Next() {
		var e domain.RatingEntry
		if err := rows.Scan(&e.ContentID, &e.Value); err != nil {
			return nil, fmt.Errorf("scanning top rated content: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return entries, nil
}

func (r *Repository) FetchContentByID(ctx context.Context, ids []int64) ([]domain.ContentItem, error) {
	if len(ids) == 0 {
		return []domain.ContentItem{}, nil
	}

	idArgs := make([]interface{}, 0, len(ids))
	for _, id := range ids {
		idArgs = append(idArgs, id)
	}

	sb := r.dialect.Flavor.NewSelectBuilder()
	sb.Select("c.id", "c.type", "c.title", "c.body", "c.published_at",
		"u.id", "u.display_name", "u.email", "u.role")
	sb.From("content_items c")
	sb.JoinWithOption(sqlbuilder.LeftJoin, "users u", "u.id = c.author_id")
	sb.Where(sb.In("c.id", idArgs...))

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("fetching content by ID: %w", err)
	}
	defer func() { _ = rows.Close() }()

	itemMap := make(map[int64]*domain.ContentItem, len(ids))
	for rows.Next() {
		var (
			item        domain.ContentItem
			itemType    string
			publishedAt int64
			authorID    sql.NullInt64
			authorName  sql.NullString
			authorEmail sql.NullString
			authorRole  sql.NullString
		)
		if err := rows.Scan(&item.ID, &itemType, &item.Title, &item.Body, &publishedAt,
			&authorID, &authorName, &authorEmail, &authorRole); err != nil {
			return nil, fmt.Errorf("scanning content: %w", err)
		}
		item.Type = domain.ContentType(itemType)
		item.PublishedAt = time.Unix(publishedAt, 0).UTC()
		item.Author = domain.User{
			ID:          authorID.Int64,
			DisplayName: authorName.String,
			Email:       authorEmail.String,
			Role:        domain.Role(authorRole.String),
		}
		item.Categories = []domain.Category{}
		item.Tags = []domain.Tag{}
		itemMap[item.ID] = &item
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	if err := r.fetchCategories(ctx, idArgs, itemMap); err != nil {
		return nil, err
	}
	if err := r.fetchTags(ctx, idArgs, itemMap); err != nil {
		return nil, err
	}

	// Build results in the same order as the input IDs
	items := make([]domain.ContentItem, 0, len(ids))
	for _, id := range ids {
		if item, exists := itemMap[id]; exists {
			items = append(items, *item)
		}
	}

	return items, nil
}

func (r *Repository) fetchCategories(
	ctx context.Context, idArgs []interface{}, itemMap map[int64]*domain.ContentItem,
) error {
	sb := r.dialect.Flavor.NewSelectBuilder()
	sb.Select("cc.content_id", "cat.id", "cat.name", "cat.slug")
	sb.From("content_categories cc")
	sb.Join("categories cat", "cat.id = cc.category_id")
	sb.Where(sb.In("cc.content_id", idArgs...))
	sb.OrderBy("cat.name ASC", "cat.id ASC")

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("fetching content categories: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var contentID int64
		var c domain.Category
		if err := rows.Scan(&contentID, &c.ID, &c.Name, &c.Slug); err != nil {
			return fmt.Errorf("scanning content categories: %w", err)
		}
		if item, ok := itemMap[contentID]; ok {
			item.Categories = append(item.Categories, c)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating rows: %w", err)
	}
	return nil
}

func (r *Repository) fetchTags(
	ctx context.Context, idArgs []interface{}, itemMap map[int64]*domain.ContentItem,
) error {
	sb := r.dialect.Flavor.NewSelectBuilder()
	sb.Select("ct.content_id", "t.id", "t.name", "t.slug")
	sb.From("content_tags ct")
	sb.Join("tags t", "t.id = ct.tag_id")
	sb.Where(sb.In("ct.content_id", idArgs...))
	sb.OrderBy("t.name ASC", "t.id ASC")

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("fetching content tags: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var contentID int64
		var t domain.Tag
		if err := rows.Scan(&contentID, &t.ID, &t.Name, &t.Slug); err != nil {
			return fmt.Errorf("scanning content tags: %w", err)
		}
		if item, ok := itemMap[contentID]; ok {
			item.Tags = append(item.Tags, t)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating rows: %w", err)
	}
	return nil
}

func (r *Repository) ResolveTag(ctx context.Context, slugOrName string) (domain.Tag, bool, error) {
	bySlug := r.dialect.Flavor.NewSelectBuilder()
	bySlug.Select("id", "name", "slug").From("tags")
	bySlug.Where(bySlug.Equal("slug", slugOrName))
	bySlug.Limit(1)

	tag, found, err := r.queryTag(ctx, bySlug)
	if err != nil || found {
		return tag, found, err
	}

	byName := r.dialect.Flavor.NewSelectBuilder()
	byName.Select("id", "name", "slug").From("tags")
	byName.Where("LOWER(name) = LOWER(" + byName.Args.Add(slugOrName) + ")")
	byName.OrderBy("id ASC")
	byName.Limit(1)

	return r.queryTag(ctx, byName)
}

func (r *Repository) queryTag(ctx context.Context, sb *sqlbuilder.SelectBuilder) (domain.Tag, bool, error) {
	query, args := sb.Build()
	var t domain.Tag
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&t.ID, &t.Name, &t.Slug)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Tag{}, false, nil
	}
	if err != nil {
		return domain.Tag{}, false, fmt.Errorf("resolving tag: %w", err)
	}
	return t, true, nil
}

func (r *Repository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	sb := r.dialect.Flavor.NewSelectBuilder()
	sb.Select("id", "name", "slug").From("categories")
	sb.OrderBy("name ASC", "id ASC")

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer func() { _ = rows.Close() }()

	categories := []domain.Category{}
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug); err != nil {
			return nil, fmt.Errorf("scanning categories: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}
	return categories, nil
}

func (r *Repository) GetUser(ctx context.Context, id int64) (domain.User, error) {
	sb := r.dialect.Flavor.NewSelectBuilder()
	sb.Select("id", "display_name", "email", "auth_subject", "role").From("users")
	sb.Where(sb.Equal("id", id))
	return r.queryUser(ctx, sb)
}

func (r *Repository) GetUserByAuthSubject(ctx context.Context, subject string) (domain.User, error) {
	sb := r.dialect.Flavor.NewSelectBuilder()
	sb.Select("id", "display_name", "email", "auth_subject", "role").From("users")
	sb.Where(sb.Equal("auth_subject", subject))
	return r.queryUser(ctx, sb)
}

func (r *Repository) queryUser(ctx context.Context, sb *sqlbuilder.SelectBuilder) (domain.User, error) {
	query, args := sb.Build()

	var u domain.User
	var subject sql.NullString
	var role string
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&u.ID, &u.DisplayName, &u.Email, &subject, &role)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("getting user: %w", err)
	}
	u.AuthSubject = subject.String
	u.Role = domain.Role(role)
	return u, nil
}

func (r *Repository) SaveUser(ctx context.Context, user domain.User) error {
	var subject sql.NullString
	if user.AuthSubject != "" {
		subject = sql.NullString{String: user.AuthSubject, Valid: true}
	}
	cols := []string{"id", "display_name", "email", "auth_subject", "role"}
	if err := r.upsert(ctx, r.db, "users", []string{"id"}, cols,
		user.ID, user.DisplayName, user.Email, subject, string(user.Role)); err != nil {
		return fmt.Errorf("saving user [%d]: %w", user.ID, err)
	}
	return nil
}

func (r *Repository) SaveCategory(ctx context.Context, category domain.Category) error {
	if err := r.upsert(ctx, r.db, "categories", []string{"id"}, []string{"id", "name", "slug"},
		category.ID, category.Name, category.Slug); err != nil {
		return fmt.Errorf("saving category [%d]: %w", category.ID, err)
	}
	return nil
}

func (r *Repository) SaveTag(ctx context.Context, tag domain.Tag) error {
	if err := r.upsert(ctx, r.db, "tags", []string{"id"}, []string{"id", "name", "slug"},
		tag.ID, tag.Name, tag.Slug); err != nil {
		return fmt.Errorf("saving tag [%d]: %w", tag.ID, err)
	}
	return nil
}

// SaveContentItem stores the item and replaces its category and tag
// assignments. Metadata fields are left untouched.
func (r *Repository) SaveContentItem(ctx context.Context, item domain.ContentItem) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	cols := []string{"id", "type", "title", "body", "author_id", "published_at"}
	if err := r.upsert(ctx, tx, "content_items", []string{"id"}, cols,
		item.ID, string(item.Type), item.Title, item.Body, item.Author.ID, item.PublishedAt.Unix()); err != nil {
		return fmt.Errorf("saving content item [%d]: %w", item.ID, err)
	}

	if err := r.deleteWhere(ctx, tx, "content_categories", "content_id", item.ID); err != nil {
		return err
	}
	for _, c := range item.Categories {
		if err := r.upsert(ctx, tx, "content_categories", []string{"content_id", "category_id"},
			[]string{"content_id", "category_id"}, item.ID, c.ID); err != nil {
			return fmt.Errorf("assigning category [%d]: %w", c.ID, err)
		}
	}

	if err := r.deleteWhere(ctx, tx, "content_tags", "content_id", item.ID); err != nil {
		return err
	}
	for _, t := range item.Tags {
		if err := r.upsert(ctx, tx, "content_tags", []string{"content_id", "tag_id"},
			[]string{"content_id", "tag_id"}, item.ID, t.ID); err != nil {
			return fmt.Errorf("assigning tag [%d]: %w", t.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (r *Repository) upsert(
	ctx context.Context, ex execer, table string, keys, cols []string, values ...interface{},
) error {
	ib := r.dialect.Flavor.NewInsertBuilder()
	ib.InsertInto(table)
	ib.Cols(cols...)
	ib.Values(values...)
	ib.SQL(r.dialect.upsertClause(keys, cols))

	query, args := ib.Build()
	_, err := ex.ExecContext(ctx, query, args...)
	return err
}

func (r *Repository) deleteWhere(ctx context.Context, ex execer, table, col string, value interface{}) error {
	db := r.dialect.Flavor.NewDeleteBuilder()
	db.DeleteFrom(table)
	db.Where(db.Equal(col, value))

	query, args := db.Build()
	if _, err := ex.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("clearing %s: %w", table, err)
	}
	return nil
}
