// Package sqlstoretest holds the repository tests shared by the SQL drivers.
package sqlstoretest

import (
	"context"
	"testing"
	"time"

	"github.com/jbeshir/content-ratings/internal/datasources/sqlstore"
	"github.com/jbeshir/content-ratings/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	Admin  = domain.User{ID: 1, DisplayName: "Ada Admin", Email: "ada@example.com", AuthSubject: "auth0|ada", Role: domain.RoleAdministrator}
	Author = domain.User{ID: 2, DisplayName: "Bo Author", Email: "bo@example.com", Role: domain.RoleAuthor}

	Reviews = domain.Category{ID: 5, Name: "Reviews", Slug: "reviews"}
	News    = domain.Category{ID: 6, Name: "News", Slug: "news"}

	// Databases is matched by slug "db"; DBTips has the name "db" and must lose to it.
	Databases = domain.Tag{ID: 11, Name: "Databases", Slug: "db"}
	DBTips    = domain.Tag{ID: 12, Name: "db", Slug: "database-tips"}
)

var publishedAt = time.Date(2024, 4, 27, 11, 13, 6, 0, time.UTC)

type seededItem struct {
	item   domain.ContentItem
	rating *string
}

func strPtr(s string) *string { return &s }

var seededItems = []seededItem{
	{item: domain.ContentItem{ID: 101, Type: domain.ContentTypePost, Title: "Nine", Body: "Body of nine",
		Author: Author, Categories: []domain.Category{Reviews}, Tags: []domain.Tag{Databases}}, rating: strPtr("9")},
	{item: domain.ContentItem{ID: 102, Type: domain.ContentTypePost, Title: "Ten",
		Author: Admin, Categories: []domain.Category{Reviews}}, rating: strPtr("10")},
	{item: domain.ContentItem{ID: 103, Type: domain.ContentTypePage, Title: "Two",
		Author: Author, Categories: []domain.Category{News}, Tags: []domain.Tag{DBTips}}, rating: strPtr("2")},
	{item: domain.ContentItem{ID: 104, Type: domain.ContentTypePost, Title: "Unrated",
		Author: Author, Categories: []domain.Category{Reviews}}},
	{item: domain.ContentItem{ID: 105, Type: domain.ContentType("attachment"), Title: "Attachment",
		Author: Author, Categories: []domain.Category{Reviews}}, rating: strPtr("10")},
	{item: domain.ContentItem{ID: 106, Type: domain.ContentTypePost, Title: "Blank",
		Author: Author}, rating: strPtr("")},
	{item: domain.ContentItem{ID: 107, Type: domain.ContentTypePost, Title: "Also nine",
		Author: Author, Categories: []domain.Category{News, Reviews}}, rating: strPtr("9")},
}

// Seed stores a fixed set of users, taxonomy and content items.
func Seed(t *testing.T, repo *sqlstore.Repository) {
	t.Helper()
	ctx := context.Background()

	for _, u := range []domain.User{Admin, Author} {
		require.NoError(t, repo.SaveUser(ctx, u))
	}
	for _, c := range []domain.Category{Reviews, News} {
		require.NoError(t, repo.SaveCategory(ctx, c))
	}
	for _, tag := range []domain.Tag{Databases, DBTips} {
		require.NoError(t, repo.SaveTag(ctx, tag))
	}
	for _, s := range seededItems {
		item := s.item
		item.PublishedAt = publishedAt
		require.NoError(t, repo.SaveContentItem(ctx, item))
		if s.rating != nil {
			require.NoError(t, repo.SetContentField(ctx, item.ID, domain.RatingFieldKey, *s.rating))
		}
	}
}

// RunRepositoryTests exercises a repository created by newRepo. Each subtest
// gets a freshly seeded repository.
func RunRepositoryTests(t *testing.T, newRepo func(t *testing.T) *sqlstore.Repository) {
	setup := func(t *testing.T) *sqlstore.Repository {
		repo := newRepo(t)
		Seed(t, repo)
		return repo
	}

	t.Run("content_fields", func(t *testing.T) { testContentFields(t, setup(t)) })
	t.Run("options", func(t *testing.T) { testOptions(t, setup(t)) })
	t.Run("top_rated", func(t *testing.T) { testTopRated(t, setup(t)) })
	t.Run("fetch_content", func(t *testing.T) { testFetchContent(t, setup(t)) })
	t.Run("resolve_tag", func(t *testing.T) { testResolveTag(t, setup(t)) })
	t.Run("categories", func(t *testing.T) { testCategories(t, setup(t)) })
	t.Run("users", func(t *testing.T) { testUsers(t, setup(t)) })
	t.Run("api_tokens", func(t *testing.T) { testAPITokens(t, setup(t)) })
	t.Run("save_content_replaces_taxonomy", func(t *testing.T) { testSaveContentReplacesTaxonomy(t, setup(t)) })
}

func testContentFields(t *testing.T, repo *sqlstore.Repository) {
	ctx := context.Background()

	_, found, err := repo.GetContentField(ctx, 104, domain.RatingFieldKey)
	require.NoError(t, err)
	assert.False(t, found, "unrated item has no field")

	_, found, err = repo.GetContentField(ctx, 9999, domain.RatingFieldKey)
	require.NoError(t, err)
	assert.False(t, found, "missing item has no field")

	value, found, err := repo.GetContentField(ctx, 101, domain.RatingFieldKey)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "9", value)

	require.NoError(t, repo.SetContentField(ctx, 101, domain.RatingFieldKey, "3"))
	value, _, err = repo.GetContentField(ctx, 101, domain.RatingFieldKey)
	require.NoError(t, err)
	assert.Equal(t, "3", value, "set overwrites the prior value")

	require.NoError(t, repo.SetContentField(ctx, 101, domain.RatingFieldKey, "3"))
	value, _, err = repo.GetContentField(ctx, 101, domain.RatingFieldKey)
	require.NoError(t, err)
	assert.Equal(t, "3", value, "setting the same value again is a no-op")
}

func testOptions(t *testing.T, repo *sqlstore.Repository) {
	ctx := context.Background()

	_, found, err := repo.GetOption(ctx, domain.SettingsOptionKey)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, repo.SetOption(ctx, domain.SettingsOptionKey, []byte(`{"rating_scale":5}`)))
	require.NoError(t, repo.SetOption(ctx, domain.SettingsOptionKey, []byte(`{"rating_scale":10}`)))

	value, found, err := repo.GetOption(ctx, domain.SettingsOptionKey)
	require.NoError(t, err)
	assert.True(t, found)
	assert.JSONEq(t, `{"rating_scale":10}`, string(value))
}

func testTopRated(t *testing.T, repo *sqlstore.Repository) {
	cases := []struct {
		name     string
		filters  domain.TopRatedFilters
		limit    int
		expected []domain.RatingEntry
	}{
		{
			name:  "all_numeric_order_with_id_tiebreak",
			limit: 10,
			expected: []domain.RatingEntry{
				{ContentID: 102, Value: "10"},
				{ContentID: 101, Value: "9"},
				{ContentID: 107, Value: "9"},
				{ContentID: 103, Value: "2"},
			},
		},
		{
			name:  "limited",
			limit: 2,
			expected: []domain.RatingEntry{
				{ContentID: 102, Value: "10"},
				{ContentID: 101, Value: "9"},
			},
		},
		{
			name:    "category",
			filters: domain.TopRatedFilters{CategoryID: News.ID},
			limit:   10,
			expected: []domain.RatingEntry{
				{ContentID: 107, Value: "9"},
				{ContentID: 103, Value: "2"},
			},
		},
		{
			name:    "tag",
			filters: domain.TopRatedFilters{TagID: Databases.ID},
			limit:   10,
			expected: []domain.RatingEntry{
				{ContentID: 101, Value: "9"},
			},
		},
		{
			name:     "category_and_tag_disjoint",
			filters:  domain.TopRatedFilters{CategoryID: News.ID, TagID: Databases.ID},
			limit:    10,
			expected: []domain.RatingEntry{},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			results, err := repo.ListTopRatedContent(context.Background(), c.filters, c.limit)
			require.NoError(t, err)
			assert.Equal(t, c.expected, results)
		})
	}
}

func testFetchContent(t *testing.T, repo *sqlstore.Repository) {
	items, err := repo.FetchContentByID(context.Background(), []int64{103, 9999, 101})
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, int64(103), items[0].ID)
	assert.Equal(t, domain.ContentTypePage, items[0].Type)
	assert.Equal(t, []domain.Tag{DBTips}, items[0].Tags)

	nine := items[1]
	assert.Equal(t, "Nine", nine.Title)
	assert.Equal(t, "Body of nine", nine.Body)
	assert.Equal(t, publishedAt, nine.PublishedAt)
	assert.Equal(t, Author.ID, nine.Author.ID)
	assert.Equal(t, "Bo Author", nine.Author.DisplayName)
	assert.Equal(t, "bo@example.com", nine.Author.Email)
	assert.Equal(t, []domain.Category{Reviews}, nine.Categories)
	assert.Equal(t, []domain.Tag{Databases}, nine.Tags)

	none, err := repo.FetchContentByID(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func testResolveTag(t *testing.T, repo *sqlstore.Repository) {
	cases := []struct {
		name      string
		value     string
		expected  domain.Tag
		wantFound bool
	}{
		{name: "slug_wins_over_name", value: "db", expected: Databases, wantFound: true},
		{name: "slug", value: "database-tips", expected: DBTips, wantFound: true},
		{name: "name_case_insensitive", value: "DATABASES", expected: Databases, wantFound: true},
		{name: "unknown", value: "rust", wantFound: false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tag, found, err := repo.ResolveTag(context.Background(), c.value)
			require.NoError(t, err)
			assert.Equal(t, c.wantFound, found)
			if c.wantFound {
				assert.Equal(t, c.expected, tag)
			}
		})
	}
}

func testCategories(t *testing.T, repo *sqlstore.Repository) {
	categories, err := repo.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Category{News, Reviews}, categories)
}

func testUsers(t *testing.T, repo *sqlstore.Repository) {
	ctx := context.Background()

	u, err := repo.GetUser(ctx, Admin.ID)
	require.NoError(t, err)
	assert.Equal(t, Admin, u)

	u, err = repo.GetUserByAuthSubject(ctx, "auth0|ada")
	require.NoError(t, err)
	assert.Equal(t, Admin.ID, u.ID)

	_, err = repo.GetUser(ctx, 404)
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = repo.GetUserByAuthSubject(ctx, "auth0|nobody")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func testAPITokens(t *testing.T, repo *sqlstore.Repository) {
	ctx := context.Background()
	name := "ci"

	require.NoError(t, repo.CreateAPIToken(ctx, "token-1", Admin.ID, "hash-1", "abcd1234", &name, nil))
	expired := time.Now().Add(-time.Hour)
	require.NoError(t, repo.CreateAPIToken(ctx, "token-2", Admin.ID, "hash-2", "efgh5678", nil, &expired))

	token, err := repo.GetAPITokenByHash(ctx, "hash-1")
	require.NoError(t, err)
	assert.Equal(t, "token-1", token.ID)
	assert.Equal(t, Admin.ID, token.UserID)
	require.NotNil(t, token.Name)
	assert.Equal(t, "ci", *token.Name)
	assert.Nil(t, token.LastUsedAt)
	assert.True(t, token.IsActive())

	count, err := repo.CountUserActiveAPITokens(ctx, Admin.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	require.NoError(t, repo.UpdateAPITokenLastUsed(ctx, "token-1"))
	token, err = repo.GetAPITokenByHash(ctx, "hash-1")
	require.NoError(t, err)
	assert.NotNil(t, token.LastUsedAt)

	_, err = repo.GetAPITokenByHash(ctx, "missing")
	require.ErrorIs(t, err, domain.ErrNotFound)

	tokens, err := repo.ListUserAPITokens(ctx, Admin.ID)
	require.NoError(t, err)
	ids := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		ids = append(ids, tok.ID)
	}
	assert.ElementsMatch(t, []string{"token-1", "token-2"}, ids)

	require.ErrorIs(t, repo.RevokeAPIToken(ctx, "token-1", Author.ID), domain.ErrNotFound)
	require.NoError(t, repo.RevokeAPIToken(ctx, "token-1", Admin.ID))
	require.ErrorIs(t, repo.RevokeAPIToken(ctx, "token-1", Admin.ID), domain.ErrNotFound)

	token, err = repo.GetAPITokenByHash(ctx, "hash-1")
	require.NoError(t, err)
	assert.False(t, token.IsActive())

	count, err = repo.CountUserActiveAPITokens(ctx, Admin.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func testSaveContentReplacesTaxonomy(t *testing.T, repo *sqlstore.Repository) {
	ctx := context.Background()

	require.NoError(t, repo.SaveContentItem(ctx, domain.ContentItem{
		ID: 101, Type: domain.ContentTypePost, Title: "Nine, retitled", Author: Author,
		Categories: []domain.Category{News}, PublishedAt: publishedAt,
	}))

	items, err := repo.FetchContentByID(ctx, []int64{101})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Nine, retitled", items[0].Title)
	assert.Equal(t, []domain.Category{News}, items[0].Categories)
	assert.Empty(t, items[0].Tags)

	value, found, err := repo.GetContentField(ctx, 101, domain.RatingFieldKey)
	require.NoError(t, err)
	assert.True(t, found, "saving an item keeps its rating")
	assert.Equal(t, "9", value)
}
