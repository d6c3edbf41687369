package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/jbeshir/content-ratings/internal/datasources"
	"github.com/jbeshir/content-ratings/internal/domain"
	"gopkg.in/yaml.v3"
)

// Fixture is a YAML description of site content used to seed a store.
type Fixture struct {
	Settings   *FixtureSettings  `yaml:"settings"`
	Users      []FixtureUser     `yaml:"users"`
	Categories []FixtureTaxonomy `yaml:"categories"`
	Tags       []FixtureTaxonomy `yaml:"tags"`
	Content    []FixtureContent  `yaml:"content"`
}

type FixtureSettings struct {
	RatingScale int `yaml:"rating_scale"`
}

type FixtureUser struct {
	ID          int64  `yaml:"id"`
	DisplayName string `yaml:"display_name"`
	Email       string `yaml:"email"`
	AuthSubject string `yaml:"auth_subject"`
	Role        string `yaml:"role"`
}

type FixtureTaxonomy struct {
	ID   int64  `yaml:"id"`
	Name string `yaml:"name"`
	Slug string `yaml:"slug"`
}

type FixtureContent struct {
	ID          int64     `yaml:"id"`
	Type        string    `yaml:"type"`
	Title       string    `yaml:"title"`
	Body        string    `yaml:"body"`
	AuthorID    int64     `yaml:"author_id"`
	PublishedAt time.Time `yaml:"published_at"`
	Categories  []int64   `yaml:"categories"`
	Tags        []int64   `yaml:"tags"`
	Rating      *int      `yaml:"rating"`
}

// ParseFixture decodes a fixture, rejecting unknown fields.
func ParseFixture(r io.Reader) (Fixture, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f Fixture
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return Fixture{}, nil
		}
		return Fixture{}, fmt.Errorf("decoding fixture: %w", err)
	}
	return f, nil
}

type ImportFixtureResult struct {
	Users, Categories, Tags, Content, Ratings int
}

// ImportFixture stores the records of a fixture. Ratings are validated
// against the fixture's scale, or the stored scale when the fixture has none.
type ImportFixture struct {
	Saver        datasources.FixtureSaver
	FieldSetter  datasources.ContentFieldSetter
	OptionSetter datasources.OptionSetter
	Settings     Command[Empty, domain.Settings]
}

func NewImportFixture(
	saver datasources.FixtureSaver,
	fieldSetter datasources.ContentFieldSetter,
	optionSetter datasources.OptionSetter,
	settings Command[Empty, domain.Settings],
) *ImportFixture {
	return &ImportFixture{
		Saver:        saver,
		FieldSetter:  fieldSetter,
		OptionSetter: optionSetter,
		Settings:     settings,
	}
}

func (c *ImportFixture) Execute(ctx context.Context, f Fixture) (ImportFixtureResult, error) {
	var result ImportFixtureResult

	scale, err := c.importSettings(ctx, f.Settings)
	if err != nil {
		return result, err
	}

	users := make(map[int64]domain.User, len(f.Users))
	for _, fu := range f.Users {
		role := domain.Role(fu.Role)
		if !slices.Contains(domain.ValidRoles, role) {
			return result, fmt.Errorf("user [%d]: unknown role [%s]", fu.ID, fu.Role)
		}
		u := domain.User{
			ID:          fu.ID,
			DisplayName: fu.DisplayName,
			Email:       fu.Email,
			AuthSubject: fu.AuthSubject,
			Role:        role,
		}
		if err := c.Saver.SaveUser(ctx, u); err != nil {
			return result, fmt.Errorf("importing user: %w", err)
		}
		users[u.ID] = u
		result.Users++
	}

	categories := make(map[int64]domain.Category, len(f.Categories))
	for _, fc := range f.Categories {
		cat := domain.Category{ID: fc.ID, Name: fc.Name, Slug: fc.Slug}
		if err := c.Saver.SaveCategory(ctx, cat); err != nil {
			return result, fmt.Errorf("importing category: %w", err)
		}
		categories[cat.ID] = cat
		result.Categories++
	}

	tags := make(map[int64]domain.Tag, len(f.Tags))
	for _, ft := range f.Tags {
		tag := domain.Tag{ID: ft.ID, Name: ft.Name, Slug: ft.Slug}
		if err := c.Saver.SaveTag(ctx, tag); err != nil {
			return result, fmt.Errorf("importing tag: %w", err)
		}
		tags[tag.ID] = tag
		result.Tags++
	}

	for _, fc := range f.Content {
		item, err := fixtureContentItem(fc, users, categories, tags)
		if err != nil {
			return result, err
		}
		if fc.Rating != nil && (*fc.Rating < 0 || *fc.Rating > int(scale)) {
			return result, fmt.Errorf("content [%d]: %w: %d not in 0-%d",
				fc.ID, domain.ErrRatingOutOfRange, *fc.Rating, scale)
		}

		if err := c.Saver.SaveContentItem(ctx, item); err != nil {
			return result, fmt.Errorf("importing content: %w", err)
		}
		result.Content++

		if fc.Rating != nil {
			rating := domain.RatingOf(*fc.Rating)
			if err := c.FieldSetter.SetContentField(ctx, item.ID, domain.RatingFieldKey, rating.String()); err != nil {
				return result, fmt.Errorf("importing rating: %w", err)
			}
			result.Ratings++
		}
	}

	return result, nil
}

func (c *ImportFixture) importSettings(ctx context.Context, fs *FixtureSettings) (domain.Scale, error) {
	if fs == nil {
		settings, err := c.Settings.Execute(ctx, Empty{})
		if err != nil {
			return 0, fmt.Errorf("loading settings: %w", err)
		}
		return settings.Scale(), nil
	}

	scale := domain.Scale(fs.RatingScale)
	if !scale.Valid() {
		return 0, fmt.Errorf("%w: %d", domain.ErrInvalidScale, fs.RatingScale)
	}
	if err := c.OptionSetter.SetOption(ctx, domain.SettingsOptionKey,
		[]byte(fmt.Sprintf(`{"rating_scale":%d}`, scale))); err != nil {
		return 0, fmt.Errorf("importing settings: %w", err)
	}
	return scale, nil
}

func fixtureContentItem(
	fc FixtureContent,
	users map[int64]domain.User,
	categories map[int64]domain.Category,
	tags map[int64]domain.Tag,
) (domain.ContentItem, error) {
	itemType := domain.ContentType(fc.Type)
	if itemType == "" {
		itemType = domain.ContentTypePost
	}

	item := domain.ContentItem{
		ID:          fc.ID,
		Type:        itemType,
		Title:       fc.Title,
		Body:        fc.Body,
		Author:      domain.User{ID: fc.AuthorID},
		PublishedAt: fc.PublishedAt,
	}
	if u, ok := users[fc.AuthorID]; ok {
		item.Author = u
	}

	for _, id := range fc.Categories {
		cat, ok := categories[id]
		if !ok {
			return domain.ContentItem{}, fmt.Errorf("content [%d]: unknown category [%d]", fc.ID, id)
		}
		item.Categories = append(item.Categories, cat)
	}
	for _, id := range fc.Tags {
		tag, ok := tags[id]
		if !ok {
			return domain.ContentItem{}, fmt.Errorf("content [%d]: unknown tag [%d]", fc.ID, id)
		}
		item.Tags = append(item.Tags, tag)
	}

	return item, nil
}
