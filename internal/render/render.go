// Package render turns ratings and content bodies into HTML.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/jbeshir/content-ratings/internal/domain"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// RatingTag is replaced by the rating fragment of the item being rendered.
const RatingTag = "[wpcr_rating]"

// NoRatingFragment is shown for items without a rating.
const NoRatingFragment template.HTML = `<span class="wpcr-no-rating">No editor rating.</span>`

const (
	filledGlyph = "★"
	emptyGlyph  = "☆"
)

//go:embed templates/rating.html
var templateFS embed.FS

var ratingTemplate = template.Must(template.New("rating.html").Funcs(template.FuncMap{
	"glyph":      glyphText,
	"avatarSize": func() int { return domain.AvatarSize },
}).ParseFS(templateFS, "templates/rating.html"))

var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM, ratingTags{}))

func glyphText(g domain.Glyph) string {
	if g == domain.GlyphFilled {
		return filledGlyph
	}
	return emptyGlyph
}

// Fragment renders a rating display. The empty state renders nothing.
func Fragment(d domain.RatingDisplay) (template.HTML, error) {
	switch d.State {
	case domain.DisplayStateEmpty:
		return "", nil
	case domain.DisplayStateUnrated:
		return NoRatingFragment, nil
	}

	var buf bytes.Buffer
	if err := ratingTemplate.Execute(&buf, d); err != nil {
		return "", fmt.Errorf("executing rating template: %w", err)
	}
	return template.HTML(buf.String()), nil //nolint:gosec // output of html/template
}

// Markdown converts a content body to HTML. Raw HTML in the source is
// omitted and rating tags are left as text.
func Markdown(src string) (template.HTML, error) {
	return convert(src, parser.NewContext())
}

// Body renders a markdown content body with the rating tags in its text
// expanded to fragment. A tag standing alone in a paragraph replaces the
// whole paragraph.
func Body(src string, fragment template.HTML) (template.HTML, error) {
	pc := parser.NewContext()
	pc.Set(fragmentKey, fragment)
	return convert(src, pc)
}

func convert(src string, pc parser.Context) (template.HTML, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf, parser.WithContext(pc)); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	return template.HTML(buf.String()), nil //nolint:gosec // goldmark escapes text and drops raw HTML
}
