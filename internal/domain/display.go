package domain

import "fmt"

type DisplayState int

const (
	// DisplayStateEmpty is used when there is no content item to render for.
	DisplayStateEmpty DisplayState = iota
	// DisplayStateUnrated is used when the item has no rating.
	DisplayStateUnrated
	// DisplayStateRated is used when the item has a rating.
	DisplayStateRated
)

type Glyph int

const (
	GlyphFilled Glyph = iota
	GlyphEmpty
)

// RatingDisplay is everything needed to show a rating on a public page.
type RatingDisplay struct {
	State      DisplayState
	Rating     int
	Scale      Scale
	Numeric    string
	Glyphs     []Glyph
	AuthorName string
	AvatarURL  string
}

// NewRatedDisplay builds the display for a rating. The rating is clamped to the
// scale; stored values are not affected.
func NewRatedDisplay(rating int, scale Scale) RatingDisplay {
	if !scale.Valid() {
		scale = DefaultScale
	}
	shown := scale.Clamp(rating)

	glyphs := make([]Glyph, int(scale))
	for i := range glyphs {
		if i < shown {
			glyphs[i] = GlyphFilled
		} else {
			glyphs[i] = GlyphEmpty
		}
	}

	return RatingDisplay{
		State:   DisplayStateRated,
		Rating:  shown,
		Scale:   scale,
		Numeric: fmt.Sprintf("%d / %d", shown, scale),
		Glyphs:  glyphs,
	}
}
