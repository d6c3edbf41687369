package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// RatingFieldKey is the content metadata field holding the editor rating.
const RatingFieldKey = "editor_rating"

// Rating is an optional editor rating. The zero value is unrated, which is
// distinct from a rating of 0.
type Rating struct {
	Value int  `json:"value"`
	Rated bool `json:"rated"`
}

func RatingOf(value int) Rating {
	return Rating{Value: value, Rated: true}
}

// ParseRating converts a stored field value into a rating. Empty or
// non-integer text is treated as unrated.
func ParseRating(raw string) Rating {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Rating{}
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return Rating{}
	}
	return RatingOf(v)
}

// String returns the canonical stored form of the rating, or "" when unrated.
func (r Rating) String() string {
	if !r.Rated {
		return ""
	}
	return strconv.Itoa(r.Value)
}

// Scale is the number of points a rating is given out of.
type Scale int

const (
	Scale5  Scale = 5
	Scale10 Scale = 10

	DefaultScale = Scale5
)

var ValidScales = []Scale{Scale5, Scale10}

func (s Scale) Valid() bool {
	return s == Scale5 || s == Scale10
}

// Clamp restricts v to [0, s].
func (s Scale) Clamp(v int) int {
	return max(0, min(v, int(s)))
}

// ParseScale accepts only the enumerated scales.
func ParseScale(raw string) (Scale, error) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidScale, raw)
	}
	s := Scale(v)
	if !s.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidScale, v)
	}
	return s, nil
}

// UnmarshalJSON accepts the scale as a number or as a decimal string.
func (s *Scale) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*s = Scale(n)
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("decoding rating scale: %w", err)
	}
	n, err := strconv.Atoi(str)
	if err != nil {
		return fmt.Errorf("decoding rating scale %q: %w", str, err)
	}
	*s = Scale(n)
	return nil
}

// SettingsOptionKey is the global option holding Settings.
const SettingsOptionKey = "content_ratings_settings"

// Settings is the site-wide rating configuration.
type Settings struct {
	RatingScale Scale `json:"rating_scale"`
}

func DefaultSettings() Settings {
	return Settings{RatingScale: DefaultScale}
}

// Scale returns the configured scale, falling back to the default when the
// stored value is not one of the valid scales.
func (s Settings) Scale() Scale {
	if !s.RatingScale.Valid() {
		return DefaultScale
	}
	return s.RatingScale
}
