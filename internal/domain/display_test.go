package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRatedDisplay(t *testing.T) {
	cases := []struct {
		name        string
		rating      int
		scale       Scale
		wantNumeric string
		wantFilled  int
		wantEmpty   int
	}{
		{name: "eight_of_ten", rating: 8, scale: Scale10, wantNumeric: "8 / 10", wantFilled: 8, wantEmpty: 2},
		{name: "three_of_five", rating: 3, scale: Scale5, wantNumeric: "3 / 5", wantFilled: 3, wantEmpty: 2},
		{name: "clamped_to_scale", rating: 8, scale: Scale5, wantNumeric: "5 / 5", wantFilled: 5, wantEmpty: 0},
		{name: "zero", rating: 0, scale: Scale5, wantNumeric: "0 / 5", wantFilled: 0, wantEmpty: 5},
		{name: "negative_clamped_to_zero", rating: -2, scale: Scale5, wantNumeric: "0 / 5", wantFilled: 0, wantEmpty: 5},
		{name: "invalid_scale_uses_default", rating: 4, scale: Scale(7), wantNumeric: "4 / 5", wantFilled: 4, wantEmpty: 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := NewRatedDisplay(tc.rating, tc.scale)
			assert.Equal(t, DisplayStateRated, d.State)
			assert.Equal(t, tc.wantNumeric, d.Numeric)
			assert.Len(t, d.Glyphs, tc.wantFilled+tc.wantEmpty)

			// Filled glyphs always come before empty ones.
			for i, g := range d.Glyphs {
				if i < tc.wantFilled {
					assert.Equal(t, GlyphFilled, g, "glyph %d", i)
				} else {
					assert.Equal(t, GlyphEmpty, g, "glyph %d", i)
				}
			}
		})
	}
}
