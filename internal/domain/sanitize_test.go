package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeText(t *testing.T) {
	cases := []struct {
		name     string
		raw      string
		expected string
	}{
		{name: "plain", raw: "go", expected: "go"},
		{name: "trimmed", raw: "  go  ", expected: "go"},
		{name: "markup_stripped", raw: "<b>go</b>lang", expected: "golang"},
		{name: "script_dropped", raw: `<script>alert(1)</script>7`, expected: "7"},
		{name: "comment_with_angle_bracket", raw: "news<!-- a > b -->", expected: "news"},
		{name: "entities_decoded", raw: "R&amp;D", expected: "R&D"},
		{name: "newlines_collapsed", raw: "web\n\tdev", expected: "web dev"},
		{name: "empty", raw: "", expected: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, SanitizeText(tc.raw))
		})
	}
}

func TestSanitizeTextNestedTags(t *testing.T) {
	for _, raw := range []string{"<scr<script>ipt>x", "<<b>b>go</b>", "a<img src=x onerror=alert(1)//"} {
		t.Run(raw, func(t *testing.T) {
			got := SanitizeText(raw)
			assert.NotContains(t, got, "<script")
			assert.NotContains(t, got, "<img")
			assert.NotContains(t, got, "-->")
		})
	}
}
