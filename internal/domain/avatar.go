package domain

import (
	"crypto/md5"
	"encoding/hex"
	"net/url"
	"strconv"
	"strings"
)

// AvatarSize is the edge length in pixels of author photos next to ratings.
const AvatarSize = 32

// AvatarURL returns the Gravatar image URL for an email address.
func AvatarURL(email string, size int) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email)))) //nolint:gosec // Gravatar keys images by MD5
	q := url.Values{}
	q.Set("s", strconv.Itoa(size))
	q.Set("d", "mm")
	return "https://www.gravatar.com/avatar/" + hex.EncodeToString(sum[:]) + "?" + q.Encode()
}
