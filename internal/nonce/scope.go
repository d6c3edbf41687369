package nonce

import "strconv"

// ScopeUpdateSettings guards the settings form.
const ScopeUpdateSettings = "update_settings"

// SaveRatingScope guards the rating form of one content item.
func SaveRatingScope(contentID int64) string {
	return "save_rating:" + strconv.FormatInt(contentID, 10)
}
