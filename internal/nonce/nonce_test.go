package nonce

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssuer_Verify(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	issuer, err := NewIssuer("test-secret")
	require.NoError(t, err)
	issuer = issuer.WithClock(func() time.Time { return now })

	token, err := issuer.Issue(7, SaveRatingScope(42))
	require.NoError(t, err)

	other, err := NewIssuer("other-secret")
	require.NoError(t, err)
	forged, err := other.WithClock(func() time.Time { return now }).Issue(7, SaveRatingScope(42))
	require.NoError(t, err)

	cases := []struct {
		name     string
		verifier *Issuer
		token    string
		userID   int64
		scope    string
		expected bool
	}{
		{name: "valid", verifier: issuer, token: token, userID: 7, scope: SaveRatingScope(42), expected: true},
		{name: "empty_token", verifier: issuer, token: "", userID: 7, scope: SaveRatingScope(42), expected: false},
		{name: "garbage_token", verifier: issuer, token: "not-a-token", userID: 7, scope: SaveRatingScope(42), expected: false},
		{name: "other_user", verifier: issuer, token: token, userID: 8, scope: SaveRatingScope(42), expected: false},
		{name: "other_item", verifier: issuer, token: token, userID: 7, scope: SaveRatingScope(43), expected: false},
		{name: "other_action", verifier: issuer, token: token, userID: 7, scope: ScopeUpdateSettings, expected: false},
		{name: "other_secret", verifier: issuer, token: forged, userID: 7, scope: SaveRatingScope(42), expected: false},
		{
			name:     "expired",
			verifier: issuer.WithClock(func() time.Time { return now.Add(Lifetime + time.Minute) }),
			token:    token,
			userID:   7,
			scope:    SaveRatingScope(42),
			expected: false,
		},
		{
			name:     "still_valid_before_expiry",
			verifier: issuer.WithClock(func() time.Time { return now.Add(Lifetime - time.Minute) }),
			token:    token,
			userID:   7,
			scope:    SaveRatingScope(42),
			expected: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.verifier.Verify(tc.token, tc.userID, tc.scope))
		})
	}
}

func TestNewIssuer_EmptySecret(t *testing.T) {
	_, err := NewIssuer("")
	require.Error(t, err)
}
