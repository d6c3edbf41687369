package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUser_CanEdit(t *testing.T) {
	own := ContentItem{ID: 1, Author: User{ID: 7}}
	other := ContentItem{ID: 2, Author: User{ID: 8}}

	cases := []struct {
		name     string
		user     User
		item     ContentItem
		expected bool
	}{
		{name: "administrator_any", user: User{ID: 1, Role: RoleAdministrator}, item: other, expected: true},
		{name: "editor_any", user: User{ID: 2, Role: RoleEditor}, item: other, expected: true},
		{name: "author_own", user: User{ID: 7, Role: RoleAuthor}, item: own, expected: true},
		{name: "author_other", user: User{ID: 7, Role: RoleAuthor}, item: other, expected: false},
		{name: "subscriber", user: User{ID: 7, Role: RoleSubscriber}, item: own, expected: false},
		{name: "anonymous", user: User{}, item: own, expected: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.user.CanEdit(tc.item))
		})
	}
}

func TestUser_CanAdminister(t *testing.T) {
	assert.True(t, User{Role: RoleAdministrator}.CanAdminister())
	assert.False(t, User{Role: RoleEditor}.CanAdminister())
}
