package domain

// Role is the capability level of a user.
type Role string

const (
	RoleAdministrator Role = "administrator"
	RoleEditor        Role = "editor"
	RoleAuthor        Role = "author"
	RoleSubscriber    Role = "subscriber"
)

var ValidRoles = []Role{
	RoleAdministrator,
	RoleEditor,
	RoleAuthor,
	RoleSubscriber,
}

// User is an account of the content site. Content authors and request actors
// are both users.
type User struct {
	ID          int64  `json:"id"`
	DisplayName string `json:"display_name"`
	Email       string `json:"-"`
	AuthSubject string `json:"-"`
	Role        Role   `json:"-"`
}

// CanAdminister reports whether the user may change site-wide settings and
// view the ratings overview.
func (u User) CanAdminister() bool {
	return u.Role == RoleAdministrator
}

// CanEdit reports whether the user may change the given content item.
// Authors may only edit their own items.
func (u User) CanEdit(item ContentItem) bool {
	switch u.Role {
	case RoleAdministrator, RoleEditor:
		return true
	case RoleAuthor:
		return u.ID != 0 && item.Author.ID == u.ID
	default:
		return false
	}
}

// AuthMethod records how a request was authenticated.
type AuthMethod string

const (
	AuthMethodAuth0    AuthMethod = "auth0"
	AuthMethodAPIToken AuthMethod = "api_token"
)
