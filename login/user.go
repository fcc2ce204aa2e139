package login

// User is the signed-in user's profile as returned by the login endpoint.
type User struct {
	ID          string              `json:"id"`
	UserName    string              `json:"userName"`
	Email       string              `json:"email"`
	DisplayName string              `json:"displayName,omitempty"`
	Roles       []string            `json:"roles,omitempty"`
	Permissions map[string][]string `json:"permissions,omitempty"`
	IsApproved  bool                `json:"isApproved"`
}

// HasRole reports whether the user is in role.
func (u *User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// HasPermission reports whether the user holds action on section.
func (u *User) HasPermission(section, action string) bool {
	for _, a := range u.Permissions[section] {
		if a == action {
			return true
		}
	}
	return false
}
