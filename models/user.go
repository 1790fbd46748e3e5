package models

// User roles issued by the server. Anything other than RoleAdmin is treated
// as a regular member by the access policy.
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// User represents the authenticated account profile returned by the auth
// endpoints. It is persisted alongside the bearer token so a restarted
// client can rebuild the session without a profile endpoint.
type User struct {
	// ID is the server-assigned account identifier.
	ID string `json:"id"`

	// Name is the display name shown in the account view.
	Name string `json:"name"`

	// Email is the login identifier.
	Email string `json:"email"`

	// Role controls which views the access policy allows.
	Role string `json:"role"`
}

// IsAdmin reports whether the user holds the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
