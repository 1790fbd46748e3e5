package models

// Session is the client-side authentication state: an opaque bearer token
// and the resolved account profile. Both halves must be present for the
// session to count as authenticated — a persisted token without a profile
// is treated as logged out.
type Session struct {
	Token string `json:"token"`
	User  *User  `json:"user,omitempty"`
}

// Authenticated reports whether both the token and the user profile are
// present.
func (s Session) Authenticated() bool {
	return s.Token != "" && s.User != nil
}

// IsAdmin reports whether the session belongs to an admin account. Always
// false for unauthenticated sessions.
func (s Session) IsAdmin() bool {
	return s.User != nil && s.User.IsAdmin()
}
