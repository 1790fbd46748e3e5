package models

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the body of POST /auth/register. The server assigns the
// member role to self-registered accounts.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is the success payload of the auth endpoints: an opaque
// bearer token plus the resolved account profile.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
