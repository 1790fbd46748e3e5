package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_Authenticated(t *testing.T) {
	user := &User{ID: "u1", Role: RoleMember}

	tests := []struct {
		name    string
		session Session
		want    bool
	}{
		{"token and user", Session{Token: "tok", User: user}, true},
		{"token only", Session{Token: "tok"}, false},
		{"user only", Session{User: user}, false},
		{"empty", Session{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.session.Authenticated())
		})
	}
}

func TestSession_IsAdmin(t *testing.T) {
	assert.True(t, Session{Token: "tok", User: &User{ID: "u1", Role: RoleAdmin}}.IsAdmin())
	assert.False(t, Session{Token: "tok", User: &User{ID: "u1", Role: RoleMember}}.IsAdmin())
	assert.False(t, Session{}.IsAdmin())
}

func TestUser_IsAdmin(t *testing.T) {
	assert.True(t, User{Role: RoleAdmin}.IsAdmin())
	assert.False(t, User{Role: RoleMember}.IsAdmin())
	assert.False(t, User{Role: "superuser"}.IsAdmin())
}

func TestSession_JSONRoundTrip(t *testing.T) {
	entry := Session{Token: "tok-123", User: &User{ID: "u1", Name: "Alice", Email: "a@b.c", Role: RoleAdmin}}

	data, err := json.Marshal(entry)
	require.NoError(t, err)

	var got Session
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, entry, got)
}
