package user

import (
	"testing"

	"type-lab/errors"

	"github.com/stretchr/testify/require"
)

func TestBuildUser(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		username string
	}{
		{name: "Typical input", email: "someone@example.com", username: "someusername123"},
		{name: "Empty input is accepted unvalidated", email: "", username: ""},
		{name: "Unicode survives untouched", email: "été@example.com", username: "utilisateur"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)

			u := BuildUser(tt.email, tt.username)

			req.Equal(tt.email, u.Email)
			req.Equal(tt.username, u.Username)
			req.True(u.Active)
			req.Equal(uint64(1), u.SignInCount)
		})
	}
}

// Mutating a copy must never show through the snapshot it came from.
// Regression for the mutability lesson: the demo binds a read-only
// snapshot and a mutable copy of the same record.
func TestUser_ValueCopySemantics(t *testing.T) {
	req := require.New(t)

	snapshot := BuildUser("someone@example.com", "someusername123")
	mutable := snapshot

	mutable.Email = "anotheremail@example.com"

	req.Equal("someone@example.com", snapshot.Email)
	req.Equal("anotheremail@example.com", mutable.Email)
	req.Equal(snapshot.Username, mutable.Username)
}

func TestUser_WithIdentity(t *testing.T) {
	req := require.New(t)

	first := BuildUser("someone@example.com", "someusername123")
	second := first.WithIdentity("another@example.com", "anotherusername567")

	req.Equal("another@example.com", second.Email)
	req.Equal("anotherusername567", second.Username)
	// Remaining fields carried over from the base record.
	req.Equal(first.Active, second.Active)
	req.Equal(first.SignInCount, second.SignInCount)
	// The base record itself is untouched.
	req.Equal("someone@example.com", first.Email)
}

func TestValidateRegister(t *testing.T) {
	tests := []struct {
		name    string
		request RegisterRequest
		wantErr bool
	}{
		{
			name:    "Valid request",
			request: RegisterRequest{Email: "someone@example.com", Username: "someusername123"},
			wantErr: false,
		},
		{
			name:    "Malformed email",
			request: RegisterRequest{Email: "not-an-email", Username: "someusername123"},
			wantErr: true,
		},
		{
			name:    "Username too short",
			request: RegisterRequest{Email: "someone@example.com", Username: "ab"},
			wantErr: true,
		},
		{
			name:    "Everything missing",
			request: RegisterRequest{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)

			err := ValidateRegister(tt.request)
			if tt.wantErr {
				req.ErrorIs(err, errors.ErrInvalidRegistration)
				return
			}
			req.NoError(err)
		})
	}
}
