// Package user contains the account record demo.
// Users are plain values: assigning one copies it, so a mutable copy
// never leaks changes back into the snapshot it was built from.
package user

import "fmt"

type User struct {
	Username    string
	Email       string
	SignInCount uint64
	Active      bool
}

// BuildUser assembles a fully-initialized user from the two identity
// fields, supplying defaults for the rest. It never validates: fresh
// accounts are always active with a single sign-in recorded.
func BuildUser(email, username string) User {
	return User{
		Email:       email,
		Username:    username,
		Active:      true,
		SignInCount: 1,
	}
}

// WithIdentity returns a copy of base carrying a new identity, keeping
// every remaining field. This is the value-type equivalent of struct
// update syntax.
func (u User) WithIdentity(email, username string) User {
	out := u
	out.Email = email
	out.Username = username
	return out
}

func (u User) String() string {
	return fmt.Sprintf(
		"User { username: %q, email: %q, sign_in_count: %d, active: %t }",
		u.Username, u.Email, u.SignInCount, u.Active,
	)
}
