package models

import "strings"

// LoginForm represents the landing page login form
type LoginForm struct {
	Username string
	Password string
	Remember bool
}

// Validate validates the login form data
func (f *LoginForm) Validate() []string {
	var errors []string
	if strings.TrimSpace(f.Username) == "" {
		errors = append(errors, "Username is required")
	}
	if f.Password == "" {
		errors = append(errors, "Password is required")
	}
	return errors
}

// UserForm represents the admin "add user" form
type UserForm struct {
	Username string
	Password string
	Confirm  string
}

// Validate validates the add user form data
func (f *UserForm) Validate() []string {
	var errors []string

	username := strings.TrimSpace(f.Username)
	if username == "" {
		errors = append(errors, "Username is required")
	}
	if len(username) > 64 {
		errors = append(errors, "Username must be less than 64 characters")
	}
	if strings.ContainsAny(username, " \t:*") {
		errors = append(errors, "Username must not contain spaces, ':' or '*'")
	}

	if f.Password == "" {
		errors = append(errors, "Password is required")
	}
	if f.Password != f.Confirm {
		errors = append(errors, "Passwords do not match")
	}

	return errors
}
