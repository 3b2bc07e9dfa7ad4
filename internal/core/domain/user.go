package domain

import (
	"errors"
	"time"
)

const (
	RoleCitizen  = "citizen"
	RoleOfficial = "official"
)

var ErrDuplicateUsername = errors.New("username already exists")
var ErrDuplicateEmail = errors.New("email already registered")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrNoSession = errors.New("no active session")

// User models a registered account, either a citizen reporting complaints or
// a municipal official reviewing them. Users are never mutated or deleted
// after registration.
//
// The json tags mirror the persisted collection shape, so a stored users
// collection round-trips field for field.
type User struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	PasswordHash   string    `json:"passwordHash,omitempty"`
	Role           string    `json:"role"`
	Email          string    `json:"email"`
	FullName       string    `json:"fullName"`
	PhoneNumber    string    `json:"phoneNumber"`
	District       string    `json:"district,omitempty"` // expected when role = official
	Village        string    `json:"village,omitempty"`  // expected when role = citizen
	DateRegistered time.Time `json:"dateRegistered"`
}

// Public returns a copy safe to hand to transport layers: the stored
// password hash never leaves the service boundary.
func (u *User) Public() *User {
	clone := *u
	clone.PasswordHash = ""
	return &clone
}
