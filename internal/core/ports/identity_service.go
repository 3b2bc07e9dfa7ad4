package ports

import (
	"context"

	"github.com/cleanvillage/sanitation-system/internal/core/domain"
)

// RegisterInput carries all data needed to create a new account.
type RegisterInput struct {
	Username    string
	Password    string
	Email       string
	FullName    string
	PhoneNumber string
	Role        string
	District    string // officials
	Village     string // citizens
}

// RegisterResult is returned on successful registration.
type RegisterResult struct {
	User *domain.User
	// Message is the human-readable confirmation shown to the user.
	Message string
}

// IdentityService implements registration, login, and session bookkeeping.
type IdentityService interface {
	Register(ctx context.Context, input RegisterInput) (*RegisterResult, error)
	// Authenticate finds the first user whose username and role match
	// exactly. See the service implementation for the password caveat.
	Authenticate(ctx context.Context, username, password, role string) (*domain.User, error)
	CurrentSession(ctx context.Context) (*domain.User, error)
	StartSession(ctx context.Context, user *domain.User) error
	EndSession(ctx context.Context) error
}
