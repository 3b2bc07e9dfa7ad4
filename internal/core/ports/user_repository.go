package ports

import (
	"context"

	"github.com/cleanvillage/sanitation-system/internal/core/domain"
)

// UserRepository persists the registered-users collection. Uniqueness rules
// live in the identity service, which always scans the full population
// (seed users plus registered users) before appending.
type UserRepository interface {
	// All returns every registered user in insertion order.
	All(ctx context.Context) ([]*domain.User, error)
	// Append adds one user to the collection.
	Append(ctx context.Context, user *domain.User) error
}
