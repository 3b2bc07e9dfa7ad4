package jsonstore

import (
	"context"

	"github.com/cleanvillage/sanitation-system/internal/core/domain"
)

const collectionUsers = "users"

// UserRepository keeps registered users in the users collection.
type UserRepository struct {
	store *Store
}

func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) All(_ context.Context) ([]*domain.User, error) {
	var users []*domain.User
	if err := r.store.Load(collectionUsers, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) Append(_ context.Context, user *domain.User) error {
	var users []*domain.User
	return r.store.Mutate(collectionUsers, &users, func() error {
		users = append(users, user)
		return nil
	})
}
