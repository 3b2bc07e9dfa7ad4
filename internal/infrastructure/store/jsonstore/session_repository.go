package jsonstore

import (
	"context"

	"github.com/cleanvillage/sanitation-system/internal/core/domain"
)

const collectionSession = "session"

// SessionRepository persists the single current-user marker so a session
// survives a process restart.
type SessionRepository struct {
	store *Store
}

func NewSessionRepository(store *Store) *SessionRepository {
	return &SessionRepository{store: store}
}

func (r *SessionRepository) Save(_ context.Context, user *domain.User) error {
	return r.store.Save(collectionSession, user)
}

func (r *SessionRepository) Current(_ context.Context) (*domain.User, error) {
	var user *domain.User
	if err := r.store.Load(collectionSession, &user); err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNoSession
	}
	return user, nil
}

func (r *SessionRepository) Clear(_ context.Context) error {
	return r.store.Save(collectionSession, nil)
}
