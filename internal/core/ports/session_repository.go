package ports

import (
	"context"

	"github.com/cleanvillage/sanitation-system/internal/core/domain"
)

// SessionRepository holds the single current-user marker. It is persisted so
// a session survives a process restart; implementations return
// domain.ErrNoSession from Current when nobody is logged in.
type SessionRepository interface {
	Save(ctx context.Context, user *domain.User) error
	Current(ctx context.Context) (*domain.User, error)
	Clear(ctx context.Context) error
}
