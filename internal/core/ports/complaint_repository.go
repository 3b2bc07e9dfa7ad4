package ports

import (
	"context"

	"github.com/cleanvillage/sanitation-system/internal/core/domain"
)

// ComplaintRepository persists the complaints collection. Implementations
// must preserve insertion order on All so list output is stable, and must
// return domain.ErrComplaintNotFound from FindByID/Update on unknown ids.
type ComplaintRepository interface {
	All(ctx context.Context) ([]*domain.Complaint, error)
	FindByID(ctx context.Context, id string) (*domain.Complaint, error)
	Append(ctx context.Context, c *domain.Complaint) error
	// Update replaces the stored record with the same id.
	Update(ctx context.Context, c *domain.Complaint) error
}
