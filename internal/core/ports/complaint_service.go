package ports

import (
	"context"

	"github.com/cleanvillage/sanitation-system/internal/core/domain"
)

// SubmitComplaintInput is the complaint form payload. Field validation is a
// transport-layer concern; the service trusts its input.
type SubmitComplaintInput struct {
	Name        string
	Village     string
	Category    domain.ComplaintCategory
	Description string
	Image       string // optional attachment reference
}

// ComplaintService implements the complaint lifecycle: submission, manual
// resolution, automatic escalation, and the dashboard aggregates.
type ComplaintService interface {
	Submit(ctx context.Context, input SubmitComplaintInput) (*domain.Complaint, error)
	Get(ctx context.Context, id string) (*domain.Complaint, error)
	// SetStatus overwrites the status of the complaint with the given id.
	// Returns domain.ErrComplaintNotFound when the id is unknown; setting an
	// already-held status succeeds (idempotent resolve).
	SetStatus(ctx context.Context, id string, status domain.ComplaintStatus) error
	List(ctx context.Context) ([]*domain.Complaint, error)
	ListByStatus(ctx context.Context, status domain.ComplaintStatus) ([]*domain.Complaint, error)
	Stats(ctx context.Context) (*domain.ComplaintStats, error)
}
