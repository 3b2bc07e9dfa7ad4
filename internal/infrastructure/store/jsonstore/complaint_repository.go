package jsonstore

import (
	"context"

	"github.com/cleanvillage/sanitation-system/internal/core/domain"
)

const collectionComplaints = "complaints"

// ComplaintRepository keeps complaints in the complaints collection,
// preserving insertion order.
type ComplaintRepository struct {
	store *Store
}

func NewComplaintRepository(store *Store) *ComplaintRepository {
	return &ComplaintRepository{store: store}
}

func (r *ComplaintRepository) All(_ context.Context) ([]*domain.Complaint, error) {
	var complaints []*domain.Complaint
	if err := r.store.Load(collectionComplaints, &complaints); err != nil {
		return nil, err
	}
	return complaints, nil
}

func (r *ComplaintRepository) FindByID(ctx context.Context, id string) (*domain.Complaint, error) {
	complaints, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range complaints {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, domain.ErrComplaintNotFound
}

func (r *ComplaintRepository) Append(_ context.Context, c *domain.Complaint) error {
	var complaints []*domain.Complaint
	return r.store.Mutate(collectionComplaints, &complaints, func() error {
		complaints = append(complaints, c)
		return nil
	})
}

func (r *ComplaintRepository) Update(_ context.Context, c *domain.Complaint) error {
	var complaints []*domain.Complaint
	return r.store.Mutate(collectionComplaints, &complaints, func() error {
		for i, existing := range complaints {
			if existing.ID == c.ID {
				complaints[i] = c
				return nil
			}
		}
		return domain.ErrComplaintNotFound
	})
}
