package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/cleanvillage/sanitation-system/internal/api/metrics"
	"github.com/cleanvillage/sanitation-system/internal/core/domain"
	"github.com/cleanvillage/sanitation-system/internal/core/ports"
)

// DefaultEscalationWindow is how long a complaint may stay pending before it
// is marked overdue.
const DefaultEscalationWindow = 7 * 24 * time.Hour

// DefaultAssignedOfficial is the fixed recipient every new complaint is
// assigned to. Multi-official routing is out of scope.
const DefaultAssignedOfficial = "kumar@gov.in"

// ComplaintService implements the complaint lifecycle.
//
// Escalation is evaluated lazily: every read path first sweeps the
// collection and flips any pending complaint older than the escalation
// window to overdue. The dispatcher additionally arms a one-shot in-process
// timer per submission, but a missed timer is harmless because the next read
// escalates anyway.
type ComplaintService struct {
	repo     ports.ComplaintRepository
	notifier ports.Notifier
	window   time.Duration
	official string
	ids      *idGenerator
	log      zerolog.Logger
}

func NewComplaintService(repo ports.ComplaintRepository, notifier ports.Notifier, window time.Duration, log zerolog.Logger) *ComplaintService {
	if window <= 0 {
		window = DefaultEscalationWindow
	}
	return &ComplaintService{
		repo:     repo,
		notifier: notifier,
		window:   window,
		official: DefaultAssignedOfficial,
		ids:      newIDGenerator(),
		log:      log,
	}
}

// Submit stores a new pending complaint and dispatches the submission
// notification. Repeated identical submissions always create distinct
// complaints with distinct ids.
func (s *ComplaintService) Submit(ctx context.Context, input ports.SubmitComplaintInput) (*domain.Complaint, error) {
	category := input.Category
	if !category.Valid() {
		category = domain.CategoryOther
	}

	c := &domain.Complaint{
		ID:               s.ids.ComplaintID(),
		Name:             input.Name,
		Village:          input.Village,
		Category:         category,
		Description:      input.Description,
		Image:            input.Image,
		Status:           domain.StatusPending,
		DateSubmitted:    s.ids.now().UTC(),
		AssignedOfficial: s.official,
	}

	if err := s.repo.Append(ctx, c); err != nil {
		s.log.Error().Err(err).Str("complaint_id", c.ID).Msg("failed to store complaint")
		return nil, err
	}

	s.notifier.NotifySubmission(c)
	metrics.ComplaintsSubmittedTotal.WithLabelValues(string(c.Category)).Inc()
	s.log.Info().Str("complaint_id", c.ID).Str("category", string(c.Category)).Str("village", c.Village).Msg("complaint submitted")

	return c, nil
}

// Get returns a single complaint, escalating it first if it aged past the
// window.
func (s *ComplaintService) Get(ctx context.Context, id string) (*domain.Complaint, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.Overdue(s.ids.now(), s.window) {
		if err := s.escalate(ctx, c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// SetStatus overwrites the status of the complaint with the given id.
// Unknown ids fail with domain.ErrComplaintNotFound and mutate nothing.
// Re-resolving a resolved complaint succeeds and leaves it resolved.
func (s *ComplaintService) SetStatus(ctx context.Context, id string, status domain.ComplaintStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidStatus, status)
	}

	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	previous := c.Status
	c.Status = status
	if err := s.repo.Update(ctx, c); err != nil {
		return err
	}

	if status == domain.StatusResolved && previous != domain.StatusResolved {
		metrics.ComplaintsResolvedTotal.Inc()
		s.notifier.NotifyResolution(c)
	}
	s.log.Info().Str("complaint_id", id).Str("from", string(previous)).Str("to", string(status)).Msg("complaint status updated")

	return nil
}

// List returns every complaint in storage order.
func (s *ComplaintService) List(ctx context.Context) ([]*domain.Complaint, error) {
	return s.refresh(ctx)
}

// ListByStatus filters complaints by status, preserving storage order.
func (s *ComplaintService) ListByStatus(ctx context.Context, status domain.ComplaintStatus) ([]*domain.Complaint, error) {
	all, err := s.refresh(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*domain.Complaint, 0, len(all))
	for _, c := range all {
		if c.Status == status {
			out = append(out, c)
		}
	}
	return out, nil
}

// Stats recomputes the dashboard counters with a full scan. O(n) per call is
// fine at the hundreds-to-low-thousands scale this service runs at.
func (s *ComplaintService) Stats(ctx context.Context) (*domain.ComplaintStats, error) {
	all, err := s.refresh(ctx)
	if err != nil {
		return nil, err
	}
	stats := &domain.ComplaintStats{Total: len(all)}
	for _, c := range all {
		switch c.Status {
		case domain.StatusPending:
			stats.Pending++
		case domain.StatusResolved:
			stats.Resolved++
		case domain.StatusOverdue:
			stats.Overdue++
		}
	}
	return stats, nil
}

// EscalateIfPending is the deferred re-check armed at submission time. It is
// a no-op unless the complaint is still pending past the window. There is no
// cancellation hook: resolving a complaint simply makes the armed check do
// nothing.
func (s *ComplaintService) EscalateIfPending(ctx context.Context, id string) error {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !c.Overdue(s.ids.now(), s.window) {
		return nil
	}
	return s.escalate(ctx, c)
}

// refresh loads every complaint and applies the lazy escalation sweep.
func (s *ComplaintService) refresh(ctx context.Context) ([]*domain.Complaint, error) {
	all, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}
	now := s.ids.now()
	for _, c := range all {
		if c.Overdue(now, s.window) {
			if err := s.escalate(ctx, c); err != nil {
				return nil, err
			}
		}
	}
	return all, nil
}

func (s *ComplaintService) escalate(ctx context.Context, c *domain.Complaint) error {
	now := s.ids.now().UTC()
	c.Status = domain.StatusOverdue
	c.Escalated = true
	c.EscalationDate = &now

	if err := s.repo.Update(ctx, c); err != nil {
		return fmt.Errorf("escalate %s: %w", c.ID, err)
	}

	metrics.ComplaintsEscalatedTotal.Inc()
	s.notifier.NotifyEscalation(c)
	s.log.Warn().Str("complaint_id", c.ID).Time("submitted", c.DateSubmitted).Msg("complaint escalated to overdue")

	return nil
}
