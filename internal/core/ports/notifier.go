package ports

import "github.com/cleanvillage/sanitation-system/internal/core/domain"

// Notifier is the outbound notification surface used by the complaint
// lifecycle. Calls are fire-and-forget: they enqueue and return immediately,
// and delivery failure never propagates back into the lifecycle operation.
type Notifier interface {
	NotifySubmission(c *domain.Complaint)
	NotifyEscalation(c *domain.Complaint)
	NotifyResolution(c *domain.Complaint)
}
