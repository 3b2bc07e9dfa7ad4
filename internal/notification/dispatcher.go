// Package notification formats and records outbound notifications for the
// fixed assigned official. There is no real mail transport in this design:
// "sending" appends to an in-memory, append-only log and emits a structured
// log line. A durable mailbox would slot in behind the same worker.
package notification

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/cleanvillage/sanitation-system/internal/api/metrics"
	"github.com/cleanvillage/sanitation-system/internal/core/domain"
)

const (
	defaultWorkers = 2
	channelBuffer  = 256
)

// Escalator is the deferred re-check the dispatcher arms for every
// submission. The complaint service implements it.
type Escalator interface {
	EscalateIfPending(ctx context.Context, id string) error
}

type job struct {
	kind      domain.NotificationKind
	complaint domain.Complaint
}

// Dispatcher routes notification jobs to a fixed set of workers over a
// buffered channel. Enqueueing never blocks the lifecycle operation that
// triggered it: when the buffer is full the job is dropped and counted.
type Dispatcher struct {
	jobs      chan job
	recipient string
	window    time.Duration
	log       zerolog.Logger
	workers   int

	mu        sync.Mutex
	sent      []domain.Notification
	escalator Escalator
}

// NewDispatcher creates a Dispatcher delivering to recipient and arming
// escalation re-checks after window. If numWorkers <= 0, defaultWorkers is
// used.
func NewDispatcher(numWorkers int, recipient string, window time.Duration, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	return &Dispatcher{
		jobs:      make(chan job, channelBuffer),
		recipient: recipient,
		window:    window,
		log:       log,
		workers:   numWorkers,
	}
}

// BindEscalator wires the deferred escalation target. Called once during
// startup, after the complaint service exists; the dispatcher and the
// service reference each other, so one side binds late.
func (d *Dispatcher) BindEscalator(e Escalator) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.escalator = e
}

// Start launches the worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i := 0; i < d.workers; i++ {
		go d.runWorker(ctx, i)
	}
}

// NotifySubmission records the new-complaint message and schedules the
// overdue re-check.
func (d *Dispatcher) NotifySubmission(c *domain.Complaint) {
	d.enqueue(domain.NotificationSubmission, c)
}

// NotifyEscalation records the overdue message.
func (d *Dispatcher) NotifyEscalation(c *domain.Complaint) {
	d.enqueue(domain.NotificationEscalation, c)
}

// NotifyResolution records the resolved message.
func (d *Dispatcher) NotifyResolution(c *domain.Complaint) {
	d.enqueue(domain.NotificationResolution, c)
}

// Notifications returns a snapshot of the append-only log, oldest first.
func (d *Dispatcher) Notifications() []domain.Notification {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]domain.Notification, len(d.sent))
	copy(out, d.sent)
	return out
}

func (d *Dispatcher) enqueue(kind domain.NotificationKind, c *domain.Complaint) {
	select {
	case d.jobs <- job{kind: kind, complaint: *c}:
	default:
		metrics.NotificationsDroppedTotal.Inc()
		d.log.Warn().Str("complaint_id", c.ID).Str("kind", string(kind)).Msg("notification queue full, dropping")
	}
}

func (d *Dispatcher) runWorker(ctx context.Context, id int) {
	for {
		select {
		case <-ctx.Done():
			return
		case j, ok := <-d.jobs:
			if !ok {
				return
			}
			d.process(ctx, id, j)
		}
	}
}

func (d *Dispatcher) process(ctx context.Context, workerID int, j job) {
	n := d.render(j)

	d.mu.Lock()
	d.sent = append(d.sent, n)
	d.mu.Unlock()

	metrics.NotificationsSentTotal.WithLabelValues(string(n.Kind)).Inc()
	d.log.Info().
		Str("notification_id", n.ID).
		Str("to", n.To).
		Str("subject", n.Subject).
		Str("kind", string(n.Kind)).
		Int("worker_id", workerID).
		Msg("notification recorded")

	if j.kind == domain.NotificationSubmission {
		d.armEscalation(ctx, j.complaint.ID)
	}
}

// armEscalation schedules the fire-once overdue re-check. The timer only
// fires while the process is alive; the lazy on-read sweep in the complaint
// service covers missed wakeups. Resolving a complaint does not cancel the
// timer — the re-check is a no-op once status is no longer pending.
func (d *Dispatcher) armEscalation(ctx context.Context, complaintID string) {
	time.AfterFunc(d.window, func() {
		d.mu.Lock()
		e := d.escalator
		d.mu.Unlock()
		if e == nil || ctx.Err() != nil {
			return
		}
		if err := e.EscalateIfPending(context.Background(), complaintID); err != nil {
			d.log.Error().Err(err).Str("complaint_id", complaintID).Msg("deferred escalation check failed")
		}
	})
}

func (d *Dispatcher) render(j job) domain.Notification {
	c := j.complaint
	n := domain.Notification{
		ID:     uuid.NewString(),
		To:     d.recipient,
		Kind:   j.kind,
		SentAt: time.Now().UTC(),
	}

	switch j.kind {
	case domain.NotificationSubmission:
		n.Subject = fmt.Sprintf("New Complaint Submitted - %s", c.ID)
		n.Body = fmt.Sprintf(
			"A new complaint has been submitted:\n\n"+
				"Complaint ID: %s\nName: %s\nLocation: %s\nType: %s\nDescription: %s\nDate: %s\n\n"+
				"Please review and take appropriate action.",
			c.ID, c.Name, c.Village, c.Category, c.Description, c.DateSubmitted.Format("2006-01-02"),
		)
	case domain.NotificationEscalation:
		n.Subject = fmt.Sprintf("Complaint Overdue - %s", c.ID)
		n.Body = fmt.Sprintf(
			"Complaint %s has been pending since %s and is now overdue.\n\n"+
				"Location: %s\nType: %s\n\nImmediate attention is required.",
			c.ID, c.DateSubmitted.Format("2006-01-02"), c.Village, c.Category,
		)
	case domain.NotificationResolution:
		n.Subject = fmt.Sprintf("Complaint Resolved - %s", c.ID)
		n.Body = fmt.Sprintf(
			"Complaint %s reported at %s has been marked resolved.",
			c.ID, c.Village,
		)
	}

	return n
}
