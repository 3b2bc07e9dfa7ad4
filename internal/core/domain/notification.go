package domain

import "time"

// NotificationKind distinguishes why a notification was produced.
type NotificationKind string

const (
	NotificationSubmission NotificationKind = "complaint_submission"
	NotificationEscalation NotificationKind = "escalation"
	NotificationResolution NotificationKind = "resolution"
)

// Notification is one entry in the dispatcher's append-only outbound log.
// Entries are ephemeral: they live in memory for the lifetime of the process.
type Notification struct {
	ID      string           `json:"id"`
	To      string           `json:"to"`
	Subject string           `json:"subject"`
	Body    string           `json:"body"`
	Kind    NotificationKind `json:"type"`
	SentAt  time.Time        `json:"sentAt"`
}
