package domain

import (
	"errors"
	"time"
)

// ComplaintStatus is the lifecycle state of a complaint.
type ComplaintStatus string

const (
	StatusPending  ComplaintStatus = "pending"
	StatusResolved ComplaintStatus = "resolved"
	StatusOverdue  ComplaintStatus = "overdue"
)

// ComplaintCategory classifies the sanitation issue being reported.
// The string tokens are part of the persisted format and must not change.
type ComplaintCategory string

const (
	CategoryOverflowingDrains  ComplaintCategory = "overflowingDrains"
	CategoryLackOfToilets      ComplaintCategory = "lackOfToilets"
	CategoryWasteDisposal      ComplaintCategory = "wasteDisposal"
	CategoryWaterContamination ComplaintCategory = "waterContamination"
	CategoryBrokenSewage       ComplaintCategory = "brokenSewage"
	CategoryOther              ComplaintCategory = "other"
)

var ErrComplaintNotFound = errors.New("complaint not found")
var ErrInvalidStatus = errors.New("invalid complaint status")
var ErrPersistence = errors.New("persistence failure")

// Valid reports whether s is one of the known lifecycle states.
func (s ComplaintStatus) Valid() bool {
	switch s {
	case StatusPending, StatusResolved, StatusOverdue:
		return true
	}
	return false
}

// Valid reports whether c is one of the known categories.
func (c ComplaintCategory) Valid() bool {
	switch c {
	case CategoryOverflowingDrains, CategoryLackOfToilets, CategoryWasteDisposal,
		CategoryWaterContamination, CategoryBrokenSewage, CategoryOther:
		return true
	}
	return false
}

// Complaint is the core aggregate: a citizen-submitted sanitation issue with
// a lifecycle status. resolved is terminal; overdue is a soft warning state
// that remains resolvable.
type Complaint struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	Village          string            `json:"village"`
	Category         ComplaintCategory `json:"type"`
	Description      string            `json:"description"`
	Image            string            `json:"image,omitempty"`
	Status           ComplaintStatus   `json:"status"`
	DateSubmitted    time.Time         `json:"dateSubmitted"`
	AssignedOfficial string            `json:"assignedOfficial,omitempty"`
	Escalated        bool              `json:"escalated,omitempty"`
	EscalationDate   *time.Time        `json:"escalationDate,omitempty"`
}

// Overdue reports whether a still-pending complaint has aged past the
// escalation window at instant now.
func (c *Complaint) Overdue(now time.Time, window time.Duration) bool {
	return c.Status == StatusPending && now.Sub(c.DateSubmitted) > window
}

// ComplaintStats are the dashboard counters, recomputed on demand.
type ComplaintStats struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Resolved int `json:"resolved"`
	Overdue  int `json:"overdue"`
}
