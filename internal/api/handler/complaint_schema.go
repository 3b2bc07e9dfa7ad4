package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---
//
// Response types are owned by the transport layer so the JSON contract is
// not coupled to internal service changes. The field names and the category
// and status tokens match the persisted format verbatim.

type submitComplaintRequest struct {
	Name        string `json:"name"        validate:"required"`
	Village     string `json:"village"     validate:"required"`
	Type        string `json:"type"        validate:"required,oneof=overflowingDrains lackOfToilets wasteDisposal waterContamination brokenSewage other"`
	Description string `json:"description" validate:"required"`
	Image       string `json:"image"`
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending resolved overdue"`
}

type complaintResponse struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Village          string     `json:"village"`
	Type             string     `json:"type"`
	Description      string     `json:"description"`
	Image            string     `json:"image,omitempty"`
	Status           string     `json:"status"`
	DateSubmitted    time.Time  `json:"dateSubmitted"`
	AssignedOfficial string     `json:"assignedOfficial,omitempty"`
	Escalated        bool       `json:"escalated,omitempty"`
	EscalationDate   *time.Time `json:"escalationDate,omitempty"`
}

type listComplaintsResponse struct {
	Data  []complaintResponse `json:"data"`
	Total int                 `json:"total"`
}

type statsResponse struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Resolved int `json:"resolved"`
	Overdue  int `json:"overdue"`
}
