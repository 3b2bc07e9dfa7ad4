package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/cleanvillage/sanitation-system/internal/core/domain"
)

func TestHygieneHandler_DefaultsToEnglish(t *testing.T) {
	h := NewHygieneHandler()
	c, rec := newTestContext(t, http.MethodGet, "/v1/hygiene", "")

	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp hygieneResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Language != "en" || resp.Title != "Hygiene Instructions" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	if len(resp.Sections) != 4 {
		t.Fatalf("expected 4 sections, got %d", len(resp.Sections))
	}
	if resp.Sections[0].ID != "handwashing" || len(resp.Sections[0].Steps) != 5 {
		t.Fatalf("unexpected first section: %+v", resp.Sections[0])
	}
}

func TestHygieneHandler_Telugu(t *testing.T) {
	h := NewHygieneHandler()
	c, rec := newTestContext(t, http.MethodGet, "/v1/hygiene?lang=te", "")

	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp hygieneResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Language != "te" {
		t.Fatalf("expected Telugu payload, got %q", resp.Language)
	}
	if resp.Sections[0].Title == hygieneEnglish.Sections[0].Title {
		t.Fatalf("Telugu payload carries English titles")
	}
}

func TestHygieneHandler_UnknownLanguageFallsBack(t *testing.T) {
	h := NewHygieneHandler()
	c, rec := newTestContext(t, http.MethodGet, "/v1/hygiene?lang=fr", "")

	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp hygieneResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Language != "en" {
		t.Fatalf("expected English fallback, got %q", resp.Language)
	}
}

type stubNotificationLog struct {
	entries []domain.Notification
}

func (s *stubNotificationLog) Notifications() []domain.Notification {
	return s.entries
}

func TestNotificationHandler_List(t *testing.T) {
	log := &stubNotificationLog{entries: []domain.Notification{
		{ID: "n1", To: "kumar@gov.in", Kind: domain.NotificationSubmission, Subject: "New Complaint Submitted - CPL-1"},
		{ID: "n2", To: "kumar@gov.in", Kind: domain.NotificationResolution, Subject: "Complaint Resolved - CPL-1"},
	}}
	h := NewNotificationHandler(log)

	c, rec := newTestContext(t, http.MethodGet, "/v1/notifications", "")

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Data  []map[string]any `json:"data"`
		Total int              `json:"total"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Total != 2 || len(resp.Data) != 2 {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	if resp.Data[0]["type"] != "complaint_submission" {
		t.Fatalf("unexpected kind: %v", resp.Data[0]["type"])
	}
}
