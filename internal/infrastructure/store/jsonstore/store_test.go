package jsonstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cleanvillage/sanitation-system/internal/core/domain"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	return store
}

func TestComplaintRepository_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	store, err := Open(dir)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	repo := NewComplaintRepository(store)
	ctx := context.Background()

	submitted := time.Date(2026, time.February, 10, 9, 30, 0, 0, time.UTC)
	c := &domain.Complaint{
		ID:               "CPL-1714501223000",
		Name:             "Ravi",
		Village:          "Warangal Rural",
		Category:         domain.CategoryWasteDisposal,
		Description:      "Garbage pile near the well",
		Status:           domain.StatusPending,
		DateSubmitted:    submitted,
		AssignedOfficial: "kumar@gov.in",
	}
	if err := repo.Append(ctx, c); err != nil {
		t.Fatalf("Append returned error: %v", err)
	}

	// Reopen to prove the data survived on disk.
	store2, err := Open(dir)
	if err != nil {
		t.Fatalf("reopen returned error: %v", err)
	}
	repo2 := NewComplaintRepository(store2)

	got, err := repo2.FindByID(ctx, c.ID)
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}
	if got.Village != c.Village || got.Category != c.Category || got.Status != c.Status {
		t.Fatalf("record corrupted: %+v", got)
	}
	if !got.DateSubmitted.Equal(submitted) {
		t.Fatalf("timestamp corrupted: %v", got.DateSubmitted)
	}
}

func TestComplaintRepository_EmptyCollection(t *testing.T) {
	repo := NewComplaintRepository(openTestStore(t))

	all, err := repo.All(context.Background())
	if err != nil {
		t.Fatalf("All returned error: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("expected empty collection, got %d records", len(all))
	}

	if _, err := repo.FindByID(context.Background(), "CPL-1"); !errors.Is(err, domain.ErrComplaintNotFound) {
		t.Fatalf("expected ErrComplaintNotFound, got %v", err)
	}
}

func TestComplaintRepository_UpdateUnknownIDSavesNothing(t *testing.T) {
	repo := NewComplaintRepository(openTestStore(t))
	ctx := context.Background()

	if err := repo.Append(ctx, &domain.Complaint{ID: "CPL-1", Status: domain.StatusPending}); err != nil {
		t.Fatalf("Append returned error: %v", err)
	}

	err := repo.Update(ctx, &domain.Complaint{ID: "CPL-2", Status: domain.StatusResolved})
	if !errors.Is(err, domain.ErrComplaintNotFound) {
		t.Fatalf("expected ErrComplaintNotFound, got %v", err)
	}

	got, err := repo.FindByID(ctx, "CPL-1")
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}
	if got.Status != domain.StatusPending {
		t.Fatalf("failed update mutated the collection")
	}
}

func TestComplaintRepository_PreservesInsertionOrder(t *testing.T) {
	repo := NewComplaintRepository(openTestStore(t))
	ctx := context.Background()

	ids := []string{"CPL-1", "CPL-2", "CPL-3"}
	for _, id := range ids {
		if err := repo.Append(ctx, &domain.Complaint{ID: id, Status: domain.StatusPending}); err != nil {
			t.Fatalf("Append returned error: %v", err)
		}
	}

	all, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("All returned error: %v", err)
	}
	for i, id := range ids {
		if all[i].ID != id {
			t.Fatalf("order broken at %d: got %s", i, all[i].ID)
		}
	}
}

func TestUserRepository_AppendAndAll(t *testing.T) {
	repo := NewUserRepository(openTestStore(t))
	ctx := context.Background()

	u := &domain.User{
		ID:             "user_1714501223000",
		Username:       "alice",
		PasswordHash:   "$2a$10$abcdefghijklmnopqrstuv",
		Role:           domain.RoleCitizen,
		Email:          "alice@example.com",
		DateRegistered: time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC),
	}
	if err := repo.Append(ctx, u); err != nil {
		t.Fatalf("Append returned error: %v", err)
	}

	all, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("All returned error: %v", err)
	}
	if len(all) != 1 || all[0].Username != "alice" {
		t.Fatalf("unexpected users: %+v", all)
	}
	if all[0].PasswordHash != u.PasswordHash {
		t.Fatalf("password hash must persist at rest")
	}
}

func TestSessionRepository_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	store, err := Open(dir)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	repo := NewSessionRepository(store)
	ctx := context.Background()

	if _, err := repo.Current(ctx); !errors.Is(err, domain.ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}

	if err := repo.Save(ctx, &domain.User{ID: "1", Username: "john_user", Role: domain.RoleCitizen}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	store2, err := Open(dir)
	if err != nil {
		t.Fatalf("reopen returned error: %v", err)
	}
	repo2 := NewSessionRepository(store2)

	current, err := repo2.Current(ctx)
	if err != nil {
		t.Fatalf("Current returned error: %v", err)
	}
	if current.Username != "john_user" {
		t.Fatalf("unexpected session user: %+v", current)
	}

	if err := repo2.Clear(ctx); err != nil {
		t.Fatalf("Clear returned error: %v", err)
	}
	if _, err := repo2.Current(ctx); !errors.Is(err, domain.ErrNoSession) {
		t.Fatalf("expected ErrNoSession after Clear, got %v", err)
	}
}
