package users

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryRepoUpsertTwiceKeepsID(t *testing.T) {
	repo := NewMemoryRepo()

	first, err := repo.UpsertByEmail(context.Background(), User{
		ID:       "id-1",
		Email:    "jane@example.com",
		Name:     "Jane",
		GoogleID: "g-1",
	})
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	second, err := repo.UpsertByEmail(context.Background(), User{
		ID:       "id-2",
		Email:    "jane@example.com",
		Name:     "Jane Doe",
		ImageURL: "https://example.com/avatar.png",
		GoogleID: "g-1",
	})
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	if second.ID != first.ID {
		t.Fatalf("expected stable id %q, got %q", first.ID, second.ID)
	}
	if second.Name != "Jane Doe" {
		t.Fatalf("expected updated name, got %q", second.Name)
	}
	if second.ImageURL != "https://example.com/avatar.png" {
		t.Fatalf("expected updated image url, got %q", second.ImageURL)
	}
	if !second.UpdatedAt.After(second.CreatedAt) && !second.UpdatedAt.Equal(second.CreatedAt) {
		t.Fatalf("expected UpdatedAt >= CreatedAt")
	}
}

func TestMemoryRepoGetByID(t *testing.T) {
	repo := NewMemoryRepo()

	seeded, err := repo.UpsertByEmail(context.Background(), User{ID: "id-1", Email: "jane@example.com"})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}

	got, err := repo.GetByID(context.Background(), seeded.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Email != "jane@example.com" {
		t.Fatalf("unexpected email %q", got.Email)
	}

	if _, err := repo.GetByID(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
