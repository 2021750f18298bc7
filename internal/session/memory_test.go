package session

import (
	"context"
	"testing"
)

func TestMemoryStore_GetPut(t *testing.T) {
	store := NewMemoryStore[string]()

	ctx := context.Background()
	id := "test-id"
	value := "test-value"

	// Test Put
	err := store.Put(ctx, id, value)
	if err != nil {
		t.Fatalf("Unexpected error on Put: %v", err)
	}

	// Test Get existing
	got, ok, err := store.Get(ctx, id)
	if err != nil {
		t.Fatalf("Unexpected error on Get: %v", err)
	}
	if !ok {
		t.Error("Expected value to exist")
	}
	if got != value {
		t.Errorf("Expected value '%s', got '%s'", value, got)
	}

	// Test Get non-existing
	_, ok, err = store.Get(ctx, "non-existent")
	if err != nil {
		t.Fatalf("Unexpected error on Get: %v", err)
	}
	if ok {
		t.Error("Expected value to not exist")
	}
}

func TestMemoryStore_Delete(t *testing.T) {
	store := NewMemoryStore[string]()
	ctx := context.Background()

	if err := store.Put(ctx, "id", "value"); err != nil {
		t.Fatalf("Unexpected error on Put: %v", err)
	}
	if err := store.Delete(ctx, "id"); err != nil {
		t.Fatalf("Unexpected error on Delete: %v", err)
	}
	_, ok, err := store.Get(ctx, "id")
	if err != nil {
		t.Fatalf("Unexpected error on Get: %v", err)
	}
	if ok {
		t.Error("Expected value to be gone after Delete")
	}

	// Deleting a missing key is a no-op
	if err := store.Delete(ctx, "missing"); err != nil {
		t.Errorf("Unexpected error deleting missing key: %v", err)
	}
}

func TestMemoryStore_NewID(t *testing.T) {
	store := NewMemoryStore[int]()

	a := store.NewID()
	b := store.NewID()
	if a == "" || b == "" {
		t.Error("Expected non-empty IDs")
	}
	if a == b {
		t.Error("Expected unique IDs")
	}
}

func TestMemoryStore_Overwrite(t *testing.T) {
	store := NewMemoryStore[int]()
	ctx := context.Background()

	if err := store.Put(ctx, "id", 1); err != nil {
		t.Fatalf("Unexpected error on Put: %v", err)
	}
	if err := store.Put(ctx, "id", 2); err != nil {
		t.Fatalf("Unexpected error on Put: %v", err)
	}
	got, ok, err := store.Get(ctx, "id")
	if err != nil || !ok {
		t.Fatalf("Get: ok=%v err=%v", ok, err)
	}
	if got != 2 {
		t.Errorf("Expected overwritten value 2, got %d", got)
	}
}
