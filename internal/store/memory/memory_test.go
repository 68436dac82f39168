package memory

import (
	"context"
	"strconv"
	"testing"

	"expensetracker/internal/core"
	"expensetracker/internal/store"
)

func TestInsertAndFindAll(t *testing.T) {
	s := New()
	ctx := context.Background()

	tx := core.Transaction{ID: "t1", Date: "2024-01-01", Category: "Food", Amount: 50, Type: core.Expense}
	if err := s.Insert(ctx, tx); err != nil {
		t.Fatalf("insert: %v", err)
	}

	items, err := s.FindAll(ctx)
	if err != nil {
		t.Fatalf("find all: %v", err)
	}
	if len(items) != 1 || items[0].ID != "t1" {
		t.Fatalf("unexpected items %+v", items)
	}

	// Mutating the returned slice must not affect the store.
	items[0].Category = "changed"
	again, _ := s.FindAll(ctx)
	if again[0].Category != "Food" {
		t.Fatalf("store mutated through returned slice")
	}
}

func TestDeleteByID(t *testing.T) {
	s := New()
	ctx := context.Background()
	_ = s.Insert(ctx, core.Transaction{ID: "t1"})
	_ = s.Insert(ctx, core.Transaction{ID: "t2"})

	deleted, err := s.DeleteByID(ctx, "t1")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if deleted != 1 {
		t.Fatalf("deleted = %d, want 1", deleted)
	}

	items, _ := s.FindAll(ctx)
	if len(items) != 1 || items[0].ID != "t2" {
		t.Fatalf("unexpected items after delete %+v", items)
	}
}

func TestDeleteByIDNotFound(t *testing.T) {
	s := New()
	ctx := context.Background()
	_ = s.Insert(ctx, core.Transaction{ID: "t1"})

	deleted, err := s.DeleteByID(ctx, "missing")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if deleted != 0 {
		t.Fatalf("deleted = %d, want 0", deleted)
	}
	items, _ := s.FindAll(ctx)
	if len(items) != 1 {
		t.Fatalf("store changed by failed delete: %d items", len(items))
	}
}

func TestFindAllFetchLimit(t *testing.T) {
	s := New()
	ctx := context.Background()
	for i := 0; i < store.FetchLimit+5; i++ {
		_ = s.Insert(ctx, core.Transaction{ID: strconv.Itoa(i)})
	}
	items, err := s.FindAll(ctx)
	if err != nil {
		t.Fatalf("find all: %v", err)
	}
	if len(items) != store.FetchLimit {
		t.Fatalf("len = %d, want %d", len(items), store.FetchLimit)
	}
}
