package member_test

import (
	"context"
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/yasintkd/fittrack-lite/internal/adapters/storage"
	memberstore "github.com/yasintkd/fittrack-lite/internal/adapters/storage/member"
	domain "github.com/yasintkd/fittrack-lite/internal/domain/member"
)

// openTestDB creates a migrated in-memory SQLite database for testing.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	if err := storage.MigrateDB(db); err != nil {
		t.Fatalf("MigrateDB failed: %v", err)
	}
	return db
}

func insertMember(t *testing.T, store *memberstore.SQLiteStore, m domain.Member) int64 {
	t.Helper()
	id, err := store.Insert(context.Background(), m)
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	return id
}

// TestSQLiteStore_SearchByName verifies case-insensitive substring matching.
func TestSQLiteStore_SearchByName(t *testing.T) {
	db := openTestDB(t)
	store := memberstore.NewSQLiteStore(db)
	ctx := context.Background()

	insertMember(t, store, domain.Member{Name: "John Smith"})
	insertMember(t, store, domain.Member{Name: "Johanna Doe"})
	insertMember(t, store, domain.Member{Name: "Pete Brown"})

	tests := []struct {
		query string
		want  int
	}{
		{"joh", 2},
		{"JOH", 2},
		{"smith", 1},
		{"brown", 1},
		{"xyz", 0},
		{"", 3},
	}
	for _, tt := range tests {
		got, err := store.SearchByName(ctx, tt.query)
		if err != nil {
			t.Fatalf("SearchByName(%q) failed: %v", tt.query, err)
		}
		if len(got) != tt.want {
			t.Errorf("SearchByName(%q) returned %d members, want %d", tt.query, len(got), tt.want)
		}
	}
}

// TestSQLiteStore_ListByTrainer verifies the trainer filter.
func TestSQLiteStore_ListByTrainer(t *testing.T) {
	db := openTestDB(t)
	store := memberstore.NewSQLiteStore(db)
	ctx := context.Background()

	insertMember(t, store, domain.Member{Name: "A", TrainerID: 5})
	insertMember(t, store, domain.Member{Name: "B", TrainerID: 7})
	insertMember(t, store, domain.Member{Name: "C", TrainerID: 5})
	insertMember(t, store, domain.Member{Name: "D"})

	all, err := store.List(ctx, memberstore.ListFilter{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 4 {
		t.Errorf("unfiltered list has %d members, want 4", len(all))
	}

	mine, err := store.List(ctx, memberstore.ListFilter{TrainerID: 5})
	if err != nil {
		t.Fatalf("filtered List failed: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("trainer 5 list has %d members, want 2", len(mine))
	}
	for _, m := range mine {
		if m.TrainerID != 5 {
			t.Errorf("member %q has trainer %d, want 5", m.Name, m.TrainerID)
		}
	}
}

// TestSQLiteStore_RoundTrip verifies every evolved column survives
// insert/get/update.
func TestSQLiteStore_RoundTrip(t *testing.T) {
	db := openTestDB(t)
	store := memberstore.NewSQLiteStore(db)
	ctx := context.Background()

	id := insertMember(t, store, domain.Member{
		TrainerID:        3,
		Name:             "Ayşe Yılmaz",
		Email:            "ayse@example.com",
		Phone:            "555-0101",
		JoinDate:         "2026-01-15",
		BirthDate:        "2010-04-02",
		Height:           152.5,
		Weight:           44.2,
		BeltLevel:        "green",
		WeightCategory:   "-46kg",
		ParentName:       "Fatma Yılmaz",
		ParentPhone:      "555-0102",
		ParentEmail:      "fatma@example.com",
		RegistrationDate: "2026-01-15",
	})

	got, err := store.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.BeltLevel != "green" || got.ParentPhone != "555-0102" || got.Height != 152.5 {
		t.Errorf("fields not round-tripped: %+v", got)
	}

	got.BeltLevel = "blue"
	got.Weight = 45.1
	if err := store.Update(ctx, got); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	updated, err := store.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID after update failed: %v", err)
	}
	if updated.BeltLevel != "blue" || updated.Weight != 45.1 {
		t.Errorf("update not applied: %+v", updated)
	}
}
