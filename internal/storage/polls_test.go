package storage

import (
	"path/filepath"
	"testing"
	"time"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := NewDB(filepath.Join(t.TempDir(), "pollwatch.db"))
	if err != nil {
		t.Fatalf("NewDB failed: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.Migrate(); err != nil {
		t.Fatalf("Migrate failed: %v", err)
	}
	return db
}

func TestPollRepository_Create(t *testing.T) {
	repo := NewPollRepository(setupTestDB(t))

	p := &TrackedPoll{
		ChannelID: "111",
		MessageID: "222",
		Question:  "Pick one",
		CloseAt:   time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC),
	}
	if err := repo.Create(p); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if p.ID == 0 {
		t.Error("expected tracked poll ID to be set")
	}
}

func TestPollRepository_GetByMessage(t *testing.T) {
	repo := NewPollRepository(setupTestDB(t))

	closeAt := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)
	repo.Create(&TrackedPoll{ChannelID: "111", MessageID: "222", Question: "Pick one", CloseAt: closeAt})

	p, err := repo.GetByMessage("111", "222")
	if err != nil {
		t.Fatalf("GetByMessage failed: %v", err)
	}
	if p == nil {
		t.Fatal("expected a tracked poll")
	}
	if p.Question != "Pick one" {
		t.Errorf("Question = %q, want %q", p.Question, "Pick one")
	}
	if !p.CloseAt.Equal(closeAt) {
		t.Errorf("CloseAt = %v, want %v", p.CloseAt, closeAt)
	}
	if p.EndedAt != nil {
		t.Errorf("EndedAt = %v, want nil", p.EndedAt)
	}

	missing, err := repo.GetByMessage("111", "999")
	if err != nil {
		t.Fatalf("GetByMessage for missing row failed: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for unknown message, got %+v", missing)
	}
}

func TestPollRepository_ListDue(t *testing.T) {
	repo := NewPollRepository(setupTestDB(t))

	now := time.Now().UTC()
	repo.Create(&TrackedPoll{ChannelID: "111", MessageID: "1", Question: "past", CloseAt: now.Add(-2 * time.Hour)})
	repo.Create(&TrackedPoll{ChannelID: "111", MessageID: "2", Question: "past too", CloseAt: now.Add(-1 * time.Hour)})
	repo.Create(&TrackedPoll{ChannelID: "111", MessageID: "3", Question: "future", CloseAt: now.Add(time.Hour)})

	due, err := repo.ListDue(now)
	if err != nil {
		t.Fatalf("ListDue failed: %v", err)
	}
	if len(due) != 2 {
		t.Fatalf("got %d due polls, want 2", len(due))
	}
	if due[0].MessageID != "1" || due[1].MessageID != "2" {
		t.Errorf("due order = %s, %s; want oldest deadline first", due[0].MessageID, due[1].MessageID)
	}
}

func TestPollRepository_MarkEnded(t *testing.T) {
	repo := NewPollRepository(setupTestDB(t))

	now := time.Now().UTC()
	p := &TrackedPoll{ChannelID: "111", MessageID: "1", Question: "past", CloseAt: now.Add(-time.Hour)}
	repo.Create(p)

	if err := repo.MarkEnded(p.ID, now); err != nil {
		t.Fatalf("MarkEnded failed: %v", err)
	}

	due, err := repo.ListDue(now)
	if err != nil {
		t.Fatalf("ListDue failed: %v", err)
	}
	if len(due) != 0 {
		t.Errorf("got %d due polls after MarkEnded, want 0", len(due))
	}

	got, _ := repo.GetByMessage("111", "1")
	if got.EndedAt == nil {
		t.Error("expected EndedAt to be set")
	}
}
