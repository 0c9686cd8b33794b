package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil db")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"kv", "activity_events"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Fatalf("query sqlite_master for %s: %v", table, err)
		}
		if name != table {
			t.Errorf("table name = %q, want %q", name, table)
		}
	}
}

func TestKVGetAbsent(t *testing.T) {
	repo := openTestStore(t).KVRepo()

	v, ok, err := repo.Get(context.Background(), "missing")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok || v != nil {
		t.Errorf("get missing = (%q, %v), want (nil, false)", v, ok)
	}
}

func TestKVPutOverwrite(t *testing.T) {
	repo := openTestStore(t).KVRepo()
	ctx := context.Background()

	if err := repo.Put(ctx, "doc", []byte(`{"a":1}`)); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := repo.Put(ctx, "doc", []byte(`{"a":2}`)); err != nil {
		t.Fatalf("put overwrite: %v", err)
	}

	v, ok, err := repo.Get(ctx, "doc")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok {
		t.Fatal("expected key to exist")
	}
	if string(v) != `{"a":2}` {
		t.Errorf("value = %s, want {\"a\":2}", v)
	}
}

func TestKVDelete(t *testing.T) {
	repo := openTestStore(t).KVRepo()
	ctx := context.Background()

	if err := repo.Put(ctx, "doc", []byte("x")); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := repo.Delete(ctx, "doc"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := repo.Get(ctx, "doc"); ok {
		t.Error("expected key to be gone after delete")
	}

	// Deleting again is fine.
	if err := repo.Delete(ctx, "doc"); err != nil {
		t.Errorf("delete absent: %v", err)
	}
}

func TestKVPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reopen.db")
	ctx := context.Background()

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.KVRepo().Put(ctx, "doc", []byte("kept")); err != nil {
		t.Fatalf("put: %v", err)
	}
	s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()

	v, ok, err := s.KVRepo().Get(ctx, "doc")
	if err != nil || !ok || string(v) != "kept" {
		t.Errorf("get after reopen = (%q, %v, %v)", v, ok, err)
	}
}

func TestActivityAppendAndRecent(t *testing.T) {
	repo := openTestStore(t).EventRepo()
	ctx := context.Background()

	base := time.Now().Truncate(time.Millisecond)
	events := []ActivityEvent{
		{Kind: ActivityLessonCompleted, Subject: "8-math-u0-l1", Timestamp: base},
		{Kind: ActivityQuizScored, Subject: "8-math-u0-q-intro", Score: 100, Timestamp: base},
		{Kind: ActivityLessonCompleted, Subject: "8-math-u0-l2", Timestamp: base.Add(time.Second)},
	}
	for i, ev := range events {
		if err := repo.AppendActivity(ctx, ev); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	got, err := repo.RecentActivity(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("recent len = %d, want 2", len(got))
	}
	if got[0].Subject != "8-math-u0-l2" {
		t.Errorf("newest subject = %q, want 8-math-u0-l2", got[0].Subject)
	}
	if got[1].Kind != ActivityQuizScored || got[1].Score != 100 {
		t.Errorf("second event = %+v, want quiz_scored 100", got[1])
	}
	if got[0].ID == "" || got[0].ID == got[1].ID {
		t.Errorf("expected distinct generated ids, got %q and %q", got[0].ID, got[1].ID)
	}
	if !got[1].Timestamp.Equal(base) {
		t.Errorf("timestamp = %v, want %v", got[1].Timestamp, base)
	}

	all, err := repo.RecentActivity(ctx, 0)
	if err != nil {
		t.Fatalf("recent all: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("all len = %d, want 3", len(all))
	}
}

func TestActivityClear(t *testing.T) {
	repo := openTestStore(t).EventRepo()
	ctx := context.Background()

	if err := repo.AppendActivity(ctx, ActivityEvent{Kind: ActivityLessonCompleted, Subject: "l"}); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := repo.ClearActivity(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	got, err := repo.RecentActivity(ctx, 0)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty log after clear, got %d", len(got))
	}
}

func TestDefaultDBPathEnv(t *testing.T) {
	want := filepath.Join(t.TempDir(), "nested", "custom.db")
	t.Setenv("UNDERGRAD_DB", want)

	got, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("default path: %v", err)
	}
	if got != want {
		t.Errorf("path = %q, want %q", got, want)
	}
}

func TestDefaultDBPathXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("UNDERGRAD_DB", "")
	t.Setenv("XDG_DATA_HOME", dir)

	got, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("default path: %v", err)
	}
	want := filepath.Join(dir, "undergrad", "undergrad.db")
	if got != want {
		t.Errorf("path = %q, want %q", got, want)
	}
}
