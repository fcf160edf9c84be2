package db

import (
	"database/sql"
	"path/filepath"
	"testing"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "clips.db")
	database, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return database
}

func TestInsertAndGetClip(t *testing.T) {
	database := testDB(t)

	id, err := InsertClip(database, Clip{
		Title:     "Married Life (cut)",
		ShowTitle: "Up",
		Thumbnail: "https://i.ytimg.com/vi/abc/hq.jpg",
		Emotion:   "Sad",
		Category:  "Drama",
		VideoURL:  "https://media.example.com/static/out.mp4",
		StartTime: 0,
		EndTime:   15,
	})
	if err != nil {
		t.Fatalf("InsertClip: %v", err)
	}

	got, err := GetClip(database, id)
	if err != nil {
		t.Fatalf("GetClip: %v", err)
	}
	if got.Title != "Married Life (cut)" {
		t.Errorf("title = %q", got.Title)
	}
	if got.Emotion != "Sad" || got.Category != "Drama" {
		t.Errorf("emotion/category = %q/%q", got.Emotion, got.Category)
	}
	if got.Duration() != 15 {
		t.Errorf("duration = %v, want 15", got.Duration())
	}
}

func TestListClips_NewestFirst(t *testing.T) {
	database := testDB(t)

	for _, title := range []string{"first", "second", "third"} {
		if _, err := InsertClip(database, Clip{Title: title, VideoURL: "https://x/v.mp4", EndTime: 10}); err != nil {
			t.Fatalf("InsertClip: %v", err)
		}
	}

	clips, err := ListClips(database)
	if err != nil {
		t.Fatalf("ListClips: %v", err)
	}
	if len(clips) != 3 {
		t.Fatalf("len = %d, want 3", len(clips))
	}
	if clips[0].Title != "third" {
		t.Errorf("clips[0] = %q, want newest first", clips[0].Title)
	}
}

func TestFilterClips(t *testing.T) {
	database := testDB(t)

	titles := []string{"Epic chase scene", "Sad goodbye", "Epic final battle"}
	for _, title := range titles {
		if _, err := InsertClip(database, Clip{Title: title, VideoURL: "https://x/v.mp4", EndTime: 10}); err != nil {
			t.Fatalf("InsertClip: %v", err)
		}
	}

	tests := []struct {
		filter string
		want   int
	}{
		{"epic", 2},
		{"GOODBYE", 1},
		{"", 3},
		{"nothing", 0},
	}

	for _, tt := range tests {
		clips, err := FilterClips(database, tt.filter)
		if err != nil {
			t.Fatalf("FilterClips(%q): %v", tt.filter, err)
		}
		if len(clips) != tt.want {
			t.Errorf("FilterClips(%q) = %d clips, want %d", tt.filter, len(clips), tt.want)
		}
	}
}

func TestDeleteClip(t *testing.T) {
	database := testDB(t)

	id, err := InsertClip(database, Clip{Title: "doomed", VideoURL: "https://x/v.mp4", EndTime: 5})
	if err != nil {
		t.Fatalf("InsertClip: %v", err)
	}

	if err := DeleteClip(database, id); err != nil {
		t.Fatalf("DeleteClip: %v", err)
	}

	if _, err := GetClip(database, id); err != sql.ErrNoRows {
		t.Errorf("GetClip after delete = %v, want sql.ErrNoRows", err)
	}
}

func TestOpen_Idempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "clips.db")

	first, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	first.Close()

	// Re-opening must re-run migrations without error.
	second, err := Open(dbPath)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	second.Close()
}
