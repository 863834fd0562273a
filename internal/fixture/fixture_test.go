package fixture

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestParse(t *testing.T) {
	data := []byte(`
comments:
  - id: 2b7f2c0e-8d6a-4a6e-9a3e-5b8c7d1e0f11
    message: first
    created_at: 2020-05-20T11:24:59Z
    author: alice
  - message: second
    created_at: 2020-05-21T08:00:00+02:00
    author: bob
`)

	comments, err := Parse(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(comments) != 2 {
		t.Fatalf("got %d comments, want 2", len(comments))
	}
	if comments[0].ID != uuid.MustParse("2b7f2c0e-8d6a-4a6e-9a3e-5b8c7d1e0f11") {
		t.Errorf("id = %s", comments[0].ID)
	}
	if comments[0].Message != "first" || comments[0].Author.Username != "alice" {
		t.Errorf("first = %+v", comments[0])
	}
	if !comments[0].CreatedAt.Equal(time.Date(2020, 5, 20, 11, 24, 59, 0, time.UTC)) {
		t.Errorf("created_at = %v", comments[0].CreatedAt)
	}
	if comments[1].ID == uuid.Nil {
		t.Error("expected generated id for second comment")
	}
	if !comments[1].CreatedAt.Equal(time.Date(2020, 5, 21, 6, 0, 0, 0, time.UTC)) {
		t.Errorf("created_at = %v", comments[1].CreatedAt)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad yaml", "comments: [\n"},
		{"bad id", "comments:\n  - id: nope\n    created_at: 2020-05-20T11:24:59Z\n"},
		{"missing created_at", "comments:\n  - message: hi\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.data)); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

func TestParseEmpty(t *testing.T) {
	comments, err := Parse([]byte("comments: []\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if comments == nil || len(comments) != 0 {
		t.Errorf("comments = %v, want empty slice", comments)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feed.yaml")
	if err := os.WriteFile(path, []byte("comments:\n  - message: hi\n    created_at: 2020-05-20T11:24:59Z\n    author: a\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	comments, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(comments) != 1 {
		t.Errorf("got %d comments, want 1", len(comments))
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestSample(t *testing.T) {
	now := time.Date(2021, 4, 4, 12, 0, 0, 500, time.UTC)
	comments := Sample(now)
	if len(comments) == 0 {
		t.Fatal("expected sample comments")
	}
	for i := 1; i < len(comments); i++ {
		if !comments[i].CreatedAt.Before(comments[i-1].CreatedAt) {
			t.Errorf("comment %d is not older than comment %d", i, i-1)
		}
	}
	if comments[0].CreatedAt.Nanosecond() != 0 {
		t.Error("expected whole-second timestamps")
	}
}
